package table

// Pagination selects how a table pages its rows. It is either SelfContained or
// External; no other implementations exist.
type Pagination interface {
	isPagination()
}

// SelfContained keeps page index and size inside the table and pages the rows
// it holds. Page count and total rows derive from those rows.
type SelfContained struct {
	PageSize int
}

// External hands paging to the caller: the server already returned one page,
// the caller knows the totals, and every page change goes through the
// callbacks, which return the address to navigate to.
type External struct {
	PageIndex        int
	PageSize         int
	PageCount        int
	TotalRows        int
	OnPageChange     func(pageIndex int) string
	OnPageSizeChange func(pageSize int) string
}

func (SelfContained) isPagination() {}
func (External) isPagination()      {}

// DefaultPageSize applies when a self-contained table gets no usable size.
const DefaultPageSize = 10

// PageSizeOptions are the sizes offered in the page size selector.
var PageSizeOptions = []int{10, 20, 30, 40, 50}
