// Package table renders paginated, sortable tables for the dashboard. A table
// never fetches data; it pages either the rows it holds or, in External mode,
// reports page changes to the caller.
package table

import (
	"cmp"
	"html/template"
	"slices"
)

// Column describes one column. Cell renders the cell content; Compare enables
// sorting on the column.
type Column[T any] struct {
	ID      string
	Header  string
	Cell    func(row T) template.HTML
	Compare func(a, b T) int
}

// Text escapes s for use as a cell.
func Text(s string) template.HTML {
	return template.HTML(template.HTMLEscapeString(s))
}

// By builds a Compare function from an ordered key.
func By[T any, K cmp.Ordered](key func(T) K) func(a, b T) int {
	return func(a, b T) int {
		return cmp.Compare(key(a), key(b))
	}
}

// Sort is the local sort state.
type Sort struct {
	ColumnID string
	Desc     bool
}

type options struct {
	links     func(pageIndex, pageSize int) string
	sortLinks func(s Sort) string
	empty     string
	sizes     []int
}

// Option configures a Table.
type Option func(*options)

// WithLinks gives a self-contained table a way to render its navigation as
// links. Without it the navigation carries no targets.
func WithLinks(fn func(pageIndex, pageSize int) string) Option {
	return func(o *options) {
		o.links = fn
	}
}

// WithSortLinks renders sortable headers as links to the address that applies
// the given sort.
func WithSortLinks(fn func(s Sort) string) Option {
	return func(o *options) {
		o.sortLinks = fn
	}
}

// WithEmptyMessage replaces the "No hay registros" placeholder.
func WithEmptyMessage(msg string) Option {
	return func(o *options) {
		o.empty = msg
	}
}

// WithPageSizes replaces the page size options.
func WithPageSizes(sizes ...int) Option {
	return func(o *options) {
		o.sizes = sizes
	}
}

// Table is a paginated table over rows of T.
type Table[T any] struct {
	rows    []T
	columns []Column[T]
	mode    Pagination
	opts    options

	// local state, used by SelfContained only
	pageIndex int
	pageSize  int

	sort *Sort
}

// New creates a table. In External mode rows must be the current page.
func New[T any](rows []T, columns []Column[T], pagination Pagination, opts ...Option) *Table[T] {
	o := options{empty: "No hay registros", sizes: PageSizeOptions}
	for _, opt := range opts {
		opt(&o)
	}
	t := &Table[T]{
		rows:    slices.Clone(rows),
		columns: columns,
		mode:    pagination,
		opts:    o,
	}
	if sc, ok := pagination.(SelfContained); ok {
		t.pageSize = sc.PageSize
		if t.pageSize < 1 {
			t.pageSize = DefaultPageSize
		}
	}
	return t
}

// PageIndex is the zero-based current page.
func (t *Table[T]) PageIndex() int {
	if ext, ok := t.mode.(External); ok {
		return ext.PageIndex
	}
	return t.pageIndex
}

// PageSize is the current page size.
func (t *Table[T]) PageSize() int {
	if ext, ok := t.mode.(External); ok {
		return ext.PageSize
	}
	return t.pageSize
}

// PageCount is the number of pages; 0 when there are no rows.
func (t *Table[T]) PageCount() int {
	if ext, ok := t.mode.(External); ok {
		return ext.PageCount
	}
	return (len(t.rows) + t.pageSize - 1) / t.pageSize
}

// TotalRows counts rows across all pages.
func (t *Table[T]) TotalRows() int {
	if ext, ok := t.mode.(External); ok {
		return ext.TotalRows
	}
	return len(t.rows)
}

// CanPreviousPage reports whether a previous page exists.
func (t *Table[T]) CanPreviousPage() bool {
	return t.PageIndex() > 0
}

// CanNextPage reports whether a next page exists.
func (t *Table[T]) CanNextPage() bool {
	return t.PageIndex()+1 < t.PageCount()
}

// FirstPage goes to page 0 and returns the navigation target.
func (t *Table[T]) FirstPage() string {
	return t.goTo(0)
}

// PreviousPage goes back one page, stopping at 0.
func (t *Table[T]) PreviousPage() string {
	return t.goTo(max(0, t.PageIndex()-1))
}

// NextPage goes forward one page, stopping at the last page.
func (t *Table[T]) NextPage() string {
	return t.goTo(min(t.PageCount()-1, t.PageIndex()+1))
}

// LastPage goes to the last page (0 when there are none).
func (t *Table[T]) LastPage() string {
	return t.goTo(max(0, t.PageCount()-1))
}

// SetPageIndex moves a self-contained table to index, clamped to the valid
// range. External tables report the change through OnPageChange.
func (t *Table[T]) SetPageIndex(index int) string {
	return t.goTo(index)
}

// SetPageSize changes the page size. The page index resets to 0.
func (t *Table[T]) SetPageSize(size int) string {
	if ext, ok := t.mode.(External); ok {
		if ext.OnPageSizeChange == nil {
			return ""
		}
		return ext.OnPageSizeChange(size)
	}
	if size < 1 {
		size = DefaultPageSize
	}
	t.pageSize = size
	t.pageIndex = 0
	return t.selfLink(0, size)
}

func (t *Table[T]) goTo(index int) string {
	if ext, ok := t.mode.(External); ok {
		if ext.OnPageChange == nil {
			return ""
		}
		return ext.OnPageChange(index)
	}
	t.pageIndex = clampIndex(index, t.PageCount())
	return t.selfLink(t.pageIndex, t.pageSize)
}

func (t *Table[T]) selfLink(index, size int) string {
	if t.opts.links == nil {
		return ""
	}
	return t.opts.links(index, size)
}

func clampIndex(index, pageCount int) int {
	if index > pageCount-1 {
		index = pageCount - 1
	}
	return max(0, index)
}

// SortBy sorts the held rows on a sortable column. Unknown or unsortable
// columns clear the sort.
func (t *Table[T]) SortBy(columnID string, desc bool) {
	col, ok := t.column(columnID)
	if !ok || col.Compare == nil {
		t.sort = nil
		return
	}
	t.sort = &Sort{ColumnID: columnID, Desc: desc}
	slices.SortStableFunc(t.rows, func(a, b T) int {
		if desc {
			return col.Compare(b, a)
		}
		return col.Compare(a, b)
	})
}

// Sorting returns the active sort, if any.
func (t *Table[T]) Sorting() (Sort, bool) {
	if t.sort == nil {
		return Sort{}, false
	}
	return *t.sort, true
}

func (t *Table[T]) column(id string) (Column[T], bool) {
	for _, c := range t.columns {
		if c.ID == id {
			return c, true
		}
	}
	return Column[T]{}, false
}

// VisibleRows are the rows of the current page.
func (t *Table[T]) VisibleRows() []T {
	if _, ok := t.mode.(External); ok {
		return t.rows
	}
	start := t.pageIndex * t.pageSize
	if start >= len(t.rows) {
		return nil
	}
	end := min(start+t.pageSize, len(t.rows))
	return t.rows[start:end]
}
