package table

import (
	"fmt"
	"html/template"
)

// View is the render model consumed by the table template.
type View struct {
	Headers   []Header
	Rows      [][]template.HTML
	Empty     string
	IsEmpty   bool
	Nav       Nav
	ColumnLen int
}

// Header is one column header.
type Header struct {
	Label    string
	Href     string
	Sortable bool
	SortDir  string // "asc", "desc" or ""
}

// Link is a navigation control. A disabled link has no target.
type Link struct {
	Href     string
	Disabled bool
}

// SizeOption is one entry of the page size selector.
type SizeOption struct {
	Size     int
	Href     string
	Selected bool
}

// Nav is the pagination bar.
type Nav struct {
	First, Previous, Next, Last Link
	PageLabel                   string
	TotalLabel                  string
	TotalRows                   int
	PageSizes                   []SizeOption
}

// View builds the render model. Building it does not change the table's state;
// navigation targets are computed for enabled controls only.
func (t *Table[T]) View() View {
	v := View{
		Empty:     t.opts.empty,
		ColumnLen: len(t.columns),
	}

	sorting, sorted := t.Sorting()
	for _, c := range t.columns {
		h := Header{Label: c.Header, Sortable: c.Compare != nil}
		if sorted && sorting.ColumnID == c.ID {
			h.SortDir = "asc"
			if sorting.Desc {
				h.SortDir = "desc"
			}
		}
		if h.Sortable && t.opts.sortLinks != nil {
			// Clicking a header sorts ascending, then toggles.
			next := Sort{ColumnID: c.ID}
			if h.SortDir == "asc" {
				next.Desc = true
			}
			h.Href = t.opts.sortLinks(next)
		}
		v.Headers = append(v.Headers, h)
	}

	for _, row := range t.VisibleRows() {
		cells := make([]template.HTML, 0, len(t.columns))
		for _, c := range t.columns {
			cells = append(cells, c.Cell(row))
		}
		v.Rows = append(v.Rows, cells)
	}
	v.IsEmpty = len(v.Rows) == 0

	index, count := t.PageIndex(), t.PageCount()
	current := 0
	if count > 0 {
		current = index + 1
	}
	v.Nav = Nav{
		First:      t.link(t.CanPreviousPage(), 0, t.PageSize()),
		Previous:   t.link(t.CanPreviousPage(), max(0, index-1), t.PageSize()),
		Next:       t.link(t.CanNextPage(), min(count-1, index+1), t.PageSize()),
		Last:       t.link(t.CanNextPage(), max(0, count-1), t.PageSize()),
		PageLabel:  fmt.Sprintf("Pagina %d de %d", current, count),
		TotalRows:  t.TotalRows(),
		TotalLabel: fmt.Sprintf("Registros totales: %d", t.TotalRows()),
	}
	for _, size := range t.opts.sizes {
		v.Nav.PageSizes = append(v.Nav.PageSizes, SizeOption{
			Size:     size,
			Href:     t.sizeHref(size),
			Selected: size == t.PageSize(),
		})
	}
	return v
}

func (t *Table[T]) link(enabled bool, index, size int) Link {
	if !enabled {
		return Link{Disabled: true}
	}
	if ext, ok := t.mode.(External); ok {
		if ext.OnPageChange == nil {
			return Link{}
		}
		return Link{Href: ext.OnPageChange(index)}
	}
	return Link{Href: t.selfLink(index, size)}
}

func (t *Table[T]) sizeHref(size int) string {
	if ext, ok := t.mode.(External); ok {
		if ext.OnPageSizeChange == nil {
			return ""
		}
		return ext.OnPageSizeChange(size)
	}
	return t.selfLink(0, size)
}
