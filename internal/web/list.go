package web

import (
	"net/url"

	"loandesk/internal/models"
	"loandesk/internal/pagination"
	"loandesk/internal/table"
)

// externalPagination wires a server page into the table: navigation rewrites
// the address, preserving every other query parameter.
func externalPagination[T any](path string, values url.Values, params pagination.Params, page *models.Page[T]) table.External {
	return table.External{
		PageIndex: page.PageNumber,
		PageSize:  params.Size,
		PageCount: page.TotalPages,
		TotalRows: page.TotalElements,
		OnPageChange: func(index int) string {
			return pagination.Href(path, pagination.WithPage(values, index, params.Size))
		},
		OnPageSizeChange: func(size int) string {
			return pagination.Href(path, pagination.WithSize(values, size))
		},
	}
}

func sortLinks(path string, values url.Values) table.Option {
	return table.WithSortLinks(func(s table.Sort) string {
		return pagination.Href(path, pagination.WithSort(values, s.ColumnID, s.Desc))
	})
}

// newListTable builds an External table for a server page and applies the
// sort requested in the address.
func newListTable[T any](
	path string,
	values url.Values,
	params pagination.Params,
	page *models.Page[T],
	columns []table.Column[T],
	empty string,
) table.View {
	t := table.New(page.Data, columns, externalPagination(path, values, params, page),
		table.WithEmptyMessage(empty),
		sortLinks(path, values),
	)
	if column, desc, ok := pagination.Sort(values); ok {
		t.SortBy(column, desc)
	}
	return t.View()
}
