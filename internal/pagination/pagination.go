// Package pagination reads paging state from a dashboard address and rewrites
// addresses for page, size and search changes. The address is the only place
// list state lives.
package pagination

import (
	"net/url"
	"strconv"
	"strings"

	"loandesk/internal/models"
)

const (
	DefaultPage = 0
	DefaultSize = 10

	ParamPage       = "page"
	ParamSize       = "size"
	ParamSearchTerm = "searchTerm"
	ParamSort       = "sort"
	ParamDesc       = "desc"
)

// Params is the paging state of a list view.
type Params struct {
	Page int
	Size int
}

// Parse reads page and size. A missing, zero or non-numeric value takes the
// default; a negative one clamps to the lower bound (page 0, size 1).
func Parse(values url.Values) Params {
	return Params{
		Page: max(0, intOr(values.Get(ParamPage), DefaultPage)),
		Size: max(1, intOr(values.Get(ParamSize), DefaultSize)),
	}
}

func intOr(raw string, fallback int) int {
	n, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil || n == 0 {
		return fallback
	}
	return n
}

// PageParams converts to the core API paging parameters.
func (p Params) PageParams() models.PageParams {
	page, size := p.Page, p.Size
	return models.PageParams{Page: &page, Size: &size}
}

// SearchTerm returns the trimmed search term, or nil when blank.
func SearchTerm(values url.Values) *string {
	term := strings.TrimSpace(values.Get(ParamSearchTerm))
	if term == "" {
		return nil
	}
	return &term
}

// WithPage returns a copy of values with page set and size preserved.
func WithPage(values url.Values, page, size int) url.Values {
	out := clone(values)
	out.Set(ParamPage, strconv.Itoa(page))
	out.Set(ParamSize, strconv.Itoa(size))
	return out
}

// WithSize returns a copy of values with the new size and page reset to 0.
func WithSize(values url.Values, size int) url.Values {
	return WithPage(values, 0, size)
}

// WithSearchTerm returns a copy of values for a new search: page resets to 0
// and searchTerm is set to the trimmed term, or removed when blank.
func WithSearchTerm(values url.Values, term string) url.Values {
	out := clone(values)
	out.Set(ParamPage, "0")
	if trimmed := strings.TrimSpace(term); trimmed != "" {
		out.Set(ParamSearchTerm, trimmed)
	} else {
		out.Del(ParamSearchTerm)
	}
	return out
}

// Sort reads the sort column and direction; ok is false when unsorted.
func Sort(values url.Values) (column string, desc bool, ok bool) {
	column = strings.TrimSpace(values.Get(ParamSort))
	if column == "" {
		return "", false, false
	}
	return column, values.Get(ParamDesc) == "true", true
}

// WithSort returns a copy of values sorted by column. Paging is kept since
// sorting only reorders the rows of the current page.
func WithSort(values url.Values, column string, desc bool) url.Values {
	out := clone(values)
	out.Set(ParamSort, column)
	if desc {
		out.Set(ParamDesc, "true")
	} else {
		out.Del(ParamDesc)
	}
	return out
}

// Href joins a path and query values into an address.
func Href(path string, values url.Values) string {
	if len(values) == 0 {
		return path
	}
	return path + "?" + values.Encode()
}

func clone(values url.Values) url.Values {
	out := make(url.Values, len(values))
	for k, v := range values {
		out[k] = append([]string(nil), v...)
	}
	return out
}
