package api

import (
	"net/url"
	"strconv"
	"strings"

	"loandesk/internal/models"
)

// query builds a query string that omits absent parameters and blank filters.
type query struct {
	values url.Values
}

func newQuery() *query {
	return &query{values: url.Values{}}
}

func (q *query) text(key string, v *string) *query {
	if v == nil {
		return q
	}
	if trimmed := strings.TrimSpace(*v); trimmed != "" {
		q.values.Set(key, trimmed)
	}
	return q
}

func (q *query) int(key string, v *int) *query {
	if v != nil {
		q.values.Set(key, strconv.Itoa(*v))
	}
	return q
}

func (q *query) page(p models.PageParams) *query {
	return q.int("page", p.Page).int("size", p.Size)
}

// encode returns "" or "?a=b&...". Keys are sorted.
func (q *query) encode() string {
	if len(q.values) == 0 {
		return ""
	}
	return "?" + q.values.Encode()
}
