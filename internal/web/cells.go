package web

import (
	"fmt"
	"html/template"
	"strings"

	"loandesk/internal/format"
)

func esc(s string) string {
	return template.HTMLEscapeString(s)
}

func link(href, text string) template.HTML {
	return template.HTML(fmt.Sprintf(`<a href="%s">%s</a>`, esc(href), esc(text)))
}

func badge(b format.Badge) template.HTML {
	return template.HTML(fmt.Sprintf(`<span class="badge badge-%s">%s</span>`, esc(b.Variant), esc(b.Label)))
}

// infoRow is one label/value line of an inline detail panel.
type infoRow struct {
	Label string
	Value string
}

// details renders a collapsible panel; the dashboard has no modal dialogs.
func details(summary string, rows []infoRow) template.HTML {
	var b strings.Builder
	b.WriteString(`<details class="info"><summary>`)
	b.WriteString(esc(summary))
	b.WriteString(`</summary><dl>`)
	for _, row := range rows {
		fmt.Fprintf(&b, `<dt>%s</dt><dd>%s</dd>`, esc(row.Label), esc(row.Value))
	}
	b.WriteString(`</dl></details>`)
	return template.HTML(b.String())
}

func notesCell(notes *string) template.HTML {
	return details("Ver notas", []infoRow{{Label: "Notas", Value: format.Text(notes)}})
}

// actionLink is a row or header action.
type actionLink struct {
	Label string
	Href  string
}

func actions(items []actionLink, extra ...template.HTML) template.HTML {
	var b strings.Builder
	b.WriteString(`<div class="actions">`)
	for _, html := range extra {
		b.WriteString(string(html))
	}
	for _, item := range items {
		b.WriteString(string(link(item.Href, item.Label)))
	}
	b.WriteString(`</div>`)
	return template.HTML(b.String())
}
