package web

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"io"
	"io/fs"
	"net/http"

	"loandesk/internal/flash"
	"loandesk/internal/platform/middleware"
)

//go:embed templates/*.html
var templateFS embed.FS

//go:embed static
var staticFS embed.FS

// pageNames are the templates that define "content"; each is parsed on top of
// the shared layout and partials.
var pageNames = []string{
	"customers",
	"customer_form",
	"customer_delete",
	"loans",
	"loan_form",
	"loan_history",
	"loan_payments",
	"review_form",
	"payment_form",
	"error",
}

type views struct {
	pages map[string]*template.Template
}

func mustParseViews() *views {
	base := template.Must(template.New("layout.html").Funcs(template.FuncMap{
		"field": field,
	}).ParseFS(templateFS, "templates/layout.html", "templates/partials.html"))

	v := &views{pages: make(map[string]*template.Template, len(pageNames))}
	for _, name := range pageNames {
		page := template.Must(template.Must(base.Clone()).ParseFS(templateFS, "templates/"+name+".html"))
		v.pages[name] = page
	}
	return v
}

func (v *views) render(w io.Writer, name string, data pageData) error {
	page, ok := v.pages[name]
	if !ok {
		return fmt.Errorf("unknown page %q", name)
	}
	return page.ExecuteTemplate(w, "layout", data)
}

// StaticHandler serves the embedded stylesheet and script.
func StaticHandler() http.Handler {
	sub, err := fs.Sub(staticFS, "static")
	if err != nil {
		panic(err)
	}
	return http.FileServer(http.FS(sub))
}

// pageData is what the layout renders. Body is the page-specific model.
type pageData struct {
	Title       string
	Description string
	BackHref    string
	Active      string
	Toasts      []flash.Toast
	ValidateURL string
	Body        any
}

// render pops pending toasts, executes the page into a buffer and only then
// writes the status, so a template error never leaves a half-written page.
func (h *Handler) render(w http.ResponseWriter, r *http.Request, status int, name string, data pageData) {
	ctx := r.Context()
	data.Toasts = append(h.popToasts(ctx), data.Toasts...)
	data.ValidateURL = validatePath

	var buf bytes.Buffer
	if err := h.views.render(&buf, name, data); err != nil {
		h.logger.ErrorContext(ctx, "failed to render page",
			"request_id", middleware.GetRequestID(ctx),
			"page", name,
			"error", err,
		)
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_, _ = buf.WriteTo(w)
}
