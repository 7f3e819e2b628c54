package web

import (
	"net/http"

	"loandesk/internal/platform/middleware"
	"loandesk/internal/validation"
	"loandesk/pkg/platform/httputil"
)

type fieldResult struct {
	Valid   bool   `json:"valid"`
	Message string `json:"message,omitempty"`
}

// handleValidateField checks one form field as the user leaves it. Only the
// field's own rule runs, never the rest of the schema.
func (h *Handler) handleValidateField(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	q := r.URL.Query()

	message, err := validation.Field(ctx, q.Get("schema"), q.Get("field"), q.Get("value"))
	if err != nil {
		h.logger.WarnContext(ctx, "invalid field validation request",
			"request_id", middleware.GetRequestID(ctx),
			"schema", q.Get("schema"),
			"field", q.Get("field"),
			"error", err,
		)
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, fieldResult{Valid: message == "", Message: message})
}
