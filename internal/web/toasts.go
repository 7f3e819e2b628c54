package web

import (
	"context"

	"loandesk/internal/flash"
	"loandesk/internal/platform/middleware"
	"loandesk/pkg/requestcontext"
)

const (
	toastCheckForm  = "Revisa los campos del formulario antes de enviar."
	toastCheckNotes = "Revisa las notas antes de enviar."
)

// pushToast queues a toast for the next page of this session. A store failure
// loses the toast but never the action.
func (h *Handler) pushToast(ctx context.Context, toast flash.Toast) {
	h.metrics.IncrementToast(string(toast.Level))
	if err := h.toasts.Push(ctx, requestcontext.SessionID(ctx), toast); err != nil {
		h.logger.WarnContext(ctx, "failed to store toast",
			"request_id", middleware.GetRequestID(ctx),
			"error", err,
		)
	}
}

// inlineToast is shown on the page being rendered, without a redirect.
func (h *Handler) inlineToast(toast flash.Toast) []flash.Toast {
	h.metrics.IncrementToast(string(toast.Level))
	return []flash.Toast{toast}
}

func (h *Handler) popToasts(ctx context.Context) []flash.Toast {
	toasts, err := h.toasts.Pop(ctx, requestcontext.SessionID(ctx))
	if err != nil {
		h.logger.WarnContext(ctx, "failed to load toasts",
			"request_id", middleware.GetRequestID(ctx),
			"error", err,
		)
		return nil
	}
	return toasts
}
