package web

import (
	"errors"
	"net/http"

	"loandesk/internal/api"
	"loandesk/internal/platform/middleware"
	dErrors "loandesk/pkg/domain-errors"
)

const notFoundMessage = "Recurso no encontrado"

type errorView struct {
	Status  int
	Message string
}

// errorStatus picks the status and text of the error page: upstream 404 and
// malformed path ids are 404, upstream 5xx, transport and shape failures are 502,
// other upstream statuses pass through.
func errorStatus(err error) (int, string) {
	var apiErr *api.Error
	switch {
	case dErrors.HasCode(err, dErrors.CodeInvalidInput):
		return http.StatusNotFound, notFoundMessage
	case dErrors.HasCode(err, dErrors.CodeBadRequest):
		return http.StatusBadRequest, "Solicitud invalida"
	case errors.As(err, &apiErr):
		if apiErr.Kind != api.KindStatus || apiErr.Status >= http.StatusInternalServerError {
			return http.StatusBadGateway, apiErr.Message
		}
		return apiErr.Status, apiErr.Message
	}
	return http.StatusInternalServerError, "Ocurrio un error inesperado"
}

// renderError renders the error page for a failed GET.
func (h *Handler) renderError(w http.ResponseWriter, r *http.Request, err error) {
	ctx := r.Context()
	status, message := errorStatus(err)
	log := h.logger.WarnContext
	if status >= http.StatusInternalServerError {
		log = h.logger.ErrorContext
	}
	log(ctx, "page fetch failed",
		"request_id", middleware.GetRequestID(ctx),
		"path", r.URL.Path,
		"status", status,
		"error", err,
	)
	h.render(w, r, status, "error", pageData{
		Title:    "No se pudo cargar la pagina",
		BackHref: customersPath,
		Body:     errorView{Status: status, Message: message},
	})
}

// actionStatus is the status of a form re-rendered after a failed action.
func actionStatus(err error) int {
	status, _ := errorStatus(err)
	if status == http.StatusInternalServerError {
		return http.StatusBadGateway
	}
	return status
}

func (h *Handler) logActionError(r *http.Request, msg string, err error) {
	ctx := r.Context()
	h.logger.ErrorContext(ctx, msg,
		"request_id", middleware.GetRequestID(ctx),
		"path", r.URL.Path,
		"error", err,
	)
}
