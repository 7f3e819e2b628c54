package api

import (
	"errors"
	"fmt"
	"net/http"

	"loandesk/pkg/platform/sentinel"
)

// Kind classifies how a core API call failed.
type Kind string

const (
	// KindStatus is a non-2xx response.
	KindStatus Kind = "status"
	// KindTransport means no response was received.
	KindTransport Kind = "transport"
	// KindShape is a 2xx response whose body does not match the expected shape.
	KindShape Kind = "shape"
)

// Error is a failed core API call. Message is the best human-readable text:
// the body's detail, else title, else message, else "Error en solicitud (<status>)".
type Error struct {
	Status  int
	Message string
	Detail  string
	Title   string
	Kind    Kind
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("core api %s (%d): %s: %v", e.Kind, e.Status, e.Message, e.Err)
	}
	return fmt.Sprintf("core api %s (%d): %s", e.Kind, e.Status, e.Message)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Is maps responses onto infrastructure facts so callers can branch with
// errors.Is(err, sentinel.ErrNotFound) and friends.
func (e *Error) Is(target error) bool {
	switch target {
	case sentinel.ErrNotFound:
		return e.Kind == KindStatus && e.Status == http.StatusNotFound
	case sentinel.ErrConflict:
		return e.Kind == KindStatus && e.Status == http.StatusConflict
	case sentinel.ErrUnavailable:
		return e.Kind == KindTransport || e.Status >= http.StatusInternalServerError
	}
	return false
}

func fallbackMessage(status int) string {
	return fmt.Sprintf("Error en solicitud (%d)", status)
}

// errorBody is the optional problem document returned with non-2xx responses.
type errorBody struct {
	Detail  *string `json:"detail"`
	Title   *string `json:"title"`
	Message *string `json:"message"`
}

func (b errorBody) message(status int) string {
	for _, candidate := range []*string{b.Detail, b.Title, b.Message} {
		if candidate != nil {
			return *candidate
		}
	}
	return fallbackMessage(status)
}

// UserMessage picks the text shown to staff after a failed action: the server's
// message for HTTP errors, otherwise fallback.
func UserMessage(err error, fallback string) string {
	var apiErr *Error
	if errors.As(err, &apiErr) && apiErr.Kind == KindStatus && apiErr.Message != "" {
		return apiErr.Message
	}
	return fallback
}
