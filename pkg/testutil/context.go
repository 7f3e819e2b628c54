package testutil

import (
	"net/http"
	"time"

	"loandesk/pkg/requestcontext"
)

// WithSessionID attaches a dashboard session id, as the session middleware
// would, so flash messages can be stored and read back.
func WithSessionID(req *http.Request, sessionID string) *http.Request {
	return req.WithContext(requestcontext.WithSessionID(req.Context(), sessionID))
}

// WithRequestTime pins the request-scoped clock.
func WithRequestTime(req *http.Request, now time.Time) *http.Request {
	return req.WithContext(requestcontext.WithTime(req.Context(), now))
}
