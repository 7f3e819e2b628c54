package sentinel

import "errors"

// Sentinel errors for infrastructure facts. The core API client wraps upstream
// failures with these so page controllers can choose a response without
// inspecting HTTP status codes:
// - ErrNotFound: the core API has no such customer or loan (404)
// - ErrConflict: the core API refused the change because of current state (409)
// - ErrUnavailable: the core API could not be reached or failed (5xx, transport)
//
// For validation errors (bad input, missing fields), use pkg/domain-errors directly.
var (
	ErrNotFound    = errors.New("not found")
	ErrConflict    = errors.New("conflict")
	ErrUnavailable = errors.New("unavailable")
)
