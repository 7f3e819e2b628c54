// Package flash carries toast messages across a POST-redirect-GET round trip.
// Toasts are keyed by the session cookie and delivered exactly once.
package flash

import (
	"context"
)

// Level is the visual weight of a toast.
type Level string

const (
	LevelSuccess Level = "success"
	LevelError   Level = "error"
)

// Toast is a short notification rendered on the next page.
type Toast struct {
	Level       Level  `json:"level"`
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
}

// Success builds a success toast.
func Success(title, description string) Toast {
	return Toast{Level: LevelSuccess, Title: title, Description: description}
}

// Error builds an error toast.
func Error(title, description string) Toast {
	return Toast{Level: LevelError, Title: title, Description: description}
}

// Store keeps pending toasts per session.
type Store interface {
	// Push appends a toast for the session.
	Push(ctx context.Context, sessionID string, toast Toast) error
	// Pop returns and removes every pending toast for the session.
	Pop(ctx context.Context, sessionID string) ([]Toast, error)
}
