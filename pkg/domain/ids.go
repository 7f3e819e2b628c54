// Package domain holds the typed identifiers used when addressing core API
// resources. Path segments from the dashboard URL are parsed into these before
// any upstream call, so a malformed id never reaches the core API.
package domain

import (
	"github.com/google/uuid"

	dErrors "loandesk/pkg/domain-errors"
)

// CustomerID identifies a customer in the core API.
type CustomerID uuid.UUID

// LoanID identifies a loan application in the core API.
type LoanID uuid.UUID

func (id CustomerID) String() string { return uuid.UUID(id).String() }

func (id LoanID) String() string { return uuid.UUID(id).String() }

// IsNil reports whether the id is the zero UUID.
func (id CustomerID) IsNil() bool { return uuid.UUID(id) == uuid.Nil }

// IsNil reports whether the id is the zero UUID.
func (id LoanID) IsNil() bool { return uuid.UUID(id) == uuid.Nil }

// ParseCustomerID parses a non-nil UUID string.
func ParseCustomerID(s string) (CustomerID, error) {
	u, err := parseUUID(s, "customer id")
	return CustomerID(u), err
}

// ParseLoanID parses a non-nil UUID string.
func ParseLoanID(s string) (LoanID, error) {
	u, err := parseUUID(s, "loan id")
	return LoanID(u), err
}

func parseUUID(s, label string) (uuid.UUID, error) {
	if s == "" {
		return uuid.Nil, dErrors.New(dErrors.CodeInvalidInput, label+" is required")
	}
	u, err := uuid.Parse(s)
	if err != nil {
		return uuid.Nil, dErrors.Wrap(err, dErrors.CodeInvalidInput, "invalid "+label)
	}
	if u == uuid.Nil {
		return uuid.Nil, dErrors.New(dErrors.CodeInvalidInput, label+" cannot be nil")
	}
	return u, nil
}
