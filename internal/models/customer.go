package models

import (
	"time"

	"github.com/google/uuid"
)

// Customer is a server-owned customer snapshot.
type Customer struct {
	ID                   uuid.UUID `json:"id" validate:"required"`
	FirstName            string    `json:"firstName"`
	LastName             string    `json:"lastName"`
	IdentificationNumber string    `json:"identificationNumber"`
	BirthDate            string    `json:"birthDate"`
	Address              string    `json:"address"`
	Email                string    `json:"email"`
	Phone                string    `json:"phone"`
	CreatedAt            time.Time `json:"createdAt" validate:"required"`
	UpdatedAt            time.Time `json:"updatedAt" validate:"required"`
}

// FullName joins first and last name for table cells and headers.
func (c Customer) FullName() string {
	return c.FirstName + " " + c.LastName
}

// CreateCustomerRequest is the payload for registering a customer. Fields are
// sent trimmed. The validate tags mirror the core API's own checks so a bad
// payload never leaves the dashboard.
type CreateCustomerRequest struct {
	FirstName            string `json:"firstName" validate:"min=2,max=50"`
	LastName             string `json:"lastName" validate:"min=2,max=50"`
	IdentificationNumber string `json:"identificationNumber" validate:"digits=13"`
	BirthDate            string `json:"birthDate" validate:"isodate,past"`
	Address              string `json:"address" validate:"required,max=255"`
	Email                string `json:"email" validate:"email,max=150"`
	Phone                string `json:"phone" validate:"digits=8"`
}

// UpdateCustomerRequest is the payload for PUT /customers/{id}. A nil field is
// not sent.
type UpdateCustomerRequest struct {
	FirstName            *string `json:"firstName,omitempty" validate:"omitnil,min=2,max=50"`
	LastName             *string `json:"lastName,omitempty" validate:"omitnil,min=2,max=50"`
	IdentificationNumber *string `json:"identificationNumber,omitempty" validate:"omitnil,digits=13"`
	BirthDate            *string `json:"birthDate,omitempty" validate:"omitnil,isodate,past"`
	Address              *string `json:"address,omitempty" validate:"omitnil,max=255"`
	Email                *string `json:"email,omitempty" validate:"omitnil,email,max=150"`
	Phone                *string `json:"phone,omitempty" validate:"omitnil,digits=8"`
}
