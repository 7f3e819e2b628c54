package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

func init() {
	// The core API expects amounts as JSON numbers, not strings.
	decimal.MarshalJSONWithoutQuotes = true
}

// Loan is a server-owned loan snapshot. Balances are computed by the server
// and only displayed here.
type Loan struct {
	ID                 uuid.UUID        `json:"id" validate:"required"`
	CustomerID         uuid.UUID        `json:"customerId" validate:"required"`
	CustomerFullName   string           `json:"customerFullName"`
	LoanDate           string           `json:"loanDate"`
	Amount             decimal.Decimal  `json:"amount"`
	TermMonths         int              `json:"termMonths" validate:"min=1"`
	Purpose            *string          `json:"purpose,omitempty"`
	AnnualInterestRate *decimal.Decimal `json:"annualInterestRate,omitempty"`
	TotalPayable       decimal.Decimal  `json:"totalPayable"`
	OutstandingBalance decimal.Decimal  `json:"outstandingBalance"`
	PaymentStatus      *PaymentStatus   `json:"paymentStatus,omitempty"`
	Status             LoanStatus       `json:"status" validate:"required"`
	CreatedAt          time.Time        `json:"createdAt" validate:"required"`
	UpdatedAt          time.Time        `json:"updatedAt" validate:"required"`
}

// CanBeReviewed reports whether approve/reject actions apply.
func (l Loan) CanBeReviewed() bool {
	return l.Status == LoanStatusInProcess
}

// AcceptsPayments reports whether payments can be registered.
func (l Loan) AcceptsPayments() bool {
	return l.Status == LoanStatusApproved
}

// LoanStatusHistory is one entry of a loan's status audit trail.
type LoanStatusHistory struct {
	ID        uuid.UUID  `json:"id" validate:"required"`
	LoanID    uuid.UUID  `json:"loanId" validate:"required"`
	Status    LoanStatus `json:"status" validate:"required"`
	Notes     *string    `json:"notes,omitempty"`
	CreatedAt time.Time  `json:"createdAt" validate:"required"`
	UpdatedAt time.Time  `json:"updatedAt" validate:"required"`
}

// LoanPayment is a registered payment against a loan.
type LoanPayment struct {
	ID            uuid.UUID       `json:"id" validate:"required"`
	LoanID        uuid.UUID       `json:"loanId" validate:"required"`
	CustomerID    uuid.UUID       `json:"customerId" validate:"required"`
	Amount        decimal.Decimal `json:"amount"`
	PaymentMethod PaymentMethod   `json:"paymentMethod" validate:"required"`
	PaymentDate   string          `json:"paymentDate"`
	Notes         *string         `json:"notes,omitempty"`
	CreatedAt     time.Time       `json:"createdAt" validate:"required"`
	UpdatedAt     time.Time       `json:"updatedAt" validate:"required"`
}

// SubmitLoanApplicationRequest is the payload for a new loan application.
type SubmitLoanApplicationRequest struct {
	LoanDate           *string         `json:"loanDate,omitempty"`
	Amount             decimal.Decimal `json:"amount" validate:"decimal_gt=0,decimal_lte=9999999999999999.99"`
	TermMonths         int             `json:"termMonths" validate:"min=1,max=2147483647"`
	Purpose            *string         `json:"purpose,omitempty" validate:"omitnil,max=200"`
	AnnualInterestRate decimal.Decimal `json:"annualInterestRate" validate:"decimal_gte=0,decimal_lte=999.99"`
}

// ReviewLoanApplicationRequest carries the mandatory note for approve/reject.
type ReviewLoanApplicationRequest struct {
	Notes string `json:"notes" validate:"min=1,max=200"`
}

// RegisterLoanPaymentRequest is the payload for a new payment.
type RegisterLoanPaymentRequest struct {
	Amount        decimal.Decimal `json:"amount" msg:"paymentAmount" validate:"decimal_gte=0.01,decimal_lte=9999999999999999.99"`
	PaymentMethod PaymentMethod   `json:"paymentMethod" validate:"required,payment_method"`
	PaymentDate   *string         `json:"paymentDate,omitempty"`
	Notes         *string         `json:"notes,omitempty" msg:"paymentNotes" validate:"omitnil,max=300"`
}
