package validation

import (
	"context"
	"strings"

	"github.com/shopspring/decimal"

	"loandesk/internal/models"
	pstrings "loandesk/pkg/platform/strings"
)

// CustomerForm is the posted create-customer form.
type CustomerForm struct {
	FirstName            string `form:"firstName" validate:"min=2,max=50"`
	LastName             string `form:"lastName" validate:"min=2,max=50"`
	IdentificationNumber string `form:"identificationNumber" validate:"digits=13"`
	BirthDate            string `form:"birthDate" validate:"isodate,past"`
	Address              string `form:"address" validate:"required,max=255"`
	Email                string `form:"email" validate:"email,max=150"`
	Phone                string `form:"phone" validate:"digits=8"`
}

func (f *CustomerForm) normalize() {
	f.FirstName = strings.TrimSpace(f.FirstName)
	f.LastName = strings.TrimSpace(f.LastName)
	f.IdentificationNumber = strings.TrimSpace(f.IdentificationNumber)
	f.Address = strings.TrimSpace(f.Address)
	f.Email = strings.TrimSpace(f.Email)
	f.Phone = strings.TrimSpace(f.Phone)
}

// CreateCustomer validates the form and builds the request payload.
func CreateCustomer(ctx context.Context, f CustomerForm) (models.CreateCustomerRequest, error) {
	f.normalize()
	if err := check(ctx, f); err != nil {
		return models.CreateCustomerRequest{}, err
	}
	return models.CreateCustomerRequest{
		FirstName:            f.FirstName,
		LastName:             f.LastName,
		IdentificationNumber: f.IdentificationNumber,
		BirthDate:            f.BirthDate,
		Address:              f.Address,
		Email:                f.Email,
		Phone:                f.Phone,
	}, nil
}

// UpdateCustomerForm is the posted edit form. A nil field was not submitted
// and is left unchanged on the server.
type UpdateCustomerForm struct {
	FirstName            *string `form:"firstName" validate:"omitnil,min=2,max=50"`
	LastName             *string `form:"lastName" validate:"omitnil,min=2,max=50"`
	IdentificationNumber *string `form:"identificationNumber" validate:"omitnil,digits=13"`
	BirthDate            *string `form:"birthDate" validate:"omitnil,isodate,past"`
	Address              *string `form:"address" validate:"omitnil,max=255"`
	Email                *string `form:"email" validate:"omitnil,email,max=150"`
	Phone                *string `form:"phone" validate:"omitnil,digits=8"`
}

func trimPtr(s *string) *string {
	if s == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*s)
	return &trimmed
}

// UpdateCustomer validates the submitted fields and builds the PUT payload.
func UpdateCustomer(ctx context.Context, f UpdateCustomerForm) (models.UpdateCustomerRequest, error) {
	f.FirstName = trimPtr(f.FirstName)
	f.LastName = trimPtr(f.LastName)
	f.IdentificationNumber = trimPtr(f.IdentificationNumber)
	f.Address = trimPtr(f.Address)
	f.Email = trimPtr(f.Email)
	f.Phone = trimPtr(f.Phone)
	if err := check(ctx, f); err != nil {
		return models.UpdateCustomerRequest{}, err
	}
	return models.UpdateCustomerRequest{
		FirstName:            f.FirstName,
		LastName:             f.LastName,
		IdentificationNumber: f.IdentificationNumber,
		BirthDate:            f.BirthDate,
		Address:              f.Address,
		Email:                f.Email,
		Phone:                f.Phone,
	}, nil
}

// MaxAmount is the largest amount the core API stores (16 integer digits, 2
// decimals). Loans and payments share it.
const MaxAmount = "9999999999999999.99"

// LoanApplicationForm is the posted loan application form.
type LoanApplicationForm struct {
	LoanDate           string `form:"loanDate"`
	Amount             string `form:"amount" validate:"decimal,decimal_gt=0,decimal_lte=9999999999999999.99"`
	TermMonths         string `form:"termMonths" validate:"integer,decimal_gt=0,decimal_lte=2147483647"`
	Purpose            string `form:"purpose" validate:"max=200"`
	AnnualInterestRate string `form:"annualInterestRate" validate:"decimal,decimal_gte=0,decimal_lte=999.99"`
}

// LoanApplication validates the form and builds the submit payload. Blank
// optional fields are omitted; a blank number counts as zero.
func LoanApplication(ctx context.Context, f LoanApplicationForm) (models.SubmitLoanApplicationRequest, error) {
	f.LoanDate = strings.TrimSpace(f.LoanDate)
	f.Purpose = strings.TrimSpace(f.Purpose)
	f.Amount = numberOrZero(f.Amount)
	f.TermMonths = numberOrZero(f.TermMonths)
	f.AnnualInterestRate = numberOrZero(f.AnnualInterestRate)
	if err := check(ctx, f); err != nil {
		return models.SubmitLoanApplicationRequest{}, err
	}
	return models.SubmitLoanApplicationRequest{
		LoanDate:           pstrings.TrimToNil(f.LoanDate),
		Amount:             decimal.RequireFromString(f.Amount),
		TermMonths:         int(decimal.RequireFromString(f.TermMonths).IntPart()),
		Purpose:            pstrings.TrimToNil(f.Purpose),
		AnnualInterestRate: decimal.RequireFromString(f.AnnualInterestRate),
	}, nil
}

// ReviewForm carries the mandatory note of an approve or reject action.
type ReviewForm struct {
	Notes string `form:"notes" validate:"min=1,max=200"`
}

// ReviewLoanApplication validates the review note.
func ReviewLoanApplication(ctx context.Context, f ReviewForm) (models.ReviewLoanApplicationRequest, error) {
	f.Notes = strings.TrimSpace(f.Notes)
	if err := check(ctx, f); err != nil {
		return models.ReviewLoanApplicationRequest{}, err
	}
	return models.ReviewLoanApplicationRequest{Notes: f.Notes}, nil
}

// PaymentForm is the posted payment registration form.
type PaymentForm struct {
	Amount        string `form:"amount" msg:"paymentAmount" validate:"decimal,decimal_gte=0.01,decimal_lte=9999999999999999.99"`
	PaymentMethod string `form:"paymentMethod" validate:"required,payment_method"`
	PaymentDate   string `form:"paymentDate"`
	Notes         string `form:"notes" msg:"paymentNotes" validate:"max=300"`
}

// LoanPayment validates the form and builds the payment payload.
func LoanPayment(ctx context.Context, f PaymentForm) (models.RegisterLoanPaymentRequest, error) {
	f.Amount = numberOrZero(f.Amount)
	f.PaymentMethod = strings.TrimSpace(f.PaymentMethod)
	f.PaymentDate = strings.TrimSpace(f.PaymentDate)
	f.Notes = strings.TrimSpace(f.Notes)
	if err := check(ctx, f); err != nil {
		return models.RegisterLoanPaymentRequest{}, err
	}
	return models.RegisterLoanPaymentRequest{
		Amount:        decimal.RequireFromString(f.Amount),
		PaymentMethod: models.PaymentMethod(f.PaymentMethod),
		PaymentDate:   pstrings.TrimToNil(f.PaymentDate),
		Notes:         pstrings.TrimToNil(f.Notes),
	}, nil
}

func numberOrZero(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return "0"
	}
	return s
}
