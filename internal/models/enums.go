package models

// LoanStatus is the lifecycle state of a loan application. Values the
// dashboard does not know are kept verbatim.
type LoanStatus string

const (
	LoanStatusInProcess LoanStatus = "IN_PROCESS"
	LoanStatusApproved  LoanStatus = "APPROVED"
	LoanStatusRejected  LoanStatus = "REJECTED"
)

// LoanStatuses lists the statuses in tab order.
var LoanStatuses = []LoanStatus{LoanStatusInProcess, LoanStatusApproved, LoanStatusRejected}

// IsKnown reports whether s is one of the documented statuses.
func (s LoanStatus) IsKnown() bool {
	switch s {
	case LoanStatusInProcess, LoanStatusApproved, LoanStatusRejected:
		return true
	}
	return false
}

// Slug is the path segment of the loan list tab for the status.
func (s LoanStatus) Slug() string {
	switch s {
	case LoanStatusInProcess:
		return "in-process"
	case LoanStatusApproved:
		return "approved"
	case LoanStatusRejected:
		return "rejected"
	}
	return ""
}

// LoanStatusFromSlug is the inverse of Slug.
func LoanStatusFromSlug(slug string) (LoanStatus, bool) {
	for _, s := range LoanStatuses {
		if s.Slug() == slug {
			return s, true
		}
	}
	return "", false
}

// PaymentStatus summarises how much of a loan has been repaid.
type PaymentStatus string

const (
	PaymentStatusUnpaid        PaymentStatus = "UNPAID"
	PaymentStatusPartiallyPaid PaymentStatus = "PARTIALLY_PAID"
	PaymentStatusPaid          PaymentStatus = "PAID"
)

// PaymentMethod is how a payment was made.
type PaymentMethod string

const PaymentMethodCash PaymentMethod = "CASH"

// PaymentMethods lists the methods offered in the payment form.
var PaymentMethods = []PaymentMethod{PaymentMethodCash}

// IsKnown reports whether m is one of the documented methods.
func (m PaymentMethod) IsKnown() bool {
	for _, known := range PaymentMethods {
		if m == known {
			return true
		}
	}
	return false
}
