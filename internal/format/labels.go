package format

import (
	"loandesk/internal/models"
	platformstrings "loandesk/pkg/platform/strings"
)

var loanStatusLabels = map[models.LoanStatus]string{
	models.LoanStatusApproved:  "Aprobado",
	models.LoanStatusInProcess: "En proceso",
	models.LoanStatusRejected:  "Rechazado",
}

var paymentStatusLabels = map[models.PaymentStatus]string{
	models.PaymentStatusPaid:          "Pagado",
	models.PaymentStatusUnpaid:        "No pagado",
	models.PaymentStatusPartiallyPaid: "Pagado parcialmente",
}

var paymentMethodLabels = map[models.PaymentMethod]string{
	models.PaymentMethodCash: "Efectivo",
}

// Badge is a status value with its display label and a CSS variant.
type Badge struct {
	Label   string
	Variant string
}

// LoanStatus labels a loan status. Unknown values are humanized.
func LoanStatus(status models.LoanStatus) Badge {
	variant := "secondary"
	switch status {
	case models.LoanStatusApproved:
		variant = "success"
	case models.LoanStatusRejected:
		variant = "destructive"
	case models.LoanStatusInProcess:
		variant = "warning"
	}
	return Badge{Label: label(loanStatusLabels, status), Variant: variant}
}

// PaymentStatus labels a payment status; nil renders "-".
func PaymentStatus(status *models.PaymentStatus) Badge {
	if status == nil {
		return Badge{Label: placeholder, Variant: "outline"}
	}
	variant := "secondary"
	switch *status {
	case models.PaymentStatusPaid:
		variant = "success"
	case models.PaymentStatusUnpaid:
		variant = "destructive"
	case models.PaymentStatusPartiallyPaid:
		variant = "warning"
	}
	return Badge{Label: label(paymentStatusLabels, *status), Variant: variant}
}

// PaymentMethod labels a payment method.
func PaymentMethod(method models.PaymentMethod) Badge {
	return Badge{Label: label(paymentMethodLabels, method), Variant: "outline"}
}

func label[K ~string](labels map[K]string, value K) string {
	if l, ok := labels[value]; ok {
		return l
	}
	if value == "" {
		return placeholder
	}
	return platformstrings.Humanize(string(value))
}
