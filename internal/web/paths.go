package web

import (
	"loandesk/internal/models"
	"loandesk/pkg/domain"
)

const (
	customersPath   = "/dashboard/customers"
	newCustomerPath = "/dashboard/customers/new"
	searchPath      = "/dashboard/customers/search"
	validatePath    = "/dashboard/validate"
)

func customerPath(id domain.CustomerID, suffix string) string {
	return customersPath + "/" + id.String() + suffix
}

func loansTabPath(id domain.CustomerID, status models.LoanStatus) string {
	slug := status.Slug()
	if slug == "" {
		slug = models.LoanStatusInProcess.Slug()
	}
	return customerPath(id, "/loans/"+slug)
}

func loanPath(customerID domain.CustomerID, loanID domain.LoanID, suffix string) string {
	return customerPath(customerID, "/loans/"+loanID.String()+suffix)
}
