package api

import (
	"context"
	"net/http"

	"loandesk/internal/models"
	"loandesk/internal/validation"
	"loandesk/pkg/domain"
)

const customersPath = "/api/v1/customers"

// ListCustomers returns one page of customers, optionally filtered by a search
// term.
func (c *Client) ListCustomers(ctx context.Context, params models.CustomerListParams) (*models.Page[models.Customer], error) {
	q := newQuery().text("searchTerm", params.SearchTerm).page(params.PageParams)
	var page models.Page[models.Customer]
	if err := c.do(ctx, call{operation: "list_customers", method: http.MethodGet, path: customersPath + q.encode()}, &page); err != nil {
		return nil, err
	}
	return &page, nil
}

// GetCustomer fetches one customer.
func (c *Client) GetCustomer(ctx context.Context, id domain.CustomerID) (*models.Customer, error) {
	var customer models.Customer
	if err := c.do(ctx, call{operation: "get_customer", method: http.MethodGet, path: customersPath + "/" + id.String()}, &customer); err != nil {
		return nil, err
	}
	return &customer, nil
}

// CreateCustomer registers a customer.
func (c *Client) CreateCustomer(ctx context.Context, req models.CreateCustomerRequest) (*models.Customer, error) {
	if err := validation.Payload(ctx, req); err != nil {
		return nil, err
	}
	var customer models.Customer
	if err := c.do(ctx, call{operation: "create_customer", method: http.MethodPost, path: customersPath, body: req}, &customer); err != nil {
		return nil, err
	}
	return &customer, nil
}

// UpdateCustomer replaces the submitted fields of a customer.
func (c *Client) UpdateCustomer(ctx context.Context, id domain.CustomerID, req models.UpdateCustomerRequest) (*models.Customer, error) {
	if err := validation.Payload(ctx, req); err != nil {
		return nil, err
	}
	var customer models.Customer
	if err := c.do(ctx, call{operation: "update_customer", method: http.MethodPut, path: customersPath + "/" + id.String(), body: req}, &customer); err != nil {
		return nil, err
	}
	return &customer, nil
}

// DeleteCustomer removes a customer. The server refuses when the customer has
// loans; its message is returned in the *Error.
func (c *Client) DeleteCustomer(ctx context.Context, id domain.CustomerID) error {
	return c.do(ctx, call{operation: "delete_customer", method: http.MethodDelete, path: customersPath + "/" + id.String()}, nil)
}

// ListCustomerLoans returns one page of a customer's loans, optionally filtered
// by status.
func (c *Client) ListCustomerLoans(ctx context.Context, id domain.CustomerID, params models.LoanListParams) (*models.Page[models.Loan], error) {
	q := newQuery().text("status", params.Status).page(params.PageParams)
	var page models.Page[models.Loan]
	path := customersPath + "/" + id.String() + "/loans" + q.encode()
	if err := c.do(ctx, call{operation: "list_customer_loans", method: http.MethodGet, path: path}, &page); err != nil {
		return nil, err
	}
	return &page, nil
}

// SubmitLoanApplication files a new loan application for a customer. The loan
// starts IN_PROCESS.
func (c *Client) SubmitLoanApplication(ctx context.Context, id domain.CustomerID, req models.SubmitLoanApplicationRequest) (*models.Loan, error) {
	if err := validation.Payload(ctx, req); err != nil {
		return nil, err
	}
	var loan models.Loan
	path := customersPath + "/" + id.String() + "/loans"
	if err := c.do(ctx, call{operation: "submit_loan_application", method: http.MethodPost, path: path, body: req}, &loan); err != nil {
		return nil, err
	}
	return &loan, nil
}
