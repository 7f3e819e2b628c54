package api

import (
	"context"
	"net/http"

	"loandesk/internal/models"
	"loandesk/internal/validation"
	"loandesk/pkg/domain"
)

const loansPath = "/api/v1/loans"

// GetLoan fetches one loan with its server-computed balances.
func (c *Client) GetLoan(ctx context.Context, id domain.LoanID) (*models.Loan, error) {
	var loan models.Loan
	if err := c.do(ctx, call{operation: "get_loan", method: http.MethodGet, path: loansPath + "/" + id.String()}, &loan); err != nil {
		return nil, err
	}
	return &loan, nil
}

// ApproveLoan moves an IN_PROCESS loan to APPROVED.
func (c *Client) ApproveLoan(ctx context.Context, id domain.LoanID, req models.ReviewLoanApplicationRequest) (*models.Loan, error) {
	return c.review(ctx, "approve_loan", id, "approve", req)
}

// RejectLoan moves an IN_PROCESS loan to REJECTED.
func (c *Client) RejectLoan(ctx context.Context, id domain.LoanID, req models.ReviewLoanApplicationRequest) (*models.Loan, error) {
	return c.review(ctx, "reject_loan", id, "reject", req)
}

func (c *Client) review(ctx context.Context, operation string, id domain.LoanID, action string, req models.ReviewLoanApplicationRequest) (*models.Loan, error) {
	if err := validation.Payload(ctx, req); err != nil {
		return nil, err
	}
	var loan models.Loan
	path := loansPath + "/" + id.String() + "/" + action
	if err := c.do(ctx, call{operation: operation, method: http.MethodPost, path: path, body: req}, &loan); err != nil {
		return nil, err
	}
	return &loan, nil
}

// ListLoanStatusHistory returns one page of a loan's status changes.
func (c *Client) ListLoanStatusHistory(ctx context.Context, id domain.LoanID, params models.PageParams) (*models.Page[models.LoanStatusHistory], error) {
	var page models.Page[models.LoanStatusHistory]
	path := loansPath + "/" + id.String() + "/history" + newQuery().page(params).encode()
	if err := c.do(ctx, call{operation: "list_loan_status_history", method: http.MethodGet, path: path}, &page); err != nil {
		return nil, err
	}
	return &page, nil
}

// ListLoanPayments returns one page of a loan's payments.
func (c *Client) ListLoanPayments(ctx context.Context, id domain.LoanID, params models.PageParams) (*models.Page[models.LoanPayment], error) {
	var page models.Page[models.LoanPayment]
	path := loansPath + "/" + id.String() + "/payments" + newQuery().page(params).encode()
	if err := c.do(ctx, call{operation: "list_loan_payments", method: http.MethodGet, path: path}, &page); err != nil {
		return nil, err
	}
	return &page, nil
}

// RegisterLoanPayment records a payment against an APPROVED loan.
func (c *Client) RegisterLoanPayment(ctx context.Context, id domain.LoanID, req models.RegisterLoanPaymentRequest) (*models.LoanPayment, error) {
	if err := validation.Payload(ctx, req); err != nil {
		return nil, err
	}
	var payment models.LoanPayment
	path := loansPath + "/" + id.String() + "/payments"
	if err := c.do(ctx, call{operation: "register_loan_payment", method: http.MethodPost, path: path, body: req}, &payment); err != nil {
		return nil, err
	}
	return &payment, nil
}
