package models

import (
	"encoding/json"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const loanJSON = `{
	"id": "7d7b7a4e-5d3c-4c89-9f5c-0f7c3f1d2a10",
	"customerId": "0b8f7e36-2a0b-4a47-b3a5-9a1c0c5d6e21",
	"customerFullName": "Ana Lopez",
	"loanDate": "2024-05-01",
	"amount": "15000.50",
	"termMonths": 12,
	"annualInterestRate": 18.5,
	"totalPayable": 16800,
	"outstandingBalance": 16800,
	"paymentStatus": "UNPAID",
	"status": "IN_PROCESS",
	"createdAt": "2024-05-01T10:00:00Z",
	"updatedAt": "2024-05-01T10:00:00Z"
}`

func TestLoanDecodesNumericStringsAndNumbers(t *testing.T) {
	var loan Loan
	require.NoError(t, json.Unmarshal([]byte(loanJSON), &loan))

	assert.True(t, decimal.RequireFromString("15000.50").Equal(loan.Amount))
	require.NotNil(t, loan.AnnualInterestRate)
	assert.True(t, decimal.RequireFromString("18.5").Equal(*loan.AnnualInterestRate))
	assert.Nil(t, loan.Purpose)
	assert.True(t, loan.CanBeReviewed())
	assert.False(t, loan.AcceptsPayments())
}

func TestUnknownStatusIsKeptVerbatim(t *testing.T) {
	var h LoanStatusHistory
	body := `{"id":"7d7b7a4e-5d3c-4c89-9f5c-0f7c3f1d2a10","loanId":"0b8f7e36-2a0b-4a47-b3a5-9a1c0c5d6e21","status":"ON_HOLD","createdAt":"2024-05-01T10:00:00Z","updatedAt":"2024-05-01T10:00:00Z"}`
	require.NoError(t, json.Unmarshal([]byte(body), &h))

	assert.Equal(t, LoanStatus("ON_HOLD"), h.Status)
	assert.False(t, h.Status.IsKnown())
}

func TestRequestsEncodeAmountsAsNumbersAndOmitNil(t *testing.T) {
	req := RegisterLoanPaymentRequest{
		Amount:        decimal.RequireFromString("100.25"),
		PaymentMethod: PaymentMethodCash,
	}
	raw, err := json.Marshal(req)
	require.NoError(t, err)

	assert.JSONEq(t, `{"amount":100.25,"paymentMethod":"CASH"}`, string(raw))
}

func TestUpdateCustomerRequestOmitsNilFields(t *testing.T) {
	name := "Ana"
	raw, err := json.Marshal(UpdateCustomerRequest{FirstName: &name})
	require.NoError(t, err)

	assert.JSONEq(t, `{"firstName":"Ana"}`, string(raw))
}

func TestLoanStatusSlugs(t *testing.T) {
	for _, s := range LoanStatuses {
		back, ok := LoanStatusFromSlug(s.Slug())
		assert.True(t, ok)
		assert.Equal(t, s, back)
	}
	_, ok := LoanStatusFromSlug("paid")
	assert.False(t, ok)
}

func TestPageDecodesEnvelope(t *testing.T) {
	body := `{"data":[],"totalElements":0,"pageNumber":0,"totalPages":0,"isFirst":true,"isLast":true,"hasNext":false,"hasPrevious":false}`
	var page Page[Customer]
	require.NoError(t, json.Unmarshal([]byte(body), &page))

	assert.Empty(t, page.Data)
	assert.True(t, page.IsFirst)
	assert.Equal(t, 0, page.TotalPages)
}
