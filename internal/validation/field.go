package validation

import (
	"context"
	"errors"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	dErrors "loandesk/pkg/domain-errors"
)

// Schema names accepted by Field.
const (
	SchemaCustomer       = "customer"
	SchemaCustomerUpdate = "customer-update"
	SchemaLoan           = "loan"
	SchemaReview         = "review"
	SchemaPayment        = "payment"
)

var schemas = map[string]reflect.Type{
	SchemaCustomer:       reflect.TypeOf(CustomerForm{}),
	SchemaCustomerUpdate: reflect.TypeOf(UpdateCustomerForm{}),
	SchemaLoan:           reflect.TypeOf(LoanApplicationForm{}),
	SchemaReview:         reflect.TypeOf(ReviewForm{}),
	SchemaPayment:        reflect.TypeOf(PaymentForm{}),
}

// numericFields get the same blank-means-zero treatment as the full schema.
var numericFields = map[string]bool{
	"amount":             true,
	"termMonths":         true,
	"annualInterestRate": true,
}

// Field checks one form field against its own rule, without the rest of the
// schema, and returns the message to show ("" when valid). Unknown schemas or
// fields are invalid input.
func Field(ctx context.Context, schema, field, value string) (string, error) {
	t, ok := schemas[schema]
	if !ok {
		return "", dErrors.New(dErrors.CodeInvalidInput, "unknown schema")
	}
	sf, ok := fieldByForm(t, field)
	if !ok {
		return "", dErrors.New(dErrors.CodeInvalidInput, "unknown field")
	}

	tag := strings.TrimPrefix(sf.Tag.Get("validate"), "omitnil,")
	if tag == "" {
		return "", nil
	}
	if field != "birthDate" {
		value = strings.TrimSpace(value)
	}
	if numericFields[field] {
		value = numberOrZero(value)
	}

	err := validate.VarCtx(ctx, value, tag)
	if err == nil {
		return "", nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return "", dErrors.Wrap(err, dErrors.CodeInternal, "validation rules misconfigured")
	}
	key := sf.Tag.Get("msg")
	if key == "" {
		key = field
	}
	return messageFor(key, verrs[0].Tag()), nil
}

func fieldByForm(t reflect.Type, name string) (reflect.StructField, bool) {
	for i := 0; i < t.NumField(); i++ {
		sf := t.Field(i)
		if formName, _, _ := strings.Cut(sf.Tag.Get("form"), ","); formName == name {
			return sf, true
		}
	}
	return reflect.StructField{}, false
}

// Response checks a decoded core API response against its shape rules (non-nil
// ids, positive term, non-negative page counters).
func Response(v any) error {
	return validate.Struct(v)
}
