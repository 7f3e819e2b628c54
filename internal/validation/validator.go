// Package validation holds the request schemas of the dashboard forms and the
// shape rules for core API responses.
//
// Form schemas are structs of raw, posted strings tagged with
// go-playground/validator rules. Each failed rule is reported once per field
// with the Spanish message staff see under the input.
package validation

import (
	"context"
	"errors"
	"reflect"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"

	"loandesk/internal/models"
	dErrors "loandesk/pkg/domain-errors"
	pstrings "loandesk/pkg/platform/strings"
	"loandesk/pkg/requestcontext"
)

var (
	validate = newValidator()

	isoDatePattern = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)
)

// Numeric input is bounded before any arithmetic: comparing decimals rescales
// both sides to a common exponent, so "1e50000000" would allocate a number with
// fifty million digits.
const (
	maxNumberLen   = 40
	maxNumberScale = 32
)

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		if name, _, _ := strings.Cut(f.Tag.Get("form"), ","); name != "" && name != "-" {
			return name
		}
		if name, _, _ := strings.Cut(f.Tag.Get("json"), ","); name != "" && name != "-" {
			return name
		}
		return f.Name
	})

	v.RegisterCustomTypeFunc(func(field reflect.Value) any {
		if d, ok := field.Interface().(decimal.Decimal); ok {
			return d.String()
		}
		return nil
	}, decimal.Decimal{})

	mustRegister(v, "digits", digitsRule)
	mustRegister(v, "isodate", func(fl validator.FieldLevel) bool {
		return isoDatePattern.MatchString(fl.Field().String())
	})
	mustRegister(v, "decimal", func(fl validator.FieldLevel) bool {
		_, ok := parseNumber(fl.Field().String())
		return ok
	})
	mustRegister(v, "integer", func(fl validator.FieldLevel) bool {
		d, ok := parseNumber(fl.Field().String())
		return ok && d.IsInteger()
	})
	mustRegister(v, "decimal_gt", compareRule(func(c int) bool { return c > 0 }))
	mustRegister(v, "decimal_gte", compareRule(func(c int) bool { return c >= 0 }))
	mustRegister(v, "decimal_lte", compareRule(func(c int) bool { return c <= 0 }))
	mustRegister(v, "payment_method", func(fl validator.FieldLevel) bool {
		return models.PaymentMethod(fl.Field().String()).IsKnown()
	})
	if err := v.RegisterValidationCtx("past", pastDateRule); err != nil {
		panic(err)
	}
	return v
}

func mustRegister(v *validator.Validate, tag string, fn validator.Func) {
	if err := v.RegisterValidation(tag, fn); err != nil {
		panic(err)
	}
}

// digitsRule checks for exactly N ASCII digits, N being the tag parameter.
func digitsRule(fl validator.FieldLevel) bool {
	s := fl.Field().String()
	return len(s) == int(mustParseInt(fl.Param())) && pstrings.IsDigits(s)
}

// parseNumber parses a decimal whose length and exponent stay within what a
// money amount, rate or term can need.
func parseNumber(s string) (decimal.Decimal, bool) {
	if len(s) > maxNumberLen {
		return decimal.Decimal{}, false
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Decimal{}, false
	}
	if exp := d.Exponent(); exp > maxNumberScale || exp < -maxNumberScale {
		return decimal.Decimal{}, false
	}
	return d, true
}

func mustParseInt(s string) int64 {
	d, err := decimal.NewFromString(s)
	if err != nil {
		panic("validation: bad rule parameter " + s)
	}
	return d.IntPart()
}

// compareRule compares the field, parsed as a decimal, with the tag parameter.
// Unparseable or out-of-range input fails; the "decimal" rule reports it first.
func compareRule(ok func(cmp int) bool) validator.Func {
	return func(fl validator.FieldLevel) bool {
		d, valid := parseNumber(fl.Field().String())
		if !valid {
			return false
		}
		bound, err := decimal.NewFromString(fl.Param())
		if err != nil {
			panic("validation: bad rule parameter " + fl.Param())
		}
		return ok(d.Cmp(bound))
	}
}

// pastDateRule accepts YYYY-MM-DD dates strictly before the request's day (UTC).
func pastDateRule(ctx context.Context, fl validator.FieldLevel) bool {
	today := requestcontext.Now(ctx).UTC().Format("2006-01-02")
	return fl.Field().String() < today
}

// check runs the struct rules of schema and converts failures to Errors
// wrapped as a validation error. Only the first failed rule per field is kept.
func check(ctx context.Context, schema any) error {
	err := validate.StructCtx(ctx, schema)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return dErrors.Wrap(err, dErrors.CodeInternal, "validation rules misconfigured")
	}

	t := reflect.TypeOf(schema)
	if t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	out := make(Errors, 0, len(verrs))
	for _, fe := range verrs {
		if out.Message(fe.Field()) != "" {
			continue
		}
		out = append(out, FieldError{
			Field:   fe.Field(),
			Message: messageFor(messageKey(t, fe), fe.Tag()),
		})
	}
	return dErrors.Wrap(out, dErrors.CodeValidation, "invalid form")
}

// Payload checks an outgoing request payload before it is sent. The rules are
// the ones the matching form applies.
func Payload(ctx context.Context, payload any) error {
	return check(ctx, payload)
}

// messageKey prefers an explicit msg tag so schemas sharing a field name can
// carry different wording.
func messageKey(t reflect.Type, fe validator.FieldError) string {
	if sf, ok := t.FieldByName(fe.StructField()); ok {
		if key := sf.Tag.Get("msg"); key != "" {
			return key
		}
	}
	return fe.Field()
}
