package customers

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/cucumber/godog"
)

// TestContext interface defines the methods needed from the main test context
type TestContext interface {
	GET(path string) error
	POSTForm(path string, form url.Values) error
}

// RegisterSteps registers customer form and search steps
func RegisterSteps(ctx *godog.ScenarioContext, tc TestContext) {
	steps := &customerSteps{tc: tc}

	ctx.Step(`^I search customers for "([^"]*)"$`, steps.search)
	ctx.Step(`^I submit the new customer form with:$`, steps.submitNewCustomer)
	ctx.Step(`^I validate the "([^"]*)" field "([^"]*)" with "([^"]*)"$`, steps.validateField)
}

type customerSteps struct {
	tc TestContext
}

func (s *customerSteps) search(ctx context.Context, term string) error {
	return s.tc.GET("/dashboard/customers/search?" + url.Values{"term": {term}}.Encode())
}

// submitNewCustomer posts a two-column field/value table.
func (s *customerSteps) submitNewCustomer(ctx context.Context, table *godog.Table) error {
	form := url.Values{}
	for _, row := range table.Rows {
		if len(row.Cells) != 2 {
			return fmt.Errorf("expected field and value columns, got %d cells", len(row.Cells))
		}
		form.Set(strings.TrimSpace(row.Cells[0].Value), row.Cells[1].Value)
	}
	return s.tc.POSTForm("/dashboard/customers/new", form)
}

func (s *customerSteps) validateField(ctx context.Context, schema, field, value string) error {
	q := url.Values{"schema": {schema}, "field": {field}, "value": {value}}
	return s.tc.GET("/dashboard/validate?" + q.Encode())
}
