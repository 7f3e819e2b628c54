package e2e

import (
	"github.com/cucumber/godog"

	"loandesk/e2e/steps/common"
	"loandesk/e2e/steps/customers"
)

// RegisterSteps registers all step definitions from modular packages
func RegisterSteps(ctx *godog.ScenarioContext, tc *TestContext) {
	common.RegisterSteps(ctx, tc)
	customers.RegisterSteps(ctx, tc)
}
