package e2e

import (
	"github.com/cucumber/godog"

	"memberreg/e2e/steps/common"
	"memberreg/e2e/steps/drafts"
)

// RegisterSteps registers all step definitions from modular packages
func RegisterSteps(ctx *godog.ScenarioContext, tc *TestContext) {
	// Generic requests and response assertions
	common.RegisterSteps(ctx, tc)

	// Draft editing and submission
	drafts.RegisterSteps(ctx, tc)
}
