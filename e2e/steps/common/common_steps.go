package common

import (
	"context"
	"fmt"
	"strings"

	"github.com/cucumber/godog"
)

// TestContext interface defines the methods needed from the main test context
type TestContext interface {
	GET(path string) error
	Follow() error
	Status() int
	Location() string
	Body() string
}

// RegisterSteps registers navigation and response assertions
func RegisterSteps(ctx *godog.ScenarioContext, tc TestContext) {
	steps := &commonSteps{tc: tc}

	ctx.Step(`^I open "([^"]*)"$`, steps.open)
	ctx.Step(`^I follow the redirect$`, steps.follow)
	ctx.Step(`^the response status should be (\d+)$`, steps.statusShouldBe)
	ctx.Step(`^I should be redirected to "([^"]*)"$`, steps.redirectedTo)
	ctx.Step(`^the page should contain "([^"]*)"$`, steps.pageContains)
	ctx.Step(`^the page should not contain "([^"]*)"$`, steps.pageNotContains)
}

type commonSteps struct {
	tc TestContext
}

func (s *commonSteps) open(ctx context.Context, path string) error {
	return s.tc.GET(path)
}

func (s *commonSteps) follow(ctx context.Context) error {
	return s.tc.Follow()
}

func (s *commonSteps) statusShouldBe(ctx context.Context, status int) error {
	if s.tc.Status() != status {
		return fmt.Errorf("expected status %d, got %d", status, s.tc.Status())
	}
	return nil
}

func (s *commonSteps) redirectedTo(ctx context.Context, location string) error {
	if s.tc.Status() != 303 {
		return fmt.Errorf("expected a 303 redirect, got %d", s.tc.Status())
	}
	if s.tc.Location() != location {
		return fmt.Errorf("expected redirect to %q, got %q", location, s.tc.Location())
	}
	return nil
}

func (s *commonSteps) pageContains(ctx context.Context, text string) error {
	if !strings.Contains(s.tc.Body(), text) {
		return fmt.Errorf("page does not contain %q", text)
	}
	return nil
}

func (s *commonSteps) pageNotContains(ctx context.Context, text string) error {
	if strings.Contains(s.tc.Body(), text) {
		return fmt.Errorf("page unexpectedly contains %q", text)
	}
	return nil
}
