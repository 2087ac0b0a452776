package common

import (
	"fmt"
	"strconv"

	"github.com/cucumber/godog"
)

// TestContext interface defines the methods needed from the main test context
type TestContext interface {
	Do(method, path string, body any) error
	GetResponseField(path string) (any, error)
	GetLastResponseStatus() int
	GetLastResponseBody() []byte
}

// RegisterSteps registers generic request and assertion steps
func RegisterSteps(ctx *godog.ScenarioContext, tc TestContext) {
	steps := &commonSteps{tc: tc}

	ctx.Step(`^I send a (GET|POST|DELETE) request to "([^"]*)"$`, steps.sendRequest)
	ctx.Step(`^the response status should be (\d+)$`, steps.statusShouldBe)
	ctx.Step(`^the response field "([^"]*)" should be "([^"]*)"$`, steps.fieldShouldBe)
	ctx.Step(`^the response field "([^"]*)" should be null$`, steps.fieldShouldBeNull)
	ctx.Step(`^the response field "([^"]*)" should have (\d+) entr(?:y|ies)$`, steps.fieldShouldHaveEntries)
	ctx.Step(`^the response error should be "([^"]*)"$`, steps.errorShouldBe)
}

type commonSteps struct {
	tc TestContext
}

func (s *commonSteps) sendRequest(method, path string) error {
	return s.tc.Do(method, path, nil)
}

func (s *commonSteps) statusShouldBe(expected int) error {
	if got := s.tc.GetLastResponseStatus(); got != expected {
		return fmt.Errorf("expected status %d, got %d: %s", expected, got, s.tc.GetLastResponseBody())
	}
	return nil
}

func (s *commonSteps) fieldShouldBe(path, expected string) error {
	value, err := s.tc.GetResponseField(path)
	if err != nil {
		return err
	}
	if got := render(value); got != expected {
		return fmt.Errorf("expected %s to be %q, got %q", path, expected, got)
	}
	return nil
}

func (s *commonSteps) fieldShouldBeNull(path string) error {
	value, err := s.tc.GetResponseField(path)
	if err != nil {
		return err
	}
	if value != nil {
		return fmt.Errorf("expected %s to be null, got %v", path, value)
	}
	return nil
}

func (s *commonSteps) fieldShouldHaveEntries(path string, n int) error {
	value, err := s.tc.GetResponseField(path)
	if err != nil {
		return err
	}
	list, ok := value.([]any)
	if !ok {
		return fmt.Errorf("expected %s to be a list, got %T", path, value)
	}
	if len(list) != n {
		return fmt.Errorf("expected %s to have %d entries, got %d", path, n, len(list))
	}
	return nil
}

func (s *commonSteps) errorShouldBe(code string) error {
	return s.fieldShouldBe("error", code)
}

// render prints JSON scalars the way they read in a feature file.
func render(v any) string {
	switch value := v.(type) {
	case nil:
		return "null"
	case string:
		return value
	case float64:
		return strconv.FormatFloat(value, 'f', -1, 64)
	default:
		return fmt.Sprint(value)
	}
}
