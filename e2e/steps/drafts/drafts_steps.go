package drafts

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/cucumber/godog"
)

// TestContext interface defines the methods needed from the main test context
type TestContext interface {
	Do(method, path string, body any) error
	GetResponseField(path string) (any, error)
	GetLastResponseStatus() int
	DraftID() string
	SetDraftID(id string)
}

// RegisterSteps registers draft editing and submission steps
func RegisterSteps(ctx *godog.ScenarioContext, tc TestContext) {
	steps := &draftSteps{tc: tc}

	ctx.Step(`^a new draft$`, steps.newDraft)
	ctx.Step(`^I set "([^"]*)" to "([^"]*)"$`, steps.setField)
	ctx.Step(`^I declare (\d+) wi(?:fe|ves)$`, steps.declareSpouses)
	ctx.Step(`^I set wife (\d+) "([^"]*)" to "([^"]*)"$`, steps.setSpouseField)
	ctx.Step(`^I add a child$`, steps.addChild)
	ctx.Step(`^I set child (\d+) "([^"]*)" to "([^"]*)"$`, steps.setChildField)
	ctx.Step(`^I remove child (\d+)$`, steps.removeChild)
	ctx.Step(`^I preview the payload$`, steps.previewPayload)
	ctx.Step(`^I validate the draft$`, steps.validateDraft)
	ctx.Step(`^I submit the draft$`, steps.submitDraft)
	ctx.Step(`^I discard the draft$`, steps.discardDraft)
	ctx.Step(`^I fetch the draft$`, steps.fetchDraft)
}

type draftSteps struct {
	tc TestContext
}

func (s *draftSteps) path(suffix string) string {
	return "/v1/drafts/" + s.tc.DraftID() + suffix
}

// edit issues a mutation and fails the step unless it succeeded.
func (s *draftSteps) edit(method, suffix string, body any) error {
	if err := s.tc.Do(method, s.path(suffix), body); err != nil {
		return err
	}
	if status := s.tc.GetLastResponseStatus(); status >= http.StatusBadRequest {
		return fmt.Errorf("%s %s returned %d", method, suffix, status)
	}
	return nil
}

func fieldBody(field, value string) map[string]string {
	return map[string]string{"field": field, "value": value}
}

// ordinal turns a 1-based position from a feature file into a path index.
func ordinal(n int) string {
	return strconv.Itoa(n - 1)
}

func (s *draftSteps) newDraft() error {
	if err := s.tc.Do(http.MethodPost, "/v1/drafts", nil); err != nil {
		return err
	}
	if status := s.tc.GetLastResponseStatus(); status != http.StatusCreated {
		return fmt.Errorf("expected 201 creating draft, got %d", status)
	}
	id, err := s.tc.GetResponseField("id")
	if err != nil {
		return err
	}
	s.tc.SetDraftID(fmt.Sprint(id))
	return nil
}

func (s *draftSteps) setField(field, value string) error {
	return s.edit(http.MethodPatch, "/fields", fieldBody(field, value))
}

func (s *draftSteps) declareSpouses(count int) error {
	return s.edit(http.MethodPut, "/spouses", map[string]int{"count": count})
}

func (s *draftSteps) setSpouseField(n int, field, value string) error {
	return s.edit(http.MethodPatch, "/spouses/"+ordinal(n), fieldBody(field, value))
}

func (s *draftSteps) addChild() error {
	return s.edit(http.MethodPost, "/children", nil)
}

func (s *draftSteps) setChildField(n int, field, value string) error {
	return s.edit(http.MethodPatch, "/children/"+ordinal(n), fieldBody(field, value))
}

func (s *draftSteps) removeChild(n int) error {
	return s.edit(http.MethodDelete, "/children/"+ordinal(n), nil)
}

func (s *draftSteps) previewPayload() error {
	return s.tc.Do(http.MethodGet, s.path("/payload"), nil)
}

func (s *draftSteps) validateDraft() error {
	return s.tc.Do(http.MethodPost, s.path("/validate"), nil)
}

func (s *draftSteps) submitDraft() error {
	return s.tc.Do(http.MethodPost, s.path("/submit"), nil)
}

func (s *draftSteps) discardDraft() error {
	return s.tc.Do(http.MethodDelete, s.path(""), nil)
}

func (s *draftSteps) fetchDraft() error {
	return s.tc.Do(http.MethodGet, s.path(""), nil)
}
