package router

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/cucumber/godog"

	"github.com/jwalitptl/woundcare-api/internal/llm"
	"github.com/jwalitptl/woundcare-api/internal/model"
)

func TestFeatures(t *testing.T) {
	suite := godog.TestSuite{
		ScenarioInitializer: InitializeScenario,
		Options: &godog.Options{
			Format:   "pretty",
			Paths:    []string{"features"},
			TestingT: t,
		},
	}

	if suite.Run() != 0 {
		t.Fatal("non-zero status returned, failed to run feature tests")
	}
}

// scenarioContext holds state for a single scenario
type scenarioContext struct {
	server   *testServer
	last     *httptest.ResponseRecorder
	prompt   string
	deviceID string
}

func InitializeScenario(sc *godog.ScenarioContext) {
	sctx := &scenarioContext{}

	sc.Before(func(ctx context.Context, _ *godog.Scenario) (context.Context, error) {
		*sctx = scenarioContext{}
		return ctx, nil
	})

	sc.Step(`^a new browser session$`, sctx.aNewBrowserSession)
	sc.Step(`^the note generator fails with a network error$`, sctx.generatorFailsWithNetworkError)
	sc.Step(`^the note generator replies "([^"]*)"$`, sctx.generatorReplies)

	sc.Step(`^I select "([^"]*)" as "([^"]*)"$`, sctx.iSelect)
	sc.Step(`^I request the wound prompt$`, sctx.iRequestPrompt("/api/v1/wound/prompt"))
	sc.Step(`^I request the device prompt$`, sctx.iRequestPrompt("/api/v1/devices/prompt"))
	sc.Step(`^I generate the wound note$`, sctx.iGenerate("/api/v1/wound/note"))
	sc.Step(`^I generate the device note$`, sctx.iGenerate("/api/v1/devices/note"))
	sc.Step(`^I add a device$`, sctx.iAddADevice)
	sc.Step(`^I set lumen (\d+) patency to "([^"]*)"$`, sctx.iSetLumenPatency)
	sc.Step(`^I set the device "([^"]*)" to "([^"]*)"$`, sctx.iSetTheDeviceField)

	sc.Step(`^the prompt contains "([^"]*)"$`, sctx.thePromptContains)
	sc.Step(`^the prompt does not contain "([^"]*)"$`, sctx.thePromptDoesNotContain)
	sc.Step(`^the response status is (\d+)$`, sctx.theResponseStatusIs)
	sc.Step(`^the response message is "([^"]*)"$`, sctx.theResponseMessageIs)
	sc.Step(`^the failure kind is "([^"]*)"$`, sctx.theFailureKindIs)
	sc.Step(`^the wound field "([^"]*)" is still "([^"]*)"$`, sctx.theWoundFieldIsStill)
	sc.Step(`^no wound note is stored$`, sctx.noWoundNoteIsStored)
	sc.Step(`^the stored wound note is "([^"]*)"$`, sctx.theStoredWoundNoteIs)
}

func (s *scenarioContext) aNewBrowserSession() error {
	s.server = newTestServer()
	return nil
}

func (s *scenarioContext) generatorFailsWithNetworkError() error {
	s.server.generator.set("", &llm.GenerationError{
		Kind: llm.KindNetwork,
		Err:  &net.OpError{Op: "dial", Net: "tcp", Err: errors.New("connection refused")},
	})
	return nil
}

func (s *scenarioContext) generatorReplies(text string) error {
	s.server.generator.set(text, nil)
	return nil
}

func (s *scenarioContext) expect(w *httptest.ResponseRecorder, code int) error {
	s.last = w
	if w.Code != code {
		return fmt.Errorf("expected status %d, got %d: %s", code, w.Code, w.Body.String())
	}
	return nil
}

func (s *scenarioContext) iSelect(name, value string) error {
	return s.expect(s.server.do(http.MethodPost, "/api/v1/wound/select", field(name, value)), http.StatusOK)
}

func (s *scenarioContext) iRequestPrompt(path string) func() error {
	return func() error {
		w := s.server.do(http.MethodGet, path, nil)
		if err := s.expect(w, http.StatusOK); err != nil {
			return err
		}
		s.prompt = w.Body.String()
		return nil
	}
}

func (s *scenarioContext) iGenerate(path string) func() error {
	return func() error {
		s.last = s.server.do(http.MethodPost, path, nil)
		return nil
	}
}

func (s *scenarioContext) iAddADevice() error {
	w := s.server.do(http.MethodPost, "/api/v1/devices", nil)
	if err := s.expect(w, http.StatusCreated); err != nil {
		return err
	}
	var d model.DeviceRecord
	if _, err := decodeEnvelope(w.Body.Bytes(), &d); err != nil {
		return err
	}
	s.deviceID = d.ID.String()
	return nil
}

func (s *scenarioContext) iSetLumenPatency(index int, patency string) error {
	path := fmt.Sprintf("/api/v1/devices/%s/lumens/%d", s.deviceID, index)
	return s.expect(s.server.do(http.MethodPatch, path, field("patency", patency)), http.StatusOK)
}

func (s *scenarioContext) iSetTheDeviceField(name, value string) error {
	path := "/api/v1/devices/" + s.deviceID
	return s.expect(s.server.do(http.MethodPatch, path, field(name, value)), http.StatusOK)
}

func (s *scenarioContext) thePromptContains(text string) error {
	if !strings.Contains(s.prompt, text) {
		return fmt.Errorf("prompt %q does not contain %q", s.prompt, text)
	}
	return nil
}

func (s *scenarioContext) thePromptDoesNotContain(text string) error {
	if strings.Contains(s.prompt, text) {
		return fmt.Errorf("prompt %q unexpectedly contains %q", s.prompt, text)
	}
	return nil
}

func (s *scenarioContext) theResponseStatusIs(code int) error {
	if s.last == nil {
		return errors.New("no request was made")
	}
	if s.last.Code != code {
		return fmt.Errorf("expected status %d, got %d: %s", code, s.last.Code, s.last.Body.String())
	}
	return nil
}

func (s *scenarioContext) theResponseMessageIs(message string) error {
	resp, err := decodeEnvelope(s.last.Body.Bytes(), nil)
	if err != nil {
		return err
	}
	if resp.Message != message {
		return fmt.Errorf("expected message %q, got %q", message, resp.Message)
	}
	return nil
}

func (s *scenarioContext) theFailureKindIs(kind string) error {
	var data map[string]string
	if _, err := decodeEnvelope(s.last.Body.Bytes(), &data); err != nil {
		return err
	}
	if data["kind"] != kind {
		return fmt.Errorf("expected failure kind %q, got %q", kind, data["kind"])
	}
	return nil
}

func (s *scenarioContext) theWoundFieldIsStill(name, value string) error {
	w := s.server.do(http.MethodGet, "/api/v1/wound", nil)
	if w.Code != http.StatusOK {
		return fmt.Errorf("get wound: status %d", w.Code)
	}
	var wound map[string]any
	if _, err := decodeEnvelope(w.Body.Bytes(), &wound); err != nil {
		return err
	}
	if got := fmt.Sprint(wound[name]); got != value {
		return fmt.Errorf("expected %s %q, got %q", name, value, got)
	}
	return nil
}

func (s *scenarioContext) noWoundNoteIsStored() error {
	w := s.server.do(http.MethodGet, "/api/v1/wound/note", nil)
	if w.Code != http.StatusNotFound {
		return fmt.Errorf("expected no stored note, got status %d: %s", w.Code, w.Body.String())
	}
	return nil
}

func (s *scenarioContext) theStoredWoundNoteIs(text string) error {
	w := s.server.do(http.MethodGet, "/api/v1/wound/note", nil)
	if w.Code != http.StatusOK {
		return fmt.Errorf("get note: status %d", w.Code)
	}
	if w.Body.String() != text {
		return fmt.Errorf("expected note %q, got %q", text, w.Body.String())
	}
	return nil
}
