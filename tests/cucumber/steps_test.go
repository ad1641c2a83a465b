package cucumber

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/cucumber/godog"

	"formsmith/internal/cli"
	"formsmith/internal/form"
	"formsmith/internal/persist"
	"formsmith/internal/store"
)

// featureState carries one scenario's sandboxed home dir, the last
// command's output, and the ids created along the way. Commands may
// reference them as $FORM_ID and $QUESTION_ID.
type featureState struct {
	homeDir     string
	previousEnv *string
	stdout      bytes.Buffer
	stderr      bytes.Buffer
	exitCode    int
	formID      string
	questionID  string
}

func InitializeScenario(ctx *godog.ScenarioContext) {
	state := &featureState{}

	ctx.Before(func(ctx context.Context, sc *godog.Scenario) (context.Context, error) {
		return ctx, state.reset()
	})

	ctx.After(func(ctx context.Context, sc *godog.Scenario, err error) (context.Context, error) {
		state.cleanup()
		return ctx, nil
	})

	ctx.Step(`^a form titled "([^"]*)"$`, state.aFormTitled)
	ctx.Step(`^the form has a required short question titled "([^"]*)"$`, state.theFormHasRequiredShortQuestion)
	ctx.Step(`^the form has a checkbox question titled "([^"]*)" with options "([^"]*)"$`, state.theFormHasCheckboxQuestion)
	ctx.Step(`^I run "([^"]+)"$`, state.iRunCommand)
	ctx.Step(`^the exit code is zero$`, state.theExitCodeIsZero)
	ctx.Step(`^the exit code is non-zero$`, state.theExitCodeIsNonZero)
	ctx.Step(`^the output contains "([^"]*)"$`, state.theOutputContains)
	ctx.Step(`^the error output contains "([^"]*)"$`, state.theErrorOutputContains)
	ctx.Step(`^the form has (\d+) responses? on disk$`, state.theFormHasResponsesOnDisk)
	ctx.Step(`^no forms exist on disk$`, state.noFormsExistOnDisk)
	ctx.Step(`^the snapshot file exists$`, state.theSnapshotFileExists)
}

func (s *featureState) reset() error {
	s.stdout.Reset()
	s.stderr.Reset()
	s.exitCode = 0
	s.formID = ""
	s.questionID = ""

	dir, err := os.MkdirTemp("", "formsmith-feature-*")
	if err != nil {
		return fmt.Errorf("create temp home: %w", err)
	}
	s.homeDir = dir
	if value, ok := os.LookupEnv("FORMSMITH_HOME"); ok {
		s.previousEnv = &value
	} else {
		s.previousEnv = nil
	}
	return os.Setenv("FORMSMITH_HOME", dir)
}

func (s *featureState) cleanup() {
	if s.previousEnv == nil {
		_ = os.Unsetenv("FORMSMITH_HOME")
	} else {
		_ = os.Setenv("FORMSMITH_HOME", *s.previousEnv)
	}
	if s.homeDir != "" {
		_ = os.RemoveAll(s.homeDir)
	}
}

// openStore loads the scenario's snapshot the way the CLI does.
func (s *featureState) openStore() *store.Store {
	return store.New(store.Options{
		Adapter: persist.NewFileAdapter(persist.SnapshotPath(s.homeDir)),
	})
}

func (s *featureState) aFormTitled(title string) error {
	st := s.openStore()
	created := st.CreateForm(title, "")
	s.formID = created.ID
	return nil
}

func (s *featureState) theFormHasRequiredShortQuestion(title string) error {
	if s.formID == "" {
		return fmt.Errorf("no form created yet")
	}
	st := s.openStore()
	st.SetCurrentForm(s.formID)
	q, ok := st.AddQuestion(form.Question{Type: form.TypeShort, Title: title, Required: true})
	if !ok {
		return fmt.Errorf("add question failed")
	}
	s.questionID = q.ID
	return nil
}

func (s *featureState) theFormHasCheckboxQuestion(title, options string) error {
	if s.formID == "" {
		return fmt.Errorf("no form created yet")
	}
	var opts []form.Option
	for _, value := range strings.Split(options, ",") {
		opts = append(opts, form.Option{Value: strings.TrimSpace(value)})
	}
	st := s.openStore()
	st.SetCurrentForm(s.formID)
	q, ok := st.AddQuestion(form.Question{Type: form.TypeCheckbox, Title: title, Options: opts})
	if !ok {
		return fmt.Errorf("add question failed")
	}
	s.questionID = q.ID
	return nil
}

func (s *featureState) iRunCommand(command string) error {
	command = strings.ReplaceAll(command, "$FORM_ID", s.formID)
	command = strings.ReplaceAll(command, "$QUESTION_ID", s.questionID)
	args := strings.Fields(command)
	if len(args) == 0 {
		return fmt.Errorf("command is empty")
	}
	if args[0] == "formsmith" {
		args = args[1:]
	}
	s.stdout.Reset()
	s.stderr.Reset()
	s.exitCode = cli.Run(args, &s.stdout, &s.stderr)
	return nil
}

func (s *featureState) theExitCodeIsZero() error {
	if s.exitCode != 0 {
		return fmt.Errorf("expected exit 0, got %d (stderr: %s)", s.exitCode, s.stderr.String())
	}
	return nil
}

func (s *featureState) theExitCodeIsNonZero() error {
	if s.exitCode == 0 {
		return fmt.Errorf("expected non-zero exit code")
	}
	return nil
}

func (s *featureState) theOutputContains(text string) error {
	if !strings.Contains(s.stdout.String(), text) {
		return fmt.Errorf("expected %q in output, got %q", text, s.stdout.String())
	}
	return nil
}

func (s *featureState) theErrorOutputContains(text string) error {
	if !strings.Contains(s.stderr.String(), text) {
		return fmt.Errorf("expected %q in error output, got %q", text, s.stderr.String())
	}
	return nil
}

func (s *featureState) theFormHasResponsesOnDisk(count int) error {
	if s.formID == "" {
		return fmt.Errorf("no form created yet")
	}
	responses := s.openStore().Responses(s.formID)
	if len(responses) != count {
		return fmt.Errorf("expected %d responses, got %d", count, len(responses))
	}
	return nil
}

func (s *featureState) noFormsExistOnDisk() error {
	if forms := s.openStore().Forms(); len(forms) != 0 {
		return fmt.Errorf("expected no forms, got %d", len(forms))
	}
	return nil
}

func (s *featureState) theSnapshotFileExists() error {
	if _, err := os.Stat(persist.SnapshotPath(s.homeDir)); err != nil {
		return fmt.Errorf("expected snapshot file: %w", err)
	}
	return nil
}
