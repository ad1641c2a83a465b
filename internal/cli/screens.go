package cli

import (
	"context"
	"fmt"
	"io"

	tea "github.com/charmbracelet/bubbletea"

	"formsmith/internal/analytics"
	"formsmith/internal/ui/builder"
	"formsmith/internal/ui/dashboard"
	"formsmith/internal/ui/preview"
	"formsmith/internal/ui/responses"
)

// runProgram launches a Bubble Tea model and returns its final state.
// Tests replace it to drive screens without a terminal.
var runProgram = func(model tea.Model, stdout io.Writer) (tea.Model, error) {
	program := tea.NewProgram(model, tea.WithOutput(stdout), tea.WithAltScreen())
	return program.Run()
}

// openDashboard loops the dashboard screen, following the user into
// the builder, preview, or responses screens and back until they quit.
func openDashboard(e *env, noColor bool, stdout io.Writer) error {
	for {
		model := dashboard.NewModel(e.store, dashboard.Options{NoColor: noColor})
		final, err := runProgram(model, stdout)
		if err != nil {
			return fmt.Errorf("dashboard: %w", err)
		}
		done, ok := final.(dashboard.Model)
		if !ok {
			return fmt.Errorf("dashboard: unexpected final model %T", final)
		}
		action, formID := done.Outcome()
		switch action {
		case dashboard.ActionEdit:
			if err := openBuilder(e, formID, noColor, stdout); err != nil {
				return err
			}
		case dashboard.ActionPreview:
			if err := openPreview(e, formID, noColor, stdout); err != nil {
				return err
			}
		case dashboard.ActionResponses:
			if err := openResponses(e, formID, noColor, stdout); err != nil {
				return err
			}
		default:
			return nil
		}
	}
}

// openBuilder edits one form, chaining into the preview when the user
// asks for it from inside the builder.
func openBuilder(e *env, formID string, noColor bool, stdout io.Writer) error {
	e.store.SetCurrentForm(formID)
	model := builder.NewModel(e.store, builder.Options{NoColor: noColor})
	final, err := runProgram(model, stdout)
	if err != nil {
		return fmt.Errorf("builder: %w", err)
	}
	done, ok := final.(builder.Model)
	if !ok {
		return fmt.Errorf("builder: unexpected final model %T", final)
	}
	if done.WantPreview() {
		return openPreview(e, formID, noColor, stdout)
	}
	return nil
}

// openPreview runs the respondent-facing fill screen for one form.
func openPreview(e *env, formID string, noColor bool, stdout io.Writer) error {
	f, ok := e.store.GetForm(formID)
	if !ok {
		return fmt.Errorf("form %q not found", formID)
	}
	model := preview.NewModel(e.store, f, preview.Options{NoColor: noColor})
	if _, err := runProgram(model, stdout); err != nil {
		return fmt.Errorf("preview: %w", err)
	}
	return nil
}

// openResponses shows a form's submissions plus answer distributions.
// A failed analytics summary degrades to the raw submission list.
func openResponses(e *env, formID string, noColor bool, stdout io.Writer) error {
	f, ok := e.store.GetForm(formID)
	if !ok {
		return fmt.Errorf("form %q not found", formID)
	}
	summary, err := analytics.SummarizeSnapshot(context.Background(), e.store.Snapshot(), formID)
	summaryOK := err == nil
	model := responses.NewModel(e.store, f, summary, summaryOK, responses.Options{NoColor: noColor})
	if _, err := runProgram(model, stdout); err != nil {
		return fmt.Errorf("responses: %w", err)
	}
	return nil
}
