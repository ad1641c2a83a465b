// Package preview is the form filling screen: questions in store
// order, one focused at a time, with required validation before the
// submission reaches the store.
package preview

import (
	"errors"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"formsmith/internal/form"
	"formsmith/internal/store"
)

// Model renders the preview using Bubble Tea.
type Model struct {
	store     *store.Store
	state     State
	input     textinput.Model
	cursor    int
	optCursor int
	submitted bool
	errMsg    string
	noColor   bool
	missing   map[string]bool
}

// Options configures the preview model.
type Options struct {
	NoColor bool
}

// NewModel constructs a preview for one form.
func NewModel(s *store.Store, f form.Form, opts Options) Model {
	input := textinput.New()
	input.CharLimit = 500
	input.Width = 60
	input.Placeholder = "Your answer"
	m := Model{
		store:   s,
		state:   NewState(f),
		input:   input,
		noColor: opts.NoColor,
	}
	m.focusCursor()
	return m
}

// Init is a no-op; the preview reads store state synchronously.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update handles key presses.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}
	if m.submitted {
		return m.handleSubmittedKey(key)
	}
	return m.handleFillKey(key)
}

// handleSubmittedKey handles the thank-you screen.
func (m Model) handleSubmittedKey(key tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch key.String() {
	case "a":
		// Submit another response.
		m.state = m.state.Reset()
		m.submitted = false
		m.cursor = 0
		m.optCursor = 0
		m.errMsg = ""
		m.missing = nil
		m.focusCursor()
		return m, nil
	case "q", "esc", "ctrl+c", "enter":
		return m, tea.Quit
	}
	return m, nil
}

// handleFillKey handles answering keys.
func (m Model) handleFillKey(key tea.KeyMsg) (tea.Model, tea.Cmd) {
	q, hasQuestion := m.currentQuestion()
	switch key.String() {
	case "ctrl+c", "esc":
		return m, tea.Quit
	case "ctrl+s":
		return m.submit()
	case "tab", "enter":
		m.commitText()
		if m.cursor >= len(m.state.Form.Questions)-1 {
			return m.submit()
		}
		m.cursor++
		m.optCursor = 0
		m.focusCursor()
		return m, nil
	case "shift+tab":
		m.commitText()
		if m.cursor > 0 {
			m.cursor--
		}
		m.optCursor = 0
		m.focusCursor()
		return m, nil
	}
	if hasQuestion && q.Type.HasOptions() {
		return m.handleOptionKey(key, q)
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(key)
	return m, cmd
}

// handleOptionKey moves the option cursor and toggles selections.
func (m Model) handleOptionKey(key tea.KeyMsg, q form.Question) (tea.Model, tea.Cmd) {
	switch key.String() {
	case "up", "k":
		if m.optCursor > 0 {
			m.optCursor--
		}
	case "down", "j":
		if m.optCursor < len(q.Options)-1 {
			m.optCursor++
		}
	case " ", "x":
		if m.optCursor < len(q.Options) {
			value := q.Options[m.optCursor].Value
			if q.Type == form.TypeCheckbox {
				m.state = m.state.ToggleChecked(q.ID, value)
			} else {
				m.state = m.state.SetValue(q.ID, value)
			}
			delete(m.missing, q.ID)
		}
	}
	return m, nil
}

// submit validates and records the response through the store.
func (m Model) submit() (tea.Model, tea.Cmd) {
	m.commitText()
	answers := m.state.Answers()
	err := m.store.SubmitResponse(m.state.Form.ID, answers)
	var verr *form.ValidationError
	if errors.As(err, &verr) {
		m.errMsg = "Please fill in all required fields"
		m.missing = make(map[string]bool, len(verr.Missing))
		for _, id := range verr.Missing {
			m.missing[id] = true
		}
		return m, nil
	}
	m.submitted = true
	m.errMsg = ""
	m.missing = nil
	return m, nil
}

// commitText stores the text input draft into the state.
func (m *Model) commitText() {
	q, ok := m.currentQuestion()
	if !ok || q.Type.HasOptions() {
		return
	}
	m.state = m.state.SetValue(q.ID, m.input.Value())
	if m.input.Value() != "" {
		delete(m.missing, q.ID)
	}
}

// focusCursor prepares the text input for the focused question.
func (m *Model) focusCursor() {
	q, ok := m.currentQuestion()
	if !ok || q.Type.HasOptions() {
		m.input.Blur()
		return
	}
	m.input.SetValue(m.state.Text[q.ID])
	m.input.Focus()
}

// currentQuestion returns the focused question.
func (m Model) currentQuestion() (form.Question, bool) {
	qs := m.state.Form.Questions
	if m.cursor < 0 || m.cursor >= len(qs) {
		return form.Question{}, false
	}
	return qs[m.cursor], true
}

// View renders the preview.
func (m Model) View() string {
	return renderPreview(m)
}
