// Package builder is the form editing screen. It edits the store's
// current form: title, description, and the ordered question
// sequence. Every change funnels through a store operation so
// updatedAt and persistence stay consistent.
package builder

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"formsmith/internal/form"
	"formsmith/internal/store"
)

// mode is the input state of the builder screen.
type mode int

const (
	modeBrowse mode = iota
	modeEditTitle
	modeEditDescription
	modeChooseType
	modeRenameQuestion
	modeAddOption
)

// Model renders the builder using Bubble Tea.
type Model struct {
	store   *store.Store
	input   textinput.Model
	mode    mode
	cursor  int
	noColor bool
	status  string

	wantPreview bool
}

// Options configures the builder model.
type Options struct {
	NoColor bool
}

// NewModel constructs a builder over the store's current form. The
// caller selects the form with SetCurrentForm before launching.
func NewModel(s *store.Store, opts Options) Model {
	input := textinput.New()
	input.CharLimit = 200
	input.Width = 60
	return Model{
		store:   s,
		input:   input,
		noColor: opts.NoColor,
	}
}

// WantPreview reports whether the user asked to open the preview.
func (m Model) WantPreview() bool {
	return m.wantPreview
}

// Init is a no-op; the builder reads store state synchronously.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update handles key presses.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}
	if m.mode == modeBrowse {
		return m.handleBrowseKey(key)
	}
	if m.mode == modeChooseType {
		return m.handleTypeKey(key)
	}
	return m.handleInputKey(key)
}

// handleBrowseKey dispatches keys in the question list.
func (m Model) handleBrowseKey(key tea.KeyMsg) (tea.Model, tea.Cmd) {
	current, hasForm := m.store.CurrentForm()
	switch key.String() {
	case "q", "esc", "ctrl+c":
		return m, tea.Quit
	case "v":
		m.wantPreview = true
		return m, tea.Quit
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		if hasForm && m.cursor < len(current.Questions)-1 {
			m.cursor++
		}
	case "t":
		m.mode = modeEditTitle
		m.input.SetValue(current.Title)
		m.input.Focus()
	case "D":
		m.mode = modeEditDescription
		m.input.SetValue(current.Description)
		m.input.Focus()
	case "a":
		m.mode = modeChooseType
	case "enter":
		if q, ok := m.selectedQuestion(current); ok {
			m.mode = modeRenameQuestion
			m.input.SetValue(q.Title)
			m.input.Focus()
		}
	case "r":
		if q, ok := m.selectedQuestion(current); ok {
			q.Required = !q.Required
			m.store.UpdateQuestion(q)
		}
	case "o":
		if q, ok := m.selectedQuestion(current); ok && q.Type.HasOptions() {
			m.mode = modeAddOption
			m.input.SetValue("")
			m.input.Placeholder = "Option value"
			m.input.Focus()
		}
	case "x":
		if q, ok := m.selectedQuestion(current); ok {
			m.store.DeleteQuestion(q.ID)
			m.status = "Question deleted"
			if m.cursor > 0 {
				m.cursor--
			}
		}
	}
	return m, nil
}

// handleTypeKey adds a question of the chosen type with the default
// title and a starter option for option-backed types.
func (m Model) handleTypeKey(key tea.KeyMsg) (tea.Model, tea.Cmd) {
	var qt form.QuestionType
	switch key.String() {
	case "s":
		qt = form.TypeShort
	case "p":
		qt = form.TypeParagraph
	case "m":
		qt = form.TypeMultipleChoice
	case "c":
		qt = form.TypeCheckbox
	case "d":
		qt = form.TypeDropdown
	case "esc", "q", "ctrl+c":
		m.mode = modeBrowse
		return m, nil
	default:
		return m, nil
	}
	m.mode = modeBrowse
	added, ok := m.store.AddQuestion(NewQuestion(qt))
	if !ok {
		m.status = "No form selected"
		return m, nil
	}
	if current, ok := m.store.CurrentForm(); ok {
		m.cursor = indexOfQuestion(current, added.ID)
	}
	return m, nil
}

// handleInputKey edits the active text field.
func (m Model) handleInputKey(key tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch key.String() {
	case "esc":
		m.mode = modeBrowse
		m.input.Blur()
		return m, nil
	case "enter":
		m.commitInput()
		m.mode = modeBrowse
		m.input.Blur()
		return m, nil
	case "ctrl+c":
		return m, tea.Quit
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(key)
	return m, cmd
}

// commitInput applies the edited value through the store.
func (m *Model) commitInput() {
	value := m.input.Value()
	switch m.mode {
	case modeEditTitle:
		m.store.UpdateForm(store.FormUpdate{Title: &value})
	case modeEditDescription:
		m.store.UpdateForm(store.FormUpdate{Description: &value})
	case modeRenameQuestion:
		current, ok := m.store.CurrentForm()
		if !ok {
			return
		}
		if q, ok := m.selectedQuestion(current); ok {
			q.Title = value
			m.store.UpdateQuestion(q)
		}
	case modeAddOption:
		if value == "" {
			return
		}
		current, ok := m.store.CurrentForm()
		if !ok {
			return
		}
		if q, ok := m.selectedQuestion(current); ok {
			q.Options = append(q.Options, form.Option{Value: value})
			m.store.UpdateQuestion(q)
		}
	}
}

// View renders the builder.
func (m Model) View() string {
	return renderBuilder(m)
}

// selectedQuestion returns the question under the cursor.
func (m Model) selectedQuestion(current form.Form) (form.Question, bool) {
	if m.cursor < 0 || m.cursor >= len(current.Questions) {
		return form.Question{}, false
	}
	return current.Questions[m.cursor], true
}

// NewQuestion builds the default question for a type: the "Question"
// title, not required, and a starter "Option 1" for option-backed
// types.
func NewQuestion(qt form.QuestionType) form.Question {
	q := form.Question{
		Type:  qt,
		Title: "Question",
	}
	if qt.HasOptions() {
		q.Options = []form.Option{{Value: "Option 1"}}
	}
	return q
}

// indexOfQuestion finds a question's position, or 0.
func indexOfQuestion(f form.Form, id string) int {
	for i, q := range f.Questions {
		if q.ID == id {
			return i
		}
	}
	return 0
}
