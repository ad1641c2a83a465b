// Package dashboard is the forms overview screen: every form
// newest-first with question and response counts, plus keys to
// create, open, or delete a form. All mutations go through the store;
// navigation to other screens is reported to the caller as the
// screen's outcome.
package dashboard

import (
	"time"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"

	"formsmith/internal/form"
	"formsmith/internal/store"
)

// Action tells the caller what to open after the screen exits.
type Action int

const (
	// ActionNone means the user quit without choosing a form.
	ActionNone Action = iota
	// ActionEdit opens the builder for the chosen form.
	ActionEdit
	// ActionPreview opens the preview for the chosen form.
	ActionPreview
	// ActionResponses opens the responses screen for the chosen form.
	ActionResponses
)

// Model renders the dashboard using Bubble Tea.
type Model struct {
	store   *store.Store
	table   table.Model
	forms   []form.Form
	now     func() time.Time
	noColor bool
	status  string

	action Action
	formID string
}

// Options configures the dashboard model.
type Options struct {
	NoColor bool
	Now     func() time.Time
}

// NewModel constructs a dashboard over the store's forms.
func NewModel(s *store.Store, opts Options) Model {
	now := opts.Now
	if now == nil {
		now = time.Now
	}
	t := table.New(
		table.WithColumns(columns()),
		table.WithRows([]table.Row{}),
		table.WithFocused(true),
	)
	t.SetStyles(tableStyles(opts.NoColor))
	m := Model{
		store:   s,
		table:   t,
		now:     now,
		noColor: opts.NoColor,
	}
	m.refresh()
	return m
}

// Outcome reports what the user chose: the follow-up action and the
// target form id.
func (m Model) Outcome() (Action, string) {
	return m.action, m.formID
}

// Init is a no-op; the dashboard reads store state synchronously.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update handles key presses and window sizing.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch typed := msg.(type) {
	case tea.WindowSizeMsg:
		m.table.SetWidth(typed.Width)
		m.table.SetHeight(max(typed.Height-6, 1))
		return m, nil
	case tea.KeyMsg:
		return m.handleKey(typed)
	}
	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// handleKey dispatches a key press.
func (m Model) handleKey(key tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch key.String() {
	case "q", "esc", "ctrl+c":
		m.action = ActionNone
		return m, tea.Quit
	case "n":
		created := m.store.CreateForm("Untitled Form", "")
		m.action = ActionEdit
		m.formID = created.ID
		return m, tea.Quit
	case "enter", "e":
		if id, ok := m.selectedFormID(); ok {
			m.action = ActionEdit
			m.formID = id
			return m, tea.Quit
		}
	case "p":
		if id, ok := m.selectedFormID(); ok {
			m.action = ActionPreview
			m.formID = id
			return m, tea.Quit
		}
	case "r":
		if id, ok := m.selectedFormID(); ok {
			m.action = ActionResponses
			m.formID = id
			return m, tea.Quit
		}
	case "d":
		if id, ok := m.selectedFormID(); ok {
			m.store.DeleteForm(id)
			m.status = "Form deleted"
			m.refresh()
		}
		return m, nil
	}
	var cmd tea.Cmd
	m.table, cmd = m.table.Update(key)
	return m, cmd
}

// View renders the dashboard.
func (m Model) View() string {
	return renderDashboard(m)
}

// refresh rebuilds the table rows from store state.
func (m *Model) refresh() {
	m.forms = m.store.Forms()
	m.table.SetRows(rowsForForms(m.forms, m.now()))
	if cursor := m.table.Cursor(); cursor >= len(m.forms) && len(m.forms) > 0 {
		m.table.SetCursor(len(m.forms) - 1)
	}
}

// selectedFormID maps the table cursor to a form id.
func (m Model) selectedFormID() (string, bool) {
	cursor := m.table.Cursor()
	if cursor < 0 || cursor >= len(m.forms) {
		return "", false
	}
	return m.forms[cursor].ID, true
}
