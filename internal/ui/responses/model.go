// Package responses is the submissions screen for one form: the
// response count, per-question answer distributions from analytics,
// and the list of recorded submissions.
package responses

import (
	"time"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"

	"formsmith/internal/analytics"
	"formsmith/internal/form"
	"formsmith/internal/store"
)

// Model renders the responses screen using Bubble Tea.
type Model struct {
	form      form.Form
	responses []form.Response
	summary   analytics.FormSummary
	summaryOK bool
	table     table.Model
	now       func() time.Time
	noColor   bool
}

// Options configures the responses model.
type Options struct {
	NoColor bool
	Now     func() time.Time
}

// NewModel builds the screen's data from the store and the analytics
// summary. A failed summary degrades to the raw submission list.
func NewModel(s *store.Store, f form.Form, summary analytics.FormSummary, summaryOK bool, opts Options) Model {
	now := opts.Now
	if now == nil {
		now = time.Now
	}
	responses := s.Responses(f.ID)
	t := table.New(
		table.WithColumns(columns()),
		table.WithRows(rowsForResponses(f, responses)),
		table.WithFocused(true),
	)
	t.SetStyles(tableStyles(opts.NoColor))
	return Model{
		form:      f,
		responses: responses,
		summary:   summary,
		summaryOK: summaryOK,
		table:     t,
		now:       now,
		noColor:   opts.NoColor,
	}
}

// Init is a no-op; the screen is a static view over store state.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update handles scrolling and quit keys.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch typed := msg.(type) {
	case tea.WindowSizeMsg:
		m.table.SetWidth(typed.Width)
		m.table.SetHeight(max(typed.Height-12, 1))
		return m, nil
	case tea.KeyMsg:
		switch typed.String() {
		case "q", "esc", "ctrl+c", "enter":
			return m, tea.Quit
		}
		var cmd tea.Cmd
		m.table, cmd = m.table.Update(typed)
		return m, cmd
	}
	return m, nil
}

// View renders the responses screen.
func (m Model) View() string {
	return renderResponses(m)
}
