package dashboard

import (
	"time"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/lipgloss"

	"formsmith/internal/form"
	"formsmith/internal/ui"
)

// columns defines the dashboard table layout.
func columns() []table.Column {
	return []table.Column{
		{Title: "Title", Width: 32},
		{Title: "Questions", Width: 10},
		{Title: "Responses", Width: 10},
		{Title: "Last edited", Width: 18},
	}
}

// tableStyles returns table styles for the dashboard.
func tableStyles(noColor bool) table.Styles {
	styles := table.DefaultStyles()
	if noColor {
		return styles
	}
	styles.Header = styles.Header.Foreground(lipgloss.Color("252"))
	styles.Selected = styles.Selected.Foreground(ui.ColorAccent).Bold(true)
	return styles
}

// rowsForForms converts forms into table rows, keeping store order.
func rowsForForms(forms []form.Form, now time.Time) []table.Row {
	rows := make([]table.Row, 0, len(forms))
	for _, f := range forms {
		rows = append(rows, table.Row{
			ui.Truncate(f.Title, 32),
			ui.FormatCount(len(f.Questions), "question"),
			ui.FormatCount(f.ResponseCount, "response"),
			ui.FormatRelative(now, f.UpdatedAt),
		})
	}
	return rows
}

// renderDashboard composes the full screen.
func renderDashboard(m Model) string {
	header := ui.StylizeBold("Formsmith · your forms", m.noColor, ui.ColorAccent)
	body := m.table.View()
	if len(m.forms) == 0 {
		body = ui.Stylize("No forms yet. Press n to create one.", m.noColor, ui.ColorMuted)
	}
	help := ui.Stylize(
		"n new · enter edit · p preview · r responses · d delete · q quit",
		m.noColor, ui.ColorMuted,
	)
	parts := []string{header, body, help}
	if m.status != "" {
		parts = append(parts, ui.Stylize(m.status, m.noColor, ui.ColorMuted))
	}
	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}
