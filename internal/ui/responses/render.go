package responses

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/lipgloss"

	"formsmith/internal/form"
	"formsmith/internal/ui"
)

// columns defines the submissions table layout.
func columns() []table.Column {
	return []table.Column{
		{Title: "#", Width: 4},
		{Title: "Submitted", Width: 20},
		{Title: "Answers", Width: 44},
	}
}

// tableStyles returns table styles for the submissions list.
func tableStyles(noColor bool) table.Styles {
	styles := table.DefaultStyles()
	if noColor {
		return styles
	}
	styles.Header = styles.Header.Foreground(lipgloss.Color("252"))
	return styles
}

// rowsForResponses converts submissions into table rows.
func rowsForResponses(f form.Form, responses []form.Response) []table.Row {
	titles := make(map[string]string, len(f.Questions))
	for _, q := range f.Questions {
		titles[q.ID] = q.Title
	}
	rows := make([]table.Row, 0, len(responses))
	for i, r := range responses {
		rows = append(rows, table.Row{
			strconv.Itoa(i + 1),
			r.SubmittedAt.Format("2006-01-02 15:04"),
			ui.Truncate(summarizeAnswers(r, titles), 44),
		})
	}
	return rows
}

// summarizeAnswers joins a submission's answers into one line.
func summarizeAnswers(r form.Response, titles map[string]string) string {
	parts := make([]string, 0, len(r.Answers))
	for _, a := range r.Answers {
		value := a.Value
		if len(a.Values) > 0 {
			value = strings.Join(a.Values, ", ")
		}
		title := titles[a.QuestionID]
		if title == "" {
			title = a.QuestionID
		}
		parts = append(parts, title+": "+value)
	}
	return strings.Join(parts, " · ")
}

// renderResponses composes the full screen.
func renderResponses(m Model) string {
	header := ui.StylizeBold("Responses: "+m.form.Title, m.noColor, ui.ColorAccent)
	count := ui.Stylize(ui.FormatCount(len(m.responses), "response"), m.noColor, ui.ColorMuted)
	parts := []string{header, count}
	if m.summaryOK {
		parts = append(parts, renderSummary(m))
	}
	if len(m.responses) == 0 {
		parts = append(parts, ui.Stylize("No responses yet.", m.noColor, ui.ColorMuted))
	} else {
		parts = append(parts, m.table.View())
	}
	parts = append(parts, ui.Stylize("q back", m.noColor, ui.ColorMuted))
	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

// renderSummary renders per-question distributions with count bars.
func renderSummary(m Model) string {
	var b strings.Builder
	for _, q := range m.summary.Questions {
		if len(q.Counts) == 0 {
			continue
		}
		b.WriteString(q.Title + " " +
			ui.Stylize("("+ui.FormatCount(q.Answered, "answer")+")", m.noColor, ui.ColorMuted) + "\n")
		for _, vc := range q.Counts {
			bar := strings.Repeat("█", min(vc.Count, 30))
			line := "  " + pad(vc.Value, 20) + " " + strconv.Itoa(vc.Count)
			if bar != "" {
				line += " " + ui.Stylize(bar, m.noColor, ui.ColorAccent)
			}
			b.WriteString(line + "\n")
		}
	}
	return b.String()
}

// pad right-pads or truncates a label to a fixed width.
func pad(text string, width int) string {
	text = ui.Truncate(text, width)
	if len(text) < width {
		return text + strings.Repeat(" ", width-len(text))
	}
	return text
}
