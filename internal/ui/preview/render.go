package preview

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"formsmith/internal/form"
	"formsmith/internal/ui"
)

// renderPreview composes the full screen.
func renderPreview(m Model) string {
	if m.submitted {
		return renderSubmitted(m)
	}
	f := m.state.Form
	parts := []string{renderHeader(f, m.noColor)}
	for i, q := range f.Questions {
		parts = append(parts, renderQuestion(m, q, i))
	}
	if len(f.Questions) == 0 {
		parts = append(parts, ui.Stylize("This form has no questions.", m.noColor, ui.ColorMuted))
	}
	if m.errMsg != "" {
		parts = append(parts, ui.Stylize(m.errMsg, m.noColor, ui.ColorError))
	}
	parts = append(parts, ui.Stylize(
		"enter next · shift+tab back · space select · ctrl+s submit · esc quit   * required",
		m.noColor, ui.ColorMuted,
	))
	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

// renderHeader renders the form title block.
func renderHeader(f form.Form, noColor bool) string {
	line := ui.StylizeBold("Preview: "+f.Title, noColor, ui.ColorAccent)
	if f.Description != "" {
		line += "\n" + ui.Stylize(f.Description, noColor, ui.ColorMuted)
	}
	return line + "\n"
}

// renderQuestion renders one question with its current draft.
func renderQuestion(m Model, q form.Question, index int) string {
	focused := index == m.cursor
	marker := "  "
	if focused {
		marker = ui.Stylize("> ", m.noColor, ui.ColorAccent)
	}
	title := q.Title
	if q.Required {
		title += ui.Stylize(" *", m.noColor, ui.ColorError)
	}
	if m.missing[q.ID] {
		title += ui.Stylize("  (required)", m.noColor, ui.ColorError)
	}
	var b strings.Builder
	b.WriteString(marker + strconv.Itoa(index+1) + ". " + title + "\n")
	if q.Description != "" {
		b.WriteString("     " + ui.Stylize(q.Description, m.noColor, ui.ColorMuted) + "\n")
	}
	if q.Type.HasOptions() {
		b.WriteString(renderOptions(m, q, focused))
	} else {
		b.WriteString(renderTextDraft(m, q, focused))
	}
	return b.String()
}

// renderOptions renders the option rows with selection markers.
func renderOptions(m Model, q form.Question, focused bool) string {
	var b strings.Builder
	for i, opt := range q.Options {
		cursor := "   "
		if focused && i == m.optCursor {
			cursor = ui.Stylize(" > ", m.noColor, ui.ColorAccent)
		}
		b.WriteString("   " + cursor + optionMarker(m, q, opt) + " " + opt.Value + "\n")
	}
	return b.String()
}

// optionMarker renders the radio or checkbox state for an option.
func optionMarker(m Model, q form.Question, opt form.Option) string {
	if q.Type == form.TypeCheckbox {
		if m.state.Checked[q.ID][opt.Value] {
			return "[x]"
		}
		return "[ ]"
	}
	if m.state.Text[q.ID] == opt.Value {
		return "(o)"
	}
	return "( )"
}

// renderTextDraft renders the text answer line or the live input.
func renderTextDraft(m Model, q form.Question, focused bool) string {
	if focused {
		return "     " + m.input.View() + "\n"
	}
	value := m.state.Text[q.ID]
	if value == "" {
		return "     " + ui.Stylize("Your answer", m.noColor, ui.ColorMuted) + "\n"
	}
	return "     " + value + "\n"
}

// renderSubmitted renders the thank-you screen.
func renderSubmitted(m Model) string {
	return lipgloss.JoinVertical(
		lipgloss.Left,
		ui.StylizeBold("Form submitted", m.noColor, ui.ColorOK),
		"Thank you for your response!",
		"",
		ui.Stylize("a submit another response · q back", m.noColor, ui.ColorMuted),
	)
}
