package builder

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"formsmith/internal/form"
	"formsmith/internal/ui"
)

// typeLabels maps question types to display labels.
var typeLabels = map[form.QuestionType]string{
	form.TypeShort:          "short answer",
	form.TypeParagraph:      "paragraph",
	form.TypeMultipleChoice: "multiple choice",
	form.TypeCheckbox:       "checkboxes",
	form.TypeDropdown:       "dropdown",
}

// renderBuilder composes the full screen.
func renderBuilder(m Model) string {
	current, ok := m.store.CurrentForm()
	if !ok {
		return ui.Stylize("No form selected.", m.noColor, ui.ColorError)
	}
	parts := []string{renderHeader(current, m.noColor)}
	parts = append(parts, renderQuestions(current, m.cursor, m.noColor))
	switch m.mode {
	case modeChooseType:
		parts = append(parts, ui.Stylize(
			"Add question: s short · p paragraph · m multiple choice · c checkboxes · d dropdown · esc cancel",
			m.noColor, ui.ColorAccent,
		))
	case modeBrowse:
		parts = append(parts, ui.Stylize(
			"a add · enter rename · r required · o option · x delete · t title · D description · v preview · q quit",
			m.noColor, ui.ColorMuted,
		))
	default:
		parts = append(parts, renderInputPrompt(m)+m.input.View())
	}
	if m.status != "" && m.mode == modeBrowse {
		parts = append(parts, ui.Stylize(m.status, m.noColor, ui.ColorMuted))
	}
	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

// renderHeader renders the form title card.
func renderHeader(f form.Form, noColor bool) string {
	title := f.Title
	if title == "" {
		title = "Untitled Form"
	}
	line := ui.StylizeBold(title, noColor, ui.ColorAccent)
	if f.Description != "" {
		line += "\n" + ui.Stylize(f.Description, noColor, ui.ColorMuted)
	}
	return line + "\n"
}

// renderQuestions renders the ordered question list with the cursor.
func renderQuestions(f form.Form, cursor int, noColor bool) string {
	if len(f.Questions) == 0 {
		return ui.Stylize("No questions yet. Press a to add one.", noColor, ui.ColorMuted)
	}
	var b strings.Builder
	for i, q := range f.Questions {
		marker := "  "
		if i == cursor {
			marker = ui.Stylize("> ", noColor, ui.ColorAccent)
		}
		line := marker + strconv.Itoa(i+1) + ". " + q.Title
		if q.Required {
			line += ui.Stylize(" *", noColor, ui.ColorError)
		}
		line += ui.Stylize(" ("+typeLabels[q.Type]+")", noColor, ui.ColorMuted)
		b.WriteString(line + "\n")
		if q.Type.HasOptions() && i == cursor {
			for _, opt := range q.Options {
				b.WriteString("      - " + opt.Value + "\n")
			}
		}
	}
	return b.String()
}

// renderInputPrompt labels the active text field.
func renderInputPrompt(m Model) string {
	switch m.mode {
	case modeEditTitle:
		return "Form title: "
	case modeEditDescription:
		return "Form description: "
	case modeRenameQuestion:
		return "Question title: "
	case modeAddOption:
		return "New option: "
	default:
		return ""
	}
}
