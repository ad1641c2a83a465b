package cli

import (
	"fmt"
	"io"
	"strings"
	"time"

	"formsmith/internal/analytics"
	"formsmith/internal/form"
	"formsmith/internal/ui"
)

// printFormList writes one line per form, newest first.
func printFormList(w io.Writer, forms []form.Form, now time.Time) {
	if len(forms) == 0 {
		fmt.Fprintln(w, "No forms yet. Run \"formsmith new\" to create one.")
		return
	}
	for _, f := range forms {
		title := f.Title
		if title == "" {
			title = "(untitled)"
		}
		fmt.Fprintf(w, "%s  %-32s %s, %s, edited %s\n",
			f.ID,
			ui.Truncate(title, 32),
			ui.FormatCount(len(f.Questions), "question"),
			ui.FormatCount(f.ResponseCount, "response"),
			ui.FormatRelative(now, f.UpdatedAt))
	}
}

// printFormDetail writes a form's structure: title, description, and
// every question with its type, required flag, and options.
func printFormDetail(w io.Writer, f form.Form) {
	fmt.Fprintf(w, "%s (%s)\n", f.Title, f.ID)
	if f.Description != "" {
		fmt.Fprintln(w, f.Description)
	}
	if len(f.Questions) == 0 {
		fmt.Fprintln(w, "No questions yet.")
		return
	}
	for i, q := range f.Questions {
		marker := ""
		if q.Required {
			marker = " *"
		}
		fmt.Fprintf(w, "%d. %s%s [%s] (%s)\n", i+1, q.Title, marker, q.Type, q.ID)
		if q.Description != "" {
			fmt.Fprintf(w, "   %s\n", q.Description)
		}
		for _, opt := range q.Options {
			fmt.Fprintf(w, "   - %s (%s)\n", opt.Value, opt.ID)
		}
	}
}

// printResponses writes the submission list for a form.
func printResponses(w io.Writer, f form.Form, rs []form.Response) {
	fmt.Fprintf(w, "%s: %s\n", f.Title, ui.FormatCount(len(rs), "response"))
	titles := make(map[string]string, len(f.Questions))
	for _, q := range f.Questions {
		titles[q.ID] = q.Title
	}
	for i, r := range rs {
		fmt.Fprintf(w, "\n#%d  %s\n", i+1, r.SubmittedAt.Local().Format("2006-01-02 15:04"))
		for _, a := range r.Answers {
			title := titles[a.QuestionID]
			if title == "" {
				title = a.QuestionID
			}
			value := a.Value
			if len(a.Values) > 0 {
				value = strings.Join(a.Values, ", ")
			}
			fmt.Fprintf(w, "  %s: %s\n", title, value)
		}
	}
}

// printSummary writes per-question answer distributions.
func printSummary(w io.Writer, summary analytics.FormSummary) {
	fmt.Fprintf(w, "%s: %s\n", summary.Title, ui.FormatCount(summary.ResponseCount, "response"))
	for _, q := range summary.Questions {
		fmt.Fprintf(w, "\n%s (%s answered)\n", q.Title, ui.FormatCount(q.Answered, "time"))
		for _, c := range q.Counts {
			fmt.Fprintf(w, "  %4d  %s\n", c.Count, c.Value)
		}
	}
}
