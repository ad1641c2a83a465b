// Package export renders a form as a standalone HTML page so it can
// be shared or printed without the builder. The markup mirrors the
// preview screen: header card, then questions in store order.
package export

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/a-h/templ"

	"formsmith/internal/form"
)

// FormPage builds the page component for a form.
func FormPage(f form.Form) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if err := writePageOpen(w, f); err != nil {
			return err
		}
		if err := headerCard(f).Render(ctx, w); err != nil {
			return err
		}
		for i, q := range f.Questions {
			if err := questionCard(q, i+1).Render(ctx, w); err != nil {
				return err
			}
		}
		return writePageClose(w)
	})
}

// RenderFormHTML renders the page component into a string.
func RenderFormHTML(ctx context.Context, f form.Form) (string, error) {
	var builder strings.Builder
	if err := FormPage(f).Render(ctx, &builder); err != nil {
		return "", err
	}
	return builder.String(), nil
}

// writePageOpen emits the document head and opening body.
func writePageOpen(w io.Writer, f form.Form) error {
	_, err := fmt.Fprintf(w, `<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<title>%s</title>
<style>
body { font-family: sans-serif; background: #f1f3f4; margin: 0; }
main { max-width: 640px; margin: 2rem auto; }
.card { background: #fff; border: 1px solid #dadce0; border-radius: 8px; padding: 1.5rem; margin-bottom: 1rem; }
.card.header { border-top: 8px solid #4285f4; }
.required { color: #d93025; }
.description { color: #5f6368; }
label { display: block; margin: 0.25rem 0; }
</style>
</head>
<body>
<main>
`, templ.EscapeString(f.Title))
	return err
}

// writePageClose emits the closing tags.
func writePageClose(w io.Writer) error {
	_, err := io.WriteString(w, "</main>\n</body>\n</html>\n")
	return err
}

// headerCard renders the form title and description.
func headerCard(f form.Form) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if _, err := fmt.Fprintf(w, `<div class="card header">
<h1>%s</h1>
`, templ.EscapeString(f.Title)); err != nil {
			return err
		}
		if f.Description != "" {
			if _, err := fmt.Fprintf(w, `<p class="description">%s</p>
`, templ.EscapeString(f.Description)); err != nil {
				return err
			}
		}
		_, err := io.WriteString(w, "</div>\n")
		return err
	})
}

// questionCard renders one question with its input controls.
func questionCard(q form.Question, ordinal int) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		required := ""
		if q.Required {
			required = ` <span class="required">*</span>`
		}
		if _, err := fmt.Fprintf(w, `<div class="card">
<h3>%d. %s%s</h3>
`, ordinal, templ.EscapeString(q.Title), required); err != nil {
			return err
		}
		if q.Description != "" {
			if _, err := fmt.Fprintf(w, `<p class="description">%s</p>
`, templ.EscapeString(q.Description)); err != nil {
				return err
			}
		}
		if err := questionInput(q).Render(ctx, w); err != nil {
			return err
		}
		_, err := io.WriteString(w, "</div>\n")
		return err
	})
}

// questionInput renders the control matching the question type.
func questionInput(q form.Question) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		name := templ.EscapeString(q.ID)
		switch q.Type {
		case form.TypeShort:
			_, err := fmt.Fprintf(w, "<input type=\"text\" name=%q placeholder=\"Your answer\">\n", name)
			return err
		case form.TypeParagraph:
			_, err := fmt.Fprintf(w, "<textarea name=%q rows=\"4\" placeholder=\"Your answer\"></textarea>\n", name)
			return err
		case form.TypeMultipleChoice:
			return optionControls(w, q, "radio", name)
		case form.TypeCheckbox:
			return optionControls(w, q, "checkbox", name)
		case form.TypeDropdown:
			if _, err := fmt.Fprintf(w, "<select name=%q>\n<option value=\"\" disabled selected>Choose an option</option>\n", name); err != nil {
				return err
			}
			for _, opt := range q.Options {
				value := templ.EscapeString(opt.Value)
				if _, err := fmt.Fprintf(w, "<option value=%q>%s</option>\n", value, value); err != nil {
					return err
				}
			}
			_, err := io.WriteString(w, "</select>\n")
			return err
		default:
			return fmt.Errorf("export: unknown question type %q", q.Type)
		}
	})
}

// optionControls renders radio or checkbox rows for each option.
func optionControls(w io.Writer, q form.Question, kind, name string) error {
	for _, opt := range q.Options {
		value := templ.EscapeString(opt.Value)
		if _, err := fmt.Fprintf(
			w,
			"<label><input type=%q name=%q value=%q> %s</label>\n",
			kind, name, value, value,
		); err != nil {
			return err
		}
	}
	return nil
}
