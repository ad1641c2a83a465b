package preview

import (
	"formsmith/internal/form"
)

// State holds the draft answers for one fill of a form. It is pure
// data: the model mutates it through the functions below so the
// assembly and toggle rules stay testable without a terminal.
type State struct {
	Form form.Form
	// Text holds single-value drafts keyed by question id, covering
	// short, paragraph, multiple choice, and dropdown questions.
	Text map[string]string
	// Checked holds checkbox selections keyed by question id then
	// option value.
	Checked map[string]map[string]bool
}

// NewState initializes empty drafts for a form, mirroring the
// preview's initial answers: empty string per single-value question,
// empty set per checkbox.
func NewState(f form.Form) State {
	s := State{
		Form:    f,
		Text:    make(map[string]string, len(f.Questions)),
		Checked: make(map[string]map[string]bool),
	}
	for _, q := range f.Questions {
		if q.Type == form.TypeCheckbox {
			s.Checked[q.ID] = make(map[string]bool, len(q.Options))
			continue
		}
		s.Text[q.ID] = ""
	}
	return s
}

// SetValue records a single-value answer draft.
func (s State) SetValue(questionID, value string) State {
	s.Text[questionID] = value
	return s
}

// ToggleChecked flips one checkbox option.
func (s State) ToggleChecked(questionID, optionValue string) State {
	set := s.Checked[questionID]
	if set == nil {
		set = make(map[string]bool)
		s.Checked[questionID] = set
	}
	set[optionValue] = !set[optionValue]
	return s
}

// Answers assembles the submission payload: one entry per question
// that has a value, in question order. Checkbox values keep option
// order rather than toggle order.
func (s State) Answers() []form.Answer {
	var out []form.Answer
	for _, q := range s.Form.Questions {
		if q.Type == form.TypeCheckbox {
			var values []string
			for _, opt := range q.Options {
				if s.Checked[q.ID][opt.Value] {
					values = append(values, opt.Value)
				}
			}
			if len(values) > 0 {
				out = append(out, form.Answer{QuestionID: q.ID, Values: values})
			}
			continue
		}
		if v := s.Text[q.ID]; v != "" {
			out = append(out, form.Answer{QuestionID: q.ID, Value: v})
		}
	}
	return out
}

// Reset clears every draft for another submission.
func (s State) Reset() State {
	return NewState(s.Form)
}
