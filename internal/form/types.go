package form

import "time"

// QuestionType identifies how a question is asked and answered.
type QuestionType string

const (
	// TypeShort is a single-line text answer.
	TypeShort QuestionType = "short"
	// TypeParagraph is a multi-line text answer.
	TypeParagraph QuestionType = "paragraph"
	// TypeMultipleChoice is a pick-one answer over options.
	TypeMultipleChoice QuestionType = "multiple_choice"
	// TypeCheckbox is a pick-many answer over options.
	TypeCheckbox QuestionType = "checkbox"
	// TypeDropdown is a pick-one answer rendered as a select.
	TypeDropdown QuestionType = "dropdown"
)

// Option is one selectable choice belonging to a question.
type Option struct {
	ID    string `json:"id"`
	Value string `json:"value"`
}

// Question is a single prompt with a type, optional option list, and
// required flag. Options are present iff the type is option-backed.
type Question struct {
	ID          string       `json:"id"`
	Type        QuestionType `json:"type"`
	Title       string       `json:"title"`
	Description string       `json:"description,omitempty"`
	Required    bool         `json:"required"`
	Options     []Option     `json:"options,omitempty"`
}

// Form is a named, ordered collection of questions plus submission
// metadata. Question order is authoritative for display and answers.
type Form struct {
	ID            string     `json:"id"`
	Title         string     `json:"title"`
	Description   string     `json:"description"`
	Questions     []Question `json:"questions"`
	CreatedAt     time.Time  `json:"createdAt"`
	UpdatedAt     time.Time  `json:"updatedAt"`
	ResponseCount int        `json:"responseCount"`
}

// Answer is one question's value at submission time. Checkbox
// questions carry Values; every other type carries Value.
type Answer struct {
	QuestionID string   `json:"questionId"`
	Value      string   `json:"value,omitempty"`
	Values     []string `json:"values,omitempty"`
}

// Response is one completed submission against a form.
type Response struct {
	FormID      string    `json:"formId"`
	Answers     []Answer  `json:"answers"`
	SubmittedAt time.Time `json:"submittedAt"`
}

// Snapshot is the complete serializable state: all forms, their
// responses, and the currently selected form id. It is the unit of
// persistence.
type Snapshot struct {
	Version       int        `json:"version"`
	Forms         []Form     `json:"forms"`
	Responses     []Response `json:"responses"`
	CurrentFormID string     `json:"currentFormId,omitempty"`
}

// SnapshotVersion is the payload version written by this build.
const SnapshotVersion = 1

// HasOptions reports whether the question type is option-backed.
func (t QuestionType) HasOptions() bool {
	switch t {
	case TypeMultipleChoice, TypeCheckbox, TypeDropdown:
		return true
	default:
		return false
	}
}

// Valid reports whether the type is one of the known question types.
func (t QuestionType) Valid() bool {
	switch t {
	case TypeShort, TypeParagraph, TypeMultipleChoice, TypeCheckbox, TypeDropdown:
		return true
	default:
		return false
	}
}

// Clone returns a deep copy of the form.
func (f Form) Clone() Form {
	out := f
	out.Questions = CloneQuestions(f.Questions)
	return out
}

// CloneQuestions deep-copies a question slice.
func CloneQuestions(questions []Question) []Question {
	if questions == nil {
		return nil
	}
	out := make([]Question, len(questions))
	for i, q := range questions {
		out[i] = q.Clone()
	}
	return out
}

// Clone returns a deep copy of the question.
func (q Question) Clone() Question {
	out := q
	if q.Options != nil {
		out.Options = make([]Option, len(q.Options))
		copy(out.Options, q.Options)
	}
	return out
}

// Clone returns a deep copy of the response.
func (r Response) Clone() Response {
	out := r
	if r.Answers != nil {
		out.Answers = make([]Answer, len(r.Answers))
		for i, a := range r.Answers {
			out.Answers[i] = a
			if a.Values != nil {
				out.Answers[i].Values = append([]string(nil), a.Values...)
			}
		}
	}
	return out
}

// Clone returns a deep copy of the snapshot.
func (s Snapshot) Clone() Snapshot {
	out := s
	if s.Forms != nil {
		out.Forms = make([]Form, len(s.Forms))
		for i, f := range s.Forms {
			out.Forms[i] = f.Clone()
		}
	}
	if s.Responses != nil {
		out.Responses = make([]Response, len(s.Responses))
		for i, r := range s.Responses {
			out.Responses[i] = r.Clone()
		}
	}
	return out
}
