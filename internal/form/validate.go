package form

import "fmt"

// ValidationError reports required questions left unanswered at
// submission time. No partial submission is recorded when it occurs.
type ValidationError struct {
	Missing []string // ids of required questions without a value
}

// Error summarizes the missing required questions.
func (e *ValidationError) Error() string {
	return fmt.Sprintf("please fill in all required fields (%d missing)", len(e.Missing))
}

// ValidateAnswers checks a submission's answers against the form's
// required questions. It returns a *ValidationError listing every
// required question that has no value, or nil when the submission is
// acceptable. Answers for unknown question ids are ignored.
func ValidateAnswers(f Form, answers []Answer) error {
	byQuestion := make(map[string]Answer, len(answers))
	for _, a := range answers {
		byQuestion[a.QuestionID] = a
	}
	var missing []string
	for _, q := range f.Questions {
		if !q.Required {
			continue
		}
		a, ok := byQuestion[q.ID]
		if !ok || !answered(q, a) {
			missing = append(missing, q.ID)
		}
	}
	if len(missing) > 0 {
		return &ValidationError{Missing: missing}
	}
	return nil
}

// answered reports whether an answer carries a value for the question.
func answered(q Question, a Answer) bool {
	if q.Type == TypeCheckbox {
		return len(a.Values) > 0
	}
	return a.Value != ""
}
