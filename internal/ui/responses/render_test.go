package responses

import (
	"testing"
	"time"

	"formsmith/internal/form"
)

// TestSummarizeAnswers verifies answers join with question titles and
// checkbox values stay comma-listed.
func TestSummarizeAnswers(t *testing.T) {
	titles := map[string]string{"q-1": "Name", "q-2": "Days"}
	r := form.Response{Answers: []form.Answer{
		{QuestionID: "q-1", Value: "Ana"},
		{QuestionID: "q-2", Values: []string{"Mon", "Tue"}},
	}}
	got := summarizeAnswers(r, titles)
	want := "Name: Ana · Days: Mon, Tue"
	if got != want {
		t.Fatalf("expected %q, got %q", want, got)
	}
}

// TestRowsForResponses verifies the submissions table rows.
func TestRowsForResponses(t *testing.T) {
	f := form.Form{Questions: []form.Question{{ID: "q-1", Title: "Name"}}}
	responses := []form.Response{{
		FormID:      "form-1",
		Answers:     []form.Answer{{QuestionID: "q-1", Value: "Ana"}},
		SubmittedAt: time.Date(2026, 3, 1, 9, 30, 0, 0, time.UTC),
	}}
	rows := rowsForResponses(f, responses)
	if len(rows) != 1 {
		t.Fatalf("expected 1 row, got %d", len(rows))
	}
	if rows[0][0] != "1" || rows[0][1] != "2026-03-01 09:30" || rows[0][2] != "Name: Ana" {
		t.Fatalf("unexpected row %v", rows[0])
	}
}
