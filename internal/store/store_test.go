package store

import (
	"errors"
	"reflect"
	"testing"
	"time"

	"formsmith/internal/form"
	"formsmith/internal/persist"
	"formsmith/internal/testutil"
)

// newTestStore builds a store with a deterministic clock and ids
// backed by an in-memory adapter.
func newTestStore(t *testing.T) (*Store, *persist.MemoryAdapter, *testutil.FakeClock) {
	t.Helper()
	clock := testutil.NewFakeClock(time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC))
	adapter := &persist.MemoryAdapter{}
	s := New(Options{
		Adapter: adapter,
		IDs:     &form.CounterSource{},
		Now:     clock.Now,
	})
	return s, adapter, clock
}

// choiceQuestion returns a multiple choice question with one option.
func choiceQuestion() form.Question {
	return form.Question{
		Type:     form.TypeMultipleChoice,
		Title:    "Question",
		Required: false,
		Options:  []form.Option{{Value: "Option 1"}},
	}
}

// TestCreateFormDistinctIDs verifies created forms get pairwise
// distinct ids.
func TestCreateFormDistinctIDs(t *testing.T) {
	s, _, _ := newTestStore(t)
	seen := map[string]bool{}
	for i := 0; i < 10; i++ {
		f := s.CreateForm("Untitled Form", "")
		if seen[f.ID] {
			t.Fatalf("duplicate form id %q", f.ID)
		}
		seen[f.ID] = true
	}
}

// TestCreateFormDefaults verifies a fresh form starts empty with a
// zero response count and equal timestamps.
func TestCreateFormDefaults(t *testing.T) {
	s, _, _ := newTestStore(t)
	created := s.CreateForm("Untitled Form", "")
	got, ok := s.GetForm(created.ID)
	if !ok {
		t.Fatalf("expected form %q to exist", created.ID)
	}
	if len(got.Questions) != 0 {
		t.Fatalf("expected no questions, got %d", len(got.Questions))
	}
	if got.ResponseCount != 0 {
		t.Fatalf("expected zero responses, got %d", got.ResponseCount)
	}
	if !got.CreatedAt.Equal(got.UpdatedAt) {
		t.Fatalf("expected createdAt == updatedAt on creation")
	}
}

// TestCreateFormHeadInsertion verifies new forms land at the head of
// the forms sequence.
func TestCreateFormHeadInsertion(t *testing.T) {
	s, _, _ := newTestStore(t)
	first := s.CreateForm("First", "")
	second := s.CreateForm("Second", "")
	forms := s.Forms()
	if len(forms) != 2 {
		t.Fatalf("expected 2 forms, got %d", len(forms))
	}
	if forms[0].ID != second.ID || forms[1].ID != first.ID {
		t.Fatalf("expected newest-first ordering, got %q then %q", forms[0].ID, forms[1].ID)
	}
}

// TestCreateFormSetsCurrent verifies creation selects the new form.
func TestCreateFormSetsCurrent(t *testing.T) {
	s, _, _ := newTestStore(t)
	created := s.CreateForm("Untitled Form", "")
	current, ok := s.CurrentForm()
	if !ok || current.ID != created.ID {
		t.Fatalf("expected current form %q, got %q (ok=%v)", created.ID, current.ID, ok)
	}
}

// TestGetFormDoesNotChangeCurrent verifies lookups are pure.
func TestGetFormDoesNotChangeCurrent(t *testing.T) {
	s, _, _ := newTestStore(t)
	first := s.CreateForm("First", "")
	second := s.CreateForm("Second", "")
	if _, ok := s.GetForm(first.ID); !ok {
		t.Fatalf("expected form %q to exist", first.ID)
	}
	current, _ := s.CurrentForm()
	if current.ID != second.ID {
		t.Fatalf("GetForm moved current form to %q", current.ID)
	}
}

// TestSetCurrentFormMissingID verifies selecting a missing id is a
// silent no-op.
func TestSetCurrentFormMissingID(t *testing.T) {
	s, _, _ := newTestStore(t)
	created := s.CreateForm("Untitled Form", "")
	s.SetCurrentForm("form-nope")
	current, ok := s.CurrentForm()
	if !ok || current.ID != created.ID {
		t.Fatalf("expected current form to stay %q", created.ID)
	}
}

// TestUpdateFormNoCurrent verifies updateForm without a current form
// leaves the snapshot unchanged.
func TestUpdateFormNoCurrent(t *testing.T) {
	s, _, _ := newTestStore(t)
	before := s.Snapshot()
	title := "X"
	s.UpdateForm(FormUpdate{Title: &title})
	after := s.Snapshot()
	if !reflect.DeepEqual(before, after) {
		t.Fatalf("expected snapshot unchanged, got %+v", after)
	}
}

// TestUpdateFormRefreshesUpdatedAt verifies partial updates touch
// only the named fields and bump updatedAt.
func TestUpdateFormRefreshesUpdatedAt(t *testing.T) {
	s, _, clock := newTestStore(t)
	created := s.CreateForm("Untitled Form", "original")
	clock.Advance(time.Minute)
	title := "Feedback"
	s.UpdateForm(FormUpdate{Title: &title})
	got, _ := s.GetForm(created.ID)
	if got.Title != "Feedback" {
		t.Fatalf("expected title update, got %q", got.Title)
	}
	if got.Description != "original" {
		t.Fatalf("expected description untouched, got %q", got.Description)
	}
	if !got.UpdatedAt.After(created.UpdatedAt) {
		t.Fatalf("expected updatedAt to advance")
	}
}

// TestAddThenDeleteQuestionRestoresSequence verifies add followed by
// delete returns the question sequence to its prior state.
func TestAddThenDeleteQuestionRestoresSequence(t *testing.T) {
	s, _, _ := newTestStore(t)
	created := s.CreateForm("Untitled Form", "")
	if _, ok := s.AddQuestion(form.Question{Type: form.TypeShort, Title: "Keep me"}); !ok {
		t.Fatalf("expected question to be added")
	}
	before, _ := s.GetForm(created.ID)

	added, ok := s.AddQuestion(choiceQuestion())
	if !ok {
		t.Fatalf("expected question to be added")
	}
	s.DeleteQuestion(added.ID)

	after, _ := s.GetForm(created.ID)
	if !reflect.DeepEqual(before.Questions, after.Questions) {
		t.Fatalf("expected question sequence restored, got %+v", after.Questions)
	}
}

// TestAddQuestionAssignsIDs verifies question and option ids are
// generated by the store.
func TestAddQuestionAssignsIDs(t *testing.T) {
	s, _, _ := newTestStore(t)
	s.CreateForm("Untitled Form", "")
	added, ok := s.AddQuestion(choiceQuestion())
	if !ok {
		t.Fatalf("expected question to be added")
	}
	if added.ID == "" {
		t.Fatalf("expected question id to be assigned")
	}
	if len(added.Options) != 1 || added.Options[0].ID == "" {
		t.Fatalf("expected option id to be assigned, got %+v", added.Options)
	}
}

// TestAddQuestionNoCurrentForm verifies adding without a current form
// is a no-op.
func TestAddQuestionNoCurrentForm(t *testing.T) {
	s, _, _ := newTestStore(t)
	if _, ok := s.AddQuestion(choiceQuestion()); ok {
		t.Fatalf("expected add to fail without a current form")
	}
}

// TestUpdateQuestionPreservesPosition verifies replacement keeps the
// question's slot in the sequence.
func TestUpdateQuestionPreservesPosition(t *testing.T) {
	s, _, _ := newTestStore(t)
	created := s.CreateForm("Untitled Form", "")
	first, _ := s.AddQuestion(form.Question{Type: form.TypeShort, Title: "First"})
	second, _ := s.AddQuestion(form.Question{Type: form.TypeShort, Title: "Second"})

	first.Title = "First, renamed"
	first.Required = true
	s.UpdateQuestion(first)

	got, _ := s.GetForm(created.ID)
	if got.Questions[0].Title != "First, renamed" || !got.Questions[0].Required {
		t.Fatalf("expected in-place update, got %+v", got.Questions[0])
	}
	if got.Questions[1].ID != second.ID {
		t.Fatalf("expected second question to keep its slot")
	}
}

// TestUpdateQuestionUnknownID verifies a non-matching id is a silent
// no-op.
func TestUpdateQuestionUnknownID(t *testing.T) {
	s, _, _ := newTestStore(t)
	created := s.CreateForm("Untitled Form", "")
	s.AddQuestion(form.Question{Type: form.TypeShort, Title: "Only"})
	before, _ := s.GetForm(created.ID)
	s.UpdateQuestion(form.Question{ID: "q-nope", Type: form.TypeShort, Title: "Ghost"})
	after, _ := s.GetForm(created.ID)
	if !reflect.DeepEqual(before.Questions, after.Questions) {
		t.Fatalf("expected questions unchanged")
	}
}

// TestSubmitResponseCounts verifies a submission bumps exactly the
// target form's count and never touches updatedAt.
func TestSubmitResponseCounts(t *testing.T) {
	s, _, clock := newTestStore(t)
	other := s.CreateForm("Other", "")
	target := s.CreateForm("Target", "")
	q, _ := s.AddQuestion(choiceQuestion())
	before, _ := s.GetForm(target.ID)

	clock.Advance(time.Hour)
	err := s.SubmitResponse(target.ID, []form.Answer{{QuestionID: q.ID, Value: "Option 1"}})
	if err != nil {
		t.Fatalf("submit failed: %v", err)
	}

	got, _ := s.GetForm(target.ID)
	if got.ResponseCount != 1 {
		t.Fatalf("expected responseCount=1, got %d", got.ResponseCount)
	}
	if !got.UpdatedAt.Equal(before.UpdatedAt) {
		t.Fatalf("expected updatedAt untouched by submission")
	}
	otherGot, _ := s.GetForm(other.ID)
	if otherGot.ResponseCount != 0 {
		t.Fatalf("expected other form untouched, got %d", otherGot.ResponseCount)
	}
}

// TestSubmitResponseRequiredValidation verifies required questions
// block submission before any state changes.
func TestSubmitResponseRequiredValidation(t *testing.T) {
	s, _, _ := newTestStore(t)
	created := s.CreateForm("Untitled Form", "")
	q := choiceQuestion()
	q.Required = true
	added, _ := s.AddQuestion(q)

	err := s.SubmitResponse(created.ID, nil)
	var verr *form.ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected validation error, got %v", err)
	}
	if len(verr.Missing) != 1 || verr.Missing[0] != added.ID {
		t.Fatalf("expected missing question %q, got %v", added.ID, verr.Missing)
	}
	got, _ := s.GetForm(created.ID)
	if got.ResponseCount != 0 || len(s.Responses(created.ID)) != 0 {
		t.Fatalf("expected no partial submission recorded")
	}
}

// TestSubmitResponseMissingForm verifies a stale form id is a silent
// no-op.
func TestSubmitResponseMissingForm(t *testing.T) {
	s, _, _ := newTestStore(t)
	before := s.Snapshot()
	if err := s.SubmitResponse("form-nope", nil); err != nil {
		t.Fatalf("expected silent no-op, got %v", err)
	}
	if !reflect.DeepEqual(before, s.Snapshot()) {
		t.Fatalf("expected snapshot unchanged")
	}
}

// TestSubmitCheckboxEmptyAllowedWhenOptional verifies an optional
// checkbox may be submitted with no selections.
func TestSubmitCheckboxEmptyAllowedWhenOptional(t *testing.T) {
	s, _, _ := newTestStore(t)
	created := s.CreateForm("Untitled Form", "")
	q, _ := s.AddQuestion(form.Question{
		Type:    form.TypeCheckbox,
		Title:   "Pick any",
		Options: []form.Option{{Value: "A"}, {Value: "B"}},
	})
	if err := s.SubmitResponse(created.ID, []form.Answer{{QuestionID: q.ID}}); err != nil {
		t.Fatalf("expected optional checkbox to submit, got %v", err)
	}
}

// TestDeleteFormCascades verifies deletion removes the form and its
// responses, clears selection, and stays idempotent.
func TestDeleteFormCascades(t *testing.T) {
	s, _, _ := newTestStore(t)
	created := s.CreateForm("Untitled Form", "")
	q, _ := s.AddQuestion(choiceQuestion())
	if err := s.SubmitResponse(created.ID, []form.Answer{{QuestionID: q.ID, Value: "Option 1"}}); err != nil {
		t.Fatalf("submit failed: %v", err)
	}

	s.DeleteForm(created.ID)
	if _, ok := s.GetForm(created.ID); ok {
		t.Fatalf("expected form to be gone")
	}
	if len(s.Forms()) != 0 {
		t.Fatalf("expected forms sequence to be empty")
	}
	if len(s.Responses(created.ID)) != 0 {
		t.Fatalf("expected cascaded response deletion")
	}
	if _, ok := s.CurrentForm(); ok {
		t.Fatalf("expected current form cleared")
	}

	// Absorbing: the second delete is a no-op, not an error.
	s.DeleteForm(created.ID)
}

// TestOperationsAfterDeleteAreNoOps verifies the deleted state is
// absorbing for stale ids.
func TestOperationsAfterDeleteAreNoOps(t *testing.T) {
	s, _, _ := newTestStore(t)
	created := s.CreateForm("Untitled Form", "")
	s.DeleteForm(created.ID)
	before := s.Snapshot()

	s.SetCurrentForm(created.ID)
	title := "Ghost"
	s.UpdateForm(FormUpdate{Title: &title})
	s.DeleteQuestion("q-1")
	if err := s.SubmitResponse(created.ID, nil); err != nil {
		t.Fatalf("expected silent no-op, got %v", err)
	}
	if !reflect.DeepEqual(before, s.Snapshot()) {
		t.Fatalf("expected all stale-id operations to be no-ops")
	}
}

// TestPersistenceFailureKeepsMemoryAuthoritative verifies a failed
// save warns but does not roll back the mutation.
func TestPersistenceFailureKeepsMemoryAuthoritative(t *testing.T) {
	adapter := &persist.MemoryAdapter{FailSaves: true}
	var warned error
	s := New(Options{
		Adapter: adapter,
		IDs:     &form.CounterSource{},
		Warn:    func(err error) { warned = err },
	})
	created := s.CreateForm("Untitled Form", "")
	if warned == nil {
		t.Fatalf("expected a persistence warning")
	}
	if _, ok := s.GetForm(created.ID); !ok {
		t.Fatalf("expected in-memory state to keep the form")
	}
}

// TestReloadRecomputesResponseCounts verifies counts are repaired
// from persisted responses on load.
func TestReloadRecomputesResponseCounts(t *testing.T) {
	clock := testutil.NewFakeClock(time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC))
	adapter := &persist.MemoryAdapter{}
	s := New(Options{Adapter: adapter, IDs: &form.CounterSource{}, Now: clock.Now})
	created := s.CreateForm("Untitled Form", "")
	q, _ := s.AddQuestion(choiceQuestion())
	for i := 0; i < 3; i++ {
		if err := s.SubmitResponse(created.ID, []form.Answer{{QuestionID: q.ID, Value: "Option 1"}}); err != nil {
			t.Fatalf("submit failed: %v", err)
		}
	}

	reloaded := New(Options{Adapter: adapter, IDs: &form.CounterSource{}, Now: clock.Now})
	got, ok := reloaded.GetForm(created.ID)
	if !ok {
		t.Fatalf("expected form to survive reload")
	}
	if got.ResponseCount != 3 {
		t.Fatalf("expected responseCount=3 after reload, got %d", got.ResponseCount)
	}
}

// TestScenarioChoiceSubmission walks the create → add question →
// submit → inspect flow end to end.
func TestScenarioChoiceSubmission(t *testing.T) {
	s, _, _ := newTestStore(t)
	created := s.CreateForm("Untitled Form", "")
	q, _ := s.AddQuestion(choiceQuestion())

	err := s.SubmitResponse(created.ID, []form.Answer{{QuestionID: q.ID, Value: "Option 1"}})
	if err != nil {
		t.Fatalf("submit failed: %v", err)
	}

	got, _ := s.GetForm(created.ID)
	if got.ResponseCount != 1 {
		t.Fatalf("expected responseCount=1, got %d", got.ResponseCount)
	}
	if len(got.Questions) != 1 || len(got.Questions[0].Options) != 1 ||
		got.Questions[0].Options[0].Value != "Option 1" {
		t.Fatalf("expected options unchanged, got %+v", got.Questions)
	}
}
