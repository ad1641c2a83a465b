// Package store owns the canonical collection of forms and the
// currently open form. Every mutation goes through its operations so
// derived fields (updatedAt, responseCount) stay consistent, and each
// mutation triggers a whole-snapshot save through the adapter.
package store

import (
	"sync"
	"time"

	"formsmith/internal/form"
	"formsmith/internal/persist"
)

// Store is the single-writer state core. All operations run to
// completion under one lock; readers get deep copies.
type Store struct {
	mu       sync.RWMutex
	snapshot form.Snapshot
	adapter  persist.Adapter
	ids      form.IDSource
	now      func() time.Time
	warn     func(error)
}

// Options configures a Store. Zero-value fields get defaults: a
// memory adapter, UUID ids, time.Now, and discarded warnings.
type Options struct {
	Adapter persist.Adapter
	IDs     form.IDSource
	Now     func() time.Time
	// Warn receives persistence failures. They never abort the
	// triggering operation; in-memory state stays authoritative.
	Warn func(error)
}

// FormUpdate carries partial changes for the current form. Nil fields
// are left untouched.
type FormUpdate struct {
	Title       *string
	Description *string
}

// New constructs a store and loads the persisted snapshot once.
// Derived fields are repaired against the loaded responses so a
// hand-edited or stale payload cannot break the count invariant.
func New(opts Options) *Store {
	s := &Store{
		adapter: opts.Adapter,
		ids:     opts.IDs,
		now:     opts.Now,
		warn:    opts.Warn,
	}
	if s.adapter == nil {
		s.adapter = &persist.MemoryAdapter{}
	}
	if s.ids == nil {
		s.ids = form.UUIDSource{}
	}
	if s.now == nil {
		s.now = time.Now
	}
	s.snapshot = s.adapter.Load()
	s.repair()
	return s
}

// repair recomputes response counts and drops a dangling current id.
func (s *Store) repair() {
	counts := make(map[string]int, len(s.snapshot.Forms))
	for _, r := range s.snapshot.Responses {
		counts[r.FormID]++
	}
	for i := range s.snapshot.Forms {
		s.snapshot.Forms[i].ResponseCount = counts[s.snapshot.Forms[i].ID]
	}
	if s.snapshot.CurrentFormID != "" && s.indexOf(s.snapshot.CurrentFormID) < 0 {
		s.snapshot.CurrentFormID = ""
	}
}

// CreateForm generates a new form, inserts it at the head of the
// sequence so dashboards read newest-first, makes it current, and
// persists. The created form is returned; navigating to it is the
// caller's concern.
func (s *Store) CreateForm(title, description string) form.Form {
	s.mu.Lock()
	defer s.mu.Unlock()
	now := s.now()
	f := form.Form{
		ID:          s.ids.NewID(form.FormIDPrefix),
		Title:       title,
		Description: description,
		Questions:   []form.Question{},
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	s.snapshot.Forms = append([]form.Form{f}, s.snapshot.Forms...)
	s.snapshot.CurrentFormID = f.ID
	s.persist()
	return f.Clone()
}

// GetForm looks up a form by id without touching the current form.
func (s *Store) GetForm(id string) (form.Form, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	i := s.indexOf(id)
	if i < 0 {
		return form.Form{}, false
	}
	return s.snapshot.Forms[i].Clone(), true
}

// SetCurrentForm selects the form with the given id. A missing id is
// a silent no-op.
func (s *Store) SetCurrentForm(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.indexOf(id) < 0 {
		return
	}
	s.snapshot.CurrentFormID = id
	s.persist()
}

// CurrentForm returns the currently open form, if any.
func (s *Store) CurrentForm() (form.Form, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	i := s.indexOf(s.snapshot.CurrentFormID)
	if i < 0 {
		return form.Form{}, false
	}
	return s.snapshot.Forms[i].Clone(), true
}

// UpdateForm applies partial title/description changes to the current
// form, refreshes updatedAt, and persists. No-op without a current
// form.
func (s *Store) UpdateForm(update FormUpdate) {
	s.mu.Lock()
	defer s.mu.Unlock()
	i := s.indexOf(s.snapshot.CurrentFormID)
	if i < 0 {
		return
	}
	f := &s.snapshot.Forms[i]
	if update.Title != nil {
		f.Title = *update.Title
	}
	if update.Description != nil {
		f.Description = *update.Description
	}
	f.UpdatedAt = s.now()
	s.persist()
}

// DeleteForm removes the form and every response referencing it.
// Deleting the current form clears the selection. Idempotent: a
// missing id is a no-op.
func (s *Store) DeleteForm(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	i := s.indexOf(id)
	if i < 0 {
		return
	}
	s.snapshot.Forms = append(s.snapshot.Forms[:i], s.snapshot.Forms[i+1:]...)
	kept := s.snapshot.Responses[:0]
	for _, r := range s.snapshot.Responses {
		if r.FormID != id {
			kept = append(kept, r)
		}
	}
	s.snapshot.Responses = kept
	if s.snapshot.CurrentFormID == id {
		s.snapshot.CurrentFormID = ""
	}
	s.persist()
}

// AddQuestion assigns the question an id, appends it to the current
// form's sequence, refreshes updatedAt, and persists. Options missing
// ids get them assigned. Returns the stored question; ok is false
// when no form is current.
func (s *Store) AddQuestion(q form.Question) (form.Question, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	i := s.indexOf(s.snapshot.CurrentFormID)
	if i < 0 {
		return form.Question{}, false
	}
	q = q.Clone()
	q.ID = s.ids.NewID(form.QuestionIDPrefix)
	for j := range q.Options {
		if q.Options[j].ID == "" {
			q.Options[j].ID = s.ids.NewID(form.OptionIDPrefix)
		}
	}
	f := &s.snapshot.Forms[i]
	f.Questions = append(f.Questions, q)
	f.UpdatedAt = s.now()
	s.persist()
	return q.Clone(), true
}

// UpdateQuestion replaces the question with a matching id in the
// current form, preserving position. Silent no-op when there is no
// current form or no match.
func (s *Store) UpdateQuestion(q form.Question) {
	s.mu.Lock()
	defer s.mu.Unlock()
	i := s.indexOf(s.snapshot.CurrentFormID)
	if i < 0 {
		return
	}
	f := &s.snapshot.Forms[i]
	for j := range f.Questions {
		if f.Questions[j].ID != q.ID {
			continue
		}
		q = q.Clone()
		for k := range q.Options {
			if q.Options[k].ID == "" {
				q.Options[k].ID = s.ids.NewID(form.OptionIDPrefix)
			}
		}
		f.Questions[j] = q
		f.UpdatedAt = s.now()
		s.persist()
		return
	}
}

// DeleteQuestion removes the question with a matching id from the
// current form, shifting later questions up. Idempotent.
func (s *Store) DeleteQuestion(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	i := s.indexOf(s.snapshot.CurrentFormID)
	if i < 0 {
		return
	}
	f := &s.snapshot.Forms[i]
	for j := range f.Questions {
		if f.Questions[j].ID != id {
			continue
		}
		f.Questions = append(f.Questions[:j], f.Questions[j+1:]...)
		f.UpdatedAt = s.now()
		s.persist()
		return
	}
}

// SubmitResponse validates required questions, appends a response,
// and bumps the target form's response count. Submissions are
// content-neutral: updatedAt is untouched. A missing form id is a
// silent no-op; a *form.ValidationError is returned before any state
// changes when required questions lack values.
func (s *Store) SubmitResponse(formID string, answers []form.Answer) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	i := s.indexOf(formID)
	if i < 0 {
		return nil
	}
	if err := form.ValidateAnswers(s.snapshot.Forms[i], answers); err != nil {
		return err
	}
	r := form.Response{
		FormID:      formID,
		Answers:     answers,
		SubmittedAt: s.now(),
	}
	s.snapshot.Responses = append(s.snapshot.Responses, r.Clone())
	s.snapshot.Forms[i].ResponseCount++
	s.persist()
	return nil
}

// Forms returns a deep copy of the forms sequence, head-first.
func (s *Store) Forms() []form.Form {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]form.Form, len(s.snapshot.Forms))
	for i, f := range s.snapshot.Forms {
		out[i] = f.Clone()
	}
	return out
}

// Responses returns deep copies of the responses recorded for a form,
// in submission order.
func (s *Store) Responses(formID string) []form.Response {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []form.Response
	for _, r := range s.snapshot.Responses {
		if r.FormID == formID {
			out = append(out, r.Clone())
		}
	}
	return out
}

// Snapshot returns a deep copy of the full store state.
func (s *Store) Snapshot() form.Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.snapshot.Clone()
}

// indexOf finds a form's position by id, or -1. Callers hold the lock.
func (s *Store) indexOf(id string) int {
	if id == "" {
		return -1
	}
	for i := range s.snapshot.Forms {
		if s.snapshot.Forms[i].ID == id {
			return i
		}
	}
	return -1
}

// persist saves the snapshot and routes failures to the warning
// callback. Callers hold the write lock.
func (s *Store) persist() {
	if err := s.adapter.Save(s.snapshot); err != nil && s.warn != nil {
		s.warn(err)
	}
}
