package analytics

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"formsmith/internal/form"
)

// IngestSnapshot loads every form, question, option, and response of
// a snapshot into the database inside one transaction.
func IngestSnapshot(ctx context.Context, db *sql.DB, snapshot form.Snapshot) error {
	if db == nil {
		return errors.New("analytics: db is nil")
	}
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin ingest: %w", err)
	}
	if err := ingestForms(ctx, tx, snapshot.Forms); err != nil {
		tx.Rollback()
		return err
	}
	if err := ingestResponses(ctx, tx, snapshot.Responses); err != nil {
		tx.Rollback()
		return err
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit ingest: %w", err)
	}
	return nil
}

// ingestForms inserts forms with their questions and options.
func ingestForms(ctx context.Context, tx *sql.Tx, forms []form.Form) error {
	for _, f := range forms {
		if _, err := tx.ExecContext(
			ctx,
			`INSERT INTO forms (form_id, title, description, created_at, updated_at)
			 VALUES (?, ?, ?, ?, ?)`,
			f.ID, f.Title, f.Description, f.CreatedAt, f.UpdatedAt,
		); err != nil {
			return fmt.Errorf("insert form %s: %w", f.ID, err)
		}
		for qi, q := range f.Questions {
			if _, err := tx.ExecContext(
				ctx,
				`INSERT INTO questions (question_id, form_id, position, question_type, title, required)
				 VALUES (?, ?, ?, ?, ?, ?)`,
				q.ID, f.ID, qi, string(q.Type), q.Title, q.Required,
			); err != nil {
				return fmt.Errorf("insert question %s: %w", q.ID, err)
			}
			for oi, opt := range q.Options {
				if _, err := tx.ExecContext(
					ctx,
					`INSERT INTO options (option_id, question_id, position, value)
					 VALUES (?, ?, ?, ?)`,
					opt.ID, q.ID, oi, opt.Value,
				); err != nil {
					return fmt.Errorf("insert option %s: %w", opt.ID, err)
				}
			}
		}
	}
	return nil
}

// ingestResponses inserts responses and their exploded answer values.
func ingestResponses(ctx context.Context, tx *sql.Tx, responses []form.Response) error {
	for seq, r := range responses {
		if _, err := tx.ExecContext(
			ctx,
			`INSERT INTO responses (response_seq, form_id, submitted_at) VALUES (?, ?, ?)`,
			seq, r.FormID, r.SubmittedAt,
		); err != nil {
			return fmt.Errorf("insert response %d: %w", seq, err)
		}
		for _, a := range r.Answers {
			values := a.Values
			if len(values) == 0 && a.Value != "" {
				values = []string{a.Value}
			}
			for _, v := range values {
				if _, err := tx.ExecContext(
					ctx,
					`INSERT INTO answers (response_seq, form_id, question_id, value)
					 VALUES (?, ?, ?, ?)`,
					seq, r.FormID, a.QuestionID, v,
				); err != nil {
					return fmt.Errorf("insert answer %d/%s: %w", seq, a.QuestionID, err)
				}
			}
		}
	}
	return nil
}
