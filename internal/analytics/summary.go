package analytics

import (
	"context"
	"database/sql"
	"fmt"

	"formsmith/internal/form"
)

// ValueCount is one answered value and how often it was chosen.
type ValueCount struct {
	Value string
	Count int
}

// QuestionSummary aggregates answers for one question.
type QuestionSummary struct {
	QuestionID string
	Title      string
	Type       form.QuestionType
	// Answered counts responses that gave this question any value.
	Answered int
	// Counts lists selection counts in option order for option-backed
	// questions, including zero-count options. Text questions list
	// distinct values by frequency instead.
	Counts []ValueCount
}

// FormSummary aggregates the responses recorded for one form.
type FormSummary struct {
	FormID        string
	Title         string
	ResponseCount int
	Questions     []QuestionSummary
}

// Summarize computes the response summary for a form from an ingested
// database. The form must exist in the database.
func Summarize(ctx context.Context, db *sql.DB, formID string) (FormSummary, error) {
	var summary FormSummary
	row := db.QueryRowContext(ctx, `SELECT form_id, title FROM forms WHERE form_id = ?`, formID)
	if err := row.Scan(&summary.FormID, &summary.Title); err != nil {
		return FormSummary{}, fmt.Errorf("summarize form %s: %w", formID, err)
	}
	if err := db.QueryRowContext(
		ctx,
		`SELECT count(*) FROM responses WHERE form_id = ?`, formID,
	).Scan(&summary.ResponseCount); err != nil {
		return FormSummary{}, fmt.Errorf("count responses: %w", err)
	}
	questions, err := summarizeQuestions(ctx, db, formID)
	if err != nil {
		return FormSummary{}, err
	}
	summary.Questions = questions
	return summary, nil
}

// SummarizeSnapshot ingests a snapshot into a scratch in-memory
// database and summarizes one of its forms.
func SummarizeSnapshot(ctx context.Context, snapshot form.Snapshot, formID string) (FormSummary, error) {
	db, err := Open(ctx, "")
	if err != nil {
		return FormSummary{}, err
	}
	defer db.Close()
	if err := EnsureSchema(ctx, db); err != nil {
		return FormSummary{}, err
	}
	if err := IngestSnapshot(ctx, db, snapshot); err != nil {
		return FormSummary{}, err
	}
	return Summarize(ctx, db, formID)
}

// summarizeQuestions builds per-question aggregates in display order.
func summarizeQuestions(ctx context.Context, db *sql.DB, formID string) ([]QuestionSummary, error) {
	rows, err := db.QueryContext(
		ctx,
		`SELECT question_id, title, question_type
		 FROM questions WHERE form_id = ? ORDER BY position`,
		formID,
	)
	if err != nil {
		return nil, fmt.Errorf("list questions: %w", err)
	}
	defer rows.Close()

	var out []QuestionSummary
	for rows.Next() {
		var q QuestionSummary
		var qt string
		if err := rows.Scan(&q.QuestionID, &q.Title, &qt); err != nil {
			return nil, fmt.Errorf("scan question: %w", err)
		}
		q.Type = form.QuestionType(qt)
		out = append(out, q)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate questions: %w", err)
	}

	for i := range out {
		if err := fillQuestionCounts(ctx, db, &out[i]); err != nil {
			return nil, err
		}
	}
	return out, nil
}

// fillQuestionCounts populates Answered and Counts for one question.
func fillQuestionCounts(ctx context.Context, db *sql.DB, q *QuestionSummary) error {
	if err := db.QueryRowContext(
		ctx,
		`SELECT count(DISTINCT response_seq) FROM answers WHERE question_id = ?`,
		q.QuestionID,
	).Scan(&q.Answered); err != nil {
		return fmt.Errorf("count answered: %w", err)
	}

	var query string
	if q.Type.HasOptions() {
		// Keep option order and include never-chosen options.
		query = `SELECT o.value, count(a.value)
			 FROM options o
			 LEFT JOIN answers a ON a.question_id = o.question_id AND a.value = o.value
			 WHERE o.question_id = ?
			 GROUP BY o.value, o.position
			 ORDER BY o.position`
	} else {
		query = `SELECT value, count(*)
			 FROM answers WHERE question_id = ?
			 GROUP BY value ORDER BY count(*) DESC, value`
	}
	rows, err := db.QueryContext(ctx, query, q.QuestionID)
	if err != nil {
		return fmt.Errorf("count values: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		var vc ValueCount
		if err := rows.Scan(&vc.Value, &vc.Count); err != nil {
			return fmt.Errorf("scan value count: %w", err)
		}
		q.Counts = append(q.Counts, vc)
	}
	return rows.Err()
}
