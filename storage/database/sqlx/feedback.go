package sqlxrepos

import (
	"context"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/pkg/errors"

	"github.com/secwepemc-ed/curricula/core/feedback"
)

type feedbackRow struct {
	ID        string    `db:"id"`
	ModuleID  string    `db:"module_id"`
	UnitID    string    `db:"unit_id"`
	LessonID  string    `db:"lesson_id"`
	Email     string    `db:"email"`
	Message   string    `db:"message"`
	CreatedAt time.Time `db:"created_at"`
}

func (r feedbackRow) toFeedback() feedback.Feedback {
	return feedback.Feedback{
		ID:        r.ID,
		ModuleID:  r.ModuleID,
		UnitID:    r.UnitID,
		LessonID:  r.LessonID,
		Email:     r.Email,
		Message:   r.Message,
		CreatedAt: r.CreatedAt.UTC(),
	}
}

type feedbackRepository struct {
	db *sqlx.DB
}

var _ feedback.Repository = (*feedbackRepository)(nil)

func NewFeedbackRepository(db *sqlx.DB) *feedbackRepository {
	return &feedbackRepository{db: db}
}

func (repo *feedbackRepository) CreateFeedback(ctx context.Context, fb feedback.Feedback) (feedback.Feedback, error) {
	const query = `
		INSERT INTO feedback (id, module_id, unit_id, lesson_id, email, message, created_at)
		VALUES (:id, :module_id, :unit_id, :lesson_id, :email, :message, :created_at)`

	row := feedbackRow{
		ID:        fb.ID,
		ModuleID:  fb.ModuleID,
		UnitID:    fb.UnitID,
		LessonID:  fb.LessonID,
		Email:     fb.Email,
		Message:   fb.Message,
		CreatedAt: fb.CreatedAt.UTC(),
	}
	if _, err := repo.db.NamedExecContext(ctx, query, row); err != nil {
		return feedback.Feedback{}, errors.Wrap(err, "inserting feedback")
	}
	return fb, nil
}

func (repo *feedbackRepository) QueryAllFeedback(ctx context.Context) ([]feedback.Feedback, error) {
	const query = `
		SELECT id, module_id, unit_id, lesson_id, email, message, created_at
		FROM feedback
		ORDER BY created_at DESC`

	var rows []feedbackRow
	if err := repo.db.SelectContext(ctx, &rows, query); err != nil {
		return nil, errors.Wrap(err, "querying feedback")
	}
	out := make([]feedback.Feedback, 0, len(rows))
	for _, r := range rows {
		out = append(out, r.toFeedback())
	}
	return out, nil
}
