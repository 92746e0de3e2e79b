package feedback

import (
	"time"

	"github.com/pkg/errors"

	"github.com/secwepemc-ed/curricula/core"
)

// Feedback is one visitor report about a piece of curriculum content.
type Feedback struct {
	ID        string    `json:"id"`
	ModuleID  string    `json:"module_id,omitempty"`
	UnitID    string    `json:"unit_id,omitempty"`
	LessonID  string    `json:"lesson_id,omitempty"`
	Email     string    `json:"email,omitempty"`
	Message   string    `json:"message"`
	CreatedAt time.Time `json:"created_at"` // UTC
}

// NewFeedback contains information needed to submit a report.
type NewFeedback struct {
	ModuleID string `json:"module_id" validate:"omitempty,max=100"`
	UnitID   string `json:"unit_id" validate:"omitempty,max=100"`
	LessonID string `json:"lesson_id" validate:"omitempty,max=100"`
	Email    string `json:"email" validate:"omitempty,email"`
	Message  string `json:"message" validate:"required,max=4000"`
}

func (nf *NewFeedback) Validate() error {
	nf.ModuleID = core.CleanString(nf.ModuleID)
	nf.UnitID = core.CleanString(nf.UnitID)
	nf.LessonID = core.CleanString(nf.LessonID)
	nf.Email = core.CleanString(nf.Email, true /* lower */)
	nf.Message = core.CleanString(nf.Message)
	if err := core.Validate.Struct(nf); err != nil {
		return err
	}

	// content coordinates only mean something within their parent; the tag
	// syntax cannot express this
	if nf.LessonID != "" && nf.UnitID == "" {
		return core.NewValidationError(
			errors.New("invalid content coordinates"),
			core.FieldError{Field: "unit_id", Error: "unit_id is required when lesson_id is given"},
		)
	}
	if nf.UnitID != "" && nf.ModuleID == "" {
		return core.NewValidationError(
			errors.New("invalid content coordinates"),
			core.FieldError{Field: "module_id", Error: "module_id is required when unit_id is given"},
		)
	}
	return nil
}
