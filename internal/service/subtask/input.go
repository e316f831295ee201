package subtask

import (
	"errors"
	"strings"

	"github.com/google/uuid"

	"github.com/wigac/wigac-backend/internal/domain"
)

// CreateInput holds parameters for a new time entry.
type CreateInput struct {
	TaskID      uuid.UUID
	Description string
	WorkDate    string
	StartTime   string
	EndTime     string
}

func (i CreateInput) build() (*domain.Subtask, error) {
	e := &domain.Subtask{
		ID:          uuid.New(),
		TaskID:      i.TaskID,
		Description: strings.TrimSpace(i.Description),
		WorkDate:    i.WorkDate,
		StartTime:   i.StartTime,
		EndTime:     i.EndTime,
	}

	var errs []domain.FieldError
	if i.TaskID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "taskId", Message: "required"})
	}
	if err := complete(e, errs); err != nil {
		return nil, err
	}
	return e, nil
}

// UpdateInput holds a partial entry update. Nil fields are unchanged.
type UpdateInput struct {
	Description *string
	WorkDate    *string
	StartTime   *string
	EndTime     *string
}

func (i UpdateInput) apply(e *domain.Subtask) error {
	if i.Description != nil {
		e.Description = strings.TrimSpace(*i.Description)
	}
	if i.WorkDate != nil {
		e.WorkDate = *i.WorkDate
	}
	if i.StartTime != nil {
		e.StartTime = *i.StartTime
	}
	if i.EndTime != nil {
		e.EndTime = *i.EndTime
	}
	return complete(e, nil)
}

// complete validates e and derives its minutes, merging field errors
// collected by the caller.
func complete(e *domain.Subtask, errs []domain.FieldError) error {
	if !domain.ValidDay(e.WorkDate) {
		errs = append(errs, domain.FieldError{Field: "workDate", Message: "must be YYYY-MM-DD"})
	}
	minutes, err := domain.EntryMinutes(e.StartTime, e.EndTime)
	if err != nil {
		var ve *domain.ValidationError
		if !errors.As(err, &ve) {
			return err
		}
		errs = append(errs, ve.Errors...)
	}
	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	e.TimeSpentMinutes = minutes
	return nil
}
