package task

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/wigac/wigac-backend/internal/domain"
)

// CreateInput holds parameters for task creation. Status and Priority are
// raw client values; empty means the default.
type CreateInput struct {
	Title          string
	Description    *string
	Status         string
	IsTransversal  *bool
	Priority       string
	Department     *string
	StartDate      *time.Time
	DueDate        *time.Time
	ProjectID      *uuid.UUID
	AssignedUserID *uuid.UUID
	MapPositionX   *float64
	MapPositionY   *float64
}

func (i CreateInput) build(owner uuid.UUID) (*domain.Task, error) {
	var errs []domain.FieldError

	title := strings.TrimSpace(i.Title)
	if title == "" {
		errs = append(errs, domain.FieldError{Field: "title", Message: "required"})
	} else if len(title) > 255 {
		errs = append(errs, domain.FieldError{Field: "title", Message: "too long"})
	}

	status, legacy := domain.TaskStatusPending, false
	if i.Status != "" {
		var ok bool
		if status, legacy, ok = domain.ParseTaskStatus(i.Status); !ok {
			errs = append(errs, domain.FieldError{Field: "status", Message: "must be PENDING, IN_PROGRESS or COMPLETED"})
		}
	}

	priority := domain.TaskPriorityMedium
	if i.Priority != "" {
		priority = domain.TaskPriority(i.Priority)
		if !priority.IsValid() {
			errs = append(errs, domain.FieldError{Field: "priority", Message: "must be LOW, MEDIUM, HIGH or CRITICAL"})
		}
	}

	if i.StartDate != nil && i.DueDate != nil && i.DueDate.Before(*i.StartDate) {
		errs = append(errs, domain.FieldError{Field: "dueDate", Message: "must not be before startDate"})
	}

	if len(errs) > 0 {
		return nil, domain.NewValidationErrors(errs)
	}

	return &domain.Task{
		ID:             uuid.New(),
		Title:          title,
		Description:    i.Description,
		Status:         status,
		IsTransversal:  resolveTransversal(legacy, i.IsTransversal, false),
		Priority:       priority,
		Department:     i.Department,
		StartDate:      i.StartDate,
		DueDate:        i.DueDate,
		ProjectID:      i.ProjectID,
		CreatedByID:    owner,
		AssignedUserID: i.AssignedUserID,
		MapPositionX:   i.MapPositionX,
		MapPositionY:   i.MapPositionY,
	}, nil
}

// UpdateInput holds a partial task update. Nil fields are unchanged.
type UpdateInput struct {
	Title          *string
	Description    *string
	Status         *string
	IsTransversal  *bool
	Priority       *string
	Department     *string
	StartDate      *time.Time
	DueDate        *time.Time
	ProjectID      *uuid.UUID
	AssignedUserID *uuid.UUID
	MapPositionX   *float64
	MapPositionY   *float64
}

func (i UpdateInput) apply(t *domain.Task) error {
	var errs []domain.FieldError

	if i.Title != nil {
		title := strings.TrimSpace(*i.Title)
		if title == "" {
			errs = append(errs, domain.FieldError{Field: "title", Message: "required"})
		}
		t.Title = title
	}
	legacy := false
	if i.Status != nil {
		status, isLegacy, ok := domain.ParseTaskStatus(*i.Status)
		if !ok {
			errs = append(errs, domain.FieldError{Field: "status", Message: "must be PENDING, IN_PROGRESS or COMPLETED"})
		}
		t.Status, legacy = status, isLegacy
	}
	t.IsTransversal = resolveTransversal(legacy, i.IsTransversal, t.IsTransversal)
	if i.Priority != nil {
		p := domain.TaskPriority(*i.Priority)
		if !p.IsValid() {
			errs = append(errs, domain.FieldError{Field: "priority", Message: "must be LOW, MEDIUM, HIGH or CRITICAL"})
		}
		t.Priority = p
	}
	if i.Description != nil {
		t.Description = i.Description
	}
	if i.Department != nil {
		t.Department = i.Department
	}
	if i.StartDate != nil {
		t.StartDate = i.StartDate
	}
	if i.DueDate != nil {
		t.DueDate = i.DueDate
	}
	if i.ProjectID != nil {
		t.ProjectID = i.ProjectID
	}
	if i.AssignedUserID != nil {
		t.AssignedUserID = i.AssignedUserID
	}
	if i.MapPositionX != nil {
		t.MapPositionX = i.MapPositionX
	}
	if i.MapPositionY != nil {
		t.MapPositionY = i.MapPositionY
	}
	if t.StartDate != nil && t.DueDate != nil && t.DueDate.Before(*t.StartDate) {
		errs = append(errs, domain.FieldError{Field: "dueDate", Message: "must not be before startDate"})
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// StatusInput is the body of a status change.
type StatusInput struct {
	Status        string
	IsTransversal *bool
}
