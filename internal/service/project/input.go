package project

import (
	"strings"
	"time"

	"github.com/wigac/wigac-backend/internal/domain"
)

// CreateInput holds parameters for project creation.
type CreateInput struct {
	Name        string
	Description *string
	Status      *domain.ProjectStatus
	Color       *string
	StartDate   *time.Time
	EndDate     *time.Time
}

func (i *CreateInput) normalize() {
	i.Name = strings.TrimSpace(i.Name)
}

// Validate validates the create input.
func (i CreateInput) Validate() error {
	var errs []domain.FieldError

	if i.Name == "" {
		errs = append(errs, domain.FieldError{Field: "name", Message: "required"})
	} else if len(i.Name) > 255 {
		errs = append(errs, domain.FieldError{Field: "name", Message: "too long"})
	}
	if i.Status != nil && !i.Status.IsValid() {
		errs = append(errs, domain.FieldError{Field: "status", Message: "must be ACTIVE, ON_HOLD or COMPLETED"})
	}
	if i.StartDate != nil && i.EndDate != nil && i.EndDate.Before(*i.StartDate) {
		errs = append(errs, domain.FieldError{Field: "endDate", Message: "must not be before startDate"})
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// UpdateInput holds a partial project update. Nil fields are unchanged.
type UpdateInput struct {
	Name        *string
	Description *string
	Status      *domain.ProjectStatus
	Color       *string
	StartDate   *time.Time
	EndDate     *time.Time
}

// Validate validates the update input.
func (i UpdateInput) Validate() error {
	var errs []domain.FieldError

	if i.Name != nil && strings.TrimSpace(*i.Name) == "" {
		errs = append(errs, domain.FieldError{Field: "name", Message: "required"})
	}
	if i.Status != nil && !i.Status.IsValid() {
		errs = append(errs, domain.FieldError{Field: "status", Message: "must be ACTIVE, ON_HOLD or COMPLETED"})
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

func (i UpdateInput) apply(p *domain.Project) {
	if i.Name != nil {
		p.Name = strings.TrimSpace(*i.Name)
	}
	if i.Description != nil {
		p.Description = i.Description
	}
	if i.Status != nil {
		p.Status = *i.Status
	}
	if i.Color != nil {
		p.Color = i.Color
	}
	if i.StartDate != nil {
		p.StartDate = i.StartDate
	}
	if i.EndDate != nil {
		p.EndDate = i.EndDate
	}
}
