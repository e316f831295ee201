// Package activity implements coarse hours-per-day records. Activities are
// personal: every caller, administrators included, sees only their own.
package activity

import (
	"context"
	"fmt"
	"log/slog"
	"math"
	"strings"

	"github.com/google/uuid"

	"github.com/wigac/wigac-backend/internal/access"
	"github.com/wigac/wigac-backend/internal/domain"
)

type activityRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Activity, error)
	List(ctx context.Context, scope access.Scope, f domain.ActivityFilter) ([]domain.Activity, error)
	Create(ctx context.Context, a *domain.Activity) (*domain.Activity, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type taskRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Task, error)
}

// Service implements activity operations.
type Service struct {
	log        *slog.Logger
	activities activityRepo
	tasks      taskRepo
	guard      *access.Guard
}

// NewService creates a new activity service.
func NewService(logger *slog.Logger, activities activityRepo, tasks taskRepo, guard *access.Guard) *Service {
	return &Service{
		log:        logger.With("service", "activity"),
		activities: activities,
		tasks:      tasks,
		guard:      guard,
	}
}

// CreateInput holds parameters for a new activity.
type CreateInput struct {
	TaskID      uuid.UUID
	Date        string
	Hours       float64
	Description *string
}

// Validate checks the input.
func (i CreateInput) Validate() error {
	var errs []domain.FieldError
	if i.TaskID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "taskId", Message: "required"})
	}
	if !domain.ValidDay(i.Date) {
		errs = append(errs, domain.FieldError{Field: "date", Message: "must be YYYY-MM-DD"})
	}
	if i.Hours <= 0 || math.IsNaN(i.Hours) || math.IsInf(i.Hours, 0) {
		errs = append(errs, domain.FieldError{Field: "hours", Message: "must be greater than 0"})
	} else if i.Hours > 24 {
		errs = append(errs, domain.FieldError{Field: "hours", Message: "must not exceed 24"})
	}
	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// List returns the caller's activities for one day or an inclusive range.
func (s *Service) List(ctx context.Context, f domain.ActivityFilter) ([]domain.Activity, error) {
	actor, err := access.ActorFromCtx(ctx)
	if err != nil {
		return nil, err
	}
	if err := validateFilter(f); err != nil {
		return nil, err
	}
	out, err := s.activities.List(ctx, access.OwnScope(actor), f)
	if err != nil {
		return nil, fmt.Errorf("activity.List: %w", err)
	}
	return out, nil
}

// ListFor returns userID's activities matching f. Callers check access.
func (s *Service) ListFor(ctx context.Context, userID uuid.UUID, f domain.ActivityFilter) ([]domain.Activity, error) {
	out, err := s.activities.List(ctx, access.Scope{OwnerID: &userID}, f)
	if err != nil {
		return nil, fmt.Errorf("activity.ListFor: %w", err)
	}
	return out, nil
}

// Create records hours on a task the caller may access.
func (s *Service) Create(ctx context.Context, input CreateInput) (*domain.Activity, error) {
	actor, err := access.ActorFromCtx(ctx)
	if err != nil {
		return nil, err
	}
	if err := input.Validate(); err != nil {
		return nil, err
	}

	t, err := s.tasks.GetByID(ctx, input.TaskID)
	if err != nil {
		return nil, fmt.Errorf("activity task: %w", err)
	}
	if err := s.guard.Check(ctx, actor, t); err != nil {
		return nil, err
	}

	a := &domain.Activity{
		ID:          uuid.New(),
		UserID:      actor.ID,
		TaskID:      input.TaskID,
		Date:        input.Date,
		Hours:       input.Hours,
		Description: trimmed(input.Description),
	}
	created, err := s.activities.Create(ctx, a)
	if err != nil {
		return nil, fmt.Errorf("activity.Create: %w", err)
	}

	s.log.InfoContext(ctx, "activity created",
		slog.String("activity_id", created.ID.String()),
		slog.String("user_id", actor.ID.String()),
		slog.Float64("hours", created.Hours))
	return created, nil
}

// Delete removes one of the caller's activities.
func (s *Service) Delete(ctx context.Context, id uuid.UUID) error {
	actor, err := access.ActorFromCtx(ctx)
	if err != nil {
		return err
	}
	a, err := s.activities.GetByID(ctx, id)
	if err != nil {
		return fmt.Errorf("activity.Delete: %w", err)
	}
	if err := s.guard.Check(ctx, actor, a); err != nil {
		return err
	}
	if err := s.activities.Delete(ctx, id); err != nil {
		return fmt.Errorf("activity.Delete: %w", err)
	}
	return nil
}

func validateFilter(f domain.ActivityFilter) error {
	var errs []domain.FieldError
	check := func(field, v string) {
		if v != "" && !domain.ValidDay(v) {
			errs = append(errs, domain.FieldError{Field: field, Message: "must be YYYY-MM-DD"})
		}
	}
	check("date", f.Date)
	check("startDate", f.From)
	check("endDate", f.To)
	if len(errs) == 0 && f.Date == "" && f.From != "" && f.To != "" && f.To < f.From {
		errs = append(errs, domain.FieldError{Field: "endDate", Message: "must not be before startDate"})
	}
	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

func trimmed(s *string) *string {
	if s == nil {
		return nil
	}
	v := strings.TrimSpace(*s)
	if v == "" {
		return nil
	}
	return &v
}
