// Package reports assembles time-tracking data for the text reports, the
// weekly timesheet and the daily work report PDF.
package reports

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/wigac/wigac-backend/internal/access"
	"github.com/wigac/wigac-backend/internal/domain"
	"github.com/wigac/wigac-backend/internal/report"
)

type taskSource interface {
	ListFor(ctx context.Context, scope access.Scope, f domain.TaskFilter) ([]domain.Task, error)
	RangeFor(ctx context.Context, scope access.Scope, from, to string) ([]domain.Task, error)
}

type activitySource interface {
	ListFor(ctx context.Context, userID uuid.UUID, f domain.ActivityFilter) ([]domain.Activity, error)
}

type userRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error)
}

type pdfRenderer interface {
	WorkReport(w report.WorkReport) ([]byte, error)
}

type mailSender interface {
	Send(ctx context.Context, msg report.Mail) error
}

// Service implements report operations.
type Service struct {
	log        *slog.Logger
	tasks      taskSource
	activities activitySource
	users      userRepo
	pdf        pdfRenderer
	mail       mailSender
	gen        *report.Generator
	guard      *access.Guard
}

// NewService creates a new report service.
func NewService(
	logger *slog.Logger,
	tasks taskSource,
	activities activitySource,
	users userRepo,
	pdf pdfRenderer,
	mail mailSender,
	gen *report.Generator,
	guard *access.Guard,
) *Service {
	return &Service{
		log:        logger.With("service", "reports"),
		tasks:      tasks,
		activities: activities,
		users:      users,
		pdf:        pdf,
		mail:       mail,
		gen:        gen,
		guard:      guard,
	}
}

// day defaults an empty date to today in the report timezone.
func (s *Service) day(date string) (string, error) {
	if date == "" {
		return s.gen.Now().Format(domain.DayLayout), nil
	}
	if !domain.ValidDay(date) {
		return "", domain.NewValidationError("date", "must be YYYY-MM-DD")
	}
	return date, nil
}

// subject resolves whose data a report covers. Reports on another user are
// open to administrators only.
func (s *Service) subject(ctx context.Context, actor access.Actor, userID *uuid.UUID) (*domain.User, error) {
	id := actor.ID
	if userID != nil {
		id = *userID
	}
	u, err := s.users.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("reports user: %w", err)
	}
	if err := s.guard.Check(ctx, actor, u); err != nil {
		return nil, err
	}
	return u, nil
}
