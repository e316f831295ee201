// Package project implements project CRUD scoped to the caller.
package project

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/wigac/wigac-backend/internal/access"
	"github.com/wigac/wigac-backend/internal/domain"
)

type projectRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Project, error)
	List(ctx context.Context, scope access.Scope) ([]domain.Project, error)
	Create(ctx context.Context, p *domain.Project) (*domain.Project, error)
	Update(ctx context.Context, p *domain.Project) (*domain.Project, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// Service implements project operations.
type Service struct {
	log      *slog.Logger
	projects projectRepo
	guard    *access.Guard
}

// NewService creates a new project service.
func NewService(logger *slog.Logger, projects projectRepo, guard *access.Guard) *Service {
	return &Service{
		log:      logger.With("service", "project"),
		projects: projects,
		guard:    guard,
	}
}

// List returns the caller's projects, or every project for an administrator.
func (s *Service) List(ctx context.Context) ([]domain.Project, error) {
	actor, err := access.ActorFromCtx(ctx)
	if err != nil {
		return nil, err
	}
	projects, err := s.projects.List(ctx, s.guard.Scope(ctx, actor, "project"))
	if err != nil {
		return nil, fmt.Errorf("project.List: %w", err)
	}
	return projects, nil
}

// Get returns a project the caller may access. Foreign projects are
// reported as not found.
func (s *Service) Get(ctx context.Context, id uuid.UUID) (*domain.Project, error) {
	actor, err := access.ActorFromCtx(ctx)
	if err != nil {
		return nil, err
	}
	return s.load(ctx, actor, id)
}

func (s *Service) load(ctx context.Context, actor access.Actor, id uuid.UUID) (*domain.Project, error) {
	p, err := s.projects.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("project.Get: %w", err)
	}
	if err := s.guard.Check(ctx, actor, p); err != nil {
		return nil, err
	}
	return p, nil
}

// Create stores a new project owned by the caller.
func (s *Service) Create(ctx context.Context, input CreateInput) (*domain.Project, error) {
	actor, err := access.ActorFromCtx(ctx)
	if err != nil {
		return nil, err
	}
	input.normalize()
	if err := input.Validate(); err != nil {
		return nil, err
	}

	status := domain.ProjectStatusActive
	if input.Status != nil {
		status = *input.Status
	}

	p, err := s.projects.Create(ctx, &domain.Project{
		ID:          uuid.New(),
		Name:        input.Name,
		Description: input.Description,
		Status:      status,
		Color:       input.Color,
		StartDate:   input.StartDate,
		EndDate:     input.EndDate,
		CreatedByID: actor.ID,
	})
	if err != nil {
		return nil, fmt.Errorf("project.Create: %w", err)
	}

	s.log.InfoContext(ctx, "project created",
		slog.String("project_id", p.ID.String()),
		slog.String("user_id", actor.ID.String()))
	return p, nil
}

// Update applies the non-nil fields of input to a project the caller owns.
func (s *Service) Update(ctx context.Context, id uuid.UUID, input UpdateInput) (*domain.Project, error) {
	actor, err := access.ActorFromCtx(ctx)
	if err != nil {
		return nil, err
	}
	if err := input.Validate(); err != nil {
		return nil, err
	}

	p, err := s.load(ctx, actor, id)
	if err != nil {
		return nil, err
	}
	input.apply(p)
	if p.StartDate != nil && p.EndDate != nil && p.EndDate.Before(*p.StartDate) {
		return nil, domain.NewValidationError("endDate", "must not be before startDate")
	}

	updated, err := s.projects.Update(ctx, p)
	if err != nil {
		return nil, fmt.Errorf("project.Update: %w", err)
	}
	return updated, nil
}

// Delete removes a project the caller owns together with its tasks.
func (s *Service) Delete(ctx context.Context, id uuid.UUID) error {
	actor, err := access.ActorFromCtx(ctx)
	if err != nil {
		return err
	}
	if _, err := s.load(ctx, actor, id); err != nil {
		return err
	}
	if err := s.projects.Delete(ctx, id); err != nil {
		return fmt.Errorf("project.Delete: %w", err)
	}

	s.log.InfoContext(ctx, "project deleted",
		slog.String("project_id", id.String()),
		slog.String("user_id", actor.ID.String()))
	return nil
}
