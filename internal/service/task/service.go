// Package task implements task operations, including the status machine,
// map positioning and date-range listings with embedded time entries.
package task

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/wigac/wigac-backend/internal/access"
	"github.com/wigac/wigac-backend/internal/domain"
)

type taskRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Task, error)
	List(ctx context.Context, scope access.Scope, f domain.TaskFilter) ([]domain.Task, error)
	ListByIDs(ctx context.Context, ids []uuid.UUID) ([]domain.Task, error)
	Create(ctx context.Context, t *domain.Task) (*domain.Task, error)
	Update(ctx context.Context, t *domain.Task) (*domain.Task, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status domain.TaskStatus, transversal bool) (*domain.Task, error)
	UpdatePosition(ctx context.Context, id uuid.UUID, x, y float64) (*domain.Task, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type entryRepo interface {
	ListByTask(ctx context.Context, taskID uuid.UUID) ([]domain.Subtask, error)
	ListInRange(ctx context.Context, scope access.Scope, from, to string) ([]domain.Subtask, error)
}

type projectRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Project, error)
}

// Service implements task operations.
type Service struct {
	log      *slog.Logger
	tasks    taskRepo
	entries  entryRepo
	projects projectRepo
	guard    *access.Guard
}

// NewService creates a new task service.
func NewService(logger *slog.Logger, tasks taskRepo, entries entryRepo, projects projectRepo, guard *access.Guard) *Service {
	return &Service{
		log:      logger.With("service", "task"),
		tasks:    tasks,
		entries:  entries,
		projects: projects,
		guard:    guard,
	}
}

// List returns tasks created by or assigned to the caller that match f.
func (s *Service) List(ctx context.Context, f domain.TaskFilter) ([]domain.Task, error) {
	actor, err := access.ActorFromCtx(ctx)
	if err != nil {
		return nil, err
	}
	return s.ListFor(ctx, s.guard.Scope(ctx, actor, "task"), f)
}

// ListFor is List for an explicit scope.
func (s *Service) ListFor(ctx context.Context, scope access.Scope, f domain.TaskFilter) ([]domain.Task, error) {
	tasks, err := s.tasks.List(ctx, scope, f)
	if err != nil {
		return nil, fmt.Errorf("task.List: %w", err)
	}
	return tasks, nil
}

// Get returns a task with its time entries.
func (s *Service) Get(ctx context.Context, id uuid.UUID) (*domain.Task, error) {
	actor, err := access.ActorFromCtx(ctx)
	if err != nil {
		return nil, err
	}
	t, err := s.load(ctx, actor, id)
	if err != nil {
		return nil, err
	}
	entries, err := s.entries.ListByTask(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("task.Get entries: %w", err)
	}
	t.Subtasks = entries
	return t, nil
}

// Load returns a task the caller may access, without entries. Other
// services use it to check access to a parent task.
func (s *Service) Load(ctx context.Context, id uuid.UUID) (*domain.Task, error) {
	actor, err := access.ActorFromCtx(ctx)
	if err != nil {
		return nil, err
	}
	return s.load(ctx, actor, id)
}

func (s *Service) load(ctx context.Context, actor access.Actor, id uuid.UUID) (*domain.Task, error) {
	t, err := s.tasks.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("task.Get: %w", err)
	}
	if err := s.guard.Check(ctx, actor, t); err != nil {
		return nil, err
	}
	return t, nil
}

// checkProject verifies that a referenced project exists and is accessible.
func (s *Service) checkProject(ctx context.Context, actor access.Actor, id *uuid.UUID) error {
	if id == nil {
		return nil
	}
	p, err := s.projects.GetByID(ctx, *id)
	if err != nil {
		return fmt.Errorf("task project: %w", err)
	}
	return s.guard.Check(ctx, actor, p)
}

// Create stores a new task owned by the caller.
func (s *Service) Create(ctx context.Context, input CreateInput) (*domain.Task, error) {
	actor, err := access.ActorFromCtx(ctx)
	if err != nil {
		return nil, err
	}
	t, err := input.build(actor.ID)
	if err != nil {
		return nil, err
	}
	if err := s.checkProject(ctx, actor, t.ProjectID); err != nil {
		return nil, err
	}

	created, err := s.tasks.Create(ctx, t)
	if err != nil {
		return nil, fmt.Errorf("task.Create: %w", err)
	}

	s.log.InfoContext(ctx, "task created",
		slog.String("task_id", created.ID.String()),
		slog.String("user_id", actor.ID.String()))
	return created, nil
}

// Update applies the non-nil fields of input to a task the caller may access.
func (s *Service) Update(ctx context.Context, id uuid.UUID, input UpdateInput) (*domain.Task, error) {
	actor, err := access.ActorFromCtx(ctx)
	if err != nil {
		return nil, err
	}
	t, err := s.load(ctx, actor, id)
	if err != nil {
		return nil, err
	}
	if err := input.apply(t); err != nil {
		return nil, err
	}
	if input.ProjectID != nil {
		if err := s.checkProject(ctx, actor, t.ProjectID); err != nil {
			return nil, err
		}
	}

	updated, err := s.tasks.Update(ctx, t)
	if err != nil {
		return nil, fmt.Errorf("task.Update: %w", err)
	}
	return updated, nil
}

// UpdateStatus moves a task through PENDING, IN_PROGRESS and COMPLETED and
// sets its transversal flag. The legacy "TRANSVERSAL" status is accepted.
func (s *Service) UpdateStatus(ctx context.Context, id uuid.UUID, input StatusInput) (*domain.Task, error) {
	actor, err := access.ActorFromCtx(ctx)
	if err != nil {
		return nil, err
	}
	status, legacy, ok := domain.ParseTaskStatus(input.Status)
	if !ok {
		return nil, domain.NewValidationError("status", "must be PENDING, IN_PROGRESS or COMPLETED")
	}

	t, err := s.load(ctx, actor, id)
	if err != nil {
		return nil, err
	}
	transversal := resolveTransversal(legacy, input.IsTransversal, t.IsTransversal)

	updated, err := s.tasks.UpdateStatus(ctx, id, status, transversal)
	if err != nil {
		return nil, fmt.Errorf("task.UpdateStatus: %w", err)
	}

	s.log.InfoContext(ctx, "task status changed",
		slog.String("task_id", id.String()),
		slog.String("from", t.Status.String()),
		slog.String("to", status.String()),
		slog.Bool("transversal", transversal))
	return updated, nil
}

// UpdatePosition stores the task's coordinates on the map view.
func (s *Service) UpdatePosition(ctx context.Context, id uuid.UUID, x, y float64) (*domain.Task, error) {
	actor, err := access.ActorFromCtx(ctx)
	if err != nil {
		return nil, err
	}
	if _, err := s.load(ctx, actor, id); err != nil {
		return nil, err
	}
	updated, err := s.tasks.UpdatePosition(ctx, id, x, y)
	if err != nil {
		return nil, fmt.Errorf("task.UpdatePosition: %w", err)
	}
	return updated, nil
}

// Delete removes a task and its time entries.
func (s *Service) Delete(ctx context.Context, id uuid.UUID) error {
	actor, err := access.ActorFromCtx(ctx)
	if err != nil {
		return err
	}
	if _, err := s.load(ctx, actor, id); err != nil {
		return err
	}
	if err := s.tasks.Delete(ctx, id); err != nil {
		return fmt.Errorf("task.Delete: %w", err)
	}

	s.log.InfoContext(ctx, "task deleted",
		slog.String("task_id", id.String()),
		slog.String("user_id", actor.ID.String()))
	return nil
}

// resolveTransversal decides the stored flag: the legacy status always sets
// it, otherwise an explicit value wins over the current one.
func resolveTransversal(legacy bool, explicit *bool, current bool) bool {
	switch {
	case legacy:
		return true
	case explicit != nil:
		return *explicit
	default:
		return current
	}
}
