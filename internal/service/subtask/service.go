// Package subtask implements time entries recorded against tasks. The
// minutes of an entry are always derived from its time range.
package subtask

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/wigac/wigac-backend/internal/access"
	"github.com/wigac/wigac-backend/internal/domain"
)

type subtaskRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Subtask, error)
	ListByTask(ctx context.Context, taskID uuid.UUID) ([]domain.Subtask, error)
	ListForScope(ctx context.Context, scope access.Scope) ([]domain.Subtask, error)
	Create(ctx context.Context, s *domain.Subtask) (*domain.Subtask, error)
	Update(ctx context.Context, s *domain.Subtask) (*domain.Subtask, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type taskRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Task, error)
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Service implements time entry operations.
type Service struct {
	log      *slog.Logger
	subtasks subtaskRepo
	tasks    taskRepo
	tx       txManager
	guard    *access.Guard
}

// NewService creates a new subtask service.
func NewService(logger *slog.Logger, subtasks subtaskRepo, tasks taskRepo, tx txManager, guard *access.Guard) *Service {
	return &Service{
		log:      logger.With("service", "subtask"),
		subtasks: subtasks,
		tasks:    tasks,
		tx:       tx,
		guard:    guard,
	}
}

func (s *Service) loadTask(ctx context.Context, actor access.Actor, id uuid.UUID) (*domain.Task, error) {
	t, err := s.tasks.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("subtask task: %w", err)
	}
	if err := s.guard.Check(ctx, actor, t); err != nil {
		return nil, err
	}
	return t, nil
}

func (s *Service) load(ctx context.Context, actor access.Actor, id uuid.UUID) (*domain.Subtask, error) {
	e, err := s.subtasks.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("subtask.Get: %w", err)
	}
	if err := s.guard.Check(ctx, actor, e); err != nil {
		return nil, err
	}
	return e, nil
}

// ListByTask returns the entries of a task the caller may access, ordered by
// day and start time.
func (s *Service) ListByTask(ctx context.Context, taskID uuid.UUID) ([]domain.Subtask, error) {
	actor, err := access.ActorFromCtx(ctx)
	if err != nil {
		return nil, err
	}
	if _, err := s.loadTask(ctx, actor, taskID); err != nil {
		return nil, err
	}
	entries, err := s.subtasks.ListByTask(ctx, taskID)
	if err != nil {
		return nil, fmt.Errorf("subtask.ListByTask: %w", err)
	}
	return entries, nil
}

// ListMine returns the caller's entries across all of their tasks with the
// parent task and project populated. Administrators get only their own.
func (s *Service) ListMine(ctx context.Context) ([]domain.Subtask, error) {
	actor, err := access.ActorFromCtx(ctx)
	if err != nil {
		return nil, err
	}
	entries, err := s.subtasks.ListForScope(ctx, access.OwnScope(actor))
	if err != nil {
		return nil, fmt.Errorf("subtask.ListMine: %w", err)
	}
	return entries, nil
}

// Get returns one entry with its parent task.
func (s *Service) Get(ctx context.Context, id uuid.UUID) (*domain.Subtask, error) {
	actor, err := access.ActorFromCtx(ctx)
	if err != nil {
		return nil, err
	}
	return s.load(ctx, actor, id)
}

// Create records a time entry. A range whose end is not after its start is
// rejected before anything is stored.
func (s *Service) Create(ctx context.Context, input CreateInput) (*domain.Subtask, error) {
	actor, err := access.ActorFromCtx(ctx)
	if err != nil {
		return nil, err
	}
	entry, err := input.build()
	if err != nil {
		return nil, err
	}
	if _, err := s.loadTask(ctx, actor, entry.TaskID); err != nil {
		return nil, err
	}

	created, err := s.subtasks.Create(ctx, entry)
	if err != nil {
		return nil, fmt.Errorf("subtask.Create: %w", err)
	}

	s.log.InfoContext(ctx, "time entry created",
		slog.String("subtask_id", created.ID.String()),
		slog.String("task_id", created.TaskID.String()),
		slog.Int("minutes", created.TimeSpentMinutes))
	return created, nil
}

// Update applies the non-nil fields of input and recomputes the minutes from
// the resulting range. The read and the write share one transaction.
func (s *Service) Update(ctx context.Context, id uuid.UUID, input UpdateInput) (*domain.Subtask, error) {
	actor, err := access.ActorFromCtx(ctx)
	if err != nil {
		return nil, err
	}

	var updated *domain.Subtask
	err = s.tx.RunInTx(ctx, func(ctx context.Context) error {
		e, err := s.load(ctx, actor, id)
		if err != nil {
			return err
		}
		if err := input.apply(e); err != nil {
			return err
		}
		updated, err = s.subtasks.Update(ctx, e)
		if err != nil {
			return fmt.Errorf("subtask.Update: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

// Delete removes an entry.
func (s *Service) Delete(ctx context.Context, id uuid.UUID) error {
	actor, err := access.ActorFromCtx(ctx)
	if err != nil {
		return err
	}
	if _, err := s.load(ctx, actor, id); err != nil {
		return err
	}
	if err := s.subtasks.Delete(ctx, id); err != nil {
		return fmt.Errorf("subtask.Delete: %w", err)
	}
	return nil
}
