package task

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/wigac/wigac-backend/internal/access"
	"github.com/wigac/wigac-backend/internal/domain"
)

// Range returns the caller's tasks that have time entries dated within
// [from, to], each with only those entries embedded. Tasks appear in the
// order of their earliest entry.
func (s *Service) Range(ctx context.Context, from, to string) ([]domain.Task, error) {
	actor, err := access.ActorFromCtx(ctx)
	if err != nil {
		return nil, err
	}
	return s.RangeFor(ctx, s.guard.Scope(ctx, actor, "task"), from, to)
}

// RangeFor is Range for an explicit scope. Report generation uses it to load
// another user's day on behalf of an administrator.
func (s *Service) RangeFor(ctx context.Context, scope access.Scope, from, to string) ([]domain.Task, error) {
	if err := validateRange(from, to); err != nil {
		return nil, err
	}

	entries, err := s.entries.ListInRange(ctx, scope, from, to)
	if err != nil {
		return nil, fmt.Errorf("task.Range entries: %w", err)
	}

	order := make([]uuid.UUID, 0)
	byTask := make(map[uuid.UUID][]domain.Subtask)
	for _, e := range entries {
		if _, seen := byTask[e.TaskID]; !seen {
			order = append(order, e.TaskID)
		}
		e.Task = nil
		byTask[e.TaskID] = append(byTask[e.TaskID], e)
	}

	tasks, err := s.tasks.ListByIDs(ctx, order)
	if err != nil {
		return nil, fmt.Errorf("task.Range tasks: %w", err)
	}
	index := make(map[uuid.UUID]domain.Task, len(tasks))
	for _, t := range tasks {
		index[t.ID] = t
	}

	out := make([]domain.Task, 0, len(order))
	for _, id := range order {
		t, ok := index[id]
		if !ok {
			continue
		}
		t.Subtasks = byTask[id]
		out = append(out, t)
	}
	return out, nil
}

func validateRange(from, to string) error {
	var errs []domain.FieldError
	if !domain.ValidDay(from) {
		errs = append(errs, domain.FieldError{Field: "start", Message: "must be YYYY-MM-DD"})
	}
	if !domain.ValidDay(to) {
		errs = append(errs, domain.FieldError{Field: "end", Message: "must be YYYY-MM-DD"})
	}
	if len(errs) == 0 && to < from {
		errs = append(errs, domain.FieldError{Field: "end", Message: "must not be before start"})
	}
	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}
