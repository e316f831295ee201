package reports

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/wigac/wigac-backend/internal/access"
	"github.com/wigac/wigac-backend/internal/domain"
	"github.com/wigac/wigac-backend/internal/report"
	"github.com/wigac/wigac-backend/internal/timeagg"
)

// DailyText renders the caller's "REPORTE DE TAREAS" for date.
func (s *Service) DailyText(ctx context.Context, date string) (string, error) {
	actor, err := access.ActorFromCtx(ctx)
	if err != nil {
		return "", err
	}
	if date, err = s.day(date); err != nil {
		return "", err
	}
	tasks, err := s.tasks.RangeFor(ctx, access.OwnScope(actor), date, date)
	if err != nil {
		return "", fmt.Errorf("reports.DailyText: %w", err)
	}
	return s.gen.Daily(tasks, date)
}

// ProgressText renders the caller's "INFORME DE ACTUALIDAD" for date: status
// counts over all of the caller's tasks, with the entries recorded on date.
func (s *Service) ProgressText(ctx context.Context, date string) (string, error) {
	actor, err := access.ActorFromCtx(ctx)
	if err != nil {
		return "", err
	}
	if date, err = s.day(date); err != nil {
		return "", err
	}
	scope := access.OwnScope(actor)

	var all, worked []domain.Task
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		all, err = s.tasks.ListFor(gctx, scope, domain.TaskFilter{})
		return err
	})
	g.Go(func() error {
		var err error
		worked, err = s.tasks.RangeFor(gctx, scope, date, date)
		return err
	})
	if err := g.Wait(); err != nil {
		return "", fmt.Errorf("reports.ProgressText: %w", err)
	}

	return s.gen.Progress(withEntries(all, worked), date)
}

// Email renders the caller's daily work e-mail for date.
func (s *Service) Email(ctx context.Context, date string) (report.Email, error) {
	actor, err := access.ActorFromCtx(ctx)
	if err != nil {
		return report.Email{}, err
	}
	if date, err = s.day(date); err != nil {
		return report.Email{}, err
	}

	var (
		user  *domain.User
		tasks []domain.Task
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		user, err = s.users.GetByID(gctx, actor.ID)
		return err
	})
	g.Go(func() error {
		var err error
		tasks, err = s.tasks.RangeFor(gctx, access.OwnScope(actor), date, date)
		return err
	})
	if err := g.Wait(); err != nil {
		return report.Email{}, fmt.Errorf("reports.Email: %w", err)
	}

	return report.EmailReport(date, user.Name, tasks)
}

// Timesheet summarises the caller's entries in the ISO week containing date.
func (s *Service) Timesheet(ctx context.Context, date string) (timeagg.Summary, error) {
	actor, err := access.ActorFromCtx(ctx)
	if err != nil {
		return timeagg.Summary{}, err
	}
	if date, err = s.day(date); err != nil {
		return timeagg.Summary{}, err
	}
	monday, sunday, err := timeagg.WeekBounds(date)
	if err != nil {
		return timeagg.Summary{}, err
	}
	tasks, err := s.tasks.RangeFor(ctx, access.OwnScope(actor), monday, sunday)
	if err != nil {
		return timeagg.Summary{}, fmt.Errorf("reports.Timesheet: %w", err)
	}
	return timeagg.Summarize(date, tasks)
}

// withEntries attaches the entries of worked to the matching tasks of all,
// keeping the order of all.
func withEntries(all, worked []domain.Task) []domain.Task {
	entries := make(map[uuid.UUID][]domain.Subtask, len(worked))
	for _, t := range worked {
		entries[t.ID] = t.Subtasks
	}
	out := make([]domain.Task, len(all))
	for i, t := range all {
		t.Subtasks = entries[t.ID]
		out[i] = t
	}
	return out
}
