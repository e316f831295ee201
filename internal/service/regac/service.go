// Package regac tracks whether a user has recorded each working day in the
// external attendance system.
package regac

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/wigac/wigac-backend/internal/access"
	"github.com/wigac/wigac-backend/internal/domain"
)

// MaxBatchDates caps the number of days in one batch lookup.
const MaxBatchDates = 366

type logRepo interface {
	ListByDates(ctx context.Context, userID uuid.UUID, dates []string) ([]domain.RegacLog, error)
	Upsert(ctx context.Context, userID uuid.UUID, date string, registered bool) (domain.RegacLog, error)
}

// Service implements registration log operations.
type Service struct {
	log  *slog.Logger
	logs logRepo
}

// NewService creates a new regac service.
func NewService(logger *slog.Logger, logs logRepo) *Service {
	return &Service{log: logger.With("service", "regac"), logs: logs}
}

// Get reports whether the caller registered date. Days without a log are
// unregistered.
func (s *Service) Get(ctx context.Context, date string) (bool, error) {
	got, err := s.Batch(ctx, []string{date})
	if err != nil {
		return false, err
	}
	return got[date], nil
}

// Batch returns the registration state of every requested day.
func (s *Service) Batch(ctx context.Context, dates []string) (map[string]bool, error) {
	actor, err := access.ActorFromCtx(ctx)
	if err != nil {
		return nil, err
	}
	if len(dates) > MaxBatchDates {
		return nil, domain.NewValidationError("dates", fmt.Sprintf("at most %d dates", MaxBatchDates))
	}
	out := make(map[string]bool, len(dates))
	for _, d := range dates {
		if !domain.ValidDay(d) {
			return nil, domain.NewValidationError("dates", fmt.Sprintf("%q must be YYYY-MM-DD", d))
		}
		out[d] = false
	}
	if len(out) == 0 {
		return out, nil
	}

	scope := access.OwnScope(actor)
	logs, err := s.logs.ListByDates(ctx, *scope.OwnerID, dates)
	if err != nil {
		return nil, fmt.Errorf("regac.Batch: %w", err)
	}
	for i := range logs {
		if !owns(actor, &logs[i]) {
			continue
		}
		out[logs[i].WorkDate] = logs[i].Registered
	}
	return out, nil
}

// Set records the caller's registration state for date.
func (s *Service) Set(ctx context.Context, date string, registered bool) (domain.RegacLog, error) {
	actor, err := access.ActorFromCtx(ctx)
	if err != nil {
		return domain.RegacLog{}, err
	}
	if !domain.ValidDay(date) {
		return domain.RegacLog{}, domain.NewValidationError("date", "must be YYYY-MM-DD")
	}
	scope := access.OwnScope(actor)
	l, err := s.logs.Upsert(ctx, *scope.OwnerID, date, registered)
	if err != nil {
		return domain.RegacLog{}, fmt.Errorf("regac.Set: %w", err)
	}
	if !owns(actor, &l) {
		return domain.RegacLog{}, fmt.Errorf("regac %s: %w", date, domain.ErrNotFound)
	}

	s.log.InfoContext(ctx, "regac updated",
		slog.String("user_id", actor.ID.String()),
		slog.String("date", date),
		slog.Bool("registered", registered))
	return l, nil
}

// owns reports whether l belongs to actor. Registration logs are personal, so
// administrators are held to their own rows too.
func owns(actor access.Actor, l *domain.RegacLog) bool {
	return access.Authorize(actor, l) && l.UserID == actor.ID
}
