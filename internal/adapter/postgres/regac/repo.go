// Package regac implements persistence of daily attendance registration flags.
package regac

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	"github.com/wigac/wigac-backend/internal/adapter/postgres"
	"github.com/wigac/wigac-backend/internal/domain"
)

const table = "regac_logs"

var columns = []string{"id", "user_id", "work_date", "registered", "created_at", "updated_at"}

type row struct {
	ID         uuid.UUID `db:"id"`
	UserID     uuid.UUID `db:"user_id"`
	WorkDate   string    `db:"work_date"`
	Registered bool      `db:"registered"`
	CreatedAt  time.Time `db:"created_at"`
	UpdatedAt  time.Time `db:"updated_at"`
}

func (r row) toDomain() domain.RegacLog {
	return domain.RegacLog{
		ID:         r.ID,
		UserID:     r.UserID,
		WorkDate:   r.WorkDate,
		Registered: r.Registered,
		CreatedAt:  r.CreatedAt,
		UpdatedAt:  r.UpdatedAt,
	}
}

// Repo provides regac log persistence.
type Repo struct {
	db postgres.DB
}

// New creates a new regac repository.
func New(db postgres.DB) *Repo {
	return &Repo{db: db}
}

// ListByDates returns the logs of userID for the given days. Days without a
// log are absent from the result.
func (r *Repo) ListByDates(ctx context.Context, userID uuid.UUID, dates []string) ([]domain.RegacLog, error) {
	if len(dates) == 0 {
		return []domain.RegacLog{}, nil
	}
	q := postgres.Builder().
		Select(columns...).
		From(table).
		Where(squirrel.Eq{"user_id": userID, "work_date": dates}).
		OrderBy("work_date ASC")

	rows, err := postgres.Select[row](ctx, postgres.QuerierFromCtx(ctx, r.db), q)
	if err != nil {
		return nil, fmt.Errorf("list regac logs: %w", err)
	}
	out := make([]domain.RegacLog, 0, len(rows))
	for _, rw := range rows {
		out = append(out, rw.toDomain())
	}
	return out, nil
}

// Upsert sets the registered flag of userID on date.
func (r *Repo) Upsert(ctx context.Context, userID uuid.UUID, date string, registered bool) (domain.RegacLog, error) {
	q := postgres.Builder().
		Insert(table).
		Columns("id", "user_id", "work_date", "registered").
		Values(uuid.New(), userID, date, registered).
		Suffix("ON CONFLICT (user_id, work_date) DO UPDATE SET registered = EXCLUDED.registered, updated_at = now() RETURNING " +
			strings.Join(columns, ", "))

	got, err := postgres.Get[row](ctx, postgres.QuerierFromCtx(ctx, r.db), q)
	if err != nil {
		return domain.RegacLog{}, postgres.MapError(err, "regac_log", userID)
	}
	return got.toDomain(), nil
}
