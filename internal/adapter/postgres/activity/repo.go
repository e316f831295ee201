// Package activity implements the Activity repository using PostgreSQL.
package activity

import (
	"context"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	"github.com/wigac/wigac-backend/internal/access"
	"github.com/wigac/wigac-backend/internal/adapter/postgres"
	"github.com/wigac/wigac-backend/internal/domain"
)

const table = "activities"

type row struct {
	ID          uuid.UUID  `db:"id"`
	UserID      uuid.UUID  `db:"user_id"`
	TaskID      uuid.UUID  `db:"task_id"`
	Date        string     `db:"date"`
	Hours       float64    `db:"hours"`
	Description *string    `db:"description"`
	CreatedAt   time.Time  `db:"created_at"`
	TaskTitle   string     `db:"task_title"`
	ProjectID   *uuid.UUID `db:"project_id"`
	ProjectName *string    `db:"project_name"`
}

func (r row) toDomain() *domain.Activity {
	a := &domain.Activity{
		ID:          r.ID,
		UserID:      r.UserID,
		TaskID:      r.TaskID,
		Date:        r.Date,
		Hours:       r.Hours,
		Description: r.Description,
		CreatedAt:   r.CreatedAt,
		Task:        &domain.Task{ID: r.TaskID, Title: r.TaskTitle, ProjectID: r.ProjectID},
	}
	if r.ProjectID != nil && r.ProjectName != nil {
		a.Task.Project = &domain.Project{ID: *r.ProjectID, Name: *r.ProjectName}
	}
	return a
}

// Repo provides activity persistence.
type Repo struct {
	db postgres.DB
}

// New creates a new activity repository.
func New(db postgres.DB) *Repo {
	return &Repo{db: db}
}

func selectActivities() squirrel.SelectBuilder {
	return postgres.Builder().
		Select(
			"a.id", "a.user_id", "a.task_id", "a.date", "a.hours", "a.description", "a.created_at",
			"t.title AS task_title", "t.project_id", "p.name AS project_name",
		).
		From(table + " a").
		Join("tasks t ON t.id = a.task_id").
		LeftJoin("projects p ON p.id = t.project_id")
}

// GetByID returns one activity with its task title and project name.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Activity, error) {
	got, err := postgres.Get[row](ctx, postgres.QuerierFromCtx(ctx, r.db), selectActivities().Where(squirrel.Eq{"a.id": id}))
	if err != nil {
		return nil, postgres.MapError(err, "activity", id)
	}
	return got.toDomain(), nil
}

// List returns the activities under scope matching f, ordered by date
// descending then creation time.
func (r *Repo) List(ctx context.Context, scope access.Scope, f domain.ActivityFilter) ([]domain.Activity, error) {
	q := selectActivities().OrderBy("a.date DESC", "a.created_at ASC")
	if !scope.All() {
		q = q.Where(squirrel.Eq{"a.user_id": *scope.OwnerID})
	}
	switch {
	case f.Date != "":
		q = q.Where(squirrel.Eq{"a.date": f.Date})
	default:
		if f.From != "" {
			q = q.Where(squirrel.GtOrEq{"a.date": f.From})
		}
		if f.To != "" {
			q = q.Where(squirrel.LtOrEq{"a.date": f.To})
		}
	}

	rows, err := postgres.Select[row](ctx, postgres.QuerierFromCtx(ctx, r.db), q)
	if err != nil {
		return nil, fmt.Errorf("list activities: %w", err)
	}
	out := make([]domain.Activity, 0, len(rows))
	for _, rw := range rows {
		out = append(out, *rw.toDomain())
	}
	return out, nil
}

// Create inserts a.
func (r *Repo) Create(ctx context.Context, a *domain.Activity) (*domain.Activity, error) {
	q := postgres.Builder().
		Insert(table).
		Columns("id", "user_id", "task_id", "date", "hours", "description").
		Values(a.ID, a.UserID, a.TaskID, a.Date, a.Hours, a.Description)

	if _, err := postgres.Exec(ctx, postgres.QuerierFromCtx(ctx, r.db), q); err != nil {
		return nil, postgres.MapError(err, "activity", a.ID)
	}
	return r.GetByID(ctx, a.ID)
}

// Delete removes an activity.
func (r *Repo) Delete(ctx context.Context, id uuid.UUID) error {
	n, err := postgres.Exec(ctx, postgres.QuerierFromCtx(ctx, r.db),
		postgres.Builder().Delete(table).Where(squirrel.Eq{"id": id}))
	if err != nil {
		return postgres.MapError(err, "activity", id)
	}
	if n == 0 {
		return fmt.Errorf("activity %s: %w", id, domain.ErrNotFound)
	}
	return nil
}
