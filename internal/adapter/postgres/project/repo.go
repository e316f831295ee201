// Package project implements the Project repository using PostgreSQL.
package project

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	"github.com/wigac/wigac-backend/internal/access"
	"github.com/wigac/wigac-backend/internal/adapter/postgres"
	"github.com/wigac/wigac-backend/internal/domain"
)

const table = "projects"

var columns = []string{
	"id", "name", "description", "status", "color", "start_date", "end_date",
	"created_by_id", "created_at", "updated_at",
}

type row struct {
	ID          uuid.UUID  `db:"id"`
	Name        string     `db:"name"`
	Description *string    `db:"description"`
	Status      string     `db:"status"`
	Color       *string    `db:"color"`
	StartDate   *time.Time `db:"start_date"`
	EndDate     *time.Time `db:"end_date"`
	CreatedByID uuid.UUID  `db:"created_by_id"`
	CreatedAt   time.Time  `db:"created_at"`
	UpdatedAt   time.Time  `db:"updated_at"`
}

func (r row) toDomain() *domain.Project {
	return &domain.Project{
		ID:          r.ID,
		Name:        r.Name,
		Description: r.Description,
		Status:      domain.ProjectStatus(r.Status),
		Color:       r.Color,
		StartDate:   r.StartDate,
		EndDate:     r.EndDate,
		CreatedByID: r.CreatedByID,
		CreatedAt:   r.CreatedAt,
		UpdatedAt:   r.UpdatedAt,
	}
}

// Repo provides project persistence.
type Repo struct {
	db postgres.DB
}

// New creates a new project repository.
func New(db postgres.DB) *Repo {
	return &Repo{db: db}
}

// GetByID returns a project by primary key without ownership filtering.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Project, error) {
	q := postgres.Builder().Select(columns...).From(table).Where(squirrel.Eq{"id": id})
	got, err := postgres.Get[row](ctx, postgres.QuerierFromCtx(ctx, r.db), q)
	if err != nil {
		return nil, postgres.MapError(err, "project", id)
	}
	return got.toDomain(), nil
}

// List returns the projects visible under scope, newest first.
func (r *Repo) List(ctx context.Context, scope access.Scope) ([]domain.Project, error) {
	q := postgres.Builder().Select(columns...).From(table).OrderBy("created_at DESC")
	if !scope.All() {
		q = q.Where(squirrel.Eq{"created_by_id": *scope.OwnerID})
	}

	rows, err := postgres.Select[row](ctx, postgres.QuerierFromCtx(ctx, r.db), q)
	if err != nil {
		return nil, fmt.Errorf("list projects: %w", err)
	}
	out := make([]domain.Project, 0, len(rows))
	for _, rw := range rows {
		out = append(out, *rw.toDomain())
	}
	return out, nil
}

// Create inserts p and returns the stored row.
func (r *Repo) Create(ctx context.Context, p *domain.Project) (*domain.Project, error) {
	q := postgres.Builder().
		Insert(table).
		Columns("id", "name", "description", "status", "color", "start_date", "end_date", "created_by_id").
		Values(p.ID, p.Name, p.Description, string(p.Status), p.Color, p.StartDate, p.EndDate, p.CreatedByID).
		Suffix("RETURNING " + strings.Join(columns, ", "))

	got, err := postgres.Get[row](ctx, postgres.QuerierFromCtx(ctx, r.db), q)
	if err != nil {
		return nil, postgres.MapError(err, "project", p.ID)
	}
	return got.toDomain(), nil
}

// Update overwrites the mutable fields of p.
func (r *Repo) Update(ctx context.Context, p *domain.Project) (*domain.Project, error) {
	q := postgres.Builder().
		Update(table).
		SetMap(map[string]any{
			"name":        p.Name,
			"description": p.Description,
			"status":      string(p.Status),
			"color":       p.Color,
			"start_date":  p.StartDate,
			"end_date":    p.EndDate,
			"updated_at":  squirrel.Expr("now()"),
		}).
		Where(squirrel.Eq{"id": p.ID}).
		Suffix("RETURNING " + strings.Join(columns, ", "))

	got, err := postgres.Get[row](ctx, postgres.QuerierFromCtx(ctx, r.db), q)
	if err != nil {
		return nil, postgres.MapError(err, "project", p.ID)
	}
	return got.toDomain(), nil
}

// Delete removes a project. Its tasks are removed by cascade and its wiki
// pages are detached.
func (r *Repo) Delete(ctx context.Context, id uuid.UUID) error {
	n, err := postgres.Exec(ctx, postgres.QuerierFromCtx(ctx, r.db),
		postgres.Builder().Delete(table).Where(squirrel.Eq{"id": id}))
	if err != nil {
		return postgres.MapError(err, "project", id)
	}
	if n == 0 {
		return fmt.Errorf("project %s: %w", id, domain.ErrNotFound)
	}
	return nil
}
