// Package wiki implements the WikiPage repository using PostgreSQL.
package wiki

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

const table = "wiki_pages"

var columns = []string{
	"id", "title", "slug", "content", "project_id", "task_id", "created_by_id", "created_at", "updated_at",
}

type row struct {
	ID          uuid.UUID  `db:"id"`
	Title       string     `db:"title"`
	Slug        string     `db:"slug"`
	Content     string     `db:"content"`
	ProjectID   *uuid.UUID `db:"project_id"`
	TaskID      *uuid.UUID `db:"task_id"`
	CreatedByID uuid.UUID  `db:"created_by_id"`
	CreatedAt   time.Time  `db:"created_at"`
	UpdatedAt   time.Time  `db:"updated_at"`
}

func (r row) toDomain() *domain.WikiPage {
	return &domain.WikiPage{
		ID:          r.ID,
		Title:       r.Title,
		Slug:        r.Slug,
		Content:     r.Content,
		ProjectID:   r.ProjectID,
		TaskID:      r.TaskID,
		CreatedByID: r.CreatedByID,
		CreatedAt:   r.CreatedAt,
		UpdatedAt:   r.UpdatedAt,
	}
}

// Repo provides wiki page persistence.
type Repo struct {
	db postgres.DB
}

// New creates a new wiki repository.
func New(db postgres.DB) *Repo {
	return &Repo{db: db}
}

func (r *Repo) get(ctx context.Context, where squirrel.Sqlizer, id uuid.UUID) (*domain.WikiPage, error) {
	q := postgres.Builder().Select(columns...).From(table).Where(where)
	got, err := postgres.Get[row](ctx, postgres.QuerierFromCtx(ctx, r.db), q)
	if err != nil {
		return nil, postgres.MapError(err, "wiki_page", id)
	}
	return got.toDomain(), nil
}

// GetByID returns a page by primary key.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.WikiPage, error) {
	return r.get(ctx, squirrel.Eq{"id": id}, id)
}

// GetBySlug returns a page by its unique slug.
func (r *Repo) GetBySlug(ctx context.Context, slug string) (*domain.WikiPage, error) {
	return r.get(ctx, squirrel.Eq{"slug": slug}, uuid.Nil)
}

// SlugExists reports whether slug is taken by a page other than exceptID.
func (r *Repo) SlugExists(ctx context.Context, slug string, exceptID uuid.UUID) (bool, error) {
	q := postgres.Builder().
		Select("1").
		Prefix("SELECT EXISTS (").
		From(table).
		Where(squirrel.Eq{"slug": slug}).
		Where(squirrel.NotEq{"id": exceptID}).
		Suffix(")")

	exists, err := postgres.Get[bool](ctx, postgres.QuerierFromCtx(ctx, r.db), q)
	if err != nil {
		return false, fmt.Errorf("check slug %q: %w", slug, err)
	}
	return exists, nil
}

// List returns pages, optionally restricted to one project, most recently
// updated first.
func (r *Repo) List(ctx context.Context, projectID *uuid.UUID) ([]domain.WikiPage, error) {
	q := postgres.Builder().Select(columns...).From(table).OrderBy("updated_at DESC")
	if projectID != nil {
		q = q.Where(squirrel.Eq{"project_id": *projectID})
	}

	rows, err := postgres.Select[row](ctx, postgres.QuerierFromCtx(ctx, r.db), q)
	if err != nil {
		return nil, fmt.Errorf("list wiki pages: %w", err)
	}
	out := make([]domain.WikiPage, 0, len(rows))
	for _, rw := range rows {
		out = append(out, *rw.toDomain())
	}
	return out, nil
}

// Create inserts p. A slug collision surfaces as domain.ErrAlreadyExists.
func (r *Repo) Create(ctx context.Context, p *domain.WikiPage) (*domain.WikiPage, error) {
	q := postgres.Builder().
		Insert(table).
		Columns("id", "title", "slug", "content", "project_id", "task_id", "created_by_id").
		Values(p.ID, p.Title, p.Slug, p.Content, p.ProjectID, p.TaskID, p.CreatedByID).
		Suffix("RETURNING " + strings.Join(columns, ", "))

	got, err := postgres.Get[row](ctx, postgres.QuerierFromCtx(ctx, r.db), q)
	if err != nil {
		return nil, postgres.MapError(err, "wiki_page", p.ID)
	}
	return got.toDomain(), nil
}

// Update overwrites title, slug, content and links of p.
func (r *Repo) Update(ctx context.Context, p *domain.WikiPage) (*domain.WikiPage, error) {
	q := postgres.Builder().
		Update(table).
		SetMap(map[string]any{
			"title":      p.Title,
			"slug":       p.Slug,
			"content":    p.Content,
			"project_id": p.ProjectID,
			"task_id":    p.TaskID,
			"updated_at": squirrel.Expr("now()"),
		}).
		Where(squirrel.Eq{"id": p.ID}).
		Suffix("RETURNING " + strings.Join(columns, ", "))

	got, err := postgres.Get[row](ctx, postgres.QuerierFromCtx(ctx, r.db), q)
	if err != nil {
		return nil, postgres.MapError(err, "wiki_page", p.ID)
	}
	return got.toDomain(), nil
}

// Delete removes a page.
func (r *Repo) Delete(ctx context.Context, id uuid.UUID) error {
	n, err := postgres.Exec(ctx, postgres.QuerierFromCtx(ctx, r.db),
		postgres.Builder().Delete(table).Where(squirrel.Eq{"id": id}))
	if err != nil {
		return postgres.MapError(err, "wiki_page", id)
	}
	if n == 0 {
		return fmt.Errorf("wiki_page %s: %w", id, domain.ErrNotFound)
	}
	return nil
}
