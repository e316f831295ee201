// Package task implements the Task repository using PostgreSQL.
package task

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

const table = "tasks"

var columns = []string{
	"id", "title", "description", "status", "is_transversal", "priority", "department",
	"start_date", "due_date", "project_id", "created_by_id", "assigned_user_id",
	"map_position_x", "map_position_y", "created_at", "updated_at",
}

// selectColumns qualifies columns with the tasks alias and adds the joined
// project fields.
func selectColumns() []string {
	out := make([]string, 0, len(columns)+2)
	for _, c := range columns {
		out = append(out, "t."+c)
	}
	return append(out, "p.name AS project_name", "p.color AS project_color")
}

type row struct {
	ID             uuid.UUID  `db:"id"`
	Title          string     `db:"title"`
	Description    *string    `db:"description"`
	Status         string     `db:"status"`
	IsTransversal  bool       `db:"is_transversal"`
	Priority       string     `db:"priority"`
	Department     *string    `db:"department"`
	StartDate      *time.Time `db:"start_date"`
	DueDate        *time.Time `db:"due_date"`
	ProjectID      *uuid.UUID `db:"project_id"`
	CreatedByID    uuid.UUID  `db:"created_by_id"`
	AssignedUserID *uuid.UUID `db:"assigned_user_id"`
	MapPositionX   *float64   `db:"map_position_x"`
	MapPositionY   *float64   `db:"map_position_y"`
	CreatedAt      time.Time  `db:"created_at"`
	UpdatedAt      time.Time  `db:"updated_at"`
	ProjectName    *string    `db:"project_name"`
	ProjectColor   *string    `db:"project_color"`
}

func (r row) toDomain() *domain.Task {
	t := &domain.Task{
		ID:             r.ID,
		Title:          r.Title,
		Description:    r.Description,
		Status:         domain.TaskStatus(r.Status),
		IsTransversal:  r.IsTransversal,
		Priority:       domain.TaskPriority(r.Priority),
		Department:     r.Department,
		StartDate:      r.StartDate,
		DueDate:        r.DueDate,
		ProjectID:      r.ProjectID,
		CreatedByID:    r.CreatedByID,
		AssignedUserID: r.AssignedUserID,
		MapPositionX:   r.MapPositionX,
		MapPositionY:   r.MapPositionY,
		CreatedAt:      r.CreatedAt,
		UpdatedAt:      r.UpdatedAt,
	}
	if r.ProjectID != nil && r.ProjectName != nil {
		t.Project = &domain.Project{ID: *r.ProjectID, Name: *r.ProjectName, Color: r.ProjectColor}
	}
	return t
}

func toDomainList(rows []row) []domain.Task {
	out := make([]domain.Task, 0, len(rows))
	for _, rw := range rows {
		out = append(out, *rw.toDomain())
	}
	return out
}

// OwnerCondition restricts tasks aliased as t to those created by or
// assigned to the scope owner. It returns nil for an unrestricted scope.
func OwnerCondition(scope access.Scope) squirrel.Sqlizer {
	if scope.All() {
		return nil
	}
	return squirrel.Or{
		squirrel.Eq{"t.created_by_id": *scope.OwnerID},
		squirrel.Eq{"t.assigned_user_id": *scope.OwnerID},
	}
}

// Repo provides task persistence.
type Repo struct {
	db postgres.DB
}

// New creates a new task repository.
func New(db postgres.DB) *Repo {
	return &Repo{db: db}
}

func selectTasks() squirrel.SelectBuilder {
	return postgres.Builder().
		Select(selectColumns()...).
		From(table + " t").
		LeftJoin("projects p ON p.id = t.project_id")
}

// GetByID returns a task with its project name, without ownership filtering.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Task, error) {
	got, err := postgres.Get[row](ctx, postgres.QuerierFromCtx(ctx, r.db), selectTasks().Where(squirrel.Eq{"t.id": id}))
	if err != nil {
		return nil, postgres.MapError(err, "task", id)
	}
	return got.toDomain(), nil
}

// List returns tasks visible under scope that match f, newest first.
func (r *Repo) List(ctx context.Context, scope access.Scope, f domain.TaskFilter) ([]domain.Task, error) {
	q := selectTasks().OrderBy("t.created_at DESC")
	if cond := OwnerCondition(scope); cond != nil {
		q = q.Where(cond)
	}
	if f.ProjectID != nil {
		q = q.Where(squirrel.Eq{"t.project_id": *f.ProjectID})
	}
	if f.Status != nil {
		q = q.Where(squirrel.Eq{"t.status": string(*f.Status)})
	}
	if f.Priority != nil {
		q = q.Where(squirrel.Eq{"t.priority": string(*f.Priority)})
	}
	if f.AssignedUserID != nil {
		q = q.Where(squirrel.Eq{"t.assigned_user_id": *f.AssignedUserID})
	}

	rows, err := postgres.Select[row](ctx, postgres.QuerierFromCtx(ctx, r.db), q)
	if err != nil {
		return nil, fmt.Errorf("list tasks: %w", err)
	}
	return toDomainList(rows), nil
}

// ListByIDs returns the tasks with the given ids, in no particular order.
func (r *Repo) ListByIDs(ctx context.Context, ids []uuid.UUID) ([]domain.Task, error) {
	if len(ids) == 0 {
		return []domain.Task{}, nil
	}
	rows, err := postgres.Select[row](ctx, postgres.QuerierFromCtx(ctx, r.db), selectTasks().Where(squirrel.Eq{"t.id": ids}))
	if err != nil {
		return nil, fmt.Errorf("list tasks by ids: %w", err)
	}
	return toDomainList(rows), nil
}

// Create inserts t and returns the stored row including the project name.
func (r *Repo) Create(ctx context.Context, t *domain.Task) (*domain.Task, error) {
	q := postgres.Builder().
		Insert(table).
		Columns(columns[:14]...).
		Values(
			t.ID, t.Title, t.Description, string(t.Status), t.IsTransversal, string(t.Priority), t.Department,
			t.StartDate, t.DueDate, t.ProjectID, t.CreatedByID, t.AssignedUserID,
			t.MapPositionX, t.MapPositionY,
		)

	if _, err := postgres.Exec(ctx, postgres.QuerierFromCtx(ctx, r.db), q); err != nil {
		return nil, postgres.MapError(err, "task", t.ID)
	}
	return r.GetByID(ctx, t.ID)
}

// Update overwrites the editable fields of t.
func (r *Repo) Update(ctx context.Context, t *domain.Task) (*domain.Task, error) {
	return r.update(ctx, t.ID, map[string]any{
		"title":            t.Title,
		"description":      t.Description,
		"status":           string(t.Status),
		"is_transversal":   t.IsTransversal,
		"priority":         string(t.Priority),
		"department":       t.Department,
		"start_date":       t.StartDate,
		"due_date":         t.DueDate,
		"project_id":       t.ProjectID,
		"assigned_user_id": t.AssignedUserID,
		"map_position_x":   t.MapPositionX,
		"map_position_y":   t.MapPositionY,
	})
}

// UpdateStatus sets the lifecycle status and transversal flag.
func (r *Repo) UpdateStatus(ctx context.Context, id uuid.UUID, status domain.TaskStatus, transversal bool) (*domain.Task, error) {
	return r.update(ctx, id, map[string]any{
		"status":         string(status),
		"is_transversal": transversal,
	})
}

// UpdatePosition stores the task's coordinates on the map view.
func (r *Repo) UpdatePosition(ctx context.Context, id uuid.UUID, x, y float64) (*domain.Task, error) {
	return r.update(ctx, id, map[string]any{
		"map_position_x": x,
		"map_position_y": y,
	})
}

func (r *Repo) update(ctx context.Context, id uuid.UUID, set map[string]any) (*domain.Task, error) {
	set["updated_at"] = squirrel.Expr("now()")
	q := postgres.Builder().
		Update(table).
		SetMap(set).
		Where(squirrel.Eq{"id": id})

	n, err := postgres.Exec(ctx, postgres.QuerierFromCtx(ctx, r.db), q)
	if err != nil {
		return nil, postgres.MapError(err, "task", id)
	}
	if n == 0 {
		return nil, fmt.Errorf("task %s: %w", id, domain.ErrNotFound)
	}
	return r.GetByID(ctx, id)
}

// Delete removes a task and, by cascade, its subtasks and activities.
func (r *Repo) Delete(ctx context.Context, id uuid.UUID) error {
	n, err := postgres.Exec(ctx, postgres.QuerierFromCtx(ctx, r.db),
		postgres.Builder().Delete(table).Where(squirrel.Eq{"id": id}))
	if err != nil {
		return postgres.MapError(err, "task", id)
	}
	if n == 0 {
		return fmt.Errorf("task %s: %w", id, domain.ErrNotFound)
	}
	return nil
}
