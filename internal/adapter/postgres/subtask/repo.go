// Package subtask implements the time entry repository using PostgreSQL.
// Every read joins the parent task so ownership can be checked.
package subtask

import (
	"context"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	"github.com/wigac/wigac-backend/internal/access"
	"github.com/wigac/wigac-backend/internal/adapter/postgres"
	taskrepo "github.com/wigac/wigac-backend/internal/adapter/postgres/task"
	"github.com/wigac/wigac-backend/internal/domain"
)

const table = "subtasks"

var columns = []string{
	"id", "task_id", "description", "work_date", "start_time", "end_time",
	"time_spent_minutes", "created_at", "updated_at",
}

var joinedColumns = []string{
	"t.title AS task_title",
	"t.description AS task_description",
	"t.status AS task_status",
	"t.is_transversal AS task_is_transversal",
	"t.created_by_id AS task_created_by_id",
	"t.assigned_user_id AS task_assigned_user_id",
	"t.project_id AS task_project_id",
	"p.name AS project_name",
}

type row struct {
	ID               uuid.UUID  `db:"id"`
	TaskID           uuid.UUID  `db:"task_id"`
	Description      string     `db:"description"`
	WorkDate         string     `db:"work_date"`
	StartTime        string     `db:"start_time"`
	EndTime          string     `db:"end_time"`
	TimeSpentMinutes int        `db:"time_spent_minutes"`
	CreatedAt        time.Time  `db:"created_at"`
	UpdatedAt        time.Time  `db:"updated_at"`
	TaskTitle        string     `db:"task_title"`
	TaskDescription  *string    `db:"task_description"`
	TaskStatus       string     `db:"task_status"`
	TaskTransversal  bool       `db:"task_is_transversal"`
	TaskCreatedByID  uuid.UUID  `db:"task_created_by_id"`
	TaskAssignedID   *uuid.UUID `db:"task_assigned_user_id"`
	TaskProjectID    *uuid.UUID `db:"task_project_id"`
	ProjectName      *string    `db:"project_name"`
}

func (r row) toDomain() *domain.Subtask {
	parent := &domain.Task{
		ID:             r.TaskID,
		Title:          r.TaskTitle,
		Description:    r.TaskDescription,
		Status:         domain.TaskStatus(r.TaskStatus),
		IsTransversal:  r.TaskTransversal,
		CreatedByID:    r.TaskCreatedByID,
		AssignedUserID: r.TaskAssignedID,
		ProjectID:      r.TaskProjectID,
	}
	if r.TaskProjectID != nil && r.ProjectName != nil {
		parent.Project = &domain.Project{ID: *r.TaskProjectID, Name: *r.ProjectName}
	}
	return &domain.Subtask{
		ID:               r.ID,
		TaskID:           r.TaskID,
		Description:      r.Description,
		WorkDate:         r.WorkDate,
		StartTime:        r.StartTime,
		EndTime:          r.EndTime,
		TimeSpentMinutes: r.TimeSpentMinutes,
		CreatedAt:        r.CreatedAt,
		UpdatedAt:        r.UpdatedAt,
		Task:             parent,
	}
}

// Repo provides time entry persistence.
type Repo struct {
	db postgres.DB
}

// New creates a new subtask repository.
func New(db postgres.DB) *Repo {
	return &Repo{db: db}
}

func selectSubtasks() squirrel.SelectBuilder {
	cols := make([]string, 0, len(columns)+len(joinedColumns))
	for _, c := range columns {
		cols = append(cols, "s."+c)
	}
	cols = append(cols, joinedColumns...)
	return postgres.Builder().
		Select(cols...).
		From(table + " s").
		Join("tasks t ON t.id = s.task_id").
		LeftJoin("projects p ON p.id = t.project_id")
}

func (r *Repo) list(ctx context.Context, q squirrel.SelectBuilder) ([]domain.Subtask, error) {
	rows, err := postgres.Select[row](ctx, postgres.QuerierFromCtx(ctx, r.db), q)
	if err != nil {
		return nil, fmt.Errorf("list subtasks: %w", err)
	}
	out := make([]domain.Subtask, 0, len(rows))
	for _, rw := range rows {
		out = append(out, *rw.toDomain())
	}
	return out, nil
}

// GetByID returns an entry with its parent task populated.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Subtask, error) {
	got, err := postgres.Get[row](ctx, postgres.QuerierFromCtx(ctx, r.db), selectSubtasks().Where(squirrel.Eq{"s.id": id}))
	if err != nil {
		return nil, postgres.MapError(err, "subtask", id)
	}
	return got.toDomain(), nil
}

// ListByTask returns the entries of one task ordered by day and start time.
func (r *Repo) ListByTask(ctx context.Context, taskID uuid.UUID) ([]domain.Subtask, error) {
	return r.list(ctx, selectSubtasks().
		Where(squirrel.Eq{"s.task_id": taskID}).
		OrderBy("s.work_date ASC", "s.start_time ASC"))
}

// ListInRange returns the entries dated within [from, to] whose parent task
// is visible under scope, ordered by day and start time.
func (r *Repo) ListInRange(ctx context.Context, scope access.Scope, from, to string) ([]domain.Subtask, error) {
	q := selectSubtasks().
		Where(squirrel.GtOrEq{"s.work_date": from}).
		Where(squirrel.LtOrEq{"s.work_date": to}).
		OrderBy("s.work_date ASC", "s.start_time ASC")
	if cond := taskrepo.OwnerCondition(scope); cond != nil {
		q = q.Where(cond)
	}
	return r.list(ctx, q)
}

// ListForScope returns every entry whose parent task is visible under
// scope, newest day first and by start time within a day.
func (r *Repo) ListForScope(ctx context.Context, scope access.Scope) ([]domain.Subtask, error) {
	q := selectSubtasks().OrderBy("s.work_date DESC", "s.start_time ASC")
	if cond := taskrepo.OwnerCondition(scope); cond != nil {
		q = q.Where(cond)
	}
	return r.list(ctx, q)
}

// Create inserts s. TimeSpentMinutes must already be derived from the range.
func (r *Repo) Create(ctx context.Context, s *domain.Subtask) (*domain.Subtask, error) {
	q := postgres.Builder().
		Insert(table).
		Columns("id", "task_id", "description", "work_date", "start_time", "end_time", "time_spent_minutes").
		Values(s.ID, s.TaskID, s.Description, s.WorkDate, s.StartTime, s.EndTime, s.TimeSpentMinutes)

	if _, err := postgres.Exec(ctx, postgres.QuerierFromCtx(ctx, r.db), q); err != nil {
		return nil, postgres.MapError(err, "subtask", s.ID)
	}
	return r.GetByID(ctx, s.ID)
}

// Update overwrites description, day, range and derived minutes of s.
func (r *Repo) Update(ctx context.Context, s *domain.Subtask) (*domain.Subtask, error) {
	q := postgres.Builder().
		Update(table).
		SetMap(map[string]any{
			"description":        s.Description,
			"work_date":          s.WorkDate,
			"start_time":         s.StartTime,
			"end_time":           s.EndTime,
			"time_spent_minutes": s.TimeSpentMinutes,
			"updated_at":         squirrel.Expr("now()"),
		}).
		Where(squirrel.Eq{"id": s.ID})

	n, err := postgres.Exec(ctx, postgres.QuerierFromCtx(ctx, r.db), q)
	if err != nil {
		return nil, postgres.MapError(err, "subtask", s.ID)
	}
	if n == 0 {
		return nil, fmt.Errorf("subtask %s: %w", s.ID, domain.ErrNotFound)
	}
	return r.GetByID(ctx, s.ID)
}

// Delete removes an entry.
func (r *Repo) Delete(ctx context.Context, id uuid.UUID) error {
	n, err := postgres.Exec(ctx, postgres.QuerierFromCtx(ctx, r.db),
		postgres.Builder().Delete(table).Where(squirrel.Eq{"id": id}))
	if err != nil {
		return postgres.MapError(err, "subtask", id)
	}
	if n == 0 {
		return fmt.Errorf("subtask %s: %w", id, domain.ErrNotFound)
	}
	return nil
}
