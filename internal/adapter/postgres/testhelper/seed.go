package testhelper

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/wigac/wigac-backend/internal/domain"
)

func uniqueSuffix() string {
	return uuid.New().String()[:8]
}

func now() time.Time {
	return time.Now().UTC().Truncate(time.Microsecond)
}

// SeedUser inserts a USER-role account with a unique email.
func SeedUser(t *testing.T, pool *pgxpool.Pool) domain.User {
	t.Helper()
	return seedUser(t, pool, domain.UserRoleUser)
}

// SeedAdmin inserts an ADMIN-role account.
func SeedAdmin(t *testing.T, pool *pgxpool.Pool) domain.User {
	t.Helper()
	return seedUser(t, pool, domain.UserRoleAdmin)
}

func seedUser(t *testing.T, pool *pgxpool.Pool, role domain.UserRole) domain.User {
	t.Helper()

	suffix := uniqueSuffix()
	ts := now()
	u := domain.User{
		ID:           uuid.New(),
		Email:        "user-" + suffix + "@example.com",
		Name:         "User " + suffix,
		PasswordHash: "$2a$10$seeded",
		Role:         role,
		CreatedAt:    ts,
		UpdatedAt:    ts,
	}

	_, err := pool.Exec(context.Background(),
		`INSERT INTO users (id, email, name, password_hash, role, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		u.ID, u.Email, u.Name, u.PasswordHash, string(u.Role), u.CreatedAt, u.UpdatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedUser: %v", err)
	}
	return u
}

// SeedProject inserts an ACTIVE project created by ownerID.
func SeedProject(t *testing.T, pool *pgxpool.Pool, ownerID uuid.UUID) domain.Project {
	t.Helper()

	ts := now()
	p := domain.Project{
		ID:          uuid.New(),
		Name:        "Project " + uniqueSuffix(),
		Status:      domain.ProjectStatusActive,
		CreatedByID: ownerID,
		CreatedAt:   ts,
		UpdatedAt:   ts,
	}

	_, err := pool.Exec(context.Background(),
		`INSERT INTO projects (id, name, status, created_by_id, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6)`,
		p.ID, p.Name, string(p.Status), p.CreatedByID, p.CreatedAt, p.UpdatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedProject: %v", err)
	}
	return p
}

// SeedTask inserts a PENDING task created by ownerID, optionally inside a project.
func SeedTask(t *testing.T, pool *pgxpool.Pool, ownerID uuid.UUID, projectID *uuid.UUID) domain.Task {
	t.Helper()

	ts := now()
	task := domain.Task{
		ID:          uuid.New(),
		Title:       "Task " + uniqueSuffix(),
		Status:      domain.TaskStatusPending,
		Priority:    domain.TaskPriorityMedium,
		ProjectID:   projectID,
		CreatedByID: ownerID,
		CreatedAt:   ts,
		UpdatedAt:   ts,
	}

	_, err := pool.Exec(context.Background(),
		`INSERT INTO tasks (id, title, status, priority, project_id, created_by_id, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		task.ID, task.Title, string(task.Status), string(task.Priority), task.ProjectID, task.CreatedByID,
		task.CreatedAt, task.UpdatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedTask: %v", err)
	}
	return task
}

// SeedSubtask inserts a time entry on taskID for the given day and range.
func SeedSubtask(t *testing.T, pool *pgxpool.Pool, taskID uuid.UUID, day, start, end string) domain.Subtask {
	t.Helper()

	minutes, err := domain.EntryMinutes(start, end)
	if err != nil {
		t.Fatalf("testhelper: SeedSubtask: %v", err)
	}
	ts := now()
	s := domain.Subtask{
		ID:               uuid.New(),
		TaskID:           taskID,
		WorkDate:         day,
		StartTime:        start,
		EndTime:          end,
		TimeSpentMinutes: minutes,
		CreatedAt:        ts,
		UpdatedAt:        ts,
	}

	_, err = pool.Exec(context.Background(),
		`INSERT INTO subtasks (id, task_id, work_date, start_time, end_time, time_spent_minutes, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		s.ID, s.TaskID, s.WorkDate, s.StartTime, s.EndTime, s.TimeSpentMinutes, s.CreatedAt, s.UpdatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedSubtask: %v", err)
	}
	return s
}
