package domain

import (
	"time"

	"github.com/google/uuid"
)

// Task is a unit of work. Time spent on it is recorded as Subtasks.
type Task struct {
	ID             uuid.UUID
	Title          string
	Description    *string
	Status         TaskStatus
	IsTransversal  bool
	Priority       TaskPriority
	Department     *string
	StartDate      *time.Time
	DueDate        *time.Time
	ProjectID      *uuid.UUID
	CreatedByID    uuid.UUID
	AssignedUserID *uuid.UUID
	MapPositionX   *float64
	MapPositionY   *float64
	CreatedAt      time.Time
	UpdatedAt      time.Time

	// Populated by queries that join the parent project or load entries.
	Project  *Project
	Subtasks []Subtask
}

// OwnerIDs returns the creator and, when set, the assignee.
func (t *Task) OwnerIDs() []uuid.UUID {
	ids := []uuid.UUID{t.CreatedByID}
	if t.AssignedUserID != nil && *t.AssignedUserID != t.CreatedByID {
		ids = append(ids, *t.AssignedUserID)
	}
	return ids
}

func (t *Task) Resource() string     { return "task" }
func (t *Task) ResourceID() uuid.UUID { return t.ID }

// ProjectName returns the joined project's name or "" when the task has none.
func (t *Task) ProjectName() string {
	if t.Project == nil {
		return ""
	}
	return t.Project.Name
}

// StatusLabel returns the label used in reports, which shows transversal
// tasks as such regardless of their lifecycle status.
func (t *Task) StatusLabel() string {
	if t.IsTransversal {
		return "Transversal"
	}
	return t.Status.Label()
}

// Subtask is a time entry recorded against a task on one calendar day.
type Subtask struct {
	ID               uuid.UUID
	TaskID           uuid.UUID
	Description      string
	WorkDate         string
	StartTime        string
	EndTime          string
	TimeSpentMinutes int
	CreatedAt        time.Time
	UpdatedAt        time.Time

	// Parent task, populated by repository joins. Ownership is derived from it.
	Task *Task
}

// OwnerIDs returns the owners of the parent task. A subtask loaded without
// its parent has no owners.
func (s *Subtask) OwnerIDs() []uuid.UUID {
	if s.Task == nil {
		return nil
	}
	return s.Task.OwnerIDs()
}

func (s *Subtask) Resource() string     { return "subtask" }
func (s *Subtask) ResourceID() uuid.UUID { return s.ID }

// Activity is a coarse hours-per-day record tying a user to a task.
type Activity struct {
	ID          uuid.UUID
	UserID      uuid.UUID
	TaskID      uuid.UUID
	Date        string
	Hours       float64
	Description *string
	CreatedAt   time.Time

	Task *Task
}

func (a *Activity) OwnerIDs() []uuid.UUID { return []uuid.UUID{a.UserID} }
func (a *Activity) Resource() string      { return "activity" }
func (a *Activity) ResourceID() uuid.UUID  { return a.ID }

// TaskFilter narrows task listings. Nil fields are ignored.
type TaskFilter struct {
	ProjectID      *uuid.UUID
	Status         *TaskStatus
	Priority       *TaskPriority
	AssignedUserID *uuid.UUID
}

// ActivityFilter selects activities by a single day or an inclusive range.
// Date takes precedence over From/To.
type ActivityFilter struct {
	Date string
	From string
	To   string
}
