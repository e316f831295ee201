package rest

import (
	"time"

	"github.com/google/uuid"

	"github.com/wigac/wigac-backend/internal/domain"
	"github.com/wigac/wigac-backend/internal/timeagg"
)

type userResponse struct {
	ID        uuid.UUID `json:"id"`
	Email     string    `json:"email"`
	Name      string    `json:"name"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"createdAt"`
}

func toUserResponse(u *domain.User) userResponse {
	return userResponse{
		ID:        u.ID,
		Email:     u.Email,
		Name:      u.Name,
		Role:      u.Role.String(),
		CreatedAt: u.CreatedAt,
	}
}

type projectResponse struct {
	ID          uuid.UUID  `json:"id"`
	Name        string     `json:"name"`
	Description *string    `json:"description"`
	Status      string     `json:"status"`
	Color       *string    `json:"color"`
	StartDate   *time.Time `json:"startDate"`
	EndDate     *time.Time `json:"endDate"`
	CreatedByID uuid.UUID  `json:"createdById"`
	CreatedAt   time.Time  `json:"createdAt"`
	UpdatedAt   time.Time  `json:"updatedAt"`
}

func toProjectResponse(p *domain.Project) projectResponse {
	return projectResponse{
		ID:          p.ID,
		Name:        p.Name,
		Description: p.Description,
		Status:      p.Status.String(),
		Color:       p.Color,
		StartDate:   p.StartDate,
		EndDate:     p.EndDate,
		CreatedByID: p.CreatedByID,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
}

type subtaskResponse struct {
	ID               uuid.UUID `json:"id"`
	TaskID           uuid.UUID `json:"taskId"`
	Description      string    `json:"description"`
	WorkDate         string    `json:"workDate"`
	StartTime        string    `json:"startTime"`
	EndTime          string    `json:"endTime"`
	TimeSpentMinutes int           `json:"timeSpentMinutes"`
	CreatedAt        time.Time     `json:"createdAt"`
	UpdatedAt        time.Time     `json:"updatedAt"`
	Task             *taskResponse `json:"task,omitempty"`
}

func toSubtaskResponse(s *domain.Subtask) subtaskResponse {
	return subtaskResponse{
		ID:               s.ID,
		TaskID:           s.TaskID,
		Description:      s.Description,
		WorkDate:         s.WorkDate,
		StartTime:        s.StartTime,
		EndTime:          s.EndTime,
		TimeSpentMinutes: s.TimeSpentMinutes,
		CreatedAt:        s.CreatedAt,
		UpdatedAt:        s.UpdatedAt,
	}
}

// toSubtaskWithTask also embeds the parent task and its project.
func toSubtaskWithTask(s *domain.Subtask) subtaskResponse {
	resp := toSubtaskResponse(s)
	if s.Task != nil {
		t := toTaskResponse(s.Task)
		resp.Task = &t
	}
	return resp
}

type taskResponse struct {
	ID             uuid.UUID         `json:"id"`
	Title          string            `json:"title"`
	Description    *string           `json:"description"`
	Status         string            `json:"status"`
	IsTransversal  bool              `json:"isTransversal"`
	Priority       string            `json:"priority"`
	Department     *string           `json:"department"`
	StartDate      *time.Time        `json:"startDate"`
	DueDate        *time.Time        `json:"dueDate"`
	ProjectID      *uuid.UUID        `json:"projectId"`
	CreatedByID    uuid.UUID         `json:"createdById"`
	AssignedUserID *uuid.UUID        `json:"assignedUserId"`
	MapPositionX   *float64          `json:"mapPositionX"`
	MapPositionY   *float64          `json:"mapPositionY"`
	CreatedAt      time.Time         `json:"createdAt"`
	UpdatedAt      time.Time         `json:"updatedAt"`
	Project        *projectResponse  `json:"project,omitempty"`
	Subtasks       []subtaskResponse `json:"subtasks,omitempty"`
}

func toTaskResponse(t *domain.Task) taskResponse {
	resp := taskResponse{
		ID:             t.ID,
		Title:          t.Title,
		Description:    t.Description,
		Status:         t.Status.String(),
		IsTransversal:  t.IsTransversal,
		Priority:       t.Priority.String(),
		Department:     t.Department,
		StartDate:      t.StartDate,
		DueDate:        t.DueDate,
		ProjectID:      t.ProjectID,
		CreatedByID:    t.CreatedByID,
		AssignedUserID: t.AssignedUserID,
		MapPositionX:   t.MapPositionX,
		MapPositionY:   t.MapPositionY,
		CreatedAt:      t.CreatedAt,
		UpdatedAt:      t.UpdatedAt,
	}
	if t.Project != nil {
		p := toProjectResponse(t.Project)
		resp.Project = &p
	}
	if len(t.Subtasks) > 0 {
		resp.Subtasks = make([]subtaskResponse, 0, len(t.Subtasks))
		for i := range t.Subtasks {
			resp.Subtasks = append(resp.Subtasks, toSubtaskResponse(&t.Subtasks[i]))
		}
	}
	return resp
}

type activityResponse struct {
	ID          uuid.UUID     `json:"id"`
	UserID      uuid.UUID     `json:"userId"`
	TaskID      uuid.UUID     `json:"taskId"`
	Date        string        `json:"date"`
	Hours       float64       `json:"hours"`
	Description *string       `json:"description"`
	CreatedAt   time.Time     `json:"createdAt"`
	Task        *taskResponse `json:"task,omitempty"`
}

func toActivityResponse(a *domain.Activity) activityResponse {
	resp := activityResponse{
		ID:          a.ID,
		UserID:      a.UserID,
		TaskID:      a.TaskID,
		Date:        a.Date,
		Hours:       a.Hours,
		Description: a.Description,
		CreatedAt:   a.CreatedAt,
	}
	if a.Task != nil {
		t := toTaskResponse(a.Task)
		resp.Task = &t
	}
	return resp
}

type wikiResponse struct {
	ID          uuid.UUID  `json:"id"`
	Title       string     `json:"title"`
	Slug        string     `json:"slug"`
	Content     string     `json:"content"`
	ProjectID   *uuid.UUID `json:"projectId"`
	TaskID      *uuid.UUID `json:"taskId"`
	CreatedByID uuid.UUID  `json:"createdById"`
	CreatedAt   time.Time  `json:"createdAt"`
	UpdatedAt   time.Time  `json:"updatedAt"`
}

func toWikiResponse(p *domain.WikiPage) wikiResponse {
	return wikiResponse{
		ID:          p.ID,
		Title:       p.Title,
		Slug:        p.Slug,
		Content:     p.Content,
		ProjectID:   p.ProjectID,
		TaskID:      p.TaskID,
		CreatedByID: p.CreatedByID,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
}

type quickNoteResponse struct {
	Content   string    `json:"content"`
	UpdatedAt time.Time `json:"updatedAt"`
}

type regacResponse struct {
	Date       string `json:"date"`
	Registered bool   `json:"registered"`
}

type taskSummaryResponse struct {
	TaskID      uuid.UUID `json:"taskId"`
	Title       string    `json:"title"`
	ProjectName string    `json:"projectName"`
	DayMinutes  int       `json:"dayMinutes"`
	WeekMinutes int       `json:"weekMinutes"`
	AllMinutes  int       `json:"totalMinutes"`
}

type overlapResponse struct {
	Date   string    `json:"date"`
	First  uuid.UUID `json:"firstId"`
	Second uuid.UUID `json:"secondId"`
}

type timesheetResponse struct {
	Date          string                `json:"date"`
	WeekStart     string                `json:"weekStart"`
	WeekEnd       string                `json:"weekEnd"`
	DailyMinutes  int                   `json:"dailyMinutes"`
	DailyTotal    string                `json:"dailyTotal"`
	WeeklyMinutes int                   `json:"weeklyMinutes"`
	WeeklyTotal   string                `json:"weeklyTotal"`
	Tasks         []taskSummaryResponse `json:"tasks"`
	Overlaps      []overlapResponse     `json:"overlaps"`
}

func toTimesheetResponse(s timeagg.Summary) timesheetResponse {
	resp := timesheetResponse{
		Date:          s.Date,
		WeekStart:     s.WeekStart,
		WeekEnd:       s.WeekEnd,
		DailyMinutes:  s.DailyMinutes,
		DailyTotal:    timeagg.FormatHM(s.DailyMinutes),
		WeeklyMinutes: s.WeeklyMinutes,
		WeeklyTotal:   timeagg.FormatHM(s.WeeklyMinutes),
		Tasks:         make([]taskSummaryResponse, 0, len(s.Tasks)),
		Overlaps:      make([]overlapResponse, 0, len(s.Overlaps)),
	}
	for _, t := range s.Tasks {
		resp.Tasks = append(resp.Tasks, taskSummaryResponse(t))
	}
	for _, o := range s.Overlaps {
		resp.Overlaps = append(resp.Overlaps, overlapResponse{
			Date:   o.First.WorkDate,
			First:  o.First.ID,
			Second: o.Second.ID,
		})
	}
	return resp
}

func mapSlice[T any, R any](items []T, f func(*T) R) []R {
	out := make([]R, 0, len(items))
	for i := range items {
		out = append(out, f(&items[i]))
	}
	return out
}
