package domain

// UserRole defines the access level of a user.
type UserRole string

const (
	UserRoleUser  UserRole = "USER"
	UserRoleAdmin UserRole = "ADMIN"
)

func (r UserRole) String() string { return string(r) }

func (r UserRole) IsValid() bool {
	switch r {
	case UserRoleUser, UserRoleAdmin:
		return true
	}
	return false
}

// IsAdmin returns true if the role grants administrative privileges.
func (r UserRole) IsAdmin() bool { return r == UserRoleAdmin }

// ProjectStatus is the lifecycle state of a project.
type ProjectStatus string

const (
	ProjectStatusActive    ProjectStatus = "ACTIVE"
	ProjectStatusOnHold    ProjectStatus = "ON_HOLD"
	ProjectStatusCompleted ProjectStatus = "COMPLETED"
)

func (s ProjectStatus) String() string { return string(s) }

func (s ProjectStatus) IsValid() bool {
	switch s {
	case ProjectStatusActive, ProjectStatusOnHold, ProjectStatusCompleted:
		return true
	}
	return false
}

// TaskStatus is the lifecycle state of a task. Transversal work is tracked
// by Task.IsTransversal, not by a status value.
type TaskStatus string

const (
	TaskStatusPending    TaskStatus = "PENDING"
	TaskStatusInProgress TaskStatus = "IN_PROGRESS"
	TaskStatusCompleted  TaskStatus = "COMPLETED"
)

// LegacyTaskStatusTransversal is accepted on input from older clients and
// mapped by ParseTaskStatus. It is never stored.
const LegacyTaskStatusTransversal = "TRANSVERSAL"

func (s TaskStatus) String() string { return string(s) }

func (s TaskStatus) IsValid() bool {
	switch s {
	case TaskStatusPending, TaskStatusInProgress, TaskStatusCompleted:
		return true
	}
	return false
}

// Label returns the Spanish label shown in reports.
func (s TaskStatus) Label() string {
	switch s {
	case TaskStatusPending:
		return "Pendiente"
	case TaskStatusInProgress:
		return "En progreso"
	case TaskStatusCompleted:
		return "Completada"
	}
	return string(s)
}

// ParseTaskStatus converts client input into a status and transversal flag.
// "TRANSVERSAL" maps to COMPLETED with transversal set.
func ParseTaskStatus(raw string) (status TaskStatus, transversal bool, ok bool) {
	if raw == LegacyTaskStatusTransversal {
		return TaskStatusCompleted, true, true
	}
	s := TaskStatus(raw)
	return s, false, s.IsValid()
}

// TaskPriority orders tasks on boards and the map view.
type TaskPriority string

const (
	TaskPriorityLow      TaskPriority = "LOW"
	TaskPriorityMedium   TaskPriority = "MEDIUM"
	TaskPriorityHigh     TaskPriority = "HIGH"
	TaskPriorityCritical TaskPriority = "CRITICAL"
)

func (p TaskPriority) String() string { return string(p) }

func (p TaskPriority) IsValid() bool {
	switch p {
	case TaskPriorityLow, TaskPriorityMedium, TaskPriorityHigh, TaskPriorityCritical:
		return true
	}
	return false
}
