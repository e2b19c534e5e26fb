package domain

import "time"

type TaskStatus string

const (
	TaskStatusTodo       TaskStatus = "todo"
	TaskStatusInProgress TaskStatus = "in_progress"
	TaskStatusReview     TaskStatus = "review"
	TaskStatusCompleted  TaskStatus = "completed"
)

// ParseTaskStatus maps a wire status to its closed variant. The upstream
// API emits "pending" for tasks that have not been picked up; it is the
// same state as "todo".
func ParseTaskStatus(value string) (TaskStatus, error) {
	switch value {
	case "pending", "todo":
		return TaskStatusTodo, nil
	case "in_progress":
		return TaskStatusInProgress, nil
	case "review":
		return TaskStatusReview, nil
	case "completed":
		return TaskStatusCompleted, nil
	default:
		return "", ErrUnknownTaskStatus
	}
}

type TaskType string

const (
	TaskTypeDesign TaskType = "design"
	TaskTypeCopy   TaskType = "copy"
	TaskTypeOther  TaskType = "other"
)

// ParseTaskType keeps the variant closed: any discipline the engine does
// not special-case (community, video, ...) collapses to TaskTypeOther.
func ParseTaskType(value string) TaskType {
	switch value {
	case "design":
		return TaskTypeDesign
	case "copy":
		return TaskTypeCopy
	default:
		return TaskTypeOther
	}
}

type TaskPriority string

const (
	TaskPriorityLow    TaskPriority = "low"
	TaskPriorityMedium TaskPriority = "medium"
	TaskPriorityHigh   TaskPriority = "high"
)

// FileRef points at a file already stored by the upstream API.
type FileRef struct {
	ID   string
	Name string
	URL  string
}

// Task is a unit of work assigned to one actor and tied to a shared
// content unit. Tasks are created by the upstream assignment system;
// this engine only moves their status forward, never deletes them.
type Task struct {
	ID                  uint64
	Title               string
	Description         *string
	Type                TaskType
	Status              TaskStatus
	Priority            TaskPriority
	DueDate             *time.Time
	AssigneeID          uint64
	CustomerID          uint64
	ContentUnitID       uint64
	ContentUnitSequence int
	Deliverable         *FileRef
}
