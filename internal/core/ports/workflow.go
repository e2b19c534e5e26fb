package ports

import (
	"context"
	"io"

	"postdesk/internal/core/domain"
)

// TaskDirectory is the task entity accessor backed by the upstream API.
// Mutation failures are returned to the caller, never swallowed; after
// any successful mutation the caller must re-fetch rather than merge.
type TaskDirectory interface {
	TasksForActor(ctx context.Context, actorID uint64) ([]domain.Task, error)
	SetTaskStatus(ctx context.Context, taskID uint64, status domain.TaskStatus) error
	SiblingTasks(ctx context.Context, customerID uint64, sequence int) ([]domain.Task, error)
}

// ContentUnitStore reads and writes the shared post records.
type ContentUnitStore interface {
	UnitsForPeriod(ctx context.Context, customerID uint64, period string) ([]domain.ContentUnit, error)
	SaveUnitMetadata(ctx context.Context, customerID uint64, period string, sequence int, form domain.MetadataForm) error
}

// DeliverableStore uploads a task's deliverable and returns the stored
// file reference.
type DeliverableStore interface {
	UploadDeliverable(ctx context.Context, taskID uint64, filename string, content io.Reader) (domain.FileRef, error)
}

// Prompter collects the explicit accept/decline answer for soft
// validation failures, and carries informational messages that never
// block.
type Prompter interface {
	Confirm(ctx context.Context, question string) (bool, error)
	Inform(message string)
}
