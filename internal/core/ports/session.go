package ports

import (
	"context"

	"postdesk/internal/core/domain"
)

// SessionStore persists the bearer credential between runs. Load returns
// domain.ErrNotAuthenticated when no session has been saved. Deliverable
// upload counts belong to the session too: they persist across
// invocations and reset when a new session is saved or cleared.
type SessionStore interface {
	Save(ctx context.Context, session domain.Session) error
	Load(ctx context.Context) (domain.Session, error)
	Clear(ctx context.Context) error
	RecordUpload(ctx context.Context, taskID uint64) error
	UploadCounts(ctx context.Context) (map[uint64]int, error)
}
