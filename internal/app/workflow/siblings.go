package workflow

import (
	"context"

	"go.uber.org/zap"

	"postdesk/internal/core/domain"
	"postdesk/internal/core/ports"
)

// SiblingResolver finds the other tasks tied to the same content unit,
// for cross-actor visibility. Its output is advisory: a failed lookup
// degrades to an empty slice.
type SiblingResolver struct {
	directory ports.TaskDirectory
}

func NewSiblingResolver(directory ports.TaskDirectory) *SiblingResolver {
	return &SiblingResolver{directory: directory}
}

// FindSiblingTasks returns every task sharing (customer, content-unit
// sequence) except the excluded one, in API response order.
func (r *SiblingResolver) FindSiblingTasks(ctx context.Context, customerID uint64, sequence int, excludeTaskID uint64) []domain.Task {
	tasks, err := r.directory.SiblingTasks(ctx, customerID, sequence)
	if err != nil {
		zap.L().Warn("sibling lookup failed",
			zap.Uint64("customer_id", customerID),
			zap.Int("sequence", sequence),
			zap.Error(err))
		return nil
	}

	siblings := make([]domain.Task, 0, len(tasks))
	for _, task := range tasks {
		if task.ID == excludeTaskID {
			continue
		}
		siblings = append(siblings, task)
	}
	return siblings
}

// IsSiblingReady reports whether a sibling has delivered its
// contribution: it reached review or completed, or it has a recorded
// deliverable file.
func IsSiblingReady(task domain.Task) bool {
	switch task.Status {
	case domain.TaskStatusReview, domain.TaskStatusCompleted:
		return true
	}
	return task.Deliverable != nil
}

// OutstandingSiblings filters the siblings that are not yet ready.
func OutstandingSiblings(siblings []domain.Task) []domain.Task {
	var outstanding []domain.Task
	for _, sibling := range siblings {
		if !IsSiblingReady(sibling) {
			outstanding = append(outstanding, sibling)
		}
	}
	return outstanding
}
