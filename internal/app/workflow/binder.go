package workflow

import (
	"context"
	"strings"
	"time"

	"go.uber.org/zap"

	"postdesk/internal/core/domain"
	"postdesk/internal/core/ports"
)

// Binder fetches the shared content unit associated with a task. A
// lookup miss or upstream failure yields an absent binding, never an
// error: readiness checks against an absent unit read as "unknown", not
// "failed".
type Binder struct {
	units ports.ContentUnitStore
}

func NewBinder(units ports.ContentUnitStore) *Binder {
	return &Binder{units: units}
}

// Bind loads the content unit for a task: among the customer's units in
// the period derived from the task's due date, the one whose sequence
// matches the task's content-unit sequence. The second return is false
// when no unit matched or the lookup failed.
func (b *Binder) Bind(ctx context.Context, task domain.Task) (domain.ContentUnit, bool) {
	if task.DueDate == nil {
		zap.L().Debug("task has no due date, cannot derive period", zap.Uint64("task_id", task.ID))
		return domain.ContentUnit{}, false
	}

	period := PeriodKey(*task.DueDate)
	units, err := b.units.UnitsForPeriod(ctx, task.CustomerID, period)
	if err != nil {
		zap.L().Warn("failed to load content units",
			zap.Uint64("customer_id", task.CustomerID),
			zap.String("period", period),
			zap.Error(err))
		return domain.ContentUnit{}, false
	}

	for _, unit := range units {
		if unit.Sequence == task.ContentUnitSequence {
			unit.ScheduledDate, unit.ScheduledTime = normalizeUnitSchedule(unit)
			return unit, true
		}
	}

	return domain.ContentUnit{}, false
}

// PeriodKey derives the year-month key the upstream API groups content
// units under.
func PeriodKey(t time.Time) string {
	return t.Format("2006-01")
}

func normalizeUnitSchedule(unit domain.ContentUnit) (string, string) {
	date, timeOfDay := NormalizeSchedule(unit.ScheduledDate)
	if timeOfDay == "" {
		timeOfDay = unit.ScheduledTime
	}
	return date, timeOfDay
}

// NormalizeSchedule splits a scheduled-date value into a date-only part
// and a time-only part. The upstream field arrives in three shapes: a
// timestamp with a time-zone marker ("2025-11-16T06:00:00.000Z"), a
// space-separated date and time ("2025-11-16 10:00:00"), or a bare date
// ("2025-11-16"). The time part is absent (empty) for the bare shape.
// The clock value is taken verbatim, not converted to local time, since
// it feeds separate date and time form fields.
func NormalizeSchedule(raw string) (date string, timeOfDay string) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", ""
	}

	var rest string
	switch {
	case strings.Contains(raw, "T"):
		parts := strings.SplitN(raw, "T", 2)
		date, rest = parts[0], parts[1]
	case strings.Contains(raw, " "):
		parts := strings.SplitN(raw, " ", 2)
		date, rest = parts[0], parts[1]
	default:
		date = raw
	}

	if len(rest) >= 5 {
		timeOfDay = rest[:5]
	}
	return date, timeOfDay
}
