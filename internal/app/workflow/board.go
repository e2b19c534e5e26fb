package workflow

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"

	"postdesk/internal/core/domain"
	"postdesk/internal/core/ports"
)

// ViewState is the explicit dialog-control state of the board.
type ViewState int

const (
	ViewClosed ViewState = iota
	ViewViewing
	ViewConfirmingTransition
)

// Board holds the working view for the currently selected task: the
// bound content unit, the sibling tasks, the metadata form, and the
// deliverables uploaded this session. Selection is last-wins: every
// Select bumps a monotonically increasing token and loads that complete
// after a newer selection are discarded.
type Board struct {
	directory    ports.TaskDirectory
	binder       *Binder
	siblings     *SiblingResolver
	orchestrator *Orchestrator
	pollEvery    time.Duration

	mu      sync.Mutex
	state   ViewState
	task    domain.Task
	unit    domain.ContentUnit
	bound   bool
	peers   []domain.Task
	form    domain.MetadataForm
	uploads map[uint64]int
	token   uint64
}

func NewBoard(directory ports.TaskDirectory, binder *Binder, siblings *SiblingResolver, orchestrator *Orchestrator, pollEvery time.Duration) *Board {
	return &Board{
		directory:    directory,
		binder:       binder,
		siblings:     siblings,
		orchestrator: orchestrator,
		pollEvery:    pollEvery,
		uploads:      make(map[uint64]int),
	}
}

// Snapshot is a point-in-time copy of the board's working view.
type Snapshot struct {
	State       ViewState
	Task        domain.Task
	Unit        domain.ContentUnit
	UnitBound   bool
	Siblings    []domain.Task
	Outstanding []domain.Task
	Form        domain.MetadataForm
}

func (b *Board) Snapshot() Snapshot {
	b.mu.Lock()
	defer b.mu.Unlock()
	return Snapshot{
		State:       b.state,
		Task:        b.task,
		Unit:        b.unit,
		UnitBound:   b.bound,
		Siblings:    append([]domain.Task(nil), b.peers...),
		Outstanding: OutstandingSiblings(b.peers),
		Form:        b.form,
	}
}

// Select makes a task the active selection and loads its content unit
// and siblings. If another Select happens while this one is loading,
// the slower load's result is dropped.
func (b *Board) Select(ctx context.Context, task domain.Task) {
	b.mu.Lock()
	b.token++
	token := b.token
	b.state = ViewViewing
	b.task = task
	b.unit = domain.ContentUnit{}
	b.bound = false
	b.peers = nil
	b.form = domain.MetadataForm{}
	b.mu.Unlock()

	b.load(ctx, task, token)
}

// Close clears the selection and invalidates any in-flight load so a
// torn-down view is never updated.
func (b *Board) Close() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.token++
	b.state = ViewClosed
	b.task = domain.Task{}
	b.unit = domain.ContentUnit{}
	b.bound = false
	b.peers = nil
	b.form = domain.MetadataForm{}
}

// Refresh re-pulls the content unit and siblings for the active
// selection only. With nothing selected it is a no-op.
func (b *Board) Refresh(ctx context.Context) {
	b.mu.Lock()
	if b.state == ViewClosed {
		b.mu.Unlock()
		return
	}
	task := b.task
	token := b.token
	b.mu.Unlock()

	b.load(ctx, task, token)
}

// Watch runs the periodic background refresh until the context is
// cancelled. After each refresh the resulting snapshot is handed to
// onRefresh (when non-nil) so the caller can surface the updated view.
func (b *Board) Watch(ctx context.Context, onRefresh func(Snapshot)) {
	ticker := time.NewTicker(b.pollEvery)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			b.Refresh(ctx)
			if onRefresh != nil {
				onRefresh(b.Snapshot())
			}
		}
	}
}

func (b *Board) load(ctx context.Context, task domain.Task, token uint64) {
	unit, bound := b.binder.Bind(ctx, task)
	peers := b.siblings.FindSiblingTasks(ctx, task.CustomerID, task.ContentUnitSequence, task.ID)

	b.mu.Lock()
	defer b.mu.Unlock()
	if token != b.token {
		// A newer selection superseded this load.
		zap.L().Debug("discarding stale load", zap.Uint64("task_id", task.ID))
		return
	}
	b.unit = unit
	b.bound = bound
	b.peers = peers
	if bound {
		b.form = domain.FormFromUnit(unit)
	}
}

// SetForm replaces the working metadata form with the actor's edits.
func (b *Board) SetForm(form domain.MetadataForm) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.form = form
}

// RecordUpload notes that a deliverable was uploaded for a task in this
// session; the design review guard counts these.
func (b *Board) RecordUpload(taskID uint64) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.uploads[taskID]++
}

// SeedUploads primes the per-task upload counts from a persisted
// session, so uploads made by an earlier invocation still satisfy the
// design review guard.
func (b *Board) SeedUploads(counts map[uint64]int) {
	b.mu.Lock()
	defer b.mu.Unlock()
	for taskID, count := range counts {
		b.uploads[taskID] = count
	}
}

// RequestTransition runs the orchestrator against the current working
// view. The displayed status only advances when the transition was
// actually persisted; on any failure the previous status stays in
// place.
func (b *Board) RequestTransition(ctx context.Context, target domain.TaskStatus) (Outcome, error) {
	b.mu.Lock()
	if b.state == ViewClosed {
		b.mu.Unlock()
		return Outcome{}, domain.ErrTaskNotFound
	}
	req := TransitionRequest{
		Task:           b.task,
		Form:           b.form,
		Siblings:       append([]domain.Task(nil), b.peers...),
		SessionUploads: b.uploads[b.task.ID],
	}
	if b.bound {
		unit := b.unit
		req.Unit = &unit
	}
	b.state = ViewConfirmingTransition
	token := b.token
	b.mu.Unlock()

	out, err := b.orchestrator.RequestTransition(ctx, req, target)

	b.mu.Lock()
	if token == b.token && b.state == ViewConfirmingTransition {
		b.state = ViewViewing
		if err == nil && out.Applied {
			b.task.Status = out.NewStatus
		}
	}
	b.mu.Unlock()

	if err == nil && out.Applied {
		// No optimistic merge is guaranteed correct: re-pull everything
		// tied to the selection after a mutation.
		b.Refresh(ctx)
	}
	return out, err
}
