package workflow

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"postdesk/internal/core/domain"
	"postdesk/internal/core/ports"
	"postdesk/pkg/usermsg"
)

// Orchestrator decides allowed status transitions, runs validation
// gates, collects user confirmation for soft failures, and persists the
// new state through the task directory.
type Orchestrator struct {
	directory ports.TaskDirectory
	units     ports.ContentUnitStore
	prompter  ports.Prompter
	lang      string
}

func NewOrchestrator(directory ports.TaskDirectory, units ports.ContentUnitStore, prompter ports.Prompter, lang string) *Orchestrator {
	return &Orchestrator{
		directory: directory,
		units:     units,
		prompter:  prompter,
		lang:      lang,
	}
}

// TransitionRequest carries the working state the orchestrator needs to
// judge a forward transition. Unit is nil when the binder reported the
// content unit absent. SessionUploads counts deliverables uploaded for
// this task in the current session.
type TransitionRequest struct {
	Task           domain.Task
	Form           domain.MetadataForm
	Unit           *domain.ContentUnit
	Siblings       []domain.Task
	SessionUploads int
}

// Outcome reports what a transition request produced. PublishReady is
// nil when readiness could not be judged (content unit absent).
type Outcome struct {
	Applied      bool
	Declined     bool
	NewStatus    domain.TaskStatus
	Violations   []Violation
	Outstanding  []domain.Task
	PublishReady *bool
}

// RequestTransition attempts to move a task to the target status.
// Hard failures come back as errors with no state change; a declined
// soft warning yields Declined=true and no state change. The displayed
// status must only be advanced when Applied is true.
func (o *Orchestrator) RequestTransition(ctx context.Context, req TransitionRequest, target domain.TaskStatus) (Outcome, error) {
	switch {
	case req.Task.Status == domain.TaskStatusTodo && target == domain.TaskStatusInProgress:
		return o.persist(ctx, req.Task.ID, target)
	case req.Task.Status == domain.TaskStatusInProgress && target == domain.TaskStatusReview:
		return o.requestReview(ctx, req)
	case req.Task.Status == domain.TaskStatusReview && target == domain.TaskStatusCompleted:
		// Reviewer authorization is enforced upstream.
		return o.persist(ctx, req.Task.ID, target)
	default:
		return Outcome{}, domain.ErrInvalidTransition
	}
}

func (o *Orchestrator) requestReview(ctx context.Context, req TransitionRequest) (Outcome, error) {
	out := Outcome{NewStatus: domain.TaskStatusReview}

	if req.Task.Type == domain.TaskTypeDesign {
		// Design work cannot enter review without an artifact uploaded
		// in the current session.
		if req.SessionUploads == 0 {
			return Outcome{}, domain.ErrDeliverableRequired
		}
	} else {
		// The metadata form is persisted before anything else; a failed
		// save aborts the transition outright.
		if req.Unit == nil || req.Task.DueDate == nil {
			return Outcome{}, domain.ErrContentUnitNotFound
		}
		period := PeriodKey(*req.Task.DueDate)
		if err := o.units.SaveUnitMetadata(ctx, req.Task.CustomerID, period, req.Task.ContentUnitSequence, req.Form); err != nil {
			zap.L().Error("metadata save failed, aborting transition",
				zap.Uint64("task_id", req.Task.ID), zap.Error(err))
			return Outcome{}, err
		}

		out.Violations = Validate(*req.Unit, req.Form, req.Siblings)
		if len(out.Violations) > 0 {
			ok, err := o.prompter.Confirm(ctx, o.violationPrompt(out.Violations))
			if err != nil {
				return Outcome{}, err
			}
			if !ok {
				out.Declined = true
				return out, nil
			}
		}
	}

	out.Outstanding = OutstandingSiblings(req.Siblings)
	if len(out.Outstanding) > 0 {
		ok, err := o.prompter.Confirm(ctx, o.siblingPrompt(out.Outstanding))
		if err != nil {
			return Outcome{}, err
		}
		if !ok {
			out.Declined = true
			return out, nil
		}
	} else if req.Unit != nil {
		// Every collaborator is done; tell the actor whether the whole
		// unit is publish-ready. Informational only, never blocks.
		ready := len(Validate(*req.Unit, req.Form, req.Siblings)) == 0
		out.PublishReady = &ready
		if ready {
			o.prompter.Inform(usermsg.Text(usermsg.MsgPublishReady, o.lang))
		} else {
			o.prompter.Inform(usermsg.Text(usermsg.MsgNotPublishReady, o.lang))
		}
	}

	if err := o.directory.SetTaskStatus(ctx, req.Task.ID, domain.TaskStatusReview); err != nil {
		return Outcome{}, err
	}
	out.Applied = true
	return out, nil
}

func (o *Orchestrator) persist(ctx context.Context, taskID uint64, target domain.TaskStatus) (Outcome, error) {
	if err := o.directory.SetTaskStatus(ctx, taskID, target); err != nil {
		return Outcome{}, err
	}
	return Outcome{Applied: true, NewStatus: target}, nil
}

func (o *Orchestrator) violationPrompt(violations []Violation) string {
	var b strings.Builder
	b.WriteString(usermsg.Text(usermsg.MsgConfirmIncomplete, o.lang))
	for _, v := range violations {
		b.WriteString("\n  - ")
		b.WriteString(usermsg.Text(string(v), o.lang))
	}
	return b.String()
}

func (o *Orchestrator) siblingPrompt(outstanding []domain.Task) string {
	var b strings.Builder
	b.WriteString(usermsg.Text(usermsg.MsgSiblingsNotReady, o.lang))
	for _, task := range outstanding {
		b.WriteString("\n  - ")
		b.WriteString(task.Title)
		b.WriteString(" (")
		b.WriteString(string(task.Status))
		b.WriteString(")")
	}
	return b.String()
}
