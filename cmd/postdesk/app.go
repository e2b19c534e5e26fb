package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	"go.uber.org/zap"

	"postdesk/internal/adapter/api"
	"postdesk/internal/adapter/session"
	"postdesk/internal/adapter/term"
	"postdesk/internal/app/workflow"
	"postdesk/internal/config"
	"postdesk/internal/core/domain"
	"postdesk/pkg/usermsg"
)

// app wires the workflow engine against the live API using the
// persisted session. Construction fails when no usable session exists,
// routing the user to login.
type app struct {
	cfg     *config.Config
	store   *session.Store
	session domain.Session
	client  *api.Client
	board   *workflow.Board
}

func newApp(ctx context.Context, cfg *config.Config) (*app, error) {
	store, err := session.Open(cfg.SessionDBPath)
	if err != nil {
		return nil, err
	}

	sess, err := store.Load(ctx)
	if err != nil {
		if closeErr := store.Close(); closeErr != nil {
			zap.L().Warn("failed to close session store", zap.Error(closeErr))
		}
		if errors.Is(err, domain.ErrNotAuthenticated) {
			return nil, errors.New(usermsg.Text(usermsg.MsgLoginRequired, cfg.Language))
		}
		return nil, err
	}

	if err := session.InspectToken(sess.Token); err != nil {
		// Expired or malformed credentials are cleared so the next run
		// goes straight to login.
		if clearErr := store.Clear(ctx); clearErr != nil {
			zap.L().Warn("failed to clear stale session", zap.Error(clearErr))
		}
		if closeErr := store.Close(); closeErr != nil {
			zap.L().Warn("failed to close session store", zap.Error(closeErr))
		}
		if errors.Is(err, domain.ErrSessionExpired) {
			return nil, errors.New(usermsg.Text(usermsg.MsgSessionExpired, cfg.Language))
		}
		return nil, errors.New(usermsg.Text(usermsg.MsgLoginRequired, cfg.Language))
	}

	client := api.NewClient(cfg.APIBaseURL, cfg.APITimeout, sess)
	binder := workflow.NewBinder(client)
	resolver := workflow.NewSiblingResolver(client)
	prompter := term.NewPrompter(os.Stdin, os.Stdout)
	orchestrator := workflow.NewOrchestrator(client, client, prompter, cfg.Language)
	board := workflow.NewBoard(client, binder, resolver, orchestrator, cfg.PollInterval)

	// Uploads recorded by earlier invocations of this session still
	// count toward the design review guard.
	counts, err := store.UploadCounts(ctx)
	if err != nil {
		zap.L().Warn("failed to load session upload counts", zap.Error(err))
	} else {
		board.SeedUploads(counts)
	}

	return &app{
		cfg:     cfg,
		store:   store,
		session: sess,
		client:  client,
		board:   board,
	}, nil
}

func (a *app) close() {
	if err := a.store.Close(); err != nil {
		zap.L().Warn("failed to close session store", zap.Error(err))
	}
}

// selectTask looks a task up in the actor's list and makes it the
// board's active selection.
func (a *app) selectTask(ctx context.Context, taskID uint64) (domain.Task, error) {
	tasks, err := a.client.TasksForActor(ctx, a.session.ActorID)
	if err != nil {
		return domain.Task{}, err
	}
	for _, task := range tasks {
		if task.ID == taskID {
			a.board.Select(ctx, task)
			return task, nil
		}
	}
	return domain.Task{}, fmt.Errorf("task %d: %w", taskID, domain.ErrTaskNotFound)
}
