package main

import (
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"strconv"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"postdesk/internal/app/workflow"
	"postdesk/internal/config"
	"postdesk/internal/core/domain"
	"postdesk/pkg/usermsg"
)

func newTasksCmd(cfg *config.Config) *cobra.Command {
	return &cobra.Command{
		Use:   "tasks",
		Short: "List your assigned tasks",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp(cmd.Context(), cfg)
			if err != nil {
				return err
			}
			defer a.close()

			tasks, err := a.client.TasksForActor(cmd.Context(), a.session.ActorID)
			if err != nil {
				return err
			}
			for _, task := range tasks {
				due := "-"
				if task.DueDate != nil {
					due = task.DueDate.Format("2006-01-02")
				}
				cmd.Printf("%-6d %-10s %-12s %-10s post#%-4d %s\n",
					task.ID, task.Type, task.Status, due, task.ContentUnitSequence, task.Title)
			}
			return nil
		},
	}
}

func newOpenCmd(cfg *config.Config) *cobra.Command {
	return &cobra.Command{
		Use:   "open <task-id>",
		Short: "Open a task: its post, collaborators, and readiness",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			taskID, err := parseTaskID(args[0])
			if err != nil {
				return err
			}

			a, err := newApp(cmd.Context(), cfg)
			if err != nil {
				return err
			}
			defer a.close()

			if _, err := a.selectTask(cmd.Context(), taskID); err != nil {
				return err
			}
			printSnapshot(cmd, a.board.Snapshot(), cfg.Language)
			return nil
		},
	}
}

func newStartCmd(cfg *config.Config) *cobra.Command {
	return &cobra.Command{
		Use:   "start <task-id>",
		Short: "Pick a task up (todo -> in_progress)",
		Args:  cobra.ExactArgs(1),
		RunE:  transitionRunE(cfg, domain.TaskStatusInProgress),
	}
}

func newCompleteCmd(cfg *config.Config) *cobra.Command {
	return &cobra.Command{
		Use:   "complete <task-id>",
		Short: "Approve reviewed work (review -> completed)",
		Args:  cobra.ExactArgs(1),
		RunE:  transitionRunE(cfg, domain.TaskStatusCompleted),
	}
}

func newReviewCmd(cfg *config.Config) *cobra.Command {
	var form formFlags

	cmd := &cobra.Command{
		Use:   "review <task-id>",
		Short: "Send a task to review (in_progress -> review)",
		Long:  "Sends a task to review. For non-design tasks the post metadata is saved first, then completeness is checked; gaps and unready collaborators ask for confirmation before proceeding.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			taskID, err := parseTaskID(args[0])
			if err != nil {
				return err
			}

			a, err := newApp(cmd.Context(), cfg)
			if err != nil {
				return err
			}
			defer a.close()

			if _, err := a.selectTask(cmd.Context(), taskID); err != nil {
				return err
			}

			snap := a.board.Snapshot()
			a.board.SetForm(form.apply(cmd, snap.Form))

			out, err := a.board.RequestTransition(cmd.Context(), domain.TaskStatusReview)
			if err != nil {
				cmd.PrintErrln(usermsg.Text(usermsg.MsgStatusNotSaved, cfg.Language))
				return err
			}
			if out.Declined {
				cmd.Println("left as is")
				return nil
			}
			cmd.Printf("task %d is now %s\n", taskID, out.NewStatus)
			return nil
		},
	}

	form.register(cmd)
	return cmd
}

func newUploadCmd(cfg *config.Config) *cobra.Command {
	return &cobra.Command{
		Use:   "upload <task-id> <file>",
		Short: "Upload a deliverable for a task",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			taskID, err := parseTaskID(args[0])
			if err != nil {
				return err
			}

			a, err := newApp(cmd.Context(), cfg)
			if err != nil {
				return err
			}
			defer a.close()

			file, err := os.Open(args[1])
			if err != nil {
				return err
			}
			defer file.Close()

			ref, err := a.client.UploadDeliverable(cmd.Context(), taskID, filepath.Base(args[1]), file)
			if err != nil {
				return err
			}
			if err := a.store.RecordUpload(cmd.Context(), taskID); err != nil {
				zap.L().Warn("failed to persist upload count", zap.Error(err))
			}
			a.board.RecordUpload(taskID)
			cmd.Printf("uploaded %s (%s)\n", ref.Name, ref.ID)
			return nil
		},
	}
}

func newWatchCmd(cfg *config.Config) *cobra.Command {
	return &cobra.Command{
		Use:   "watch <task-id>",
		Short: "Follow a task, refreshing its post and collaborators periodically",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			taskID, err := parseTaskID(args[0])
			if err != nil {
				return err
			}

			a, err := newApp(cmd.Context(), cfg)
			if err != nil {
				return err
			}
			defer a.close()

			if _, err := a.selectTask(cmd.Context(), taskID); err != nil {
				return err
			}
			printSnapshot(cmd, a.board.Snapshot(), cfg.Language)

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			defer a.board.Close()

			a.board.Watch(ctx, func(snap workflow.Snapshot) {
				printSnapshot(cmd, snap, cfg.Language)
			})
			return nil
		},
	}
}

func transitionRunE(cfg *config.Config, target domain.TaskStatus) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		taskID, err := parseTaskID(args[0])
		if err != nil {
			return err
		}

		a, err := newApp(cmd.Context(), cfg)
		if err != nil {
			return err
		}
		defer a.close()

		if _, err := a.selectTask(cmd.Context(), taskID); err != nil {
			return err
		}

		out, err := a.board.RequestTransition(cmd.Context(), target)
		if err != nil {
			cmd.PrintErrln(usermsg.Text(usermsg.MsgStatusNotSaved, cfg.Language))
			return err
		}
		cmd.Printf("task %d is now %s\n", taskID, out.NewStatus)
		return nil
	}
}

func parseTaskID(arg string) (uint64, error) {
	taskID, err := strconv.ParseUint(arg, 10, 64)
	if err != nil || taskID == 0 {
		return 0, fmt.Errorf("invalid task id %q", arg)
	}
	return taskID, nil
}

func printSnapshot(cmd *cobra.Command, snap workflow.Snapshot, lang string) {
	cmd.Printf("[%d] %s (%s, %s)\n", snap.Task.ID, snap.Task.Title, snap.Task.Type, snap.Task.Status)

	if !snap.UnitBound {
		cmd.Println("post: not found for this period (readiness unknown)")
	} else {
		unit := snap.Unit
		when := unit.ScheduledDate
		if unit.ScheduledTime != "" {
			when += " " + unit.ScheduledTime
		}
		cmd.Printf("post #%d: %s on %s\n", unit.Sequence, unit.Platform, when)
		cmd.Printf("  idea: %s | campaign: %s | pilar: %s\n", unit.IdeaTema, unit.Campaign, unit.Pilar)
		cmd.Printf("  copy out: %s\n", unit.CopyOut)
		if unit.HasArtwork() {
			cmd.Printf("  artwork: %d file(s)\n", len(unit.ArteFiles)+boolToInt(unit.Arte != nil))
		}
	}

	for _, sibling := range snap.Siblings {
		marker := " "
		if workflow.IsSiblingReady(sibling) {
			marker = "x"
		}
		cmd.Printf("  [%s] %s (%s, %s)\n", marker, sibling.Title, sibling.Type, sibling.Status)
	}

	if len(snap.Outstanding) == 0 && snap.UnitBound {
		if len(workflow.Validate(snap.Unit, snap.Form, snap.Siblings)) == 0 {
			cmd.Println(usermsg.Text(usermsg.MsgPublishReady, lang))
		} else {
			cmd.Println(usermsg.Text(usermsg.MsgNotPublishReady, lang))
		}
	}
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
