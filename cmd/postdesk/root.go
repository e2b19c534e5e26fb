package main

import (
	"github.com/spf13/cobra"

	"postdesk/internal/config"
)

func newRootCmd(cfg *config.Config) *cobra.Command {
	root := &cobra.Command{
		Use:           "postdesk",
		Short:         "Collaborative task workflow for content teams",
		Long:          "postdesk moves content tasks (design, copy, community) through their lifecycle, cross-checking the shared post each task belongs to before it enters review.",
		SilenceUsage:  true,
		SilenceErrors: false,
	}

	root.AddCommand(
		newLoginCmd(cfg),
		newLogoutCmd(cfg),
		newTasksCmd(cfg),
		newOpenCmd(cfg),
		newStartCmd(cfg),
		newReviewCmd(cfg),
		newCompleteCmd(cfg),
		newUploadCmd(cfg),
		newWatchCmd(cfg),
	)
	return root
}
