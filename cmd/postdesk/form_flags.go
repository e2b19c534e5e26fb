package main

import (
	"github.com/spf13/cobra"

	"postdesk/internal/core/domain"
)

// formFlags exposes the post's editable metadata as flags on the review
// command. Only flags the actor actually set override the bound values.
type formFlags struct {
	scheduledDate string
	scheduledTime string
	platform      string
	copyIn        string
	copyOut       string
	ideaTema      string
	campaign      string
	pilar         string
	referencia    string
}

func (f *formFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.scheduledDate, "scheduled-date", "", "scheduled date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&f.scheduledTime, "scheduled-time", "", "scheduled time (HH:MM)")
	cmd.Flags().StringVar(&f.platform, "platform", "", "target platform")
	cmd.Flags().StringVar(&f.copyIn, "copy-in", "", "copy in text")
	cmd.Flags().StringVar(&f.copyOut, "copy-out", "", "copy out text")
	cmd.Flags().StringVar(&f.ideaTema, "idea", "", "idea / tema")
	cmd.Flags().StringVar(&f.campaign, "campaign", "", "campaign")
	cmd.Flags().StringVar(&f.pilar, "pilar", "", "content pilar")
	cmd.Flags().StringVar(&f.referencia, "referencia", "", "reference")
}

func (f *formFlags) apply(cmd *cobra.Command, form domain.MetadataForm) domain.MetadataForm {
	set := func(flag string, dst *string, value string) {
		if cmd.Flags().Changed(flag) {
			*dst = value
		}
	}
	set("scheduled-date", &form.ScheduledDate, f.scheduledDate)
	set("scheduled-time", &form.ScheduledTime, f.scheduledTime)
	set("platform", &form.Platform, f.platform)
	set("copy-in", &form.CopyIn, f.copyIn)
	set("copy-out", &form.CopyOut, f.copyOut)
	set("idea", &form.IdeaTema, f.ideaTema)
	set("campaign", &form.Campaign, f.campaign)
	set("pilar", &form.Pilar, f.pilar)
	set("referencia", &form.Referencia, f.referencia)
	return form
}
