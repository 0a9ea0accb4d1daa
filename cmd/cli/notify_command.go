package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newNotifyCommand(ctx *commandContext) *cobra.Command {
	var flags releaseFlags

	cmd := &cobra.Command{
		Use:   "notify",
		Short: "Send the release notification",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := ctx.newApp()
			if err != nil {
				return err
			}
			defer a.Close(cmd.Context())

			hook, err := flags.hook(a.Service)
			if err != nil {
				return err
			}

			report, err := hook.AfterRelease(cmd.Context())
			if pushErr := a.PushMetrics(cmd.Context()); pushErr != nil {
				fmt.Fprintln(cmd.ErrOrStderr(), pushErr)
			}
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Notification %s for %s (%s)\n", report.Outcome, report.Version, report.ID)
			return nil
		},
	}
	flags.register(cmd)

	return cmd
}
