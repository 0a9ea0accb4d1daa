package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
)

func newPreviewCommand(ctx *commandContext) *cobra.Command {
	var flags releaseFlags

	cmd := &cobra.Command{
		Use:   "preview",
		Short: "Print the payload that notify would send",
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

			payload, err := a.Service.Preview(cmd.Context(), hook.Context())
			if err != nil {
				return err
			}
			if payload == nil {
				fmt.Fprintln(cmd.OutOrStdout(), "Nothing to send")
				return nil
			}

			out, err := json.MarshalIndent(payload, "", "  ")
			if err != nil {
				return fmt.Errorf("encoding payload: %w", err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), string(out))
			return nil
		},
	}
	flags.register(cmd)

	return cmd
}
