package main

import (
	"errors"
	"strings"
	"sync"

	"github.com/marcelsud/release-notify/config"
	"github.com/marcelsud/release-notify/internal/app"
	"github.com/marcelsud/release-notify/internal/logging"
	"github.com/marcelsud/release-notify/release"
	"github.com/spf13/cobra"
)

type commandContext struct {
	configFlag *string

	configOnce sync.Once
	config     *config.Config
	configErr  error
}

func (c *commandContext) ensureConfig() (*config.Config, error) {
	c.configOnce.Do(func() {
		c.config, c.configErr = config.Load(strings.TrimSpace(*c.configFlag))
	})
	return c.config, c.configErr
}

func (c *commandContext) newApp() (*app.App, error) {
	cfg, err := c.ensureConfig()
	if err != nil {
		return nil, err
	}
	return app.New(cfg, logging.NewConsole(cfg.LogLevel))
}

// releaseFlags are shared by notify and preview
type releaseFlags struct {
	version string
	failed  bool
}

func (f *releaseFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.version, "version", "", "Version that was released")
	cmd.Flags().BoolVar(&f.failed, "failed", false, "Send the error message instead of the success message")
}

func (f *releaseFlags) hook(uc release.UseCase) (*release.Hook, error) {
	if strings.TrimSpace(f.version) == "" {
		return nil, errors.New("--version is required")
	}
	hook := release.NewHook(uc)
	hook.Bump(f.version)
	if !f.failed {
		hook.Release()
	}
	return hook, nil
}

func newRootCommand() *cobra.Command {
	var configFlag string
	ctx := &commandContext{configFlag: &configFlag}

	rootCmd := &cobra.Command{
		Use:           "release-notify",
		Short:         "Announce releases to a chat webhook",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			_, err := ctx.ensureConfig()
			return err
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	rootCmd.PersistentFlags().StringVarP(&configFlag, "config", "c", "", "Configuration file path")

	rootCmd.AddCommand(newNotifyCommand(ctx))
	rootCmd.AddCommand(newPreviewCommand(ctx))

	return rootCmd
}
