package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/marcelsud/release-notify/config"
	"github.com/marcelsud/release-notify/delivery"
	"github.com/marcelsud/release-notify/message"
	"github.com/marcelsud/release-notify/release"
)

/* validate-config - Standalone CLI tool to validate the release-notify configuration
 * Usage: go run cmd/validate-config/main.go [.release-notify.yaml]
 * Exit codes: 0 = valid, 1 = invalid
 */

const previewVersion = "0.0.0"

func main() {
	path := ""
	if len(os.Args) > 1 {
		path = os.Args[1]
	}
	os.Exit(run(path, os.Stdout, os.Stderr))
}

func run(path string, stdout, stderr io.Writer) int {
	name := path
	if name == "" {
		name = config.DefaultConfigName + ".*"
	}
	fmt.Fprintf(stdout, "Validating config file: %s\n", name)

	cfg, err := config.Load(path)
	if err != nil {
		fmt.Fprintf(stderr, "❌ VALIDATION FAILED\n\n")
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}

	fmt.Fprintf(stdout, "✓ VALIDATION PASSED\n\n")
	printSettings(stdout, cfg)

	// Previews never reach the network
	noSend := delivery.SenderFunc(func(context.Context, string, message.Payload) (delivery.Result, error) {
		return delivery.Result{}, nil
	})
	service := release.NewService(cfg,
		message.NewResolver(message.WithMarkdown(cfg.ConvertMarkdown)),
		delivery.NewNotifier(noSend),
	)

	failed := false
	for _, released := range []bool{true, false} {
		label := "Success message"
		if !released {
			label = "Error message"
		}

		payload, err := service.Preview(context.Background(), release.Context{Version: previewVersion, Released: released})
		switch {
		case err != nil:
			failed = true
			fmt.Fprintf(stderr, "\n❌ %s: %v\n", label, err)
		case payload == nil:
			fmt.Fprintf(stdout, "\n%s: (none)\n", label)
		default:
			out, _ := json.MarshalIndent(payload, "   ", "  ")
			fmt.Fprintf(stdout, "\n%s:\n   %s\n", label, out)
		}
	}

	if failed {
		return 1
	}
	fmt.Fprintf(stdout, "\n✓ Configuration is valid!\n")
	return 0
}

func printSettings(w io.Writer, cfg *config.Config) {
	webhook := "(from $" + cfg.HookTokenRef + ")"
	if cfg.WebhookURL != nil {
		webhook = "(set)"
	}
	history := "disabled"
	if cfg.HistoryEnabled() {
		history = cfg.History.RedisAddr
	}
	push := "disabled"
	if cfg.Metrics.PushgatewayURL != "" {
		push = cfg.Metrics.PushgatewayURL
	}

	fmt.Fprintf(w, "   Webhook URL:      %s\n", webhook)
	fmt.Fprintf(w, "   Convert Markdown: %t\n", cfg.ConvertMarkdown)
	fmt.Fprintf(w, "   Timeout:          %s\n", cfg.Timeout)
	fmt.Fprintf(w, "   History:          %s\n", history)
	fmt.Fprintf(w, "   Pushgateway:      %s\n", push)
}
