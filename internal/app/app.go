package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/marcelsud/release-notify/config"
	"github.com/marcelsud/release-notify/delivery"
	"github.com/marcelsud/release-notify/delivery/slack"
	"github.com/marcelsud/release-notify/history"
	"github.com/marcelsud/release-notify/history/redis"
	"github.com/marcelsud/release-notify/message"
	"github.com/marcelsud/release-notify/metrics"
	"github.com/marcelsud/release-notify/release"
	"github.com/rs/zerolog"
)

const userAgent = "release-notify"

/* App wires the release service for the commands
 * Storage and metrics are only created when configured
 */
type App struct {
	Service *release.Service

	cfg      *config.Config
	history  history.Repository
	exporter *metrics.OTelExporter
	logger   zerolog.Logger
}

// New builds the release service and its optional history and metrics from cfg
func New(cfg *config.Config, logger zerolog.Logger, opts ...release.Option) (*App, error) {
	a := &App{
		cfg:    cfg,
		logger: logger,
	}

	exporter, err := metrics.NewOTelExporter()
	if err != nil {
		return nil, fmt.Errorf("creating metrics exporter: %w", err)
	}
	a.exporter = exporter

	serviceOpts := []release.Option{
		release.WithMetrics(exporter),
		release.WithLogger(logger),
	}

	if cfg.HistoryEnabled() {
		repo, err := redis.NewRepository(cfg.History.RedisAddr, cfg.History.RedisPassword, cfg.History.RedisDB, cfg.History.TTL)
		if err != nil {
			_ = exporter.Shutdown(context.Background())
			return nil, fmt.Errorf("opening delivery history: %w", err)
		}
		a.history = repo
		serviceOpts = append(serviceOpts, release.WithHistory(repo))
	}

	resolver := message.NewResolver(
		message.WithMarkdown(cfg.ConvertMarkdown),
		message.WithLogger(logger),
	)
	notifier := delivery.NewNotifier(
		slack.NewClient(slack.WithUserAgent(userAgent)),
		delivery.WithTimeout(cfg.Timeout),
		delivery.WithLogger(logger),
	)

	a.Service = release.NewService(cfg, resolver, notifier, append(serviceOpts, opts...)...)
	return a, nil
}

// Deliveries returns the history reader, or nil when history is disabled
func (a *App) Deliveries() history.Reader {
	if a.history == nil {
		return nil
	}
	return a.history
}

// MetricsHandler serves the delivery metrics in Prometheus format
func (a *App) MetricsHandler() http.Handler {
	return a.exporter.Handler()
}

// PushMetrics pushes to the configured Pushgateway. It does nothing when none is set.
func (a *App) PushMetrics(ctx context.Context) error {
	if a.cfg.Metrics.PushgatewayURL == "" {
		return nil
	}
	return a.exporter.Push(ctx, a.cfg.Metrics.PushgatewayURL, a.cfg.Metrics.Job)
}

// Close releases the history connection and the meter provider
func (a *App) Close(ctx context.Context) error {
	var errs []error
	if a.history != nil {
		if err := a.history.Close(ctx); err != nil {
			errs = append(errs, fmt.Errorf("closing delivery history: %w", err))
		}
	}
	if err := a.exporter.Shutdown(ctx); err != nil {
		errs = append(errs, fmt.Errorf("shutting down metrics: %w", err))
	}
	return errors.Join(errs...)
}
