package release

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/marcelsud/release-notify/config"
	"github.com/marcelsud/release-notify/delivery"
	"github.com/marcelsud/release-notify/history"
	"github.com/marcelsud/release-notify/message"
	"github.com/marcelsud/release-notify/metrics"
	"github.com/rs/zerolog"
)

/* Service represents the business logic layer
 * Uses pointer semantics as it's an API, not data
 */

// UseCase defines the release notification operations
type UseCase interface {
	Notify(ctx context.Context, rc Context) (Report, error)
	Preview(ctx context.Context, rc Context) (message.Payload, error)
}

type Service struct {
	cfg       *config.Config
	resolver  message.UseCase
	notifier  delivery.UseCase
	history   history.Writer
	metrics   metrics.Recorder
	lookupEnv func(string) (string, bool)
	logger    zerolog.Logger
}

// Option configures a Service
type Option func(*Service)

// WithHistory stores every Notify outcome. Without it nothing is recorded.
func WithHistory(w history.Writer) Option {
	return func(s *Service) {
		s.history = w
	}
}

// WithMetrics sets the delivery metrics recorder
func WithMetrics(r metrics.Recorder) Option {
	return func(s *Service) {
		if r != nil {
			s.metrics = r
		}
	}
}

// WithLookupEnv replaces os.LookupEnv for webhook URL resolution
func WithLookupEnv(lookup func(string) (string, bool)) Option {
	return func(s *Service) {
		s.lookupEnv = lookup
	}
}

// WithLogger sets the logger
func WithLogger(logger zerolog.Logger) Option {
	return func(s *Service) {
		s.logger = logger
	}
}

// NewService creates a new release service with dependency injection
func NewService(cfg *config.Config, resolver message.UseCase, notifier delivery.UseCase, opts ...Option) *Service {
	s := &Service{
		cfg:       cfg,
		resolver:  resolver,
		notifier:  notifier,
		metrics:   metrics.Noop{},
		lookupEnv: os.LookupEnv,
		logger:    zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Notify resolves the message for the release outcome and delivers it.
// A message that resolves to nothing is skipped without error.
func (s *Service) Notify(ctx context.Context, rc Context) (Report, error) {
	start := time.Now()
	report := Report{
		ID:       uuid.New().String(),
		Version:  rc.Version,
		Released: rc.Released,
	}

	payload, err := s.resolve(rc)
	if err != nil {
		report.Outcome = delivery.OutcomeOf(err)
		s.record(ctx, &report, start, nil, err)
		return report, err
	}
	if payload == nil {
		report.Outcome = delivery.Skipped
		s.logger.Info().Str("version", rc.Version).Bool("released", rc.Released).Msg("no message configured, skipping notification")
		s.record(ctx, &report, start, nil, nil)
		return report, nil
	}

	webhookURL, ok := s.cfg.ResolveWebhookURL(s.lookupEnv)
	if !ok {
		s.logger.Warn().Str("env", s.cfg.HookTokenRef).Msg("webhook url is not configured")
	}

	result, err := s.notifier.Send(ctx, payload, webhookURL)
	report.StatusCode = result.StatusCode
	report.Outcome = delivery.OutcomeOf(err)
	s.record(ctx, &report, start, payload, err)
	if err != nil {
		return report, fmt.Errorf("sending notification: %w", err)
	}

	s.logger.Info().
		Str("id", report.ID).
		Str("version", rc.Version).
		Int("status", report.StatusCode).
		Dur("duration", report.Duration).
		Msg("release notification delivered")

	return report, nil
}

// Preview resolves the message that Notify would send, without sending it
func (s *Service) Preview(ctx context.Context, rc Context) (message.Payload, error) {
	return s.resolve(rc)
}

// resolve picks the success or error message and resolves only that one
func (s *Service) resolve(rc Context) (message.Payload, error) {
	raw := s.cfg.ErrorMessage
	if rc.Released {
		raw = s.cfg.SuccessMessage
	}

	payload, err := s.resolver.Resolve(message.FromValue(raw), rc.Version)
	if err != nil {
		return nil, fmt.Errorf("resolving message: %w", err)
	}
	return payload, nil
}

// record reports the outcome to metrics and history. Failures are logged only.
func (s *Service) record(ctx context.Context, report *Report, start time.Time, payload message.Payload, cause error) {
	report.Duration = time.Since(start)
	s.metrics.RecordDelivery(ctx, report.Outcome, report.Duration)

	if cause != nil {
		s.logger.Error().Err(cause).
			Str("id", report.ID).
			Str("version", report.Version).
			Str("outcome", report.Outcome.String()).
			Msg("release notification failed")
	}

	if s.history == nil {
		return
	}

	rec := history.Record{
		ID:         report.ID,
		Version:    report.Version,
		Released:   report.Released,
		Outcome:    report.Outcome,
		StatusCode: report.StatusCode,
		Duration:   report.Duration,
		CreatedAt:  start,
	}
	if cause != nil {
		rec.Error = cause.Error()
	}
	if payload != nil {
		if body, err := payload.Bytes(); err == nil {
			rec.Payload = body
		}
	}

	if _, err := s.history.Store(ctx, rec); err != nil {
		s.logger.Warn().Err(err).Str("id", report.ID).Msg("storing delivery record")
	}
}
