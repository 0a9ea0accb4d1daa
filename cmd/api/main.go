package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/marcelsud/release-notify/config"
	"github.com/marcelsud/release-notify/internal/app"
	"github.com/marcelsud/release-notify/internal/http/chi"
	"github.com/marcelsud/release-notify/internal/logging"
)

const TIMEOUT = 30 * time.Second

/* main wires the packages together: config, the release service, and the HTTP layer
 * Imports only go downward: the app imports the business layers, which import storage
 */

func main() {
	path := ""
	if len(os.Args) > 1 {
		path = os.Args[1]
	}

	ctx, stop := signal.NotifyContext(
		context.Background(),
		syscall.SIGHUP, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT,
	)
	err := run(ctx, path)
	stop()
	if err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

// run serves the API until ctx is done. Deferred cleanup always runs before it returns.
func run(ctx context.Context, path string) error {
	cfg, err := config.Load(path)
	if err != nil {
		return err
	}
	logger := logging.New(os.Stdout, cfg.LogLevel)

	a, err := app.New(cfg, logger)
	if err != nil {
		return fmt.Errorf("starting release-notify: %w", err)
	}
	defer a.Close(context.Background())

	r := chi.Handlers(ctx, a.Service, a.Deliveries(), a.MetricsHandler())
	srv := &http.Server{
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 30 * time.Second,
		Addr:         ":" + cfg.Port,
		Handler:      r,
	}

	errShutdown := make(chan error, 1)
	go shutdown(srv, ctx, errShutdown)
	logger.Info().Str("port", cfg.Port).Bool("history", cfg.HistoryEnabled()).Msg("listening")
	err = srv.ListenAndServe()
	if err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("serving: %w", err)
	}
	if err := <-errShutdown; err != nil {
		return err
	}
	logger.Info().Msg("server stopped")
	return nil
}

func shutdown(server *http.Server, ctxShutdown context.Context, errShutdown chan error) {
	<-ctxShutdown.Done()

	ctxTimeout, stop := context.WithTimeout(context.Background(), TIMEOUT)
	defer stop()

	err := server.Shutdown(ctxTimeout)
	switch err {
	case nil:
		errShutdown <- nil
	case context.DeadlineExceeded:
		errShutdown <- fmt.Errorf("forcing the server to close")
	default:
		errShutdown <- fmt.Errorf("forcing the server to close: %w", err)
	}
}
