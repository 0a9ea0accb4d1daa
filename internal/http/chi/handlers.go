package chi

import (
	"context"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/httplog"
	"github.com/marcelsud/release-notify/history"
	"github.com/marcelsud/release-notify/release"
)

// Handlers sets up the release API routes.
// deliveries may be nil when history is disabled, metrics may be nil when not exported.
func Handlers(ctx context.Context, releaseService release.UseCase, deliveries history.Reader, metrics http.Handler) *chi.Mux {
	logger := httplog.NewLogger("release-notify", httplog.Options{
		JSON: true,
	})

	r := chi.NewRouter()
	r.Use(httplog.RequestLogger(logger))
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(30 * time.Second))

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"healthy"}`))
	})

	if metrics != nil {
		r.Method(http.MethodGet, "/metrics", metrics)
	}

	r.Route("/v1", func(r chi.Router) {
		r.Method(http.MethodPost, "/releases", postRelease(releaseService))
		r.Method(http.MethodPost, "/preview", postPreview(releaseService))
		r.Method(http.MethodGet, "/deliveries", getDeliveries(deliveries))
		r.Method(http.MethodGet, "/deliveries/{id}", getDelivery(deliveries))
	})

	return r
}
