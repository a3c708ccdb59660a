package handler

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/tangbing-xm/tweet-feeds/internal/middleware"
)

// Pinger reports whether the backing store is reachable.
type Pinger interface {
	PingContext(ctx context.Context) error
}

// RouterConfig carries everything the HTTP surface needs.
type RouterConfig struct {
	Feed       FeedReader
	Ingester   Ingester
	DB         Pinger
	CronSecret string
	APIKeySet  bool
	Metrics    middleware.Recorder // optional
	MetricsH   http.Handler        // optional, serves /metrics
	Logger     *slog.Logger
}

// NewRouter assembles the middleware chain and routes.
func NewRouter(cfg RouterConfig) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.Recovery(cfg.Logger))
	r.Use(middleware.Logging(cfg.Logger))
	if cfg.Metrics != nil {
		r.Use(middleware.Metrics(cfg.Metrics))
	}

	feed := NewFeedHandler(cfg.Feed, cfg.Logger)
	ingest := NewIngestHandler(cfg.Ingester, cfg.CronSecret, cfg.APIKeySet, cfg.Logger)

	r.Route("/api", func(r chi.Router) {
		r.Get("/feed", feed.GetFeed)
		r.Get("/dates", feed.ListDates)
		r.Get("/vendors", feed.ListVendors)
		r.Get("/ingest", ingest.Trigger)
		r.Post("/ingest", ingest.Trigger)
	})

	r.Get("/healthz", healthz(cfg.DB))

	if cfg.MetricsH != nil {
		r.Method(http.MethodGet, "/metrics", cfg.MetricsH)
	}

	return r
}

func healthz(db Pinger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
		defer cancel()

		if err := db.PingContext(ctx); err != nil {
			writeJSON(w, http.StatusServiceUnavailable, map[string]string{"status": "degraded"})
			return
		}
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	}
}
