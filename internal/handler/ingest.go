package handler

import (
	"context"
	"log/slog"
	"net/http"
	"strings"

	"github.com/tangbing-xm/tweet-feeds/internal/domain"
)

// Ingester runs one full ingestion pass.
type Ingester interface {
	Run(ctx context.Context) (*domain.IngestStats, error)
}

// IngestHandler exposes ingestion to external cron callers behind a shared
// secret.
type IngestHandler struct {
	ingester   Ingester
	cronSecret string
	apiKeySet  bool
	logger     *slog.Logger
}

func NewIngestHandler(ingester Ingester, cronSecret string, apiKeySet bool, logger *slog.Logger) *IngestHandler {
	return &IngestHandler{
		ingester:   ingester,
		cronSecret: cronSecret,
		apiKeySet:  apiKeySet,
		logger:     logger.With("handler", "ingest"),
	}
}

type ingestResponse struct {
	Status       string                `json:"status"`
	Fetched      int                   `json:"fetched"`
	Inserted     int                   `json:"inserted"`
	TouchedDates int                   `json:"touchedDates"`
	Errors       []domain.AccountError `json:"errors"`
}

// Trigger handles GET|POST /api/ingest. The secret is accepted from the
// query string, the X-Cron-Secret header, or a bearer token, because cron
// providers differ in what they can send.
func (h *IngestHandler) Trigger(w http.ResponseWriter, r *http.Request) {
	if !h.authorized(r) {
		writeError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	if !h.apiKeySet {
		writeError(w, http.StatusInternalServerError, "twitter api key is not configured")
		return
	}

	stats, err := h.ingester.Run(r.Context())
	if err != nil {
		h.logger.Error("ingest run failed", "error", err)
		writeError(w, http.StatusInternalServerError, "ingest failed")
		return
	}

	resp := ingestResponse{
		Status:       "ok",
		Fetched:      stats.Fetched,
		Inserted:     stats.Inserted,
		TouchedDates: stats.TouchedDates,
		Errors:       stats.Errors,
	}
	if resp.Errors == nil {
		resp.Errors = []domain.AccountError{}
	}

	writeJSON(w, http.StatusOK, resp)
}

func (h *IngestHandler) authorized(r *http.Request) bool {
	// No configured secret leaves the trigger open; deployments are
	// expected to set one.
	if h.cronSecret == "" {
		return true
	}
	if r.URL.Query().Get("secret") == h.cronSecret {
		return true
	}
	if r.Header.Get("X-Cron-Secret") == h.cronSecret {
		return true
	}
	const prefix = "Bearer "
	auth := r.Header.Get("Authorization")
	return strings.HasPrefix(auth, prefix) && auth[len(prefix):] == h.cronSecret
}
