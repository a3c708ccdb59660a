package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/tangbing-xm/tweet-feeds/internal/beijing"
	"github.com/tangbing-xm/tweet-feeds/internal/domain"
	"github.com/tangbing-xm/tweet-feeds/internal/service"
)

// FeedReader answers the read endpoints.
type FeedReader interface {
	GetFeed(ctx context.Context, p service.FeedParams) (*domain.FeedPage, error)
	ListDates(ctx context.Context, limit int) ([]domain.DailyIndexEntry, error)
	ListVendors(ctx context.Context) ([]domain.Vendor, error)
}

type FeedHandler struct {
	feed   FeedReader
	logger *slog.Logger
}

func NewFeedHandler(feed FeedReader, logger *slog.Logger) *FeedHandler {
	return &FeedHandler{
		feed:   feed,
		logger: logger.With("handler", "feed"),
	}
}

type feedItemResponse struct {
	TweetID     string `json:"tweet_id"`
	TweetURL    string `json:"tweet_url"`
	Vendor      string `json:"vendor"`
	PublishedAt string `json:"published_at"`
}

type feedResponse struct {
	Items      []feedItemResponse `json:"items"`
	NextCursor *string            `json:"nextCursor"`
}

// GetFeed handles GET /api/feed.
func (h *FeedHandler) GetFeed(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	params := service.FeedParams{
		Mode:        q.Get("mode"),
		Vendor:      q.Get("vendor"),
		Date:        q.Get("date"),
		Cursor:      q.Get("cursor"),
		Limit:       clampQueryInt(q.Get("limit"), 10, 1, 30),
		WindowHours: clampQueryInt(q.Get("windowHours"), 72, 1, 168),
	}

	page, err := h.feed.GetFeed(r.Context(), params)
	if err != nil {
		if errors.Is(err, beijing.ErrInvalidDate) {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		h.logger.Error("get feed failed", "error", err)
		writeError(w, http.StatusInternalServerError, "failed to load feed")
		return
	}

	resp := feedResponse{
		Items:      make([]feedItemResponse, 0, len(page.Items)),
		NextCursor: page.NextCursor,
	}
	for _, item := range page.Items {
		resp.Items = append(resp.Items, feedItemResponse{
			TweetID:     item.TweetID,
			TweetURL:    item.TweetURL,
			Vendor:      item.Vendor,
			PublishedAt: item.PublishedAt.UTC().Format(time.RFC3339),
		})
	}

	writeJSON(w, http.StatusOK, resp)
}

type dateEntryResponse struct {
	Date       string `json:"date"`
	TweetCount int    `json:"tweet_count"`
	UpdatedAt  string `json:"updated_at"`
}

// ListDates handles GET /api/dates. Responses are aggressively cacheable:
// the index only moves forward once a day.
func (h *FeedHandler) ListDates(w http.ResponseWriter, r *http.Request) {
	limit := clampQueryInt(r.URL.Query().Get("limit"), 120, 1, 400)

	entries, err := h.feed.ListDates(r.Context(), limit)
	if err != nil {
		h.logger.Error("list dates failed", "error", err)
		writeError(w, http.StatusInternalServerError, "failed to load dates")
		return
	}

	items := make([]dateEntryResponse, 0, len(entries))
	for _, e := range entries {
		items = append(items, dateEntryResponse{
			Date:       e.DateBeijing,
			TweetCount: e.TweetCount,
			UpdatedAt:  e.UpdatedAt.UTC().Format(time.RFC3339),
		})
	}

	w.Header().Set("Cache-Control", "public, s-maxage=3600, stale-while-revalidate=86400")
	writeJSON(w, http.StatusOK, map[string]interface{}{"items": items})
}

type vendorResponse struct {
	Slug      string `json:"slug"`
	NameEn    string `json:"name_en"`
	NameZh    string `json:"name_zh"`
	SortOrder int    `json:"sort_order"`
}

// ListVendors handles GET /api/vendors.
func (h *FeedHandler) ListVendors(w http.ResponseWriter, r *http.Request) {
	vendors, err := h.feed.ListVendors(r.Context())
	if err != nil {
		h.logger.Error("list vendors failed", "error", err)
		writeError(w, http.StatusInternalServerError, "failed to load vendors")
		return
	}

	items := make([]vendorResponse, 0, len(vendors))
	for _, v := range vendors {
		items = append(items, vendorResponse{
			Slug:      v.Slug,
			NameEn:    v.NameEn,
			NameZh:    v.NameZh,
			SortOrder: v.SortOrder,
		})
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{"items": items})
}
