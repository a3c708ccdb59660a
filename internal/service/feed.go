package service

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/tangbing-xm/tweet-feeds/internal/beijing"
	"github.com/tangbing-xm/tweet-feeds/internal/cursor"
	"github.com/tangbing-xm/tweet-feeds/internal/domain"
)

const (
	defaultFeedLimit = 10
	maxFeedLimit     = 30

	defaultWindowHours = 72
	maxWindowHours     = 168

	defaultDatesLimit = 120
	maxDatesLimit     = 400
)

// FeedParams are the resolved query parameters of one feed request. Zero
// values mean "use the default".
type FeedParams struct {
	Mode        string // "timeline" (default) or "date"
	Vendor      string // slug or "all"
	Date        string // required when Mode == "date"
	Cursor      string // opaque; malformed decodes to start-of-feed
	Limit       int
	WindowHours int
}

// FeedService answers the read path: feed pages, the date index, and the
// vendor roster. It is stateless and safe for concurrent use.
type FeedService struct {
	tweets  TweetStore
	daily   DailyIndexStore
	vendors VendorStore
	logger  *slog.Logger

	now func() time.Time
}

func NewFeedService(tweets TweetStore, daily DailyIndexStore, vendors VendorStore, logger *slog.Logger) *FeedService {
	return &FeedService{
		tweets:  tweets,
		daily:   daily,
		vendors: vendors,
		logger:  logger.With("component", "feed"),
		now:     time.Now,
	}
}

// GetFeed returns one keyset-paginated page ordered (published_at DESC,
// tweet_id DESC). A date-mode request with a missing or malformed date
// fails with beijing.ErrInvalidDate; that is the only client error this
// method produces.
func (s *FeedService) GetFeed(ctx context.Context, p FeedParams) (*domain.FeedPage, error) {
	limit := clamp(p.Limit, defaultFeedLimit, 1, maxFeedLimit)
	q := domain.FeedQuery{Limit: limit}

	if strings.ToLower(p.Mode) == "date" {
		if p.Date == "" {
			return nil, fmt.Errorf("%w: missing date", beijing.ErrInvalidDate)
		}
		start, end, err := beijing.DayRange(p.Date)
		if err != nil {
			return nil, err
		}
		q.Start, q.End = &start, &end
	} else {
		window := clamp(p.WindowHours, defaultWindowHours, 1, maxWindowHours)
		since := s.now().Add(-time.Duration(window) * time.Hour)
		q.Since = &since
	}

	if v := strings.ToLower(p.Vendor); v != "" && v != "all" {
		q.VendorSlug = v
	}

	if c := cursor.Decode(p.Cursor); c != nil {
		q.CursorPublishedAt = &c.PublishedAt
		q.CursorTweetID = c.TweetID
	}

	items, err := s.tweets.ListFeed(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("list feed: %w", err)
	}

	page := &domain.FeedPage{Items: items}

	// A next cursor only exists when the page is exactly full; a short
	// page always signals end of feed.
	if len(items) == limit {
		last := items[len(items)-1]
		next := cursor.Encode(cursor.Cursor{
			PublishedAt: last.PublishedAt,
			TweetID:     last.TweetID,
		})
		page.NextCursor = &next
	}

	return page, nil
}

// ListDates returns the daily index, newest date first. When the
// materialized index cannot be read it falls back to aggregating directly
// over tweets, so a degraded store never takes the endpoint down.
func (s *FeedService) ListDates(ctx context.Context, limit int) ([]domain.DailyIndexEntry, error) {
	limit = clamp(limit, defaultDatesLimit, 1, maxDatesLimit)

	entries, err := s.daily.ListRecent(ctx, limit)
	if err == nil {
		return entries, nil
	}

	s.logger.Warn("daily index unavailable, aggregating from tweets", "error", err)

	entries, err = s.tweets.AggregateByBeijingDay(ctx, limit)
	if err != nil {
		return nil, fmt.Errorf("aggregate dates: %w", err)
	}
	return entries, nil
}

// ListVendors returns the vendor roster in display order.
func (s *FeedService) ListVendors(ctx context.Context) ([]domain.Vendor, error) {
	vendors, err := s.vendors.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list vendors: %w", err)
	}
	return vendors, nil
}

func clamp(v, def, min, max int) int {
	if v == 0 {
		v = def
	}
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}
