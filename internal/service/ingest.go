package service

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"time"

	"golang.org/x/time/rate"

	"github.com/tangbing-xm/tweet-feeds/internal/beijing"
	"github.com/tangbing-xm/tweet-feeds/internal/config"
	"github.com/tangbing-xm/tweet-feeds/internal/domain"
	"github.com/tangbing-xm/tweet-feeds/internal/source/twitterapi"
)

// IngestService drives one ingestion run: page through every active
// account's timeline under a shared rate limit, store fresh tweets, advance
// bookmarks, and recount the daily index for every Beijing date touched.
type IngestService struct {
	source    Source
	tweets    TweetStore
	accounts  AccountStore
	daily     DailyIndexStore
	publisher Publisher
	metrics   Metrics
	logger    *slog.Logger
	config    config.IngestConfig

	now func() time.Time
}

func NewIngestService(
	source Source,
	tweets TweetStore,
	accounts AccountStore,
	daily DailyIndexStore,
	publisher Publisher,
	metrics Metrics,
	logger *slog.Logger,
	cfg config.IngestConfig,
) *IngestService {
	return &IngestService{
		source:    source,
		tweets:    tweets,
		accounts:  accounts,
		daily:     daily,
		publisher: publisher,
		metrics:   metrics,
		logger:    logger.With("component", "ingest"),
		config:    cfg,
		now:       time.Now,
	}
}

// Run executes one full ingestion pass. Accounts are processed one at a
// time; a shared limiter keeps consecutive upstream calls at least
// MinInterval apart regardless of which account they belong to. Per-account
// failures are collected into the stats, not returned; only
// infrastructure-level failures produce a non-nil error.
func (s *IngestService) Run(ctx context.Context) (*domain.IngestStats, error) {
	startTime := s.now()
	lookbackStart := startTime.Add(-s.config.Lookback)

	s.logger.Info("starting ingest run",
		"lookback", s.config.Lookback,
		"max_pages", s.config.MaxPagesPerAccount,
		"min_interval", s.config.MinInterval,
	)

	accounts, err := s.accounts.ListActive(ctx)
	if err != nil {
		return nil, fmt.Errorf("list active accounts: %w", err)
	}

	limiter := rate.NewLimiter(rate.Every(s.config.MinInterval), 1)
	touched := make(map[string]struct{})
	stats := &domain.IngestStats{}

	for i := range accounts {
		if ctx.Err() != nil {
			break
		}

		account := &accounts[i]
		if err := s.ingestAccount(ctx, account, limiter, lookbackStart, startTime, touched, stats); err != nil {
			stats.Errors = append(stats.Errors, domain.AccountError{
				Handle: account.Handle,
				Error:  err.Error(),
			})
			s.logger.Warn("account ingest failed",
				"handle", account.Handle,
				"error", err,
			)
		}
	}

	// Recount touched dates even when some accounts failed; whatever was
	// stored still needs a consistent index.
	if err := s.reindex(ctx, touched, startTime); err != nil {
		return stats, fmt.Errorf("reindex daily counts: %w", err)
	}

	stats.TouchedDates = len(touched)
	stats.Duration = time.Since(startTime)

	if s.metrics != nil {
		s.metrics.RecordIngestRun(stats)
	}

	s.logger.Info("ingest run completed",
		"fetched", stats.Fetched,
		"inserted", stats.Inserted,
		"touched_dates", stats.TouchedDates,
		"account_errors", len(stats.Errors),
		"duration", stats.Duration,
	)

	return stats, nil
}

func (s *IngestService) ingestAccount(
	ctx context.Context,
	account *domain.Account,
	limiter *rate.Limiter,
	lookbackStart, now time.Time,
	touched map[string]struct{},
	stats *domain.IngestStats,
) error {
	var (
		pageCursor string
		newestID   string
		newestAt   time.Time
	)

	pageErr := func() error {
		for page := 0; page < s.config.MaxPagesPerAccount; page++ {
			p, err := s.fetchPage(ctx, limiter, account.Handle, pageCursor)
			if err != nil {
				return fmt.Errorf("fetch page %d: %w", page, err)
			}

			stats.Fetched += len(p.Tweets)

			// The upstream timeline is newest-first, so the first
			// well-formed tweet of the first page is the bookmark
			// candidate for the whole account run.
			if newestID == "" && len(p.Tweets) > 0 && p.Tweets[0].ID != "" {
				if ts, err := twitterapi.ParseCreatedAt(p.Tweets[0].CreatedAt); err == nil {
					newestID = p.Tweets[0].ID
					newestAt = ts
				}
			}

			oldest, err := s.storePage(ctx, account, p.Tweets, lookbackStart, now, touched, stats)
			if err != nil {
				return fmt.Errorf("store page %d: %w", page, err)
			}

			if !oldest.IsZero() && oldest.Before(lookbackStart) {
				break
			}
			if !p.HasNextPage {
				break
			}
			if p.NextCursor == "" {
				break
			}
			pageCursor = p.NextCursor
		}
		return nil
	}()

	// The bookmark is advisory; it advances whenever any page succeeded,
	// even if a later page of the same account failed.
	if newestID != "" {
		if err := s.accounts.UpdateBookmark(ctx, account.ID, newestID, newestAt, now); err != nil {
			if pageErr == nil {
				return fmt.Errorf("update bookmark: %w", err)
			}
			s.logger.Warn("bookmark update failed",
				"handle", account.Handle,
				"error", err,
			)
		}
	}

	return pageErr
}

// storePage filters one page down to storable tweets, inserts them, and
// returns the oldest parseable timestamp seen on the page (zero when none).
func (s *IngestService) storePage(
	ctx context.Context,
	account *domain.Account,
	raw []twitterapi.Tweet,
	lookbackStart, now time.Time,
	touched map[string]struct{},
	stats *domain.IngestStats,
) (time.Time, error) {
	var oldest time.Time
	batch := make([]domain.Tweet, 0, len(raw))

	for _, t := range raw {
		publishedAt, err := twitterapi.ParseCreatedAt(t.CreatedAt)
		if err != nil {
			// Counted as fetched, never stored.
			s.logger.Warn("skipping tweet with unparseable timestamp",
				"tweet_id", t.ID,
				"created_at", t.CreatedAt,
			)
			continue
		}

		if oldest.IsZero() || publishedAt.Before(oldest) {
			oldest = publishedAt
		}

		if publishedAt.Before(lookbackStart) {
			continue
		}
		if t.IsReply {
			continue
		}
		if t.IsRetweet() {
			continue
		}

		touched[beijing.DateString(publishedAt)] = struct{}{}

		batch = append(batch, domain.Tweet{
			TweetID:     t.ID,
			AccountID:   account.ID,
			VendorID:    account.VendorID,
			TweetURL:    t.Link(),
			PublishedAt: publishedAt,
			FetchedAt:   now,
			IsReply:     false,
			IsRetweet:   false,
			Lang:        t.Lang,
		})
	}

	if len(batch) == 0 {
		return oldest, nil
	}

	if err := s.tweets.InsertBatch(ctx, batch); err != nil {
		return oldest, fmt.Errorf("insert tweets: %w", err)
	}

	// Attempted rows; duplicates dropped by the conflict clause are not
	// distinguished from fresh inserts.
	stats.Inserted += len(batch)

	if s.publisher != nil {
		for i := range batch {
			if err := s.publisher.Publish(ctx, &batch[i]); err != nil {
				s.logger.Warn("publish tweet failed",
					"tweet_id", batch[i].TweetID,
					"error", err,
				)
			}
		}
	}

	return oldest, nil
}

// fetchPage waits on the shared limiter, performs one upstream call, and on
// HTTP 429 backs off one extra full interval and retries exactly once.
func (s *IngestService) fetchPage(ctx context.Context, limiter *rate.Limiter, handle, pageCursor string) (*twitterapi.Page, error) {
	if err := limiter.Wait(ctx); err != nil {
		return nil, err
	}

	page, err := s.doFetch(ctx, handle, pageCursor)
	if err == nil || !twitterapi.IsRateLimited(err) {
		return page, err
	}

	s.logger.Warn("rate limited by upstream, backing off once",
		"handle", handle,
		"backoff", s.config.MinInterval,
	)

	select {
	case <-time.After(s.config.MinInterval):
	case <-ctx.Done():
		return nil, ctx.Err()
	}

	if err := limiter.Wait(ctx); err != nil {
		return nil, err
	}
	return s.doFetch(ctx, handle, pageCursor)
}

func (s *IngestService) doFetch(ctx context.Context, handle, pageCursor string) (*twitterapi.Page, error) {
	start := time.Now()
	page, err := s.source.FetchPage(ctx, handle, pageCursor, false)
	if s.metrics != nil {
		s.metrics.RecordUpstreamRequest(upstreamOutcome(err), time.Since(start))
	}
	return page, err
}

func upstreamOutcome(err error) string {
	switch {
	case err == nil:
		return "success"
	case twitterapi.IsRateLimited(err):
		return "rate_limited"
	default:
		return "error"
	}
}

// reindex recounts and upserts the daily index entry for every touched
// Beijing date. Full recount per date keeps the aggregate correct no matter
// how often a date is reprocessed or how many inserts were duplicates.
func (s *IngestService) reindex(ctx context.Context, touched map[string]struct{}, now time.Time) error {
	dates := make([]string, 0, len(touched))
	for date := range touched {
		dates = append(dates, date)
	}
	sort.Strings(dates)

	for _, date := range dates {
		start, end, err := beijing.DayRange(date)
		if err != nil {
			return fmt.Errorf("resolve day range %s: %w", date, err)
		}

		count, err := s.tweets.CountBetween(ctx, start, end)
		if err != nil {
			return fmt.Errorf("recount %s: %w", date, err)
		}

		if err := s.daily.Upsert(ctx, domain.DailyIndexEntry{
			DateBeijing: date,
			TweetCount:  count,
			UpdatedAt:   now,
		}); err != nil {
			return fmt.Errorf("upsert daily index %s: %w", date, err)
		}

		s.logger.Debug("reindexed date", "date", date, "count", count)
	}

	return nil
}
