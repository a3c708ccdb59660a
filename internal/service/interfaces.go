package service

//go:generate mockgen -source=interfaces.go -destination=mocks/mocks.go -package=mocks

import (
	"context"
	"time"

	"github.com/tangbing-xm/tweet-feeds/internal/domain"
	"github.com/tangbing-xm/tweet-feeds/internal/source/twitterapi"
)

type TweetStore interface {
	InsertBatch(ctx context.Context, tweets []domain.Tweet) error
	ListFeed(ctx context.Context, q domain.FeedQuery) ([]domain.FeedItem, error)
	CountBetween(ctx context.Context, start, end time.Time) (int, error)
	AggregateByBeijingDay(ctx context.Context, limit int) ([]domain.DailyIndexEntry, error)
}

type AccountStore interface {
	ListActive(ctx context.Context) ([]domain.Account, error)
	UpdateBookmark(ctx context.Context, accountID int64, tweetID string, publishedAt, now time.Time) error
	UpsertBatch(ctx context.Context, accounts []domain.Account) error
}

type VendorStore interface {
	List(ctx context.Context) ([]domain.Vendor, error)
	IDsBySlug(ctx context.Context) (map[string]int64, error)
	UpsertBatch(ctx context.Context, vendors []domain.Vendor) error
}

type DailyIndexStore interface {
	Upsert(ctx context.Context, entry domain.DailyIndexEntry) error
	ListRecent(ctx context.Context, limit int) ([]domain.DailyIndexEntry, error)
}

// Source fetches one page of an account's timeline from the upstream API.
type Source interface {
	FetchPage(ctx context.Context, handle, cursor string, includeReplies bool) (*twitterapi.Page, error)
}

type TransactionManager interface {
	WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}

// Publisher emits an event for each tweet an ingestion run attempts to
// store. May be nil; publish failures never abort a run.
type Publisher interface {
	Publish(ctx context.Context, tweet *domain.Tweet) error
	Close() error
}

// Metrics records ingestion telemetry. May be nil.
type Metrics interface {
	RecordUpstreamRequest(outcome string, duration time.Duration)
	RecordIngestRun(stats *domain.IngestStats)
}
