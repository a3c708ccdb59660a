package domain

import (
	"encoding/json"
	"time"
)

type Vendor struct {
	ID        int64  `db:"id"`
	Slug      string `db:"slug"`
	NameEn    string `db:"name_en"`
	NameZh    string `db:"name_zh"`
	SortOrder int    `db:"sort_order"`
}

type Account struct {
	ID                  int64      `db:"id"`
	VendorID            int64      `db:"vendor_id"`
	Handle              string     `db:"handle"`
	DisplayName         *string    `db:"display_name"`
	IsActive            bool       `db:"is_active"`
	LastSeenTweetID     *string    `db:"last_seen_tweet_id"`
	LastSeenPublishedAt *time.Time `db:"last_seen_published_at"`
	CreatedAt           time.Time  `db:"created_at"`
	UpdatedAt           time.Time  `db:"updated_at"`
}

// Tweet is a stored post. Rows are immutable once inserted; re-fetching an
// already-stored tweet is a silent no-op.
type Tweet struct {
	TweetID     string          `db:"tweet_id"`
	AccountID   int64           `db:"account_id"`
	VendorID    int64           `db:"vendor_id"` // denormalized from the account for query speed
	TweetURL    string          `db:"tweet_url"`
	PublishedAt time.Time       `db:"published_at"`
	FetchedAt   time.Time       `db:"fetched_at"`
	IsReply     bool            `db:"is_reply"`
	IsRetweet   bool            `db:"is_retweet"`
	Lang        *string         `db:"lang"`
	RawJSON     json.RawMessage `db:"raw_json"`
}

// FeedItem is one row of the public feed, joined to the vendor slug.
type FeedItem struct {
	TweetID     string    `db:"tweet_id"`
	TweetURL    string    `db:"tweet_url"`
	Vendor      string    `db:"vendor"`
	PublishedAt time.Time `db:"published_at"`
}

// DailyIndexEntry is the materialized per-Beijing-day tweet count. It is
// recomputed by full recount for every touched date, never incremented.
type DailyIndexEntry struct {
	DateBeijing string    `db:"date_beijing"`
	TweetCount  int       `db:"tweet_count"`
	UpdatedAt   time.Time `db:"updated_at"`
}
