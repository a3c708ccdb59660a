package postgres

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/tangbing-xm/tweet-feeds/internal/domain"
)

type TweetStore struct {
	db *sqlx.DB
}

func NewTweetStore(db *sqlx.DB) *TweetStore {
	return &TweetStore{db: db}
}

// InsertBatch writes tweets with insert-if-absent semantics: rows whose
// tweet_id already exists are silently dropped, never updated.
func (s *TweetStore) InsertBatch(ctx context.Context, tweets []domain.Tweet) error {
	if len(tweets) == 0 {
		return nil
	}

	var sb strings.Builder
	sb.WriteString(`
		INSERT INTO tweets (
			tweet_id, account_id, vendor_id, tweet_url,
			published_at, fetched_at, is_reply, is_retweet, lang, raw_json
		) VALUES `)

	const cols = 10
	args := make([]interface{}, 0, len(tweets)*cols)
	for i, t := range tweets {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString("(")
		for j := 0; j < cols; j++ {
			if j > 0 {
				sb.WriteString(", ")
			}
			sb.WriteString("$")
			sb.WriteString(strconv.Itoa(i*cols + j + 1))
		}
		sb.WriteString(")")
		args = append(args,
			t.TweetID,
			t.AccountID,
			t.VendorID,
			t.TweetURL,
			t.PublishedAt,
			t.FetchedAt,
			t.IsReply,
			t.IsRetweet,
			t.Lang,
			t.RawJSON,
		)
	}
	sb.WriteString(" ON CONFLICT (tweet_id) DO NOTHING")

	_, err := s.db.ExecContext(ctx, sb.String(), args...)
	return err
}

// ListFeed returns one page of the feed ordered (published_at DESC,
// tweet_id DESC). The cursor predicate is the exact tie-break that keeps
// pages gap-free and duplicate-free when many tweets share a timestamp.
func (s *TweetStore) ListFeed(ctx context.Context, q domain.FeedQuery) ([]domain.FeedItem, error) {
	var sb strings.Builder
	sb.WriteString(`
		SELECT t.tweet_id, t.tweet_url, v.slug AS vendor, t.published_at
		FROM tweets t
		INNER JOIN vendors v ON v.id = t.vendor_id
		WHERE 1=1`)

	var args []interface{}
	arg := func(v interface{}) string {
		args = append(args, v)
		return "$" + strconv.Itoa(len(args))
	}

	if q.Since != nil {
		sb.WriteString(" AND t.published_at >= " + arg(*q.Since))
	}
	if q.Start != nil {
		sb.WriteString(" AND t.published_at >= " + arg(*q.Start))
	}
	if q.End != nil {
		sb.WriteString(" AND t.published_at < " + arg(*q.End))
	}
	if q.VendorSlug != "" {
		sb.WriteString(" AND v.slug = " + arg(q.VendorSlug))
	}
	if q.CursorPublishedAt != nil {
		ts := arg(*q.CursorPublishedAt)
		id := arg(q.CursorTweetID)
		fmt.Fprintf(&sb,
			" AND (t.published_at < %s OR (t.published_at = %s AND t.tweet_id < %s))",
			ts, ts, id,
		)
	}

	sb.WriteString(" ORDER BY t.published_at DESC, t.tweet_id DESC")
	sb.WriteString(" LIMIT " + arg(q.Limit))

	var items []domain.FeedItem
	err := s.db.SelectContext(ctx, &items, sb.String(), args...)
	return items, err
}

// CountBetween counts stored tweets with published_at in [start, end).
func (s *TweetStore) CountBetween(ctx context.Context, start, end time.Time) (int, error) {
	var count int
	err := s.db.GetContext(ctx, &count,
		"SELECT count(*) FROM tweets WHERE published_at >= $1 AND published_at < $2",
		start, end,
	)
	return count, err
}

// AggregateByBeijingDay computes per-day counts directly from tweets,
// newest day first. It backs the dates endpoint when the materialized
// daily_index is unavailable.
func (s *TweetStore) AggregateByBeijingDay(ctx context.Context, limit int) ([]domain.DailyIndexEntry, error) {
	query := `
		SELECT to_char(published_at + interval '8 hours', 'YYYY-MM-DD') AS date_beijing,
		       count(*) AS tweet_count,
		       now() AS updated_at
		FROM tweets
		GROUP BY 1
		ORDER BY 1 DESC
		LIMIT $1`

	var entries []domain.DailyIndexEntry
	err := s.db.SelectContext(ctx, &entries, query, limit)
	return entries, err
}
