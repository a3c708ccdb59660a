package postgres

import (
	"context"

	"github.com/jmoiron/sqlx"

	"github.com/tangbing-xm/tweet-feeds/internal/domain"
)

type DailyIndexStore struct {
	db *sqlx.DB
}

func NewDailyIndexStore(db *sqlx.DB) *DailyIndexStore {
	return &DailyIndexStore{db: db}
}

// Upsert replaces the count for one Beijing date. The aggregator always
// writes a full recount, so overwriting is the correct merge.
func (s *DailyIndexStore) Upsert(ctx context.Context, entry domain.DailyIndexEntry) error {
	query := `
		INSERT INTO daily_index (date_beijing, tweet_count, updated_at)
		VALUES ($1, $2, $3)
		ON CONFLICT (date_beijing) DO UPDATE SET
			tweet_count = EXCLUDED.tweet_count,
			updated_at = EXCLUDED.updated_at`

	_, err := s.db.ExecContext(ctx, query,
		entry.DateBeijing, entry.TweetCount, entry.UpdatedAt,
	)
	return err
}

// ListRecent returns up to limit entries, newest date first.
func (s *DailyIndexStore) ListRecent(ctx context.Context, limit int) ([]domain.DailyIndexEntry, error) {
	query := `
		SELECT to_char(date_beijing, 'YYYY-MM-DD') AS date_beijing, tweet_count, updated_at
		FROM daily_index
		ORDER BY date_beijing DESC
		LIMIT $1`

	var entries []domain.DailyIndexEntry
	err := s.db.SelectContext(ctx, &entries, query, limit)
	return entries, err
}
