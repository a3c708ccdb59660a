package postgres

import (
	"context"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/tangbing-xm/tweet-feeds/internal/domain"
)

type AccountStore struct {
	db *sqlx.DB
}

func NewAccountStore(db *sqlx.DB) *AccountStore {
	return &AccountStore{db: db}
}

// ListActive returns active accounts newest-registered first. The order is
// not semantic; ingestion only needs it to be deterministic.
func (s *AccountStore) ListActive(ctx context.Context) ([]domain.Account, error) {
	query := `
		SELECT id, vendor_id, handle, display_name, is_active,
		       last_seen_tweet_id, last_seen_published_at, created_at, updated_at
		FROM accounts
		WHERE is_active = true
		ORDER BY id DESC`

	var accounts []domain.Account
	err := s.db.SelectContext(ctx, &accounts, query)
	return accounts, err
}

// UpdateBookmark advances the advisory last-seen marker for an account.
// The bookmark is telemetry; ingestion never reads it back as a stop
// condition.
func (s *AccountStore) UpdateBookmark(ctx context.Context, accountID int64, tweetID string, publishedAt, now time.Time) error {
	query := `
		UPDATE accounts
		SET last_seen_tweet_id = $2,
		    last_seen_published_at = $3,
		    updated_at = $4
		WHERE id = $1`

	_, err := s.db.ExecContext(ctx, query, accountID, tweetID, publishedAt, now)
	return err
}

// UpsertBatch writes the seeded account roster keyed by handle.
func (s *AccountStore) UpsertBatch(ctx context.Context, accounts []domain.Account) error {
	if len(accounts) == 0 {
		return nil
	}

	query := `
		INSERT INTO accounts (vendor_id, handle, display_name, is_active, updated_at)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (handle) DO UPDATE SET
			vendor_id = EXCLUDED.vendor_id,
			display_name = EXCLUDED.display_name,
			is_active = EXCLUDED.is_active,
			updated_at = EXCLUDED.updated_at`

	exec := GetExecutor(ctx, s.db)
	for _, a := range accounts {
		if _, err := exec.ExecContext(ctx, query,
			a.VendorID, a.Handle, a.DisplayName, a.IsActive, a.UpdatedAt,
		); err != nil {
			return err
		}
	}
	return nil
}
