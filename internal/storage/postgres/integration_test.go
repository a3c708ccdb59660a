//go:build integration

package postgres

import (
	"context"
	"fmt"
	"path/filepath"
	"testing"
	"time"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/tangbing-xm/tweet-feeds/internal/domain"
	"github.com/tangbing-xm/tweet-feeds/testdata/utils"
)

type PostgresIntegrationSuite struct {
	suite.Suite
	ctx       context.Context
	container *postgres.PostgresContainer
	db        *sqlx.DB

	vendorID  int64
	accountID int64
}

func (s *PostgresIntegrationSuite) SetupSuite() {
	s.ctx = context.Background()

	migrationsPath, err := filepath.Abs("../../database/migrations")
	s.Require().NoError(err)

	container, err := postgres.Run(s.ctx,
		"postgres:16-alpine",
		postgres.WithDatabase("test_db"),
		postgres.WithUsername("test"),
		postgres.WithPassword("test"),
		postgres.WithInitScripts(
			filepath.Join(migrationsPath, "001_create_schema.up.sql"),
		),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	s.Require().NoError(err)
	s.container = container

	connStr, err := container.ConnectionString(s.ctx, "sslmode=disable")
	s.Require().NoError(err)

	db, err := sqlx.Connect("postgres", connStr)
	s.Require().NoError(err)
	s.db = db
}

func (s *PostgresIntegrationSuite) TearDownSuite() {
	if s.db != nil {
		s.db.Close()
	}
	if s.container != nil {
		_ = s.container.Terminate(s.ctx)
	}
}

func (s *PostgresIntegrationSuite) SetupTest() {
	_, _ = s.db.ExecContext(s.ctx, "DELETE FROM daily_index")
	_, _ = s.db.ExecContext(s.ctx, "DELETE FROM tweets")
	_, _ = s.db.ExecContext(s.ctx, "DELETE FROM accounts")
	_, _ = s.db.ExecContext(s.ctx, "DELETE FROM vendors")

	err := s.db.GetContext(s.ctx, &s.vendorID,
		`INSERT INTO vendors (slug, name_en, name_zh, sort_order)
		 VALUES ('openai', 'OpenAI', 'OpenAI', 10) RETURNING id`)
	s.Require().NoError(err)

	err = s.db.GetContext(s.ctx, &s.accountID,
		`INSERT INTO accounts (vendor_id, handle) VALUES ($1, 'OpenAI') RETURNING id`,
		s.vendorID)
	s.Require().NoError(err)
}

func TestPostgresIntegrationSuite(t *testing.T) {
	suite.Run(t, new(PostgresIntegrationSuite))
}

func (s *PostgresIntegrationSuite) tweet(id string, publishedAt time.Time) domain.Tweet {
	return domain.Tweet{
		TweetID:     id,
		AccountID:   s.accountID,
		VendorID:    s.vendorID,
		TweetURL:    "https://x.com/OpenAI/status/" + id,
		PublishedAt: publishedAt,
		FetchedAt:   time.Now().Truncate(time.Microsecond),
		Lang:        utils.Ptr("en"),
	}
}

func (s *PostgresIntegrationSuite) TestTweetStore_InsertBatch_Idempotent() {
	store := NewTweetStore(s.db)
	now := time.Now().UTC().Truncate(time.Microsecond)

	batch := []domain.Tweet{
		s.tweet("100", now),
		s.tweet("101", now.Add(-time.Minute)),
	}

	s.NoError(store.InsertBatch(s.ctx, batch))
	s.NoError(store.InsertBatch(s.ctx, batch))

	var count int
	s.NoError(s.db.GetContext(s.ctx, &count, "SELECT COUNT(*) FROM tweets"))
	s.Equal(2, count)
}

func (s *PostgresIntegrationSuite) TestTweetStore_InsertBatch_DuplicateNeverUpdates() {
	store := NewTweetStore(s.db)
	now := time.Now().UTC().Truncate(time.Microsecond)

	original := s.tweet("100", now)
	s.NoError(store.InsertBatch(s.ctx, []domain.Tweet{original}))

	changed := original
	changed.TweetURL = "https://x.com/OpenAI/status/changed"
	s.NoError(store.InsertBatch(s.ctx, []domain.Tweet{changed}))

	var url string
	s.NoError(s.db.GetContext(s.ctx, &url, "SELECT tweet_url FROM tweets WHERE tweet_id = '100'"))
	s.Equal(original.TweetURL, url)
}

func (s *PostgresIntegrationSuite) TestTweetStore_ListFeed_KeysetWalkIsComplete() {
	store := NewTweetStore(s.db)
	base := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)

	// Five tweets sharing one timestamp force the tie-break onto tweet_id.
	batch := make([]domain.Tweet, 0, 5)
	for i := 1; i <= 5; i++ {
		batch = append(batch, s.tweet(fmt.Sprintf("10%d", i), base))
	}
	s.Require().NoError(store.InsertBatch(s.ctx, batch))

	since := base.Add(-time.Hour)
	var seen []string
	q := domain.FeedQuery{Since: &since, Limit: 2}

	for {
		items, err := store.ListFeed(s.ctx, q)
		s.Require().NoError(err)
		if len(items) == 0 {
			break
		}
		for _, item := range items {
			seen = append(seen, item.TweetID)
		}
		if len(items) < q.Limit {
			break
		}
		last := items[len(items)-1]
		q.CursorPublishedAt = &last.PublishedAt
		q.CursorTweetID = last.TweetID
	}

	s.Equal([]string{"105", "104", "103", "102", "101"}, seen)
}

func (s *PostgresIntegrationSuite) TestTweetStore_ListFeed_VendorFilter() {
	store := NewTweetStore(s.db)
	base := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)

	var otherVendor, otherAccount int64
	s.Require().NoError(s.db.GetContext(s.ctx, &otherVendor,
		`INSERT INTO vendors (slug, name_en, name_zh, sort_order)
		 VALUES ('deepseek', 'DeepSeek', '深度求索', 60) RETURNING id`))
	s.Require().NoError(s.db.GetContext(s.ctx, &otherAccount,
		`INSERT INTO accounts (vendor_id, handle) VALUES ($1, 'deepseek_ai') RETURNING id`,
		otherVendor))

	other := s.tweet("200", base)
	other.VendorID = otherVendor
	other.AccountID = otherAccount

	s.Require().NoError(store.InsertBatch(s.ctx, []domain.Tweet{
		s.tweet("100", base),
		other,
	}))

	since := base.Add(-time.Hour)
	items, err := store.ListFeed(s.ctx, domain.FeedQuery{
		Since:      &since,
		VendorSlug: "deepseek",
		Limit:      10,
	})
	s.NoError(err)
	s.Require().Len(items, 1)
	s.Equal("200", items[0].TweetID)
	s.Equal("deepseek", items[0].Vendor)
}

func (s *PostgresIntegrationSuite) TestTweetStore_ListFeed_DateWindow() {
	store := NewTweetStore(s.db)

	inside := time.Date(2025, 6, 14, 20, 0, 0, 0, time.UTC)  // 2025-06-15 Beijing
	before := time.Date(2025, 6, 14, 15, 59, 0, 0, time.UTC) // 2025-06-14 Beijing
	atEnd := time.Date(2025, 6, 15, 16, 0, 0, 0, time.UTC)   // 2025-06-16 Beijing

	s.Require().NoError(store.InsertBatch(s.ctx, []domain.Tweet{
		s.tweet("in", inside),
		s.tweet("early", before),
		s.tweet("late", atEnd),
	}))

	start := time.Date(2025, 6, 14, 16, 0, 0, 0, time.UTC)
	end := start.Add(24 * time.Hour)
	items, err := store.ListFeed(s.ctx, domain.FeedQuery{Start: &start, End: &end, Limit: 10})

	s.NoError(err)
	s.Require().Len(items, 1)
	s.Equal("in", items[0].TweetID)
}

func (s *PostgresIntegrationSuite) TestTweetStore_CountBetween() {
	store := NewTweetStore(s.db)
	base := time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC)

	s.Require().NoError(store.InsertBatch(s.ctx, []domain.Tweet{
		s.tweet("1", base),
		s.tweet("2", base.Add(time.Hour)),
		s.tweet("3", base.Add(48*time.Hour)),
	}))

	count, err := store.CountBetween(s.ctx, base, base.Add(24*time.Hour))
	s.NoError(err)
	s.Equal(2, count)
}

func (s *PostgresIntegrationSuite) TestTweetStore_AggregateByBeijingDay() {
	store := NewTweetStore(s.db)

	s.Require().NoError(store.InsertBatch(s.ctx, []domain.Tweet{
		s.tweet("1", time.Date(2025, 6, 14, 20, 0, 0, 0, time.UTC)), // 06-15 Beijing
		s.tweet("2", time.Date(2025, 6, 15, 2, 0, 0, 0, time.UTC)),  // 06-15 Beijing
		s.tweet("3", time.Date(2025, 6, 15, 17, 0, 0, 0, time.UTC)), // 06-16 Beijing
	}))

	entries, err := store.AggregateByBeijingDay(s.ctx, 10)
	s.NoError(err)
	s.Require().Len(entries, 2)
	s.Equal("2025-06-16", entries[0].DateBeijing)
	s.Equal(1, entries[0].TweetCount)
	s.Equal("2025-06-15", entries[1].DateBeijing)
	s.Equal(2, entries[1].TweetCount)
}

func (s *PostgresIntegrationSuite) TestAccountStore_ListActiveAndBookmark() {
	store := NewAccountStore(s.db)

	accounts, err := store.ListActive(s.ctx)
	s.NoError(err)
	s.Require().Len(accounts, 1)
	s.Equal("OpenAI", accounts[0].Handle)
	s.Nil(accounts[0].LastSeenTweetID)

	publishedAt := time.Date(2025, 6, 15, 8, 0, 0, 0, time.UTC)
	now := time.Now().UTC().Truncate(time.Microsecond)
	s.NoError(store.UpdateBookmark(s.ctx, accounts[0].ID, "999", publishedAt, now))

	accounts, err = store.ListActive(s.ctx)
	s.NoError(err)
	s.Require().Len(accounts, 1)
	s.Require().NotNil(accounts[0].LastSeenTweetID)
	s.Equal("999", *accounts[0].LastSeenTweetID)
	s.WithinDuration(publishedAt, *accounts[0].LastSeenPublishedAt, time.Second)
}

func (s *PostgresIntegrationSuite) TestAccountStore_InactiveExcluded() {
	_, err := s.db.ExecContext(s.ctx,
		`INSERT INTO accounts (vendor_id, handle, is_active) VALUES ($1, 'retired', false)`,
		s.vendorID)
	s.Require().NoError(err)

	accounts, err := NewAccountStore(s.db).ListActive(s.ctx)
	s.NoError(err)
	s.Len(accounts, 1)
}

func (s *PostgresIntegrationSuite) TestVendorStore_UpsertAndList() {
	store := NewVendorStore(s.db)

	err := store.UpsertBatch(s.ctx, []domain.Vendor{
		{Slug: "openai", NameEn: "OpenAI Renamed", NameZh: "OpenAI", SortOrder: 10},
		{Slug: "other", NameEn: "Other", NameZh: "其他", SortOrder: 999},
	})
	s.NoError(err)

	vendors, err := store.List(s.ctx)
	s.NoError(err)
	s.Require().Len(vendors, 2)
	s.Equal("openai", vendors[0].Slug)
	s.Equal("OpenAI Renamed", vendors[0].NameEn, "upsert updates in place")
	s.Equal("other", vendors[1].Slug)

	ids, err := store.IDsBySlug(s.ctx)
	s.NoError(err)
	s.Len(ids, 2)
	s.Equal(s.vendorID, ids["openai"])
}

func (s *PostgresIntegrationSuite) TestDailyIndexStore_UpsertOverwrites() {
	store := NewDailyIndexStore(s.db)
	now := time.Now().UTC().Truncate(time.Microsecond)

	s.NoError(store.Upsert(s.ctx, domain.DailyIndexEntry{
		DateBeijing: "2025-06-15", TweetCount: 3, UpdatedAt: now,
	}))
	s.NoError(store.Upsert(s.ctx, domain.DailyIndexEntry{
		DateBeijing: "2025-06-15", TweetCount: 7, UpdatedAt: now,
	}))
	s.NoError(store.Upsert(s.ctx, domain.DailyIndexEntry{
		DateBeijing: "2025-06-14", TweetCount: 2, UpdatedAt: now,
	}))

	entries, err := store.ListRecent(s.ctx, 10)
	s.NoError(err)
	s.Require().Len(entries, 2)
	s.Equal("2025-06-15", entries[0].DateBeijing)
	s.Equal(7, entries[0].TweetCount, "recount replaces, never increments")
	s.Equal("2025-06-14", entries[1].DateBeijing)
}

func (s *PostgresIntegrationSuite) TestTransaction_RollbackLeavesRosterUntouched() {
	tm := NewTransactionManager(s.db)
	vendorStore := NewVendorStore(s.db)

	err := tm.WithTransaction(s.ctx, func(ctx context.Context) error {
		if err := vendorStore.UpsertBatch(ctx, []domain.Vendor{
			{Slug: "mistral", NameEn: "Mistral AI", NameZh: "Mistral AI", SortOrder: 50},
		}); err != nil {
			return err
		}
		return context.Canceled
	})
	s.Error(err)

	var count int
	s.NoError(s.db.GetContext(s.ctx, &count, "SELECT COUNT(*) FROM vendors WHERE slug = 'mistral'"))
	s.Equal(0, count)
}

func (s *PostgresIntegrationSuite) TestTransaction_Commit() {
	tm := NewTransactionManager(s.db)
	vendorStore := NewVendorStore(s.db)

	err := tm.WithTransaction(s.ctx, func(ctx context.Context) error {
		return vendorStore.UpsertBatch(ctx, []domain.Vendor{
			{Slug: "mistral", NameEn: "Mistral AI", NameZh: "Mistral AI", SortOrder: 50},
		})
	})
	s.NoError(err)

	var count int
	s.NoError(s.db.GetContext(s.ctx, &count, "SELECT COUNT(*) FROM vendors WHERE slug = 'mistral'"))
	s.Equal(1, count)
}
