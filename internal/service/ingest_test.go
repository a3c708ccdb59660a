package service

import (
	"context"
	"log/slog"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"github.com/tangbing-xm/tweet-feeds/internal/config"
	"github.com/tangbing-xm/tweet-feeds/internal/domain"
	"github.com/tangbing-xm/tweet-feeds/internal/service/mocks"
	"github.com/tangbing-xm/tweet-feeds/internal/source/twitterapi"
)

type IngestServiceTestSuite struct {
	suite.Suite
	ctrl *gomock.Controller

	source    *mocks.MockSource
	tweets    *mocks.MockTweetStore
	accounts  *mocks.MockAccountStore
	daily     *mocks.MockDailyIndexStore
	publisher *mocks.MockPublisher

	service *IngestService
	cfg     config.IngestConfig
	logger  *slog.Logger
}

func (s *IngestServiceTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())

	s.source = mocks.NewMockSource(s.ctrl)
	s.tweets = mocks.NewMockTweetStore(s.ctrl)
	s.accounts = mocks.NewMockAccountStore(s.ctrl)
	s.daily = mocks.NewMockDailyIndexStore(s.ctrl)
	s.publisher = mocks.NewMockPublisher(s.ctrl)

	s.cfg = config.IngestConfig{
		Lookback:           72 * time.Hour,
		MaxPagesPerAccount: 5,
		MinInterval:        time.Millisecond,
	}

	s.logger = slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))

	s.service = NewIngestService(
		s.source,
		s.tweets,
		s.accounts,
		s.daily,
		s.publisher,
		nil,
		s.logger,
		s.cfg,
	)
}

func (s *IngestServiceTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func TestIngestServiceTestSuite(t *testing.T) {
	suite.Run(t, new(IngestServiceTestSuite))
}

func rubyDate(t time.Time) string {
	return t.UTC().Format(time.RubyDate)
}

func (s *IngestServiceTestSuite) account() domain.Account {
	return domain.Account{ID: 1, VendorID: 2, Handle: "OpenAI", IsActive: true}
}

func (s *IngestServiceTestSuite) TestRun_StoresOriginalFreshTweets() {
	ctx := context.Background()
	now := time.Now().UTC().Truncate(time.Second)

	page := &twitterapi.Page{
		Tweets: []twitterapi.Tweet{
			{ID: "t1", URL: "https://x.com/OpenAI/status/t1", CreatedAt: rubyDate(now.Add(-time.Hour))},
			{ID: "t2", URL: "https://x.com/OpenAI/status/t2", CreatedAt: rubyDate(now.Add(-2 * time.Hour)), IsReply: true},
			{ID: "t3", URL: "https://x.com/OpenAI/status/t3", CreatedAt: rubyDate(now.Add(-3 * time.Hour)), RetweetedTweet: []byte(`{"id":"x"}`)},
			{ID: "t4", URL: "https://x.com/OpenAI/status/t4", CreatedAt: rubyDate(now.Add(-100 * time.Hour))},
		},
		HasNextPage: true,
		NextCursor:  "next",
	}

	s.accounts.EXPECT().ListActive(ctx).Return([]domain.Account{s.account()}, nil)

	// A tweet older than the lookback window ends the account's paging even
	// though the upstream reports another page.
	s.source.EXPECT().FetchPage(ctx, "OpenAI", "", false).Return(page, nil)

	s.tweets.EXPECT().InsertBatch(ctx, gomock.Any()).DoAndReturn(
		func(_ context.Context, batch []domain.Tweet) error {
			s.Require().Len(batch, 1)
			s.Equal("t1", batch[0].TweetID)
			s.Equal(int64(1), batch[0].AccountID)
			s.Equal(int64(2), batch[0].VendorID)
			s.False(batch[0].IsReply)
			s.False(batch[0].IsRetweet)
			return nil
		},
	)

	s.publisher.EXPECT().Publish(ctx, gomock.Any()).Return(nil)

	s.accounts.EXPECT().UpdateBookmark(ctx, int64(1), "t1", gomock.Any(), gomock.Any()).Return(nil)

	s.tweets.EXPECT().CountBetween(ctx, gomock.Any(), gomock.Any()).Return(7, nil)
	s.daily.EXPECT().Upsert(ctx, gomock.Any()).DoAndReturn(
		func(_ context.Context, entry domain.DailyIndexEntry) error {
			s.Equal(7, entry.TweetCount)
			return nil
		},
	)

	stats, err := s.service.Run(ctx)

	s.NoError(err)
	s.Equal(4, stats.Fetched)
	s.Equal(1, stats.Inserted)
	s.Equal(1, stats.TouchedDates)
	s.Empty(stats.Errors)
}

func (s *IngestServiceTestSuite) TestRun_RetriesOnceOnRateLimit() {
	ctx := context.Background()
	now := time.Now().UTC()

	page := &twitterapi.Page{
		Tweets: []twitterapi.Tweet{
			{ID: "t1", URL: "https://x.com/OpenAI/status/t1", CreatedAt: rubyDate(now.Add(-time.Hour))},
		},
	}

	s.accounts.EXPECT().ListActive(ctx).Return([]domain.Account{s.account()}, nil)

	gomock.InOrder(
		s.source.EXPECT().FetchPage(ctx, "OpenAI", "", false).
			Return(nil, &twitterapi.UpstreamError{StatusCode: 429, Body: "slow down"}),
		s.source.EXPECT().FetchPage(ctx, "OpenAI", "", false).Return(page, nil),
	)

	s.tweets.EXPECT().InsertBatch(ctx, gomock.Any()).Return(nil)
	s.publisher.EXPECT().Publish(ctx, gomock.Any()).Return(nil)
	s.accounts.EXPECT().UpdateBookmark(ctx, int64(1), "t1", gomock.Any(), gomock.Any()).Return(nil)
	s.tweets.EXPECT().CountBetween(ctx, gomock.Any(), gomock.Any()).Return(1, nil)
	s.daily.EXPECT().Upsert(ctx, gomock.Any()).Return(nil)

	stats, err := s.service.Run(ctx)

	s.NoError(err)
	s.Equal(1, stats.Fetched)
	s.Empty(stats.Errors)
}

func (s *IngestServiceTestSuite) TestRun_SecondRateLimitFailsAccount() {
	ctx := context.Background()

	s.accounts.EXPECT().ListActive(ctx).Return([]domain.Account{s.account()}, nil)

	s.source.EXPECT().FetchPage(ctx, "OpenAI", "", false).
		Return(nil, &twitterapi.UpstreamError{StatusCode: 429, Body: "slow down"}).
		Times(2)

	stats, err := s.service.Run(ctx)

	s.NoError(err)
	s.Require().Len(stats.Errors, 1)
	s.Equal("OpenAI", stats.Errors[0].Handle)
	s.Contains(stats.Errors[0].Error, "429")
}

func (s *IngestServiceTestSuite) TestRun_AccountFailureIsIsolated() {
	ctx := context.Background()
	now := time.Now().UTC()

	failing := domain.Account{ID: 1, VendorID: 2, Handle: "broken", IsActive: true}
	healthy := domain.Account{ID: 3, VendorID: 4, Handle: "OpenAI", IsActive: true}

	s.accounts.EXPECT().ListActive(ctx).Return([]domain.Account{failing, healthy}, nil)

	s.source.EXPECT().FetchPage(ctx, "broken", "", false).
		Return(nil, &twitterapi.UpstreamError{StatusCode: 500, Body: "boom"})

	page := &twitterapi.Page{
		Tweets: []twitterapi.Tweet{
			{ID: "t1", URL: "https://x.com/OpenAI/status/t1", CreatedAt: rubyDate(now.Add(-time.Hour))},
		},
	}
	s.source.EXPECT().FetchPage(ctx, "OpenAI", "", false).Return(page, nil)

	s.tweets.EXPECT().InsertBatch(ctx, gomock.Any()).Return(nil)
	s.publisher.EXPECT().Publish(ctx, gomock.Any()).Return(nil)
	s.accounts.EXPECT().UpdateBookmark(ctx, int64(3), "t1", gomock.Any(), gomock.Any()).Return(nil)
	s.tweets.EXPECT().CountBetween(ctx, gomock.Any(), gomock.Any()).Return(1, nil)
	s.daily.EXPECT().Upsert(ctx, gomock.Any()).Return(nil)

	stats, err := s.service.Run(ctx)

	s.NoError(err)
	s.Equal(1, stats.Inserted)
	s.Require().Len(stats.Errors, 1)
	s.Equal("broken", stats.Errors[0].Handle)
}

func (s *IngestServiceTestSuite) TestRun_StopsAtMaxPages() {
	ctx := context.Background()
	now := time.Now().UTC()

	s.cfg.MaxPagesPerAccount = 2
	s.service = NewIngestService(s.source, s.tweets, s.accounts, s.daily, nil, nil, s.logger, s.cfg)

	s.accounts.EXPECT().ListActive(ctx).Return([]domain.Account{s.account()}, nil)

	page := func(id, next string) *twitterapi.Page {
		return &twitterapi.Page{
			Tweets: []twitterapi.Tweet{
				{ID: id, URL: "https://x.com/OpenAI/status/" + id, CreatedAt: rubyDate(now.Add(-time.Hour))},
			},
			HasNextPage: true,
			NextCursor:  next,
		}
	}

	gomock.InOrder(
		s.source.EXPECT().FetchPage(ctx, "OpenAI", "", false).Return(page("t1", "c1"), nil),
		s.source.EXPECT().FetchPage(ctx, "OpenAI", "c1", false).Return(page("t2", "c2"), nil),
	)

	s.tweets.EXPECT().InsertBatch(ctx, gomock.Any()).Return(nil).Times(2)
	s.accounts.EXPECT().UpdateBookmark(ctx, int64(1), "t1", gomock.Any(), gomock.Any()).Return(nil)
	s.tweets.EXPECT().CountBetween(ctx, gomock.Any(), gomock.Any()).Return(2, nil)
	s.daily.EXPECT().Upsert(ctx, gomock.Any()).Return(nil)

	stats, err := s.service.Run(ctx)

	s.NoError(err)
	s.Equal(2, stats.Fetched)
}

func (s *IngestServiceTestSuite) TestRun_StopsOnEmptyNextCursor() {
	ctx := context.Background()
	now := time.Now().UTC()

	s.accounts.EXPECT().ListActive(ctx).Return([]domain.Account{s.account()}, nil)

	page := &twitterapi.Page{
		Tweets: []twitterapi.Tweet{
			{ID: "t1", URL: "https://x.com/OpenAI/status/t1", CreatedAt: rubyDate(now.Add(-time.Hour))},
		},
		HasNextPage: true,
		NextCursor:  "",
	}
	s.source.EXPECT().FetchPage(ctx, "OpenAI", "", false).Return(page, nil)

	s.tweets.EXPECT().InsertBatch(ctx, gomock.Any()).Return(nil)
	s.publisher.EXPECT().Publish(ctx, gomock.Any()).Return(nil)
	s.accounts.EXPECT().UpdateBookmark(ctx, int64(1), "t1", gomock.Any(), gomock.Any()).Return(nil)
	s.tweets.EXPECT().CountBetween(ctx, gomock.Any(), gomock.Any()).Return(1, nil)
	s.daily.EXPECT().Upsert(ctx, gomock.Any()).Return(nil)

	_, err := s.service.Run(ctx)
	s.NoError(err)
}

func (s *IngestServiceTestSuite) TestRun_InsertFailureAbortsAccount() {
	ctx := context.Background()
	now := time.Now().UTC()

	s.accounts.EXPECT().ListActive(ctx).Return([]domain.Account{s.account()}, nil)

	page := &twitterapi.Page{
		Tweets: []twitterapi.Tweet{
			{ID: "t1", URL: "https://x.com/OpenAI/status/t1", CreatedAt: rubyDate(now.Add(-time.Hour))},
		},
		HasNextPage: true,
		NextCursor:  "c1",
	}
	s.source.EXPECT().FetchPage(ctx, "OpenAI", "", false).Return(page, nil)

	s.tweets.EXPECT().InsertBatch(ctx, gomock.Any()).Return(context.DeadlineExceeded)

	// The first page produced a bookmark candidate before the insert failed,
	// so the advisory bookmark still advances.
	s.accounts.EXPECT().UpdateBookmark(ctx, int64(1), "t1", gomock.Any(), gomock.Any()).Return(nil)

	// The touched set stays populated; the recount still runs for it.
	s.tweets.EXPECT().CountBetween(ctx, gomock.Any(), gomock.Any()).Return(0, nil)
	s.daily.EXPECT().Upsert(ctx, gomock.Any()).Return(nil)

	stats, err := s.service.Run(ctx)

	s.NoError(err)
	s.Equal(0, stats.Inserted)
	s.Require().Len(stats.Errors, 1)
	s.Contains(stats.Errors[0].Error, "store page 0")
}

func (s *IngestServiceTestSuite) TestRun_SkipsUnparseableTimestamps() {
	ctx := context.Background()
	now := time.Now().UTC()

	s.accounts.EXPECT().ListActive(ctx).Return([]domain.Account{s.account()}, nil)

	page := &twitterapi.Page{
		Tweets: []twitterapi.Tweet{
			{ID: "bad", URL: "https://x.com/OpenAI/status/bad", CreatedAt: "not a timestamp"},
			{ID: "t1", URL: "https://x.com/OpenAI/status/t1", CreatedAt: rubyDate(now.Add(-time.Hour))},
		},
	}
	s.source.EXPECT().FetchPage(ctx, "OpenAI", "", false).Return(page, nil)

	s.tweets.EXPECT().InsertBatch(ctx, gomock.Any()).DoAndReturn(
		func(_ context.Context, batch []domain.Tweet) error {
			s.Require().Len(batch, 1)
			s.Equal("t1", batch[0].TweetID)
			return nil
		},
	)
	s.publisher.EXPECT().Publish(ctx, gomock.Any()).Return(nil)

	// The first tweet's timestamp never parsed, so the bookmark candidate
	// falls through to nothing: the malformed head tweet blocks it.
	s.tweets.EXPECT().CountBetween(ctx, gomock.Any(), gomock.Any()).Return(1, nil)
	s.daily.EXPECT().Upsert(ctx, gomock.Any()).Return(nil)

	stats, err := s.service.Run(ctx)

	s.NoError(err)
	s.Equal(2, stats.Fetched)
	s.Equal(1, stats.Inserted)
}

func (s *IngestServiceTestSuite) TestRun_SpacesUpstreamCalls() {
	ctx := context.Background()

	interval := 30 * time.Millisecond
	s.cfg.MinInterval = interval
	s.service = NewIngestService(s.source, s.tweets, s.accounts, s.daily, nil, nil, s.logger, s.cfg)

	a := domain.Account{ID: 1, VendorID: 2, Handle: "OpenAI", IsActive: true}
	b := domain.Account{ID: 3, VendorID: 4, Handle: "AnthropicAI", IsActive: true}
	s.accounts.EXPECT().ListActive(ctx).Return([]domain.Account{a, b}, nil)

	var calls []time.Time
	record := func(_ context.Context, _, _ string, _ bool) (*twitterapi.Page, error) {
		calls = append(calls, time.Now())
		return &twitterapi.Page{Tweets: []twitterapi.Tweet{}}, nil
	}

	s.source.EXPECT().FetchPage(ctx, "OpenAI", "", false).DoAndReturn(record)
	s.source.EXPECT().FetchPage(ctx, "AnthropicAI", "", false).DoAndReturn(record)

	_, err := s.service.Run(ctx)

	s.NoError(err)
	s.Require().Len(calls, 2)
	// The limiter is shared across accounts, so the second call waits out
	// the full interval even though it belongs to a different account.
	s.GreaterOrEqual(calls[1].Sub(calls[0]), interval-5*time.Millisecond)
}

func (s *IngestServiceTestSuite) TestRun_ListAccountsError() {
	ctx := context.Background()

	s.accounts.EXPECT().ListActive(ctx).Return(nil, context.DeadlineExceeded)

	stats, err := s.service.Run(ctx)

	s.Error(err)
	s.Nil(stats)
	s.Contains(err.Error(), "list active accounts")
}
