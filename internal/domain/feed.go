package domain

import "time"

// FeedQuery describes one page of the public feed at the storage level.
// Exactly one of Since and the [Start, End) pair is set, depending on
// timeline vs date mode.
type FeedQuery struct {
	Since *time.Time // timeline mode: published_at >= Since
	Start *time.Time // date mode: published_at >= Start
	End   *time.Time // date mode: published_at < End

	VendorSlug string // "" means no vendor filter

	// Keyset cursor; both set or both empty.
	CursorPublishedAt *time.Time
	CursorTweetID     string

	Limit int
}

// FeedPage is one served page. NextCursor is nil when the page is short,
// which the API treats as end of feed.
type FeedPage struct {
	Items      []FeedItem
	NextCursor *string
}
