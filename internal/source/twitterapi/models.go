package twitterapi

import "encoding/json"

// rawResponse represents the twitterapi.io last_tweets envelope. Depending
// on deployment the tweet array arrives under data.tweets or at the top
// level, and the error message under msg or message.
type rawResponse struct {
	Status  string `json:"status"`
	Code    int    `json:"code"`
	Msg     string `json:"msg"`
	Message string `json:"message"`
	Data    *struct {
		Tweets []Tweet `json:"tweets"`
	} `json:"data"`
	Tweets      []Tweet `json:"tweets"`
	HasNextPage bool    `json:"has_next_page"`
	NextCursor  string  `json:"next_cursor"`
}

// Tweet is one record as the upstream reports it. CreatedAt stays a string
// here; parsing happens at ingestion so a single bad timestamp skips one
// record instead of failing the page.
type Tweet struct {
	ID         string  `json:"id"`
	URL        string  `json:"url"`
	TwitterURL *string `json:"twitterUrl"`
	CreatedAt  string  `json:"createdAt"`
	Lang       *string `json:"lang"`
	IsReply    bool    `json:"isReply"`

	// RetweetedTweet is non-null iff the record is a retweet; its contents
	// are otherwise unused.
	RetweetedTweet json.RawMessage `json:"retweeted_tweet"`
}

// Link returns the canonical URL for the tweet, preferring twitterUrl.
func (t Tweet) Link() string {
	if t.TwitterURL != nil && *t.TwitterURL != "" {
		return *t.TwitterURL
	}
	return t.URL
}

// IsRetweet reports whether the upstream marked the record as a retweet.
func (t Tweet) IsRetweet() bool {
	return len(t.RetweetedTweet) > 0 && string(t.RetweetedTweet) != "null"
}

// Page is one normalized page of an account's timeline, newest first.
type Page struct {
	Tweets      []Tweet
	HasNextPage bool
	NextCursor  string
}
