// Package cursor implements the opaque keyset pagination token used by the
// feed API.
package cursor

import (
	"encoding/base64"
	"encoding/json"
	"time"
)

// Cursor marks the last row of a served feed page. It is transient and
// client-held; the server never persists one.
type Cursor struct {
	PublishedAt time.Time
	TweetID     string
}

type wire struct {
	PublishedAt string `json:"publishedAt"`
	TweetID     string `json:"tweetId"`
}

// Encode serializes a cursor into a URL-safe opaque string (base64url, no
// padding).
func Encode(c Cursor) string {
	b, _ := json.Marshal(wire{
		PublishedAt: c.PublishedAt.UTC().Format(time.RFC3339Nano),
		TweetID:     c.TweetID,
	})
	return base64.RawURLEncoding.EncodeToString(b)
}

// Decode parses an opaque cursor string. Any malformed input (bad encoding,
// bad JSON, missing fields, an unparseable timestamp) yields nil, meaning
// start of feed. A garbage cursor degrades to the first page rather than
// failing the request.
func Decode(raw string) *Cursor {
	if raw == "" {
		return nil
	}

	b, err := base64.RawURLEncoding.DecodeString(raw)
	if err != nil {
		// Tolerate padded input from older clients.
		b, err = base64.URLEncoding.DecodeString(raw)
		if err != nil {
			return nil
		}
	}

	var w wire
	if err := json.Unmarshal(b, &w); err != nil {
		return nil
	}
	if w.PublishedAt == "" || w.TweetID == "" {
		return nil
	}

	ts, err := time.Parse(time.RFC3339Nano, w.PublishedAt)
	if err != nil {
		return nil
	}

	return &Cursor{PublishedAt: ts.UTC(), TweetID: w.TweetID}
}
