package cursor

import (
	"encoding/base64"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncodeDecode_RoundTrip(t *testing.T) {
	in := Cursor{
		PublishedAt: time.Date(2025, 6, 15, 8, 30, 45, 123456789, time.UTC),
		TweetID:     "1934567890123456789",
	}

	encoded := Encode(in)
	assert.False(t, strings.ContainsAny(encoded, "+/="), "cursor must be URL-safe without padding")

	out := Decode(encoded)
	require.NotNil(t, out)
	assert.True(t, in.PublishedAt.Equal(out.PublishedAt))
	assert.Equal(t, in.TweetID, out.TweetID)
}

func TestDecode_ToleratesPaddedEncoding(t *testing.T) {
	in := Cursor{PublishedAt: time.Date(2025, 6, 15, 8, 0, 0, 0, time.UTC), TweetID: "42"}

	raw, err := base64.RawURLEncoding.DecodeString(Encode(in))
	require.NoError(t, err)
	padded := base64.URLEncoding.EncodeToString(raw)

	out := Decode(padded)
	require.NotNil(t, out)
	assert.Equal(t, "42", out.TweetID)
}

func TestDecode_MalformedYieldsNil(t *testing.T) {
	tests := []struct {
		name string
		raw  string
	}{
		{"empty", ""},
		{"not base64", "!!!"},
		{"not json", base64.RawURLEncoding.EncodeToString([]byte("hello"))},
		{"missing tweet id", base64.RawURLEncoding.EncodeToString([]byte(`{"publishedAt":"2025-06-15T08:00:00Z"}`))},
		{"missing timestamp", base64.RawURLEncoding.EncodeToString([]byte(`{"tweetId":"42"}`))},
		{"bad timestamp", base64.RawURLEncoding.EncodeToString([]byte(`{"publishedAt":"yesterday","tweetId":"42"}`))},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Nil(t, Decode(tt.raw))
		})
	}
}
