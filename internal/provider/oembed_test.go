package provider

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOEmbed_Lookup(t *testing.T) {
	t.Run("id from embed markup", func(t *testing.T) {
		var seen string
		body := `{"title":"Eid collection","author_unique_id":"bigbazar",
			"thumbnail_url":"https://p16.tiktokcdn.com/thumb.jpeg",
			"html":"<blockquote class=\"tiktok-embed\" data-video-id=\"7301234567890123456\"></blockquote>"}`
		c := NewOEmbed("https://www.tiktok.com/oembed", staticFetcher(body, &seen))

		meta, err := c.Lookup(context.Background(), "https://www.tiktok.com/@bigbazar/video/7301234567890123456")

		require.NoError(t, err)
		assert.Equal(t, "https://www.tiktok.com/oembed?url=https%3A%2F%2Fwww.tiktok.com%2F%40bigbazar%2Fvideo%2F7301234567890123456", seen)
		assert.Equal(t, "7301234567890123456", meta.ID)
		assert.Equal(t, "Eid collection", meta.Title)
		assert.Equal(t, "bigbazar", meta.Author)
		assert.Equal(t, "https://p16.tiktokcdn.com/thumb.jpeg", meta.ThumbnailURL)
	})

	t.Run("markup without id", func(t *testing.T) {
		c := NewOEmbed("https://www.tiktok.com/oembed", staticFetcher(`{"thumbnail_url":"t.jpg","html":"<div></div>"}`, nil))

		meta, err := c.Lookup(context.Background(), "https://www.tiktok.com/@a/video/1")

		require.NoError(t, err)
		assert.Empty(t, meta.ID)
		assert.Equal(t, "t.jpg", meta.ThumbnailURL)
	})

	t.Run("malformed json", func(t *testing.T) {
		c := NewOEmbed("https://www.tiktok.com/oembed", staticFetcher(`<html>`, nil))

		_, err := c.Lookup(context.Background(), "https://www.tiktok.com/@a/video/1")
		assert.ErrorIs(t, err, ErrMalformedResponse)
	})
}

func TestOEmbed_ThroughAllOrigins(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Contains(t, r.URL.Query().Get("url"), "/oembed?url=")
		_, _ = w.Write([]byte(`{"contents":"{\"thumbnail_url\":\"t.jpg\",\"html\":\"data-video-id=\\\"99\\\"\"}","status":{"http_code":200}}`))
	}))
	defer server.Close()

	relay := NewAllOrigins(server.URL, NewHTTPClient(time.Second), "")
	meta, err := NewOEmbed("https://www.tiktok.com/oembed", relay).Lookup(context.Background(), "https://www.tiktok.com/@a/video/99")

	require.NoError(t, err)
	assert.Equal(t, "99", meta.ID)
	assert.Equal(t, "t.jpg", meta.ThumbnailURL)
}
