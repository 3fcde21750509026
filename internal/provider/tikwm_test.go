package provider

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fetchFunc func(ctx context.Context, target string) ([]byte, error)

func (f fetchFunc) Fetch(ctx context.Context, target string) ([]byte, error) {
	return f(ctx, target)
}

func staticFetcher(body string, seen *string) Fetcher {
	return fetchFunc(func(ctx context.Context, target string) ([]byte, error) {
		if seen != nil {
			*seen = target
		}
		return []byte(body), nil
	})
}

func TestTikWM_RequestURL(t *testing.T) {
	c := NewTikWM("https://www.tikwm.com/", nil)

	target, err := c.RequestURL("https://vt.tiktok.com/ZSabc/")
	require.NoError(t, err)
	assert.Equal(t, "https://www.tikwm.com/api/?url=https%3A%2F%2Fvt.tiktok.com%2FZSabc%2F", target)
}

func TestTikWM_Lookup(t *testing.T) {
	t.Run("full record", func(t *testing.T) {
		var seen string
		body := `{"code":0,"msg":"success","data":{"id":"7301234567890123456","title":"New drop",
			"cover":"https://p16.tiktokcdn.com/cover.jpeg","play":"https://v16.tiktokcdn.com/play.mp4",
			"author":{"unique_id":"bigbazar"}}}`
		c := NewTikWM("https://www.tikwm.com", staticFetcher(body, &seen))

		meta, err := c.Lookup(context.Background(), "https://vt.tiktok.com/ZSabc/")

		require.NoError(t, err)
		assert.Contains(t, seen, "/api/?url=")
		assert.Equal(t, "7301234567890123456", meta.ID)
		assert.Equal(t, "New drop", meta.Title)
		assert.Equal(t, "https://p16.tiktokcdn.com/cover.jpeg", meta.ThumbnailURL)
		assert.Equal(t, "https://v16.tiktokcdn.com/play.mp4", meta.VideoURL)
		assert.Equal(t, "bigbazar", meta.Author)
		assert.Equal(t, "https://www.tiktok.com/@bigbazar/video/7301234567890123456", meta.CanonicalURL)
	})

	t.Run("numeric id and no author", func(t *testing.T) {
		body := `{"code":0,"data":{"id":7301234567890123456,"cover":"c.jpg"}}`
		c := NewTikWM("https://www.tikwm.com", staticFetcher(body, nil))

		meta, err := c.Lookup(context.Background(), "link")

		require.NoError(t, err)
		assert.Equal(t, "7301234567890123456", meta.ID)
		assert.Equal(t, "https://www.tiktok.com/@user/video/7301234567890123456", meta.CanonicalURL)
	})

	t.Run("partial record", func(t *testing.T) {
		body := `{"code":0,"data":{"cover":"c.jpg"}}`
		c := NewTikWM("https://www.tikwm.com", staticFetcher(body, nil))

		meta, err := c.Lookup(context.Background(), "link")

		require.NoError(t, err)
		assert.Empty(t, meta.ID)
		assert.Empty(t, meta.CanonicalURL)
		assert.Equal(t, "c.jpg", meta.ThumbnailURL)
	})
}

func TestTikWM_LookupFailures(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		fetch   error
		wantErr error
	}{
		{"non-zero code", `{"code":-1,"msg":"Url parsing is failed!"}`, nil, ErrAPIFailure},
		{"missing data", `{"code":0}`, nil, ErrAPIFailure},
		{"malformed json", `not json`, nil, ErrMalformedResponse},
		{"transport error", "", ErrUpstreamStatus, ErrUpstreamStatus},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fetcher := fetchFunc(func(ctx context.Context, target string) ([]byte, error) {
				if tt.fetch != nil {
					return nil, tt.fetch
				}
				return []byte(tt.body), nil
			})

			meta, err := NewTikWM("https://www.tikwm.com", fetcher).Lookup(context.Background(), "link")
			assert.Nil(t, meta)
			assert.True(t, errors.Is(err, tt.wantErr), "got %v", err)
		})
	}
}

func TestTikWM_OverDirectRelay(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/", r.URL.Path)
		assert.Equal(t, "https://www.tiktok.com/@a/video/1234567890123456", r.URL.Query().Get("url"))
		_, _ = w.Write([]byte(`{"code":0,"data":{"id":"1234567890123456","cover":"c.jpg"}}`))
	}))
	defer server.Close()

	c := NewTikWM(server.URL, NewDirect(NewHTTPClient(time.Second), ""))
	meta, err := c.Lookup(context.Background(), "https://www.tiktok.com/@a/video/1234567890123456")

	require.NoError(t, err)
	assert.Equal(t, "1234567890123456", meta.ID)
}

func TestCanonicalTikTokURL(t *testing.T) {
	assert.Equal(t, "", CanonicalTikTokURL("shop", ""))
	assert.Equal(t, "https://www.tiktok.com/@shop/video/1", CanonicalTikTokURL("shop", "1"))
	assert.Equal(t, "https://www.tiktok.com/@user/video/1", CanonicalTikTokURL("", "1"))
}
