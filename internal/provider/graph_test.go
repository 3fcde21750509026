package provider

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGraph_GetMedia(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v18.0/17900000000000001", r.URL.Path)
		assert.Equal(t, "permalink,thumbnail_url,media_url,caption,media_type", r.URL.Query().Get("fields"))
		assert.Equal(t, "secret", r.URL.Query().Get("access_token"))
		_, _ = w.Write([]byte(`{"id":"17900000000000001","permalink":"https://www.instagram.com/reel/Cabc123/",
			"thumbnail_url":"https://scontent.cdninstagram.com/t.jpg","caption":"Winter jackets","media_type":"VIDEO"}`))
	}))
	defer server.Close()

	g := NewGraph(server.URL, "v18.0", "secret", server.Client(), "")
	media, err := g.GetMedia(context.Background(), "17900000000000001")

	require.NoError(t, err)
	assert.Equal(t, "17900000000000001", media.ID)
	assert.Equal(t, "https://www.instagram.com/reel/Cabc123/", media.Permalink)
	assert.Equal(t, "https://scontent.cdninstagram.com/t.jpg", media.ThumbnailURL)
	assert.Equal(t, "Winter jackets", media.Caption)
	assert.Equal(t, "VIDEO", media.MediaType)
}

func TestGraph_GetMediaFailures(t *testing.T) {
	t.Run("missing token", func(t *testing.T) {
		g := NewGraph("https://graph.facebook.com", "v18.0", "", nil, "")
		_, err := g.GetMedia(context.Background(), "1")
		assert.ErrorIs(t, err, ErrMissingAccessToken)
	})

	t.Run("graph error", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusBadRequest)
			_, _ = w.Write([]byte(`{"error":{"message":"Invalid OAuth access token"}}`))
		}))
		defer server.Close()

		g := NewGraph(server.URL, "v18.0", "bad", server.Client(), "")
		_, err := g.GetMedia(context.Background(), "1")
		assert.ErrorIs(t, err, ErrUpstreamStatus)
		assert.Contains(t, err.Error(), "Invalid OAuth")
	})

	t.Run("id defaults to requested", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`{"permalink":"https://www.instagram.com/p/X/"}`))
		}))
		defer server.Close()

		g := NewGraph(server.URL, "v18.0", "t", server.Client(), "")
		media, err := g.GetMedia(context.Background(), "42")
		require.NoError(t, err)
		assert.Equal(t, "42", media.ID)
	})
}
