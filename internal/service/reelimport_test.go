package service

import (
	"context"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bigbazar/internal/mocks"
	"bigbazar/internal/model"
)

func TestReelImportService_Import(t *testing.T) {
	ctx := context.Background()
	media := &model.GraphMedia{
		ID:           "17900000000000001",
		Permalink:    "https://www.instagram.com/reel/C1a2B3c4D5e/",
		ThumbnailURL: "https://scontent.cdninstagram.com/thumb.jpg",
		MediaURL:     "https://scontent.cdninstagram.com/video.mp4",
		Caption:      "New summer collection",
		MediaType:    "VIDEO",
	}

	newService := func(t *testing.T) (*ReelImportService, *mocks.MockGraphClient, *mocks.MockProductRepositoryInterface) {
		ctrl := gomock.NewController(t)
		graph := mocks.NewMockGraphClient(ctrl)
		products := mocks.NewMockProductRepositoryInterface(ctrl)
		return NewReelImportService(graph, products), graph, products
	}

	t.Run("empty media id", func(t *testing.T) {
		rs, graph, _ := newService(t)
		graph.EXPECT().GetMedia(gomock.Any(), gomock.Any()).Times(0)

		_, err := rs.Import(ctx, "  ")
		assert.ErrorIs(t, err, ErrInvalidMediaID)
	})

	t.Run("missing access token", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		rs := NewReelImportService(nil, mocks.NewMockProductRepositoryInterface(ctrl))

		_, err := rs.Import(ctx, "17900000000000001")
		assert.ErrorIs(t, err, ErrMissingAccessToken)
	})

	t.Run("graph failure", func(t *testing.T) {
		rs, graph, products := newService(t)
		graph.EXPECT().GetMedia(gomock.Any(), "17900000000000001").Return(nil, assert.AnError)
		products.EXPECT().InsertPendingProduct(gomock.Any(), gomock.Any()).Times(0)

		_, err := rs.Import(ctx, "17900000000000001")
		assert.ErrorIs(t, err, assert.AnError)
	})

	t.Run("new reel inserted", func(t *testing.T) {
		rs, graph, products := newService(t)
		graph.EXPECT().GetMedia(gomock.Any(), "17900000000000001").Return(media, nil)
		products.EXPECT().InsertPendingProduct(gomock.Any(), gomock.Any()).DoAndReturn(
			func(ctx context.Context, p *model.Product) (bool, error) {
				p.ID = 42
				return true, nil
			})

		p, err := rs.Import(ctx, " 17900000000000001 ")
		require.NoError(t, err)
		assert.Equal(t, int64(42), p.ID)
		assert.Equal(t, "New Drop 179000", p.Name)
		assert.Equal(t, model.ProductStatusPending, p.Status)
		require.NotNil(t, p.PlatformID)
		assert.Equal(t, "17900000000000001", *p.PlatformID)
	})

	t.Run("duplicate reel is not an error", func(t *testing.T) {
		rs, graph, products := newService(t)
		graph.EXPECT().GetMedia(gomock.Any(), "17900000000000001").Return(media, nil)
		products.EXPECT().InsertPendingProduct(gomock.Any(), gomock.Any()).Return(false, nil)

		p, err := rs.Import(ctx, "17900000000000001")
		require.NoError(t, err)
		assert.NotNil(t, p)
	})

	t.Run("insert failure", func(t *testing.T) {
		rs, graph, products := newService(t)
		graph.EXPECT().GetMedia(gomock.Any(), "17900000000000001").Return(media, nil)
		products.EXPECT().InsertPendingProduct(gomock.Any(), gomock.Any()).Return(false, assert.AnError)

		_, err := rs.Import(ctx, "17900000000000001")
		assert.ErrorIs(t, err, assert.AnError)
	})
}

func TestPendingProduct(t *testing.T) {
	t.Run("thumbnail preferred", func(t *testing.T) {
		p := PendingProduct("17900000000000001", &model.GraphMedia{
			Permalink:    "https://www.instagram.com/reel/C1a/",
			ThumbnailURL: "https://cdn.example/thumb.jpg",
			MediaURL:     "https://cdn.example/video.mp4",
			Caption:      "caption",
		})

		assert.Equal(t, "New Drop 179000", p.Name)
		assert.Equal(t, "caption", p.Description)
		assert.Equal(t, 0.0, p.Price)
		assert.True(t, p.IsNew)
		assert.Equal(t, "https://www.instagram.com/reel/C1a/", p.Video())
		assert.Equal(t, []string{"https://cdn.example/thumb.jpg"}, []string(p.Images))
	})

	t.Run("media url fallback", func(t *testing.T) {
		p := PendingProduct("42", &model.GraphMedia{MediaURL: "https://cdn.example/photo.jpg"})

		assert.Equal(t, "New Drop 42", p.Name)
		assert.Nil(t, p.VideoURL)
		assert.Equal(t, []string{"https://cdn.example/photo.jpg"}, []string(p.Images))
	})

	t.Run("no media", func(t *testing.T) {
		p := PendingProduct("42", &model.GraphMedia{})
		assert.Empty(t, p.Images)
	})
}
