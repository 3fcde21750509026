package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"bigbazar/internal/model"
	"bigbazar/internal/provider"

	"github.com/rs/zerolog/log"
)

var (
	// ErrMissingAccessToken is returned when the Graph API token is not configured
	ErrMissingAccessToken = provider.ErrMissingAccessToken
	// ErrInvalidMediaID is returned for an empty media id
	ErrInvalidMediaID = errors.New("invalid media id")
)

// ReelImportService turns a webhook media id into a pending product
type ReelImportService struct {
	graph    GraphClient
	products ProductRepositoryInterface
}

// NewReelImportService creates a new Reel Import Service
func NewReelImportService(graph GraphClient, products ProductRepositoryInterface) *ReelImportService {
	return &ReelImportService{
		graph:    graph,
		products: products,
	}
}

// Import looks the media up on the Graph API and inserts it as a pending
// product. Media already imported is left untouched.
func (rs *ReelImportService) Import(ctx context.Context, mediaID string) (*model.Product, error) {
	mediaID = strings.TrimSpace(mediaID)
	if mediaID == "" {
		return nil, ErrInvalidMediaID
	}
	if rs.graph == nil {
		return nil, ErrMissingAccessToken
	}

	media, err := rs.graph.GetMedia(ctx, mediaID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch media %s: %w", mediaID, err)
	}

	p := PendingProduct(mediaID, media)

	inserted, err := rs.products.InsertPendingProduct(ctx, p)
	if err != nil {
		return nil, fmt.Errorf("failed to insert product for media %s: %w", mediaID, err)
	}

	if inserted {
		log.Info().Str("media_id", mediaID).Int64("product_id", p.ID).Msg("Reel imported as pending product")
	} else {
		log.Info().Str("media_id", mediaID).Msg("Reel already imported")
	}

	return p, nil
}

// PendingProduct builds the draft product an admin later prices and publishes
func PendingProduct(mediaID string, media *model.GraphMedia) *model.Product {
	platformID := mediaID
	p := &model.Product{
		Name:        "New Drop " + shortID(mediaID),
		Description: media.Caption,
		Price:       0,
		PlatformID:  &platformID,
		Status:      model.ProductStatusPending,
		IsNew:       true,
	}

	if media.Permalink != "" {
		permalink := media.Permalink
		p.VideoURL = &permalink
	}

	thumb := media.ThumbnailURL
	if thumb == "" {
		thumb = media.MediaURL
	}
	if thumb != "" {
		p.Images = []string{thumb}
	}

	return p
}

func shortID(id string) string {
	if len(id) > 6 {
		return id[:6]
	}
	return id
}
