package provider

import (
	"context"
	"encoding/json"
	"fmt"
	"regexp"
	"strings"

	"bigbazar/internal/model"

	"github.com/google/go-querystring/query"
)

var embedVideoIDPattern = regexp.MustCompile(`data-video-id="(\d+)"`)

// OEmbed reads the platform's oEmbed endpoint
type OEmbed struct {
	endpoint string
	fetcher  Fetcher
}

type oembedQuery struct {
	URL string `url:"url"`
}

type oembedResponse struct {
	Title          string `json:"title"`
	AuthorName     string `json:"author_name"`
	AuthorUniqueID string `json:"author_unique_id"`
	ThumbnailURL   string `json:"thumbnail_url"`
	HTML           string `json:"html"`
}

// NewOEmbed creates an oEmbed client
func NewOEmbed(endpoint string, fetcher Fetcher) *OEmbed {
	return &OEmbed{
		endpoint: strings.TrimRight(endpoint, "/"),
		fetcher:  fetcher,
	}
}

// Lookup expects a canonical link; oEmbed does not follow short links.
// ID is left empty when the embed markup does not carry it.
func (c *OEmbed) Lookup(ctx context.Context, canonicalURL string) (*model.VideoMetadata, error) {
	v, err := query.Values(oembedQuery{URL: canonicalURL})
	if err != nil {
		return nil, err
	}

	body, err := c.fetcher.Fetch(ctx, c.endpoint+"?"+v.Encode())
	if err != nil {
		return nil, err
	}

	var resp oembedResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedResponse, err)
	}

	meta := &model.VideoMetadata{
		ThumbnailURL: resp.ThumbnailURL,
		Title:        resp.Title,
		Author:       resp.AuthorUniqueID,
	}
	if m := embedVideoIDPattern.FindStringSubmatch(resp.HTML); m != nil {
		meta.ID = m[1]
	}

	return meta, nil
}
