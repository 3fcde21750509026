package provider

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"bigbazar/internal/model"

	"github.com/google/go-querystring/query"
)

// ErrMissingAccessToken is returned when no Graph API token is configured
var ErrMissingAccessToken = errors.New("instagram access token is not configured")

const graphMediaFields = "permalink,thumbnail_url,media_url,caption,media_type"

// Graph looks up Instagram media through the Graph API
type Graph struct {
	baseURL   string
	version   string
	token     string
	client    *http.Client
	userAgent string
}

type graphQuery struct {
	Fields      string `url:"fields"`
	AccessToken string `url:"access_token"`
}

// NewGraph creates a Graph API client
func NewGraph(baseURL, version, token string, client *http.Client, userAgent string) *Graph {
	return &Graph{
		baseURL:   strings.TrimRight(baseURL, "/"),
		version:   strings.Trim(version, "/"),
		token:     token,
		client:    client,
		userAgent: userAgent,
	}
}

// GetMedia fetches permalink, thumbnail and caption of a media object
func (g *Graph) GetMedia(ctx context.Context, mediaID string) (*model.GraphMedia, error) {
	if g.token == "" {
		return nil, ErrMissingAccessToken
	}

	v, err := query.Values(graphQuery{Fields: graphMediaFields, AccessToken: g.token})
	if err != nil {
		return nil, err
	}
	target := fmt.Sprintf("%s/%s/%s?%s", g.baseURL, g.version, url.PathEscape(mediaID), v.Encode())

	body, err := getBody(ctx, g.client, g.userAgent, target)
	if err != nil {
		return nil, fmt.Errorf("graph lookup of %s: %w", mediaID, err)
	}

	var media model.GraphMedia
	if err := json.Unmarshal(body, &media); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedResponse, err)
	}
	if media.ID == "" {
		media.ID = mediaID
	}

	return &media, nil
}
