package provider

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"bigbazar/internal/model"

	"github.com/google/go-querystring/query"
)

// TikWM is the structured video-data API. The same client works directly or
// through a relay depending on the Fetcher it is given.
type TikWM struct {
	baseURL string
	fetcher Fetcher
}

type tikwmQuery struct {
	URL string `url:"url"`
}

type tikwmResponse struct {
	Code int    `json:"code"`
	Msg  string `json:"msg"`
	Data *struct {
		ID     flexString `json:"id"`
		Title  string     `json:"title"`
		Cover  string     `json:"cover"`
		Play   string     `json:"play"`
		Author struct {
			UniqueID string `json:"unique_id"`
		} `json:"author"`
	} `json:"data"`
}

// flexString accepts both JSON strings and numbers
type flexString string

func (f *flexString) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*f = ""
		return nil
	}
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*f = flexString(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return err
	}
	*f = flexString(n.String())
	return nil
}

// NewTikWM creates a TikWM client
func NewTikWM(baseURL string, fetcher Fetcher) *TikWM {
	return &TikWM{
		baseURL: strings.TrimRight(baseURL, "/"),
		fetcher: fetcher,
	}
}

// RequestURL returns the API URL for a raw link
func (c *TikWM) RequestURL(link string) (string, error) {
	v, err := query.Values(tikwmQuery{URL: link})
	if err != nil {
		return "", err
	}
	return c.baseURL + "/api/?" + v.Encode(), nil
}

// Lookup asks the API about link. The link may be short; the API follows it.
func (c *TikWM) Lookup(ctx context.Context, link string) (*model.VideoMetadata, error) {
	target, err := c.RequestURL(link)
	if err != nil {
		return nil, err
	}

	body, err := c.fetcher.Fetch(ctx, target)
	if err != nil {
		return nil, err
	}

	var resp tikwmResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedResponse, err)
	}
	if resp.Code != 0 || resp.Data == nil {
		return nil, fmt.Errorf("%w: code=%d msg=%s", ErrAPIFailure, resp.Code, resp.Msg)
	}

	d := resp.Data
	meta := &model.VideoMetadata{
		ID:           string(d.ID),
		ThumbnailURL: d.Cover,
		Title:        d.Title,
		VideoURL:     d.Play,
		Author:       d.Author.UniqueID,
	}
	meta.CanonicalURL = CanonicalTikTokURL(meta.Author, meta.ID)

	return meta, nil
}

// CanonicalTikTokURL builds https://www.tiktok.com/@{author}/video/{id}. A
// placeholder author is used when unknown; TikTok only routes on the id.
func CanonicalTikTokURL(author, id string) string {
	if id == "" {
		return ""
	}
	if author == "" {
		author = "user"
	}
	return "https://www.tiktok.com/@" + author + "/video/" + id
}
