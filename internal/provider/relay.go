package provider

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"bigbazar/internal/config"

	"github.com/google/go-querystring/query"
	"github.com/rs/zerolog/log"
)

// Relay names accepted in configuration
const (
	RelayAllOrigins = "allorigins"
	RelayCorsProxy  = "corsproxy"
	RelayDirect     = "direct"
)

var (
	// ErrUnknownRelay is returned for a relay name with no implementation
	ErrUnknownRelay = errors.New("unknown relay")
	// ErrNoContents is returned when a relay envelope carries no body
	ErrNoContents = errors.New("relay returned no contents")
	// ErrNoFinalURL is returned when a relay cannot report where a URL leads
	ErrNoFinalURL = errors.New("relay did not report a final URL")
)

// Fetcher returns the body of a target URL
type Fetcher interface {
	Fetch(ctx context.Context, target string) ([]byte, error)
}

// Relay fetches targets on our behalf and follows their redirects. Public
// CORS relays and a self-hosted resolver are interchangeable behind it.
type Relay interface {
	Fetcher
	Name() string
	// Resolve follows redirects server-side and returns the final URL
	Resolve(ctx context.Context, target string) (string, error)
}

// NewRelay builds the relay registered under name
func NewRelay(name string, cfg *config.ResolverConfig, client *http.Client) (Relay, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case RelayAllOrigins:
		return NewAllOrigins(cfg.AllOriginsURL, client, cfg.UserAgent), nil
	case RelayCorsProxy:
		return NewCorsProxy(cfg.CorsProxyURL, client, cfg.UserAgent), nil
	case RelayDirect:
		return NewDirect(client, cfg.UserAgent), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownRelay, name)
	}
}

// NewRelays builds relays in the given order, skipping unknown names
func NewRelays(names []string, cfg *config.ResolverConfig, client *http.Client) []Relay {
	relays := make([]Relay, 0, len(names))
	for _, name := range names {
		r, err := NewRelay(name, cfg, client)
		if err != nil {
			log.Warn().Err(err).Msg("Skipping relay")
			continue
		}
		relays = append(relays, r)
	}
	return relays
}

// AllOrigins wraps the target in a JSON envelope: {contents, status:{url, http_code}}
type AllOrigins struct {
	baseURL   string
	client    *http.Client
	userAgent string
}

type allOriginsQuery struct {
	URL string `url:"url"`
}

type allOriginsEnvelope struct {
	Contents *string `json:"contents"`
	Status   struct {
		URL      string `json:"url"`
		HTTPCode int    `json:"http_code"`
	} `json:"status"`
}

// NewAllOrigins creates an AllOrigins relay
func NewAllOrigins(baseURL string, client *http.Client, userAgent string) *AllOrigins {
	return &AllOrigins{
		baseURL:   strings.TrimRight(baseURL, "/"),
		client:    client,
		userAgent: userAgent,
	}
}

// Name returns the relay name
func (a *AllOrigins) Name() string {
	return RelayAllOrigins
}

func (a *AllOrigins) call(ctx context.Context, target string) (*allOriginsEnvelope, error) {
	v, err := query.Values(allOriginsQuery{URL: target})
	if err != nil {
		return nil, err
	}

	body, err := getBody(ctx, a.client, a.userAgent, a.baseURL+"/get?"+v.Encode())
	if err != nil {
		return nil, err
	}

	var env allOriginsEnvelope
	if err := json.Unmarshal(body, &env); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedResponse, err)
	}
	return &env, nil
}

// Fetch returns the relayed body of target
func (a *AllOrigins) Fetch(ctx context.Context, target string) ([]byte, error) {
	env, err := a.call(ctx, target)
	if err != nil {
		return nil, err
	}
	if code := env.Status.HTTPCode; code != 0 && (code < 200 || code > 299) {
		return nil, fmt.Errorf("%w: target answered %d", ErrUpstreamStatus, code)
	}
	if env.Contents == nil || *env.Contents == "" {
		return nil, ErrNoContents
	}
	return []byte(*env.Contents), nil
}

// Resolve returns the URL the relay ended up at after redirects
func (a *AllOrigins) Resolve(ctx context.Context, target string) (string, error) {
	env, err := a.call(ctx, target)
	if err != nil {
		return "", err
	}
	if env.Status.URL == "" {
		return "", ErrNoFinalURL
	}
	return env.Status.URL, nil
}

// CorsProxy tunnels the target transparently: {base}/?{escaped target}
type CorsProxy struct {
	baseURL   string
	client    *http.Client
	userAgent string
}

// NewCorsProxy creates a CorsProxy relay
func NewCorsProxy(baseURL string, client *http.Client, userAgent string) *CorsProxy {
	return &CorsProxy{
		baseURL:   strings.TrimRight(baseURL, "/"),
		client:    client,
		userAgent: userAgent,
	}
}

// Name returns the relay name
func (c *CorsProxy) Name() string {
	return RelayCorsProxy
}

func (c *CorsProxy) wrap(target string) string {
	return c.baseURL + "/?" + url.QueryEscape(target)
}

// Fetch returns the tunnelled body of target
func (c *CorsProxy) Fetch(ctx context.Context, target string) ([]byte, error) {
	return getBody(ctx, c.client, c.userAgent, c.wrap(target))
}

// Resolve returns the last URL requested while following redirects
func (c *CorsProxy) Resolve(ctx context.Context, target string) (string, error) {
	return finalURL(ctx, c.client, c.userAgent, c.wrap(target))
}

// Direct fetches targets itself. It is the self-hosted replacement for the
// public relays, usable wherever the process has outbound access.
type Direct struct {
	client    *http.Client
	userAgent string
}

// NewDirect creates a Direct relay
func NewDirect(client *http.Client, userAgent string) *Direct {
	return &Direct{client: client, userAgent: userAgent}
}

// Name returns the relay name
func (d *Direct) Name() string {
	return RelayDirect
}

// Fetch returns the body of target
func (d *Direct) Fetch(ctx context.Context, target string) ([]byte, error) {
	return getBody(ctx, d.client, d.userAgent, target)
}

// Resolve follows redirects from target and returns the final URL
func (d *Direct) Resolve(ctx context.Context, target string) (string, error) {
	return finalURL(ctx, d.client, d.userAgent, target)
}

func finalURL(ctx context.Context, client *http.Client, userAgent, target string) (string, error) {
	resp, err := get(ctx, client, userAgent, target)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, maxBodyBytes))

	if resp.Request == nil || resp.Request.URL == nil {
		return "", ErrNoFinalURL
	}
	return resp.Request.URL.String(), nil
}
