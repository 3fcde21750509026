// Package provider talks to the third-party services the video pipeline
// depends on: CORS relays, the structured video API, oEmbed and the Graph API.
package provider

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"
)

const maxBodyBytes = 4 << 20

var (
	// ErrUpstreamStatus is returned when a remote service answers with a non-2xx status
	ErrUpstreamStatus = errors.New("upstream returned non-success status")
	// ErrMalformedResponse is returned when a remote body cannot be decoded
	ErrMalformedResponse = errors.New("malformed upstream response")
	// ErrAPIFailure is returned when a JSON API reports failure in its payload
	ErrAPIFailure = errors.New("upstream API reported failure")
)

// NewHTTPClient creates the client shared by every provider
func NewHTTPClient(timeout time.Duration) *http.Client {
	return &http.Client{Timeout: timeout}
}

// get performs a GET and rejects non-2xx responses. The caller closes the body.
func get(ctx context.Context, client *http.Client, userAgent, target string) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build request: %w", err)
	}
	if userAgent != "" {
		req.Header.Set("User-Agent", userAgent)
	}

	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		resp.Body.Close()
		return nil, fmt.Errorf("%w: %d %s", ErrUpstreamStatus, resp.StatusCode, string(snippet))
	}

	return resp, nil
}

// getBody performs a GET and returns the whole body
func getBody(ctx context.Context, client *http.Client, userAgent, target string) ([]byte, error) {
	resp, err := get(ctx, client, userAgent, target)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return nil, fmt.Errorf("failed to read body: %w", err)
	}
	return body, nil
}
