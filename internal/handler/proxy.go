package handler

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"bigbazar/pkg/util"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

const maxProxyRedirects = 10

var (
	// ErrHostNotAllowed is returned when a redirect leaves the allowed CDN hosts
	ErrHostNotAllowed = errors.New("host not allowed")
)

// passthroughHeaders are copied from the upstream video response
var passthroughHeaders = []string{"Content-Type", "Content-Length", "Content-Range", "Last-Modified", "ETag"}

// ProxyHandler streams CDN videos that refuse cross-origin playback
type ProxyHandler struct {
	client       *http.Client
	allowedHosts []string
}

// NewProxyHandler creates a new ProxyHandler. headerTimeout bounds the wait
// for upstream response headers; the body streams for as long as the caller
// stays connected.
func NewProxyHandler(allowedHosts []string, headerTimeout time.Duration) *ProxyHandler {
	h := &ProxyHandler{allowedHosts: allowedHosts}

	transport := http.DefaultTransport.(*http.Transport).Clone()
	transport.ResponseHeaderTimeout = headerTimeout

	h.client = &http.Client{
		Transport:     transport,
		CheckRedirect: h.checkRedirect,
	}
	return h
}

func (h *ProxyHandler) allowed(u *url.URL) bool {
	return (u.Scheme == "http" || u.Scheme == "https") && util.HostMatches(u.Hostname(), h.allowedHosts...)
}

// checkRedirect keeps every hop on the allowed hosts
func (h *ProxyHandler) checkRedirect(req *http.Request, via []*http.Request) error {
	if len(via) >= maxProxyRedirects {
		return fmt.Errorf("stopped after %d redirects", maxProxyRedirects)
	}
	if !h.allowed(req.URL) {
		return fmt.Errorf("%w: redirect to %s", ErrHostNotAllowed, req.URL.Host)
	}
	return nil
}

// Video handles GET /proxy-video
// @Summary Proxy a video
// @Description Streams a video from an allowed CDN host with CORS and range support
// @Tags proxy
// @Produce octet-stream
// @Param url query string true "Video URL"
// @Success 200 {file} file
// @Success 206 {file} file
// @Failure 400 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 502 {object} ErrorResponse
// @Router /proxy-video [get]
func (h *ProxyHandler) Video(c *gin.Context) {
	raw := strings.TrimSpace(c.Query("url"))
	if raw == "" {
		c.JSON(http.StatusBadRequest, failure(http.StatusBadRequest, "url is required"))
		return
	}

	target, err := url.Parse(raw)
	if err != nil || (target.Scheme != "http" && target.Scheme != "https") || target.Host == "" {
		c.JSON(http.StatusBadRequest, failure(http.StatusBadRequest, "Invalid url"))
		return
	}

	if !h.allowed(target) {
		c.JSON(http.StatusForbidden, failure(http.StatusForbidden, "Host not allowed"))
		return
	}

	req, err := http.NewRequestWithContext(c.Request.Context(), http.MethodGet, target.String(), nil)
	if err != nil {
		c.JSON(http.StatusBadRequest, failure(http.StatusBadRequest, "Invalid url"))
		return
	}
	if r := c.GetHeader("Range"); r != "" {
		req.Header.Set("Range", r)
	}

	resp, err := h.client.Do(req)
	if errors.Is(err, ErrHostNotAllowed) {
		log.Warn().Err(err).Str("url", raw).Msg("Video proxy redirect rejected")
		c.JSON(http.StatusForbidden, failure(http.StatusForbidden, "Host not allowed"))
		return
	}
	if err != nil {
		log.Warn().Err(err).Str("url", raw).Msg("Video proxy upstream failed")
		c.JSON(http.StatusBadGateway, failure(http.StatusBadGateway, "Upstream unavailable"))
		return
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusBadRequest {
		log.Warn().Int("status", resp.StatusCode).Str("url", raw).Msg("Video proxy upstream rejected request")
		c.JSON(http.StatusBadGateway, failure(http.StatusBadGateway, "Upstream returned "+resp.Status))
		return
	}

	header := c.Writer.Header()
	for _, name := range passthroughHeaders {
		if v := resp.Header.Get(name); v != "" {
			header.Set(name, v)
		}
	}
	header.Set("Access-Control-Allow-Origin", "*")
	header.Set("Cache-Control", "public, max-age=31536000")
	header.Set("Accept-Ranges", "bytes")

	c.Status(resp.StatusCode)
	if _, err := io.Copy(c.Writer, resp.Body); err != nil && c.Request.Context().Err() == nil {
		log.Debug().Err(err).Str("url", raw).Msg("Video proxy stream interrupted")
	}
}
