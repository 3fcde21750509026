package handler

import (
	"net/http"
	"strconv"
	"strings"

	"bigbazar/internal/model"
	"bigbazar/internal/service"

	"github.com/gin-gonic/gin"
)

// VideoHandler exposes link resolution, metadata and embed lookups
type VideoHandler struct {
	resolver service.LinkResolverInterface
	metadata service.MetadataServiceInterface
	embed    service.EmbedServiceInterface
}

// NewVideoHandler creates a new VideoHandler
func NewVideoHandler(resolver service.LinkResolverInterface, metadata service.MetadataServiceInterface, embed service.EmbedServiceInterface) *VideoHandler {
	return &VideoHandler{
		resolver: resolver,
		metadata: metadata,
		embed:    embed,
	}
}

// Resolve handles POST /api/v1/video/resolve
// @Summary Resolve a video link
// @Description Follows a short link to its canonical form. Unresolvable links are returned unchanged.
// @Tags video
// @Accept json
// @Produce json
// @Param request body model.VideoLinkRequest true "Video link"
// @Success 200 {object} Response{data=model.ResolveResponse}
// @Failure 400 {object} ErrorResponse
// @Router /api/v1/video/resolve [post]
func (h *VideoHandler) Resolve(c *gin.Context) {
	var req model.VideoLinkRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, failure(http.StatusBadRequest, "Invalid request: "+err.Error()))
		return
	}

	ctx := c.Request.Context()
	link := strings.TrimSpace(req.URL)

	resp := &model.ResolveResponse{
		OriginalURL: link,
		IsShortLink: h.resolver.IsShortLink(link),
	}
	resp.ResolvedURL, resp.Ref = h.resolver.ResolveRef(ctx, link)

	c.JSON(http.StatusOK, success(resp))
}

// Metadata handles POST /api/v1/video/metadata
// @Summary Fetch video metadata
// @Description Returns thumbnail, title and author of a video, or null data when nothing could be found
// @Tags video
// @Accept json
// @Produce json
// @Param request body model.VideoLinkRequest true "Video link"
// @Success 200 {object} Response{data=model.VideoMetadata}
// @Failure 400 {object} ErrorResponse
// @Router /api/v1/video/metadata [post]
func (h *VideoHandler) Metadata(c *gin.Context) {
	var req model.VideoLinkRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, failure(http.StatusBadRequest, "Invalid request: "+err.Error()))
		return
	}

	meta := h.metadata.FetchMetadata(c.Request.Context(), req.URL)
	if meta == nil {
		c.JSON(http.StatusOK, success(nil))
		return
	}

	c.JSON(http.StatusOK, success(meta))
}

// Embed handles GET /api/v1/video/embed
// @Summary Build a player URL
// @Description Returns the iframe player for a video link
// @Tags video
// @Produce json
// @Param url query string true "Video link"
// @Param autoplay query bool false "Autoplay, default true"
// @Success 200 {object} Response{data=model.EmbedDescriptor}
// @Failure 400 {object} ErrorResponse
// @Router /api/v1/video/embed [get]
func (h *VideoHandler) Embed(c *gin.Context) {
	link := strings.TrimSpace(c.Query("url"))
	if link == "" {
		c.JSON(http.StatusBadRequest, failure(http.StatusBadRequest, "url is required"))
		return
	}

	autoplay := true
	if raw := c.Query("autoplay"); raw != "" {
		v, err := strconv.ParseBool(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, failure(http.StatusBadRequest, "autoplay must be a boolean"))
			return
		}
		autoplay = v
	}

	desc := h.embed.Describe(c.Request.Context(), link, autoplay)
	if desc == nil {
		c.JSON(http.StatusOK, success(nil))
		return
	}

	c.JSON(http.StatusOK, success(desc))
}
