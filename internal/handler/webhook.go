package handler

import (
	"context"
	"net/http"
	"time"

	"bigbazar/internal/model"
	"bigbazar/internal/mq"
	"bigbazar/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

// inlineImportTimeout bounds an import that runs without a queue
const inlineImportTimeout = 30 * time.Second

// WebhookHandler receives Instagram media notifications
type WebhookHandler struct {
	verifyToken string
	bloom       service.BloomServiceInterface
	producer    mq.ProducerInterface
	importer    service.ReelImportServiceInterface
}

// NewWebhookHandler creates a new WebhookHandler. bloom and producer may be
// nil; without a producer reels are imported in the background.
func NewWebhookHandler(
	verifyToken string,
	bloom service.BloomServiceInterface,
	producer mq.ProducerInterface,
	importer service.ReelImportServiceInterface,
) *WebhookHandler {
	return &WebhookHandler{
		verifyToken: verifyToken,
		bloom:       bloom,
		producer:    producer,
		importer:    importer,
	}
}

// Verify handles GET /webhook/instagram
// @Summary Verify the webhook subscription
// @Description Echoes hub.challenge when hub.verify_token matches
// @Tags webhook
// @Produce plain
// @Param hub.mode query string true "subscribe"
// @Param hub.verify_token query string true "Verify token"
// @Param hub.challenge query string true "Challenge"
// @Success 200 {string} string
// @Failure 403 {object} ErrorResponse
// @Router /webhook/instagram [get]
func (h *WebhookHandler) Verify(c *gin.Context) {
	mode := c.Query("hub.mode")
	token := c.Query("hub.verify_token")

	if mode != "subscribe" || (h.verifyToken != "" && token != h.verifyToken) {
		c.JSON(http.StatusForbidden, failure(http.StatusForbidden, "Verification failed"))
		return
	}

	c.String(http.StatusOK, c.Query("hub.challenge"))
}

// Receive handles POST /webhook/instagram
// @Summary Receive a media notification
// @Description Queues the notified reel for import as a pending product
// @Tags webhook
// @Accept json
// @Produce json
// @Param payload body model.InstagramWebhookPayload true "Webhook payload"
// @Success 200 {object} Response
// @Failure 400 {object} ErrorResponse
// @Router /webhook/instagram [post]
func (h *WebhookHandler) Receive(c *gin.Context) {
	var payload model.InstagramWebhookPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, failure(http.StatusBadRequest, "Invalid payload: "+err.Error()))
		return
	}

	mediaID := payload.MediaID()
	if mediaID == "" {
		c.JSON(http.StatusOK, Response{Code: 0, Message: "ignored"})
		return
	}

	ctx := c.Request.Context()

	if h.seen(ctx, mediaID) {
		log.Debug().Str("media_id", mediaID).Msg("Duplicate webhook notification")
		c.JSON(http.StatusOK, Response{Code: 0, Message: "duplicate"})
		return
	}

	msg := &model.ReelImportMessage{
		MediaID:    mediaID,
		ReceivedAt: time.Now().UTC(),
	}

	if h.producer != nil {
		err := h.producer.SendReelImport(ctx, msg)
		if err == nil {
			// the consumer retries failed imports itself
			h.remember(ctx, mediaID)
			c.JSON(http.StatusOK, Response{Code: 0, Message: "queued"})
			return
		}
		log.Error().Err(err).Str("media_id", mediaID).Msg("Failed to queue reel import, importing inline")
	}

	// the request context ends with the response
	go h.importInline(context.WithoutCancel(ctx), mediaID)

	c.JSON(http.StatusOK, Response{Code: 0, Message: "accepted"})
}

// seen reports whether mediaID was already queued or imported. A failed
// lookup counts as unseen.
func (h *WebhookHandler) seen(ctx context.Context, mediaID string) bool {
	if h.bloom == nil {
		return false
	}
	seen, err := h.bloom.Exists(ctx, mediaID)
	if err != nil {
		log.Warn().Err(err).Str("media_id", mediaID).Msg("Dedupe check failed, importing anyway")
		return false
	}
	return seen
}

// remember records mediaID once it is queued or imported, so a failed import
// is retried on the next delivery
func (h *WebhookHandler) remember(ctx context.Context, mediaID string) {
	if h.bloom == nil {
		return
	}
	if err := h.bloom.Add(ctx, mediaID); err != nil {
		log.Warn().Err(err).Str("media_id", mediaID).Msg("Failed to record media id")
	}
}

func (h *WebhookHandler) importInline(ctx context.Context, mediaID string) {
	ctx, cancel := context.WithTimeout(ctx, inlineImportTimeout)
	defer cancel()

	if _, err := h.importer.Import(ctx, mediaID); err != nil {
		log.Error().Err(err).Str("media_id", mediaID).Msg("Failed to import reel")
		return
	}
	h.remember(ctx, mediaID)
}
