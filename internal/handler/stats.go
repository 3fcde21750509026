package handler

import (
	"net/http"

	"bigbazar/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

// StatsHandler reports strategy outcomes
type StatsHandler struct {
	stats service.StatsServiceInterface
}

// NewStatsHandler creates a new StatsHandler
func NewStatsHandler(stats service.StatsServiceInterface) *StatsHandler {
	return &StatsHandler{stats: stats}
}

// Strategies handles GET /api/v1/stats/strategies/:chain
// @Summary Get strategy statistics
// @Description Returns success and failure counts of each strategy of a chain
// @Tags stats
// @Produce json
// @Param chain path string true "Chain name (resolve or metadata)"
// @Success 200 {object} Response{data=[]model.StrategyStat}
// @Failure 404 {object} ErrorResponse
// @Router /api/v1/stats/strategies/{chain} [get]
func (h *StatsHandler) Strategies(c *gin.Context) {
	chainName := c.Param("chain")
	if chainName != service.ChainResolve && chainName != service.ChainMetadata {
		c.JSON(http.StatusNotFound, failure(http.StatusNotFound, "Unknown chain"))
		return
	}

	stats, err := h.stats.GetStrategyStats(c.Request.Context(), chainName)
	if err != nil {
		log.Error().Err(err).Str("chain", chainName).Msg("Failed to read strategy stats")
		c.JSON(http.StatusInternalServerError, failure(http.StatusInternalServerError, "Failed to get statistics"))
		return
	}

	c.JSON(http.StatusOK, success(stats))
}
