package handler

import (
	"net/http"

	"bigbazar/internal/model"
	"bigbazar/internal/service"

	"github.com/gin-gonic/gin"
)

// PriceHandler exposes the price calculator
type PriceHandler struct{}

// NewPriceHandler creates a new PriceHandler
func NewPriceHandler() *PriceHandler {
	return &PriceHandler{}
}

// Calculate handles POST /api/v1/price/calculate
// @Summary Calculate the displayed price
// @Description Applies an active flash sale or the product's own discount
// @Tags price
// @Accept json
// @Produce json
// @Param request body model.PriceRequest true "Product and flash sale"
// @Success 200 {object} Response{data=model.PriceResult}
// @Failure 400 {object} ErrorResponse
// @Router /api/v1/price/calculate [post]
func (h *PriceHandler) Calculate(c *gin.Context) {
	var req model.PriceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, failure(http.StatusBadRequest, "Invalid request: "+err.Error()))
		return
	}

	if fs := req.FlashSale; fs != nil && (fs.Percentage < 0 || fs.Percentage > 100) {
		c.JSON(http.StatusBadRequest, failure(http.StatusBadRequest, "flash_sale.percentage must be between 0 and 100"))
		return
	}

	c.JSON(http.StatusOK, success(service.CalculatePrice(req.Product, req.FlashSale)))
}
