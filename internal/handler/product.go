package handler

import (
	"errors"
	"net/http"
	"strconv"

	"bigbazar/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

// ProductHandler serves storefront product views
type ProductHandler struct {
	catalog service.CatalogServiceInterface
}

// NewProductHandler creates a new ProductHandler
func NewProductHandler(catalog service.CatalogServiceInterface) *ProductHandler {
	return &ProductHandler{catalog: catalog}
}

// View handles GET /api/v1/products/:id/view
// @Summary Get a product as the storefront renders it
// @Description Returns the product with its effective price, player and order link
// @Tags products
// @Produce json
// @Param id path int true "Product ID"
// @Success 200 {object} Response{data=model.ProductView}
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /api/v1/products/{id}/view [get]
func (h *ProductHandler) View(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, failure(http.StatusBadRequest, "Invalid product id"))
		return
	}

	view, err := h.catalog.ProductView(c.Request.Context(), id)
	if errors.Is(err, service.ErrProductNotFound) {
		c.JSON(http.StatusNotFound, failure(http.StatusNotFound, "Product not found"))
		return
	}
	if err != nil {
		log.Error().Err(err).Int64("product_id", id).Msg("Failed to build product view")
		c.JSON(http.StatusInternalServerError, failure(http.StatusInternalServerError, "Failed to load product"))
		return
	}

	c.JSON(http.StatusOK, success(view))
}
