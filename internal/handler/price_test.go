package handler

import (
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bigbazar/internal/model"
)

func newPriceRouter() *gin.Engine {
	router := gin.New()
	router.POST("/api/v1/price/calculate", NewPriceHandler().Calculate)
	return router
}

func TestPriceHandler_Calculate(t *testing.T) {
	router := newPriceRouter()

	t.Run("flash sale overrides product discount", func(t *testing.T) {
		body := `{"product":{"price":500,"original_price":400},"flash_sale":{"active":true,"percentage":20,"end_time":""}}`
		w := postJSON(router, "/api/v1/price/calculate", body)
		assert.Equal(t, http.StatusOK, w.Code)

		var data model.PriceResult
		decodeEnvelope(t, w.Body.Bytes(), &data)
		assert.Equal(t, 400.0, data.Price)
		require.NotNil(t, data.OriginalPrice)
		assert.Equal(t, 500.0, *data.OriginalPrice)
		assert.Equal(t, 20.0, data.DiscountPercent)
		assert.True(t, data.HasDiscount)
		assert.True(t, data.IsFlashSale)
	})

	t.Run("no flash sale", func(t *testing.T) {
		w := postJSON(router, "/api/v1/price/calculate", `{"product":{"price":300}}`)
		assert.Equal(t, http.StatusOK, w.Code)

		var data model.PriceResult
		decodeEnvelope(t, w.Body.Bytes(), &data)
		assert.Equal(t, 300.0, data.Price)
		assert.Nil(t, data.OriginalPrice)
		assert.False(t, data.HasDiscount)
	})

	t.Run("percentage above 100", func(t *testing.T) {
		body := `{"product":{"price":500},"flash_sale":{"active":true,"percentage":150}}`
		w := postJSON(router, "/api/v1/price/calculate", body)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("negative percentage", func(t *testing.T) {
		body := `{"product":{"price":500},"flash_sale":{"active":true,"percentage":-5}}`
		w := postJSON(router, "/api/v1/price/calculate", body)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("invalid JSON body", func(t *testing.T) {
		w := postJSON(router, "/api/v1/price/calculate", "{")
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}
