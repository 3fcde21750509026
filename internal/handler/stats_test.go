package handler

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"bigbazar/internal/mocks"
	"bigbazar/internal/model"
)

func TestStatsHandler_Strategies(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	stats := mocks.NewMockStatsServiceInterface(ctrl)
	router := gin.New()
	router.GET("/api/v1/stats/strategies/:chain", NewStatsHandler(stats).Strategies)

	get := func(path string) *httptest.ResponseRecorder {
		w := httptest.NewRecorder()
		req, _ := http.NewRequest(http.MethodGet, path, nil)
		router.ServeHTTP(w, req)
		return w
	}

	t.Run("unknown chain", func(t *testing.T) {
		assert.Equal(t, http.StatusNotFound, get("/api/v1/stats/strategies/other").Code)
	})

	t.Run("resolve chain", func(t *testing.T) {
		stats.EXPECT().GetStrategyStats(gomock.Any(), "resolve").Return([]model.StrategyStat{
			{Strategy: "tikwm", Success: 9, Failure: 1},
			{Strategy: "allorigins", Success: 1, Failure: 0},
		}, nil)

		w := get("/api/v1/stats/strategies/resolve")
		assert.Equal(t, http.StatusOK, w.Code)

		var data []model.StrategyStat
		decodeEnvelope(t, w.Body.Bytes(), &data)
		assert.Len(t, data, 2)
		assert.Equal(t, "tikwm", data[0].Strategy)
		assert.Equal(t, int64(9), data[0].Success)
	})

	t.Run("redis failure", func(t *testing.T) {
		stats.EXPECT().GetStrategyStats(gomock.Any(), "metadata").Return(nil, assert.AnError)
		assert.Equal(t, http.StatusInternalServerError, get("/api/v1/stats/strategies/metadata").Code)
	})
}
