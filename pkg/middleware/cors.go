package middleware

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// CORS lets the storefront call the API and the video proxy from the browser
func CORS() gin.HandlerFunc {
	return cors.New(cors.Config{
		AllowAllOrigins: true,
		AllowMethods:    []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:    []string{"Origin", "Content-Type", "Accept", "Authorization", "X-Requested-With", "Range", RequestIDHeader},
		ExposeHeaders:   []string{"Content-Length", "Content-Range", RequestIDHeader},
		MaxAge:          12 * time.Hour,
	})
}
