package middlewares

import (
	"time"

	"github.com/mayaya-dev/3awan-caferesto-api/configs"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// CORSMiddleware allows the origins from CORS_ORIGINS, or any origin for "*".
func CORSMiddleware(cfg *configs.Config) gin.HandlerFunc {
	c := cors.Config{
		AllowMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders: []string{
			"Content-Type", "Authorization", "X-Requested-With",
			"Accept", "Origin", "Cache-Control", "Pragma",
		},
		ExposeHeaders: []string{"Content-Length"},
		MaxAge:        24 * time.Hour,
	}
	if cfg.AllowAllOrigins() || len(cfg.CORSOrigins) == 0 {
		c.AllowAllOrigins = true
	} else {
		c.AllowOrigins = cfg.CORSOrigins
	}
	return cors.New(c)
}
