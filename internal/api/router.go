package api

import (
	"net/http"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"stablecoin-view/internal/observability"
)

// SetupRouter configures the gin router with all API routes.
func SetupRouter(handler *Handler, allowedOrigins []string) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())

	corsConfig := cors.DefaultConfig()
	if len(allowedOrigins) > 0 {
		corsConfig.AllowOrigins = allowedOrigins
	} else {
		corsConfig.AllowAllOrigins = true
	}
	router.Use(cors.New(corsConfig))

	v1 := router.Group("/api/v1")
	{
		v1.GET("/view-model", handler.GetViewModel)
		v1.GET("/assets", handler.GetAssets)
		v1.GET("/platforms", handler.GetPlatforms)
		v1.POST("/transform", handler.PostTransform)
		v1.POST("/reset", handler.PostReset)
	}

	router.GET("/health", func(c *gin.Context) {
		c.String(http.StatusOK, "ok")
	})
	router.GET("/metrics", gin.WrapH(observability.Handler()))

	return router
}
