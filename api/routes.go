// Package api wires gin routes to the service layer.
package api

import (
	"net/http"
	"sync"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/podintel/podintel-api/api/episodes"
	"github.com/podintel/podintel-api/api/health"
	"github.com/podintel/podintel-api/api/podcasts"
	"github.com/podintel/podintel-api/api/types"
	"github.com/podintel/podintel-api/api/version"
	_ "github.com/podintel/podintel-api/docs/swagger"
)

// RegisterRoutes registers all API routes
func RegisterRoutes(engine *gin.Engine, deps *types.Dependencies, rateLimiters *sync.Map, cleanupStop chan struct{}, cleanupInitialized *sync.Once) {
	// Public routes, no rate limiting
	health.RegisterRoutes(engine, deps)
	version.RegisterRoutes(engine)

	engine.GET("/docs", func(c *gin.Context) {
		c.Redirect(http.StatusMovedPermanently, "/docs/index.html")
	})
	docsGroup := engine.Group("/docs")
	docsGroup.GET("/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	engine.NoRoute(NotFoundHandler())

	v1 := engine.Group("/api/v1")

	// Podcast routes: general limit, with a tighter one on the processing
	// endpoint since each accepted request costs a full pipeline run
	podcastGroup := v1.Group("/podcasts")
	podcastGroup.Use(PerClientRateLimit(rateLimiters, cleanupStop, cleanupInitialized, 10, 20))
	processMiddleware := PerClientRateLimit(rateLimiters, cleanupStop, cleanupInitialized, 1, 3)
	podcasts.RegisterRoutes(podcastGroup, deps, processMiddleware)

	// Episode routes carry the polling traffic; keep the limit generous
	episodeGroup := v1.Group("/episodes")
	episodeGroup.Use(PerClientRateLimit(rateLimiters, cleanupStop, cleanupInitialized, 20, 40))
	episodes.RegisterRoutes(episodeGroup, deps)
}

// NotFoundHandler handles 404 errors
func NotFoundHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{
			"status":  "error",
			"message": "The requested endpoint was not found",
			"path":    c.Request.URL.Path,
		})
	}
}
