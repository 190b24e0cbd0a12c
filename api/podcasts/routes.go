package podcasts

import (
	"github.com/gin-gonic/gin"

	"github.com/podintel/podintel-api/api/types"
)

// RegisterRoutes registers podcast routes. processMiddleware lets the caller
// apply a stricter rate limit to the processing endpoint.
func RegisterRoutes(group *gin.RouterGroup, deps *types.Dependencies, processMiddleware gin.HandlerFunc) {
	group.POST("", PostAdd(deps))
	group.GET("", GetList(deps))
	group.GET("/:id/episodes", GetEpisodes(deps))
	group.POST("/:id/episodes/process", processMiddleware, PostProcess(deps))
}
