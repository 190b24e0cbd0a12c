package episodes

import (
	"github.com/gin-gonic/gin"

	"github.com/podintel/podintel-api/api/types"
)

// RegisterRoutes registers episode routes
func RegisterRoutes(group *gin.RouterGroup, deps *types.Dependencies) {
	group.GET("", GetRecent(deps))
	group.GET("/:id", GetByID(deps))
}
