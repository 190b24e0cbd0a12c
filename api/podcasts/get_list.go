package podcasts

import (
	"log"

	"github.com/gin-gonic/gin"

	"github.com/podintel/podintel-api/api/types"
)

// GetList returns all registered podcasts
// @Summary      List registered podcasts
// @Tags         podcasts
// @Produce      json
// @Success      200 {object} types.PodcastsResponse "Registered podcasts"
// @Failure      500 {object} types.ErrorResponse "Internal server error"
// @Router       /api/v1/podcasts [get]
func GetList(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		podcasts, err := deps.PodcastService.List(c.Request.Context())
		if err != nil {
			log.Printf("[ERROR] Failed to list podcasts: %v", err)
			types.SendInternalError(c, "Failed to list podcasts")
			return
		}

		types.SendSuccess(c, types.PodcastsResponse{
			BaseResponse: types.BaseResponse{Status: types.StatusOK},
			Podcasts:     podcasts,
			Count:        len(podcasts),
		})
	}
}
