package episodes

import (
	"log"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/podintel/podintel-api/api/types"
	"github.com/podintel/podintel-api/internal/models"
)

// GetRecent returns recently touched episodes
// @Summary      List recent episodes
// @Tags         episodes
// @Produce      json
// @Param        limit query int false "Max results (default 50)"
// @Param        status query string false "Filter by status (pending, downloading, transcribing, summarizing, completed, failed)"
// @Success      200 {object} types.EpisodesResponse "Recent episodes"
// @Failure      500 {object} types.ErrorResponse "Internal server error"
// @Router       /api/v1/episodes [get]
func GetRecent(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		limit := 50
		if raw := c.Query("limit"); raw != "" {
			if parsed, err := strconv.Atoi(raw); err == nil {
				limit = parsed
			}
		}

		status := models.EpisodeStatus(c.Query("status"))

		episodes, err := deps.EpisodeService.ListRecent(c.Request.Context(), limit, status)
		if err != nil {
			log.Printf("[ERROR] Failed to list recent episodes: %v", err)
			types.SendInternalError(c, "Failed to list episodes")
			return
		}

		types.SendSuccess(c, types.EpisodesResponse{
			BaseResponse: types.BaseResponse{Status: types.StatusOK},
			Episodes:     episodes,
			Count:        len(episodes),
		})
	}
}
