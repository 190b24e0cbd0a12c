package episodes

import (
	"log"

	"github.com/gin-gonic/gin"

	"github.com/podintel/podintel-api/api/types"
	episodesService "github.com/podintel/podintel-api/internal/services/episodes"
)

// GetByID returns an episode's processing state and artifacts
// @Summary      Get an episode
// @Description  The polling read for processing runs: returns status, error message if failed, and the transcript and summary once available.
// @Tags         episodes
// @Produce      json
// @Param        id path int true "Episode ID"
// @Success      200 {object} types.SingleEpisodeResponse "Episode with processing state"
// @Failure      400 {object} types.ErrorResponse "Invalid episode ID"
// @Failure      404 {object} types.ErrorResponse "Episode not found"
// @Router       /api/v1/episodes/{id} [get]
func GetByID(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		episodeID, ok := types.ParseUintParam(c, "id")
		if !ok {
			return
		}

		episode, err := deps.EpisodeService.GetByID(c.Request.Context(), episodeID)
		if err != nil {
			if episodesService.IsNotFound(err) {
				types.SendNotFound(c, "Episode not found")
				return
			}
			log.Printf("[ERROR] Failed to fetch episode %d: %v", episodeID, err)
			types.SendInternalError(c, "Failed to fetch episode")
			return
		}

		types.SendSuccess(c, types.SingleEpisodeResponse{
			BaseResponse: types.BaseResponse{Status: types.StatusOK},
			Episode:      episode,
		})
	}
}
