package podcasts

import (
	"errors"
	"log"

	"github.com/gin-gonic/gin"

	"github.com/podintel/podintel-api/api/types"
	podcastsService "github.com/podintel/podintel-api/internal/services/podcasts"
)

// GetEpisodes lists a podcast's feed episodes merged with processing state
// @Summary      List a podcast's episodes
// @Description  Reads the live RSS feed and merges each episode with its stored processing state. Unprocessed episodes have status "new".
// @Tags         podcasts
// @Produce      json
// @Param        id path int true "Podcast ID"
// @Success      200 {object} types.EpisodeViewsResponse "Feed episodes with processing state"
// @Failure      400 {object} types.ErrorResponse "Invalid podcast ID"
// @Failure      404 {object} types.ErrorResponse "Podcast not found"
// @Failure      502 {object} types.ErrorResponse "Feed unreachable"
// @Router       /api/v1/podcasts/{id}/episodes [get]
func GetEpisodes(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		podcastID, ok := types.ParseUintParam(c, "id")
		if !ok {
			return
		}

		views, err := deps.PodcastService.ListEpisodes(c.Request.Context(), podcastID)
		if err != nil {
			if errors.Is(err, podcastsService.ErrPodcastNotFound) {
				types.SendNotFound(c, "Podcast not found")
				return
			}
			if errors.Is(err, podcastsService.ErrInvalidFeed) {
				log.Printf("[WARN] Feed fetch failed for podcast %d: %v", podcastID, err)
				c.JSON(502, types.ErrorResponse{
					Status: types.StatusError,
					Error:  "The podcast's feed could not be fetched",
				})
				return
			}
			log.Printf("[ERROR] Failed to list episodes for podcast %d: %v", podcastID, err)
			types.SendInternalError(c, "Failed to list episodes")
			return
		}

		types.SendSuccess(c, types.EpisodeViewsResponse{
			BaseResponse: types.BaseResponse{Status: types.StatusOK},
			Episodes:     views,
			Count:        len(views),
		})
	}
}
