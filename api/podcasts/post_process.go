package podcasts

import (
	"errors"
	"log"

	"github.com/gin-gonic/gin"

	"github.com/podintel/podintel-api/api/types"
	"github.com/podintel/podintel-api/internal/services/episodes"
	"github.com/podintel/podintel-api/internal/services/pipeline"
	podcastsService "github.com/podintel/podintel-api/internal/services/podcasts"
)

// PostProcess requests a pipeline run for one of the podcast's episodes
// @Summary      Process an episode
// @Description  Schedules download, transcription, and summarization for the episode. Completed episodes return 200 without a new run; episodes already being processed return 409.
// @Tags         podcasts
// @Accept       json
// @Produce      json
// @Param        id path int true "Podcast ID"
// @Param        request body types.ProcessEpisodeRequest true "Episode GUID from the feed"
// @Success      200 {object} types.ProcessResponse "Episode already completed"
// @Success      202 {object} types.ProcessResponse "Processing scheduled"
// @Failure      400 {object} types.ErrorResponse "Bad request"
// @Failure      404 {object} types.ErrorResponse "Podcast or episode not found"
// @Failure      409 {object} types.ErrorResponse "A run is already in progress"
// @Router       /api/v1/podcasts/{id}/episodes/process [post]
func PostProcess(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		podcastID, ok := types.ParseUintParam(c, "id")
		if !ok {
			return
		}

		var request types.ProcessEpisodeRequest
		if !types.BindJSONOrError(c, &request) {
			return
		}

		episode, outcome, err := deps.PipelineService.RequestProcessing(
			c.Request.Context(), podcastID, request.EpisodeGUID)
		if err != nil {
			if errors.Is(err, podcastsService.ErrPodcastNotFound) {
				types.SendNotFound(c, "Podcast not found")
				return
			}
			if errors.Is(err, episodes.ErrEpisodeNotFound) {
				types.SendNotFound(c, "Episode not found in the podcast's feed")
				return
			}
			log.Printf("[ERROR] Processing request failed for podcast %d guid %s: %v",
				podcastID, request.EpisodeGUID, err)
			types.SendInternalError(c, "Failed to schedule processing")
			return
		}

		switch outcome {
		case pipeline.OutcomeAlreadyCompleted:
			types.SendSuccess(c, types.ProcessResponse{
				BaseResponse:  types.BaseResponse{Status: types.StatusCompleted, Message: "Episode is already processed"},
				EpisodeID:     episode.ID,
				EpisodeStatus: episode.Status,
			})
		case pipeline.OutcomeConflict:
			types.SendConflict(c, "Episode is already being processed")
		default:
			types.SendAccepted(c, types.ProcessResponse{
				BaseResponse:  types.BaseResponse{Status: types.StatusScheduled, Message: "Processing scheduled"},
				EpisodeID:     episode.ID,
				EpisodeStatus: episode.Status,
			})
		}
	}
}
