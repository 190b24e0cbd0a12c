package podcasts

import (
	"net/url"

	"github.com/gin-gonic/gin"

	"github.com/podintel/podintel-api/api/types"
)

// PostAdd registers a podcast by RSS feed URL
// @Summary      Register a podcast feed
// @Description  Fetches the RSS feed and stores the podcast. Registering the same URL again refreshes its metadata.
// @Tags         podcasts
// @Accept       json
// @Produce      json
// @Param        request body types.AddPodcastRequest true "Feed URL"
// @Success      201 {object} types.SinglePodcastResponse "Registered podcast"
// @Failure      400 {object} types.ErrorResponse "Bad request - invalid or unreachable feed"
// @Router       /api/v1/podcasts [post]
func PostAdd(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		var request types.AddPodcastRequest
		if !types.BindJSONOrError(c, &request) {
			return
		}

		parsed, err := url.Parse(request.RSSURL)
		if err != nil || parsed.Scheme == "" || parsed.Host == "" {
			types.SendBadRequest(c, "invalid feed URL format")
			return
		}

		podcast, err := deps.PodcastService.RegisterFeed(c.Request.Context(), request.RSSURL)
		if err != nil {
			types.SendBadRequest(c, "could not fetch or parse the feed: "+err.Error())
			return
		}

		types.SendCreated(c, types.SinglePodcastResponse{
			BaseResponse: types.BaseResponse{Status: types.StatusOK},
			Podcast:      podcast,
		})
	}
}
