package types

// AddPodcastRequest registers a feed by URL
type AddPodcastRequest struct {
	RSSURL string `json:"rss_url" binding:"required" example:"https://example.com/feed.xml"`
}

// ProcessEpisodeRequest asks for a pipeline run on one feed episode
type ProcessEpisodeRequest struct {
	EpisodeGUID string `json:"episode_guid" binding:"required" example:"ep-001"`
}
