package types

import (
	"github.com/podintel/podintel-api/internal/models"
	"github.com/podintel/podintel-api/internal/services/podcasts"
)

// Status constants for API responses
const (
	StatusOK        = "ok"
	StatusError     = "error"
	StatusScheduled = "scheduled"
	StatusCompleted = "completed"
	StatusConflict  = "conflict"
)

// BaseResponse contains fields common to all API responses
type BaseResponse struct {
	Status  string `json:"status"`
	Message string `json:"message,omitempty"`
}

// ErrorResponse for detailed error information
type ErrorResponse struct {
	Status  string      `json:"status"`
	Message string      `json:"message"`
	Error   string      `json:"error,omitempty"`
	Details interface{} `json:"details,omitempty"`
}

// PodcastsResponse for podcast lists
type PodcastsResponse struct {
	BaseResponse
	Podcasts []models.Podcast `json:"podcasts"`
	Count    int              `json:"count"`
}

// SinglePodcastResponse for a single podcast
type SinglePodcastResponse struct {
	BaseResponse
	Podcast *models.Podcast `json:"podcast"`
}

// EpisodeViewsResponse for feed listings merged with processing state
type EpisodeViewsResponse struct {
	BaseResponse
	Episodes []podcasts.EpisodeView `json:"episodes"`
	Count    int                    `json:"count"`
}

// EpisodesResponse for stored episode lists
type EpisodesResponse struct {
	BaseResponse
	Episodes []models.Episode `json:"episodes"`
	Count    int              `json:"count"`
}

// SingleEpisodeResponse is the polling read: status plus whatever artifacts
// exist so far
type SingleEpisodeResponse struct {
	BaseResponse
	Episode *models.Episode `json:"episode"`
}

// ProcessResponse reports how a processing request resolved
type ProcessResponse struct {
	BaseResponse
	EpisodeID     uint                 `json:"episode_id"`
	EpisodeStatus models.EpisodeStatus `json:"episode_status"`
}
