package podcasts

import (
	"context"
	"time"

	"github.com/podintel/podintel-api/internal/models"
)

// PodcastRepository handles podcast persistence
type PodcastRepository interface {
	Upsert(ctx context.Context, podcast *models.Podcast) error
	GetByID(ctx context.Context, id uint) (*models.Podcast, error)
	GetByRSSURL(ctx context.Context, rssURL string) (*models.Podcast, error)
	List(ctx context.Context) ([]models.Podcast, error)
}

// EpisodeStateStore is the slice of episode persistence the podcast service
// needs to merge feed listings with processing state
type EpisodeStateStore interface {
	ListByPodcastID(ctx context.Context, podcastID uint) ([]models.Episode, error)
}

// EpisodeView is a feed episode merged with its stored processing state.
// Episodes never requested for processing carry status "new" and a zero ID.
type EpisodeView struct {
	ID           uint                 `json:"id,omitempty"`
	GUID         string               `json:"guid"`
	Title        string               `json:"title"`
	Description  string               `json:"description"`
	AudioURL     string               `json:"audio_url"`
	Published    *time.Time           `json:"published,omitempty"`
	Duration     *int                 `json:"duration,omitempty"`
	Status       models.EpisodeStatus `json:"status"`
	ErrorMessage string               `json:"error_message,omitempty"`
}

// PodcastService manages podcast registration and feed listings
type PodcastService interface {
	RegisterFeed(ctx context.Context, rssURL string) (*models.Podcast, error)
	List(ctx context.Context) ([]models.Podcast, error)
	GetByID(ctx context.Context, id uint) (*models.Podcast, error)
	ListEpisodes(ctx context.Context, podcastID uint) ([]EpisodeView, error)
}
