package episodes

import (
	"context"

	"github.com/podintel/podintel-api/internal/models"
)

// EpisodeRepository handles episode persistence. TransitionStatus is the
// concurrency primitive for the whole pipeline: the row's status column acts
// as the lock, and a transition only succeeds when the episode is currently
// in one of the expected states.
type EpisodeRepository interface {
	Create(ctx context.Context, episode *models.Episode) error
	Update(ctx context.Context, episode *models.Episode) error
	GetByID(ctx context.Context, id uint) (*models.Episode, error)
	GetByPodcastAndGUID(ctx context.Context, podcastID uint, guid string) (*models.Episode, error)
	ListByPodcastID(ctx context.Context, podcastID uint) ([]models.Episode, error)
	ListRecent(ctx context.Context, limit int, status models.EpisodeStatus) ([]models.Episode, error)

	// TransitionStatus atomically moves an episode from one of the expected
	// statuses to the target status, applying extra column updates in the
	// same statement. Returns ErrConflict when the episode is in none of the
	// expected states.
	TransitionStatus(ctx context.Context, id uint, from []models.EpisodeStatus, to models.EpisodeStatus, updates map[string]interface{}) error
}

// EpisodeService exposes episode reads for the HTTP layer
type EpisodeService interface {
	GetByID(ctx context.Context, id uint) (*models.Episode, error)
	ListRecent(ctx context.Context, limit int, status models.EpisodeStatus) ([]models.Episode, error)
}
