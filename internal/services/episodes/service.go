package episodes

import (
	"context"

	"github.com/podintel/podintel-api/internal/models"
)

type Service struct {
	repository EpisodeRepository
}

// Ensure Service implements EpisodeService interface
var _ EpisodeService = (*Service)(nil)

func NewService(repository EpisodeRepository) *Service {
	return &Service{repository: repository}
}

// GetByID returns an episode with its full processing state. This is the
// polling read for clients waiting on a run, so it never touches the feed or
// any external service.
func (s *Service) GetByID(ctx context.Context, id uint) (*models.Episode, error) {
	return s.repository.GetByID(ctx, id)
}

// ListRecent returns recently touched episodes, optionally filtered by status
func (s *Service) ListRecent(ctx context.Context, limit int, status models.EpisodeStatus) ([]models.Episode, error) {
	if limit <= 0 || limit > 100 {
		limit = 50
	}
	return s.repository.ListRecent(ctx, limit, status)
}
