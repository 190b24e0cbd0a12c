// Package episodes persists podcast episodes and their processing state.
package episodes

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/podintel/podintel-api/internal/models"
)

type Repository struct {
	db *gorm.DB
}

// Ensure Repository implements EpisodeRepository interface
var _ EpisodeRepository = (*Repository)(nil)

func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

func (r *Repository) Create(ctx context.Context, episode *models.Episode) error {
	if err := r.db.WithContext(ctx).Create(episode).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return fmt.Errorf("episode with GUID %s already exists for podcast %d", episode.GUID, episode.PodcastID)
		}
		return fmt.Errorf("creating episode: %w", err)
	}
	return nil
}

func (r *Repository) Update(ctx context.Context, episode *models.Episode) error {
	result := r.db.WithContext(ctx).Save(episode)
	if result.Error != nil {
		return fmt.Errorf("updating episode: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return NotFoundError{ID: episode.ID}
	}
	return nil
}

func (r *Repository) GetByID(ctx context.Context, id uint) (*models.Episode, error) {
	var episode models.Episode
	if err := r.db.WithContext(ctx).First(&episode, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, NotFoundError{ID: id}
		}
		return nil, fmt.Errorf("getting episode: %w", err)
	}
	return &episode, nil
}

func (r *Repository) GetByPodcastAndGUID(ctx context.Context, podcastID uint, guid string) (*models.Episode, error) {
	var episode models.Episode
	if err := r.db.WithContext(ctx).
		Where("podcast_id = ? AND guid = ?", podcastID, guid).
		First(&episode).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, NotFoundError{ID: guid}
		}
		return nil, fmt.Errorf("getting episode by guid: %w", err)
	}
	return &episode, nil
}

func (r *Repository) ListByPodcastID(ctx context.Context, podcastID uint) ([]models.Episode, error) {
	var episodes []models.Episode
	if err := r.db.WithContext(ctx).
		Where("podcast_id = ?", podcastID).
		Order("published DESC").
		Find(&episodes).Error; err != nil {
		return nil, fmt.Errorf("listing episodes: %w", err)
	}
	return episodes, nil
}

func (r *Repository) ListRecent(ctx context.Context, limit int, status models.EpisodeStatus) ([]models.Episode, error) {
	var episodes []models.Episode

	query := r.db.WithContext(ctx).Order("updated_at DESC").Limit(limit)
	if status != "" {
		query = query.Where("status = ?", status)
	}

	if err := query.Find(&episodes).Error; err != nil {
		return nil, fmt.Errorf("listing recent episodes: %w", err)
	}
	return episodes, nil
}

// TransitionStatus performs the status change as a single conditional UPDATE.
// The WHERE clause carries the expected states, so two concurrent requests
// racing on the same episode resolve at the database: one sees RowsAffected=1
// and wins, the other sees 0 and gets ErrConflict. No separate lock table.
func (r *Repository) TransitionStatus(ctx context.Context, id uint, from []models.EpisodeStatus, to models.EpisodeStatus, updates map[string]interface{}) error {
	values := map[string]interface{}{"status": to}
	for k, v := range updates {
		values[k] = v
	}

	result := r.db.WithContext(ctx).
		Model(&models.Episode{}).
		Where("id = ? AND status IN ?", id, from).
		Updates(values)

	if result.Error != nil {
		return fmt.Errorf("transitioning episode %d to %s: %w", id, to, result.Error)
	}
	if result.RowsAffected == 0 {
		// Distinguish missing episode from state conflict
		var count int64
		if err := r.db.WithContext(ctx).Model(&models.Episode{}).Where("id = ?", id).Count(&count).Error; err == nil && count == 0 {
			return NotFoundError{ID: id}
		}
		return ConflictError{ID: id, Wanted: string(to)}
	}
	return nil
}
