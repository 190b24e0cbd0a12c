package podcasts

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

// Ensure Repository implements PodcastRepository interface
var _ PodcastRepository = (*Repository)(nil)

func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// Upsert creates or updates a podcast keyed by rss_url
func (r *Repository) Upsert(ctx context.Context, podcast *models.Podcast) error {
	var existing models.Podcast
	err := r.db.WithContext(ctx).
		Where("rss_url = ?", podcast.RSSURL).
		First(&existing).Error

	if err == nil {
		podcast.ID = existing.ID
		podcast.CreatedAt = existing.CreatedAt
		if err := r.db.WithContext(ctx).Save(podcast).Error; err != nil {
			return fmt.Errorf("updating podcast: %w", err)
		}
		return nil
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		if err := r.db.WithContext(ctx).Create(podcast).Error; err != nil {
			return fmt.Errorf("creating podcast: %w", err)
		}
		return nil
	}

	return fmt.Errorf("checking existing podcast: %w", err)
}

// GetByID retrieves a podcast by its database ID
func (r *Repository) GetByID(ctx context.Context, id uint) (*models.Podcast, error) {
	var podcast models.Podcast
	if err := r.db.WithContext(ctx).First(&podcast, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, NotFoundError{ID: id}
		}
		return nil, fmt.Errorf("getting podcast: %w", err)
	}
	return &podcast, nil
}

// GetByRSSURL retrieves a podcast by feed URL
func (r *Repository) GetByRSSURL(ctx context.Context, rssURL string) (*models.Podcast, error) {
	var podcast models.Podcast
	if err := r.db.WithContext(ctx).
		Where("rss_url = ?", rssURL).
		First(&podcast).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, NotFoundError{ID: rssURL}
		}
		return nil, fmt.Errorf("getting podcast by rss url: %w", err)
	}
	return &podcast, nil
}

// List returns all registered podcasts, newest first
func (r *Repository) List(ctx context.Context) ([]models.Podcast, error) {
	var podcasts []models.Podcast
	if err := r.db.WithContext(ctx).
		Order("created_at DESC").
		Find(&podcasts).Error; err != nil {
		return nil, fmt.Errorf("listing podcasts: %w", err)
	}
	return podcasts, nil
}
