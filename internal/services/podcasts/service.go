// Package podcasts manages podcast registration and feed listings.
package podcasts

import (
	"context"
	"fmt"
	"log"

	"github.com/podintel/podintel-api/internal/models"
	"github.com/podintel/podintel-api/internal/services/feeds"
)

type Service struct {
	repository PodcastRepository
	episodes   EpisodeStateStore
	feeds      feeds.Service
}

// Ensure Service implements PodcastService interface
var _ PodcastService = (*Service)(nil)

func NewService(repository PodcastRepository, episodes EpisodeStateStore, feedService feeds.Service) *Service {
	return &Service{
		repository: repository,
		episodes:   episodes,
		feeds:      feedService,
	}
}

// RegisterFeed fetches an RSS feed and stores (or refreshes) its podcast.
// Registering the same URL twice updates the metadata instead of failing.
func (s *Service) RegisterFeed(ctx context.Context, rssURL string) (*models.Podcast, error) {
	feed, err := s.feeds.Fetch(ctx, rssURL)
	if err != nil {
		return nil, FeedError{URL: rssURL, Err: err}
	}

	podcast := &models.Podcast{
		Title:       feed.Title,
		Author:      feed.Author,
		Description: feed.Description,
		RSSURL:      rssURL,
		ImageURL:    feed.ImageURL,
	}

	if err := s.repository.Upsert(ctx, podcast); err != nil {
		return nil, fmt.Errorf("storing podcast: %w", err)
	}

	log.Printf("[INFO] Registered podcast %d: %s (%d episodes in feed)",
		podcast.ID, podcast.Title, len(feed.Episodes))

	return podcast, nil
}

// List returns all registered podcasts
func (s *Service) List(ctx context.Context) ([]models.Podcast, error) {
	return s.repository.List(ctx)
}

// GetByID gets a podcast by database ID
func (s *Service) GetByID(ctx context.Context, id uint) (*models.Podcast, error) {
	return s.repository.GetByID(ctx, id)
}

// ListEpisodes re-fetches the podcast's feed and merges each item with its
// stored processing state. Episodes never requested for processing appear
// with status "new"; the feed stays the source of truth for the catalog so
// newly published episodes show up without any sync step.
func (s *Service) ListEpisodes(ctx context.Context, podcastID uint) ([]EpisodeView, error) {
	podcast, err := s.repository.GetByID(ctx, podcastID)
	if err != nil {
		return nil, err
	}

	feed, err := s.feeds.Fetch(ctx, podcast.RSSURL)
	if err != nil {
		return nil, FeedError{URL: podcast.RSSURL, Err: err}
	}

	stored, err := s.episodes.ListByPodcastID(ctx, podcastID)
	if err != nil {
		return nil, fmt.Errorf("loading stored episodes: %w", err)
	}

	byGUID := make(map[string]*models.Episode, len(stored))
	for i := range stored {
		byGUID[stored[i].GUID] = &stored[i]
	}

	views := make([]EpisodeView, 0, len(feed.Episodes))
	for _, item := range feed.Episodes {
		view := EpisodeView{
			GUID:        item.GUID,
			Title:       item.Title,
			Description: item.Description,
			AudioURL:    item.AudioURL,
			Published:   item.Published,
			Duration:    item.Duration,
			Status:      models.EpisodeStatusNew,
		}

		if ep, ok := byGUID[item.GUID]; ok {
			view.ID = ep.ID
			view.Status = ep.Status
			view.ErrorMessage = ep.ErrorMessage
		}

		views = append(views, view)
	}

	return views, nil
}
