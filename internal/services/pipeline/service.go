// Package pipeline drives episodes through download, transcription, and
// summarization, using the episode's status column as the run lock.
package pipeline

import (
	"context"
	"errors"
	"fmt"
	"log"

	"github.com/podintel/podintel-api/internal/models"
	"github.com/podintel/podintel-api/internal/services/episodes"
	"github.com/podintel/podintel-api/internal/services/feeds"
	"github.com/podintel/podintel-api/internal/services/jobs"
	"github.com/podintel/podintel-api/internal/services/podcasts"
)

// requestableStates are the statuses a processing request may claim from.
// Pending is included so an episode orphaned by a crash before any worker
// picked it up can be re-requested.
var requestableStates = []models.EpisodeStatus{
	models.EpisodeStatusNew,
	models.EpisodeStatusPending,
	models.EpisodeStatusFailed,
}

type service struct {
	podcastRepo podcasts.PodcastRepository
	episodeRepo episodes.EpisodeRepository
	feeds       feeds.Service
	jobs        jobs.Service
}

// NewService creates the processing request service
func NewService(
	podcastRepo podcasts.PodcastRepository,
	episodeRepo episodes.EpisodeRepository,
	feedService feeds.Service,
	jobService jobs.Service,
) Service {
	return &service{
		podcastRepo: podcastRepo,
		episodeRepo: episodeRepo,
		feeds:       feedService,
		jobs:        jobService,
	}
}

// RequestProcessing resolves a processing request for one episode. Completed
// episodes are a no-op, active episodes are rejected, everything else is
// reset to pending (clearing any stale error) and queued. The pending status
// is persisted before this returns, so a poll issued right after the response
// already sees the run.
func (s *service) RequestProcessing(ctx context.Context, podcastID uint, episodeGUID string) (*models.Episode, Outcome, error) {
	episode, err := s.episodeRepo.GetByPodcastAndGUID(ctx, podcastID, episodeGUID)
	if err != nil {
		if episodes.IsNotFound(err) {
			return s.createAndSchedule(ctx, podcastID, episodeGUID)
		}
		return nil, 0, err
	}

	if episode.Status == models.EpisodeStatusCompleted {
		return episode, OutcomeAlreadyCompleted, nil
	}
	if episode.Status.IsActive() {
		return episode, OutcomeConflict, nil
	}

	err = s.episodeRepo.TransitionStatus(ctx, episode.ID, requestableStates,
		models.EpisodeStatusPending,
		map[string]interface{}{"error_message": ""})
	if err != nil {
		if errors.Is(err, episodes.ErrConflict) {
			// Lost a race with a worker that just started the run
			fresh, readErr := s.episodeRepo.GetByID(ctx, episode.ID)
			if readErr != nil {
				return nil, 0, readErr
			}
			if fresh.Status == models.EpisodeStatusCompleted {
				return fresh, OutcomeAlreadyCompleted, nil
			}
			return fresh, OutcomeConflict, nil
		}
		return nil, 0, err
	}

	// Two requests racing on a stuck-pending episode can both reach this
	// point. The duplicate job is harmless: the worker's own pending ->
	// downloading transition admits exactly one run.
	if _, err := s.jobs.EnqueueEpisodeProcessing(ctx, episode.ID); err != nil {
		return nil, 0, fmt.Errorf("enqueueing episode %d: %w", episode.ID, err)
	}

	episode.Status = models.EpisodeStatusPending
	episode.ErrorMessage = ""

	log.Printf("[INFO] Scheduled processing for episode %d (podcast %d, guid %s)",
		episode.ID, podcastID, episodeGUID)

	return episode, OutcomeScheduled, nil
}

// createAndSchedule materializes an episode row from the podcast's feed for
// a guid we have never processed, then queues it
func (s *service) createAndSchedule(ctx context.Context, podcastID uint, episodeGUID string) (*models.Episode, Outcome, error) {
	podcast, err := s.podcastRepo.GetByID(ctx, podcastID)
	if err != nil {
		return nil, 0, err
	}

	feed, err := s.feeds.Fetch(ctx, podcast.RSSURL)
	if err != nil {
		return nil, 0, fmt.Errorf("fetching feed for podcast %d: %w", podcastID, err)
	}

	var item *feeds.Item
	for i := range feed.Episodes {
		if feed.Episodes[i].GUID == episodeGUID {
			item = &feed.Episodes[i]
			break
		}
	}
	if item == nil {
		return nil, 0, episodes.NotFoundError{ID: episodeGUID}
	}

	episode := &models.Episode{
		PodcastID:   podcastID,
		GUID:        item.GUID,
		Title:       item.Title,
		Description: item.Description,
		AudioURL:    item.AudioURL,
		Published:   item.Published,
		Duration:    item.Duration,
		Status:      models.EpisodeStatusPending,
	}

	if err := s.episodeRepo.Create(ctx, episode); err != nil {
		// A concurrent request may have created the row first; fall back to
		// the existing-episode path
		if existing, getErr := s.episodeRepo.GetByPodcastAndGUID(ctx, podcastID, episodeGUID); getErr == nil {
			return s.RequestProcessing(ctx, existing.PodcastID, existing.GUID)
		}
		return nil, 0, err
	}

	if _, err := s.jobs.EnqueueEpisodeProcessing(ctx, episode.ID); err != nil {
		return nil, 0, fmt.Errorf("enqueueing episode %d: %w", episode.ID, err)
	}

	log.Printf("[INFO] Created and scheduled episode %d (podcast %d, guid %s)",
		episode.ID, podcastID, episodeGUID)

	return episode, OutcomeScheduled, nil
}
