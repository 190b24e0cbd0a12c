package pipeline

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/podintel/podintel-api/internal/models"
	"github.com/podintel/podintel-api/internal/services/episodes"
	"github.com/podintel/podintel-api/internal/services/jobs"
	"github.com/podintel/podintel-api/internal/services/podcasts"
	"github.com/podintel/podintel-api/internal/services/summarize"
	"github.com/podintel/podintel-api/pkg/download"
	"github.com/podintel/podintel-api/pkg/errclassify"
)

// activeStates are every status a failing run could be in when it stops
var activeStates = []models.EpisodeStatus{
	models.EpisodeStatusDownloading,
	models.EpisodeStatusTranscribing,
	models.EpisodeStatusSummarizing,
}

// Processor runs the download -> transcribe -> summarize pipeline for queued
// episode jobs. It implements workers.JobProcessor.
type Processor struct {
	podcastRepo podcasts.PodcastRepository
	episodeRepo episodes.EpisodeRepository
	jobs        jobs.Service
	downloader  AudioDownloader
	transcriber Transcriber
	summarizer  summarize.Service
}

// NewProcessor creates the episode processing job processor
func NewProcessor(
	podcastRepo podcasts.PodcastRepository,
	episodeRepo episodes.EpisodeRepository,
	jobService jobs.Service,
	downloader AudioDownloader,
	transcriber Transcriber,
	summarizer summarize.Service,
) *Processor {
	return &Processor{
		podcastRepo: podcastRepo,
		episodeRepo: episodeRepo,
		jobs:        jobService,
		downloader:  downloader,
		transcriber: transcriber,
		summarizer:  summarizer,
	}
}

// CanProcess returns true for episode processing jobs
func (p *Processor) CanProcess(jobType models.JobType) bool {
	return jobType == models.JobTypeEpisodeProcessing
}

// ProcessJob runs the pipeline for the job's episode. Every stage change is
// persisted before the stage's work begins, so a poll during the run reports
// where the episode actually is. A failure at any stage parks the episode in
// failed with a classified message; a later retry restarts from download.
func (p *Processor) ProcessJob(ctx context.Context, job *models.Job) error {
	episodeID, ok := job.EpisodeID()
	if !ok {
		return fmt.Errorf("job %d has no episode_id in payload", job.ID)
	}

	episode, err := p.episodeRepo.GetByID(ctx, episodeID)
	if err != nil {
		return fmt.Errorf("loading episode %d: %w", episodeID, err)
	}

	// Claim the run. A duplicate job for an episode already being processed
	// (or already finished) loses this transition and no-ops.
	err = p.episodeRepo.TransitionStatus(ctx, episode.ID,
		[]models.EpisodeStatus{models.EpisodeStatusPending},
		models.EpisodeStatusDownloading, nil)
	if err != nil {
		if errors.Is(err, episodes.ErrConflict) {
			log.Printf("[DEBUG] Episode %d not pending, skipping job %d", episode.ID, job.ID)
			return nil
		}
		return err
	}
	_ = p.jobs.UpdateProgress(ctx, job.ID, 10)

	// Stage 1: download
	result, err := p.downloader.DownloadToTemp(ctx, episode.AudioURL, episode.ID)
	if err != nil {
		return p.failEpisode(ctx, episode.ID, "download", err)
	}
	defer func() {
		if cleanupErr := download.CleanupTempFile(result.FilePath); cleanupErr != nil {
			log.Printf("[WARN] Failed to clean up %s: %v", result.FilePath, cleanupErr)
		}
	}()

	if err := p.episodeRepo.TransitionStatus(ctx, episode.ID,
		[]models.EpisodeStatus{models.EpisodeStatusDownloading},
		models.EpisodeStatusTranscribing, nil); err != nil {
		return err
	}
	_ = p.jobs.UpdateProgress(ctx, job.ID, 40)

	// Stage 2: transcribe
	transcription, err := p.transcriber.Transcribe(ctx, result.FilePath)
	if err != nil {
		return p.failEpisode(ctx, episode.ID, "transcription", err)
	}

	if err := p.episodeRepo.TransitionStatus(ctx, episode.ID,
		[]models.EpisodeStatus{models.EpisodeStatusTranscribing},
		models.EpisodeStatusSummarizing,
		map[string]interface{}{"transcript": transcription.Text}); err != nil {
		return err
	}
	_ = p.jobs.UpdateProgress(ctx, job.ID, 70)

	// Stage 3: summarize
	meta := p.summaryMetadata(ctx, episode)
	summary, err := p.summarizer.Summarize(ctx, transcription.Text, meta)
	if err != nil {
		return p.failEpisode(ctx, episode.ID, "summarization", err)
	}

	now := time.Now()
	if err := p.episodeRepo.TransitionStatus(ctx, episode.ID,
		[]models.EpisodeStatus{models.EpisodeStatusSummarizing},
		models.EpisodeStatusCompleted,
		map[string]interface{}{
			"summary":      summary,
			"completed_at": &now,
		}); err != nil {
		return err
	}

	log.Printf("[INFO] Episode %d processed successfully", episode.ID)
	return nil
}

// failEpisode classifies the raw error and parks the episode in failed with
// the user-facing message. The raw error is returned for the job record.
func (p *Processor) failEpisode(ctx context.Context, episodeID uint, stage string, cause error) error {
	category, message := errclassify.Classify(cause.Error())

	log.Printf("[ERROR] Episode %d failed at %s (%s): %v", episodeID, stage, category, cause)

	if err := p.episodeRepo.TransitionStatus(ctx, episodeID, activeStates,
		models.EpisodeStatusFailed,
		map[string]interface{}{"error_message": message}); err != nil {
		log.Printf("[ERROR] Could not mark episode %d failed: %v", episodeID, err)
	}

	return fmt.Errorf("%s failed for episode %d: %w", stage, episodeID, cause)
}

// summaryMetadata loads podcast context for the summarizer. Missing metadata
// is not fatal; the summary just loses the header context.
func (p *Processor) summaryMetadata(ctx context.Context, episode *models.Episode) summarize.Metadata {
	meta := summarize.Metadata{EpisodeTitle: episode.Title}

	if episode.Published != nil {
		meta.PublishedDate = episode.Published.Format("2006-01-02")
	}

	if podcast, err := p.podcastRepo.GetByID(ctx, episode.PodcastID); err == nil {
		meta.PodcastName = podcast.Title
		meta.Host = podcast.Author
	}

	return meta
}
