package pipeline

import (
	"context"

	"github.com/podintel/podintel-api/internal/models"
	"github.com/podintel/podintel-api/internal/services/groq"
	"github.com/podintel/podintel-api/pkg/download"
)

// AudioDownloader fetches episode audio to a temp file
type AudioDownloader interface {
	DownloadToTemp(ctx context.Context, url string, episodeID uint) (*download.Result, error)
}

// Transcriber is the slice of the Groq client the pipeline needs
type Transcriber interface {
	Transcribe(ctx context.Context, filePath string) (*groq.Transcription, error)
}

// Outcome tells the HTTP layer how a processing request resolved
type Outcome int

const (
	// OutcomeScheduled means a new run was accepted and queued
	OutcomeScheduled Outcome = iota
	// OutcomeAlreadyCompleted means the episode is done; no new run started
	OutcomeAlreadyCompleted
	// OutcomeConflict means a run is currently active on this episode
	OutcomeConflict
)

// Service accepts processing requests and reports their outcome
type Service interface {
	RequestProcessing(ctx context.Context, podcastID uint, episodeGUID string) (*models.Episode, Outcome, error)
}
