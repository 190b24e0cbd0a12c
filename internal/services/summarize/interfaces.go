package summarize

import (
	"context"

	"github.com/podintel/podintel-api/internal/models"
)

// ChatCompleter is the slice of the Groq client the summarizer needs
type ChatCompleter interface {
	ChatComplete(ctx context.Context, system, user string) (string, error)
}

// Service generates structured episode summaries from transcripts
type Service interface {
	Summarize(ctx context.Context, transcript string, meta Metadata) (*models.Summary, error)
}

// Metadata describes the episode being summarized. All fields are optional;
// present values are fed to the model as context.
type Metadata struct {
	PodcastName   string
	EpisodeTitle  string
	Host          string
	PublishedDate string
}
