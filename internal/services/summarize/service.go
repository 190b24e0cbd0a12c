// Package summarize turns an episode transcript into the four-section
// structured summary stored on the episode.
package summarize

import (
	"context"
	"fmt"
	"log"
	"strings"

	"github.com/podintel/podintel-api/internal/models"
	"github.com/podintel/podintel-api/pkg/chunk"
)

type service struct {
	client             ChatCompleter
	maxChunkTokens     int
	maxTranscriptWords int
}

// New creates a summarization service. maxChunkTokens bounds how much
// transcript goes into a single model call; maxTranscriptWords is a hard
// safety cap applied before anything else.
func New(client ChatCompleter, maxChunkTokens, maxTranscriptWords int) Service {
	if maxChunkTokens <= 0 {
		maxChunkTokens = 6000
	}
	if maxTranscriptWords <= 0 {
		maxTranscriptWords = 40000
	}
	return &service{
		client:             client,
		maxChunkTokens:     maxChunkTokens,
		maxTranscriptWords: maxTranscriptWords,
	}
}

// Summarize generates all four sections sequentially. Sections are
// independent model calls so a transient failure surfaces with the section
// name attached.
func (s *service) Summarize(ctx context.Context, transcript string, meta Metadata) (*models.Summary, error) {
	transcript = s.capWords(transcript)
	system := s.systemPrompt(meta)

	sections := []struct {
		name   string
		prompt string
		dest   *string
	}{
		{"executive_summary", executiveSummaryPrompt, nil},
		{"key_themes", keyThemesPrompt, nil},
		{"notable_quotes", notableQuotesPrompt, nil},
		{"actionable_insights", actionableInsightsPrompt, nil},
	}

	summary := &models.Summary{PromptVersion: promptVersion}
	sections[0].dest = &summary.ExecutiveSummary
	sections[1].dest = &summary.KeyThemes
	sections[2].dest = &summary.NotableQuotes
	sections[3].dest = &summary.ActionableInsights

	for _, sec := range sections {
		text, err := s.generateSection(ctx, system, sec.prompt, transcript)
		if err != nil {
			return nil, fmt.Errorf("generate %s: %w", sec.name, err)
		}
		*sec.dest = text
	}

	return summary, nil
}

// generateSection runs one section prompt against the transcript. Short
// transcripts go through a single call; anything over the chunk budget is
// split, summarized per part, and merged.
func (s *service) generateSection(ctx context.Context, system, prompt, transcript string) (string, error) {
	if chunk.EstimateTokens(transcript) <= s.maxChunkTokens {
		user := fmt.Sprintf("%s\n\nCOMPLETE TRANSCRIPT:\n%s\n\n", prompt, transcript)
		return s.client.ChatComplete(ctx, system, user)
	}

	parts := chunk.Split(transcript, s.maxChunkTokens)
	log.Printf("[DEBUG] Transcript over budget (%d tokens est), summarizing in %d parts",
		chunk.EstimateTokens(transcript), len(parts))

	partials := make([]string, 0, len(parts))
	for i, part := range parts {
		user := fmt.Sprintf("%s\n\nTRANSCRIPT PART %d OF %d:\n%s\n\n", prompt, i+1, len(parts), part)
		text, err := s.client.ChatComplete(ctx, system, user)
		if err != nil {
			return "", fmt.Errorf("part %d/%d: %w", i+1, len(parts), err)
		}
		partials = append(partials, text)
	}

	return s.mergePartials(ctx, system, partials)
}

// mergePartials combines per-part results into one section. If the combined
// partials themselves exceed the budget the merge runs again over merged
// intermediates until the result fits.
func (s *service) mergePartials(ctx context.Context, system string, partials []string) (string, error) {
	for {
		joined := strings.Join(partials, "\n\n---\n\n")
		if chunk.EstimateTokens(joined) <= s.maxChunkTokens {
			user := fmt.Sprintf("%s\n\nPARTIAL ANALYSES:\n%s\n\n", mergePrompt, joined)
			return s.client.ChatComplete(ctx, system, user)
		}

		// Merge in groups so each merge call stays under budget
		groups := chunk.Split(joined, s.maxChunkTokens)
		merged := make([]string, 0, len(groups))
		for i, group := range groups {
			user := fmt.Sprintf("%s\n\nPARTIAL ANALYSES:\n%s\n\n", mergePrompt, group)
			text, err := s.client.ChatComplete(ctx, system, user)
			if err != nil {
				return "", fmt.Errorf("merge group %d/%d: %w", i+1, len(groups), err)
			}
			merged = append(merged, text)
		}

		if len(merged) == 1 {
			return merged[0], nil
		}
		partials = merged
	}
}

func (s *service) systemPrompt(meta Metadata) string {
	var b strings.Builder
	b.WriteString("You are analyzing a podcast transcript. ")
	if meta.PodcastName != "" {
		fmt.Fprintf(&b, "Podcast: %s\n", meta.PodcastName)
	}
	if meta.EpisodeTitle != "" {
		fmt.Fprintf(&b, "Episode: %s\n", meta.EpisodeTitle)
	}
	if meta.Host != "" {
		fmt.Fprintf(&b, "Host: %s\n", meta.Host)
	}
	if meta.PublishedDate != "" {
		fmt.Fprintf(&b, "Date: %s\n", meta.PublishedDate)
	}
	return b.String()
}

// capWords truncates absurdly long transcripts before token estimation
func (s *service) capWords(transcript string) string {
	words := strings.Fields(transcript)
	if len(words) <= s.maxTranscriptWords {
		return transcript
	}
	log.Printf("[WARN] Transcript has %d words, truncating to %d", len(words), s.maxTranscriptWords)
	return strings.Join(words[:s.maxTranscriptWords], " ")
}
