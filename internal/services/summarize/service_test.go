package summarize

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// mockCompleter records calls and returns canned text
type mockCompleter struct {
	calls    []string // user prompts, in order
	systems  []string
	response string
	err      error
}

func (m *mockCompleter) ChatComplete(ctx context.Context, system, user string) (string, error) {
	m.calls = append(m.calls, user)
	m.systems = append(m.systems, system)
	if m.err != nil {
		return "", m.err
	}
	return m.response, nil
}

func TestSummarizeSmallTranscript(t *testing.T) {
	mock := &mockCompleter{response: "section text"}
	svc := New(mock, 6000, 40000)

	summary, err := svc.Summarize(context.Background(), "a short transcript", Metadata{
		PodcastName:  "Test Show",
		EpisodeTitle: "Episode 1",
		Host:         "Alex",
	})
	require.NoError(t, err)

	assert.Equal(t, "section text", summary.ExecutiveSummary)
	assert.Equal(t, "section text", summary.KeyThemes)
	assert.Equal(t, "section text", summary.NotableQuotes)
	assert.Equal(t, "section text", summary.ActionableInsights)
	assert.Equal(t, promptVersion, summary.PromptVersion)

	// Four sections, one call each
	require.Len(t, mock.calls, 4)
	for _, call := range mock.calls {
		assert.Contains(t, call, "COMPLETE TRANSCRIPT:")
		assert.Contains(t, call, "a short transcript")
	}

	// Metadata flows into the system prompt
	assert.Contains(t, mock.systems[0], "Podcast: Test Show")
	assert.Contains(t, mock.systems[0], "Episode: Episode 1")
	assert.Contains(t, mock.systems[0], "Host: Alex")
}

func TestSummarizeChunksLargeTranscript(t *testing.T) {
	mock := &mockCompleter{response: "partial"}
	// 100-token budget so a modest transcript overflows
	svc := New(mock, 100, 40000)

	// ~250 tokens worth of text with paragraph boundaries
	transcript := strings.Repeat(strings.Repeat("word ", 40)+"\n\n", 5)

	summary, err := svc.Summarize(context.Background(), transcript, Metadata{})
	require.NoError(t, err)
	assert.NotEmpty(t, summary.ExecutiveSummary)

	// Each section makes per-part calls plus a merge call
	var partCalls, mergeCalls, completeCalls int
	for _, call := range mock.calls {
		switch {
		case strings.Contains(call, "TRANSCRIPT PART"):
			partCalls++
		case strings.Contains(call, "PARTIAL ANALYSES:"):
			mergeCalls++
		case strings.Contains(call, "COMPLETE TRANSCRIPT:"):
			completeCalls++
		}
	}
	assert.Zero(t, completeCalls)
	assert.Greater(t, partCalls, 4, "each of the 4 sections should split into multiple parts")
	assert.Equal(t, 4, mergeCalls, "one merge per section when partials fit the budget")
}

func TestSummarizeSingleCallAtExactBudget(t *testing.T) {
	mock := &mockCompleter{response: "ok"}
	svc := New(mock, 100, 40000)

	// Exactly 400 runes = exactly 100 estimated tokens, no split
	transcript := strings.Repeat("abcd", 100)

	_, err := svc.Summarize(context.Background(), transcript, Metadata{})
	require.NoError(t, err)

	require.Len(t, mock.calls, 4)
	for _, call := range mock.calls {
		assert.Contains(t, call, "COMPLETE TRANSCRIPT:")
	}
}

func TestSummarizeCapsTranscriptWords(t *testing.T) {
	mock := &mockCompleter{response: "ok"}
	svc := New(mock, 1000000, 10)

	transcript := strings.Repeat("word ", 50)

	_, err := svc.Summarize(context.Background(), transcript, Metadata{})
	require.NoError(t, err)

	require.NotEmpty(t, mock.calls)
	// 10 words survive the cap
	assert.Contains(t, mock.calls[0], strings.TrimSpace(strings.Repeat("word ", 10)))
	assert.NotContains(t, mock.calls[0], strings.Repeat("word ", 11))
}

func TestSummarizePropagatesSectionError(t *testing.T) {
	mock := &mockCompleter{err: assert.AnError}
	svc := New(mock, 6000, 40000)

	_, err := svc.Summarize(context.Background(), "transcript", Metadata{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "executive_summary")
}
