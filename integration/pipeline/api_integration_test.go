package pipeline_test

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	episodesAPI "github.com/podintel/podintel-api/api/episodes"
	podcastsAPI "github.com/podintel/podintel-api/api/podcasts"
	"github.com/podintel/podintel-api/api/types"
	"github.com/podintel/podintel-api/internal/database"
	"github.com/podintel/podintel-api/internal/models"
	"github.com/podintel/podintel-api/internal/services/episodes"
	"github.com/podintel/podintel-api/internal/services/feeds"
	"github.com/podintel/podintel-api/internal/services/groq"
	"github.com/podintel/podintel-api/internal/services/jobs"
	"github.com/podintel/podintel-api/internal/services/pipeline"
	"github.com/podintel/podintel-api/internal/services/podcasts"
	"github.com/podintel/podintel-api/internal/services/summarize"
	"github.com/podintel/podintel-api/internal/services/workers"
	"github.com/podintel/podintel-api/pkg/download"
)

const feedTemplate = `<?xml version="1.0" encoding="UTF-8"?>
<rss version="2.0" xmlns:itunes="http://www.itunes.com/dtds/podcast-1.0.dtd">
  <channel>
    <title>Integration Show</title>
    <itunes:author>Casey</itunes:author>
    <description>End to end test feed</description>
    <item>
      <title>Episode One</title>
      <guid>ep-1</guid>
      <description>First episode</description>
      <enclosure url="%s/audio/ep1.mp3" type="audio/mpeg" length="1024"/>
      <itunes:duration>600</itunes:duration>
    </item>
  </channel>
</rss>`

type testStack struct {
	router    *gin.Engine
	pool      *workers.WorkerPool
	feedURL   string
	stopPool  func()
	groqCalls atomic.Int64
}

// setupStack wires the real service graph against stub upstream servers:
// one serving the RSS feed and audio file, one playing the Groq API.
func setupStack(t *testing.T) *testStack {
	t.Helper()
	gin.SetMode(gin.TestMode)

	stack := &testStack{}

	// Upstream server for both the feed and the episode audio
	var upstream *httptest.Server
	upstream = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/feed.xml":
			w.Header().Set("Content-Type", "application/rss+xml")
			fmt.Fprintf(w, feedTemplate, upstream.URL)
		case "/audio/ep1.mp3":
			w.Header().Set("Content-Type", "audio/mpeg")
			_, _ = w.Write(bytes.Repeat([]byte{0xFF}, 2048))
		default:
			http.NotFound(w, r)
		}
	}))
	t.Cleanup(upstream.Close)
	stack.feedURL = upstream.URL + "/feed.xml"

	groqServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		stack.groqCalls.Add(1)
		w.Header().Set("Content-Type", "application/json")
		switch r.URL.Path {
		case "/audio/transcriptions":
			_ = json.NewEncoder(w).Encode(map[string]interface{}{
				"text":     "The host discussed testing pipelines end to end.",
				"language": "en",
				"duration": 600.0,
			})
		case "/chat/completions":
			_ = json.NewEncoder(w).Encode(map[string]interface{}{
				"choices": []map[string]interface{}{
					{"message": map[string]string{"role": "assistant", "content": "Section analysis."}},
				},
			})
		default:
			http.NotFound(w, r)
		}
	}))
	t.Cleanup(groqServer.Close)

	db, err := database.Initialize(database.Options{Path: ":memory:"})
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	require.NoError(t, db.AutoMigrate(&models.Podcast{}, &models.Episode{}, &models.Job{}))

	feedService := feeds.New(nil)
	downloader := download.NewDownloader(download.Options{
		TempDir: t.TempDir(),
		Timeout: 10 * time.Second,
	})
	groqClient := groq.NewClient(groq.Config{
		APIKey:            "test-key",
		BaseURL:           groqServer.URL,
		RequestsPerMinute: 6000,
		BurstSize:         100,
	})
	summarizer := summarize.New(groqClient, 6000, 40000)

	podcastRepo := podcasts.NewRepository(db.DB)
	episodeRepo := episodes.NewRepository(db.DB)
	jobService := jobs.NewService(jobs.NewRepository(db.DB))

	deps := &types.Dependencies{
		DB:              db,
		PodcastService:  podcasts.NewService(podcastRepo, episodeRepo, feedService),
		EpisodeService:  episodes.NewService(episodeRepo),
		PipelineService: pipeline.NewService(podcastRepo, episodeRepo, feedService, jobService),
		JobService:      jobService,
	}

	processor := pipeline.NewProcessor(podcastRepo, episodeRepo, jobService, downloader, groqClient, summarizer)
	stack.pool = workers.NewWorkerPool(jobService, 1, 10*time.Millisecond)
	stack.pool.RegisterProcessor(processor)

	ctx, cancel := context.WithCancel(context.Background())
	require.NoError(t, stack.pool.Start(ctx))
	stack.stopPool = func() {
		stack.pool.Stop()
		cancel()
	}
	t.Cleanup(stack.stopPool)

	router := gin.New()
	passthrough := func(c *gin.Context) { c.Next() }
	podcastsAPI.RegisterRoutes(router.Group("/api/v1/podcasts"), deps, passthrough)
	episodesAPI.RegisterRoutes(router.Group("/api/v1/episodes"), deps)
	stack.router = router

	return stack
}

func (s *testStack) do(t *testing.T, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(encoded)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	recorder := httptest.NewRecorder()
	s.router.ServeHTTP(recorder, req)
	return recorder
}

func TestEpisodeProcessingEndToEnd(t *testing.T) {
	stack := setupStack(t)

	// Register the podcast
	recorder := stack.do(t, http.MethodPost, "/api/v1/podcasts", types.AddPodcastRequest{RSSURL: stack.feedURL})
	require.Equal(t, http.StatusCreated, recorder.Code, recorder.Body.String())

	var podcastResponse types.SinglePodcastResponse
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &podcastResponse))
	require.NotNil(t, podcastResponse.Podcast)
	podcastID := podcastResponse.Podcast.ID
	assert.Equal(t, "Integration Show", podcastResponse.Podcast.Title)

	// The feed listing shows the unprocessed episode as new
	recorder = stack.do(t, http.MethodGet, fmt.Sprintf("/api/v1/podcasts/%d/episodes", podcastID), nil)
	require.Equal(t, http.StatusOK, recorder.Code)

	var listing types.EpisodeViewsResponse
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &listing))
	require.Len(t, listing.Episodes, 1)
	assert.Equal(t, models.EpisodeStatusNew, listing.Episodes[0].Status)

	// Request processing
	recorder = stack.do(t, http.MethodPost, fmt.Sprintf("/api/v1/podcasts/%d/episodes/process", podcastID),
		types.ProcessEpisodeRequest{EpisodeGUID: "ep-1"})
	require.Equal(t, http.StatusAccepted, recorder.Code, recorder.Body.String())

	var processResponse types.ProcessResponse
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &processResponse))
	require.NotZero(t, processResponse.EpisodeID)
	episodePath := fmt.Sprintf("/api/v1/episodes/%d", processResponse.EpisodeID)

	// Poll until the pipeline completes
	var episode models.Episode
	require.Eventually(t, func() bool {
		recorder := stack.do(t, http.MethodGet, episodePath, nil)
		if recorder.Code != http.StatusOK {
			return false
		}
		var response types.SingleEpisodeResponse
		if err := json.Unmarshal(recorder.Body.Bytes(), &response); err != nil || response.Episode == nil {
			return false
		}
		episode = *response.Episode
		return episode.Status == models.EpisodeStatusCompleted || episode.Status == models.EpisodeStatusFailed
	}, 10*time.Second, 25*time.Millisecond, "episode never reached a terminal status")

	require.Equal(t, models.EpisodeStatusCompleted, episode.Status, "error: %s", episode.ErrorMessage)
	assert.Equal(t, "The host discussed testing pipelines end to end.", episode.Transcript)
	require.NotNil(t, episode.Summary)
	assert.Equal(t, "Section analysis.", episode.Summary.ExecutiveSummary)
	assert.Equal(t, "Section analysis.", episode.Summary.KeyThemes)
	assert.NotNil(t, episode.CompletedAt)

	// One transcription call plus four summary sections
	assert.Equal(t, int64(5), stack.groqCalls.Load())

	// A second request for the completed episode is a no-op
	recorder = stack.do(t, http.MethodPost, fmt.Sprintf("/api/v1/podcasts/%d/episodes/process", podcastID),
		types.ProcessEpisodeRequest{EpisodeGUID: "ep-1"})
	require.Equal(t, http.StatusOK, recorder.Code)

	var repeatResponse types.ProcessResponse
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &repeatResponse))
	assert.Equal(t, types.StatusCompleted, repeatResponse.Status)
	assert.Equal(t, int64(5), stack.groqCalls.Load(), "completed episode must not be reprocessed")
}
