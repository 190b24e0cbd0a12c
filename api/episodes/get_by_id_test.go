package episodes

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/podintel/podintel-api/api/types"
	"github.com/podintel/podintel-api/internal/models"
	episodesService "github.com/podintel/podintel-api/internal/services/episodes"
)

type mockEpisodeService struct {
	episode *models.Episode
	recent  []models.Episode
	err     error

	lastLimit  int
	lastStatus models.EpisodeStatus
}

func (m *mockEpisodeService) GetByID(ctx context.Context, id uint) (*models.Episode, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.episode, nil
}

func (m *mockEpisodeService) ListRecent(ctx context.Context, limit int, status models.EpisodeStatus) ([]models.Episode, error) {
	m.lastLimit = limit
	m.lastStatus = status
	if m.err != nil {
		return nil, m.err
	}
	return m.recent, nil
}

func setupEpisodeRouter(service episodesService.EpisodeService) *gin.Engine {
	gin.SetMode(gin.TestMode)

	deps := &types.Dependencies{EpisodeService: service}
	router := gin.New()
	router.GET("/api/v1/episodes", GetRecent(deps))
	router.GET("/api/v1/episodes/:id", GetByID(deps))
	return router
}

func TestGetByID(t *testing.T) {
	episode := &models.Episode{
		Status:     models.EpisodeStatusCompleted,
		Transcript: "hello world",
	}
	episode.ID = 7

	router := setupEpisodeRouter(&mockEpisodeService{episode: episode})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/episodes/7", nil)
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, req)

	assert.Equal(t, http.StatusOK, recorder.Code)

	var response types.SingleEpisodeResponse
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &response))
	assert.Equal(t, types.StatusOK, response.Status)
	require.NotNil(t, response.Episode)
	assert.Equal(t, uint(7), response.Episode.ID)
	assert.Equal(t, models.EpisodeStatusCompleted, response.Episode.Status)
	assert.Equal(t, "hello world", response.Episode.Transcript)
}

func TestGetByIDNotFound(t *testing.T) {
	router := setupEpisodeRouter(&mockEpisodeService{
		err: episodesService.NotFoundError{ID: "99"},
	})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/episodes/99", nil)
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, req)

	assert.Equal(t, http.StatusNotFound, recorder.Code)
}

func TestGetByIDInvalidParam(t *testing.T) {
	router := setupEpisodeRouter(&mockEpisodeService{})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/episodes/abc", nil)
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, req)

	assert.Equal(t, http.StatusBadRequest, recorder.Code)
}

func TestGetRecentPassesFilters(t *testing.T) {
	service := &mockEpisodeService{recent: []models.Episode{{Status: models.EpisodeStatusFailed}}}
	router := setupEpisodeRouter(service)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/episodes?limit=10&status=failed", nil)
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, req)

	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.Equal(t, 10, service.lastLimit)
	assert.Equal(t, models.EpisodeStatusFailed, service.lastStatus)

	var response types.EpisodesResponse
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &response))
	assert.Equal(t, 1, response.Count)
}
