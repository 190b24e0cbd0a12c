package jobs

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/podintel/podintel-api/internal/models"
)

func setupTestDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(&models.Job{}))
	return db
}

func enqueueTestJob(t *testing.T, repo Repository, episodeID uint) *models.Job {
	t.Helper()

	job := &models.Job{
		Type:    models.JobTypeEpisodeProcessing,
		Status:  models.JobStatusPending,
		Payload: models.JobPayload{"episode_id": episodeID},
	}
	require.NoError(t, repo.CreateJob(context.Background(), job))
	return job
}

func TestClaimNextJob(t *testing.T) {
	repo := NewRepository(setupTestDB(t))
	created := enqueueTestJob(t, repo, 7)

	job, err := repo.ClaimNextJob(context.Background(), "worker-1",
		[]models.JobType{models.JobTypeEpisodeProcessing})
	require.NoError(t, err)

	assert.Equal(t, created.ID, job.ID)
	assert.Equal(t, models.JobStatusProcessing, job.Status)
	assert.Equal(t, "worker-1", job.WorkerID)
	require.NotNil(t, job.StartedAt)

	episodeID, ok := job.EpisodeID()
	require.True(t, ok)
	assert.Equal(t, uint(7), episodeID)

	// Queue drained
	_, err = repo.ClaimNextJob(context.Background(), "worker-2",
		[]models.JobType{models.JobTypeEpisodeProcessing})
	assert.ErrorIs(t, err, ErrNoJobsAvailable)
}

func TestClaimNextJobOrdersByCreation(t *testing.T) {
	db := setupTestDB(t)
	repo := NewRepository(db)

	first := enqueueTestJob(t, repo, 1)
	second := enqueueTestJob(t, repo, 2)
	// Force distinct creation times; sqlite timestamp precision can collapse them
	require.NoError(t, db.Model(first).Update("created_at", time.Now().Add(-time.Minute)).Error)

	job, err := repo.ClaimNextJob(context.Background(), "worker-1", nil)
	require.NoError(t, err)
	assert.Equal(t, first.ID, job.ID)

	job, err = repo.ClaimNextJob(context.Background(), "worker-1", nil)
	require.NoError(t, err)
	assert.Equal(t, second.ID, job.ID)
}

func TestCompleteAndFailJob(t *testing.T) {
	repo := NewRepository(setupTestDB(t))

	job := enqueueTestJob(t, repo, 1)
	require.NoError(t, repo.CompleteJob(context.Background(), job.ID))

	got, err := repo.GetJob(context.Background(), job.ID)
	require.NoError(t, err)
	assert.Equal(t, models.JobStatusCompleted, got.Status)
	assert.Equal(t, 100, got.Progress)
	assert.NotNil(t, got.CompletedAt)

	failed := enqueueTestJob(t, repo, 2)
	require.NoError(t, repo.FailJob(context.Background(), failed.ID, "download blew up"))

	got, err = repo.GetJob(context.Background(), failed.ID)
	require.NoError(t, err)
	assert.Equal(t, models.JobStatusFailed, got.Status)
	assert.Equal(t, "download blew up", got.Error)
}

func TestUpdateJobProgressRequiresProcessing(t *testing.T) {
	repo := NewRepository(setupTestDB(t))
	job := enqueueTestJob(t, repo, 1)

	// Pending jobs can't report progress
	err := repo.UpdateJobProgress(context.Background(), job.ID, 50)
	assert.ErrorIs(t, err, ErrJobNotFound)

	_, err = repo.ClaimNextJob(context.Background(), "worker-1", nil)
	require.NoError(t, err)

	require.NoError(t, repo.UpdateJobProgress(context.Background(), job.ID, 150))

	got, err := repo.GetJob(context.Background(), job.ID)
	require.NoError(t, err)
	assert.Equal(t, 100, got.Progress)
}

func TestReleaseJob(t *testing.T) {
	repo := NewRepository(setupTestDB(t))
	job := enqueueTestJob(t, repo, 1)

	_, err := repo.ClaimNextJob(context.Background(), "worker-1", nil)
	require.NoError(t, err)

	require.NoError(t, repo.ReleaseJob(context.Background(), job.ID))

	got, err := repo.GetJob(context.Background(), job.ID)
	require.NoError(t, err)
	assert.Equal(t, models.JobStatusPending, got.Status)
	assert.Empty(t, got.WorkerID)
}

func TestDeleteOldJobs(t *testing.T) {
	db := setupTestDB(t)
	repo := NewRepository(db)

	done := enqueueTestJob(t, repo, 1)
	require.NoError(t, repo.CompleteJob(context.Background(), done.ID))
	require.NoError(t, db.Model(done).Update("created_at", time.Now().Add(-48*time.Hour)).Error)

	pending := enqueueTestJob(t, repo, 2)
	require.NoError(t, db.Model(pending).Update("created_at", time.Now().Add(-48*time.Hour)).Error)

	deleted, err := repo.DeleteOldJobs(context.Background(), time.Now().Add(-24*time.Hour))
	require.NoError(t, err)
	assert.Equal(t, int64(1), deleted)

	// Pending job survives regardless of age
	_, err = repo.GetJob(context.Background(), pending.ID)
	assert.NoError(t, err)
}
