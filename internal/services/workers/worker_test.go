package workers

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/podintel/podintel-api/internal/models"
	"github.com/podintel/podintel-api/internal/services/jobs"
)

// mockJobService serves one job then reports an empty queue
type mockJobService struct {
	mu        sync.Mutex
	job       *models.Job
	claimed   bool
	completed []uint
	failed    []uint
}

func (m *mockJobService) EnqueueEpisodeProcessing(ctx context.Context, episodeID uint) (*models.Job, error) {
	return nil, nil
}

func (m *mockJobService) GetJob(ctx context.Context, jobID uint) (*models.Job, error) {
	return m.job, nil
}

func (m *mockJobService) ClaimNextJob(ctx context.Context, workerID string, jobTypes []models.JobType) (*models.Job, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.job == nil || m.claimed {
		return nil, jobs.ErrNoJobsAvailable
	}
	m.claimed = true
	return m.job, nil
}

func (m *mockJobService) UpdateProgress(ctx context.Context, jobID uint, progress int) error {
	return nil
}

func (m *mockJobService) CompleteJob(ctx context.Context, jobID uint) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.completed = append(m.completed, jobID)
	return nil
}

func (m *mockJobService) FailJob(ctx context.Context, jobID uint, err error) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.failed = append(m.failed, jobID)
	return nil
}

func (m *mockJobService) ReleaseJob(ctx context.Context, jobID uint) error {
	return nil
}

type mockProcessor struct {
	mu        sync.Mutex
	processed []uint
	err       error
}

func (m *mockProcessor) ProcessJob(ctx context.Context, job *models.Job) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.processed = append(m.processed, job.ID)
	return m.err
}

func (m *mockProcessor) CanProcess(jobType models.JobType) bool {
	return jobType == models.JobTypeEpisodeProcessing
}

func testJob(id uint) *models.Job {
	job := &models.Job{
		Type:    models.JobTypeEpisodeProcessing,
		Status:  models.JobStatusPending,
		Payload: models.JobPayload{"episode_id": float64(1)},
	}
	job.ID = id
	return job
}

func TestWorkerProcessesJob(t *testing.T) {
	svc := &mockJobService{job: testJob(10)}
	processor := &mockProcessor{}

	worker := NewWorker("worker-test", svc, time.Millisecond)
	worker.RegisterProcessor(processor)

	worker.Start(context.Background())

	require.Eventually(t, func() bool {
		svc.mu.Lock()
		defer svc.mu.Unlock()
		return len(svc.completed) == 1
	}, time.Second, 5*time.Millisecond)

	worker.Stop()

	assert.Equal(t, []uint{10}, processor.processed)
	assert.Empty(t, svc.failed)
}

func TestWorkerMarksFailedJobs(t *testing.T) {
	svc := &mockJobService{job: testJob(11)}
	processor := &mockProcessor{err: errors.New("pipeline exploded")}

	worker := NewWorker("worker-test", svc, time.Millisecond)
	worker.RegisterProcessor(processor)

	worker.Start(context.Background())

	require.Eventually(t, func() bool {
		svc.mu.Lock()
		defer svc.mu.Unlock()
		return len(svc.failed) == 1
	}, time.Second, 5*time.Millisecond)

	worker.Stop()

	assert.Equal(t, []uint{11}, svc.failed)
	assert.Empty(t, svc.completed)
}

func TestWorkerPoolStartStop(t *testing.T) {
	svc := &mockJobService{}
	pool := NewWorkerPool(svc, 2, time.Millisecond)
	pool.RegisterProcessor(&mockProcessor{})

	require.NoError(t, pool.Start(context.Background()))
	assert.Error(t, pool.Start(context.Background()), "double start should error")

	pool.Stop()
	// Stop again is a no-op
	pool.Stop()
}
