package jobs

import (
	"context"
	"log"

	"github.com/podintel/podintel-api/internal/models"
)

// Service defines the business logic interface for job operations
type Service interface {
	EnqueueEpisodeProcessing(ctx context.Context, episodeID uint) (*models.Job, error)
	GetJob(ctx context.Context, jobID uint) (*models.Job, error)

	// Worker operations (used by worker pool)
	ClaimNextJob(ctx context.Context, workerID string, jobTypes []models.JobType) (*models.Job, error)
	UpdateProgress(ctx context.Context, jobID uint, progress int) error
	CompleteJob(ctx context.Context, jobID uint) error
	FailJob(ctx context.Context, jobID uint, err error) error
	ReleaseJob(ctx context.Context, jobID uint) error
}

type service struct {
	repository Repository
}

// NewService creates a new job service
func NewService(repository Repository) Service {
	return &service{repository: repository}
}

// EnqueueEpisodeProcessing queues a pipeline run for an episode. Duplicate
// suppression is not done here: the episode's own status transition already
// rejected concurrent requests before enqueue is reached.
func (s *service) EnqueueEpisodeProcessing(ctx context.Context, episodeID uint) (*models.Job, error) {
	job := &models.Job{
		Type:    models.JobTypeEpisodeProcessing,
		Status:  models.JobStatusPending,
		Payload: models.JobPayload{"episode_id": episodeID},
	}

	if err := s.repository.CreateJob(ctx, job); err != nil {
		return nil, err
	}

	log.Printf("[DEBUG] Enqueued job %d for episode %d", job.ID, episodeID)
	return job, nil
}

func (s *service) GetJob(ctx context.Context, jobID uint) (*models.Job, error) {
	return s.repository.GetJob(ctx, jobID)
}

func (s *service) ClaimNextJob(ctx context.Context, workerID string, jobTypes []models.JobType) (*models.Job, error) {
	return s.repository.ClaimNextJob(ctx, workerID, jobTypes)
}

func (s *service) UpdateProgress(ctx context.Context, jobID uint, progress int) error {
	return s.repository.UpdateJobProgress(ctx, jobID, progress)
}

func (s *service) CompleteJob(ctx context.Context, jobID uint) error {
	return s.repository.CompleteJob(ctx, jobID)
}

func (s *service) FailJob(ctx context.Context, jobID uint, err error) error {
	msg := "unknown error"
	if err != nil {
		msg = err.Error()
	}
	return s.repository.FailJob(ctx, jobID, msg)
}

func (s *service) ReleaseJob(ctx context.Context, jobID uint) error {
	return s.repository.ReleaseJob(ctx, jobID)
}
