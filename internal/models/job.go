package models

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"time"

	"gorm.io/gorm"
)

// JobStatus represents the status of a job in the queue
type JobStatus string

const (
	JobStatusPending    JobStatus = "pending"
	JobStatusProcessing JobStatus = "processing"
	JobStatusCompleted  JobStatus = "completed"
	JobStatusFailed     JobStatus = "failed"
)

// JobType represents the type of job to be processed
type JobType string

const (
	JobTypeEpisodeProcessing JobType = "episode_processing"
)

// Job represents a background job in the queue
type Job struct {
	gorm.Model
	Type        JobType    `json:"type" gorm:"not null;index:idx_jobs_type_status"`
	Status      JobStatus  `json:"status" gorm:"default:'pending';index:idx_jobs_type_status"`
	Payload     JobPayload `json:"payload" gorm:"type:json"`
	Progress    int        `json:"progress" gorm:"default:0"` // 0-100
	StartedAt   *time.Time `json:"started_at"`
	CompletedAt *time.Time `json:"completed_at"`
	Error       string     `json:"error,omitempty"`
	WorkerID    string     `json:"worker_id,omitempty"`
}

// JobPayload represents the input data for a job
type JobPayload map[string]interface{}

// Value implements driver.Valuer interface for JobPayload
func (p JobPayload) Value() (driver.Value, error) {
	if p == nil {
		return nil, nil
	}
	return json.Marshal(p)
}

// Scan implements sql.Scanner interface for JobPayload
func (p *JobPayload) Scan(value interface{}) error {
	if value == nil {
		*p = make(JobPayload)
		return nil
	}

	bytes, ok := value.([]byte)
	if !ok {
		return errors.New("type assertion to []byte failed")
	}

	return json.Unmarshal(bytes, p)
}

// EpisodeID extracts the episode id from the payload. JSON numbers decode as
// float64, so both paths are handled.
func (j *Job) EpisodeID() (uint, bool) {
	val, ok := j.Payload["episode_id"]
	if !ok {
		return 0, false
	}

	switch v := val.(type) {
	case float64:
		return uint(v), true
	case int:
		return uint(v), true
	case uint:
		return v, true
	default:
		return 0, false
	}
}

// TableName specifies the table name for GORM
func (Job) TableName() string {
	return "jobs"
}
