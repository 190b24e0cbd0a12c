package models

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"time"

	"gorm.io/gorm"
)

// Podcast represents a registered podcast feed
type Podcast struct {
	gorm.Model
	Title       string    `json:"title" gorm:"not null"`
	Author      string    `json:"author"`
	Description string    `json:"description" gorm:"type:text"`
	RSSURL      string    `json:"rss_url" gorm:"uniqueIndex;not null;column:rss_url"`
	ImageURL    string    `json:"image_url"`
	Episodes    []Episode `json:"episodes,omitempty" gorm:"foreignKey:PodcastID"`
}

// EpisodeStatus represents where an episode is in the processing pipeline
type EpisodeStatus string

const (
	EpisodeStatusNew          EpisodeStatus = "new"
	EpisodeStatusPending      EpisodeStatus = "pending"
	EpisodeStatusDownloading  EpisodeStatus = "downloading"
	EpisodeStatusTranscribing EpisodeStatus = "transcribing"
	EpisodeStatusSummarizing  EpisodeStatus = "summarizing"
	EpisodeStatusCompleted    EpisodeStatus = "completed"
	EpisodeStatusFailed       EpisodeStatus = "failed"
)

// IsTerminal returns true if no run is active and none is scheduled
func (s EpisodeStatus) IsTerminal() bool {
	return s == EpisodeStatusCompleted || s == EpisodeStatusFailed
}

// IsActive returns true while a worker is driving the episode through a run.
// Pending is deliberately excluded: a pending episode may be stuck (process
// died before the worker picked it up) and is allowed to be re-requested.
func (s EpisodeStatus) IsActive() bool {
	return s == EpisodeStatusDownloading ||
		s == EpisodeStatusTranscribing ||
		s == EpisodeStatusSummarizing
}

// Episode represents a podcast episode and its processing state
type Episode struct {
	gorm.Model
	PodcastID uint   `json:"podcast_id" gorm:"not null;index;uniqueIndex:idx_episodes_podcast_guid"`
	GUID      string `json:"guid" gorm:"not null;uniqueIndex:idx_episodes_podcast_guid"`

	Title       string     `json:"title" gorm:"not null"`
	Description string     `json:"description" gorm:"type:text"`
	AudioURL    string     `json:"audio_url" gorm:"not null;column:audio_url"`
	Published   *time.Time `json:"published"`
	Duration    *int       `json:"duration"` // seconds, nullable

	Status       EpisodeStatus `json:"status" gorm:"default:'new';index"`
	ErrorMessage string        `json:"error_message,omitempty" gorm:"type:text"`
	Transcript   string        `json:"transcript,omitempty" gorm:"type:text"`
	Summary      *Summary      `json:"summary,omitempty" gorm:"type:json"`
	CompletedAt  *time.Time    `json:"completed_at"`
}

// Summary holds the four generated summary sections for an episode
type Summary struct {
	ExecutiveSummary   string `json:"executive_summary"`
	KeyThemes          string `json:"key_themes"`
	NotableQuotes      string `json:"notable_quotes"`
	ActionableInsights string `json:"actionable_insights"`
	PromptVersion      string `json:"prompt_version,omitempty"`
}

// Value implements driver.Valuer so Summary is stored as a JSON column
func (s *Summary) Value() (driver.Value, error) {
	if s == nil {
		return nil, nil
	}
	return json.Marshal(s)
}

// Scan implements sql.Scanner for Summary
func (s *Summary) Scan(value interface{}) error {
	if value == nil {
		return nil
	}

	switch v := value.(type) {
	case []byte:
		return json.Unmarshal(v, s)
	case string:
		return json.Unmarshal([]byte(v), s)
	default:
		return errors.New("unsupported type for summary column")
	}
}
