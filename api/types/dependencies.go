package types

import (
	"github.com/podintel/podintel-api/internal/database"
	"github.com/podintel/podintel-api/internal/services/episodes"
	"github.com/podintel/podintel-api/internal/services/jobs"
	"github.com/podintel/podintel-api/internal/services/pipeline"
	"github.com/podintel/podintel-api/internal/services/podcasts"
	"github.com/podintel/podintel-api/internal/services/workers"
)

// Dependencies holds all the dependencies needed by handlers
type Dependencies struct {
	DB              *database.DB
	PodcastService  podcasts.PodcastService
	EpisodeService  episodes.EpisodeService
	PipelineService pipeline.Service
	JobService      jobs.Service
	WorkerPool      *workers.WorkerPool
}
