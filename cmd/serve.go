package cmd

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"

	"github.com/podintel/podintel-api/api"
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
	"github.com/podintel/podintel-api/pkg/config"
	"github.com/podintel/podintel-api/pkg/download"
)

var (
	serverHost string
	serverPort int
)

// serveCmd represents the serve command
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the API server",
	Long: `Start the PodIntel API server with the configured settings.

The server exposes the podcast and episode endpoints and runs the
background worker pool that drains the processing queue.

Example:
  podintel-api serve
  podintel-api serve --port 9090
  podintel-api serve --host 0.0.0.0 --port 8080`,
	RunE: runServer,
}

func init() {
	rootCmd.AddCommand(serveCmd)

	serveCmd.Flags().StringVar(&serverHost, "host", "", "server host (overrides config)")
	serveCmd.Flags().IntVar(&serverPort, "port", 0, "server port (overrides config)")
}

func runServer(cmd *cobra.Command, args []string) error {
	cfg, err := config.GetConfig()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	if serverHost == "" {
		serverHost = cfg.Server.Host
	}
	if serverPort == 0 {
		serverPort = cfg.Server.Port
	}

	db, err := database.Initialize(database.Options{
		Path:      cfg.Database.Path,
		EnableWAL: cfg.Database.EnableWAL,
		Verbose:   cfg.Database.Verbose,
	})
	if err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Printf("[WARN] Failed to close database: %v", err)
		}
	}()

	if err := db.AutoMigrate(&models.Podcast{}, &models.Episode{}, &models.Job{}); err != nil {
		return fmt.Errorf("failed to migrate database: %w", err)
	}

	deps, pool := buildDependencies(cfg, db)

	workerCtx, stopWorkers := context.WithCancel(context.Background())
	defer stopWorkers()
	if err := pool.Start(workerCtx); err != nil {
		return fmt.Errorf("failed to start worker pool: %w", err)
	}

	if cfg.Environment == "production" || cfg.Environment == "prod" {
		gin.SetMode(gin.ReleaseMode)
	}

	engine := gin.New()
	engine.Use(gin.Logger(), gin.Recovery())
	engine.Use(api.CORS())
	engine.Use(api.RequestSizeLimit())

	var (
		rateLimiters       sync.Map
		cleanupInitialized sync.Once
	)
	cleanupStop := make(chan struct{})
	api.RegisterRoutes(engine, deps, &rateLimiters, cleanupStop, &cleanupInitialized)

	srv := &http.Server{
		Addr:           fmt.Sprintf("%s:%d", serverHost, serverPort),
		Handler:        engine,
		ReadTimeout:    cfg.Server.ReadTimeout,
		WriteTimeout:   cfg.Server.WriteTimeout,
		MaxHeaderBytes: cfg.Server.MaxHeaderBytes,
	}

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	serverErr := make(chan error, 1)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			serverErr <- fmt.Errorf("server error: %w", err)
		}
	}()

	log.Printf("[INFO] PodIntel API listening on %s:%d", serverHost, serverPort)

	select {
	case <-stop:
		log.Printf("[INFO] Shutdown signal received")
	case err := <-serverErr:
		log.Printf("[ERROR] %v", err)
	}

	// Stop accepting requests first, then drain workers so an in-flight
	// pipeline stage can persist its status before the process exits.
	ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Printf("[ERROR] Server forced to shutdown: %v", err)
	}

	pool.Stop()
	close(cleanupStop)

	log.Printf("[INFO] Server stopped")
	return nil
}

// buildDependencies wires the service graph from configuration
func buildDependencies(cfg *config.Config, db *database.DB) (*types.Dependencies, *workers.WorkerPool) {
	feedService := feeds.New(nil)

	downloader := download.NewDownloader(download.Options{
		TempDir:   cfg.Storage.TempDir,
		MaxSize:   cfg.Download.MaxSize,
		Timeout:   cfg.Download.Timeout,
		UserAgent: cfg.Download.UserAgent,
	})

	groqClient := groq.NewClient(groq.Config{
		APIKey:             cfg.Groq.APIKey,
		BaseURL:            cfg.Groq.BaseURL,
		TranscriptionModel: cfg.Groq.TranscriptionModel,
		SummarizationModel: cfg.Groq.SummarizationModel,
		Timeout:            cfg.Groq.Timeout,
		MaxRetries:         cfg.Groq.MaxRetries,
		RetryBackoff:       cfg.Groq.RetryBackoff,
		RetryAfterMargin:   cfg.Groq.RetryAfterMargin,
		RequestsPerMinute:  cfg.Groq.RequestsPerMinute,
	})

	summarizer := summarize.New(groqClient, cfg.Groq.MaxChunkTokens, cfg.Groq.MaxTranscriptWords)

	podcastRepo := podcasts.NewRepository(db.DB)
	episodeRepo := episodes.NewRepository(db.DB)
	jobService := jobs.NewService(jobs.NewRepository(db.DB))

	podcastService := podcasts.NewService(podcastRepo, episodeRepo, feedService)
	episodeService := episodes.NewService(episodeRepo)
	pipelineService := pipeline.NewService(podcastRepo, episodeRepo, feedService, jobService)

	processor := pipeline.NewProcessor(podcastRepo, episodeRepo, jobService, downloader, groqClient, summarizer)
	pool := workers.NewWorkerPool(jobService, cfg.Processing.Workers, cfg.Processing.PollInterval)
	pool.RegisterProcessor(processor)

	return &types.Dependencies{
		DB:              db,
		PodcastService:  podcastService,
		EpisodeService:  episodeService,
		PipelineService: pipelineService,
		JobService:      jobService,
		WorkerPool:      pool,
	}, pool
}
