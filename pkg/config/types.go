package config

import "time"

// Config represents the complete application configuration
type Config struct {
	Environment string           `mapstructure:"environment"`
	Server      ServerConfig     `mapstructure:"server"`
	Database    DatabaseConfig   `mapstructure:"database"`
	Processing  ProcessingConfig `mapstructure:"processing"`
	Groq        GroqConfig       `mapstructure:"groq"`
	Download    DownloadConfig   `mapstructure:"download"`
	Storage     StorageConfig    `mapstructure:"storage"`
}

// ServerConfig contains HTTP server settings
type ServerConfig struct {
	Host            string        `mapstructure:"host"`
	Port            int           `mapstructure:"port"`
	ReadTimeout     time.Duration `mapstructure:"read_timeout"`
	WriteTimeout    time.Duration `mapstructure:"write_timeout"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout"`
	MaxHeaderBytes  int           `mapstructure:"max_header_bytes"`
}

// DatabaseConfig contains database settings
type DatabaseConfig struct {
	Path      string `mapstructure:"path"`
	EnableWAL bool   `mapstructure:"enable_wal"`
	Verbose   bool   `mapstructure:"verbose"`
}

// ProcessingConfig contains pipeline worker settings
type ProcessingConfig struct {
	Workers      int           `mapstructure:"workers"`
	PollInterval time.Duration `mapstructure:"poll_interval"`
	JobTimeout   time.Duration `mapstructure:"job_timeout"`
}

// GroqConfig contains Groq API settings. The chunking thresholds were tuned
// against provider limits that vary by account tier, so they are configuration
// rather than constants.
type GroqConfig struct {
	APIKey             string        `mapstructure:"api_key"`
	BaseURL            string        `mapstructure:"base_url"`
	TranscriptionModel string        `mapstructure:"transcription_model"`
	SummarizationModel string        `mapstructure:"summarization_model"`
	Timeout            time.Duration `mapstructure:"timeout"`
	MaxRetries         int           `mapstructure:"max_retries"`
	RetryBackoff       time.Duration `mapstructure:"retry_backoff"`
	RetryAfterMargin   time.Duration `mapstructure:"retry_after_margin"`
	RequestsPerMinute  int           `mapstructure:"requests_per_minute"`
	MaxChunkTokens     int           `mapstructure:"max_chunk_tokens"`
	MaxTranscriptWords int           `mapstructure:"max_transcript_words"`
}

// DownloadConfig contains audio download settings
type DownloadConfig struct {
	Timeout   time.Duration `mapstructure:"timeout"`
	MaxSize   int64         `mapstructure:"max_size"`
	UserAgent string        `mapstructure:"user_agent"`
}

// StorageConfig contains storage settings
type StorageConfig struct {
	TempDir    string        `mapstructure:"temp_dir"`
	MaxTempAge time.Duration `mapstructure:"max_temp_age"`
}
