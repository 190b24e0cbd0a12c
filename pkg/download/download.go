// Package download fetches episode audio to temporary storage.
package download

import (
	"context"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// HTTPStatusError reports a non-success response from the audio host. The
// status code is part of the message so the error classifier can resolve
// 401/403/404 responses to their user-facing causes.
type HTTPStatusError struct {
	StatusCode int
	URL        string
}

func (e *HTTPStatusError) Error() string {
	return fmt.Sprintf("server returned status %d %s for %s",
		e.StatusCode, http.StatusText(e.StatusCode), e.URL)
}

// Options configures the download behavior
type Options struct {
	TempDir   string        // Directory for temporary files
	MaxSize   int64         // Maximum file size in bytes (0 = no limit)
	Timeout   time.Duration // Download timeout
	UserAgent string        // User agent string
}

// DefaultOptions returns default download options
func DefaultOptions() Options {
	return Options{
		TempDir:   os.TempDir(),
		MaxSize:   500 * 1024 * 1024,
		Timeout:   5 * time.Minute,
		UserAgent: "Mozilla/5.0 (compatible; PodIntel/1.0; +https://github.com/podintel/podintel-api)",
	}
}

// Result contains information about a successful download
type Result struct {
	FilePath      string // Path to downloaded file
	ContentType   string // Content-Type from response
	ContentLength int64  // Size in bytes
}

// Downloader fetches audio files from publisher hosts. Several hosts reject
// bot-looking requests outright, so requests carry full browser-style headers.
type Downloader struct {
	client  *http.Client
	options Options
}

// NewDownloader creates a new downloader with the given options
func NewDownloader(options Options) *Downloader {
	return &Downloader{
		client: &http.Client{
			Timeout: options.Timeout,
			Transport: &http.Transport{
				MaxIdleConns:        10,
				IdleConnTimeout:     30 * time.Second,
				DisableCompression:  true, // audio is already compressed
				TLSHandshakeTimeout: 10 * time.Second,
			},
		},
		options: options,
	}
}

// DownloadToTemp downloads a URL to a temporary file
func (d *Downloader) DownloadToTemp(ctx context.Context, url string, episodeID uint) (*Result, error) {
	log.Printf("[DEBUG] Starting download from %s for episode %d", url, episodeID)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("User-Agent", d.options.UserAgent)
	req.Header.Set("Accept", "audio/mpeg,audio/*;q=0.9,*/*;q=0.8")
	req.Header.Set("Accept-Language", "en-US,en;q=0.9")
	req.Header.Set("Connection", "keep-alive")

	resp, err := d.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to download: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusPartialContent {
		return nil, &HTTPStatusError{StatusCode: resp.StatusCode, URL: url}
	}

	contentLength := resp.ContentLength
	if d.options.MaxSize > 0 && contentLength > d.options.MaxSize {
		return nil, fmt.Errorf("file too large: %d bytes (max %d)", contentLength, d.options.MaxSize)
	}

	tempFile, err := d.createTempFile(episodeID, url)
	if err != nil {
		return nil, fmt.Errorf("failed to create temp file: %w", err)
	}

	reader := io.Reader(resp.Body)
	if d.options.MaxSize > 0 {
		reader = &io.LimitedReader{R: reader, N: d.options.MaxSize}
	}

	written, err := io.Copy(tempFile, reader)
	tempPath := tempFile.Name()
	tempFile.Close()

	if err != nil {
		os.Remove(tempPath)
		return nil, fmt.Errorf("failed to download: %w", err)
	}

	log.Printf("[DEBUG] Downloaded %d bytes to %s", written, tempPath)

	return &Result{
		FilePath:      tempPath,
		ContentType:   resp.Header.Get("Content-Type"),
		ContentLength: written,
	}, nil
}

// createTempFile creates a temporary file for the download
func (d *Downloader) createTempFile(episodeID uint, url string) (*os.File, error) {
	// Extract file extension from URL if possible
	ext := ".mp3" // default
	if parts := strings.Split(url, "."); len(parts) > 1 {
		lastPart := parts[len(parts)-1]
		if idx := strings.Index(lastPart, "?"); idx > 0 {
			lastPart = lastPart[:idx]
		}
		if isValidAudioExtension(lastPart) {
			ext = "." + lastPart
		}
	}

	pattern := fmt.Sprintf("episode_%d_*%s", episodeID, ext)
	return os.CreateTemp(d.options.TempDir, pattern)
}

// CleanupTempFile removes a temporary file
func CleanupTempFile(path string) error {
	if path == "" {
		return nil
	}

	log.Printf("[DEBUG] Cleaning up temp file: %s", path)
	return os.Remove(path)
}

// CleanupOldTempFiles removes temp files older than the specified duration
func CleanupOldTempFiles(tempDir string, maxAge time.Duration) error {
	pattern := filepath.Join(tempDir, "episode_*")
	files, err := filepath.Glob(pattern)
	if err != nil {
		return err
	}

	cutoff := time.Now().Add(-maxAge)
	var removed int

	for _, file := range files {
		info, err := os.Stat(file)
		if err != nil {
			continue
		}

		if info.ModTime().Before(cutoff) {
			if err := os.Remove(file); err == nil {
				removed++
			}
		}
	}

	if removed > 0 {
		log.Printf("[DEBUG] Cleaned up %d old temp files", removed)
	}

	return nil
}

// isValidAudioExtension checks if extension is valid for audio files
func isValidAudioExtension(ext string) bool {
	ext = strings.ToLower(ext)
	validExts := []string{"mp3", "m4a", "aac", "ogg", "wav", "flac", "opus", "webm"}
	for _, valid := range validExts {
		if ext == valid {
			return true
		}
	}
	return false
}
