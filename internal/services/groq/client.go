package groq

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"golang.org/x/time/rate"

	"github.com/podintel/podintel-api/pkg/errclassify"
)

// Config holds configuration for the Groq client
type Config struct {
	APIKey             string
	BaseURL            string // Default: https://api.groq.com/openai/v1
	TranscriptionModel string // Default: whisper-large-v3
	SummarizationModel string // Default: llama-3.3-70b-versatile

	Timeout           time.Duration // Default: 5m (transcription uploads are slow)
	MaxRetries        int           // Default: 3
	RetryBackoff      time.Duration // Default: 2s
	RetryAfterMargin  time.Duration // Default: 2s, added on top of provider wait hints
	RequestsPerMinute int           // Default: 25
	BurstSize         int           // Default: 2
}

// Client handles communication with the Groq API. A shared rate limiter sits
// in front of both endpoints because transcription and summarization draw
// from the same account quota.
type Client struct {
	httpClient  *http.Client
	rateLimiter *rate.Limiter
	config      Config

	// sleep is swappable so retry timing is testable
	sleep func(time.Duration)
}

// NewClient creates a new Groq API client
func NewClient(cfg Config) *Client {
	if cfg.BaseURL == "" {
		cfg.BaseURL = "https://api.groq.com/openai/v1"
	}
	if cfg.TranscriptionModel == "" {
		cfg.TranscriptionModel = "whisper-large-v3"
	}
	if cfg.SummarizationModel == "" {
		cfg.SummarizationModel = "llama-3.3-70b-versatile"
	}
	if cfg.Timeout == 0 {
		cfg.Timeout = 5 * time.Minute
	}
	if cfg.MaxRetries == 0 {
		cfg.MaxRetries = 3
	}
	if cfg.RetryBackoff == 0 {
		cfg.RetryBackoff = 2 * time.Second
	}
	if cfg.RetryAfterMargin == 0 {
		cfg.RetryAfterMargin = 2 * time.Second
	}
	if cfg.RequestsPerMinute == 0 {
		cfg.RequestsPerMinute = 25
	}
	if cfg.BurstSize == 0 {
		cfg.BurstSize = 2
	}

	limiter := rate.NewLimiter(
		rate.Every(time.Minute/time.Duration(cfg.RequestsPerMinute)),
		cfg.BurstSize,
	)

	return &Client{
		httpClient: &http.Client{
			Timeout: cfg.Timeout,
		},
		rateLimiter: limiter,
		config:      cfg,
		sleep:       time.Sleep,
	}
}

// Transcribe uploads an audio file and returns its transcript
func (c *Client) Transcribe(ctx context.Context, filePath string) (*Transcription, error) {
	var result Transcription

	err := c.callWithRetry(ctx, "transcription", func() error {
		return c.doTranscribe(ctx, filePath, &result)
	})
	if err != nil {
		return nil, err
	}
	return &result, nil
}

// ChatComplete sends a single system+user prompt pair and returns the
// assistant's reply text
func (c *Client) ChatComplete(ctx context.Context, system, user string) (string, error) {
	var result string

	err := c.callWithRetry(ctx, "chat completion", func() error {
		text, err := c.doChatComplete(ctx, system, user)
		if err != nil {
			return err
		}
		result = text
		return nil
	})
	if err != nil {
		return "", err
	}
	return result, nil
}

func (c *Client) doTranscribe(ctx context.Context, filePath string, out *Transcription) error {
	if err := c.rateLimiter.Wait(ctx); err != nil {
		return fmt.Errorf("rate limiter wait: %w", err)
	}

	file, err := os.Open(filePath)
	if err != nil {
		return fmt.Errorf("open audio file: %w", err)
	}
	defer file.Close()

	var body bytes.Buffer
	writer := multipart.NewWriter(&body)

	part, err := writer.CreateFormFile("file", filepath.Base(filePath))
	if err != nil {
		return fmt.Errorf("create form file: %w", err)
	}
	if _, err := io.Copy(part, file); err != nil {
		return fmt.Errorf("copy audio into form: %w", err)
	}
	if err := writer.WriteField("model", c.config.TranscriptionModel); err != nil {
		return fmt.Errorf("write model field: %w", err)
	}
	if err := writer.WriteField("response_format", "verbose_json"); err != nil {
		return fmt.Errorf("write response_format field: %w", err)
	}
	if err := writer.Close(); err != nil {
		return fmt.Errorf("close multipart writer: %w", err)
	}

	url := c.config.BaseURL + "/audio/transcriptions"
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, &body)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.config.APIKey)
	req.Header.Set("Content-Type", writer.FormDataContentType())

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("http request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return c.errorFromResponse(resp)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode transcription response: %w", err)
	}
	return nil
}

func (c *Client) doChatComplete(ctx context.Context, system, user string) (string, error) {
	if err := c.rateLimiter.Wait(ctx); err != nil {
		return "", fmt.Errorf("rate limiter wait: %w", err)
	}

	reqBody := chatRequest{
		Model: c.config.SummarizationModel,
		Messages: []chatMessage{
			{Role: "system", Content: system},
			{Role: "user", Content: user},
		},
		Temperature: 0.3,
		MaxTokens:   2048,
	}

	payload, err := json.Marshal(reqBody)
	if err != nil {
		return "", fmt.Errorf("marshal chat request: %w", err)
	}

	url := c.config.BaseURL + "/chat/completions"
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return "", fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.config.APIKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("http request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", c.errorFromResponse(resp)
	}

	var result chatResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return "", fmt.Errorf("decode chat response: %w", err)
	}
	if len(result.Choices) == 0 {
		return "", &APIError{StatusCode: resp.StatusCode, Detail: "empty choices in response"}
	}

	return strings.TrimSpace(result.Choices[0].Message.Content), nil
}

// errorFromResponse turns a non-200 response into a typed error. 429 and
// 413 are distinguished because the caller handles them differently: 429
// sleeps for the provider's wait hint, 413 triggers chunking upstream.
func (c *Client) errorFromResponse(resp *http.Response) error {
	raw, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
	detail := string(raw)

	var envelope apiErrorResponse
	if err := json.Unmarshal(raw, &envelope); err == nil && envelope.Error.Message != "" {
		detail = envelope.Error.Message
	}

	if resp.StatusCode == http.StatusTooManyRequests {
		wait, _ := errclassify.ParseRetryAfter(detail)
		return &RateLimitError{RetryAfter: wait, Detail: detail}
	}

	log.Printf("[ERROR] Groq API error: status=%d detail=%s", resp.StatusCode, detail)
	return &APIError{StatusCode: resp.StatusCode, Detail: detail}
}
