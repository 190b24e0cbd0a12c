package groq

import (
	"errors"
	"fmt"
	"time"
)

var (
	// ErrRetriesExhausted indicates all retry attempts failed
	ErrRetriesExhausted = errors.New("groq: retries exhausted")
)

// RateLimitError reports a provider throttle. RetryAfter carries the wait the
// provider asked for, parsed from the error body; zero means no wait was
// parseable and the caller should fall back to its default backoff.
type RateLimitError struct {
	RetryAfter time.Duration
	Detail     string
}

func (e *RateLimitError) Error() string {
	if e.RetryAfter > 0 {
		return fmt.Sprintf("groq: rate limit reached, try again in %s", e.RetryAfter)
	}
	return fmt.Sprintf("groq: rate limit reached: %s", e.Detail)
}

// APIError reports a non-throttle provider failure
type APIError struct {
	StatusCode int
	Detail     string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("groq: API returned status %d: %s", e.StatusCode, e.Detail)
}

// Transient reports whether retrying could plausibly succeed
func (e *APIError) Transient() bool {
	return e.StatusCode >= 500
}

// Transcription is the provider's transcription result
type Transcription struct {
	Text     string  `json:"text"`
	Language string  `json:"language"`
	Duration float64 `json:"duration"`
}

// chatRequest is the chat completion request body
type chatRequest struct {
	Model       string        `json:"model"`
	Messages    []chatMessage `json:"messages"`
	Temperature float64       `json:"temperature"`
	MaxTokens   int           `json:"max_tokens"`
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// chatResponse is the chat completion response body
type chatResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
}

// apiErrorResponse is the provider's error envelope
type apiErrorResponse struct {
	Error struct {
		Message string `json:"message"`
		Type    string `json:"type"`
		Code    string `json:"code"`
	} `json:"error"`
}
