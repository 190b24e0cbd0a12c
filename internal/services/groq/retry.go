package groq

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"
)

// callWithRetry runs fn up to MaxRetries times. Rate limit errors sleep for
// the provider's own wait hint plus a small margin; a rough doubling backoff
// covers transient 5xx failures. Everything else fails immediately.
func (c *Client) callWithRetry(ctx context.Context, operation string, fn func() error) error {
	var lastErr error
	backoff := c.config.RetryBackoff

	for attempt := 1; attempt <= c.config.MaxRetries; attempt++ {
		err := fn()
		if err == nil {
			return nil
		}
		lastErr = err

		if attempt == c.config.MaxRetries {
			break
		}

		var rateErr *RateLimitError
		if errors.As(err, &rateErr) {
			wait := rateErr.RetryAfter
			if wait <= 0 {
				wait = backoff
				backoff *= 2
			}
			wait += c.config.RetryAfterMargin

			log.Printf("[DEBUG] Groq %s rate limited, waiting %s (attempt %d/%d)",
				operation, wait, attempt, c.config.MaxRetries)

			if err := c.sleepCtx(ctx, wait); err != nil {
				return err
			}
			continue
		}

		var apiErr *APIError
		if errors.As(err, &apiErr) && apiErr.Transient() {
			log.Printf("[DEBUG] Groq %s failed with status %d, retrying in %s (attempt %d/%d)",
				operation, apiErr.StatusCode, backoff, attempt, c.config.MaxRetries)

			if err := c.sleepCtx(ctx, backoff); err != nil {
				return err
			}
			backoff *= 2
			continue
		}

		return err
	}

	return fmt.Errorf("%s after %d attempts: %w (%w)",
		operation, c.config.MaxRetries, ErrRetriesExhausted, lastErr)
}

func (c *Client) sleepCtx(ctx context.Context, d time.Duration) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	c.sleep(d)
	return ctx.Err()
}
