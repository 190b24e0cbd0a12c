package errclassify

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name     string
		raw      string
		category Category
	}{
		{
			name:     "rate limit with wait time",
			raw:      "Rate limit reached for model whisper-large-v3. Please try again in 1m59.5s.",
			category: CategoryRateLimited,
		},
		{
			name:     "rate limit without wait time",
			raw:      "429 Too Many Requests",
			category: CategoryRateLimited,
		},
		{
			name:     "file too large",
			raw:      "file too large: 31457280 bytes (max 26214400)",
			category: CategoryTooLarge,
		},
		{
			name:     "request exceeds size limit",
			raw:      "request exceeded maximum content size limit",
			category: CategoryTooLarge,
		},
		{
			name:     "forbidden download",
			raw:      "download failed: server returned status 403 Forbidden",
			category: CategoryAccessDenied,
		},
		{
			name:     "gone audio",
			raw:      "server returned status 404",
			category: CategoryNotFound,
		},
		{
			name:     "bad codec",
			raw:      "invalid audio codec in uploaded file",
			category: CategoryUnsupportedFormat,
		},
		{
			name:     "timeout",
			raw:      "context deadline exceeded: request timed out",
			category: CategoryNetwork,
		},
		{
			name:     "dns failure",
			raw:      "dial tcp: lookup cdn.example.com: no such host",
			category: CategoryNetwork,
		},
		{
			name:     "bad api key",
			raw:      "authentication failed: invalid API key provided",
			category: CategoryAuth,
		},
		{
			name:     "unknown",
			raw:      "something completely unexpected happened",
			category: CategoryUnknown,
		},
		{
			name:     "empty input",
			raw:      "",
			category: CategoryUnknown,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			category, message := Classify(tt.raw)
			assert.Equal(t, tt.category, category)
			assert.NotEmpty(t, message)
		})
	}
}

func TestClassifyPrecedence(t *testing.T) {
	// Mentions both a size problem and a format-looking word; size wins
	category, _ := Classify("file too large for the mp3 format decoder")
	assert.Equal(t, CategoryTooLarge, category)

	// Rate limit beats everything else
	category, _ = Classify("rate limit reached while checking file size limit")
	assert.Equal(t, CategoryRateLimited, category)
}

func TestClassifyFallbackCleansTechnicalJunk(t *testing.T) {
	raw := `Error code: 498 - {"error": "flex tier exhausted"} for org_abc123XYZ on service tier ` + "`flex`" + ` capacity gone`

	_, message := Classify(raw)
	assert.NotContains(t, message, "org_abc123XYZ")
	assert.NotContains(t, message, "{")
	assert.NotContains(t, message, "Error code:")
	assert.NotContains(t, message, "`flex`")
}

func TestClassifyFallbackTruncates(t *testing.T) {
	raw := "zz " + strings.Repeat("y", 500)
	_, message := Classify(raw)
	assert.LessOrEqual(t, len(message), 320)
	assert.Contains(t, message, "...")
}

func TestParseRetryAfter(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want time.Duration
		ok   bool
	}{
		{
			name: "minutes and fractional seconds",
			raw:  "Rate limit reached. Please try again in 1m59.5s.",
			want: time.Minute + 59*time.Second + 500*time.Millisecond,
			ok:   true,
		},
		{
			name: "seconds only",
			raw:  "Please try again in 7.66s",
			want: 7*time.Second + 660*time.Millisecond,
			ok:   true,
		},
		{
			name: "plain seconds",
			raw:  "try again in 5s",
			want: 5 * time.Second,
			ok:   true,
		},
		{
			name: "no wait expression",
			raw:  "rate limit exceeded",
			ok:   false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ParseRetryAfter(tt.raw)
			require.Equal(t, tt.ok, ok)
			if ok {
				assert.Equal(t, tt.want, got)
			}
		})
	}
}
