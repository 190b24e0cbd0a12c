// Package errclassify maps raw provider and network error text onto a closed
// set of user-facing causes. The stored error message shown to a polling
// client comes from here, never from a raw API response.
package errclassify

import (
	"regexp"
	"strings"
	"time"
)

// Category identifies the user-facing cause of a processing failure.
type Category string

const (
	CategoryRateLimited       Category = "rate_limited"
	CategoryTooLarge          Category = "too_large"
	CategoryAccessDenied      Category = "access_denied"
	CategoryNotFound          Category = "not_found"
	CategoryUnsupportedFormat Category = "unsupported_format"
	CategoryNetwork           Category = "network"
	CategoryAuth              Category = "auth"
	CategoryUnknown           Category = "unknown"
)

// maxMessageLength bounds the fallback message so a raw provider blob never
// reaches the UI untruncated.
const maxMessageLength = 200

var (
	// Matches provider wait hints like "try again in 1m59.5s" or "in 7.66s"
	waitRe = regexp.MustCompile(`try again in ((?:\d+h)?(?:\d+m)?\d+(?:\.\d+)?s)`)

	errorCodeRe   = regexp.MustCompile(`Error code: \d+\s*-\s*`)
	jsonBlobRe    = regexp.MustCompile(`\{[^}]*\}`)
	orgIDRe       = regexp.MustCompile(`org_[a-zA-Z0-9]+`)
	serviceTierRe = regexp.MustCompile("service tier `[^`]+`")
)

// Classify resolves a raw error string to exactly one category and a message
// suitable for storing as the episode's error_message. It is pure and total:
// any input, including empty, yields a category. Precedence follows the rule
// order below; the first match wins.
func Classify(raw string) (Category, string) {
	if raw == "" {
		return CategoryUnknown, "An unexpected error occurred. Please try again."
	}

	lower := strings.ToLower(raw)

	// 1. Provider quota / rate limit still visible after retries exhausted
	if strings.Contains(lower, "rate limit") || strings.Contains(lower, "too many requests") {
		if wait, ok := ParseRetryAfter(raw); ok {
			return CategoryRateLimited,
				"Hit a temporary capacity limit. The system will automatically retry in about " + formatWait(wait) + ". No action needed."
		}
		return CategoryRateLimited,
			"Hit a temporary capacity limit. The system will automatically retry shortly. No action needed."
	}

	// 2. Payload too large (checked before format: provider size errors often
	// mention the file type as well)
	if (strings.Contains(lower, "file") || strings.Contains(lower, "request") || strings.Contains(lower, "payload")) &&
		(strings.Contains(lower, "too large") || strings.Contains(lower, "size limit") || strings.Contains(lower, "maximum content size")) {
		return CategoryTooLarge, "The input exceeds the size limit. The system will compress or split it and try again."
	}

	// 3. Access denied - publisher hosts frequently reject automated clients
	if strings.Contains(lower, "403") || strings.Contains(lower, "forbidden") ||
		strings.Contains(lower, "access denied") || strings.Contains(lower, "status 401") {
		return CategoryAccessDenied, "The source blocked the request. The publisher may not allow automated downloads of this episode."
	}

	// 4. Not found
	if strings.Contains(lower, "404") || strings.Contains(lower, "not found") {
		return CategoryNotFound, "This resource is no longer available. It may have been removed by the publisher."
	}

	// 5. Unsupported or corrupt media
	if strings.Contains(lower, "format") || strings.Contains(lower, "codec") || strings.Contains(lower, "invalid audio") {
		return CategoryUnsupportedFormat, "This audio format isn't supported. Please use MP3, WAV, or M4A files."
	}

	// 6. Network / timeout
	if strings.Contains(lower, "network") || strings.Contains(lower, "connection") ||
		strings.Contains(lower, "timeout") || strings.Contains(lower, "timed out") ||
		strings.Contains(lower, "unreachable") || strings.Contains(lower, "no such host") {
		return CategoryNetwork, "Connectivity issue detected. The system will automatically retry."
	}

	// 7. Authentication / configuration
	if strings.Contains(lower, "api key") || strings.Contains(lower, "authentication") ||
		strings.Contains(lower, "unauthorized") || strings.Contains(lower, "invalid credentials") {
		return CategoryAuth, "Service misconfiguration detected. Please contact support - this is not something you can fix."
	}

	// 8. Fallback: strip technical junk and truncate
	return CategoryUnknown, cleanFallback(raw)
}

// ParseRetryAfter extracts a provider-reported wait duration from error text
// such as "Rate limit reached ... Please try again in 1m59.5s."
func ParseRetryAfter(raw string) (time.Duration, bool) {
	m := waitRe.FindStringSubmatch(raw)
	if m == nil {
		return 0, false
	}

	d, err := time.ParseDuration(m[1])
	if err != nil || d < 0 {
		return 0, false
	}
	return d, true
}

func cleanFallback(raw string) string {
	cleaned := errorCodeRe.ReplaceAllString(raw, "")
	cleaned = jsonBlobRe.ReplaceAllString(cleaned, "")
	cleaned = orgIDRe.ReplaceAllString(cleaned, "")
	cleaned = serviceTierRe.ReplaceAllString(cleaned, "")
	cleaned = strings.TrimSpace(cleaned)

	if cleaned == "" {
		return "An unexpected error occurred. The system will automatically retry."
	}

	if runes := []rune(cleaned); len(runes) > maxMessageLength {
		return string(runes[:maxMessageLength]) + "... The system will automatically retry. If this persists, please contact support."
	}

	return cleaned
}

func formatWait(d time.Duration) string {
	return d.Round(time.Second).String()
}
