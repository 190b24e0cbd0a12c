// Package chunk splits oversized text into provider-acceptable pieces.
//
// Splitting is an overflow mechanism only: callers check EstimateTokens
// against their per-request budget and fall back to Split when a single
// call would exceed it. Chunks are non-overlapping and concatenating them
// reconstructs the input exactly.
package chunk

import (
	"strings"
	"unicode/utf8"
)

// charsPerToken is a conservative character-to-token ratio. English prose
// averages closer to 4 chars/token; using 4 keeps the estimate monotonic and
// errs toward chunking before the provider rejects the request.
const charsPerToken = 4

// EstimateTokens returns a cheap, deterministic token estimate for text.
func EstimateTokens(text string) int {
	if text == "" {
		return 0
	}
	return (utf8.RuneCountInString(text) + charsPerToken - 1) / charsPerToken
}

// Split breaks text into the fewest chunks that each stay under maxTokens,
// preferring paragraph boundaries, then sentence boundaries, then a hard
// rune-boundary split. Separators stay attached to the preceding segment so
// strings.Join(chunks, "") == text.
func Split(text string, maxTokens int) []string {
	if text == "" {
		return nil
	}
	if maxTokens <= 0 || EstimateTokens(text) <= maxTokens {
		return []string{text}
	}

	maxRunes := maxTokens * charsPerToken

	var segments []string
	for _, para := range splitAfter(text, "\n\n") {
		if utf8.RuneCountInString(para) <= maxRunes {
			segments = append(segments, para)
			continue
		}
		for _, sentence := range splitSentences(para) {
			if utf8.RuneCountInString(sentence) <= maxRunes {
				segments = append(segments, sentence)
				continue
			}
			segments = append(segments, hardSplit(sentence, maxRunes)...)
		}
	}

	return pack(segments, maxRunes)
}

// pack greedily merges consecutive segments into chunks under maxRunes.
func pack(segments []string, maxRunes int) []string {
	var chunks []string
	var current strings.Builder
	currentRunes := 0

	for _, seg := range segments {
		segRunes := utf8.RuneCountInString(seg)
		if currentRunes > 0 && currentRunes+segRunes > maxRunes {
			chunks = append(chunks, current.String())
			current.Reset()
			currentRunes = 0
		}
		current.WriteString(seg)
		currentRunes += segRunes
	}

	if current.Len() > 0 {
		chunks = append(chunks, current.String())
	}

	return chunks
}

// splitAfter is like strings.SplitAfter but drops the trailing empty element
// produced when text ends with the separator.
func splitAfter(text, sep string) []string {
	parts := strings.SplitAfter(text, sep)
	if len(parts) > 0 && parts[len(parts)-1] == "" {
		parts = parts[:len(parts)-1]
	}
	return parts
}

// splitSentences splits text after sentence-ending punctuation followed by
// whitespace, keeping the whitespace attached to the finished sentence.
func splitSentences(text string) []string {
	var sentences []string
	start := 0
	runes := []rune(text)

	for i := 0; i < len(runes)-1; i++ {
		if isSentenceEnd(runes[i]) && isSpace(runes[i+1]) {
			// Consume the whitespace run into this sentence
			end := i + 1
			for end < len(runes) && isSpace(runes[end]) {
				end++
			}
			sentences = append(sentences, string(runes[start:end]))
			start = end
			i = end - 1
		}
	}

	if start < len(runes) {
		sentences = append(sentences, string(runes[start:]))
	}

	return sentences
}

// hardSplit cuts text at rune boundaries when no natural boundary fits.
func hardSplit(text string, maxRunes int) []string {
	var parts []string
	runes := []rune(text)

	for len(runes) > maxRunes {
		parts = append(parts, string(runes[:maxRunes]))
		runes = runes[maxRunes:]
	}
	if len(runes) > 0 {
		parts = append(parts, string(runes))
	}

	return parts
}

func isSentenceEnd(r rune) bool {
	return r == '.' || r == '!' || r == '?'
}

func isSpace(r rune) bool {
	return r == ' ' || r == '\t' || r == '\n' || r == '\r'
}
