package podcasts

import (
	"errors"
	"fmt"
)

// Common errors
var (
	ErrPodcastNotFound = errors.New("podcast not found")
	ErrInvalidFeed     = errors.New("invalid feed")
)

// NotFoundError represents an error when a podcast is not found
type NotFoundError struct {
	ID interface{}
}

func (e NotFoundError) Error() string {
	return fmt.Sprintf("podcast with identifier %v not found", e.ID)
}

func (e NotFoundError) Is(target error) bool {
	return target == ErrPodcastNotFound
}

// FeedError represents a problem fetching or parsing a feed
type FeedError struct {
	URL string
	Err error
}

func (e FeedError) Error() string {
	return fmt.Sprintf("feed %s: %v", e.URL, e.Err)
}

func (e FeedError) Is(target error) bool {
	return target == ErrInvalidFeed
}

func (e FeedError) Unwrap() error {
	return e.Err
}
