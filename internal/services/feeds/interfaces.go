package feeds

import (
	"context"
	"time"
)

// Feed describes the parsed podcast-level metadata of an RSS feed
type Feed struct {
	Title       string
	Author      string
	Description string
	ImageURL    string
	Episodes    []Item
}

// Item captures one parsed feed episode
type Item struct {
	GUID        string
	Title       string
	Description string
	AudioURL    string
	Published   *time.Time
	Duration    *int // seconds, nil when the feed omits it
}

// Service fetches and parses podcast RSS feeds
type Service interface {
	Fetch(ctx context.Context, url string) (*Feed, error)
}
