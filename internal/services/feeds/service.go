// Package feeds fetches and parses podcast RSS feeds.
package feeds

import (
	"context"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"strconv"
	"strings"
	"time"
)

var (
	// ErrEmptyFeed indicates the feed parsed but contains no channel title
	ErrEmptyFeed = errors.New("feed has no channel title")
)

const maxFeedSize = 10 * 1024 * 1024

type service struct {
	client    *http.Client
	userAgent string
}

// New creates a feed service with the given HTTP client. A nil client falls
// back to a 30s-timeout default.
func New(client *http.Client) Service {
	if client == nil {
		client = &http.Client{Timeout: 30 * time.Second}
	}
	return &service{
		client:    client,
		userAgent: "PodIntel/1.0 (+https://github.com/podintel/podintel-api)",
	}
}

// Fetch retrieves and parses an RSS feed
func (s *service) Fetch(ctx context.Context, url string) (*Feed, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("create feed request: %w", err)
	}
	req.Header.Set("User-Agent", s.userAgent)
	req.Header.Set("Accept", "application/rss+xml, application/xml, text/xml")

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch feed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("fetch feed failed: status %d %s", resp.StatusCode, http.StatusText(resp.StatusCode))
	}

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxFeedSize))
	if err != nil {
		return nil, fmt.Errorf("read feed: %w", err)
	}

	return parse(data)
}

func parse(data []byte) (*Feed, error) {
	var doc rssDocument
	if err := xml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parse feed: %w", err)
	}

	title := strings.TrimSpace(doc.Channel.Title)
	if title == "" {
		return nil, ErrEmptyFeed
	}

	feed := &Feed{
		Title:       title,
		Author:      strings.TrimSpace(doc.Channel.Author),
		Description: strings.TrimSpace(doc.Channel.Description),
		ImageURL:    channelImage(doc.Channel),
		Episodes:    make([]Item, 0, len(doc.Channel.Items)),
	}

	for _, item := range doc.Channel.Items {
		audioURL := strings.TrimSpace(item.Enclosure.URL)
		if audioURL == "" {
			// Not every item is an episode; chapters and promo items lack
			// enclosures and are skipped
			continue
		}

		guid := strings.TrimSpace(item.GUID.Value)
		if guid == "" {
			guid = audioURL
		}
		if guid == "" {
			guid = strings.TrimSpace(item.Link)
		}

		feed.Episodes = append(feed.Episodes, Item{
			GUID:        guid,
			Title:       strings.TrimSpace(item.Title),
			Description: strings.TrimSpace(item.Description),
			AudioURL:    audioURL,
			Published:   parseTime(item.PubDate),
			Duration:    parseDuration(item.Duration),
		})
	}

	log.Printf("[DEBUG] Parsed feed %q with %d episodes", feed.Title, len(feed.Episodes))
	return feed, nil
}

func channelImage(ch rssChannel) string {
	if url := strings.TrimSpace(ch.ITunesImage.Href); url != "" {
		return url
	}
	return strings.TrimSpace(ch.Image.URL)
}

func parseTime(value string) *time.Time {
	value = strings.TrimSpace(value)
	if value == "" {
		return nil
	}

	layouts := []string{
		time.RFC1123Z,
		time.RFC1123,
		time.RFC822Z,
		time.RFC822,
		time.RFC3339,
	}
	for _, layout := range layouts {
		if t, err := time.Parse(layout, value); err == nil {
			return &t
		}
	}
	return nil
}

// parseDuration handles the two itunes:duration shapes seen in the wild:
// plain seconds ("3723") and clock notation ("1:02:03" or "12:34")
func parseDuration(value string) *int {
	value = strings.TrimSpace(value)
	if value == "" {
		return nil
	}

	if !strings.Contains(value, ":") {
		if secs, err := strconv.Atoi(value); err == nil && secs >= 0 {
			return &secs
		}
		return nil
	}

	parts := strings.Split(value, ":")
	if len(parts) > 3 {
		return nil
	}

	total := 0
	for _, part := range parts {
		n, err := strconv.Atoi(strings.TrimSpace(part))
		if err != nil || n < 0 {
			return nil
		}
		total = total*60 + n
	}
	return &total
}

type rssDocument struct {
	XMLName xml.Name   `xml:"rss"`
	Channel rssChannel `xml:"channel"`
}

type rssChannel struct {
	Title       string      `xml:"title"`
	Author      string      `xml:"author"`
	Description string      `xml:"description"`
	Image       rssImage    `xml:"image"`
	ITunesImage itunesImage `xml:"http://www.itunes.com/dtds/podcast-1.0.dtd image"`
	Items       []rssItem   `xml:"item"`
}

type rssImage struct {
	URL string `xml:"url"`
}

type itunesImage struct {
	Href string `xml:"href,attr"`
}

type rssItem struct {
	GUID        rssGUID      `xml:"guid"`
	Title       string       `xml:"title"`
	Description string       `xml:"description"`
	Link        string       `xml:"link"`
	PubDate     string       `xml:"pubDate"`
	Duration    string       `xml:"http://www.itunes.com/dtds/podcast-1.0.dtd duration"`
	Enclosure   rssEnclosure `xml:"enclosure"`
}

type rssGUID struct {
	Value string `xml:",chardata"`
}

type rssEnclosure struct {
	URL    string `xml:"url,attr"`
	Length string `xml:"length,attr"`
	Type   string `xml:"type,attr"`
}
