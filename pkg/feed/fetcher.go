// Package feed fetches and parses RSS/Atom feeds and manages subscriptions.
package feed

import (
	"context"
	"fmt"
	"html"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/microcosm-cc/bluemonday"
	"github.com/mmcdole/gofeed"

	"github.com/fmhy/wikibot/pkg/domain"
)

// Result is one successful feed fetch
type Result struct {
	Title   string
	Entries []domain.FeedEntry // FeedID and ID are assigned at ingestion
}

// Fetcher downloads and parses feeds
type Fetcher struct {
	client               *http.Client
	userAgent            string
	maxDescriptionLength int
	sanitizer            *bluemonday.Policy
}

// NewFetcher creates a feed fetcher
func NewFetcher(timeout time.Duration, userAgent string, maxDescriptionLength int) *Fetcher {
	return &Fetcher{
		client: &http.Client{
			Timeout: timeout,
			Transport: &http.Transport{
				MaxIdleConns:        100,
				MaxIdleConnsPerHost: 10,
				IdleConnTimeout:     90 * time.Second,
			},
		},
		userAgent:            userAgent,
		maxDescriptionLength: maxDescriptionLength,
		sanitizer:            bluemonday.StrictPolicy(),
	}
}

// Fetch downloads and parses a feed, returning entries in document order.
// Every entry carries a stable EntryID even when the provider assigns none.
func (f *Fetcher) Fetch(ctx context.Context, feedURL string) (*Result, error) {
	body, err := f.fetch(ctx, feedURL)
	if err != nil {
		return nil, fmt.Errorf("fetch feed: %w", err)
	}
	defer body.Close()

	parsed, err := gofeed.NewParser().Parse(body)
	if err != nil {
		return nil, fmt.Errorf("parse feed: %w", err)
	}

	result := &Result{
		Title:   parsed.Title,
		Entries: make([]domain.FeedEntry, 0, len(parsed.Items)),
	}

	for _, item := range parsed.Items {
		entry := domain.FeedEntry{
			EntryID:     entryID(item),
			Title:       strings.TrimSpace(item.Title),
			Link:        item.Link,
			Description: f.cleanDescription(item.Description, item.Content),
			Thumbnail:   thumbnail(item),
		}

		if item.PublishedParsed != nil {
			entry.Published = item.PublishedParsed
		} else if item.UpdatedParsed != nil {
			entry.Published = item.UpdatedParsed
		}

		result.Entries = append(result.Entries, entry)
	}

	return result, nil
}

// Validate fetches the feed once and returns its title, so a bad URL is
// rejected at subscription time instead of silently failing every check.
func (f *Fetcher) Validate(ctx context.Context, feedURL string) (string, error) {
	result, err := f.Fetch(ctx, feedURL)
	if err != nil {
		return "", err
	}
	return result.Title, nil
}

// fetch retrieves content from a URL
func (f *Fetcher) fetch(ctx context.Context, url string) (io.ReadCloser, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, http.NoBody)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	req.Header.Set("User-Agent", f.userAgent)
	addBrowserHeaders(req)

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch URL: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		_ = resp.Body.Close()
		return nil, fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}

	return resp.Body, nil
}

// cleanDescription strips markup from the entry summary and truncates it.
// Falls back to the full content body when the summary is empty.
func (f *Fetcher) cleanDescription(description, content string) string {
	text := description
	if text == "" {
		text = content
	}
	if text == "" {
		return ""
	}

	text = html.UnescapeString(f.sanitizer.Sanitize(text))
	text = strings.Join(strings.Fields(text), " ") // collapse whitespace and newlines

	if f.maxDescriptionLength > 0 {
		runes := []rune(text)
		if len(runes) > f.maxDescriptionLength {
			text = strings.TrimSpace(string(runes[:f.maxDescriptionLength])) + "…"
		}
	}
	return text
}

// entryID returns the provider identifier when present, otherwise falls
// back to the link and finally to title plus timestamp. The result must be
// stable across fetches, it is half of the dedup key.
func entryID(item *gofeed.Item) string {
	if item.GUID != "" {
		return item.GUID
	}
	if item.Link != "" {
		return item.Link
	}

	ts := ""
	if item.PublishedParsed != nil {
		ts = item.PublishedParsed.UTC().Format(time.RFC3339)
	}
	return fmt.Sprintf("%s-%s", item.Title, ts)
}

// thumbnail picks an image for the entry: Media RSS declarations first,
// then the item image, otherwise the first <img> found in the entry markup.
func thumbnail(item *gofeed.Item) string {
	if src := mediaThumbnail(item); src != "" {
		return src
	}

	if item.Image != nil && item.Image.URL != "" {
		return item.Image.URL
	}

	for _, markup := range []string{item.Description, item.Content} {
		if markup == "" {
			continue
		}
		doc, err := goquery.NewDocumentFromReader(strings.NewReader(markup))
		if err != nil {
			continue
		}
		if src, ok := doc.Find("img").First().Attr("src"); ok && src != "" {
			return src
		}
	}
	return ""
}

// mediaThumbnail reads the Media RSS extension, which gofeed keeps outside
// the item image: an explicit media:thumbnail wins, then a media:content
// element declaring an image type or medium.
func mediaThumbnail(item *gofeed.Item) string {
	media, ok := item.Extensions["media"]
	if !ok {
		return ""
	}

	for _, t := range media["thumbnail"] {
		if url := t.Attrs["url"]; url != "" {
			return url
		}
	}

	for _, c := range media["content"] {
		url := c.Attrs["url"]
		if url == "" {
			continue
		}
		if strings.HasPrefix(c.Attrs["type"], "image/") || c.Attrs["medium"] == "image" {
			return url
		}
	}
	return ""
}
