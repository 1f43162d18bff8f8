package rss

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/mmcdole/gofeed"

	"newsintel/internal/config"
	"newsintel/internal/domain"
)

const SourceName = "rss"

// Source pulls content items from a configured list of RSS/Atom feeds.
// Each feed failure is isolated: the feed is skipped and reported, the
// remaining feeds still contribute to the batch.
type Source struct {
	parser     *gofeed.Parser
	httpClient *http.Client
	feeds      []config.Feed
	maxItems   int
	lookback   time.Duration
	extract    bool
	userAgent  string
	logger     *slog.Logger
}

func New(cfg config.SourceConfig, logger *slog.Logger) *Source {
	httpClient := &http.Client{Timeout: cfg.Timeout}

	parser := gofeed.NewParser()
	parser.Client = httpClient
	parser.UserAgent = cfg.UserAgent

	return &Source{
		parser:     parser,
		httpClient: httpClient,
		feeds:      cfg.Feeds,
		maxItems:   cfg.MaxItemsPerFeed,
		lookback:   time.Duration(cfg.LookbackDays) * 24 * time.Hour,
		extract:    cfg.ExtractContent,
		userAgent:  cfg.UserAgent,
		logger:     logger.With("source", SourceName),
	}
}

func (s *Source) Name() string {
	return SourceName
}

// FetchAll fetches every configured feed and returns the combined batch plus
// the per-feed failures. The batch may contain duplicates across feeds; the
// pipeline dedupes downstream.
func (s *Source) FetchAll(ctx context.Context) ([]domain.ContentItem, []domain.SourceFetchError) {
	cutoff := time.Now().Add(-s.lookback)

	var items []domain.ContentItem
	var failures []domain.SourceFetchError

	for _, feed := range s.feeds {
		feedItems, err := s.fetchFeed(ctx, feed, cutoff)
		if err != nil {
			s.logger.Warn("feed fetch failed, skipping", "feed", feed.URL, "error", err)
			failures = append(failures, domain.SourceFetchError{Feed: feed.URL, Err: err})
			continue
		}

		s.logger.Debug("fetched feed", "feed", feed.URL, "items", len(feedItems))
		items = append(items, feedItems...)
	}

	return items, failures
}

func (s *Source) fetchFeed(ctx context.Context, feed config.Feed, cutoff time.Time) ([]domain.ContentItem, error) {
	parsed, err := s.parser.ParseURLWithContext(feed.URL, ctx)
	if err != nil {
		return nil, fmt.Errorf("parse feed: %w", err)
	}

	sourceName := hostName(feed.URL)

	entries := parsed.Items
	if len(entries) > s.maxItems {
		entries = entries[:s.maxItems]
	}

	var items []domain.ContentItem
	for _, entry := range entries {
		if entry.Link == "" {
			continue
		}

		published := publishedAt(entry)
		if published.Before(cutoff) {
			continue
		}

		item := domain.ContentItem{
			URL:           entry.Link,
			Title:         entry.Title,
			Source:        sourceName,
			SourceType:    feed.SourceType,
			PublishedDate: published,
			Content:       entry.Description,
		}
		if entry.Author != nil {
			item.Author = entry.Author.Name
		}

		if s.extract {
			content, err := s.extractContent(ctx, entry.Link)
			if err != nil {
				s.logger.Debug("content extraction failed, keeping feed text",
					"url", entry.Link, "error", err)
			} else if content != "" {
				item.Content = content
			}
		}

		items = append(items, item)
	}

	return items, nil
}

// extractContent pulls the readable paragraph text out of an article page.
func (s *Source) extractContent(ctx context.Context, pageURL string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, pageURL, nil)
	if err != nil {
		return "", fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("User-Agent", s.userAgent)

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("fetch page: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("unexpected status: %d", resp.StatusCode)
	}

	doc, err := goquery.NewDocumentFromReader(resp.Body)
	if err != nil {
		return "", fmt.Errorf("parse html: %w", err)
	}

	return ExtractText(doc), nil
}

// ExtractText joins the paragraph text of a document, ignoring chrome
// elements like navigation and scripts.
func ExtractText(doc *goquery.Document) string {
	doc.Find("script, style, nav, header, footer, aside, form").Remove()

	var paragraphs []string
	doc.Find("p").Each(func(_ int, sel *goquery.Selection) {
		text := strings.TrimSpace(sel.Text())
		if text != "" {
			paragraphs = append(paragraphs, text)
		}
	})

	return strings.Join(paragraphs, "\n\n")
}

func publishedAt(entry *gofeed.Item) time.Time {
	if entry.PublishedParsed != nil {
		return *entry.PublishedParsed
	}
	if entry.UpdatedParsed != nil {
		return *entry.UpdatedParsed
	}
	return time.Now()
}

func hostName(feedURL string) string {
	parsed, err := url.Parse(feedURL)
	if err != nil || parsed.Host == "" {
		return feedURL
	}
	return strings.TrimPrefix(parsed.Host, "www.")
}
