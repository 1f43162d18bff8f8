package domain

import "time"

// featuredThreshold is exclusive: signal strength must be strictly above it.
const featuredThreshold = 0.8

// ContentItem is a piece of content moving through the pipeline before it is
// persisted. URL is the natural key: once a URL has been stored, re-ingesting
// it is a no-op.
type ContentItem struct {
	URL           string
	Title         string
	Source        string
	SourceType    string
	Author        string
	PublishedDate time.Time
	Content       string

	// Filled in by enrichment.
	Summary         string
	KeyTakeaways    []string
	PrimaryTheme    string
	SecondaryThemes []string
	ConfidenceScore *float64
	Region          string
	Sectors         []string
	SentimentLabel  string
	SentimentScore  *float64
	SignalStrength  *float64
	TimeHorizon     string
	IsEmerging      bool
}

// Article is a persisted, enriched content item.
type Article struct {
	ID int64
	ContentItem

	IsFeatured bool
	ViewCount  int
	ScrapedAt  time.Time
}

// NewArticle builds the persisted form of an enriched item. The featured flag
// is derived once, at store time.
func NewArticle(item ContentItem, now time.Time) Article {
	return Article{
		ContentItem: item,
		IsFeatured:  item.SignalStrength != nil && *item.SignalStrength > featuredThreshold,
		ScrapedAt:   now,
	}
}

// Theme is a controlled vocabulary entry. Themes are seeded from configuration
// and never created by enrichment output.
type Theme struct {
	ID       int64
	Name     string
	Keywords []string
}

// Sector is a controlled vocabulary entry for industry sectors.
type Sector struct {
	ID   int64
	Name string
}
