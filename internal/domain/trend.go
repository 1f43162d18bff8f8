package domain

import "time"

// TrendStatus is the trend lifecycle state machine:
// emerging -> growing -> peak -> declining.
type TrendStatus string

const (
	TrendEmerging  TrendStatus = "emerging"
	TrendGrowing   TrendStatus = "growing"
	TrendPeak      TrendStatus = "peak"
	TrendDeclining TrendStatus = "declining"
)

func (s TrendStatus) Valid() bool {
	switch s {
	case TrendEmerging, TrendGrowing, TrendPeak, TrendDeclining:
		return true
	}
	return false
}

// Trend is a named topic tracked over time. Names are soft-unique: the engine
// refuses to create a trend whose name fuzzy-matches an existing one.
// Trends are never deleted by the pipeline.
type Trend struct {
	ID           int64
	ThemeID      *int64
	Name         string
	Description  string
	Keywords     []string
	StartDate    time.Time
	LastUpdated  time.Time
	ArticleCount int
	Momentum     *float64
	Status       TrendStatus
	Region       string
}

// TrendDataPoint is one day of a trend's time series, keyed by
// (TrendID, Date) with Date truncated to day granularity. A repeated update
// for the same day overwrites the metrics.
type TrendDataPoint struct {
	ID                int64
	TrendID           int64
	Date              time.Time
	ArticleCount      int
	SentimentAvg      float64
	SignalStrengthAvg float64
}

// TrendCandidate is an oracle-proposed trend, not yet accepted.
type TrendCandidate struct {
	Name        string
	Description string
	Keywords    []string
	Status      TrendStatus
	Momentum    *float64
}
