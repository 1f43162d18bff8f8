package domain

import "time"

type DigestType string

const (
	DigestDaily  DigestType = "daily"
	DigestWeekly DigestType = "weekly"
)

// Period returns the trailing window covered by a digest ending at end.
func (t DigestType) Period(end time.Time) (time.Time, time.Time) {
	if t == DigestWeekly {
		return end.AddDate(0, 0, -7), end
	}
	return end.AddDate(0, 0, -1), end
}

// Digest is an executive summary for one period. Digests are written once and
// never updated.
type Digest struct {
	ID          int64
	DigestType  DigestType
	PeriodStart time.Time
	PeriodEnd   time.Time
	CreatedAt   time.Time

	Title          string
	Summary        string
	TopStories     []string
	EmergingTrends []string
	KeyInsights    []string

	TotalArticles  int
	ThemesCovered  []string
	RegionsCovered []string
}
