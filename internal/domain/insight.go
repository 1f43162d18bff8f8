package domain

import "time"

const (
	ImpactHigh   = "high"
	ImpactMedium = "medium"
	ImpactLow    = "low"

	HorizonImmediate = "immediate"
	HorizonShortTerm = "short-term"
	HorizonLongTerm  = "long-term"
)

// Insight is a cross-article observation anchored to a single article.
// ImpactLevel and TimeHorizon are nil when the oracle response carried no
// parseable value; such insights are stored, not rejected.
type Insight struct {
	ID             int64
	ArticleID      int64
	Title          string
	Description    string
	ImpactLevel    *string
	TimeHorizon    *string
	RelevanceScore float64
	CreatedAt      time.Time
}

func ValidImpactLevel(s string) bool {
	return s == ImpactHigh || s == ImpactMedium || s == ImpactLow
}

func ValidTimeHorizon(s string) bool {
	return s == HorizonImmediate || s == HorizonShortTerm || s == HorizonLongTerm
}
