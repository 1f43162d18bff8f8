package oracle

import (
	"encoding/json"
	"fmt"
	"regexp"
	"strings"
)

var fenceRe = regexp.MustCompile("(?s)```(?:json)?\\s*(.*?)\\s*```")

// extractJSON strips a markdown code fence when the model wrapped its JSON
// response in one.
func extractJSON(text string) string {
	if m := fenceRe.FindStringSubmatch(text); m != nil {
		return m[1]
	}
	return strings.TrimSpace(text)
}

func decodeInto(text string, v any) error {
	payload := extractJSON(text)
	if err := json.Unmarshal([]byte(payload), v); err != nil {
		return fmt.Errorf("decode oracle response: %w", err)
	}
	return nil
}

// DefaultAnnotation is the documented fallback used to fill fields the
// oracle left out of an otherwise valid response.
func DefaultAnnotation() Annotation {
	zero := 0.0
	half := 0.5
	return Annotation{
		Summary:        "Summary unavailable",
		PrimaryTheme:   "General",
		Region:         "Global",
		Sectors:        []string{"General"},
		Sentiment:      "neutral",
		SentimentScore: &zero,
		SignalStrength: &half,
		TimeHorizon:    "short-term",
	}
}

// normalize back-fills missing optional fields from the default annotation
// and clamps scores to their documented ranges.
func (a *Annotation) normalize() {
	def := DefaultAnnotation()
	if a.Summary == "" {
		a.Summary = def.Summary
	}
	if a.PrimaryTheme == "" {
		a.PrimaryTheme = def.PrimaryTheme
	}
	if a.Region == "" {
		a.Region = def.Region
	}
	if len(a.Sectors) == 0 {
		a.Sectors = def.Sectors
	}
	if a.Sentiment == "" {
		a.Sentiment = def.Sentiment
	}
	if a.SentimentScore == nil {
		a.SentimentScore = def.SentimentScore
	} else {
		*a.SentimentScore = clamp(*a.SentimentScore, -1, 1)
	}
	if a.SignalStrength == nil {
		a.SignalStrength = def.SignalStrength
	} else {
		*a.SignalStrength = clamp(*a.SignalStrength, 0, 1)
	}
	if a.ConfidenceScore != nil {
		*a.ConfidenceScore = clamp(*a.ConfidenceScore, 0, 1)
	}
	if a.TimeHorizon == "" {
		a.TimeHorizon = def.TimeHorizon
	}
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
