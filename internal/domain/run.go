package domain

import "time"

const (
	RunStatusSuccess = "success"
	RunStatusError   = "error"
)

// RunError records one isolated failure from a pipeline run with enough
// context (stage plus url or trend name) to diagnose without re-running.
type RunError struct {
	Stage   string
	Ref     string
	Message string
}

// RunReport summarizes one end-to-end pipeline invocation.
type RunReport struct {
	RunID           string
	Status          string
	Message         string
	Fetched         int
	NewArticles     int
	InsightsCreated int
	TrendsCreated   int
	TrendsUpdated   int
	Errors          []RunError
	Duration        time.Duration
}
