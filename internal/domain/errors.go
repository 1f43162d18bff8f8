package domain

import "fmt"

// ConfigError is a fatal misconfiguration (e.g. missing oracle credentials).
// It aborts a run before any writes happen.
type ConfigError struct {
	Msg string
}

func (e *ConfigError) Error() string { return "config: " + e.Msg }

// SourceFetchError is a per-feed failure. The feed is skipped; the run
// continues.
type SourceFetchError struct {
	Feed string
	Err  error
}

func (e *SourceFetchError) Error() string {
	return fmt.Sprintf("fetch feed %s: %v", e.Feed, e.Err)
}

func (e *SourceFetchError) Unwrap() error { return e.Err }

// EnrichmentError is a per-item oracle failure. The item is excluded from the
// current run; it stays eligible for retry as long as the source keeps
// surfacing its URL.
type EnrichmentError struct {
	URL string
	Err error
}

func (e *EnrichmentError) Error() string {
	return fmt.Sprintf("enrich %s: %v", e.URL, e.Err)
}

func (e *EnrichmentError) Unwrap() error { return e.Err }
