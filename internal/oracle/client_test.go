package oracle

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"newsintel/internal/config"
	"newsintel/internal/domain"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))
}

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	client, err := New(config.OracleConfig{
		BaseURL:   srv.URL,
		APIKey:    "test-key",
		Model:     "test-model",
		MaxTokens: 1000,
		Timeout:   5 * time.Second,
	}, testLogger())
	require.NoError(t, err)
	return client
}

func modelReply(t *testing.T, w http.ResponseWriter, text string) {
	t.Helper()
	w.Header().Set("Content-Type", "application/json")
	err := json.NewEncoder(w).Encode(map[string]any{
		"content": []map[string]string{{"type": "text", "text": text}},
	})
	require.NoError(t, err)
}

func TestNew_MissingAPIKey(t *testing.T) {
	_, err := New(config.OracleConfig{BaseURL: "https://example.com"}, testLogger())

	var cfgErr *domain.ConfigError
	require.ErrorAs(t, err, &cfgErr)
}

func TestAnalyzeArticle(t *testing.T) {
	var gotBody messagesRequest
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/messages", r.URL.Path)
		assert.Equal(t, "test-key", r.Header.Get("x-api-key"))
		assert.Equal(t, anthropicVersion, r.Header.Get("anthropic-version"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))

		modelReply(t, w, "```json\n{\"summary\": \"Short version.\", \"primary_theme\": \"HR Technology\", \"signal_strength\": 0.8}\n```")
	})

	annotation, err := client.AnalyzeArticle(context.Background(), "title", "content", "https://example.com/a")

	require.NoError(t, err)
	assert.Equal(t, "Short version.", annotation.Summary)
	assert.Equal(t, "HR Technology", annotation.PrimaryTheme)
	require.NotNil(t, annotation.SignalStrength)
	assert.Equal(t, 0.8, *annotation.SignalStrength)
	// Missing fields come back filled from the defaults.
	assert.Equal(t, "Global", annotation.Region)
	assert.Equal(t, "neutral", annotation.Sentiment)

	assert.Equal(t, "test-model", gotBody.Model)
	assert.Contains(t, gotBody.Messages[0].Content, "https://example.com/a")
}

func TestAnalyzeArticle_TruncatesContent(t *testing.T) {
	var prompt string
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		var body messagesRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		prompt = body.Messages[0].Content
		modelReply(t, w, "{}")
	})

	long := strings.Repeat("x", maxContentChars+500)
	_, err := client.AnalyzeArticle(context.Background(), "title", long, "https://example.com/a")

	require.NoError(t, err)
	assert.Contains(t, prompt, strings.Repeat("x", maxContentChars))
	assert.NotContains(t, prompt, strings.Repeat("x", maxContentChars+1))
}

func TestAnalyzeArticle_ServerError(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error": "overloaded"}`, http.StatusTooManyRequests)
	})

	_, err := client.AnalyzeArticle(context.Background(), "title", "content", "https://example.com/a")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "429")
}

func TestAnalyzeArticle_MalformedResponse(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		modelReply(t, w, "I could not produce JSON, sorry.")
	})

	_, err := client.AnalyzeArticle(context.Background(), "title", "content", "https://example.com/a")

	assert.Error(t, err)
}

func TestExtractInsights(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		modelReply(t, w, `{"insights": [{"title": "t", "description": "d", "impact_level": "high", "time_horizon": "short-term", "relevance_score": 1.7}]}`)
	})

	drafts, err := client.ExtractInsights(context.Background(), []ArticleBrief{{Title: "a"}})

	require.NoError(t, err)
	require.Len(t, drafts, 1)
	assert.Equal(t, 1.0, drafts[0].RelevanceScore)
}

func TestExtractInsights_EmptyInput(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("no request expected")
	})

	drafts, err := client.ExtractInsights(context.Background(), nil)

	require.NoError(t, err)
	assert.Nil(t, drafts)
}

func TestDetectTrends(t *testing.T) {
	var prompt string
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		var body messagesRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		prompt = body.Messages[0].Content
		modelReply(t, w, `{"trends": [{"name": "n", "description": "d", "keywords": ["k"], "status": "emerging", "momentum": 0.6}]}`)
	})

	drafts, err := client.DetectTrends(context.Background(), []ArticleBrief{{Title: "a"}}, []string{"Hybrid Work"})

	require.NoError(t, err)
	require.Len(t, drafts, 1)
	assert.Equal(t, "n", drafts[0].Name)
	assert.Contains(t, prompt, "Hybrid Work")
}

func TestComposeDigest(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		modelReply(t, w, `{"title": "Digest", "summary": "s", "top_stories": ["a"], "strategic_implications": ["b"]}`)
	})

	digestCopy, err := client.ComposeDigest(context.Background(), DigestRequest{
		Period:   "daily",
		Articles: []ArticleBrief{{Title: "a"}},
	})

	require.NoError(t, err)
	assert.Equal(t, "Digest", digestCopy.Title)
	assert.Equal(t, []string{"a"}, digestCopy.TopStories)
}
