package oracle

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/go-resty/resty/v2"

	"newsintel/internal/config"
	"newsintel/internal/domain"
)

const (
	messagesPath     = "/v1/messages"
	anthropicVersion = "2023-06-01"
	maxContentChars  = 5000
)

// Client talks to an Anthropic-compatible messages API and turns free-text
// model output into typed analysis results.
type Client struct {
	http      *resty.Client
	model     string
	maxTokens int
	logger    *slog.Logger
}

// New builds an oracle client. A missing API key is a configuration error:
// the pipeline must refuse to start rather than fail per item.
func New(cfg config.OracleConfig, logger *slog.Logger) (*Client, error) {
	if cfg.APIKey == "" {
		return nil, &domain.ConfigError{Msg: "oracle api key is required"}
	}

	httpClient := resty.New().
		SetBaseURL(cfg.BaseURL).
		SetTimeout(cfg.Timeout).
		SetHeader("x-api-key", cfg.APIKey).
		SetHeader("anthropic-version", anthropicVersion).
		SetHeader("Content-Type", "application/json")

	return &Client{
		http:      httpClient,
		model:     cfg.Model,
		maxTokens: cfg.MaxTokens,
		logger:    logger.With("component", "oracle"),
	}, nil
}

// AnalyzeArticle returns the full annotation for one article. Transport and
// parse failures surface as errors; the caller decides whether to isolate or
// abort. Missing optional fields in a valid response are back-filled from the
// default annotation.
func (c *Client) AnalyzeArticle(ctx context.Context, title, content, url string) (*Annotation, error) {
	if len(content) > maxContentChars {
		content = content[:maxContentChars]
	}

	prompt := fmt.Sprintf(`You are an expert HR and workforce analyst. Analyze the following article.

Article Title: %s
Article URL: %s
Content:
%s

Provide:
1. A concise executive summary (2-3 sentences, max 500 characters)
2. 3-5 key takeaways (actionable insights)
3. Primary theme classification (choose ONE): Workforce Transformation, AI Governance, Skills and Capability, HR Technology, Policy and Regulation, Future of Work, Employee Experience, Talent Acquisition, Diversity and Inclusion, Organizational Culture
4. Secondary themes (up to 2 additional themes from the list above)
5. Geographic region (Global, Australia, Asia Pacific, North America, Europe, UK)
6. Industry sectors mentioned (up to 3): Technology, Financial Services, Healthcare, Manufacturing, Retail, Professional Services, Public Sector, Education, Energy, General
7. Sentiment (positive, negative, neutral) and a sentiment score
8. Signal strength (0-1): how significant is this for HR leaders?
9. Time horizon: immediate, short-term, long-term
10. Is this an emerging trend not yet mainstream?

Respond with JSON only:
{
  "summary": "...",
  "key_takeaways": ["..."],
  "primary_theme": "...",
  "secondary_themes": ["..."],
  "confidence_score": 0.95,
  "region": "...",
  "sectors": ["..."],
  "sentiment": "positive",
  "sentiment_score": 0.7,
  "signal_strength": 0.8,
  "time_horizon": "short-term",
  "is_emerging": false
}`, title, url, content)

	text, err := c.complete(ctx, prompt, 0.3, c.maxTokens)
	if err != nil {
		return nil, err
	}

	var annotation Annotation
	if err := decodeInto(text, &annotation); err != nil {
		return nil, err
	}
	annotation.normalize()

	return &annotation, nil
}

// ExtractInsights derives cross-cutting insights from article briefs.
func (c *Client) ExtractInsights(ctx context.Context, articles []ArticleBrief) ([]InsightDraft, error) {
	if len(articles) == 0 {
		return nil, nil
	}
	if len(articles) > 10 {
		articles = articles[:10]
	}

	var sb strings.Builder
	for i, art := range articles {
		fmt.Fprintf(&sb, "Article %d: %s\nSummary: %s\n\n", i+1, art.Title, orNA(art.Summary))
	}

	prompt := fmt.Sprintf(`You are an expert HR strategist. Based on the following articles, identify 5-7 cross-cutting insights HR and transformation leaders should know.

Articles:
%s
For each insight provide a clear title, a 2-3 sentence description, impact level (high, medium, low), time horizon (immediate, short-term, long-term), and a relevance score (0-1).

Respond with JSON only:
{"insights": [{"title": "...", "description": "...", "impact_level": "high", "time_horizon": "short-term", "relevance_score": 0.9}]}`, sb.String())

	text, err := c.complete(ctx, prompt, 0.4, c.maxTokens)
	if err != nil {
		return nil, err
	}

	var env insightsEnvelope
	if err := decodeInto(text, &env); err != nil {
		return nil, err
	}
	for i := range env.Insights {
		env.Insights[i].RelevanceScore = clamp(env.Insights[i].RelevanceScore, 0, 1)
	}
	return env.Insights, nil
}

// DetectTrends proposes emerging trends not already in knownTrends.
func (c *Client) DetectTrends(ctx context.Context, articles []ArticleBrief, knownTrends []string) ([]TrendDraft, error) {
	if len(articles) == 0 {
		return nil, nil
	}
	if len(articles) > 20 {
		articles = articles[:20]
	}

	var sb strings.Builder
	for _, art := range articles {
		fmt.Fprintf(&sb, "- %s (%s)\n", art.Title, orNA(art.PrimaryTheme))
	}

	var known strings.Builder
	for _, name := range knownTrends {
		fmt.Fprintf(&known, "- %s\n", name)
	}

	prompt := fmt.Sprintf(`You are a trend analyst specializing in HR and workforce topics. Based on recent articles, identify 3-5 EMERGING trends that are NOT yet mainstream.

Recent Articles:
%s
Existing Known Trends (do NOT repeat these):
%s
For each trend provide a concise name, a description, 5-7 keywords, a status (emerging or growing), and a momentum score (0-1).

Respond with JSON only:
{"trends": [{"name": "...", "description": "...", "keywords": ["..."], "status": "emerging", "momentum": 0.7}]}`, sb.String(), known.String())

	text, err := c.complete(ctx, prompt, 0.5, c.maxTokens)
	if err != nil {
		return nil, err
	}

	var env trendsEnvelope
	if err := decodeInto(text, &env); err != nil {
		return nil, err
	}
	for i := range env.Trends {
		if env.Trends[i].Momentum != nil {
			*env.Trends[i].Momentum = clamp(*env.Trends[i].Momentum, 0, 1)
		}
	}
	return env.Trends, nil
}

// ComposeDigest asks for the narrative copy of a digest. Selection of the
// underlying material happened before this call.
func (c *Client) ComposeDigest(ctx context.Context, req DigestRequest) (*DigestCopy, error) {
	var articles strings.Builder
	for _, art := range req.Articles {
		fmt.Fprintf(&articles, "**%s**\nTheme: %s\nSummary: %s\n\n", art.Title, orNA(art.PrimaryTheme), orNA(art.Summary))
	}

	var insights strings.Builder
	for _, ins := range req.Insights {
		fmt.Fprintf(&insights, "- %s: %s\n", ins.Title, ins.Description)
	}

	var trends strings.Builder
	for _, tr := range req.Trends {
		fmt.Fprintf(&trends, "- %s: %s\n", tr.Name, orNA(tr.Description))
	}

	prompt := fmt.Sprintf(`You are an executive communications expert. Create a %s digest for HR and transformation leaders.

Top Articles:
%s
Key Insights:
%s
Emerging Trends:
%s
Create a punchy title, a 2-paragraph executive summary, the top 3 stories to watch, and 2-3 strategic implications.

Respond with JSON only:
{"title": "...", "summary": "...", "top_stories": ["..."], "strategic_implications": ["..."]}`, req.Period, articles.String(), insights.String(), trends.String())

	text, err := c.complete(ctx, prompt, 0.4, 1500)
	if err != nil {
		return nil, err
	}

	var dc DigestCopy
	if err := decodeInto(text, &dc); err != nil {
		return nil, err
	}
	return &dc, nil
}

func (c *Client) complete(ctx context.Context, prompt string, temperature float64, maxTokens int) (string, error) {
	var out messagesResponse

	resp, err := c.http.R().
		SetContext(ctx).
		SetBody(messagesRequest{
			Model:       c.model,
			MaxTokens:   maxTokens,
			Temperature: temperature,
			Messages:    []message{{Role: "user", Content: prompt}},
		}).
		SetResult(&out).
		Post(messagesPath)
	if err != nil {
		return "", fmt.Errorf("oracle request: %w", err)
	}

	if resp.IsError() {
		body := strings.TrimSpace(string(resp.Body()))
		if len(body) > 512 {
			body = body[:512]
		}
		return "", fmt.Errorf("oracle responded %s: %s", resp.Status(), body)
	}

	if len(out.Content) == 0 {
		return "", fmt.Errorf("oracle returned empty content")
	}

	return out.Content[0].Text, nil
}

func orNA(s string) string {
	if s == "" {
		return "N/A"
	}
	return s
}
