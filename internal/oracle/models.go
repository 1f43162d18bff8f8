package oracle

// Annotation is the structured analysis for a single article. Optional
// numeric fields are pointers so a missing value is distinguishable from a
// zero score.
type Annotation struct {
	Summary         string   `json:"summary"`
	KeyTakeaways    []string `json:"key_takeaways"`
	PrimaryTheme    string   `json:"primary_theme"`
	SecondaryThemes []string `json:"secondary_themes"`
	ConfidenceScore *float64 `json:"confidence_score"`
	Region          string   `json:"region"`
	Sectors         []string `json:"sectors"`
	Sentiment       string   `json:"sentiment"`
	SentimentScore  *float64 `json:"sentiment_score"`
	SignalStrength  *float64 `json:"signal_strength"`
	TimeHorizon     string   `json:"time_horizon"`
	IsEmerging      bool     `json:"is_emerging"`
}

// InsightDraft is one cross-article insight as returned by the oracle,
// before anchoring and validation.
type InsightDraft struct {
	Title          string  `json:"title"`
	Description    string  `json:"description"`
	ImpactLevel    string  `json:"impact_level"`
	TimeHorizon    string  `json:"time_horizon"`
	RelevanceScore float64 `json:"relevance_score"`
}

// TrendDraft is one oracle-proposed emerging trend.
type TrendDraft struct {
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Keywords    []string `json:"keywords"`
	Status      string   `json:"status"`
	Momentum    *float64 `json:"momentum"`
}

// DigestCopy is the natural-language part of a digest. The mechanical
// selection of articles, insights, and trends stays with the composer.
type DigestCopy struct {
	Title                 string   `json:"title"`
	Summary               string   `json:"summary"`
	TopStories            []string `json:"top_stories"`
	StrategicImplications []string `json:"strategic_implications"`
}

// ArticleBrief is the trimmed article view sent on batch calls.
type ArticleBrief struct {
	Title          string
	Summary        string
	PrimaryTheme   string
	SignalStrength float64
}

// InsightBrief is the trimmed insight view sent on digest calls.
type InsightBrief struct {
	Title       string
	Description string
	ImpactLevel string
}

// TrendBrief is the trimmed trend view sent on digest calls.
type TrendBrief struct {
	Name        string
	Description string
	Momentum    float64
}

// DigestRequest carries the pre-selected material for digest copy generation.
type DigestRequest struct {
	Period   string
	Articles []ArticleBrief
	Insights []InsightBrief
	Trends   []TrendBrief
}

type messagesRequest struct {
	Model       string    `json:"model"`
	MaxTokens   int       `json:"max_tokens"`
	Temperature float64   `json:"temperature"`
	Messages    []message `json:"messages"`
}

type message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type messagesResponse struct {
	Content []contentBlock `json:"content"`
}

type contentBlock struct {
	Type string `json:"type"`
	Text string `json:"text"`
}

type insightsEnvelope struct {
	Insights []InsightDraft `json:"insights"`
}

type trendsEnvelope struct {
	Trends []TrendDraft `json:"trends"`
}
