package oracle

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"newsintel/testdata/utils"
)

func TestExtractJSON(t *testing.T) {
	tests := []struct {
		name string
		text string
		want string
	}{
		{
			name: "bare json",
			text: `{"summary": "x"}`,
			want: `{"summary": "x"}`,
		},
		{
			name: "json fence",
			text: "```json\n{\"summary\": \"x\"}\n```",
			want: `{"summary": "x"}`,
		},
		{
			name: "plain fence",
			text: "```\n{\"summary\": \"x\"}\n```",
			want: `{"summary": "x"}`,
		},
		{
			name: "fence with surrounding prose",
			text: "Here is the analysis:\n```json\n{\"summary\": \"x\"}\n```\nLet me know if you need more.",
			want: `{"summary": "x"}`,
		},
		{
			name: "whitespace trimmed",
			text: "  {\"summary\": \"x\"}\n",
			want: `{"summary": "x"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, extractJSON(tt.text))
		})
	}
}

func TestDecodeInto_InvalidJSON(t *testing.T) {
	var a Annotation
	err := decodeInto("not json at all", &a)
	assert.Error(t, err)
}

func TestNormalize_BackfillsMissingFields(t *testing.T) {
	a := Annotation{}
	a.normalize()

	assert.Equal(t, "Summary unavailable", a.Summary)
	assert.Equal(t, "General", a.PrimaryTheme)
	assert.Equal(t, "Global", a.Region)
	assert.Equal(t, []string{"General"}, a.Sectors)
	assert.Equal(t, "neutral", a.Sentiment)
	require.NotNil(t, a.SentimentScore)
	assert.Equal(t, 0.0, *a.SentimentScore)
	require.NotNil(t, a.SignalStrength)
	assert.Equal(t, 0.5, *a.SignalStrength)
	assert.Equal(t, "short-term", a.TimeHorizon)
}

func TestNormalize_KeepsProvidedFields(t *testing.T) {
	a := Annotation{
		Summary:        "real summary",
		PrimaryTheme:   "AI Governance",
		Region:         "Europe",
		Sectors:        []string{"Technology"},
		Sentiment:      "positive",
		SentimentScore: utils.Ptr(0.7),
		SignalStrength: utils.Ptr(0.9),
		TimeHorizon:    "long-term",
	}
	a.normalize()

	assert.Equal(t, "real summary", a.Summary)
	assert.Equal(t, "AI Governance", a.PrimaryTheme)
	assert.Equal(t, 0.7, *a.SentimentScore)
	assert.Equal(t, 0.9, *a.SignalStrength)
}

func TestNormalize_ClampsScores(t *testing.T) {
	a := Annotation{
		SentimentScore:  utils.Ptr(-3.0),
		SignalStrength:  utils.Ptr(1.4),
		ConfidenceScore: utils.Ptr(2.0),
	}
	a.normalize()

	assert.Equal(t, -1.0, *a.SentimentScore)
	assert.Equal(t, 1.0, *a.SignalStrength)
	assert.Equal(t, 1.0, *a.ConfidenceScore)
}
