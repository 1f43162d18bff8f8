package service

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"newsintel/internal/domain"
)

func TestDedupe(t *testing.T) {
	items := []domain.ContentItem{
		{URL: "https://example.com/a", Title: "first"},
		{URL: "https://example.com/b", Title: "second"},
		{URL: "https://example.com/a", Title: "duplicate of first"},
		{URL: "", Title: "no url"},
		{URL: "https://example.com/c", Title: "third"},
	}

	unique := Dedupe(items)

	assert.Len(t, unique, 3)
	assert.Equal(t, "https://example.com/a", unique[0].URL)
	assert.Equal(t, "https://example.com/b", unique[1].URL)
	assert.Equal(t, "https://example.com/c", unique[2].URL)
	assert.Equal(t, "first", unique[0].Title)
}

func TestFilterNovel(t *testing.T) {
	items := []domain.ContentItem{
		{URL: "https://example.com/a"},
		{URL: "https://example.com/b"},
		{URL: "https://example.com/c"},
	}
	known := map[string]struct{}{
		"https://example.com/b": {},
	}

	novel := FilterNovel(items, known)

	assert.Len(t, novel, 2)
	assert.Equal(t, "https://example.com/a", novel[0].URL)
	assert.Equal(t, "https://example.com/c", novel[1].URL)
}

func TestFilterQuality(t *testing.T) {
	tests := []struct {
		name string
		item domain.ContentItem
		kept bool
	}{
		{
			name: "content at threshold",
			item: domain.ContentItem{URL: "https://example.com/a", Title: "t", Content: strings.Repeat("x", 100)},
			kept: true,
		},
		{
			name: "content below threshold",
			item: domain.ContentItem{URL: "https://example.com/b", Title: "t", Content: strings.Repeat("x", 99)},
			kept: false,
		},
		{
			name: "long content",
			item: domain.ContentItem{URL: "https://example.com/c", Title: "t", Content: strings.Repeat("x", 150)},
			kept: true,
		},
		{
			name: "missing title",
			item: domain.ContentItem{URL: "https://example.com/d", Content: strings.Repeat("x", 150)},
			kept: false,
		},
		{
			name: "missing url",
			item: domain.ContentItem{Title: "t", Content: strings.Repeat("x", 150)},
			kept: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			kept := FilterQuality([]domain.ContentItem{tt.item}, 100)
			if tt.kept {
				assert.Len(t, kept, 1)
			} else {
				assert.Empty(t, kept)
			}
		})
	}
}
