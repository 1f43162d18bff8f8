package service

import "newsintel/internal/domain"

// Dedupe collapses a batch to one item per url, keeping the first occurrence
// and the original order.
func Dedupe(items []domain.ContentItem) []domain.ContentItem {
	seen := make(map[string]struct{}, len(items))
	unique := make([]domain.ContentItem, 0, len(items))

	for _, item := range items {
		if item.URL == "" {
			continue
		}
		if _, ok := seen[item.URL]; ok {
			continue
		}
		seen[item.URL] = struct{}{}
		unique = append(unique, item)
	}

	return unique
}

// FilterNovel drops items whose url is already known to the store.
func FilterNovel(items []domain.ContentItem, known map[string]struct{}) []domain.ContentItem {
	novel := make([]domain.ContentItem, 0, len(items))
	for _, item := range items {
		if _, ok := known[item.URL]; ok {
			continue
		}
		novel = append(novel, item)
	}
	return novel
}

// FilterQuality drops items that are missing required fields or whose content
// is shorter than minLength.
func FilterQuality(items []domain.ContentItem, minLength int) []domain.ContentItem {
	kept := make([]domain.ContentItem, 0, len(items))
	for _, item := range items {
		if item.Title == "" || item.URL == "" {
			continue
		}
		if len(item.Content) < minLength {
			continue
		}
		kept = append(kept, item)
	}
	return kept
}
