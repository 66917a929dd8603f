package engine

import (
	"strings"
	"time"

	"github.com/hemangkrish7/news-dashboard/internal/model"
)

// Filter applies the text, date and category predicates in a single pass
// and returns the survivors in their original relative order. The input
// slice is never modified; empty criteria fields are no-ops.
func Filter(articles []model.Article, c model.FilterCriteria) []model.Article {
	search := strings.ToLower(c.SearchText)
	out := make([]model.Article, 0, len(articles))

	for _, a := range articles {
		if !matchesText(a, search) || !matchesDate(a, c.FromDate, c.ToDate) || !matchesCategory(a, c.Category) {
			continue
		}
		out = append(out, a)
	}

	return out
}

func matchesText(a model.Article, search string) bool {
	if search == "" {
		return true
	}
	return strings.Contains(strings.ToLower(a.Author), search) ||
		strings.Contains(strings.ToLower(a.Title), search)
}

// Both bounds are inclusive.
func matchesDate(a model.Article, from, to *time.Time) bool {
	if from != nil && a.PublishedAt.Before(*from) {
		return false
	}
	if to != nil && a.PublishedAt.After(*to) {
		return false
	}
	return true
}

func matchesCategory(a model.Article, want model.Category) bool {
	if want == "" {
		return true
	}
	return ClassifyArticle(a) == want
}
