package engine

import (
	"fmt"
	"math"
	"strings"

	"github.com/hemangkrish7/news-dashboard/internal/model"
)

// CountByAuthor groups a snapshot by author, one row per distinct author
// in first-seen order. Authors are already normalized, so every article
// lands in exactly one bucket.
func CountByAuthor(articles []model.Article) []model.GroupedCount {
	return countBy(articles, func(a model.Article) string { return a.Author })
}

// CountByCategory groups by classified category. Categories never
// observed are omitted, not zero-filled.
func CountByCategory(articles []model.Article) []model.GroupedCount {
	return countBy(articles, func(a model.Article) string { return string(ClassifyArticle(a)) })
}

func countBy(articles []model.Article, key func(model.Article) string) []model.GroupedCount {
	index := make(map[string]int, len(articles))
	out := make([]model.GroupedCount, 0)

	for _, a := range articles {
		k := key(a)
		if i, ok := index[k]; ok {
			out[i].Count++
			continue
		}
		index[k] = len(out)
		out = append(out, model.GroupedCount{Key: k, Count: 1})
	}

	return out
}

// ComputePayout materializes views*rate for every row, rounded to two
// decimals. Order is preserved, no row is dropped, nothing is cached, so
// a prior rate edit is reflected on the very next call.
func ComputePayout(rows []model.PayoutRow) []model.PayoutLine {
	lines := make([]model.PayoutLine, 0, len(rows))

	for _, row := range rows {
		lines = append(lines, model.PayoutLine{
			PayoutRow: row,
			Payout:    roundCents(float64(row.Views) * row.Rate),
		})
	}

	return lines
}

// TotalPayout sums the per-row payouts of an already computed view.
func TotalPayout(lines []model.PayoutLine) float64 {
	var total float64
	for _, l := range lines {
		total += l.Payout
	}
	return roundCents(total)
}

// FilterPayouts keeps rows whose author or article title contains the
// search text, case-insensitively. Always returns a fresh slice.
func FilterPayouts(rows []model.PayoutRow, search string) []model.PayoutRow {
	needle := strings.ToLower(search)
	out := make([]model.PayoutRow, 0, len(rows))

	for _, row := range rows {
		if needle != "" &&
			!strings.Contains(strings.ToLower(row.Author), needle) &&
			!strings.Contains(strings.ToLower(row.Article), needle) {
			continue
		}
		out = append(out, row)
	}

	return out
}

// UpdateRate returns a copy of rows with the rate at index replaced. The
// input rows are left untouched.
func UpdateRate(rows []model.PayoutRow, index int, rate float64) ([]model.PayoutRow, error) {
	if index < 0 || index >= len(rows) {
		return nil, fmt.Errorf("payout row index %d out of range", index)
	}

	out := make([]model.PayoutRow, len(rows))
	copy(out, rows)
	out[index].Rate = rate

	return out, nil
}

func roundCents(v float64) float64 {
	return math.Round(v*100) / 100
}
