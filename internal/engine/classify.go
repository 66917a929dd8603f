package engine

import (
	"strings"

	"github.com/hemangkrish7/news-dashboard/internal/model"
)

// categoryRule pairs a label with its keyword alternatives. Rules live in
// a slice, not a map, because evaluation order is part of the contract.
type categoryRule struct {
	label    model.Category
	keywords []string
}

// Rules are evaluated top to bottom and the first rule with any keyword
// present wins, so text mentioning both "ai" and "election" is Technology,
// never Politics. Matching is unanchored substring matching over the
// case-folded text: "ai" also matches inside "air".
var categoryRules = []categoryRule{
	{model.CategoryTechnology, []string{"tech", "ai", "software", "gadget", "iphone", "android", "app", "robot", "programming", "code", "cloud", "data"}},
	{model.CategoryPolitics, []string{"politic", "election", "government", "president", "minister", "policy", "congress", "senate", "bjp", "modi", "rahul"}},
	{model.CategorySports, []string{"sport", "match", "tournament", "cricket", "football", "nba", "team", "score", "goal", "fifa", "ipl", "bcci", "player"}},
	{model.CategoryBusiness, []string{"business", "startup", "market", "stock", "economy", "trade", "funding", "investment", "bank", "finance", "shares"}},
}

// Classify maps free-form text to exactly one category. It is total and
// deterministic: no rule matching means CategoryGeneral, never an error.
func Classify(text string) model.Category {
	lower := strings.ToLower(text)

	for _, rule := range categoryRules {
		for _, kw := range rule.keywords {
			if strings.Contains(lower, kw) {
				return rule.label
			}
		}
	}

	return model.CategoryGeneral
}

// ClassifyArticle classifies the canonical input, title plus description.
func ClassifyArticle(a model.Article) model.Category {
	return Classify(a.Title + " " + a.Description)
}
