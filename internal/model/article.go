package model

import "time"

// Category is the closed set of labels the classifier can produce.
type Category string

const (
	CategoryTechnology Category = "Technology"
	CategoryPolitics   Category = "Politics"
	CategorySports     Category = "Sports"
	CategoryBusiness   Category = "Business"
	CategoryGeneral    Category = "General"
)

// UnknownAuthor replaces an absent or empty author during normalization.
const UnknownAuthor = "Unknown"

// RawArticle is the loosely typed record delivered by feed providers.
// Every field except Title may be empty; PublishedAt is an unparsed
// ISO-8601 string until normalization.
type RawArticle struct {
	Title       string `json:"title"`
	Author      string `json:"author"`
	Description string `json:"description"`
	Content     string `json:"content"`
	URL         string `json:"url"`
	URLToImage  string `json:"url_to_image"`
	Source      string `json:"source"`
	PublishedAt string `json:"published_at"`
}

// Article is the normalized shape consumed by the filter pipeline and the
// aggregators. All optional fields have been defaulted.
type Article struct {
	Title       string
	Author      string
	Description string
	Content     string
	URL         string
	URLToImage  string
	Source      string
	PublishedAt time.Time
}

// FilterCriteria is the user-supplied filter state for one recomputation.
// Zero values mean "no constraint".
type FilterCriteria struct {
	SearchText string
	FromDate   *time.Time
	ToDate     *time.Time
	Category   Category
}

// GroupedCount is one row of a grouped view: a distinct key and how many
// articles fell into it.
type GroupedCount struct {
	Key   string
	Count int
}
