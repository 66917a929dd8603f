package engine

import (
	"fmt"
	"time"

	"github.com/hemangkrish7/news-dashboard/internal/model"
)

// InvalidDateError reports a published-at value that could not be parsed.
// Recoverable: the caller drops or flags the record and keeps going.
type InvalidDateError struct {
	Value string
	Err   error
}

func (e *InvalidDateError) Error() string {
	return fmt.Sprintf("invalid published_at %q: %v", e.Value, e.Err)
}

func (e *InvalidDateError) Unwrap() error { return e.Err }

// Normalize defaults the optional fields of a raw feed record and parses
// its timestamp into the canonical Article shape. The input is never
// modified.
func Normalize(raw model.RawArticle) (model.Article, error) {
	publishedAt, err := time.Parse(time.RFC3339, raw.PublishedAt)
	if err != nil {
		return model.Article{}, &InvalidDateError{Value: raw.PublishedAt, Err: err}
	}

	author := raw.Author
	if author == "" {
		author = model.UnknownAuthor
	}

	return model.Article{
		Title:       raw.Title,
		Author:      author,
		Description: raw.Description,
		Content:     raw.Content,
		URL:         raw.URL,
		URLToImage:  raw.URLToImage,
		Source:      raw.Source,
		PublishedAt: publishedAt,
	}, nil
}

// NormalizeAll normalizes a whole snapshot, dropping records whose
// timestamp does not parse. Returns the survivors and the drop count; a
// bad record never aborts the batch.
func NormalizeAll(raws []model.RawArticle) ([]model.Article, int) {
	articles := make([]model.Article, 0, len(raws))
	dropped := 0

	for _, raw := range raws {
		a, err := Normalize(raw)
		if err != nil {
			dropped++
			continue
		}
		articles = append(articles, a)
	}

	return articles, dropped
}
