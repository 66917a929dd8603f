package handler

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/samber/lo"

	"github.com/hemangkrish7/news-dashboard/internal/engine"
	"github.com/hemangkrish7/news-dashboard/internal/model"
)

// ArticleSource supplies the current raw article snapshot.
type ArticleSource interface {
	Snapshot() ([]model.RawArticle, error)
}

type ArticleHandler struct {
	source ArticleSource
}

func NewArticleHandler(source ArticleSource) *ArticleHandler {
	return &ArticleHandler{source: source}
}

// GetArticles serves the dashboard feed: the normalized snapshot run
// through the filter pipeline with the caller's criteria.
func (h *ArticleHandler) GetArticles(c *gin.Context) {
	raws, err := h.source.Snapshot()
	if err != nil {
		slog.Error("error loading article snapshot", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Snapshot unavailable"})
		return
	}

	articles, dropped := engine.NormalizeAll(raws)
	if dropped > 0 {
		slog.Warn("dropped articles with unparseable timestamps", "count", dropped)
	}

	filtered := engine.Filter(articles, parseCriteria(c))

	res := ArticlesResponse{
		Articles: lo.Map(filtered, func(a model.Article, _ int) ArticleResponse {
			return toArticleResponse(a)
		}),
		Total:   len(filtered),
		Dropped: dropped,
	}

	c.JSON(http.StatusOK, res)
}

func toArticleResponse(a model.Article) ArticleResponse {
	return ArticleResponse{
		Title:       a.Title,
		Author:      a.Author,
		Description: a.Description,
		URL:         a.URL,
		URLToImage:  a.URLToImage,
		Source:      a.Source,
		PublishedAt: a.PublishedAt.Format(time.RFC3339),
		Category:    string(engine.ClassifyArticle(a)),
	}
}

const dateLayout = "2006-01-02"

func parseCriteria(c *gin.Context) model.FilterCriteria {
	criteria := model.FilterCriteria{
		SearchText: c.Query("search"),
		Category:   model.Category(c.Query("category")),
	}

	if t, ok := parseDateParam(c, "from"); ok {
		criteria.FromDate = &t
	}
	if t, ok := parseDateParam(c, "to"); ok {
		criteria.ToDate = &t
	}

	return criteria
}

// Accepts the date-picker format and full RFC3339 timestamps. A malformed
// boundary is logged and treated as unset rather than failing the request.
func parseDateParam(c *gin.Context, name string) (time.Time, bool) {
	v := c.Query(name)
	if v == "" {
		return time.Time{}, false
	}

	if t, err := time.Parse(dateLayout, v); err == nil {
		return t, true
	}
	if t, err := time.Parse(time.RFC3339, v); err == nil {
		return t, true
	}

	slog.Warn("ignoring malformed date parameter", "param", name, "value", v)
	return time.Time{}, false
}
