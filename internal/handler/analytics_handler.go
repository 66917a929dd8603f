package handler

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/samber/lo"

	"github.com/hemangkrish7/news-dashboard/internal/engine"
	"github.com/hemangkrish7/news-dashboard/internal/model"
)

type AnalyticsHandler struct {
	source ArticleSource
}

func NewAnalyticsHandler(source ArticleSource) *AnalyticsHandler {
	return &AnalyticsHandler{source: source}
}

func (h *AnalyticsHandler) GetAuthorCounts(c *gin.Context) {
	h.grouped(c, engine.CountByAuthor)
}

func (h *AnalyticsHandler) GetCategoryCounts(c *gin.Context) {
	h.grouped(c, engine.CountByCategory)
}

// grouped recomputes a grouped view from the current snapshot on every
// call. Nothing is cached, so the charts always reflect the live set.
func (h *AnalyticsHandler) grouped(c *gin.Context, group func([]model.Article) []model.GroupedCount) {
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

	counts := group(engine.Filter(articles, parseCriteria(c)))

	c.JSON(http.StatusOK, lo.Map(counts, func(g model.GroupedCount, _ int) GroupedCountResponse {
		return GroupedCountResponse{Name: g.Key, Count: g.Count}
	}))
}
