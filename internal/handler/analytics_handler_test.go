package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/assert/v2"
	"github.com/hemangkrish7/news-dashboard/internal/model"
)

func newAnalyticsTestRouter(source ArticleSource) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	h := NewAnalyticsHandler(source)
	r.GET("/api/analytics/authors", h.GetAuthorCounts)
	r.GET("/api/analytics/categories", h.GetCategoryCounts)
	return r
}

func TestGetAuthorCounts(t *testing.T) {
	raws := []model.RawArticle{
		{Title: "one", Author: "Alice Johnson", PublishedAt: "2024-01-01T00:00:00Z"},
		{Title: "two", PublishedAt: "2024-01-02T00:00:00Z"},
		{Title: "three", Author: "Alice Johnson", PublishedAt: "2024-01-03T00:00:00Z"},
	}
	r := newAnalyticsTestRouter(&fakeSource{raws: raws})

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/api/analytics/authors", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var res []GroupedCountResponse
	json.Unmarshal(w.Body.Bytes(), &res)

	assert.Equal(t, 2, len(res))
	assert.Equal(t, "Alice Johnson", res[0].Name)
	assert.Equal(t, 2, res[0].Count)
	assert.Equal(t, model.UnknownAuthor, res[1].Name)
	assert.Equal(t, 1, res[1].Count)
}

func TestGetCategoryCounts(t *testing.T) {
	raws := []model.RawArticle{
		{Title: "AI breakthrough", PublishedAt: "2024-01-01T00:00:00Z"},
		{Title: "Election results", PublishedAt: "2024-01-02T00:00:00Z"},
		{Title: "New gadget review", PublishedAt: "2024-01-03T00:00:00Z"},
	}
	r := newAnalyticsTestRouter(&fakeSource{raws: raws})

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/api/analytics/categories", nil)
	r.ServeHTTP(w, req)

	var res []GroupedCountResponse
	json.Unmarshal(w.Body.Bytes(), &res)

	assert.Equal(t, 2, len(res))
	assert.Equal(t, "Technology", res[0].Name)
	assert.Equal(t, 2, res[0].Count)
	assert.Equal(t, "Politics", res[1].Name)
	assert.Equal(t, 1, res[1].Count)
}

func TestGetCategoryCounts_RespectsFilter(t *testing.T) {
	raws := []model.RawArticle{
		{Title: "AI breakthrough", Author: "Alice Johnson", PublishedAt: "2024-01-01T00:00:00Z"},
		{Title: "Election results", Author: "Bob Smith", PublishedAt: "2024-01-02T00:00:00Z"},
	}
	r := newAnalyticsTestRouter(&fakeSource{raws: raws})

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/api/analytics/categories?search=bob", nil)
	r.ServeHTTP(w, req)

	var res []GroupedCountResponse
	json.Unmarshal(w.Body.Bytes(), &res)

	assert.Equal(t, 1, len(res))
	assert.Equal(t, "Politics", res[0].Name)
}

func TestGetAuthorCounts_SnapshotError(t *testing.T) {
	r := newAnalyticsTestRouter(&fakeSource{err: errors.New("redis down")})

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/api/analytics/authors", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
}
