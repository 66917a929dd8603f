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

type fakeSource struct {
	raws []model.RawArticle
	err  error
}

func (f *fakeSource) Snapshot() ([]model.RawArticle, error) {
	return f.raws, f.err
}

func testSnapshot() []model.RawArticle {
	return []model.RawArticle{
		{Title: "AI chips surge", Author: "Alice Johnson", Description: "New silicon", PublishedAt: "2024-01-01T00:00:00Z"},
		{Title: "Election night recap", PublishedAt: "2024-01-05T00:00:00Z"},
		{Title: "Broken clock story", Author: "Bob Smith", PublishedAt: "sometime"},
		{Title: "Cricket final thriller", Author: "Carol White", PublishedAt: "2024-01-10T00:00:00Z"},
	}
}

func newArticleTestRouter(source ArticleSource) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	h := NewArticleHandler(source)
	r.GET("/api/articles", h.GetArticles)
	return r
}

func TestGetArticles_NormalizesAndDropsBadRecords(t *testing.T) {
	r := newArticleTestRouter(&fakeSource{raws: testSnapshot()})

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/api/articles", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var res ArticlesResponse
	json.Unmarshal(w.Body.Bytes(), &res)

	assert.Equal(t, 3, res.Total)
	assert.Equal(t, 1, res.Dropped)

	// Missing author defaulted, never absent in the derived view.
	assert.Equal(t, "Election night recap", res.Articles[1].Title)
	assert.Equal(t, model.UnknownAuthor, res.Articles[1].Author)
}

func TestGetArticles_SearchByAuthorOrTitle(t *testing.T) {
	r := newArticleTestRouter(&fakeSource{raws: testSnapshot()})

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/api/articles?search=alice", nil)
	r.ServeHTTP(w, req)

	var res ArticlesResponse
	json.Unmarshal(w.Body.Bytes(), &res)

	assert.Equal(t, 1, res.Total)
	assert.Equal(t, "AI chips surge", res.Articles[0].Title)
}

func TestGetArticles_CategoryFilter(t *testing.T) {
	r := newArticleTestRouter(&fakeSource{raws: testSnapshot()})

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/api/articles?category=Politics", nil)
	r.ServeHTTP(w, req)

	var res ArticlesResponse
	json.Unmarshal(w.Body.Bytes(), &res)

	assert.Equal(t, 1, res.Total)
	assert.Equal(t, "Election night recap", res.Articles[0].Title)
	assert.Equal(t, "Politics", res.Articles[0].Category)
}

func TestGetArticles_DateRangeInclusive(t *testing.T) {
	r := newArticleTestRouter(&fakeSource{raws: testSnapshot()})

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/api/articles?from=2024-01-05&to=2024-01-10", nil)
	r.ServeHTTP(w, req)

	var res ArticlesResponse
	json.Unmarshal(w.Body.Bytes(), &res)

	// Both boundary articles are published exactly at their bound.
	assert.Equal(t, 2, res.Total)
	assert.Equal(t, "Election night recap", res.Articles[0].Title)
	assert.Equal(t, "Cricket final thriller", res.Articles[1].Title)
}

func TestGetArticles_MalformedDateTreatedAsUnset(t *testing.T) {
	r := newArticleTestRouter(&fakeSource{raws: testSnapshot()})

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/api/articles?from=last-tuesday", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var res ArticlesResponse
	json.Unmarshal(w.Body.Bytes(), &res)
	assert.Equal(t, 3, res.Total)
}

func TestGetArticles_SnapshotError(t *testing.T) {
	r := newArticleTestRouter(&fakeSource{err: errors.New("redis down")})

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/api/articles", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
}
