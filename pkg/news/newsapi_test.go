package news

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-playground/assert/v2"
)

func TestNewsAPIFetch(t *testing.T) {
	payload := map[string]interface{}{
		"status": "ok",
		"articles": []map[string]interface{}{
			{
				"source":      map[string]interface{}{"id": "bbc-news", "name": "BBC News"},
				"author":      "Jane Doe",
				"title":       "Parliament passes budget",
				"description": "The annual budget cleared its final vote.",
				"url":         "https://example.com/budget",
				"urlToImage":  "https://example.com/budget.png",
				"publishedAt": "2024-03-01T09:00:00Z",
				"content":     "Full text here.",
			},
			{
				"source":      map[string]interface{}{"id": nil, "name": "Wire"},
				"author":      nil,
				"title":       "Untitled wire item",
				"description": nil,
				"url":         "https://example.com/wire",
				"urlToImage":  "https://example.com/wire.png",
				"publishedAt": "2024-03-01T10:30:00Z",
				"content":     nil,
			},
		},
	}

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(payload)
	}))
	defer srv.Close()

	client := &NewsAPIClient{
		apiKey:     "test-key",
		country:    "us",
		httpClient: srv.Client(),
	}
	client.httpClient.Transport = &rewriteTransport{base: srv.URL, inner: http.DefaultTransport}

	articles, err := client.Fetch(2)

	assert.Equal(t, nil, err)
	assert.Equal(t, 2, len(articles))

	a := articles[0]
	assert.Equal(t, "Parliament passes budget", a.Title)
	assert.Equal(t, "Jane Doe", a.Author)
	assert.Equal(t, "The annual budget cleared its final vote.", a.Description)
	assert.Equal(t, "BBC News", a.Source)
	assert.Equal(t, "2024-03-01T09:00:00Z", a.PublishedAt)

	// JSON nulls decode to empty strings; defaulting is the normalizer's job.
	b := articles[1]
	assert.Equal(t, "", b.Author)
	assert.Equal(t, "", b.Description)
	assert.Equal(t, "", b.Content)
}

func TestNewsAPIFetch_ErrorStatus(t *testing.T) {
	payload := map[string]interface{}{
		"status":  "error",
		"code":    "apiKeyInvalid",
		"message": "Your API key is invalid.",
	}

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(payload)
	}))
	defer srv.Close()

	client := &NewsAPIClient{
		apiKey:     "bad-key",
		country:    "us",
		httpClient: srv.Client(),
	}
	client.httpClient.Transport = &rewriteTransport{base: srv.URL, inner: http.DefaultTransport}

	_, err := client.Fetch(10)

	assert.NotEqual(t, nil, err)
}

// rewriteTransport redirects all requests to a fixed base URL (test server).
type rewriteTransport struct {
	base  string
	inner http.RoundTripper
}

func (rt *rewriteTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	req2 := req.Clone(req.Context())
	parsed, _ := http.NewRequest("GET", rt.base, nil)
	req2.URL.Host = parsed.URL.Host
	req2.URL.Scheme = parsed.URL.Scheme
	return rt.inner.RoundTrip(req2)
}
