package news

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

type NewsAPIClient struct {
	apiKey     string
	country    string
	httpClient *http.Client
}

func NewNewsAPIClient(apiKey string) *NewsAPIClient {
	return &NewsAPIClient{
		apiKey:     apiKey,
		country:    "us",
		httpClient: &http.Client{Timeout: 30 * time.Second},
	}
}

func (c *NewsAPIClient) Name() string {
	return "NewsAPI"
}

func (c *NewsAPIClient) Fetch(limit int) ([]Article, error) {
	url := fmt.Sprintf(
		"https://newsapi.org/v2/top-headlines?country=%s&pageSize=%d&apiKey=%s",
		c.country, limit, c.apiKey,
	)

	resp, err := c.httpClient.Get(url)
	if err != nil {
		return nil, fmt.Errorf("newsapi fetch: %w", err)
	}
	defer resp.Body.Close()

	var raw newsAPIResponse
	if err := json.NewDecoder(resp.Body).Decode(&raw); err != nil {
		return nil, fmt.Errorf("newsapi decode: %w", err)
	}

	if raw.Status != "ok" {
		return nil, fmt.Errorf("newsapi error: %s (%s)", raw.Message, raw.Code)
	}

	articles := make([]Article, 0, len(raw.Articles))
	for _, item := range raw.Articles {
		articles = append(articles, Article{
			Title:       item.Title,
			Author:      item.Author,
			Description: item.Description,
			Content:     item.Content,
			URL:         item.URL,
			URLToImage:  item.URLToImage,
			Source:      item.Source.Name,
			PublishedAt: item.PublishedAt,
		})
	}

	return articles, nil
}

type newsAPIResponse struct {
	Status   string           `json:"status"`
	Code     string           `json:"code"`
	Message  string           `json:"message"`
	Articles []newsAPIArticle `json:"articles"`
}

// author, description and content come back as JSON null for wire-service
// items; they decode to empty strings and stay that way until the
// normalizer defaults them.
type newsAPIArticle struct {
	Source      newsAPISource `json:"source"`
	Author      string        `json:"author"`
	Title       string        `json:"title"`
	Description string        `json:"description"`
	URL         string        `json:"url"`
	URLToImage  string        `json:"urlToImage"`
	PublishedAt string        `json:"publishedAt"`
	Content     string        `json:"content"`
}

type newsAPISource struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}
