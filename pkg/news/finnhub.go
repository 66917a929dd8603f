package news

import (
	"context"
	"time"

	finnhub "github.com/Finnhub-Stock-API/finnhub-go/v2"
)

type FinnhubClient struct {
	client *finnhub.DefaultApiService
}

func NewFinnhubClient(apiKey string) *FinnhubClient {
	cfg := finnhub.NewConfiguration()
	cfg.AddDefaultHeader("X-Finnhub-Token", apiKey)
	client := finnhub.NewAPIClient(cfg).DefaultApi
	return &FinnhubClient{client: client}
}

func (c *FinnhubClient) Name() string {
	return "Finnhub"
}

func (c *FinnhubClient) Fetch(limit int) ([]Article, error) {
	res, _, err := c.client.MarketNews(context.Background()).Category("general").Execute()
	if err != nil {
		return nil, err
	}

	var articles []Article

	for _, item := range res {
		if len(articles) >= limit {
			break
		}

		a := Article{Source: c.Name()}

		if item.Headline != nil {
			a.Title = *item.Headline
		}

		if item.Summary != nil {
			a.Description = *item.Summary
		}

		if item.Url != nil {
			a.URL = *item.Url
		}

		if item.Image != nil {
			a.URLToImage = *item.Image
		}

		// Finnhub carries no author field; the normalizer maps the empty
		// author to "Unknown".
		if item.Datetime != nil {
			a.PublishedAt = time.Unix(*item.Datetime, 0).UTC().Format(time.RFC3339)
		}

		articles = append(articles, a)
	}

	return articles, nil
}
