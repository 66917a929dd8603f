package repository

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/hemangkrish7/news-dashboard/db"
	"github.com/hemangkrish7/news-dashboard/internal/model"
	"github.com/hemangkrish7/news-dashboard/pkg/news"
)

// SnapshotCache serves the current raw article set. Handlers always see an
// atomic snapshot: either the cached blob or one fresh fetch across all
// providers, stored with a single replace-the-whole-set write.
type SnapshotCache struct {
	clients []news.NewsClient
	ttl     time.Duration
	limit   int
}

func NewSnapshotCache(clients []news.NewsClient, ttl time.Duration, limit int) *SnapshotCache {
	return &SnapshotCache{clients: clients, ttl: ttl, limit: limit}
}

func (s *SnapshotCache) Snapshot() ([]model.RawArticle, error) {
	cached, err := db.GetSnapshot()
	if err != nil && !errors.Is(err, redis.Nil) {
		return nil, err
	}

	if err == nil {
		var raws []model.RawArticle
		if jsonErr := json.Unmarshal([]byte(cached), &raws); jsonErr == nil {
			return raws, nil
		}
		slog.Warn("discarding unreadable snapshot cache")
	}

	return s.Refresh()
}

// Refresh refetches from every configured provider and replaces the cached
// set. A failing provider is skipped, not fatal, as long as one succeeds.
func (s *SnapshotCache) Refresh() ([]model.RawArticle, error) {
	var raws []model.RawArticle

	for _, client := range s.clients {
		fetched, err := client.Fetch(s.limit)
		if err != nil {
			slog.Error("error fetching articles", "source", client.Name(), "error", err)
			continue
		}

		for _, a := range fetched {
			raws = append(raws, model.RawArticle{
				Title:       a.Title,
				Author:      a.Author,
				Description: a.Description,
				Content:     a.Content,
				URL:         a.URL,
				URLToImage:  a.URLToImage,
				Source:      a.Source,
				PublishedAt: a.PublishedAt,
			})
		}
	}

	if len(raws) == 0 {
		return nil, fmt.Errorf("no provider returned articles")
	}

	blob, err := json.Marshal(raws)
	if err != nil {
		return nil, err
	}

	if err := db.SetSnapshot(string(blob), s.ttl); err != nil {
		slog.Error("error caching article snapshot", "error", err)
	}

	return raws, nil
}
