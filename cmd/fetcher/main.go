package main

import (
	"log"
	"log/slog"
	"os"
	"time"

	"github.com/joho/godotenv"

	"github.com/hemangkrish7/news-dashboard/db"
	"github.com/hemangkrish7/news-dashboard/internal/repository"
	"github.com/hemangkrish7/news-dashboard/pkg/news"
)

const defaultSnapshotTTL = 15 * time.Minute

// Warms the article snapshot so the first dashboard request after a deploy
// does not pay the provider round trips.
func main() {

	godotenv.Load()

	slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stdout, nil)))

	err := db.ConnectRedis()
	if err != nil {
		log.Fatalf("error connecting to Redis: %v", err)
	}
	defer db.CloseRedis()

	var clients []news.NewsClient
	if key := os.Getenv("NEWSAPI_API_KEY"); key != "" {
		clients = append(clients, news.NewNewsAPIClient(key))
	}
	if key := os.Getenv("FINNHUB_API_KEY"); key != "" {
		clients = append(clients, news.NewFinnhubClient(key))
	}

	if len(clients) == 0 {
		slog.Error("no news source API keys configured")
		return
	}

	ttl := defaultSnapshotTTL
	if raw := os.Getenv("SNAPSHOT_TTL"); raw != "" {
		if parsed, err := time.ParseDuration(raw); err == nil {
			ttl = parsed
		} else {
			slog.Warn("invalid SNAPSHOT_TTL, using default", "value", raw)
		}
	}

	cache := repository.NewSnapshotCache(clients, ttl, 50)

	raws, err := cache.Refresh()
	if err != nil {
		slog.Error("error refreshing article snapshot", "error", err)
		os.Exit(1)
	}

	slog.Info("snapshot refreshed", "articles", len(raws), "sources", len(clients))
}
