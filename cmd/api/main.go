package main

import (
	"log"
	"log/slog"
	"os"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"github.com/hemangkrish7/news-dashboard/db"
	"github.com/hemangkrish7/news-dashboard/internal/auth"
	"github.com/hemangkrish7/news-dashboard/internal/handler"
	"github.com/hemangkrish7/news-dashboard/internal/repository"
	"github.com/hemangkrish7/news-dashboard/pkg/news"
)

const defaultSnapshotTTL = 15 * time.Minute

func main() {

	godotenv.Load()

	slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stdout, nil)))

	err := db.Connect()
	if err != nil {
		log.Fatalf("error connecting to DB: %v", err)
	}
	defer db.Close()

	err = db.ConnectRedis()
	if err != nil {
		log.Fatalf("error connecting to Redis: %v", err)
	}
	defer db.CloseRedis()

	secret := []byte(os.Getenv("JWT_SECRET"))
	if len(secret) == 0 {
		log.Fatal("JWT_SECRET is not set")
	}

	payoutRepo := repository.NewPayoutRepository(db.DB)
	if err := payoutRepo.Seed(repository.SeedRows); err != nil {
		log.Fatalf("error seeding payout rows: %v", err)
	}

	cache := repository.NewSnapshotCache(newsClients(), snapshotTTL(), 50)

	verifier := auth.NewVerifier([]auth.Credentials{{
		Name:     envOr("ADMIN_NAME", "Admin"),
		Email:    os.Getenv("ADMIN_EMAIL"),
		Password: os.Getenv("ADMIN_PASSWORD"),
		IsAdmin:  true,
	}})

	authHandler := handler.NewAuthHandler(verifier, secret)
	articleHandler := handler.NewArticleHandler(cache)
	analyticsHandler := handler.NewAnalyticsHandler(cache)
	payoutHandler := handler.NewPayoutHandler(payoutRepo)
	exportHandler := handler.NewExportHandler(cache, payoutRepo)

	r := gin.Default()

	allowedOrigins := []string{"http://localhost:3000"}

	if frontendURL := os.Getenv("FRONTEND_URL"); frontendURL != "" {
		allowedOrigins = append(allowedOrigins, frontendURL)
	}

	slog.Info("AllowOrigins URL:", "urls", allowedOrigins)

	r.Use(cors.New(cors.Config{
		AllowOrigins: allowedOrigins,
		AllowMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders: []string{"Origin", "Content-Type", "Authorization"},
	}))

	r.POST("/auth/login", authHandler.Login)
	r.GET("/health", payoutHandler.GetHealth)
	r.GET("/api/articles", articleHandler.GetArticles)

	admin := r.Group("/api", handler.RequireAdmin(secret))
	admin.GET("/analytics/authors", analyticsHandler.GetAuthorCounts)
	admin.GET("/analytics/categories", analyticsHandler.GetCategoryCounts)
	admin.GET("/payouts", payoutHandler.GetPayouts)
	admin.PUT("/payouts/:id/rate", payoutHandler.UpdateRate)
	admin.GET("/export/payouts.csv", exportHandler.ExportPayoutsCSV)
	admin.GET("/export/payouts.pdf", exportHandler.ExportPayoutsPDF)
	admin.GET("/export/analytics.csv", exportHandler.ExportAnalyticsCSV)

	err = r.Run(":8080")
	if err != nil {
		log.Fatalf("error starting server: %v", err)
	}
}

func newsClients() []news.NewsClient {
	var clients []news.NewsClient
	if key := os.Getenv("NEWSAPI_API_KEY"); key != "" {
		clients = append(clients, news.NewNewsAPIClient(key))
	}
	if key := os.Getenv("FINNHUB_API_KEY"); key != "" {
		clients = append(clients, news.NewFinnhubClient(key))
	}

	if len(clients) == 0 {
		log.Fatal("no news source API keys configured")
	}

	return clients
}

func snapshotTTL() time.Duration {
	raw := os.Getenv("SNAPSHOT_TTL")
	if raw == "" {
		return defaultSnapshotTTL
	}

	ttl, err := time.ParseDuration(raw)
	if err != nil {
		slog.Warn("invalid SNAPSHOT_TTL, using default", "value", raw)
		return defaultSnapshotTTL
	}

	return ttl
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
