package handler

import (
	"log/slog"
	"math"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/samber/lo"

	"github.com/hemangkrish7/news-dashboard/internal/engine"
	"github.com/hemangkrish7/news-dashboard/internal/model"
)

type PayoutStore interface {
	List() ([]model.PayoutRow, error)
	UpdateRate(id int64, rate float64) (bool, error)
}

type PayoutHandler struct {
	store PayoutStore
}

func NewPayoutHandler(store PayoutStore) *PayoutHandler {
	return &PayoutHandler{store: store}
}

func (h *PayoutHandler) GetPayouts(c *gin.Context) {
	rows, err := h.store.List()
	if err != nil {
		slog.Error("error listing payout rows", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}

	c.JSON(http.StatusOK, toPayoutsResponse(engine.FilterPayouts(rows, c.Query("search"))))
}

// UpdateRate persists an operator rate edit and answers with the
// recomputed derived view, so the caller sees the new payouts at once.
func (h *PayoutHandler) UpdateRate(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		slog.Error("invalid payout row id", "id", c.Param("id"), "error", err)
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid payout row id"})
		return
	}

	var req UpdateRateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	if req.Rate < 0 || math.IsNaN(req.Rate) || math.IsInf(req.Rate, 0) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Rate must be a non-negative number"})
		return
	}

	ok, err := h.store.UpdateRate(id, req.Rate)
	if err != nil {
		slog.Error("error updating payout rate", "error", err, "id", id)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}

	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "Payout row not found"})
		return
	}

	rows, err := h.store.List()
	if err != nil {
		slog.Error("error listing payout rows", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}

	c.JSON(http.StatusOK, toPayoutsResponse(rows))
}

func (h *PayoutHandler) GetHealth(c *gin.Context) {
	if _, err := h.store.List(); err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"status":   "unhealthy",
			"database": "disconnected",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":   "healthy",
		"database": "connected",
	})
}

func toPayoutsResponse(rows []model.PayoutRow) PayoutsResponse {
	lines := engine.ComputePayout(rows)

	return PayoutsResponse{
		Rows: lo.Map(lines, func(l model.PayoutLine, _ int) PayoutLineResponse {
			return PayoutLineResponse{
				ID:      l.ID,
				Author:  l.Author,
				Article: l.Article,
				Views:   l.Views,
				Rate:    l.Rate,
				Payout:  l.Payout,
			}
		}),
		TotalPayout: engine.TotalPayout(lines),
	}
}
