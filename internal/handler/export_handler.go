package handler

import (
	"encoding/csv"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/go-pdf/fpdf"

	"github.com/hemangkrish7/news-dashboard/internal/engine"
	"github.com/hemangkrish7/news-dashboard/internal/model"
)

// ExportHandler serializes already-computed flat rows; every figure comes
// from the same aggregation calls the JSON endpoints use.
type ExportHandler struct {
	source ArticleSource
	store  PayoutStore
}

func NewExportHandler(source ArticleSource, store PayoutStore) *ExportHandler {
	return &ExportHandler{source: source, store: store}
}

// ExportPayoutsCSV streams the computed payout view as CSV, honoring the
// same search filter as the payout table.
func (h *ExportHandler) ExportPayoutsCSV(c *gin.Context) {
	lines, ok := h.payoutLines(c)
	if !ok {
		return
	}

	c.Header("Content-Type", "text/csv")
	c.Header("Content-Disposition", `attachment; filename="payouts.csv"`)

	w := csv.NewWriter(c.Writer)
	w.Write([]string{"Author", "Article", "Views", "Rate", "Payout"})
	for _, l := range lines {
		w.Write(payoutRecord(l))
	}
	w.Flush()

	if err := w.Error(); err != nil {
		slog.Error("error writing payouts csv", "error", err)
	}
}

func (h *ExportHandler) ExportPayoutsPDF(c *gin.Context) {
	lines, ok := h.payoutLines(c)
	if !ok {
		return
	}

	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.AddPage()
	pdf.SetFont("Helvetica", "B", 14)
	pdf.Cell(0, 10, "Payout Dashboard")
	pdf.Ln(12)

	widths := []float64{45, 60, 25, 25, 30}
	headers := []string{"Author", "Article", "Views", "Rate", "Payout"}

	pdf.SetFont("Helvetica", "B", 10)
	for i, hd := range headers {
		pdf.CellFormat(widths[i], 8, hd, "1", 0, "L", false, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetFont("Helvetica", "", 10)
	for _, l := range lines {
		for i, cell := range payoutRecord(l) {
			pdf.CellFormat(widths[i], 8, cell, "1", 0, "L", false, 0, "")
		}
		pdf.Ln(-1)
	}

	c.Header("Content-Type", "application/pdf")
	c.Header("Content-Disposition", `attachment; filename="payouts.pdf"`)

	if err := pdf.Output(c.Writer); err != nil {
		slog.Error("error writing payouts pdf", "error", err)
	}
}

// ExportAnalyticsCSV exports a grouped view over the filtered snapshot;
// group=categories selects category counts, anything else author counts.
func (h *ExportHandler) ExportAnalyticsCSV(c *gin.Context) {
	raws, err := h.source.Snapshot()
	if err != nil {
		slog.Error("error loading article snapshot", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Snapshot unavailable"})
		return
	}

	articles, _ := engine.NormalizeAll(raws)
	filtered := engine.Filter(articles, parseCriteria(c))

	var counts []model.GroupedCount
	if c.Query("group") == "categories" {
		counts = engine.CountByCategory(filtered)
	} else {
		counts = engine.CountByAuthor(filtered)
	}

	c.Header("Content-Type", "text/csv")
	c.Header("Content-Disposition", `attachment; filename="analytics.csv"`)

	w := csv.NewWriter(c.Writer)
	w.Write([]string{"Name", "Count"})
	for _, g := range counts {
		w.Write([]string{g.Key, strconv.Itoa(g.Count)})
	}
	w.Flush()

	if err := w.Error(); err != nil {
		slog.Error("error writing analytics csv", "error", err)
	}
}

func (h *ExportHandler) payoutLines(c *gin.Context) ([]model.PayoutLine, bool) {
	rows, err := h.store.List()
	if err != nil {
		slog.Error("error listing payout rows", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return nil, false
	}

	return engine.ComputePayout(engine.FilterPayouts(rows, c.Query("search"))), true
}

func payoutRecord(l model.PayoutLine) []string {
	return []string{
		l.Author,
		l.Article,
		strconv.Itoa(l.Views),
		strconv.FormatFloat(l.Rate, 'f', -1, 64),
		fmt.Sprintf("%.2f", l.Payout),
	}
}
