package repository

import (
	"database/sql"

	"github.com/hemangkrish7/news-dashboard/internal/model"
)

// SeedRows is the fixed author/article/rate table loaded at session start.
var SeedRows = []model.PayoutRow{
	{Author: "Alice Johnson", Article: "React Hooks Deep Dive", Views: 3200, Rate: 0.05},
	{Author: "Bob Smith", Article: "Tailwind for Beginners", Views: 4100, Rate: 0.04},
	{Author: "Clara Adams", Article: "Advanced Next.js Patterns", Views: 2800, Rate: 0.06},
}

type PayoutRepository struct {
	db *sql.DB
}

func NewPayoutRepository(db *sql.DB) *PayoutRepository {
	return &PayoutRepository{db: db}
}

// Seed creates the payout table if needed and inserts the session-start
// rows. Rows already present are left alone so operator rate edits
// survive a restart.
func (r *PayoutRepository) Seed(rows []model.PayoutRow) error {
	_, err := r.db.Exec(`
		CREATE TABLE IF NOT EXISTS payout_row (
			id      BIGSERIAL PRIMARY KEY,
			author  TEXT NOT NULL,
			article TEXT NOT NULL,
			views   INTEGER NOT NULL,
			rate    DOUBLE PRECISION NOT NULL,
			UNIQUE (author, article)
		)
	`)
	if err != nil {
		return err
	}

	for _, row := range rows {
		_, err := r.db.Exec(`
			INSERT INTO payout_row(author, article, views, rate)
			VALUES($1, $2, $3, $4)
			ON CONFLICT (author, article) DO NOTHING
		`, row.Author, row.Article, row.Views, row.Rate)
		if err != nil {
			return err
		}
	}

	return nil
}

// List returns every payout row in insertion order. Rows are never
// deleted, only their rate changes.
func (r *PayoutRepository) List() ([]model.PayoutRow, error) {
	rows, err := r.db.Query(`
		SELECT id, author, article, views, rate
		FROM payout_row
		ORDER BY id ASC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []model.PayoutRow
	for rows.Next() {
		var row model.PayoutRow
		if err := rows.Scan(&row.ID, &row.Author, &row.Article, &row.Views, &row.Rate); err != nil {
			return nil, err
		}
		out = append(out, row)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return out, nil
}

// UpdateRate persists an operator rate edit. Returns false when no row
// has the given id.
func (r *PayoutRepository) UpdateRate(id int64, rate float64) (bool, error) {
	res, err := r.db.Exec(`
		UPDATE payout_row SET rate = $1 WHERE id = $2
	`, rate, id)
	if err != nil {
		return false, err
	}

	n, err := res.RowsAffected()
	if err != nil {
		return false, err
	}

	return n > 0, nil
}
