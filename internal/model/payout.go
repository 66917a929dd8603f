package model

// PayoutRow is one author/article entry of the payout table. Rate is the
// only field the operator edits; the derived payout is never stored.
type PayoutRow struct {
	ID      int64
	Author  string
	Article string
	Views   int
	Rate    float64
}

// PayoutLine is a PayoutRow with its payout materialized for display or
// export. Recomputed on every read.
type PayoutLine struct {
	PayoutRow
	Payout float64
}
