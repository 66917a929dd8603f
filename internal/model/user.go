package model

// User is the identity shape supplied by the auth collaborator. The core
// never reads it; handlers use IsAdmin to gate the payout and analytics
// surfaces.
type User struct {
	Name    string
	Email   string
	IsAdmin bool
}
