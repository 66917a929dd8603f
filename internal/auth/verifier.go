package auth

import (
	"crypto/subtle"
	"strings"

	"github.com/hemangkrish7/news-dashboard/internal/model"
)

// Credentials is one statically configured operator account.
type Credentials struct {
	Name     string
	Email    string
	Password string
	IsAdmin  bool
}

// Verifier checks login credentials against the configured accounts.
// The dashboard core never sees roles; gating happens at the handler.
type Verifier struct {
	users []Credentials
}

func NewVerifier(users []Credentials) *Verifier {
	return &Verifier{users: users}
}

func (v *Verifier) Verify(email, password string) (model.User, bool) {
	for _, u := range v.users {
		if !strings.EqualFold(u.Email, email) {
			continue
		}
		if subtle.ConstantTimeCompare([]byte(u.Password), []byte(password)) == 1 {
			return model.User{Name: u.Name, Email: u.Email, IsAdmin: u.IsAdmin}, true
		}
	}

	return model.User{}, false
}
