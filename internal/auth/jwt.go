package auth

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/hemangkrish7/news-dashboard/internal/model"
)

const tokenTTL = 12 * time.Hour

// Claims carries the identity shape the dashboard needs: name, email
// (subject) and the admin flag that gates payout and analytics views.
type Claims struct {
	Name    string `json:"name"`
	IsAdmin bool   `json:"is_admin"`
	jwt.RegisteredClaims
}

func IssueToken(secret []byte, user model.User) (string, error) {
	now := time.Now()
	claims := Claims{
		Name:    user.Name,
		IsAdmin: user.IsAdmin,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   user.Email,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(tokenTTL)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(secret)
}

func ParseToken(secret []byte, raw string) (model.User, error) {
	var claims Claims
	token, err := jwt.ParseWithClaims(raw, &claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
		}
		return secret, nil
	})
	if err != nil {
		return model.User{}, err
	}

	if !token.Valid {
		return model.User{}, fmt.Errorf("invalid token")
	}

	return model.User{Name: claims.Name, Email: claims.Subject, IsAdmin: claims.IsAdmin}, nil
}
