package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// ErrInvalidToken covers missing, malformed, expired and badly-signed
// tokens alike; callers map it to a single unauthorized response.
var ErrInvalidToken = errors.New("invalid or expired token")

type Config struct {
	Secret       string
	TokenTTLDays int
	BcryptCost   int
}

// Tokens issues and verifies HS256 session tokens carrying a user id.
type Tokens struct {
	secret []byte
	ttl    time.Duration
}

func NewTokens(cfg Config) *Tokens {
	return &Tokens{
		secret: []byte(cfg.Secret),
		ttl:    time.Duration(cfg.TokenTTLDays) * 24 * time.Hour,
	}
}

// Issue signs a token for userID expiring after the configured TTL.
func (t *Tokens) Issue(userID int64) (string, error) {
	now := time.Now().UTC()
	claims := jwt.MapClaims{
		"userId": userID,
		"iat":    now.Unix(),
		"exp":    now.Add(t.ttl).Unix(),
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(t.secret)
}

// Verify parses and validates a token, returning the user id it was issued
// for. Any defect - wrong signing method, bad signature, expiry, garbage
// input - yields ErrInvalidToken.
func (t *Tokens) Verify(tokenString string) (int64, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return t.secret, nil
	})
	if err != nil || !token.Valid {
		return 0, ErrInvalidToken
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return 0, ErrInvalidToken
	}
	id, ok := claims["userId"].(float64)
	if !ok {
		return 0, ErrInvalidToken
	}
	return int64(id), nil
}
