package auth

import (
	"testing"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestHashAndVerifyPassword(t *testing.T) {
	hash, err := HashPassword("secret123", bcrypt.MinCost)
	require.NoError(t, err)

	assert.NotEqual(t, "secret123", hash)
	assert.True(t, VerifyPassword(hash, "secret123"))
	assert.False(t, VerifyPassword(hash, "wrong"))
	assert.False(t, VerifyPassword("not-a-hash", "secret123"))
}

func TestHashPasswordSalted(t *testing.T) {
	first, err := HashPassword("secret123", bcrypt.MinCost)
	require.NoError(t, err)
	second, err := HashPassword("secret123", bcrypt.MinCost)
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
}

func TestIssueAndVerifyToken(t *testing.T) {
	tokens := NewTokens(Config{Secret: "test-secret", TokenTTLDays: 7})

	token, err := tokens.Issue(42)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	userID, err := tokens.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, int64(42), userID)
}

func TestVerifyExpiredToken(t *testing.T) {
	expired := NewTokens(Config{Secret: "test-secret", TokenTTLDays: -1})

	token, err := expired.Issue(42)
	require.NoError(t, err)

	_, err = expired.Verify(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestVerifyWrongSecret(t *testing.T) {
	issuer := NewTokens(Config{Secret: "one-secret", TokenTTLDays: 7})
	verifier := NewTokens(Config{Secret: "another-secret", TokenTTLDays: 7})

	token, err := issuer.Issue(42)
	require.NoError(t, err)

	_, err = verifier.Verify(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestVerifyMalformedToken(t *testing.T) {
	tokens := NewTokens(Config{Secret: "test-secret", TokenTTLDays: 7})

	for _, raw := range []string{"", "garbage", "a.b.c"} {
		_, err := tokens.Verify(raw)
		assert.ErrorIs(t, err, ErrInvalidToken)
	}
}

func TestVerifyRejectsUnsignedToken(t *testing.T) {
	tokens := NewTokens(Config{Secret: "test-secret", TokenTTLDays: 7})

	claims := jwt.MapClaims{"userId": float64(42)}
	unsigned, err := jwt.NewWithClaims(jwt.SigningMethodNone, claims).
		SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	_, err = tokens.Verify(unsigned)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestVerifyMissingUserID(t *testing.T) {
	tokens := NewTokens(Config{Secret: "test-secret", TokenTTLDays: 7})

	raw, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{"sub": "42"}).
		SignedString([]byte("test-secret"))
	require.NoError(t, err)

	_, err = tokens.Verify(raw)
	assert.ErrorIs(t, err, ErrInvalidToken)
}
