package session

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/require"
)

func TestIssueAndParseRoundtrip(t *testing.T) {
	p := Principal{UserID: 42, Email: "user@example.com", Name: "User", Image: "https://example.com/a.png"}

	token, err := Issue(p, "secret")
	require.NoError(t, err)

	claims, err := Parse(token, "secret")
	require.NoError(t, err)
	require.Equal(t, p, claims.Principal())
}

func TestParseRejectsWrongSecret(t *testing.T) {
	token, err := Issue(Principal{UserID: 1}, "secret")
	require.NoError(t, err)

	_, err = Parse(token, "other-secret")
	require.Error(t, err)
}

func TestParseRejectsExpiredToken(t *testing.T) {
	claims := Claims{
		UserID: 1,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Hour)),
			IssuedAt:  jwt.NewNumericDate(time.Now().Add(-2 * time.Hour)),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("secret"))
	require.NoError(t, err)

	_, err = Parse(token, "secret")
	require.Error(t, err)
}

func TestParseRejectsGarbage(t *testing.T) {
	_, err := Parse("not-a-token", "secret")
	require.Error(t, err)
}
