package session

import (
	"time" // Time for token expiration

	"github.com/golang-jwt/jwt/v5" // JWT library
)

// CookieName is the session cookie set on login and cleared on logout.
const CookieName = "session"

// Principal is the authenticated identity every store operation is scoped to.
// Email, name and image are optional claims used for lazy user provisioning.
type Principal struct {
	UserID uint
	Email  string
	Name   string
	Image  string
}

// JWT Claims
type Claims struct {
	UserID               uint   `json:"user_id"`         // Custom claim for user ID
	Email                string `json:"email,omitempty"` // Optional claims carried for record creation
	Name                 string `json:"name,omitempty"`
	Image                string `json:"image,omitempty"`
	jwt.RegisteredClaims        // Standard JWT claims
}

// Principal returns the principal carried by the claims.
func (c *Claims) Principal() Principal {
	return Principal{UserID: c.UserID, Email: c.Email, Name: c.Name, Image: c.Image}
}

// Issue creates a signed JWT for the given principal.
func Issue(p Principal, secret string) (string, error) {
	claims := Claims{
		UserID: p.UserID,
		Email:  p.Email,
		Name:   p.Name,
		Image:  p.Image,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(24 * time.Hour)), // Token expires in 24 hours
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

// Parse parses and validates a JWT token string.
func Parse(tokenStr, secret string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenStr, &Claims{}, func(token *jwt.Token) (any, error) {
		return []byte(secret), nil // Return the secret key for validation
	})
	if err != nil {
		return nil, err
	}
	if claims, ok := token.Claims.(*Claims); ok && token.Valid {
		return claims, nil
	}
	return nil, jwt.ErrSignatureInvalid
}
