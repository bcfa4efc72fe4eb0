// Package jwtmw provides JWT issuance, verification, and the Gin middleware
// guarding protected routes.
package jwtmw

import (
	"fmt"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Issuer defines the interface for access token issuance.
type Issuer interface {
	// IssueToken creates a signed access token for the given user.
	IssueToken(userID uint, username string) (string, error)
}

// issuer implements the Issuer interface.
type issuer struct {
	secret     []byte
	method     jwt.SigningMethod
	expiration time.Duration
}

// NewIssuer creates a token issuer for the configured secret, signing
// algorithm, and token lifetime. Only HMAC algorithms (HS256/HS384/HS512)
// are accepted; anything else is a configuration error.
func NewIssuer(secret, algorithm string, expiration time.Duration) (Issuer, error) {
	method, err := hmacMethod(algorithm)
	if err != nil {
		return nil, err
	}
	if secret == "" {
		return nil, fmt.Errorf("signing secret must not be empty")
	}
	return &issuer{
		secret:     []byte(secret),
		method:     method,
		expiration: expiration,
	}, nil
}

// IssueToken creates a signed token binding the user id and username.
// The user id is carried in the standard "sub" claim as a decimal string.
func (g *issuer) IssueToken(userID uint, username string) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"sub":      strconv.FormatUint(uint64(userID), 10),
		"username": username,
		"iat":      now.Unix(),
		"exp":      now.Add(g.expiration).Unix(),
	}

	token := jwt.NewWithClaims(g.method, claims)
	signed, err := token.SignedString(g.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}

	return signed, nil
}

// hmacMethod resolves an algorithm name to its HMAC signing method.
func hmacMethod(algorithm string) (jwt.SigningMethod, error) {
	method := jwt.GetSigningMethod(algorithm)
	if method == nil {
		return nil, fmt.Errorf("unknown signing algorithm %q", algorithm)
	}
	if _, ok := method.(*jwt.SigningMethodHMAC); !ok {
		return nil, fmt.Errorf("signing algorithm %q is not an HMAC method", algorithm)
	}
	return method, nil
}
