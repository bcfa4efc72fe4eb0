package jwtmw

import (
	"errors"

	"github.com/golang-jwt/jwt/v5"
)

var (
	// ErrTokenExpired is returned for a token that verifies correctly but
	// has passed its expiry. Clients can use it to prompt a re-login.
	ErrTokenExpired = errors.New("token has expired")

	// ErrTokenInvalid is returned for every other verification failure:
	// bad signature, malformed token, missing claims. The cause is
	// deliberately not distinguished.
	ErrTokenInvalid = errors.New("could not validate credentials")
)

// Identity is the authenticated caller extracted from a verified token.
type Identity struct {
	UserID   string
	Username string
}

// Verifier validates access tokens against the configured secret and
// signing algorithm.
type Verifier struct {
	secret []byte
	method jwt.SigningMethod
}

// NewVerifier creates a token verifier. The algorithm must name an HMAC
// method, matching the issuer configuration.
func NewVerifier(secret, algorithm string) (*Verifier, error) {
	method, err := hmacMethod(algorithm)
	if err != nil {
		return nil, err
	}
	return &Verifier{secret: []byte(secret), method: method}, nil
}

// Verify checks the token's signature and expiry and extracts the caller's
// identity. Tokens without both "sub" and "username" claims are invalid.
func (v *Verifier) Verify(tokenStr string) (*Identity, error) {
	token, err := jwt.Parse(tokenStr, func(t *jwt.Token) (any, error) {
		if t.Method.Alg() != v.method.Alg() {
			return nil, jwt.ErrSignatureInvalid
		}
		return v.secret, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrTokenExpired
		}
		return nil, ErrTokenInvalid
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, ErrTokenInvalid
	}
	sub, _ := claims["sub"].(string)
	username, _ := claims["username"].(string)
	if sub == "" || username == "" {
		return nil, ErrTokenInvalid
	}

	return &Identity{UserID: sub, Username: username}, nil
}
