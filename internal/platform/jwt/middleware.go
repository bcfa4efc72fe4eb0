package jwtmw

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/harikrishnanks99/Ethnoverse/internal/api"
)

// Context keys set by AuthRequired for downstream handlers.
const (
	ContextUserID   = "userID"
	ContextUsername = "username"
)

// AuthRequired returns a Gin middleware that validates bearer tokens and
// restricts access to authenticated users. Every rejection carries a
// WWW-Authenticate challenge so clients know bearer auth is expected.
func AuthRequired(verifier *Verifier) gin.HandlerFunc {
	return func(c *gin.Context) {
		auth := c.GetHeader("Authorization")
		if !strings.HasPrefix(auth, "Bearer ") {
			unauthorized(c, ErrTokenInvalid)
			return
		}
		tokenStr := strings.TrimPrefix(auth, "Bearer ")

		identity, err := verifier.Verify(tokenStr)
		if err != nil {
			unauthorized(c, err)
			return
		}

		c.Set(ContextUserID, identity.UserID)
		c.Set(ContextUsername, identity.Username)
		c.Next()
	}
}

// unauthorized aborts the request with a bearer challenge. Expired tokens
// are reported distinctly; every other failure maps to the same generic
// message.
func unauthorized(c *gin.Context, err error) {
	c.Header("WWW-Authenticate", "Bearer")
	msg := ErrTokenInvalid.Error()
	if errors.Is(err, ErrTokenExpired) {
		msg = ErrTokenExpired.Error()
	}
	c.AbortWithStatusJSON(http.StatusUnauthorized, api.ErrorResponse{Error: msg})
}
