// Package handler provides the HTTP handlers for the auth feature.
package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/harikrishnanks99/Ethnoverse/internal/api"
	"github.com/harikrishnanks99/Ethnoverse/internal/feature/auth/domain/entity"
	"github.com/harikrishnanks99/Ethnoverse/internal/feature/auth/usecase"
)

// AuthUsecase defines the usecase for authentication operations.
// Following Go convention, the interface is defined by the consumer
// (handler), not the provider (usecase).
type AuthUsecase interface {
	// Register creates a new user and returns the stored record.
	Register(ctx context.Context, username, email, password, confirmPassword string) (*entity.User, error)
	// Login authenticates a user and returns an access token on success.
	Login(ctx context.Context, usernameOrEmail, password string) (string, error)
}

// AuthHandler handles HTTP requests for authentication operations.
type AuthHandler struct {
	auth AuthUsecase
}

// NewAuthHandler creates a new instance of AuthHandler.
func NewAuthHandler(auth AuthUsecase) *AuthHandler {
	return &AuthHandler{auth: auth}
}

// Register handles the user registration endpoint.
//
// Endpoint: POST /register
// Each validation failure gets its own client-facing reason; registration
// either fully creates a user or creates none.
func (h *AuthHandler) Register(c *gin.Context) {
	var req api.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Warn("register validation failed", "error", err, "remote_addr", c.ClientIP())
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "invalid request"})
		return
	}

	user, err := h.auth.Register(c.Request.Context(), req.Username, req.Email, req.Password, req.ConfirmPassword)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrPasswordMismatch),
			errors.Is(err, usecase.ErrPasswordTooLong),
			errors.Is(err, usecase.ErrUsernameTaken),
			errors.Is(err, usecase.ErrEmailTaken):
			slog.Warn("register rejected", "error", err, "username", req.Username, "remote_addr", c.ClientIP())
			c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: err.Error()})
		default:
			slog.Error("register failed", "error", err, "username", req.Username)
			c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "registration failed"})
		}
		return
	}

	slog.Info("user registered", "user_id", user.ID, "username", user.Username, "remote_addr", c.ClientIP())
	c.JSON(http.StatusCreated, api.UserResponse{
		ID:       user.ID,
		Username: user.Username,
		Email:    user.Email,
	})
}

// Login handles the user login endpoint.
//
// Endpoint: POST /login
// Every authentication failure answers with the same generic 401 to avoid
// leaking account existence.
func (h *AuthHandler) Login(c *gin.Context) {
	var req api.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Warn("login validation failed", "error", err, "remote_addr", c.ClientIP())
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "invalid request"})
		return
	}

	token, err := h.auth.Login(c.Request.Context(), req.UsernameOrEmail, req.Password)
	if err != nil {
		if errors.Is(err, usecase.ErrInvalidCredentials) {
			slog.Warn("login failed", "identifier", req.UsernameOrEmail, "remote_addr", c.ClientIP())
			c.Header("WWW-Authenticate", "Bearer")
			c.JSON(http.StatusUnauthorized, api.ErrorResponse{Error: usecase.ErrInvalidCredentials.Error()})
			return
		}
		slog.Error("login error", "error", err, "identifier", req.UsernameOrEmail)
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "login failed"})
		return
	}

	slog.Info("user login successful", "identifier", req.UsernameOrEmail, "remote_addr", c.ClientIP())
	c.JSON(http.StatusOK, api.TokenResponse{AccessToken: token, TokenType: "bearer"})
}
