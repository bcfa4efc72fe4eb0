// Package router builds the Gin engines for each service.
package router

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	authhandler "github.com/harikrishnanks99/Ethnoverse/internal/feature/auth/transport/handler"
	handwritinghandler "github.com/harikrishnanks99/Ethnoverse/internal/feature/handwriting/transport/handler"
	transcriptionhandler "github.com/harikrishnanks99/Ethnoverse/internal/feature/transcription/transport/handler"
	"github.com/harikrishnanks99/Ethnoverse/internal/platform/http/handler"
	jwtmw "github.com/harikrishnanks99/Ethnoverse/internal/platform/jwt"
)

// newEngine creates a Gin engine with the shared middleware: CORS for the
// configured origins and a health endpoint.
func newEngine(corsOrigins []string) *gin.Engine {
	r := gin.Default()

	if len(corsOrigins) > 0 {
		cfg := cors.DefaultConfig()
		cfg.AllowOrigins = corsOrigins
		cfg.AllowCredentials = true
		cfg.AllowHeaders = append(cfg.AllowHeaders, "Authorization")
		r.Use(cors.New(cfg))
	}

	r.GET("/healthz", handler.Health)

	return r
}

// NewAuthRouter builds the credential service routes.
func NewAuthRouter(auth *authhandler.AuthHandler, corsOrigins []string) *gin.Engine {
	r := newEngine(corsOrigins)

	// Registration and login need no token
	r.POST("/register", auth.Register)
	r.POST("/login", auth.Login)

	return r
}

// NewTranscriptionRouter builds the transcription service routes. The
// transcribe endpoint requires a bearer token.
func NewTranscriptionRouter(t *transcriptionhandler.TranscriptionHandler, verifier *jwtmw.Verifier, corsOrigins []string) *gin.Engine {
	r := newEngine(corsOrigins)

	protected := r.Group("/")
	protected.Use(jwtmw.AuthRequired(verifier))
	{
		protected.POST("/transcribe", t.Transcribe)
	}

	return r
}

// NewHandwritingRouter builds the handwriting service routes.
func NewHandwritingRouter(h *handwritinghandler.HandwritingHandler, corsOrigins []string) *gin.Engine {
	r := newEngine(corsOrigins)

	apiGroup := r.Group("/api")
	{
		apiGroup.POST("/recognize", h.Recognize)
		apiGroup.POST("/save", h.Save)
		apiGroup.GET("/debug", h.Debug)
	}

	return r
}
