// Package api defines the request and response types shared by the HTTP
// transport layers of all services.
package api

// ErrorResponse is the generic error body returned by every endpoint.
type ErrorResponse struct {
	Error string `json:"error"`
}

// MessageResponse is a generic success body for endpoints without a payload.
type MessageResponse struct {
	Message string `json:"message"`
}

// RegisterRequest represents the request body for the /register endpoint.
type RegisterRequest struct {
	Username        string `json:"username" binding:"required"`
	Email           string `json:"email" binding:"required,email"`
	Password        string `json:"password" binding:"required"`
	ConfirmPassword string `json:"confirm_password" binding:"required"`
}

// UserResponse represents a registered user as returned by /register.
// The hashed password is never exposed.
type UserResponse struct {
	ID       uint   `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
}

// LoginRequest represents the request body for the /login endpoint.
// The identifier may be either a username or an email address.
type LoginRequest struct {
	UsernameOrEmail string `json:"username_or_email" binding:"required"`
	Password        string `json:"password" binding:"required"`
}

// TokenResponse represents a successful login result.
type TokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

// TranscriptionResponse represents the result of the /transcribe endpoint.
type TranscriptionResponse struct {
	Filename      string `json:"filename"`
	Transcription string `json:"transcription"`
}

// LineResponse is a single recognized line with its confidence score.
type LineResponse struct {
	Line       string  `json:"line"`
	Confidence float32 `json:"confidence"`
}

// RecognizeResponse represents the preliminary OCR result returned by
// /api/recognize. The request id correlates the result with a later
// /api/save confirmation.
type RecognizeResponse struct {
	RequestID  string         `json:"request_id"`
	Text       string         `json:"text"`
	Lines      []LineResponse `json:"lines"`
	Confidence float32        `json:"confidence"`
	Method     string         `json:"method"`
}

// SaveRequest represents the request body for the /api/save endpoint.
type SaveRequest struct {
	RequestID     string `json:"request_id" binding:"required"`
	ConfirmedText string `json:"confirmed_text" binding:"required"`
	UserID        string `json:"user_id"`
}

// SaveResponse represents a successful confirmation result.
type SaveResponse struct {
	Message    string `json:"message"`
	DocumentID string `json:"document_id"`
}

// DebugResponse reports the handwriting service's pending-store state.
type DebugResponse struct {
	Status          string `json:"server_status"`
	PendingRequests int64  `json:"pending_requests"`
}
