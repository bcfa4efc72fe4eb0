package usecase

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"github.com/harikrishnanks99/Ethnoverse/internal/feature/auth/domain/entity"
)

const (
	// bcryptCost is the work factor used for password hashing.
	bcryptCost = 12

	// maxPasswordBytes is bcrypt's maximum input length. Longer passwords
	// are rejected before any hash is computed.
	maxPasswordBytes = 72
)

// UserRepository abstracts the persistence layer for user entities.
// Following Go convention, the interface is defined by the consumer
// (usecase), not the provider (adapters).
type UserRepository interface {
	// Create persists a new user. It returns ErrUsernameTaken or
	// ErrEmailTaken when a unique constraint is violated.
	Create(ctx context.Context, user *entity.User) error

	// FindByUsername retrieves a user by exact username match.
	// It returns ErrUserNotFound if no such user exists.
	FindByUsername(ctx context.Context, username string) (*entity.User, error)

	// FindByEmail retrieves a user by exact email match.
	// It returns ErrUserNotFound if no such user exists.
	FindByEmail(ctx context.Context, email string) (*entity.User, error)

	// FindByID retrieves a user by ID.
	// It returns ErrUserNotFound if no such user exists.
	FindByID(ctx context.Context, id uint) (*entity.User, error)
}

// TokenIssuer abstracts access token issuance.
type TokenIssuer interface {
	// IssueToken creates a signed access token for the given user.
	IssueToken(userID uint, username string) (string, error)
}

// authUsecase implements the authentication business logic.
type authUsecase struct {
	users  UserRepository
	tokens TokenIssuer
}

// NewAuthUsecase creates a new instance of authUsecase.
func NewAuthUsecase(users UserRepository, tokens TokenIssuer) *authUsecase {
	return &authUsecase{users: users, tokens: tokens}
}

// Register creates a new user with a hashed password.
// Validation order: password confirmation, bcrypt length limit, then
// uniqueness of email and username. No user row is written unless every
// check passes.
func (u *authUsecase) Register(ctx context.Context, username, email, password, confirmPassword string) (*entity.User, error) {
	if password != confirmPassword {
		return nil, ErrPasswordMismatch
	}
	if len([]byte(password)) > maxPasswordBytes {
		return nil, ErrPasswordTooLong
	}

	if _, err := u.users.FindByEmail(ctx, email); err == nil {
		return nil, ErrEmailTaken
	} else if !errors.Is(err, ErrUserNotFound) {
		return nil, err
	}
	if _, err := u.users.FindByUsername(ctx, username); err == nil {
		return nil, ErrUsernameTaken
	} else if !errors.Is(err, ErrUserNotFound) {
		return nil, err
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &entity.User{
		Username:       username,
		Email:          email,
		HashedPassword: string(hashed),
	}
	// The unique indexes back up the lookups above, so concurrent
	// registrations still cannot create duplicates.
	if err := u.users.Create(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// Login authenticates a user by username or email and returns a signed
// access token. The identifier is matched against usernames first, then
// email addresses. A bcrypt comparison runs even when no user is found so
// response timing does not leak account existence.
func (u *authUsecase) Login(ctx context.Context, usernameOrEmail, password string) (string, error) {
	user, err := u.users.FindByUsername(ctx, usernameOrEmail)
	if errors.Is(err, ErrUserNotFound) {
		user, err = u.users.FindByEmail(ctx, usernameOrEmail)
	}
	// A store failure is not a credential problem and must not look like one.
	if err != nil && !errors.Is(err, ErrUserNotFound) {
		return "", fmt.Errorf("failed to look up user: %w", err)
	}

	// Dummy hash keeps bcrypt.CompareHashAndPassword on the not-found path.
	passwordHash := "$2a$12$N9qo8uLOickgx2ZMRZoMyeIjZAgcfl7p92ldGxad68LJZdL17lhWy"
	if err == nil {
		passwordHash = user.HashedPassword
	}

	compareErr := bcrypt.CompareHashAndPassword([]byte(passwordHash), []byte(password))

	if err != nil || compareErr != nil {
		return "", ErrInvalidCredentials
	}

	token, tokenErr := u.tokens.IssueToken(user.ID, user.Username)
	if tokenErr != nil {
		return "", fmt.Errorf("failed to generate token: %w", tokenErr)
	}

	return token, nil
}
