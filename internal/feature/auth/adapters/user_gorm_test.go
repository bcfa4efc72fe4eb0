package adapters

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/harikrishnanks99/Ethnoverse/internal/feature/auth/domain/entity"
	"github.com/harikrishnanks99/Ethnoverse/internal/feature/auth/usecase"
)

// setupTestDB prepares an in-memory SQLite database for testing.
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err, "failed to initialize test database")

	err = db.AutoMigrate(&entity.User{})
	require.NoError(t, err, "failed to migrate table")

	return db
}

func newUser(username, email string) *entity.User {
	return &entity.User{
		Username:       username,
		Email:          email,
		HashedPassword: "hashed_password",
	}
}

func TestUserGorm_Create(t *testing.T) {
	t.Run("successful user creation", func(t *testing.T) {
		db := setupTestDB(t)
		repo := NewUserGorm(db)

		user := newUser("alice", "alice@example.com")
		err := repo.Create(context.Background(), user)

		assert.NoError(t, err, "failed to create user")
		assert.NotZero(t, user.ID, "ID is not set")
		assert.False(t, user.CreatedAt.IsZero(), "CreatedAt is not set")
	})

	t.Run("duplicate username", func(t *testing.T) {
		db := setupTestDB(t)
		repo := NewUserGorm(db)

		require.NoError(t, repo.Create(context.Background(), newUser("dup", "first@example.com")))

		err := repo.Create(context.Background(), newUser("dup", "second@example.com"))
		assert.ErrorIs(t, err, usecase.ErrUsernameTaken)
	})

	t.Run("duplicate email", func(t *testing.T) {
		db := setupTestDB(t)
		repo := NewUserGorm(db)

		require.NoError(t, repo.Create(context.Background(), newUser("first", "dup@example.com")))

		err := repo.Create(context.Background(), newUser("second", "dup@example.com"))
		assert.ErrorIs(t, err, usecase.ErrEmailTaken)
	})
}

func TestUserGorm_Find(t *testing.T) {
	db := setupTestDB(t)
	repo := NewUserGorm(db)

	seeded := newUser("alice", "alice@example.com")
	require.NoError(t, repo.Create(context.Background(), seeded))

	t.Run("find by username", func(t *testing.T) {
		u, err := repo.FindByUsername(context.Background(), "alice")
		require.NoError(t, err)
		assert.Equal(t, seeded.ID, u.ID)
		assert.Equal(t, "alice@example.com", u.Email)
	})

	t.Run("find by email", func(t *testing.T) {
		u, err := repo.FindByEmail(context.Background(), "alice@example.com")
		require.NoError(t, err)
		assert.Equal(t, "alice", u.Username)
	})

	t.Run("find by id", func(t *testing.T) {
		u, err := repo.FindByID(context.Background(), seeded.ID)
		require.NoError(t, err)
		assert.Equal(t, "alice", u.Username)
	})

	t.Run("not found", func(t *testing.T) {
		_, err := repo.FindByUsername(context.Background(), "nobody")
		assert.ErrorIs(t, err, usecase.ErrUserNotFound)

		_, err = repo.FindByEmail(context.Background(), "nobody@example.com")
		assert.ErrorIs(t, err, usecase.ErrUserNotFound)

		_, err = repo.FindByID(context.Background(), 99999)
		assert.ErrorIs(t, err, usecase.ErrUserNotFound)
	})
}
