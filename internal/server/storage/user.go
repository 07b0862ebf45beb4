package storage

import (
	"context"

	"github.com/iudanet/tokenkeeper/internal/models"
)

//go:generate moq -out user_mock.go . UserStorage

// UserStorage defines the user document collection.
// Lookups are exact-match: by username, or by membership of a token in the
// user's token list.
type UserStorage interface {
	// FindByUsername retrieves user by username
	// Returns ErrUserNotFound if user doesn't exist
	FindByUsername(ctx context.Context, username string) (*models.User, error)

	// FindByToken retrieves the user whose token list contains token
	// Returns ErrUserNotFound if no user holds the token
	FindByToken(ctx context.Context, token string) (*models.User, error)

	// InsertUser stores a new user document
	// Returns ErrUserAlreadyExists if username is taken
	InsertUser(ctx context.Context, user *models.User) error

	// AppendToken appends token to the token list of the user matched by username
	// Returns ErrUserNotFound if user doesn't exist
	AppendToken(ctx context.Context, username, token string) error

	// Close releases the underlying database
	Close() error
}

// Driver names accepted by configuration
const (
	DriverBolt   = "bolt"
	DriverSQLite = "sqlite"
)
