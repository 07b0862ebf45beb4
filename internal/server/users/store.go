// Package users implements registration, password authentication and
// bearer token issuance on top of a storage.UserStorage collection.
package users

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/iudanet/tokenkeeper/internal/crypto"
	"github.com/iudanet/tokenkeeper/internal/models"
	"github.com/iudanet/tokenkeeper/internal/server/storage"
	"github.com/iudanet/tokenkeeper/internal/validation"
)

// Store owns the user collection
type Store struct {
	storage storage.UserStorage
	logger  *slog.Logger
	now     func() time.Time
	newID   func() string
	cost    int
}

// Option configures a Store
type Option func(*Store)

// WithBcryptCost sets the bcrypt cost used by Register
func WithBcryptCost(cost int) Option {
	return func(s *Store) {
		s.cost = cost
	}
}

// WithClock overrides the time source used for tokens and timestamps
func WithClock(now func() time.Time) Option {
	return func(s *Store) {
		s.now = now
	}
}

// WithLogger sets the logger
func WithLogger(logger *slog.Logger) Option {
	return func(s *Store) {
		s.logger = logger
	}
}

// New creates a Store over the given collection
func New(userStorage storage.UserStorage, opts ...Option) *Store {
	s := &Store{
		storage: userStorage,
		logger:  slog.New(slog.DiscardHandler),
		now:     time.Now,
		newID:   func() string { return uuid.New().String() },
		cost:    crypto.DefaultCost,
	}

	for _, opt := range opts {
		opt(s)
	}

	return s
}

// Register creates a new user with a bcrypt hash of password.
// Returns *DuplicateUserError if username is taken. The returned record is
// the stored document, password hash included.
func (s *Store) Register(ctx context.Context, username, password string) (*models.User, error) {
	if err := validation.ValidateCredentials(username, password); err != nil {
		return nil, err
	}

	// Проверяем существование пользователя
	_, err := s.storage.FindByUsername(ctx, username)
	switch {
	case err == nil:
		s.logger.WarnContext(ctx, "user already exists", slog.String("username", username))
		return nil, &DuplicateUserError{Username: username}
	case !errors.Is(err, storage.ErrUserNotFound):
		return nil, fmt.Errorf("failed to look up user: %w", err)
	}

	hash, err := crypto.HashPassword(password, s.cost)
	if err != nil {
		return nil, err
	}

	user := &models.User{
		ID:           s.newID(),
		Username:     username,
		PasswordHash: hash,
		Tokens:       []string{},
		CreatedAt:    s.now().UTC(),
	}

	if err := s.storage.InsertUser(ctx, user); err != nil {
		// Параллельная регистрация успела раньше, индекс хранилища её отклонил
		if errors.Is(err, storage.ErrUserAlreadyExists) {
			s.logger.WarnContext(ctx, "user already exists", slog.String("username", username))
			return nil, &DuplicateUserError{Username: username}
		}
		return nil, fmt.Errorf("failed to insert user: %w", err)
	}

	s.logger.InfoContext(ctx, "user registered successfully",
		slog.String("username", username),
		slog.String("user_id", user.ID))

	return user, nil
}

// Authenticate checks password against the stored hash and, on success,
// issues a new token. Every failure is an *AuthError.
func (s *Store) Authenticate(ctx context.Context, username, password string) (string, error) {
	user, err := s.storage.FindByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, storage.ErrUserNotFound) {
			return "", s.authFailed(ctx, username, ReasonNotFound, err)
		}
		return "", s.authFailed(ctx, username, ReasonBackend, err)
	}

	if err := crypto.ComparePassword(user.PasswordHash, password); err != nil {
		if errors.Is(err, crypto.ErrPasswordMismatch) {
			return "", s.authFailed(ctx, username, ReasonMismatch, err)
		}
		return "", s.authFailed(ctx, username, ReasonBackend, err)
	}

	token, err := s.GenerateToken(ctx, username)
	if err != nil {
		return "", s.authFailed(ctx, username, ReasonBackend, err)
	}

	return token, nil
}

func (s *Store) authFailed(ctx context.Context, username string, reason FailureReason, cause error) error {
	level := slog.LevelWarn
	if reason == ReasonBackend {
		level = slog.LevelError
	}

	s.logger.Log(ctx, level, "authentication failed",
		slog.String("username", username),
		slog.String("reason", string(reason)),
		slog.Any("error", cause))

	return &AuthError{Reason: reason, Err: cause}
}

// VerifyToken reports whether token was issued to some user.
// Returns ErrInvalidToken if nobody holds it.
func (s *Store) VerifyToken(ctx context.Context, token string) (bool, error) {
	if _, err := s.storage.FindByToken(ctx, token); err != nil {
		if errors.Is(err, storage.ErrUserNotFound) {
			s.logger.DebugContext(ctx, "token not found")
			return false, ErrInvalidToken
		}
		return false, fmt.Errorf("failed to look up token: %w", err)
	}

	return true, nil
}

// GenerateToken issues hex(sha256(username + unix millis)) and appends it to
// the user's token list.
func (s *Store) GenerateToken(ctx context.Context, username string) (string, error) {
	token := crypto.TokenDigest(username, s.now().UnixMilli())

	if err := s.storage.AppendToken(ctx, username, token); err != nil {
		return "", fmt.Errorf("failed to store token: %w", err)
	}

	s.logger.InfoContext(ctx, "token issued", slog.String("username", username))

	return token, nil
}
