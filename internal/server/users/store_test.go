package users

import (
	"bytes"
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"log/slog"
	"strconv"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/iudanet/tokenkeeper/internal/models"
	"github.com/iudanet/tokenkeeper/internal/server/storage"
	"github.com/iudanet/tokenkeeper/internal/validation"
)

var fixedNow = time.Date(2024, 5, 1, 12, 0, 0, 123_000_000, time.UTC)

func fixedClock() time.Time { return fixedNow }

func newTestStore(mock *storage.UserStorageMock, opts ...Option) *Store {
	opts = append([]Option{WithBcryptCost(bcrypt.MinCost), WithClock(fixedClock)}, opts...)
	return New(mock, opts...)
}

func mustHash(t *testing.T, password string) string {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	return string(hash)
}

func expectedToken(username string, at time.Time) string {
	sum := sha256.Sum256([]byte(username + strconv.FormatInt(at.UnixMilli(), 10)))
	return hex.EncodeToString(sum[:])
}

func TestStore_Register_DuplicateUser(t *testing.T) {
	mock := &storage.UserStorageMock{
		FindByUsernameFunc: func(ctx context.Context, username string) (*models.User, error) {
			return &models.User{Username: "test"}, nil
		},
	}
	s := newTestStore(mock)

	for _, password := range []string{"password", "other", "x"} {
		user, err := s.Register(context.Background(), "test", password)
		require.Error(t, err)
		assert.Nil(t, user)
		assert.EqualError(t, err, "Username test already exists")
		assert.ErrorIs(t, err, ErrDuplicateUser)

		var dup *DuplicateUserError
		require.ErrorAs(t, err, &dup)
		assert.Equal(t, "test", dup.Username)
	}

	assert.Empty(t, mock.InsertUserCalls())
}

func TestStore_Register_Success(t *testing.T) {
	mock := &storage.UserStorageMock{
		FindByUsernameFunc: func(ctx context.Context, username string) (*models.User, error) {
			return nil, storage.ErrUserNotFound
		},
		InsertUserFunc: func(ctx context.Context, user *models.User) error {
			return nil
		},
	}
	s := newTestStore(mock)

	user, err := s.Register(context.Background(), "test", "password")
	require.NoError(t, err)
	require.NotNil(t, user)

	assert.Equal(t, "test", user.Username)
	assert.NotEmpty(t, user.ID)
	assert.NotEqual(t, "password", user.PasswordHash)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte("password")))
	assert.NotNil(t, user.Tokens)
	assert.Empty(t, user.Tokens)
	assert.Equal(t, fixedNow, user.CreatedAt)

	require.Len(t, mock.InsertUserCalls(), 1)
	assert.Same(t, user, mock.InsertUserCalls()[0].User)
}

func TestStore_Register_DefaultCost(t *testing.T) {
	mock := &storage.UserStorageMock{
		FindByUsernameFunc: func(ctx context.Context, username string) (*models.User, error) {
			return nil, storage.ErrUserNotFound
		},
		InsertUserFunc: func(ctx context.Context, user *models.User) error {
			return nil
		},
	}
	s := New(mock)

	user, err := s.Register(context.Background(), "test", "password")
	require.NoError(t, err)

	cost, err := bcrypt.Cost([]byte(user.PasswordHash))
	require.NoError(t, err)
	assert.Equal(t, 10, cost)
}

func TestStore_Register_Errors(t *testing.T) {
	backendErr := errors.New("disk on fire")

	tests := []struct {
		findErr  error
		insErr   error
		wantIs   error
		name     string
		username string
		password string
		wantMsg  string
	}{
		{
			name:     "empty username",
			username: "",
			password: "password",
			wantIs:   validation.ErrEmptyUsername,
		},
		{
			name:     "empty password",
			username: "test",
			password: "",
			wantIs:   validation.ErrEmptyPassword,
		},
		{
			name:     "lookup failure propagates",
			username: "test",
			password: "password",
			findErr:  backendErr,
			wantIs:   backendErr,
		},
		{
			name:     "insert failure propagates",
			username: "test",
			password: "password",
			findErr:  storage.ErrUserNotFound,
			insErr:   backendErr,
			wantIs:   backendErr,
		},
		{
			name:     "unique index rejects concurrent insert",
			username: "test",
			password: "password",
			findErr:  storage.ErrUserNotFound,
			insErr:   storage.ErrUserAlreadyExists,
			wantIs:   ErrDuplicateUser,
			wantMsg:  "Username test already exists",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mock := &storage.UserStorageMock{
				FindByUsernameFunc: func(ctx context.Context, username string) (*models.User, error) {
					return nil, tt.findErr
				},
				InsertUserFunc: func(ctx context.Context, user *models.User) error {
					return tt.insErr
				},
			}
			s := newTestStore(mock)

			user, err := s.Register(context.Background(), tt.username, tt.password)
			require.Error(t, err)
			assert.Nil(t, user)
			assert.ErrorIs(t, err, tt.wantIs)
			if tt.wantMsg != "" {
				assert.EqualError(t, err, tt.wantMsg)
			}
		})
	}
}

func TestStore_Authenticate_Failures(t *testing.T) {
	backendErr := errors.New("read failed")
	hash := mustHash(t, "password")

	tests := []struct {
		user       *models.User
		findErr    error
		appendErr  error
		name       string
		password   string
		wantReason FailureReason
	}{
		{
			name:       "user does not exist",
			findErr:    storage.ErrUserNotFound,
			password:   "password",
			wantReason: ReasonNotFound,
		},
		{
			name:       "password does not match",
			user:       &models.User{Username: "test", PasswordHash: hash},
			password:   "wrong",
			wantReason: ReasonMismatch,
		},
		{
			name:       "stored hash is not a bcrypt hash",
			user:       &models.User{Username: "test", PasswordHash: "wrong"},
			password:   "password",
			wantReason: ReasonBackend,
		},
		{
			name:       "lookup failure",
			findErr:    backendErr,
			password:   "password",
			wantReason: ReasonBackend,
		},
		{
			name:       "token cannot be stored",
			user:       &models.User{Username: "test", PasswordHash: hash},
			appendErr:  backendErr,
			password:   "password",
			wantReason: ReasonBackend,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mock := &storage.UserStorageMock{
				FindByUsernameFunc: func(ctx context.Context, username string) (*models.User, error) {
					return tt.user, tt.findErr
				},
				AppendTokenFunc: func(ctx context.Context, username, token string) error {
					return tt.appendErr
				},
			}
			s := newTestStore(mock)

			token, err := s.Authenticate(context.Background(), "test", tt.password)
			require.Error(t, err)
			assert.Empty(t, token)

			// Снаружи причина неразличима
			assert.EqualError(t, err, "Incorrect account details")
			assert.ErrorIs(t, err, ErrAuthenticationFailed)

			var authErr *AuthError
			require.ErrorAs(t, err, &authErr)
			assert.Equal(t, tt.wantReason, authErr.Reason)
			assert.Error(t, authErr.Unwrap())
		})
	}
}

func TestStore_Authenticate_Success(t *testing.T) {
	mock := &storage.UserStorageMock{
		FindByUsernameFunc: func(ctx context.Context, username string) (*models.User, error) {
			return &models.User{Username: "test", PasswordHash: mustHash(t, "password")}, nil
		},
		AppendTokenFunc: func(ctx context.Context, username, token string) error {
			return nil
		},
	}
	s := newTestStore(mock)

	token, err := s.Authenticate(context.Background(), "test", "password")
	require.NoError(t, err)
	assert.Equal(t, expectedToken("test", fixedNow), token)

	_, err = hex.DecodeString(token)
	assert.NoError(t, err, "токен должен быть hex строкой")

	require.Len(t, mock.AppendTokenCalls(), 1)
	assert.Equal(t, "test", mock.AppendTokenCalls()[0].Username)
	assert.Equal(t, token, mock.AppendTokenCalls()[0].Token)
}

func TestStore_Authenticate_DoesNotLogSecrets(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	hash := mustHash(t, "password")
	mock := &storage.UserStorageMock{
		FindByUsernameFunc: func(ctx context.Context, username string) (*models.User, error) {
			return &models.User{Username: "test", PasswordHash: hash}, nil
		},
	}
	s := newTestStore(mock, WithLogger(logger))

	_, err := s.Authenticate(context.Background(), "test", "hunter2")
	require.Error(t, err)

	out := buf.String()
	assert.Contains(t, out, "authentication failed")
	assert.Contains(t, out, "reason=mismatch")
	assert.NotContains(t, out, "hunter2")
	assert.NotContains(t, out, hash)
}

func TestStore_VerifyToken(t *testing.T) {
	backendErr := errors.New("read failed")

	tests := []struct {
		findErr error
		wantIs  error
		user    *models.User
		name    string
		want    bool
	}{
		{
			name: "token is valid",
			user: &models.User{Username: "test", Tokens: []string{"12345"}},
			want: true,
		},
		{
			name:    "token is invalid",
			findErr: storage.ErrUserNotFound,
			wantIs:  ErrInvalidToken,
		},
		{
			name:    "backend failure propagates",
			findErr: backendErr,
			wantIs:  backendErr,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mock := &storage.UserStorageMock{
				FindByTokenFunc: func(ctx context.Context, token string) (*models.User, error) {
					return tt.user, tt.findErr
				},
			}
			s := newTestStore(mock)

			ok, err := s.VerifyToken(context.Background(), "12345")
			if tt.wantIs != nil {
				assert.ErrorIs(t, err, tt.wantIs)
				assert.False(t, ok)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, ok)
		})
	}
}

func TestStore_VerifyToken_Message(t *testing.T) {
	mock := &storage.UserStorageMock{
		FindByTokenFunc: func(ctx context.Context, token string) (*models.User, error) {
			return nil, storage.ErrUserNotFound
		},
	}
	s := newTestStore(mock)

	_, err := s.VerifyToken(context.Background(), "invalid-token")
	assert.EqualError(t, err, "Invalid token")
}

func TestStore_GenerateToken(t *testing.T) {
	mock := &storage.UserStorageMock{
		AppendTokenFunc: func(ctx context.Context, username, token string) error {
			return nil
		},
	}
	s := newTestStore(mock)

	token, err := s.GenerateToken(context.Background(), "test")
	require.NoError(t, err)

	// sha256("test" + миллисекунды) в hex
	assert.Equal(t, expectedToken("test", fixedNow), token)
	assert.Len(t, token, 64)

	require.Len(t, mock.AppendTokenCalls(), 1)
	assert.Equal(t, "test", mock.AppendTokenCalls()[0].Username)
	assert.Equal(t, token, mock.AppendTokenCalls()[0].Token)
}

func TestStore_GenerateToken_ReadsClockOnce(t *testing.T) {
	calls := 0
	clock := func() time.Time {
		calls++
		return fixedNow.Add(time.Duration(calls) * time.Millisecond)
	}

	mock := &storage.UserStorageMock{
		AppendTokenFunc: func(ctx context.Context, username, token string) error {
			return nil
		},
	}
	s := newTestStore(mock, WithClock(clock))

	token, err := s.GenerateToken(context.Background(), "test")
	require.NoError(t, err)
	assert.Equal(t, 1, calls)
	assert.Equal(t, expectedToken("test", fixedNow.Add(time.Millisecond)), token)
}

func TestStore_GenerateToken_UnknownUser(t *testing.T) {
	mock := &storage.UserStorageMock{
		AppendTokenFunc: func(ctx context.Context, username, token string) error {
			return storage.ErrUserNotFound
		},
	}
	s := newTestStore(mock)

	token, err := s.GenerateToken(context.Background(), "ghost")
	assert.ErrorIs(t, err, storage.ErrUserNotFound)
	assert.Empty(t, token)
}
