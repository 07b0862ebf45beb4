package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	sqlitedrv "modernc.org/sqlite"
	sqlite3 "modernc.org/sqlite/lib"

	"github.com/iudanet/tokenkeeper/internal/models"
	"github.com/iudanet/tokenkeeper/internal/server/storage"
)

// querier is satisfied by both *sql.DB and *sql.Tx
type querier interface {
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
}

// InsertUser stores a new user and its initial tokens
func (s *Storage) InsertUser(ctx context.Context, user *models.User) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	query := `
		INSERT INTO users (id, username, password_hash, created_at)
		VALUES (?, ?, ?, ?)
	`

	_, err = tx.ExecContext(ctx, query,
		user.ID,
		user.Username,
		user.PasswordHash,
		user.CreatedAt,
	)
	if err != nil {
		// UNIQUE(username) закрывает гонку check-then-insert
		if isUniqueViolation(err) {
			return storage.ErrUserAlreadyExists
		}
		return fmt.Errorf("failed to insert user: %w", err)
	}

	for _, token := range user.Tokens {
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO user_tokens (user_id, token) VALUES (?, ?)`,
			user.ID, token,
		); err != nil {
			return fmt.Errorf("failed to insert token: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}

// FindByUsername retrieves user by username
func (s *Storage) FindByUsername(ctx context.Context, username string) (*models.User, error) {
	query := `
		SELECT id, username, password_hash, created_at
		FROM users
		WHERE username = ?
	`

	return s.findOne(ctx, query, username)
}

// FindByToken retrieves the user holding token
func (s *Storage) FindByToken(ctx context.Context, token string) (*models.User, error) {
	query := `
		SELECT u.id, u.username, u.password_hash, u.created_at
		FROM users u
		JOIN user_tokens t ON t.user_id = u.id
		WHERE t.token = ?
		ORDER BY t.id
		LIMIT 1
	`

	return s.findOne(ctx, query, token)
}

// AppendToken appends token to the user's token list
func (s *Storage) AppendToken(ctx context.Context, username, token string) error {
	query := `
		INSERT INTO user_tokens (user_id, token)
		SELECT id, ? FROM users WHERE username = ?
	`

	result, err := s.db.ExecContext(ctx, query, token, username)
	if err != nil {
		return fmt.Errorf("failed to append token: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}

	if rows == 0 {
		return storage.ErrUserNotFound
	}

	return nil
}

func (s *Storage) findOne(ctx context.Context, query string, arg string) (*models.User, error) {
	user := &models.User{}

	err := s.db.QueryRowContext(ctx, query, arg).Scan(
		&user.ID,
		&user.Username,
		&user.PasswordHash,
		&user.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, storage.ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	tokens, err := loadTokens(ctx, s.db, user.ID)
	if err != nil {
		return nil, err
	}
	user.Tokens = tokens

	return user, nil
}

// loadTokens возвращает токены пользователя в порядке выдачи
func loadTokens(ctx context.Context, q querier, userID string) ([]string, error) {
	rows, err := q.QueryContext(ctx,
		`SELECT token FROM user_tokens WHERE user_id = ? ORDER BY id`,
		userID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to query user tokens: %w", err)
	}
	defer func() {
		_ = rows.Close()
	}()

	tokens := []string{}
	for rows.Next() {
		var token string
		if err := rows.Scan(&token); err != nil {
			return nil, fmt.Errorf("failed to scan token: %w", err)
		}
		tokens = append(tokens, token)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return tokens, nil
}

func isUniqueViolation(err error) bool {
	var sqliteErr *sqlitedrv.Error
	if !errors.As(err, &sqliteErr) {
		return false
	}

	code := sqliteErr.Code()
	if code == sqlite3.SQLITE_CONSTRAINT_UNIQUE {
		return true
	}

	// без extended result codes остаётся только первичный код
	return code&0xff == sqlite3.SQLITE_CONSTRAINT && strings.Contains(sqliteErr.Error(), "UNIQUE")
}
