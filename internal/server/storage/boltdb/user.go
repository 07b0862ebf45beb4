package boltdb

import (
	"context"
	"encoding/json"
	"fmt"

	"go.etcd.io/bbolt"

	"github.com/iudanet/tokenkeeper/internal/models"
	"github.com/iudanet/tokenkeeper/internal/server/storage"
)

// InsertUser stores a new user document.
// Проверка уникальности и запись индекса выполняются в одной транзакции,
// поэтому параллельные регистрации одного username не проходят обе.
func (s *Storage) InsertUser(ctx context.Context, user *models.User) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	return s.db.Update(func(tx *bbolt.Tx) error {
		usernames := tx.Bucket(bucketUsernames)
		if usernames.Get([]byte(user.Username)) != nil {
			return storage.ErrUserAlreadyExists
		}

		id := []byte(user.ID)
		if err := putUser(tx, user); err != nil {
			return err
		}

		if err := usernames.Put([]byte(user.Username), id); err != nil {
			return fmt.Errorf("failed to index username: %w", err)
		}

		tokens := tx.Bucket(bucketTokens)
		for _, token := range user.Tokens {
			if err := tokens.Put([]byte(token), id); err != nil {
				return fmt.Errorf("failed to index token: %w", err)
			}
		}

		return nil
	})
}

// FindByUsername retrieves user by username
func (s *Storage) FindByUsername(ctx context.Context, username string) (*models.User, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	var user *models.User
	err := s.db.View(func(tx *bbolt.Tx) error {
		id := tx.Bucket(bucketUsernames).Get([]byte(username))
		if id == nil {
			return storage.ErrUserNotFound
		}

		var err error
		user, err = getUser(tx, id)
		return err
	})
	if err != nil {
		return nil, err
	}

	return user, nil
}

// FindByToken retrieves the user holding token
func (s *Storage) FindByToken(ctx context.Context, token string) (*models.User, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	var user *models.User
	err := s.db.View(func(tx *bbolt.Tx) error {
		id := tx.Bucket(bucketTokens).Get([]byte(token))
		if id == nil {
			return storage.ErrUserNotFound
		}

		found, err := getUser(tx, id)
		if err != nil {
			return err
		}
		// индекс должен совпадать со списком токенов документа
		if !found.HasToken(token) {
			return storage.ErrUserNotFound
		}

		user = found
		return nil
	})
	if err != nil {
		return nil, err
	}

	return user, nil
}

// AppendToken appends token to the user's token list
func (s *Storage) AppendToken(ctx context.Context, username, token string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	return s.db.Update(func(tx *bbolt.Tx) error {
		id := tx.Bucket(bucketUsernames).Get([]byte(username))
		if id == nil {
			return storage.ErrUserNotFound
		}

		user, err := getUser(tx, id)
		if err != nil {
			return err
		}

		user.Tokens = append(user.Tokens, token)
		if err := putUser(tx, user); err != nil {
			return err
		}

		if err := tx.Bucket(bucketTokens).Put([]byte(token), id); err != nil {
			return fmt.Errorf("failed to index token: %w", err)
		}

		return nil
	})
}

func getUser(tx *bbolt.Tx, id []byte) (*models.User, error) {
	data := tx.Bucket(bucketUsers).Get(id)
	if data == nil {
		// индекс указывает на отсутствующий документ
		return nil, fmt.Errorf("user document %s: %w", id, storage.ErrUserNotFound)
	}

	user := &models.User{}
	if err := json.Unmarshal(data, user); err != nil {
		return nil, fmt.Errorf("failed to unmarshal user: %w", err)
	}

	return user, nil
}

func putUser(tx *bbolt.Tx, user *models.User) error {
	data, err := json.Marshal(user)
	if err != nil {
		return fmt.Errorf("failed to marshal user: %w", err)
	}

	if err := tx.Bucket(bucketUsers).Put([]byte(user.ID), data); err != nil {
		return fmt.Errorf("failed to save user: %w", err)
	}

	return nil
}
