package crypto

import (
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"strconv"

	"golang.org/x/crypto/bcrypt"
)

// DefaultCost соответствует 10 раундам bcrypt
const DefaultCost = bcrypt.DefaultCost

// MaxPasswordBytes is the bcrypt input limit. Longer passwords are cut to
// this length before hashing and comparing.
const MaxPasswordBytes = 72

// ErrPasswordMismatch is returned when a password does not match the stored hash.
var ErrPasswordMismatch = errors.New("password does not match")

// HashPassword хеширует пароль через bcrypt с указанной стоимостью.
// Соль генерируется заново при каждом вызове.
func HashPassword(password string, cost int) (string, error) {
	if password == "" {
		return "", fmt.Errorf("password cannot be empty")
	}

	hash, err := bcrypt.GenerateFromPassword(truncate(password), cost)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}

	return string(hash), nil
}

// ComparePassword проверяет пароль по сохраненному bcrypt хешу.
// Returns ErrPasswordMismatch for a wrong password; any other error means the
// hash itself could not be used.
func ComparePassword(hash, password string) error {
	err := bcrypt.CompareHashAndPassword([]byte(hash), truncate(password))
	if err == nil {
		return nil
	}
	if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
		return ErrPasswordMismatch
	}
	return fmt.Errorf("failed to compare password: %w", err)
}

// truncate обрезает пароль до лимита bcrypt, байты сверх 72 не учитываются
func truncate(password string) []byte {
	b := []byte(password)
	if len(b) > MaxPasswordBytes {
		b = b[:MaxPasswordBytes]
	}
	return b
}

// TokenDigest вычисляет токен как hex(sha256(username + millis)).
// Разделителя нет, millis в десятичной записи.
func TokenDigest(username string, millis int64) string {
	sum := sha256.Sum256([]byte(username + strconv.FormatInt(millis, 10)))
	return hex.EncodeToString(sum[:])
}
