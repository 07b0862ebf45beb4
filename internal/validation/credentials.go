package validation

import "errors"

var (
	// ErrEmptyUsername is returned for a missing username.
	ErrEmptyUsername = errors.New("username cannot be empty")
	// ErrEmptyPassword is returned for a missing password.
	ErrEmptyPassword = errors.New("password cannot be empty")
)

// ValidateUsername проверяет только наличие username.
// Формат не ограничивается: сравнение точное и с учетом регистра.
func ValidateUsername(username string) error {
	if username == "" {
		return ErrEmptyUsername
	}
	return nil
}

// ValidatePassword проверяет только наличие пароля
func ValidatePassword(password string) error {
	if password == "" {
		return ErrEmptyPassword
	}
	return nil
}

// ValidateCredentials checks both fields, username first.
func ValidateCredentials(username, password string) error {
	if err := ValidateUsername(username); err != nil {
		return err
	}
	return ValidatePassword(password)
}
