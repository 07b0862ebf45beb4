package models

import "time"

// User представляет пользователя в хранилище
type User struct {
	CreatedAt    time.Time `json:"created_at"`    // время создания
	ID           string    `json:"id"`            // UUID записи
	Username     string    `json:"username"`      // уникальный username, регистр учитывается
	PasswordHash string    `json:"password_hash"` // bcrypt хеш пароля
	Tokens       []string  `json:"tokens"`        // выданные bearer токены в порядке выдачи
}

// HasToken reports whether token was issued to the user.
func (u *User) HasToken(token string) bool {
	for _, t := range u.Tokens {
		if t == token {
			return true
		}
	}
	return false
}
