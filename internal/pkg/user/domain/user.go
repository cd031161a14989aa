package domain

import "time"

// User — строка хранилища учётных данных. Пустой UserToken
// означает, что токен облака ещё не задан.
type User struct {
	TelegramID int64
	CreatedAt  time.Time
	UserToken  string
}

func (u *User) HasToken() bool {
	return u != nil && u.UserToken != ""
}
