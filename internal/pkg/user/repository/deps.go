package repository

import (
	"telecloud_bot/internal/pkg/user/domain"
)

type UserRepository interface {
	// EnsureUser создаёт запись при первом обращении.
	EnsureUser(telegramID int64) (*domain.User, error)
	// GetUser возвращает nil, nil для незнакомого пользователя.
	GetUser(telegramID int64) (*domain.User, error)
	SaveToken(telegramID int64, token string) error
}
