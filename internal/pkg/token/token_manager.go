package token

import (
	"context"
	"fmt"

	"telecloud_bot/internal/pkg/cloud"
	"telecloud_bot/internal/pkg/state"
	"telecloud_bot/internal/pkg/user/repository"
)

// Manager проверяет и выпускает токены доступа к облаку.
type Manager struct {
	cloud  *cloud.Client
	users  repository.UserRepository
	states state.Store
}

func NewManager(cloudClient *cloud.Client, users repository.UserRepository, states state.Store) *Manager {
	return &Manager{
		cloud:  cloudClient,
		users:  users,
		states: states,
	}
}

// Validate проверяет токен-кандидат запросом к облаку и сохраняет
// его при успехе. Режим ожидания токена снимается в любом исходе,
// повторных попыток нет.
func (m *Manager) Validate(ctx context.Context, telegramID int64, candidate string) error {
	defer m.states.Clear(telegramID)

	if err := m.cloud.Validate(ctx, candidate); err != nil {
		return err
	}
	if err := m.users.SaveToken(telegramID, candidate); err != nil {
		return fmt.Errorf("failed to persist token: %w", err)
	}
	return nil
}

// Generate выпускает свежий анонимный токен и сохраняет его.
func (m *Manager) Generate(ctx context.Context, telegramID int64) (string, error) {
	minted, err := m.cloud.MintToken(ctx)
	if err != nil {
		return "", err
	}
	if err := m.users.SaveToken(telegramID, minted); err != nil {
		return "", fmt.Errorf("failed to persist token: %w", err)
	}
	return minted, nil
}
