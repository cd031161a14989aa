package sqlite_storage

import (
	"database/sql"

	"telecloud_bot/internal/pkg/user/domain"

	_ "modernc.org/sqlite"
)

// Хранилище поверх sqlite, как в исходном деплое без внешней базы.
type SqliteStorage struct {
	db *sql.DB
}

func NewSqliteStorage(db *sql.DB) *SqliteStorage {
	return &SqliteStorage{db: db}
}

func (s *SqliteStorage) EnsureUser(telegramID int64) (*domain.User, error) {
	_, err := s.db.Exec(`
		INSERT INTO users (telegram_id)
		VALUES (?)
		ON CONFLICT (telegram_id) DO NOTHING
	`, telegramID)
	if err != nil {
		return nil, err
	}
	return s.GetUser(telegramID)
}

func (s *SqliteStorage) GetUser(telegramID int64) (*domain.User, error) {
	row := s.db.QueryRow(`
		SELECT telegram_id, created_at, user_token
		FROM users
		WHERE telegram_id=?
	`, telegramID)

	u := &domain.User{}
	var token sql.NullString
	err := row.Scan(&u.TelegramID, &u.CreatedAt, &token)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	u.UserToken = token.String
	return u, nil
}

func (s *SqliteStorage) SaveToken(telegramID int64, token string) error {
	_, err := s.db.Exec(`
		INSERT INTO users (telegram_id, user_token)
		VALUES (?, ?)
		ON CONFLICT (telegram_id) DO UPDATE
		SET user_token=excluded.user_token
	`, telegramID, token)
	return err
}
