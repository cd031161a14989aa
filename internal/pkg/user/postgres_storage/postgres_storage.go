package postgres_storage

import (
	"database/sql"

	"telecloud_bot/internal/pkg/user/domain"

	_ "github.com/lib/pq"
)

type PostgresStorage struct {
	db *sql.DB
}

func NewPostgresStorage(db *sql.DB) *PostgresStorage {
	return &PostgresStorage{db: db}
}

func (p *PostgresStorage) EnsureUser(telegramID int64) (*domain.User, error) {
	_, err := p.db.Exec(`
		INSERT INTO users (telegram_id)
		VALUES ($1)
		ON CONFLICT (telegram_id) DO NOTHING
	`, telegramID)
	if err != nil {
		return nil, err
	}
	return p.GetUser(telegramID)
}

func (p *PostgresStorage) GetUser(telegramID int64) (*domain.User, error) {
	row := p.db.QueryRow(`
		SELECT telegram_id, created_at, user_token
		FROM users
		WHERE telegram_id=$1
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

func (p *PostgresStorage) SaveToken(telegramID int64, token string) error {
	_, err := p.db.Exec(`
		INSERT INTO users (telegram_id, user_token)
		VALUES ($1, $2)
		ON CONFLICT (telegram_id) DO UPDATE
		SET user_token=$2
	`, telegramID, token)
	return err
}
