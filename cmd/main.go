package main

import (
	"context"
	"database/sql"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"telecloud_bot/internal/bot"
	"telecloud_bot/internal/pkg/cloud"
	"telecloud_bot/internal/pkg/user/migrations"
	"telecloud_bot/internal/pkg/user/postgres_storage"
	"telecloud_bot/internal/pkg/user/repository"
	"telecloud_bot/internal/pkg/user/sqlite_storage"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment")
	}

	token := os.Getenv("TELEGRAM_TOKEN")
	if token == "" {
		log.Fatal("TELEGRAM_TOKEN is not set")
	}

	// Локальный Bot API сервер для отладки, по желанию.
	var apiEndpoint string
	if os.Getenv("LOCAL_TAPI") == "true" {
		tapiURL := os.Getenv("LOCAL_TAPI_URL")
		if tapiURL == "" {
			tapiURL = "http://localhost:8081"
		}
		log.Printf("Using local bot API at %s", tapiURL)
		apiEndpoint = tapiURL + "/bot%s/%s"
	}

	db, users := openStorage()
	defer db.Close()

	cloudClient := cloud.NewClient(os.Getenv("CLOUD_BASE_URL"))

	b := bot.New(token, apiEndpoint, users, cloudClient, os.Getenv("TEMP_DIR"))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	b.Start(ctx)

	log.Println("Bot is shutting down...")
}

// openStorage выбирает бэкенд: postgres при заданном DATABASE_URL,
// иначе локальный sqlite-файл.
func openStorage() (*sql.DB, repository.UserRepository) {
	if dsn := os.Getenv("DATABASE_URL"); dsn != "" {
		db, err := sql.Open("postgres", dsn)
		if err != nil {
			log.Fatalf("failed to open postgres: %v", err)
		}
		if err := migrations.Up(db, "postgres"); err != nil {
			log.Fatalf("failed to migrate: %v", err)
		}
		return db, postgres_storage.NewPostgresStorage(db)
	}

	path := os.Getenv("SQLITE_PATH")
	if path == "" {
		path = "database.sqlite3"
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		log.Fatalf("failed to open sqlite: %v", err)
	}
	if err := migrations.Up(db, "sqlite3"); err != nil {
		log.Fatalf("failed to migrate: %v", err)
	}
	return db, sqlite_storage.NewSqliteStorage(db)
}
