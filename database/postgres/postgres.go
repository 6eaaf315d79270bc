package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	"github.com/sirupsen/logrus"
)

func New(dsn string) (*sqlx.DB, error) {
	if dsn == "" {
		return nil, fmt.Errorf("POSTGRES_DSN is not set")
	}

	db, err := sqlx.Connect("postgres", dsn)
	if err != nil {
		return nil, fmt.Errorf("connect postgres: %w", err)
	}

	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(10)
	db.SetConnMaxLifetime(30 * time.Minute)

	logrus.Info("Connected to PostgreSQL")
	return db, nil
}

// Migrate creates the tables the repositories expect when they are missing.
func Migrate(ctx context.Context, db *sqlx.DB) error {
	for _, stmt := range schema {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("migrate postgres: %w", err)
		}
	}
	return nil
}

var schema = []string{
	`CREATE TABLE IF NOT EXISTS blogs (
		id                CHAR(26) PRIMARY KEY,
		title             TEXT NOT NULL DEFAULT '',
		image             TEXT NOT NULL DEFAULT '',
		category          TEXT NOT NULL DEFAULT '',
		short_description TEXT NOT NULL DEFAULT '',
		long_description  TEXT NOT NULL DEFAULT '',
		created_at        TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE INDEX IF NOT EXISTS blogs_category_idx ON blogs (category)`,
	`CREATE TABLE IF NOT EXISTS comments (
		id          CHAR(26) PRIMARY KEY,
		blog_id     TEXT NOT NULL DEFAULT '',
		text        TEXT NOT NULL DEFAULT '',
		user_name   TEXT NOT NULL DEFAULT '',
		user_email  TEXT NOT NULL DEFAULT '',
		user_image  TEXT NOT NULL DEFAULT '',
		created_at  TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE INDEX IF NOT EXISTS comments_blog_id_idx ON comments (blog_id)`,
}
