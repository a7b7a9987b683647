package migrations

import (
	"context"

	"github.com/jmoiron/sqlx"
)

func execAll(ctx context.Context, tx *sqlx.Tx, statements []string) error {
	for _, stmt := range statements {
		if _, err := tx.ExecContext(ctx, stmt); err != nil {
			return err
		}
	}
	return nil
}

// Definitions returns the ordered migration set for the vault schema.
func Definitions() []Migration {
	return []Migration{
		{
			Version: 1,
			Name:    "create_initial_tables",
			Up: func(ctx context.Context, tx *sqlx.Tx) error {
				return execAll(ctx, tx, []string{
					`CREATE TABLE IF NOT EXISTS users (
						id SERIAL PRIMARY KEY,
						email VARCHAR(255) UNIQUE NOT NULL,
						password_hash VARCHAR(255) NOT NULL,
						created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
						updated_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
						last_login TIMESTAMP,
						is_active BOOLEAN DEFAULT TRUE
					)`,
					`CREATE TABLE IF NOT EXISTS vault_items (
						id SERIAL PRIMARY KEY,
						user_id INTEGER NOT NULL REFERENCES users(id) ON DELETE CASCADE,
						encrypted_title TEXT NOT NULL,
						encrypted_username TEXT,
						encrypted_password TEXT NOT NULL,
						encrypted_url TEXT,
						encrypted_notes TEXT,
						created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
						updated_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
						category VARCHAR(100) DEFAULT 'General',
						is_favorite BOOLEAN DEFAULT FALSE
					)`,
					`CREATE TABLE IF NOT EXISTS user_sessions (
						id SERIAL PRIMARY KEY,
						user_id INTEGER NOT NULL REFERENCES users(id) ON DELETE CASCADE,
						token_hash VARCHAR(255) NOT NULL,
						created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
						expires_at TIMESTAMP NOT NULL,
						is_active BOOLEAN DEFAULT TRUE
					)`,
				})
			},
			Down: func(ctx context.Context, tx *sqlx.Tx) error {
				return execAll(ctx, tx, []string{
					`DROP TABLE IF EXISTS user_sessions CASCADE`,
					`DROP TABLE IF EXISTS vault_items CASCADE`,
					`DROP TABLE IF EXISTS users CASCADE`,
				})
			},
		},
		{
			Version: 2,
			Name:    "create_indexes",
			Up: func(ctx context.Context, tx *sqlx.Tx) error {
				return execAll(ctx, tx, []string{
					`CREATE INDEX IF NOT EXISTS idx_vault_items_user_id ON vault_items(user_id)`,
					`CREATE INDEX IF NOT EXISTS idx_vault_items_category ON vault_items(category)`,
					`CREATE INDEX IF NOT EXISTS idx_vault_items_created_at ON vault_items(created_at)`,
					`CREATE INDEX IF NOT EXISTS idx_user_sessions_user_id ON user_sessions(user_id)`,
					`CREATE INDEX IF NOT EXISTS idx_user_sessions_token_hash ON user_sessions(token_hash)`,
					`CREATE INDEX IF NOT EXISTS idx_user_sessions_expires_at ON user_sessions(expires_at)`,
				})
			},
			Down: func(ctx context.Context, tx *sqlx.Tx) error {
				return execAll(ctx, tx, []string{
					`DROP INDEX IF EXISTS idx_user_sessions_expires_at`,
					`DROP INDEX IF EXISTS idx_user_sessions_token_hash`,
					`DROP INDEX IF EXISTS idx_user_sessions_user_id`,
					`DROP INDEX IF EXISTS idx_vault_items_created_at`,
					`DROP INDEX IF EXISTS idx_vault_items_category`,
					`DROP INDEX IF EXISTS idx_vault_items_user_id`,
				})
			},
		},
	}
}
