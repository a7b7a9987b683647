package repositories

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/pass-vault/internal/logger"
	"github.com/sbilibin2017/pass-vault/internal/models"
)

// ErrUniqueViolation is returned when an insert hits a unique
// constraint. Raw Postgres error codes are classified here and never
// leave the repository layer.
var ErrUniqueViolation = errors.New("unique constraint violation")

// pgUniqueViolation is the Postgres error code for unique_violation.
const pgUniqueViolation = "23505"

type UserReadRepository struct {
	db *sqlx.DB
}

func NewUserReadRepository(db *sqlx.DB) *UserReadRepository {
	return &UserReadRepository{db: db}
}

// GetByEmail returns the user with the given email, or nil if absent.
// Lookup is case-insensitive: emails are stored lowercased.
func (r *UserReadRepository) GetByEmail(ctx context.Context, email string) (*models.UserDB, error) {
	const query = `
		SELECT id, email, password_hash, created_at, updated_at, last_login, is_active
		FROM users
		WHERE email = LOWER($1)
		LIMIT 1
	`

	var user models.UserDB
	err := r.db.GetContext(ctx, &user, query, email)

	logger.Log.Infow("user read",
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{email},
		"error", err,
	)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}

	return &user, nil
}

type UserWriteRepository struct {
	db *sqlx.DB
}

func NewUserWriteRepository(db *sqlx.DB) *UserWriteRepository {
	return &UserWriteRepository{db: db}
}

// Save inserts a new user and returns the created row. A duplicate
// email surfaces as ErrUniqueViolation.
func (r *UserWriteRepository) Save(ctx context.Context, email, passwordHash string) (*models.UserDB, error) {
	const query = `
		INSERT INTO users (email, password_hash, created_at, updated_at)
		VALUES (LOWER($1), $2, NOW(), NOW())
		RETURNING id, email, password_hash, created_at, updated_at, last_login, is_active
	`

	var user models.UserDB
	err := r.db.GetContext(ctx, &user, query, email, passwordHash)

	logger.Log.Infow("user save",
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{email},
		"error", err,
	)

	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
			return nil, ErrUniqueViolation
		}
		return nil, err
	}

	return &user, nil
}

// UpdateLastLogin stamps the user's last successful login.
func (r *UserWriteRepository) UpdateLastLogin(ctx context.Context, userID int64) error {
	const query = `
		UPDATE users
		SET last_login = NOW()
		WHERE id = $1
	`

	_, err := r.db.ExecContext(ctx, query, userID)

	logger.Log.Infow("user last_login update",
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{userID},
		"error", err,
	)

	return err
}

// Deactivate flips is_active off. The row and its vault items are kept.
func (r *UserWriteRepository) Deactivate(ctx context.Context, userID int64) error {
	const query = `
		UPDATE users
		SET is_active = FALSE, updated_at = NOW()
		WHERE id = $1
	`

	_, err := r.db.ExecContext(ctx, query, userID)

	logger.Log.Infow("user deactivate",
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{userID},
		"error", err,
	)

	return err
}
