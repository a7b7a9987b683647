package repositories

import (
	"context"
	"strings"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/pass-vault/internal/logger"
)

// SessionWriteRepository mirrors issued tokens in the user_sessions
// table. Only token fingerprints (one-way hashes) are written here.
type SessionWriteRepository struct {
	db *sqlx.DB
}

func NewSessionWriteRepository(db *sqlx.DB) *SessionWriteRepository {
	return &SessionWriteRepository{db: db}
}

// Save records a freshly issued token's fingerprint.
func (r *SessionWriteRepository) Save(ctx context.Context, userID int64, tokenHash string, expiresAt time.Time) error {
	const query = `
		INSERT INTO user_sessions (user_id, token_hash, expires_at)
		VALUES ($1, $2, $3)
	`

	_, err := r.db.ExecContext(ctx, query, userID, tokenHash, expiresAt)

	logger.Log.Infow("session save",
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{userID, expiresAt},
		"error", err,
	)

	return err
}

// DeactivateByTokenHash marks the session inactive. Deactivating an
// unknown fingerprint is not an error.
func (r *SessionWriteRepository) DeactivateByTokenHash(ctx context.Context, tokenHash string) error {
	const query = `
		UPDATE user_sessions
		SET is_active = FALSE
		WHERE token_hash = $1
	`

	_, err := r.db.ExecContext(ctx, query, tokenHash)

	logger.Log.Infow("session deactivate",
		"query", strings.Join(strings.Fields(query), " "),
		"error", err,
	)

	return err
}

// DeactivateByUserID marks all of a user's sessions inactive.
func (r *SessionWriteRepository) DeactivateByUserID(ctx context.Context, userID int64) error {
	const query = `
		UPDATE user_sessions
		SET is_active = FALSE
		WHERE user_id = $1
	`

	_, err := r.db.ExecContext(ctx, query, userID)

	logger.Log.Infow("session deactivate by user",
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{userID},
		"error", err,
	)

	return err
}

// CleanupExpired deletes sessions past their expiry and returns how
// many rows were removed.
func (r *SessionWriteRepository) CleanupExpired(ctx context.Context) (int64, error) {
	const query = `
		DELETE FROM user_sessions
		WHERE expires_at < NOW()
	`

	res, err := r.db.ExecContext(ctx, query)
	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}

	logger.Log.Infow("session cleanup",
		"query", strings.Join(strings.Fields(query), " "),
		"result", rowsAffected,
		"error", err,
	)

	return rowsAffected, err
}
