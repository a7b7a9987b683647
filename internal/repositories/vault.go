package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/pass-vault/internal/logger"
	"github.com/sbilibin2017/pass-vault/internal/models"
)

const vaultItemColumns = `id, user_id, encrypted_title, encrypted_username, encrypted_password,
	encrypted_url, encrypted_notes, category, is_favorite, created_at, updated_at`

// VaultReadRepository handles vault item read operations. Every query
// is scoped by user_id: a row owned by someone else is invisible.
type VaultReadRepository struct {
	db *sqlx.DB
}

func NewVaultReadRepository(db *sqlx.DB) *VaultReadRepository {
	return &VaultReadRepository{db: db}
}

// GetByID returns the item with the given id owned by userID, or nil
// when it does not exist or belongs to another user.
func (r *VaultReadRepository) GetByID(ctx context.Context, userID, itemID int64) (*models.VaultItemDB, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM vault_items
		WHERE id = $1 AND user_id = $2
	`, vaultItemColumns)

	var item models.VaultItemDB
	err := r.db.GetContext(ctx, &item, query, itemID, userID)

	logger.Log.Infow("vault item read",
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{itemID, userID},
		"error", err,
	)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}

	return &item, nil
}

// ListByUserID returns the user's items newest first, optionally
// filtered by category.
func (r *VaultReadRepository) ListByUserID(ctx context.Context, userID int64, category *string) ([]models.VaultItemDB, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM vault_items
		WHERE user_id = $1
		  AND ($2::VARCHAR IS NULL OR category = $2)
		ORDER BY created_at DESC
	`, vaultItemColumns)

	items := []models.VaultItemDB{}
	err := r.db.SelectContext(ctx, &items, query, userID, category)

	logger.Log.Infow("vault items list",
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{userID, category},
		"count", len(items),
		"error", err,
	)

	return items, err
}

// Search returns the user's items whose stored ciphertext contains the
// term as a substring, newest first. The match runs over ciphertext,
// not over the plaintext it encodes.
func (r *VaultReadRepository) Search(ctx context.Context, userID int64, term string) ([]models.VaultItemDB, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM vault_items
		WHERE user_id = $1
		  AND (
			encrypted_title ILIKE $2
			OR encrypted_username ILIKE $2
			OR encrypted_url ILIKE $2
			OR encrypted_notes ILIKE $2
		  )
		ORDER BY created_at DESC
	`, vaultItemColumns)

	pattern := "%" + term + "%"

	items := []models.VaultItemDB{}
	err := r.db.SelectContext(ctx, &items, query, userID, pattern)

	logger.Log.Infow("vault items search",
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{userID, pattern},
		"count", len(items),
		"error", err,
	)

	return items, err
}

// Categories returns the distinct category values in use by the user,
// ascending.
func (r *VaultReadRepository) Categories(ctx context.Context, userID int64) ([]string, error) {
	const query = `
		SELECT DISTINCT category
		FROM vault_items
		WHERE user_id = $1 AND category IS NOT NULL
		ORDER BY category
	`

	categories := []string{}
	err := r.db.SelectContext(ctx, &categories, query, userID)

	logger.Log.Infow("vault categories",
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{userID},
		"result", categories,
		"error", err,
	)

	return categories, err
}

// VaultWriteRepository handles vault item write operations.
type VaultWriteRepository struct {
	db *sqlx.DB
}

func NewVaultWriteRepository(db *sqlx.DB) *VaultWriteRepository {
	return &VaultWriteRepository{db: db}
}

// Save inserts a new vault item and returns the created row.
func (r *VaultWriteRepository) Save(
	ctx context.Context,
	userID int64,
	encryptedTitle, encryptedPassword string,
	encryptedUsername, encryptedURL, encryptedNotes *string,
	category string,
) (*models.VaultItemDB, error) {
	query := fmt.Sprintf(`
		INSERT INTO vault_items (
			user_id, encrypted_title, encrypted_username, encrypted_password,
			encrypted_url, encrypted_notes, category, created_at, updated_at
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, NOW(), NOW())
		RETURNING %s
	`, vaultItemColumns)

	args := []any{userID, encryptedTitle, encryptedUsername, encryptedPassword, encryptedURL, encryptedNotes, category}

	var item models.VaultItemDB
	err := r.db.GetContext(ctx, &item, query, args...)

	logger.Log.Infow("vault item save",
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{userID, category},
		"error", err,
	)

	if err != nil {
		return nil, err
	}

	return &item, nil
}

// updatableColumns maps updatable logical fields to their columns.
// Column names are never derived from caller-supplied keys.
func updatableColumns(upd models.VaultItemUpdate) (columns []string, values []any) {
	if upd.EncryptedTitle != nil {
		columns = append(columns, "encrypted_title")
		values = append(values, *upd.EncryptedTitle)
	}
	if upd.EncryptedUsername != nil {
		columns = append(columns, "encrypted_username")
		values = append(values, *upd.EncryptedUsername)
	}
	if upd.EncryptedPassword != nil {
		columns = append(columns, "encrypted_password")
		values = append(values, *upd.EncryptedPassword)
	}
	if upd.EncryptedURL != nil {
		columns = append(columns, "encrypted_url")
		values = append(values, *upd.EncryptedURL)
	}
	if upd.EncryptedNotes != nil {
		columns = append(columns, "encrypted_notes")
		values = append(values, *upd.EncryptedNotes)
	}
	if upd.Category != nil {
		columns = append(columns, "category")
		values = append(values, *upd.Category)
	}
	if upd.IsFavorite != nil {
		columns = append(columns, "is_favorite")
		values = append(values, *upd.IsFavorite)
	}
	return columns, values
}

// Update applies a partial update to an item owned by userID and
// returns the updated row, or nil when no owned row matched. updated_at
// is always refreshed by the statement itself.
func (r *VaultWriteRepository) Update(ctx context.Context, userID, itemID int64, upd models.VaultItemUpdate) (*models.VaultItemDB, error) {
	columns, values := updatableColumns(upd)
	if len(columns) == 0 {
		// Nothing to change: return the current row without touching updated_at.
		query := fmt.Sprintf(`SELECT %s FROM vault_items WHERE id = $1 AND user_id = $2`, vaultItemColumns)
		var item models.VaultItemDB
		err := r.db.GetContext(ctx, &item, query, itemID, userID)
		if err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return nil, nil
			}
			return nil, err
		}
		return &item, nil
	}

	setClauses := make([]string, 0, len(columns)+1)
	for i, col := range columns {
		setClauses = append(setClauses, fmt.Sprintf("%s = $%d", col, i+1))
	}
	setClauses = append(setClauses, "updated_at = NOW()")

	query := fmt.Sprintf(`
		UPDATE vault_items
		SET %s
		WHERE id = $%d AND user_id = $%d
		RETURNING %s
	`, strings.Join(setClauses, ", "), len(columns)+1, len(columns)+2, vaultItemColumns)

	values = append(values, itemID, userID)

	var item models.VaultItemDB
	err := r.db.GetContext(ctx, &item, query, values...)

	logger.Log.Infow("vault item update",
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{itemID, userID, columns},
		"error", err,
	)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}

	return &item, nil
}

// Delete removes an item owned by userID. It reports whether a row was
// actually removed.
func (r *VaultWriteRepository) Delete(ctx context.Context, userID, itemID int64) (bool, error) {
	const query = `
		DELETE FROM vault_items
		WHERE id = $1 AND user_id = $2
	`

	res, err := r.db.ExecContext(ctx, query, itemID, userID)
	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}

	logger.Log.Infow("vault item delete",
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{itemID, userID},
		"result", rowsAffected,
		"error", err,
	)

	if err != nil {
		return false, err
	}

	return rowsAffected > 0, nil
}
