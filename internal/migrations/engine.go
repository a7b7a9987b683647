// Package migrations implements the versioned schema migration engine.
// Applied versions always form a prefix of the ordered definitions:
// each step commits its schema change and its ledger row in one
// transaction, so the ledger never claims more or less than what was
// actually applied.
package migrations

import (
	"context"
	"fmt"
	"sync"

	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/pass-vault/internal/logger"
	"github.com/sbilibin2017/pass-vault/internal/models"
)

// Migration is one schema version with its forward and backward steps.
type Migration struct {
	Version int64
	Name    string
	Up      func(ctx context.Context, tx *sqlx.Tx) error
	Down    func(ctx context.Context, tx *sqlx.Tx) error
}

// Engine applies and rolls back migrations against a single database.
// A mutex gates Migrate and Rollback so two runs cannot observe the
// same current version and double-apply.
type Engine struct {
	db   *sqlx.DB
	defs []Migration

	mu sync.Mutex
}

// New creates an Engine over the given definitions. Definitions must
// be ordered by strictly increasing version.
func New(db *sqlx.DB, defs []Migration) (*Engine, error) {
	var prev int64
	for _, def := range defs {
		if def.Version <= prev {
			return nil, fmt.Errorf("migration versions must be strictly increasing: %d after %d", def.Version, prev)
		}
		prev = def.Version
	}
	return &Engine{db: db, defs: defs}, nil
}

// ensureLedger creates the ledger table on first use.
func (e *Engine) ensureLedger(ctx context.Context) error {
	const query = `
		CREATE TABLE IF NOT EXISTS migrations (
			version INTEGER PRIMARY KEY,
			name VARCHAR(255) NOT NULL,
			executed_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
		)
	`
	_, err := e.db.ExecContext(ctx, query)
	return err
}

// CurrentVersion returns the highest applied version, or 0 when the
// ledger is empty.
func (e *Engine) CurrentVersion(ctx context.Context) (int64, error) {
	if err := e.ensureLedger(ctx); err != nil {
		return 0, err
	}

	var version int64
	err := e.db.GetContext(ctx, &version, `SELECT COALESCE(MAX(version), 0) FROM migrations`)
	if err != nil {
		return 0, err
	}
	return version, nil
}

// applyStep runs one Up step and records its ledger row in the same
// transaction.
func (e *Engine) applyStep(ctx context.Context, def Migration) error {
	tx, err := e.db.BeginTxx(ctx, nil)
	if err != nil {
		return err
	}

	if err := def.Up(ctx, tx); err != nil {
		tx.Rollback()
		return fmt.Errorf("migration %d (%s) up: %w", def.Version, def.Name, err)
	}

	if _, err := tx.ExecContext(ctx,
		`INSERT INTO migrations (version, name) VALUES ($1, $2)`,
		def.Version, def.Name,
	); err != nil {
		tx.Rollback()
		return fmt.Errorf("migration %d (%s) ledger insert: %w", def.Version, def.Name, err)
	}

	return tx.Commit()
}

// revertStep runs one Down step and deletes its ledger row in the same
// transaction.
func (e *Engine) revertStep(ctx context.Context, def Migration) error {
	tx, err := e.db.BeginTxx(ctx, nil)
	if err != nil {
		return err
	}

	if err := def.Down(ctx, tx); err != nil {
		tx.Rollback()
		return fmt.Errorf("migration %d (%s) down: %w", def.Version, def.Name, err)
	}

	if _, err := tx.ExecContext(ctx,
		`DELETE FROM migrations WHERE version = $1`,
		def.Version,
	); err != nil {
		tx.Rollback()
		return fmt.Errorf("migration %d (%s) ledger delete: %w", def.Version, def.Name, err)
	}

	return tx.Commit()
}

// Migrate applies all pending definitions in ascending order and
// returns how many steps were applied. A run with nothing pending is a
// no-op. A failing step aborts the run; steps committed before the
// failure stay applied and visible in the ledger.
func (e *Engine) Migrate(ctx context.Context) (int, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	current, err := e.CurrentVersion(ctx)
	if err != nil {
		return 0, err
	}

	applied := 0
	for _, def := range e.defs {
		if def.Version <= current {
			continue
		}

		logger.Log.Infow("applying migration", "version", def.Version, "name", def.Name)
		if err := e.applyStep(ctx, def); err != nil {
			return applied, err
		}
		applied++
	}

	if applied == 0 {
		logger.Log.Infow("no pending migrations")
	}
	return applied, nil
}

// Rollback reverts applied definitions down to (but not including)
// targetVersion, highest first, and returns how many steps were
// reverted. A target at or above the current version is a no-op.
func (e *Engine) Rollback(ctx context.Context, targetVersion int64) (int, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	current, err := e.CurrentVersion(ctx)
	if err != nil {
		return 0, err
	}
	if current <= targetVersion {
		logger.Log.Infow("no migrations to rollback", "current", current, "target", targetVersion)
		return 0, nil
	}

	reverted := 0
	for i := len(e.defs) - 1; i >= 0; i-- {
		def := e.defs[i]
		if def.Version > current || def.Version <= targetVersion {
			continue
		}

		logger.Log.Infow("rolling back migration", "version", def.Version, "name", def.Name)
		if err := e.revertStep(ctx, def); err != nil {
			return reverted, err
		}
		reverted++
	}

	return reverted, nil
}

// Status returns the ledger rows ordered by version.
func (e *Engine) Status(ctx context.Context) ([]models.MigrationDB, error) {
	if err := e.ensureLedger(ctx); err != nil {
		return nil, err
	}

	rows := []models.MigrationDB{}
	err := e.db.SelectContext(ctx, &rows,
		`SELECT version, name, executed_at FROM migrations ORDER BY version`)
	if err != nil {
		return nil, err
	}
	return rows, nil
}
