package handlers

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/sbilibin2017/pass-vault/internal/models"
)

// Migrator defines the interface that the migration engine must implement.
type Migrator interface {
	Migrate(ctx context.Context) (int, error)
	Rollback(ctx context.Context, targetVersion int64) (int, error)
	Status(ctx context.Context) ([]models.MigrationDB, error)
}

// MigrationRunRequest represents the JSON body for running migrations
// swagger:model MigrationRunRequest
type MigrationRunRequest struct {
	// Action to perform: migrate or rollback
	// required: true
	// example: migrate
	Action string `json:"action"`

	// Target version for rollback, defaults to 0 (everything)
	// example: 1
	TargetVersion int64 `json:"targetVersion"`
}

// MigrationRunResponse represents a completed migration operation
// swagger:model MigrationRunResponse
type MigrationRunResponse struct {
	// Success flag
	// example: true
	Success bool `json:"success"`

	// Human-readable outcome
	// example: Migrations completed successfully
	Message string `json:"message"`
}

// MigrationStatusResponse carries the ordered migrations ledger
// swagger:model MigrationStatusResponse
type MigrationStatusResponse struct {
	Success    bool                 `json:"success"`
	Migrations []models.MigrationDB `json:"migrations"`
	Count      int                  `json:"count"`
}

// NewMigrationStatusHandler returns an HTTP handler reporting the
// migrations ledger.
// @Summary Migration status
// @Description Returns the applied migrations ledger ordered by version.
// @Tags migrations
// @Produce json
// @Success 200 {object} handlers.MigrationStatusResponse "Ledger"
// @Failure 401 "Missing or invalid session"
// @Failure 500 {object} handlers.ErrorResponse "Internal server error"
// @Router /api/migrations [get]
func NewMigrationStatusHandler(engine Migrator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		status, err := engine.Status(r.Context())
		if err != nil {
			writeInternalError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, MigrationStatusResponse{
			Success:    true,
			Migrations: status,
			Count:      len(status),
		})
	}
}

// NewMigrationRunHandler returns an HTTP handler running pending
// migrations or rolling back to a target version.
// @Summary Run migrations
// @Description Applies pending migrations, or rolls back to targetVersion (default 0).
// @Tags migrations
// @Accept json
// @Produce json
// @Param migrationRunRequest body handlers.MigrationRunRequest true "Migration action"
// @Success 200 {object} handlers.MigrationRunResponse "Operation completed"
// @Failure 400 {object} handlers.ErrorResponse "Invalid action"
// @Failure 401 "Missing or invalid session"
// @Failure 500 {object} handlers.ErrorResponse "Migration operation failed"
// @Router /api/migrations [post]
func NewMigrationRunHandler(engine Migrator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req MigrationRunRequest

		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "Invalid request body")
			return
		}

		switch req.Action {
		case "migrate":
			if _, err := engine.Migrate(r.Context()); err != nil {
				writeInternalError(w, err)
				return
			}
			writeJSON(w, http.StatusOK, MigrationRunResponse{
				Success: true,
				Message: "Migrations completed successfully",
			})

		case "rollback":
			if _, err := engine.Rollback(r.Context(), req.TargetVersion); err != nil {
				writeInternalError(w, err)
				return
			}
			writeJSON(w, http.StatusOK, MigrationRunResponse{
				Success: true,
				Message: fmt.Sprintf("Rolled back to version %d", req.TargetVersion),
			})

		default:
			writeError(w, http.StatusBadRequest, `Invalid action. Use "migrate" or "rollback"`)
		}
	}
}
