package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/sbilibin2017/pass-vault/internal/middlewares"
	"github.com/sbilibin2017/pass-vault/internal/services"
)

// VaultDeleter defines the interface that the vault delete service must implement.
type VaultDeleter interface {
	Delete(ctx context.Context, userID, itemID int64) error
}

// VaultDeleteResponse represents a successful deletion
// swagger:model VaultDeleteResponse
type VaultDeleteResponse struct {
	// Success flag
	// example: true
	Success bool `json:"success"`
}

// NewVaultDeleteHandler returns an HTTP handler deleting a vault item.
// @Summary Delete a vault item
// @Description Deletes one of the authenticated user's items.
// @Tags vault
// @Produce json
// @Param id path int true "Item ID"
// @Success 200 {object} handlers.VaultDeleteResponse "Deleted"
// @Failure 400 {object} handlers.ErrorResponse "Malformed id"
// @Failure 401 "Missing or invalid session"
// @Failure 404 {object} handlers.ErrorResponse "Item not found"
// @Failure 500 {object} handlers.ErrorResponse "Internal server error"
// @Router /api/vault/{id} [delete]
func NewVaultDeleteHandler(svc VaultDeleter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		identity, ok := middlewares.GetIdentityFromContext(r.Context())
		if !ok {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}

		itemID, err := parseItemID(r)
		if err != nil {
			writeError(w, http.StatusBadRequest, "Invalid item id")
			return
		}

		if err := svc.Delete(r.Context(), identity.UserID, itemID); err != nil {
			if errors.Is(err, services.ErrItemNotFound) {
				writeError(w, http.StatusNotFound, "Item not found")
				return
			}
			writeInternalError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, VaultDeleteResponse{Success: true})
	}
}
