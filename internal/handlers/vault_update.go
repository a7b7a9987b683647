package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/sbilibin2017/pass-vault/internal/middlewares"
	"github.com/sbilibin2017/pass-vault/internal/models"
	"github.com/sbilibin2017/pass-vault/internal/services"
)

// VaultUpdater defines the interface that the vault update service must implement.
type VaultUpdater interface {
	Update(ctx context.Context, userID, itemID int64, upd models.VaultItemUpdate) (*models.VaultItemDB, error)
}

// NewVaultUpdateHandler returns an HTTP handler applying a partial
// update to a vault item. Only the allow-listed fields in
// models.VaultItemUpdate can change; anything else in the body is
// ignored.
// @Summary Update a vault item
// @Description Partially updates one of the authenticated user's items. Omitted fields are left untouched.
// @Tags vault
// @Accept json
// @Produce json
// @Param id path int true "Item ID"
// @Param vaultItemUpdate body models.VaultItemUpdate true "Fields to update"
// @Success 200 {object} handlers.VaultItemResponse "Updated item"
// @Failure 400 {object} handlers.ErrorResponse "Malformed id or body"
// @Failure 401 "Missing or invalid session"
// @Failure 404 {object} handlers.ErrorResponse "Item not found"
// @Failure 500 {object} handlers.ErrorResponse "Internal server error"
// @Router /api/vault/{id} [put]
func NewVaultUpdateHandler(svc VaultUpdater) http.HandlerFunc {
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

		var upd models.VaultItemUpdate
		if err := json.NewDecoder(r.Body).Decode(&upd); err != nil {
			writeError(w, http.StatusBadRequest, "Invalid request body")
			return
		}

		item, err := svc.Update(r.Context(), identity.UserID, itemID, upd)
		if err != nil {
			if errors.Is(err, services.ErrItemNotFound) {
				writeError(w, http.StatusNotFound, "Item not found")
				return
			}
			writeInternalError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, VaultItemResponse{Item: *item})
	}
}
