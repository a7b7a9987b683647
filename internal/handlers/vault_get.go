package handlers

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/sbilibin2017/pass-vault/internal/middlewares"
	"github.com/sbilibin2017/pass-vault/internal/models"
	"github.com/sbilibin2017/pass-vault/internal/services"
)

// VaultGetter defines the interface that the vault get service must implement.
type VaultGetter interface {
	Get(ctx context.Context, userID, itemID int64) (*models.VaultItemDB, error)
}

// parseItemID parses the {id} route parameter.
func parseItemID(r *http.Request) (int64, error) {
	return strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
}

// NewVaultGetHandler returns an HTTP handler fetching one vault item.
// An item owned by someone else is reported as not found.
// @Summary Get a vault item
// @Description Fetches one of the authenticated user's encrypted items by id.
// @Tags vault
// @Produce json
// @Param id path int true "Item ID"
// @Success 200 {object} handlers.VaultItemResponse "Item"
// @Failure 400 {object} handlers.ErrorResponse "Malformed id"
// @Failure 401 "Missing or invalid session"
// @Failure 404 {object} handlers.ErrorResponse "Item not found"
// @Failure 500 {object} handlers.ErrorResponse "Internal server error"
// @Router /api/vault/{id} [get]
func NewVaultGetHandler(svc VaultGetter) http.HandlerFunc {
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

		item, err := svc.Get(r.Context(), identity.UserID, itemID)
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
