package handlers

import (
	"context"
	"net/http"

	"github.com/sbilibin2017/pass-vault/internal/middlewares"
	"github.com/sbilibin2017/pass-vault/internal/models"
)

// VaultLister defines the interface that the vault list service must implement.
type VaultLister interface {
	List(ctx context.Context, userID int64, category *string) ([]models.VaultItemDB, error)
	Search(ctx context.Context, userID int64, term string) ([]models.VaultItemDB, error)
}

// VaultItemsResponse wraps a list of vault items
// swagger:model VaultItemsResponse
type VaultItemsResponse struct {
	Items []models.VaultItemDB `json:"items"`
}

// NewVaultListHandler returns an HTTP handler listing the caller's
// vault items, newest first. `category` filters by category; `search`
// matches the term against stored ciphertext substrings (not against
// the plaintext it encodes).
// @Summary List vault items
// @Description Lists the authenticated user's encrypted items, optionally filtered by category or a ciphertext substring search.
// @Tags vault
// @Produce json
// @Param category query string false "Filter by category"
// @Param search query string false "Substring match over stored ciphertext"
// @Success 200 {object} handlers.VaultItemsResponse "Items"
// @Failure 401 "Missing or invalid session"
// @Failure 500 {object} handlers.ErrorResponse "Internal server error"
// @Router /api/vault [get]
func NewVaultListHandler(svc VaultLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		identity, ok := middlewares.GetIdentityFromContext(r.Context())
		if !ok {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}

		var items []models.VaultItemDB
		var err error

		if term := r.URL.Query().Get("search"); term != "" {
			items, err = svc.Search(r.Context(), identity.UserID, term)
		} else {
			var category *string
			if c := r.URL.Query().Get("category"); c != "" {
				category = &c
			}
			items, err = svc.List(r.Context(), identity.UserID, category)
		}

		if err != nil {
			writeInternalError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, VaultItemsResponse{Items: items})
	}
}
