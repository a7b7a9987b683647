package handlers

import (
	"context"
	"net/http"

	"github.com/sbilibin2017/pass-vault/internal/middlewares"
)

// CategoryLister defines the interface that the category service must implement.
type CategoryLister interface {
	Categories(ctx context.Context, userID int64) ([]string, error)
}

// CategoriesResponse wraps the distinct categories in use
// swagger:model CategoriesResponse
type CategoriesResponse struct {
	// Distinct categories, ascending
	// example: ["General","Work"]
	Categories []string `json:"categories"`
}

// NewVaultCategoriesHandler returns an HTTP handler listing the
// distinct categories in use by the authenticated user.
// @Summary List categories
// @Description Lists the distinct category values across the user's vault items, ascending.
// @Tags vault
// @Produce json
// @Success 200 {object} handlers.CategoriesResponse "Categories"
// @Failure 401 "Missing or invalid session"
// @Failure 500 {object} handlers.ErrorResponse "Internal server error"
// @Router /api/vault/categories [get]
func NewVaultCategoriesHandler(svc CategoryLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		identity, ok := middlewares.GetIdentityFromContext(r.Context())
		if !ok {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}

		categories, err := svc.Categories(r.Context(), identity.UserID)
		if err != nil {
			writeInternalError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, CategoriesResponse{Categories: categories})
	}
}
