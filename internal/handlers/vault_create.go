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

// VaultCreator defines the interface that the vault create service must implement.
type VaultCreator interface {
	Create(ctx context.Context, userID int64, encryptedTitle, encryptedPassword string,
		encryptedUsername, encryptedURL, encryptedNotes *string, category string) (*models.VaultItemDB, error)
}

// VaultCreateRequest represents the JSON body for creating a vault item.
// All encrypted_* fields are ciphertext produced client-side.
// swagger:model VaultCreateRequest
type VaultCreateRequest struct {
	// Encrypted title ciphertext
	// required: true
	EncryptedTitle string `json:"encrypted_title"`

	// Encrypted username ciphertext
	EncryptedUsername *string `json:"encrypted_username"`

	// Encrypted password ciphertext
	// required: true
	EncryptedPassword string `json:"encrypted_password"`

	// Encrypted URL ciphertext
	EncryptedURL *string `json:"encrypted_url"`

	// Encrypted notes ciphertext
	EncryptedNotes *string `json:"encrypted_notes"`

	// Category, defaults to General
	// example: Work
	Category string `json:"category"`
}

// VaultItemResponse wraps a single vault item
// swagger:model VaultItemResponse
type VaultItemResponse struct {
	Item models.VaultItemDB `json:"item"`
}

// NewVaultCreateHandler returns an HTTP handler that creates a vault item.
// @Summary Create a vault item
// @Description Stores a new encrypted vault item for the authenticated user. The server never sees field plaintext.
// @Tags vault
// @Accept json
// @Produce json
// @Param vaultCreateRequest body handlers.VaultCreateRequest true "Encrypted vault item"
// @Success 201 {object} handlers.VaultItemResponse "Created item"
// @Failure 400 {object} handlers.ErrorResponse "Missing encrypted title or password"
// @Failure 401 "Missing or invalid session"
// @Failure 500 {object} handlers.ErrorResponse "Internal server error"
// @Router /api/vault [post]
func NewVaultCreateHandler(svc VaultCreator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		identity, ok := middlewares.GetIdentityFromContext(r.Context())
		if !ok {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}

		var req VaultCreateRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "Invalid request body")
			return
		}

		item, err := svc.Create(r.Context(), identity.UserID,
			req.EncryptedTitle, req.EncryptedPassword,
			req.EncryptedUsername, req.EncryptedURL, req.EncryptedNotes,
			req.Category)
		if err != nil {
			if errors.Is(err, services.ErrTitlePasswordRequired) {
				writeError(w, http.StatusBadRequest, "Title and password are required")
				return
			}
			writeInternalError(w, err)
			return
		}

		writeJSON(w, http.StatusCreated, VaultItemResponse{Item: *item})
	}
}
