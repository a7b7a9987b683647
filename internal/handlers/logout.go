package handlers

import (
	"context"
	"net/http"

	"github.com/sbilibin2017/pass-vault/internal/jwt"
)

// Logouter defines the interface that the logout service must implement.
type Logouter interface {
	Logout(ctx context.Context, token string) error
}

// TokenExtractor extracts the raw token string from a request.
type TokenExtractor interface {
	GetTokenFromRequest(ctx context.Context, r *http.Request) (string, error)
}

// LogoutResponse represents a successful logout
// swagger:model LogoutResponse
type LogoutResponse struct {
	// Success flag
	// example: true
	Success bool `json:"success"`
}

// NewLogoutHandler returns an HTTP handler for logout. The mirrored
// session is deactivated and the cookie cleared; the signed token
// itself stays verifiable until its natural expiry.
// @Summary Log out
// @Description Deactivates the server-side session mirror and clears the session cookie.
// @Tags auth
// @Produce json
// @Success 200 {object} handlers.LogoutResponse "Session cleared"
// @Failure 500 {object} handlers.ErrorResponse "Internal server error"
// @Router /api/auth/logout [post]
func NewLogoutHandler(svc Logouter, extractor TokenExtractor) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		// A request without a token still clears the cookie.
		if token, err := extractor.GetTokenFromRequest(ctx, r); err == nil {
			if err := svc.Logout(ctx, token); err != nil {
				writeInternalError(w, err)
				return
			}
		}

		http.SetCookie(w, jwt.NewAuthCookie("", 0, false))
		writeJSON(w, http.StatusOK, LogoutResponse{Success: true})
	}
}
