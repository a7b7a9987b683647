package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/sbilibin2017/pass-vault/internal/jwt"
	"github.com/sbilibin2017/pass-vault/internal/models"
	"github.com/sbilibin2017/pass-vault/internal/services"
)

// Loginer defines the interface that the login service must implement.
type Loginer interface {
	Login(ctx context.Context, email, password string) (string, *models.UserDB, error)
}

// LoginRequest represents the JSON body for user login
// swagger:model LoginRequest
type LoginRequest struct {
	// Email
	// required: true
	// example: alice@example.com
	Email string `json:"email"`

	// Password
	// required: true
	// example: correct-horse
	Password string `json:"password"`
}

// NewLoginHandler returns an HTTP handler for user login.
// @Summary User login
// @Description Authenticates a user and sets the session cookie. Unknown emails and wrong passwords produce the same error.
// @Tags auth
// @Accept json
// @Produce json
// @Param loginRequest body handlers.LoginRequest true "Login request"
// @Success 200 {object} handlers.AuthResponse "Authenticated, session cookie set"
// @Failure 400 {object} handlers.ErrorResponse "Invalid request body"
// @Failure 401 {object} handlers.ErrorResponse "Invalid credentials or deactivated account"
// @Failure 500 {object} handlers.ErrorResponse "Internal server error"
// @Router /api/auth/login [post]
func NewLoginHandler(svc Loginer, cookieMaxAge time.Duration, secureCookie bool) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req LoginRequest

		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "Invalid request body")
			return
		}

		token, user, err := svc.Login(r.Context(), req.Email, req.Password)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrInvalidInput):
				writeError(w, http.StatusBadRequest, err.Error())
			case errors.Is(err, services.ErrInvalidCredentials):
				writeError(w, http.StatusUnauthorized, "Invalid email or password")
			case errors.Is(err, services.ErrAccountDeactivated):
				writeError(w, http.StatusUnauthorized, "Account is deactivated")
			default:
				writeInternalError(w, err)
			}
			return
		}

		http.SetCookie(w, jwt.NewAuthCookie(token, cookieMaxAge, secureCookie))
		writeJSON(w, http.StatusOK, AuthResponse{
			Success: true,
			User:    AuthUser{ID: user.ID, Email: user.Email},
		})
	}
}
