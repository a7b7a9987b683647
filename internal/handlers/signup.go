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

// Signuper defines the interface that the signup service must implement.
type Signuper interface {
	Signup(ctx context.Context, email, password string) (string, *models.UserDB, error)
}

// SignupRequest represents the JSON body for user signup
// swagger:model SignupRequest
type SignupRequest struct {
	// Email
	// required: true
	// example: alice@example.com
	Email string `json:"email"`

	// Password, at least 8 characters
	// required: true
	// example: correct-horse
	Password string `json:"password"`
}

// AuthUser is the public view of a user returned by auth endpoints
// swagger:model AuthUser
type AuthUser struct {
	// User ID
	// example: 1
	ID int64 `json:"id"`

	// Email
	// example: alice@example.com
	Email string `json:"email"`
}

// AuthResponse represents a successful signup or login response
// swagger:model AuthResponse
type AuthResponse struct {
	// Success flag
	// example: true
	Success bool `json:"success"`

	// Created or authenticated user
	User AuthUser `json:"user"`
}

// NewSignupHandler returns an HTTP handler for user signup.
// @Summary Sign up a new user
// @Description Creates a user account and issues a session cookie. The password is hashed before storing; vault field encryption happens client-side and is unrelated to this password.
// @Tags auth
// @Accept json
// @Produce json
// @Param signupRequest body handlers.SignupRequest true "User signup request"
// @Success 201 {object} handlers.AuthResponse "User created, session cookie set"
// @Failure 400 {object} handlers.ErrorResponse "Validation failure or email already registered"
// @Failure 500 {object} handlers.ErrorResponse "Internal server error"
// @Router /api/auth/signup [post]
func NewSignupHandler(svc Signuper, cookieMaxAge time.Duration, secureCookie bool) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req SignupRequest

		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "Invalid request body")
			return
		}

		token, user, err := svc.Signup(r.Context(), req.Email, req.Password)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrInvalidInput),
				errors.Is(err, services.ErrInvalidEmail),
				errors.Is(err, services.ErrWeakPassword),
				errors.Is(err, services.ErrEmailExists):
				writeError(w, http.StatusBadRequest, err.Error())
			default:
				writeInternalError(w, err)
			}
			return
		}

		http.SetCookie(w, jwt.NewAuthCookie(token, cookieMaxAge, secureCookie))
		writeJSON(w, http.StatusCreated, AuthResponse{
			Success: true,
			User:    AuthUser{ID: user.ID, Email: user.Email},
		})
	}
}
