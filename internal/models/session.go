package models

import (
	"time"
)

// SessionDB mirrors an issued token server-side for revocation and
// audit. Only a one-way hash of the token is stored, never the token.
type SessionDB struct {
	ID        int64     `json:"id" db:"id"`
	UserID    int64     `json:"user_id" db:"user_id"`
	TokenHash string    `json:"-" db:"token_hash"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
	ExpiresAt time.Time `json:"expires_at" db:"expires_at"`
	IsActive  bool      `json:"is_active" db:"is_active"`
}
