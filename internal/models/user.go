package models

import (
	"time"
)

// UserDB represents a user record in the database
type UserDB struct {
	ID           int64      `json:"id" db:"id"`                           // Primary key
	Email        string     `json:"email" db:"email"`                     // Unique email, stored lowercased
	PasswordHash string     `json:"-" db:"password_hash"`                 // bcrypt hash
	CreatedAt    time.Time  `json:"created_at" db:"created_at"`           // Creation timestamp
	UpdatedAt    time.Time  `json:"updated_at" db:"updated_at"`           // Last update timestamp
	LastLogin    *time.Time `json:"last_login,omitempty" db:"last_login"` // Last successful login
	IsActive     bool       `json:"is_active" db:"is_active"`             // False once deactivated
}
