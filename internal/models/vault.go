package models

import (
	"time"
)

// VaultItemDB represents an encrypted vault record. Every Encrypted*
// field holds ciphertext produced client-side; the server never sees
// the corresponding plaintext.
type VaultItemDB struct {
	ID                int64     `json:"id" db:"id"`
	UserID            int64     `json:"user_id" db:"user_id"`
	EncryptedTitle    string    `json:"encrypted_title" db:"encrypted_title"`
	EncryptedUsername *string   `json:"encrypted_username" db:"encrypted_username"`
	EncryptedPassword string    `json:"encrypted_password" db:"encrypted_password"`
	EncryptedURL      *string   `json:"encrypted_url" db:"encrypted_url"`
	EncryptedNotes    *string   `json:"encrypted_notes" db:"encrypted_notes"`
	Category          string    `json:"category" db:"category"`
	IsFavorite        bool      `json:"is_favorite" db:"is_favorite"`
	CreatedAt         time.Time `json:"created_at" db:"created_at"`
	UpdatedAt         time.Time `json:"updated_at" db:"updated_at"`
}

// VaultItemUpdate carries a partial update for a vault record. Nil
// fields are left untouched. Only these fields are updatable; server
// internal columns (id, user_id, timestamps) never are.
type VaultItemUpdate struct {
	EncryptedTitle    *string `json:"encrypted_title,omitempty"`
	EncryptedUsername *string `json:"encrypted_username,omitempty"`
	EncryptedPassword *string `json:"encrypted_password,omitempty"`
	EncryptedURL      *string `json:"encrypted_url,omitempty"`
	EncryptedNotes    *string `json:"encrypted_notes,omitempty"`
	Category          *string `json:"category,omitempty"`
	IsFavorite        *bool   `json:"is_favorite,omitempty"`
}
