package models

import (
	"time"
)

// MigrationDB is one row of the migrations ledger.
type MigrationDB struct {
	Version    int64     `json:"version" db:"version"`
	Name       string    `json:"name" db:"name"`
	ExecutedAt time.Time `json:"executed_at" db:"executed_at"`
}
