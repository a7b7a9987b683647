package handlers

import (
	"net/http"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/pass-vault/internal/logger"
)

// HealthDetails describes the storage backend state
// swagger:model HealthDetails
type HealthDetails struct {
	Connection bool      `json:"connection"`
	Tables     []string  `json:"tables"`
	LastCheck  time.Time `json:"lastCheck"`
}

// HealthResponse represents the health check result
// swagger:model HealthResponse
type HealthResponse struct {
	// healthy or unhealthy
	// example: healthy
	Status  string        `json:"status"`
	Details HealthDetails `json:"details"`
}

// NewHealthHandler returns an HTTP handler checking database
// connectivity and the presence of the expected tables.
// @Summary Health check
// @Description Pings the database and reports which of the expected tables exist.
// @Tags health
// @Produce json
// @Success 200 {object} handlers.HealthResponse "Healthy"
// @Failure 503 {object} handlers.HealthResponse "Unhealthy"
// @Router /api/health [get]
func NewHealthHandler(db *sqlx.DB) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		now := time.Now()

		unhealthy := func(err error) {
			logger.Log.Errorw("health check failed", "err", err)
			writeJSON(w, http.StatusServiceUnavailable, HealthResponse{
				Status: "unhealthy",
				Details: HealthDetails{
					Connection: false,
					Tables:     []string{},
					LastCheck:  now,
				},
			})
		}

		if err := db.PingContext(ctx); err != nil {
			unhealthy(err)
			return
		}

		const query = `
			SELECT table_name
			FROM information_schema.tables
			WHERE table_schema = 'public'
			  AND table_name IN ('users', 'vault_items', 'user_sessions', 'migrations')
			ORDER BY table_name
		`

		tables := []string{}
		if err := db.SelectContext(ctx, &tables, query); err != nil {
			unhealthy(err)
			return
		}

		writeJSON(w, http.StatusOK, HealthResponse{
			Status: "healthy",
			Details: HealthDetails{
				Connection: true,
				Tables:     tables,
				LastCheck:  now,
			},
		})
	}
}
