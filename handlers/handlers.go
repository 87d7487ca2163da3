// handlers.go - Shared handler state and construction

package handlers // Declares the package name

import ( // Import required packages
	"pecerapp-backend/config"     // Project config
	"pecerapp-backend/mqtt"       // Optional readings publisher
	"pecerapp-backend/repository" // User data access
	"pecerapp-backend/ubidots"    // Telemetry client
)

// Handler carries the injected dependencies for every HTTP handler. It
// replaces ambient globals so tests can build one per test database.
type Handler struct {
	Users     *repository.UserRepository // Directory store access
	Telemetry *ubidots.Client            // Upstream telemetry client
	MQTT      *mqtt.Publisher            // Readings publisher; nil when no broker configured
	Config    *config.Config             // Runtime configuration
}

func New(users *repository.UserRepository, telemetry *ubidots.Client, publisher *mqtt.Publisher, cfg *config.Config) *Handler {
	return &Handler{
		Users:     users,
		Telemetry: telemetry,
		MQTT:      publisher,
		Config:    cfg,
	}
}
