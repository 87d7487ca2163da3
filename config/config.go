// config.go - Handles configuration for the project

package config // Declares the package name

import ( // Import required packages
	"os"   // For reading environment variables
	"time" // For parsing timeout durations
)

type Config struct { // Config struct holds all configuration values
	Port      string // HTTP listen port
	DBPath    string // Path to the SQLite database file
	JWTSecret string // Secret key for JWT authentication

	AuthMode  string // Password mode: "legacy" (plaintext compare) or "secure" (bcrypt)
	AdminAuth bool   // Whether /admin routes require an admin JWT

	UbidotsToken     string        // Ubidots API token (sent as X-Auth-Token header)
	UbidotsBaseURL   string        // Base URL of the Ubidots variables API
	TemperatureVarID string        // Ubidots variable ID for "temperature"
	DistanceVarID    string        // Ubidots variable ID for "distance"
	UbidotsTimeout   time.Duration // Per-request timeout for upstream fetches

	MQTTBroker string // Optional MQTT broker address; empty disables publishing

	AdminNombre   string // Seed admin first name
	AdminApellido string // Seed admin last name
	AdminCorreo   string // Seed admin email
	AdminUsuario  string // Seed admin username
	AdminPassword string // Seed admin password
}

func Load() *Config { // Load reads config from environment variables or uses defaults
	timeout, err := time.ParseDuration(getEnv("UBIDOTS_TIMEOUT", "10s")) // Parse upstream timeout
	if err != nil {
		timeout = 10 * time.Second // Fall back to default on a bad value
	}
	return &Config{
		Port:      getEnv("PORT", "3000"),               // Get listen port or use default
		DBPath:    getEnv("DB_PATH", "database.sqlite"), // Get DB path or use default
		JWTSecret: getEnv("JWT_SECRET", "supersecret"),  // Get JWT secret or use default
		AuthMode:  getEnv("AUTH_MODE", "legacy"),        // Password mode, legacy keeps old behavior
		AdminAuth: getEnv("ADMIN_AUTH", "off") == "on",  // Admin route enforcement, off by default

		UbidotsToken:     getEnv("UBIDOTS_TOKEN", ""),                                                          // Upstream API token
		UbidotsBaseURL:   getEnv("UBIDOTS_BASE_URL", "https://industrial.api.ubidots.com/api/v1.6/variables"), // Upstream base URL
		TemperatureVarID: getEnv("TEMPERATURE_VAR_ID", ""),                                                     // Temperature variable ID
		DistanceVarID:    getEnv("DISTANCE_VAR_ID", ""),                                                        // Distance variable ID
		UbidotsTimeout:   timeout,                                                                              // Upstream request timeout

		MQTTBroker: getEnv("MQTT_BROKER", ""), // MQTT broker, empty means disabled

		AdminNombre:   getEnv("ADMIN_NOMBRE", "Admin"),              // Seed admin first name
		AdminApellido: getEnv("ADMIN_APELLIDO", "System"),           // Seed admin last name
		AdminCorreo:   getEnv("ADMIN_CORREO", "admin@pecerapp.com"), // Seed admin email
		AdminUsuario:  getEnv("ADMIN_USUARIO", "admin"),             // Seed admin username
		AdminPassword: getEnv("ADMIN_PASSWORD", "admin123"),         // Seed admin password
	}
}

func getEnv(key, fallback string) string { // Helper to get env var or fallback
	if value := os.Getenv(key); value != "" { // If env var is set, use it
		return value
	}
	return fallback // Otherwise, use fallback value
}
