// main.go - Entry point for the PecerApp backend server

package main // Declares the package name

import ( // Import required packages
	"log" // Logging

	"pecerapp-backend/config"     // Project config management
	"pecerapp-backend/database"   // Database connection and setup
	"pecerapp-backend/handlers"   // HTTP handlers for API endpoints
	"pecerapp-backend/middleware" // Middleware (authentication)
	"pecerapp-backend/mqtt"       // Optional MQTT readings publisher
	"pecerapp-backend/repository" // User data access
	"pecerapp-backend/ubidots"    // Ubidots telemetry client

	"github.com/gin-contrib/cors" // CORS middleware
	"github.com/gin-gonic/gin"    // Gin web framework
	"github.com/joho/godotenv"    // .env file loading
)

func main() { // Main function, program entry point
	// STEP 1: Load configuration and establish connections
	if err := godotenv.Load(); err != nil {
		log.Println("Archivo .env no encontrado, usando variables de entorno")
	}
	cfg := config.Load() // Load configuration (port, DB path, Ubidots, JWT, MQTT)

	db, err := database.Connect(cfg) // Connect, migrate and seed the admin user
	if err != nil {
		log.Fatal("DB connection error: ", err) // If error, log and exit
	}

	users := repository.NewUserRepository(db) // User data access over the DB handle

	telemetry := ubidots.NewClient( // Upstream telemetry client
		cfg.UbidotsBaseURL,
		cfg.UbidotsToken,
		cfg.TemperatureVarID,
		cfg.DistanceVarID,
		cfg.UbidotsTimeout,
	)

	var publisher *mqtt.Publisher // Readings publisher, only when a broker is configured
	if cfg.MQTTBroker != "" {
		publisher, err = mqtt.Connect(cfg.MQTTBroker)
		if err != nil {
			log.Fatal("MQTT connection error: ", err) // If error, log and exit
		}
		defer publisher.Disconnect()
	}

	h := handlers.New(users, telemetry, publisher, cfg) // Handler with injected dependencies

	// STEP 2: Create Gin router and configure routes
	r := gin.Default()       // Create a new Gin router (web server)
	r.Use(cors.Default())    // Allow all origins, like the legacy frontend expects

	// Static frontend
	r.Static("/public", "./public")                               // Static assets
	r.GET("/", func(c *gin.Context) { c.File("public/home.html") }) // Root document

	// Public routes (no authentication required)
	r.POST("/register", h.Register)           // Public route: user registration
	r.POST("/login", h.Login)                 // Public route: user login
	r.GET("/peceras/data", h.GetPecerasData)  // Public route: sensor readings proxy

	// Admin routes. Enforcement is a config switch: the legacy surface had
	// no gate at all, so ADMIN_AUTH=off keeps these open.
	admin := r.Group("/admin") // Create a route group for admin endpoints
	if cfg.AdminAuth {
		admin.Use(middleware.AdminMiddleware(cfg.JWTSecret, users)) // Require an admin JWT
	}
	{
		admin.GET("/users", h.ListUsers)          // Admin: list all users
		admin.DELETE("/users/:id", h.DeleteUser)  // Admin: delete a user by id
	}

	// STEP 3: Start the web server
	log.Printf("Servidor corriendo en http://localhost:%s", cfg.Port)
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatal("Server error: ", err)
	}
}
