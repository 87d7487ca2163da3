// database.go - Handles database connection and setup

package database // Declares the package name

import ( // Import required packages
	"pecerapp-backend/config" // Project config
	"pecerapp-backend/models" // User and Pecera models

	"golang.org/x/crypto/bcrypt" // Password hashing (secure mode seed)
	"gorm.io/driver/sqlite"      // SQLite driver for GORM
	"gorm.io/gorm"               // GORM ORM
	"gorm.io/gorm/clause"        // For the conflict-ignoring admin seed
)

// Connect opens the database, runs migrations and seeds the admin user.
// The returned handle is injected into the repositories; there is no
// package-level connection.
func Connect(cfg *config.Config) (*gorm.DB, error) {
	db, err := gorm.Open(sqlite.Open(cfg.DBPath), &gorm.Config{
		TranslateError: true, // Map driver errors to gorm.ErrDuplicatedKey etc.
	})
	if err != nil { // If error, return it
		return nil, err
	}

	// Auto-migrate the models (create tables if needed)
	if err := db.AutoMigrate(&models.User{}, &models.Pecera{}); err != nil {
		return nil, err
	}

	// Seed the default admin user
	if err := seedAdmin(db, cfg); err != nil {
		return nil, err
	}

	return db, nil
}

// seedAdmin inserts the default admin user if it does not exist yet.
// The insert uses ON CONFLICT DO NOTHING keyed on the unique usuario
// column, so repeated or concurrent startups never duplicate the row.
func seedAdmin(db *gorm.DB, cfg *config.Config) error {
	password := cfg.AdminPassword // Plaintext in legacy mode
	if cfg.AuthMode == "secure" { // Hash the seed password in secure mode
		hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
		if err != nil {
			return err
		}
		password = string(hash)
	}

	admin := models.User{
		Nombre:     cfg.AdminNombre,   // Seed first name
		Apellido:   cfg.AdminApellido, // Seed last name
		Correo:     cfg.AdminCorreo,   // Seed email
		Usuario:    cfg.AdminUsuario,  // Seed username
		Contrasena: password,          // Seed password
		Rol:        "admin",           // Admin role
	}

	return db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "usuario"}}, // Conflict target: unique username
		DoNothing: true,                               // Existing admin row wins
	}).Create(&admin).Error
}
