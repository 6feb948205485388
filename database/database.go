// database.go - Handles database connection, migration and admin seeding

package database // Declares the package name

import ( // Import required packages
	"feedback-backend/config" // Project config
	"feedback-backend/models" // Database models

	"golang.org/x/crypto/bcrypt" // Password hashing
	"gorm.io/driver/sqlite"      // SQLite driver for GORM
	"gorm.io/gorm"               // GORM ORM
)

var DB *gorm.DB // Global variable to hold the database connection

// Connect opens the database, runs migrations and seeds the admin identity.
// Seeding happens here, before the HTTP server starts, so the bcrypt hash is
// always in place by the time the first login request arrives.
func Connect(cfg *config.Config) error {
	var err error // Declare error variable
	// TranslateError surfaces unique-constraint violations as
	// gorm.ErrDuplicatedKey, which handlers treat as the authoritative
	// duplicate-subdomain signal.
	DB, err = gorm.Open(sqlite.Open(cfg.DBPath), &gorm.Config{TranslateError: true}) // Open SQLite DB
	if err != nil {                                                                 // If error, return it
		return err
	}

	// Auto-migrate all models (create tables if needed)
	if err := DB.AutoMigrate(&models.Admin{}, &models.Business{}, &models.Feedback{}); err != nil {
		return err
	}

	return seedAdmin(cfg) // Seed the admin row before serving traffic
}

// seedAdmin creates or refreshes the single admin row from the environment
// configuration. The environment stays the source of truth: changing
// ADMIN_PASSWORD and restarting rotates the stored hash.
func seedAdmin(cfg *config.Config) error {
	hash, err := bcrypt.GenerateFromPassword([]byte(cfg.AdminPassword), bcrypt.DefaultCost) // Hash the password seed
	if err != nil {
		return err
	}

	// Find the admin row by username, always refresh the stored hash,
	// and create the row if it is missing.
	admin := models.Admin{}
	return DB.Where(models.Admin{Username: cfg.AdminUsername}).
		Assign(models.Admin{Password: string(hash)}).
		FirstOrCreate(&admin).Error
}
