// config.go - Handles configuration for the project

package config // Declares the package name

import ( // Import required packages
	"os"      // For reading environment variables
	"strconv" // For parsing numeric variables
)

type Config struct { // Config struct holds all configuration values
	Port          string // Port the HTTP server listens on
	DBPath        string // Path to the SQLite database file
	JWTSecret     string // Secret key for signing admin tokens
	AdminUsername string // Username of the single admin identity
	AdminPassword string // Plaintext admin password seed, hashed before traffic is accepted
	SMTPHost      string // Mail relay host
	SMTPPort      int    // Mail relay port (465 implies implicit TLS)
	SMTPUser      string // Mail relay username, also used as the From address
	SMTPPassword  string // Mail relay password
	AssetsDir     string // Root directory for per-tenant branding images
	CORSOrigin    string // Allowed CORS origin for the frontend
	Environment   string // "production" or "development", controls logger setup
}

func Load() *Config { // Load reads config from environment variables or uses defaults
	return &Config{
		Port:          getEnv("PORT", "8080"),                       // Get port or use default
		DBPath:        getEnv("DB_PATH", "data.db"),                 // Get DB path or use default
		JWTSecret:     getEnv("JWT_SECRET", "supersecret"),          // Get JWT secret or use default
		AdminUsername: getEnv("ADMIN_USERNAME", "admin"),            // Get admin username or use default
		AdminPassword: getEnv("ADMIN_PASSWORD", "admin"),            // Get admin password seed or use default
		SMTPHost:      getEnv("SMTP_HOST", "localhost"),             // Get mail relay host or use default
		SMTPPort:      getEnvInt("SMTP_PORT", 587),                  // Get mail relay port or use default
		SMTPUser:      getEnv("SMTP_USER", ""),                      // Get mail relay user (empty disables auth)
		SMTPPassword:  getEnv("SMTP_PASSWORD", ""),                  // Get mail relay password
		AssetsDir:     getEnv("ASSETS_DIR", "assets/business-images"), // Get asset root or use default
		CORSOrigin:    getEnv("CORS_ORIGIN", "http://localhost:4200"), // Get allowed frontend origin
		Environment:   getEnv("ENV", "development"),                 // Get environment name or use default
	}
}

func getEnv(key, fallback string) string { // Helper to get env var or fallback
	if value := os.Getenv(key); value != "" { // If env var is set, use it
		return value
	}
	return fallback // Otherwise, use fallback value
}

func getEnvInt(key string, fallback int) int { // Helper to get numeric env var or fallback
	if value := os.Getenv(key); value != "" { // If env var is set, try to parse it
		if n, err := strconv.Atoi(value); err == nil {
			return n
		}
	}
	return fallback // Unset or unparsable, use fallback value
}
