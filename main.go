// main.go - Entry point for the feedback backend server

package main

import (
	"log"

	"feedback-backend/config"
	"feedback-backend/database"
	"feedback-backend/handlers"
	"feedback-backend/logger"
	"feedback-backend/mailer"
	"feedback-backend/middleware"
	"feedback-backend/routes"
	"feedback-backend/storage"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

func main() {
	// STEP 1: Load configuration and initialize the logger
	_ = godotenv.Load() // Load .env if present; real deployments set the environment directly

	cfg := config.Load() // Load configuration (DB path, JWT secret, SMTP relay, asset root)

	appLogger, err := logger.Init(cfg.Environment)
	if err != nil {
		log.Fatal("failed to initialize logger: ", err)
	}
	defer func() {
		_ = appLogger.Sync()
	}()

	// STEP 2: Connect to the database and wire the handler collaborators.
	// Connect migrates the schema and seeds the admin hash before the server
	// starts accepting traffic, so login never races the hash computation.
	if err := database.Connect(cfg); err != nil {
		appLogger.Fatal("failed to connect to database", zap.Error(err))
	}

	assets := storage.NewManager(cfg.AssetsDir)                                                // Per-tenant asset directories
	mail := mailer.NewSMTPSender(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUser, cfg.SMTPPassword) // Outbound review mail
	handlers.Init(cfg, assets, mail)

	// STEP 3: Create the router and configure global middleware.
	// gin.New rather than gin.Default: request logging goes through zap and
	// the metrics middleware, not gin's stdout logger.
	router := gin.New()
	router.Use(gin.Recovery())

	router.Use(cors.New(cors.Config{
		AllowOrigins:     []string{cfg.CORSOrigin},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Authorization", "Content-Type"},
		AllowCredentials: true,
	}))
	router.Use(middleware.Metrics())

	routes.SetupRoutes(router, cfg)

	// STEP 4: Start the web server
	appLogger.Info("starting server", zap.String("port", cfg.Port))
	if err := router.Run(":" + cfg.Port); err != nil {
		appLogger.Fatal("server failed", zap.Error(err))
	}
}
