package routes

import (
	"feedback-backend/config"
	"feedback-backend/handlers"
	"feedback-backend/middleware"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// maxUploadBytes caps multipart upload requests at 70 MiB, enforced before
// images reach the asset manager.
const maxUploadBytes = 70 << 20

func SetupRoutes(router *gin.Engine, cfg *config.Config) {
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	api := router.Group("/api")

	// Public routes
	auth := api.Group("/auth")
	{
		auth.POST("/login", handlers.Login)
	}
	api.GET("/businesses", handlers.ListBusinesses)
	api.GET("/businesses/subdomain/:subdomain", handlers.GetBusinessBySubdomain)
	api.POST("/businesses/subdomain/:subdomain/feedback", handlers.CreateFeedback)
	api.POST("/send-review", handlers.SendReview)

	// Protected routes
	protected := api.Group("/")
	protected.Use(middleware.AuthMiddleware(cfg.JWTSecret))
	{
		protected.POST("/businesses", handlers.CreateBusiness)
		protected.POST("/businesses/create", middleware.BodyLimit(maxUploadBytes), handlers.CreateBusinessWithImages)
		protected.PUT("/businesses/:subdomain", middleware.BodyLimit(maxUploadBytes), handlers.UpdateBusiness)
		protected.DELETE("/businesses/:subdomain", handlers.DeleteBusiness)
		protected.POST("/businesses/:subdomain/upload", middleware.BodyLimit(maxUploadBytes), handlers.UploadImage)
		protected.GET("/businesses/subdomain/:subdomain/feedback", handlers.ListFeedback)
	}
}
