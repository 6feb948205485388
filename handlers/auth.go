// auth.go - Handles admin login

package handlers

import (
	"net/http"

	"feedback-backend/auth"
	"feedback-backend/database"
	"feedback-backend/models"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

type LoginInput struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// Login checks the admin credentials and returns a bearer token valid for
// one hour. Unknown username and wrong password get the same response.
func Login(c *gin.Context) {
	var input LoginInput                             // Declare input variable
	if err := c.ShouldBindJSON(&input); err != nil { // Parse JSON input
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()}) // Return error if invalid
		return
	}

	var admin models.Admin                                                                    // Declare admin variable
	if err := database.DB.Where("username = ?", input.Username).First(&admin).Error; err != nil { // Find admin by username
		c.JSON(http.StatusUnauthorized, gin.H{"message": "Invalid credentials"}) // Return error if not found
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(admin.Password), []byte(input.Password)); err != nil { // Check password
		c.JSON(http.StatusUnauthorized, gin.H{"message": "Invalid credentials"}) // Return error if wrong
		return
	}

	// Token generation
	token, err := auth.IssueToken(admin.Username, cfg.JWTSecret) // Sign a one-hour bearer token
	if err != nil {
		zap.L().Error("failed to sign token", zap.Error(err)) // Detail stays server-side
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"token": token}) // Return token
}
