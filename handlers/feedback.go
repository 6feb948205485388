// feedback.go - End-user feedback submission and admin listing

package handlers

import (
	"errors"
	"net/http"

	"feedback-backend/database"
	"feedback-backend/models"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type FeedbackInput struct {
	Rating   int    `json:"rating" binding:"required,min=1,max=5"`
	Feedback string `json:"feedback"`
}

// CreateFeedback records a rating for the business behind a subdomain.
// Public endpoint: this is how end-users of a tenant's feedback page rate it.
func CreateFeedback(c *gin.Context) {
	var business models.Business
	err := database.DB.Where("subdomain = ?", c.Param("subdomain")).First(&business).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": "Business not found"})
			return
		}
		zap.L().Error("failed to fetch business", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	var input FeedbackInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	feedback := models.Feedback{
		Rating:     input.Rating,
		Feedback:   input.Feedback,
		BusinessID: business.ID,
	}
	if err := database.DB.Create(&feedback).Error; err != nil {
		zap.L().Error("failed to create feedback", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	c.JSON(http.StatusCreated, feedback)
}

// ListFeedback returns all feedback for one business, newest first.
func ListFeedback(c *gin.Context) {
	var business models.Business
	err := database.DB.Where("subdomain = ?", c.Param("subdomain")).First(&business).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": "Business not found"})
			return
		}
		zap.L().Error("failed to fetch business", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	var feedback []models.Feedback
	if err := database.DB.Where("business_id = ?", business.ID).Order("id desc").Find(&feedback).Error; err != nil {
		zap.L().Error("failed to list feedback", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	c.JSON(http.StatusOK, feedback)
}
