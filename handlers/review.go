// review.go - Triggers a review-request email

package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type ReviewInput struct {
	To      string `json:"to" binding:"required,email"`
	Subject string `json:"subject" binding:"required"`
	Body    string `json:"body" binding:"required"`
}

// SendReview dispatches a plain-text review request through the mail relay.
// Transport detail stays in the server log; the caller gets a generic failure.
func SendReview(c *gin.Context) {
	var input ReviewInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := mail.Send(input.To, input.Subject, input.Body); err != nil {
		zap.L().Error("failed to send review email", zap.String("to", input.To), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to send email"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Review sent successfully"})
}
