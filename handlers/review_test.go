// review_test.go - Tests for the review-request email endpoint

package handlers

import (
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSendReview(t *testing.T) {
	r, fm := setupTest(t)

	w := doJSON(r, "POST", "/api/send-review", map[string]string{
		"to":      "owner@acme.example",
		"subject": "How did we do?",
		"body":    "Please leave us a review.",
	}, "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Review sent successfully", decodeBody(t, w)["message"])

	assert.Len(t, fm.sent, 1)
	assert.Equal(t, "owner@acme.example", fm.sent[0].to)
	assert.Equal(t, "How did we do?", fm.sent[0].subject)
	assert.Equal(t, "Please leave us a review.", fm.sent[0].body)
}

func TestSendReviewTransportFailure(t *testing.T) {
	r, fm := setupTest(t)
	fm.err = errors.New("relay refused connection")

	w := doJSON(r, "POST", "/api/send-review", map[string]string{
		"to":      "owner@acme.example",
		"subject": "How did we do?",
		"body":    "Please leave us a review.",
	}, "")
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Equal(t, "Failed to send email", decodeBody(t, w)["error"])
}

func TestSendReviewValidation(t *testing.T) {
	r, fm := setupTest(t)

	w := doJSON(r, "POST", "/api/send-review", map[string]string{
		"subject": "no recipient",
		"body":    "x",
	}, "")
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = doJSON(r, "POST", "/api/send-review", map[string]string{
		"to":      "not-an-email",
		"subject": "x",
		"body":    "x",
	}, "")
	assert.Equal(t, http.StatusBadRequest, w.Code)

	assert.Empty(t, fm.sent)
}
