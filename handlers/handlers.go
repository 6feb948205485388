// handlers.go - Shared dependencies for the HTTP handlers

package handlers

import (
	"feedback-backend/config"
	"feedback-backend/mailer"
	"feedback-backend/storage"
)

var (
	cfg    *config.Config
	assets *storage.Manager
	mail   mailer.Sender
)

// Init wires the handler package to its collaborators. Must be called once
// before routes are served; tests call it with their own fakes.
func Init(c *config.Config, a *storage.Manager, m mailer.Sender) {
	cfg = c
	assets = a
	mail = m
}
