package api

import (
	"fmt"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/Breoliveira30/DevDuo/config"
	"github.com/Breoliveira30/DevDuo/store"
)

// initializeHandlers creates and returns all handlers organized in a routeHandlers struct
func initializeHandlers(projects *store.Store, c map[string]string) (*routeHandlers, error) {
	passwordHash, err := adminPasswordHash(c)
	if err != nil {
		return nil, err
	}

	sessionTTL := time.Duration(config.GetInt(c, "SESSION_TTL_HOURS", 24)) * time.Hour
	sessions := newSessionManager(config.GetString(c, "SESSION_SECRET", "devduo-dev-secret"), sessionTTL)

	return &routeHandlers{
		projectHandler:   newProjectHandler(),
		authHandler:      newAuthHandler(sessions, passwordHash),
		dashboardHandler: newDashboardHandler(projects),
	}, nil
}

// adminPasswordHash prefers a precomputed bcrypt hash; a plaintext
// ADMIN_PASSWORD is hashed at startup for development setups.
func adminPasswordHash(c map[string]string) ([]byte, error) {
	if hash := config.GetString(c, "ADMIN_PASSWORD_HASH", ""); hash != "" {
		return []byte(hash), nil
	}

	password := config.GetString(c, "ADMIN_PASSWORD", "devduo")
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hash admin password: %w", err)
	}
	return hash, nil
}
