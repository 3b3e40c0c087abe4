package api

import (
	"github.com/Breoliveira30/DevDuo/models"
)

// routeHandlers contains all the handlers for different route types
type routeHandlers struct {
	projectHandler   projectHandler
	authHandler      authHandler
	dashboardHandler dashboardHandler
}

// apiProject is the REST-level project shape. Unlike the snapshot shape
// held by the Store, it carries a creation timestamp.
type apiProject struct {
	models.Project
	CreatedAt string `json:"createdAt"`
}

type projectListResponse struct {
	Projects []apiProject `json:"projects"`
	Success  bool         `json:"success"`
}

// Project is `any` because the update endpoint echoes back whatever partial
// payload the client sent, and the lookup endpoint can answer with null.
type projectResponse struct {
	Project any    `json:"project"`
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
}

type statusResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
}

type errorResponse struct {
	Error   string `json:"error"`
	Success bool   `json:"success"`
}
