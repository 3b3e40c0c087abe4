package api

import (
	"github.com/go-chi/chi/v5"
)

// setupRoutes wires the public showcase, the admin area and the REST
// project surface.
func setupRoutes(r chi.Router, handlers *routeHandlers) {
	r.Get("/", handlers.dashboardHandler.showcase())

	r.Get("/admin/login", handlers.authHandler.showLogin())
	r.Post("/admin/login", handlers.authHandler.login())
	r.Post("/admin/logout", handlers.authHandler.logout())

	// Admin pages behind the auth gate; mutations go through the store.
	r.Group(func(r chi.Router) {
		r.Use(handlers.authHandler.requireAdmin)

		r.Get("/admin", handlers.dashboardHandler.dashboard())
		r.Get("/admin/projects", handlers.dashboardHandler.listProjects())
		r.Get("/admin/projects/new", handlers.dashboardHandler.newProjectForm())
		r.Post("/admin/projects/new", handlers.dashboardHandler.createProject())
		r.Get("/admin/projects/{projectID}", handlers.dashboardHandler.editProjectForm())
		r.Post("/admin/projects/{projectID}", handlers.dashboardHandler.updateProject())
		r.Post("/admin/projects/{projectID}/delete", handlers.dashboardHandler.deleteProject())
		r.Post("/admin/refresh", handlers.dashboardHandler.refreshProjects())
	})

	// REST project endpoints (simulated persistence)
	r.Route("/api", func(r chi.Router) {
		r.Get("/projects", handlers.projectHandler.getAllProjects())
		r.Post("/projects", handlers.projectHandler.createProject())
		r.Get("/projects/{projectID}", handlers.projectHandler.getProject())
		r.Put("/projects/{projectID}", handlers.projectHandler.updateProject())
		r.Delete("/projects/{projectID}", handlers.projectHandler.deleteProject())
	})
}
