package api

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/Breoliveira30/DevDuo/models"
	"github.com/Breoliveira30/DevDuo/store"
)

// dashboardHandler serves the public showcase and the admin pages. Unlike
// the REST surface, its mutating actions go straight through the project
// store.
type dashboardHandler struct {
	logger   zerolog.Logger
	projects *store.Store
}

func newDashboardHandler(projects *store.Store) dashboardHandler {
	logger := log.With().Str("handlerName", "dashboardHandler").Logger()

	return dashboardHandler{
		logger:   logger,
		projects: projects,
	}
}

type showcasePageData struct {
	Projects []models.Project
	Loading  bool
}

type dashboardPageData struct {
	Total  int
	Recent []models.Project
}

type projectListPageData struct {
	Projects []models.Project
}

type projectFormPageData struct {
	IsNew        bool
	Project      models.Project
	TechText     string
	FeaturesText string
	Error        string
}

// showcase is the public project listing.
func (h dashboardHandler) showcase() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		renderPage(w, h.logger, http.StatusOK, "showcase.html", showcasePageData{
			Projects: h.projects.Projects(),
			Loading:  h.projects.Loading(),
		})
	}
}

// dashboard shows totals and the five most recently added projects.
func (h dashboardHandler) dashboard() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		all := h.projects.Projects()

		recent := make([]models.Project, 0, 5)
		for i := len(all) - 1; i >= 0 && len(recent) < 5; i-- {
			recent = append(recent, all[i])
		}

		renderPage(w, h.logger, http.StatusOK, "dashboard.html", dashboardPageData{
			Total:  len(all),
			Recent: recent,
		})
	}
}

func (h dashboardHandler) listProjects() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		renderPage(w, h.logger, http.StatusOK, "projects.html", projectListPageData{
			Projects: h.projects.Projects(),
		})
	}
}

func (h dashboardHandler) newProjectForm() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		renderPage(w, h.logger, http.StatusOK, "project_form.html", projectFormPageData{IsNew: true})
	}
}

func (h dashboardHandler) createProject() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		project, formErr := projectFromForm(r)
		if formErr != "" {
			renderPage(w, h.logger, http.StatusBadRequest, "project_form.html", projectFormPageData{
				IsNew:        true,
				Project:      project,
				TechText:     r.FormValue("tech"),
				FeaturesText: r.FormValue("features"),
				Error:        formErr,
			})
			return
		}

		if _, err := h.projects.Add(project); err != nil {
			// the record is in memory; only the snapshot write failed
			h.logger.Error().Err(err).Msg("project added but snapshot write failed")
		}
		http.Redirect(w, r, "/admin/projects", http.StatusFound)
	}
}

func (h dashboardHandler) editProjectForm() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		projectID := chi.URLParam(r, "projectID")

		project, ok := h.projects.Get(projectID)
		if !ok {
			http.NotFound(w, r)
			return
		}

		renderPage(w, h.logger, http.StatusOK, "project_form.html", projectFormPageData{
			Project:      project,
			TechText:     strings.Join(project.Tech, "\n"),
			FeaturesText: strings.Join(project.Features, "\n"),
		})
	}
}

func (h dashboardHandler) updateProject() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		projectID := chi.URLParam(r, "projectID")

		project, formErr := projectFromForm(r)
		if formErr != "" {
			project.ID = projectID
			renderPage(w, h.logger, http.StatusBadRequest, "project_form.html", projectFormPageData{
				Project:      project,
				TechText:     r.FormValue("tech"),
				FeaturesText: r.FormValue("features"),
				Error:        formErr,
			})
			return
		}

		project.ID = projectID
		h.projects.Update(project)
		http.Redirect(w, r, "/admin/projects", http.StatusFound)
	}
}

func (h dashboardHandler) deleteProject() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		h.projects.Delete(chi.URLParam(r, "projectID"))
		http.Redirect(w, r, "/admin/projects", http.StatusFound)
	}
}

func (h dashboardHandler) refreshProjects() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		h.projects.Refresh()
		http.Redirect(w, r, "/admin/projects", http.StatusFound)
	}
}

// projectFromForm builds a project from the submitted form. tech and
// features are entered one per line. Returns a user-facing message when a
// required field is missing.
func projectFromForm(r *http.Request) (models.Project, string) {
	if err := r.ParseForm(); err != nil {
		return models.Project{}, "Dados inválidos"
	}

	project := models.Project{
		Title:       strings.TrimSpace(r.FormValue("title")),
		Description: strings.TrimSpace(r.FormValue("description")),
		Image:       strings.TrimSpace(r.FormValue("image")),
		Tech:        splitLines(r.FormValue("tech")),
		Color:       strings.TrimSpace(r.FormValue("color")),
		Demo:        strings.TrimSpace(r.FormValue("demo")),
		Category:    strings.TrimSpace(r.FormValue("category")),
		Features:    splitLines(r.FormValue("features")),
		Progress:    clampProgress(r.FormValue("progress")),
	}

	if project.Image == "" {
		project.Image = models.DefaultImage
	}
	if project.Color == "" {
		project.Color = models.DefaultColor
	}
	if project.Demo == "" {
		project.Demo = models.DefaultDemo
	}

	switch {
	case project.Title == "":
		return project, "Campo title é obrigatório"
	case project.Description == "":
		return project, "Campo description é obrigatório"
	case project.Category == "":
		return project, "Campo category é obrigatório"
	case len(project.Tech) == 0:
		return project, "Campo tech é obrigatório"
	case len(project.Features) == 0:
		return project, "Campo features é obrigatório"
	}
	return project, ""
}

func splitLines(value string) []string {
	var out []string
	for _, line := range strings.Split(value, "\n") {
		if line = strings.TrimSpace(line); line != "" {
			out = append(out, line)
		}
	}
	return out
}

func clampProgress(value string) int {
	progress, err := strconv.Atoi(strings.TrimSpace(value))
	if err != nil || progress < 0 {
		return 0
	}
	if progress > 100 {
		return 100
	}
	return progress
}
