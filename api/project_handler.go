package api

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/Breoliveira30/DevDuo/errs"
	"github.com/Breoliveira30/DevDuo/models"
	"github.com/Breoliveira30/DevDuo/store"
)

// projectHandler serves the REST project surface. These endpoints simulate
// persistence: they validate and echo, but do not read from or write to the
// project store. The admin dashboard talks to the store directly; keeping
// the two layers connected is a future synchronization concern.
type projectHandler struct {
	responder Responder
	logger    zerolog.Logger
}

func newProjectHandler() projectHandler {
	logger := log.With().Str("handlerName", "projectHandler").Logger()

	return projectHandler{
		responder: NewResponder(logger),
		logger:    logger,
	}
}

// createProjectRequest accepts `tech` and `features` either as arrays or as
// single scalars; scalars are normalized to one-element lists.
type createProjectRequest struct {
	Title       string            `json:"title"`
	Description string            `json:"description"`
	Image       string            `json:"image"`
	Tech        models.StringList `json:"tech"`
	Color       string            `json:"color"`
	Demo        string            `json:"demo"`
	Category    string            `json:"category"`
	Features    models.StringList `json:"features"`
	Progress    int               `json:"progress"`
}

// fixedProjectDataset is the hardcoded answer of the list endpoint: the
// sample dataset with sequential ids and a fresh createdAt.
func fixedProjectDataset() []apiProject {
	now := time.Now().UTC().Format(time.RFC3339)

	seeds := store.DefaultProjects()
	projects := make([]apiProject, 0, len(seeds))
	for i, p := range seeds {
		p.ID = strconv.Itoa(i + 1)
		projects = append(projects, apiProject{Project: p, CreatedAt: now})
	}
	return projects
}

// getAllProjects returns the fixed 3-item dataset.
func (h projectHandler) getAllProjects() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		h.responder.WriteJSON(w, http.StatusOK, projectListResponse{
			Projects: fixedProjectDataset(),
			Success:  true,
		})
	}
}

// createProject validates the payload, fills defaults and answers with the
// record it would have stored.
func (h projectHandler) createProject() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var body createProjectRequest
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			h.logger.Error().Err(err).Msg("failed to decode project request body")
			h.responder.WriteError(w, errs.NewInternalErrorWithCause("Erro ao criar projeto", err))
			return
		}

		if err := validateCreateRequest(body); err != nil {
			h.responder.WriteError(w, err)
			return
		}

		project := apiProject{
			Project: models.Project{
				ID:          strconv.FormatInt(time.Now().UnixMilli(), 10),
				Title:       body.Title,
				Description: body.Description,
				Image:       defaultIfEmpty(body.Image, models.DefaultImage),
				Tech:        []string(body.Tech),
				Color:       defaultIfEmpty(body.Color, models.DefaultColor),
				Demo:        defaultIfEmpty(body.Demo, models.DefaultDemo),
				Category:    body.Category,
				Features:    []string(body.Features),
				Progress:    body.Progress,
			},
			CreatedAt: time.Now().UTC().Format(time.RFC3339),
		}

		h.responder.WriteJSON(w, http.StatusCreated, projectResponse{
			Project: project,
			Success: true,
			Message: "Projeto criado com sucesso!",
		})
	}
}

// getProject simulates a lookup; there is no backing dataset to search.
func (h projectHandler) getProject() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		h.responder.WriteJSON(w, http.StatusOK, projectResponse{
			Project: nil,
			Success: true,
		})
	}
}

// updateProject echoes the partial payload back with the path id and an
// update timestamp.
func (h projectHandler) updateProject() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		projectID := chi.URLParam(r, "projectID")

		var body map[string]any
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			h.logger.Error().Err(err).Msg("failed to decode project request body")
			h.responder.WriteError(w, errs.NewInternalErrorWithCause("Erro ao atualizar projeto", err))
			return
		}

		body["id"] = projectID
		body["updatedAt"] = time.Now().UTC().Format(time.RFC3339)

		h.responder.WriteJSON(w, http.StatusOK, projectResponse{
			Project: body,
			Success: true,
			Message: "Projeto atualizado com sucesso!",
		})
	}
}

func (h projectHandler) deleteProject() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		h.responder.WriteJSON(w, http.StatusOK, statusResponse{
			Success: true,
			Message: "Projeto deletado com sucesso!",
		})
	}
}

// validateCreateRequest checks the required fields in a stable order so the
// first missing one is the one reported.
func validateCreateRequest(body createProjectRequest) error {
	required := []struct {
		name  string
		empty bool
	}{
		{"title", body.Title == ""},
		{"description", body.Description == ""},
		{"category", body.Category == ""},
		{"tech", len(body.Tech) == 0},
		{"features", len(body.Features) == 0},
	}

	for _, field := range required {
		if field.empty {
			return errs.NewMissingRequiredFieldError(field.name,
				fmt.Sprintf("Campo %s é obrigatório", field.name))
		}
	}
	return nil
}

func defaultIfEmpty(value, fallback string) string {
	if value == "" {
		return fallback
	}
	return value
}
