package api

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"

	"github.com/Breoliveira30/DevDuo/models"
)

func newTestRouter(t *testing.T) *chi.Mux {
	t.Helper()
	router, _ := newTestEnv(t)
	return router
}

func TestGetAllProjects_ReturnsFixedDataset(t *testing.T) {
	router := newTestRouter(t)

	req := httptest.NewRequest("GET", "/api/projects", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var got projectListResponse
	if err := json.NewDecoder(rec.Body).Decode(&got); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if !got.Success {
		t.Error("expected success: true")
	}
	if len(got.Projects) != 3 {
		t.Fatalf("expected 3 projects, got %d", len(got.Projects))
	}
	for i, p := range got.Projects {
		if p.ID == "" || p.CreatedAt == "" {
			t.Errorf("project %d missing id or createdAt: %+v", i, p)
		}
	}
}

func TestCreateProject_NormalizesScalarTech(t *testing.T) {
	router := newTestRouter(t)

	body := `{
		"title": "Novo Projeto",
		"description": "Descrição",
		"category": "Web",
		"tech": "X",
		"features": "Uma feature"
	}`
	req := httptest.NewRequest("POST", "/api/projects", strings.NewReader(body))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body)
	}

	var got struct {
		Project apiProject `json:"project"`
		Success bool       `json:"success"`
		Message string     `json:"message"`
	}
	if err := json.NewDecoder(rec.Body).Decode(&got); err != nil {
		t.Fatalf("decode: %v", err)
	}

	if len(got.Project.Tech) != 1 || got.Project.Tech[0] != "X" {
		t.Errorf(`expected tech ["X"], got %v`, got.Project.Tech)
	}
	if len(got.Project.Features) != 1 || got.Project.Features[0] != "Uma feature" {
		t.Errorf("expected normalized features, got %v", got.Project.Features)
	}
	if got.Project.ID == "" || got.Project.CreatedAt == "" {
		t.Error("expected generated id and createdAt")
	}
	if got.Message == "" {
		t.Error("expected a success message")
	}
}

func TestCreateProject_FillsDefaults(t *testing.T) {
	router := newTestRouter(t)

	body := `{
		"title": "Novo Projeto",
		"description": "Descrição",
		"category": "Web",
		"tech": ["Go"],
		"features": ["CRUD"]
	}`
	req := httptest.NewRequest("POST", "/api/projects", strings.NewReader(body))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body)
	}

	var got struct {
		Project apiProject `json:"project"`
	}
	if err := json.NewDecoder(rec.Body).Decode(&got); err != nil {
		t.Fatalf("decode: %v", err)
	}

	if got.Project.Image != models.DefaultImage {
		t.Errorf("expected default image, got %q", got.Project.Image)
	}
	if got.Project.Color != models.DefaultColor {
		t.Errorf("expected default color, got %q", got.Project.Color)
	}
	if got.Project.Demo != models.DefaultDemo {
		t.Errorf("expected default demo, got %q", got.Project.Demo)
	}
	if got.Project.Progress != 0 {
		t.Errorf("expected progress 0, got %d", got.Project.Progress)
	}
}

func TestCreateProject_MissingTitle_Returns400(t *testing.T) {
	router := newTestRouter(t)

	body := `{
		"description": "Descrição",
		"category": "Web",
		"tech": ["Go"],
		"features": ["CRUD"]
	}`
	req := httptest.NewRequest("POST", "/api/projects", strings.NewReader(body))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}

	var got errorResponse
	if err := json.NewDecoder(rec.Body).Decode(&got); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if got.Success {
		t.Error("expected success: false")
	}
	if !strings.Contains(got.Error, "title") {
		t.Errorf("expected error naming title, got %q", got.Error)
	}
}

func TestCreateProject_MissingFeatures_Returns400(t *testing.T) {
	router := newTestRouter(t)

	body := `{"title": "T", "description": "D", "category": "C", "tech": ["Go"]}`
	req := httptest.NewRequest("POST", "/api/projects", strings.NewReader(body))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}

	var got errorResponse
	if err := json.NewDecoder(rec.Body).Decode(&got); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if !strings.Contains(got.Error, "features") {
		t.Errorf("expected error naming features, got %q", got.Error)
	}
}

func TestCreateProject_MalformedBody_Returns500(t *testing.T) {
	router := newTestRouter(t)

	req := httptest.NewRequest("POST", "/api/projects", bytes.NewReader([]byte(`{truncated`)))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", rec.Code)
	}

	var got errorResponse
	if err := json.NewDecoder(rec.Body).Decode(&got); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if got.Success {
		t.Error("expected success: false")
	}
}

func TestGetProject_AnswersNull(t *testing.T) {
	router := newTestRouter(t)

	req := httptest.NewRequest("GET", "/api/projects/anything", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var got map[string]any
	if err := json.NewDecoder(rec.Body).Decode(&got); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if project, present := got["project"]; !present || project != nil {
		t.Errorf("expected project: null, got %v", got["project"])
	}
	if got["success"] != true {
		t.Error("expected success: true")
	}
}

func TestUpdateProject_EchoesPayloadWithPathID(t *testing.T) {
	router := newTestRouter(t)

	body := `{"title": "Atualizado"}`
	req := httptest.NewRequest("PUT", "/api/projects/abc", strings.NewReader(body))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var got struct {
		Project map[string]any `json:"project"`
		Success bool           `json:"success"`
	}
	if err := json.NewDecoder(rec.Body).Decode(&got); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if got.Project["id"] != "abc" {
		t.Errorf("expected id abc, got %v", got.Project["id"])
	}
	if got.Project["title"] != "Atualizado" {
		t.Errorf("expected echoed title, got %v", got.Project["title"])
	}
	if got.Project["updatedAt"] == "" || got.Project["updatedAt"] == nil {
		t.Error("expected updatedAt timestamp")
	}
}

func TestDeleteProject_Succeeds(t *testing.T) {
	router := newTestRouter(t)

	req := httptest.NewRequest("DELETE", "/api/projects/abc", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var got statusResponse
	if err := json.NewDecoder(rec.Body).Decode(&got); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if !got.Success || got.Message == "" {
		t.Errorf("expected success with message, got %+v", got)
	}
}
