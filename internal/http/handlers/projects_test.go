package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/solodev/soloquest/internal/domain/project"
	"github.com/solodev/soloquest/internal/http/handlers"
)

type fakeProjectService struct {
	projects  []project.Project
	failList  bool
	created   *project.CreateProjectRequest
	deletedID string
}

func (f *fakeProjectService) GetProjects(ctx context.Context) ([]project.Project, error) {
	if f.failList {
		return nil, errors.New("boom")
	}
	return f.projects, nil
}

func (f *fakeProjectService) GetProject(ctx context.Context, id string) (project.Project, error) {
	for _, p := range f.projects {
		if p.ID == id {
			return p, nil
		}
	}
	return project.Project{}, project.ErrNotFound
}

func (f *fakeProjectService) CreateProject(ctx context.Context, req project.CreateProjectRequest) (project.Project, error) {
	f.created = &req
	return project.Project{
		ID:       "new-id",
		Name:     req.Name,
		Status:   req.Status,
		Priority: req.Priority,
		Tasks:    []project.Task{},
	}, nil
}

func (f *fakeProjectService) UpdateProject(ctx context.Context, id string, req project.UpdateProjectRequest) (project.Project, error) {
	p, err := f.GetProject(ctx, id)
	if err != nil {
		return project.Project{}, err
	}
	p.ApplyUpdate(req, time.Now().UTC())
	return p, nil
}

func (f *fakeProjectService) DeleteProject(ctx context.Context, id string) (bool, error) {
	f.deletedID = id
	for _, p := range f.projects {
		if p.ID == id {
			return true, nil
		}
	}
	return false, nil
}

func projectsRouter(svc *fakeProjectService) *gin.Engine {
	gin.SetMode(gin.TestMode)

	h := handlers.NewProjectsHandler(svc)

	r := gin.New()
	r.GET("/projects", h.ListProjects)
	r.GET("/projects/:id", h.GetProject)
	r.POST("/projects", h.CreateProject)
	r.PUT("/projects/:id", h.UpdateProject)
	r.DELETE("/projects/:id", h.DeleteProject)
	return r
}

func TestListProjectsEnvelopeAndETag(t *testing.T) {
	svc := &fakeProjectService{projects: []project.Project{
		{ID: "a", Name: "A", Tasks: []project.Task{}},
		{ID: "b", Name: "B", Tasks: []project.Task{}},
	}}
	r := projectsRouter(svc)

	req := httptest.NewRequest(http.MethodGet, "/projects", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("got status %d, body=%s", w.Code, w.Body.String())
	}

	etag := w.Header().Get("ETag")
	if etag == "" {
		t.Fatal("missing ETag header")
	}

	var resp struct {
		Items []project.Project `json:"items"`
		Count int               `json:"count"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if resp.Count != 2 || len(resp.Items) != 2 {
		t.Fatalf("count=%d items=%d", resp.Count, len(resp.Items))
	}

	// a matching If-None-Match short-circuits with 304 and no body
	req = httptest.NewRequest(http.MethodGet, "/projects", nil)
	req.Header.Set("If-None-Match", etag)
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusNotModified {
		t.Fatalf("got status %d, want 304", w.Code)
	}
	if w.Body.Len() != 0 {
		t.Fatalf("304 carried a body: %s", w.Body.String())
	}
}

func TestListProjectsFailure(t *testing.T) {
	r := projectsRouter(&fakeProjectService{failList: true})

	req := httptest.NewRequest(http.MethodGet, "/projects", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusInternalServerError {
		t.Fatalf("got status %d, want 500", w.Code)
	}
}

func TestGetProjectNotFound(t *testing.T) {
	r := projectsRouter(&fakeProjectService{})

	req := httptest.NewRequest(http.MethodGet, "/projects/missing", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusNotFound {
		t.Fatalf("got status %d, want 404", w.Code)
	}

	var resp struct {
		Error struct {
			Code string `json:"code"`
		} `json:"error"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if resp.Error.Code != "not_found" {
		t.Fatalf("code %q", resp.Error.Code)
	}
}

func TestCreateProjectReturns201(t *testing.T) {
	svc := &fakeProjectService{}
	r := projectsRouter(svc)

	body := `{"name":"Side Project","status":"planning","priority":"high"}`
	req := httptest.NewRequest(http.MethodPost, "/projects", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusCreated {
		t.Fatalf("got status %d, body=%s", w.Code, w.Body.String())
	}
	if svc.created == nil || svc.created.Name != "Side Project" {
		t.Fatalf("service saw %+v", svc.created)
	}

	var created project.Project
	if err := json.Unmarshal(w.Body.Bytes(), &created); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if created.ID != "new-id" || created.Priority != project.PriorityHigh {
		t.Fatalf("unexpected response: %+v", created)
	}
}

func TestUpdateProjectPatchSemantics(t *testing.T) {
	svc := &fakeProjectService{projects: []project.Project{
		{ID: "a", Name: "Before", Status: project.StatusPlanning, Priority: project.PriorityLow},
	}}
	r := projectsRouter(svc)

	// only status in the body; name must survive
	req := httptest.NewRequest(http.MethodPut, "/projects/a", bytes.NewBufferString(`{"status":"active"}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("got status %d, body=%s", w.Code, w.Body.String())
	}

	var updated project.Project
	if err := json.Unmarshal(w.Body.Bytes(), &updated); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if updated.Name != "Before" {
		t.Fatalf("name clobbered: %q", updated.Name)
	}
	if updated.Status != project.StatusActive {
		t.Fatalf("status %q", updated.Status)
	}
}

func TestDeleteProject(t *testing.T) {
	svc := &fakeProjectService{projects: []project.Project{{ID: "a"}}}
	r := projectsRouter(svc)

	req := httptest.NewRequest(http.MethodDelete, "/projects/a", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusNoContent {
		t.Fatalf("got status %d, want 204", w.Code)
	}
	if svc.deletedID != "a" {
		t.Fatalf("service saw id %q", svc.deletedID)
	}

	req = httptest.NewRequest(http.MethodDelete, "/projects/ghost", nil)
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusNotFound {
		t.Fatalf("got status %d, want 404", w.Code)
	}
}
