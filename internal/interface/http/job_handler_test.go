package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	jobapp "github.com/hirestack/jobboard-api/internal/application"
	"github.com/hirestack/jobboard-api/internal/domain/entity"
)

func newJobRouter(repo *fakeJobRepo) *gin.Engine {
	svc := &jobapp.JobService{Repo: repo, Logger: logrus.New()}
	h := NewJobHandler(svc, logrus.New())

	r := gin.New()
	api := r.Group("/api")
	api.POST("/jobs", h.Create)
	api.GET("/jobs", h.List)
	api.GET("/jobs/featured", h.ListFeatured)
	api.GET("/jobs/search", h.Search)
	api.GET("/jobs/:id", h.Get)
	api.PATCH("/jobs/:id", h.Patch)
	api.DELETE("/jobs/:id", h.Delete)
	return r
}

func doJSON(r *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		_ = json.NewEncoder(&buf).Encode(body)
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func validJobPayload() map[string]any {
	return map[string]any{
		"title":        "Eng",
		"description":  "d",
		"company":      "ACME",
		"salary":       "100k",
		"location":     "NY",
		"requirements": []string{"Go"},
	}
}

func TestCreateJob(t *testing.T) {
	repo := &fakeJobRepo{}
	r := newJobRouter(repo)

	w := doJSON(r, http.MethodPost, "/api/jobs", validJobPayload())
	require.Equal(t, http.StatusCreated, w.Code)

	var resp struct {
		Message string     `json:"message"`
		Job     entity.Job `json:"job"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "Job created successfully", resp.Message)
	assert.NotEmpty(t, resp.Job.ID)
	assert.False(t, resp.Job.Featured)
	assert.False(t, resp.Job.CreatedAt.IsZero())
	assert.Equal(t, []string{"Go"}, resp.Job.Requirements)
}

func TestCreateJobMissingField(t *testing.T) {
	repo := &fakeJobRepo{}
	r := newJobRouter(repo)

	for _, field := range []string{"title", "description", "company", "salary", "location", "requirements"} {
		payload := validJobPayload()
		delete(payload, field)
		w := doJSON(r, http.MethodPost, "/api/jobs", payload)
		assert.Equal(t, http.StatusBadRequest, w.Code, "missing %s", field)
	}
	// Nothing reached storage
	assert.Empty(t, repo.jobs)
}

func TestListJobsPagination(t *testing.T) {
	repo := &fakeJobRepo{}
	for i := 0; i < 25; i++ {
		_ = repo.Create(context.Background(), &entity.Job{
			Title: fmt.Sprintf("Job %d", i), Description: "d", Company: "ACME",
			Location: "Remote", Requirements: []string{},
		})
	}
	r := newJobRouter(repo)

	w := doJSON(r, http.MethodGet, "/api/jobs?page=2&limit=10", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var page jobapp.JobPage
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &page))
	assert.Len(t, page.Jobs, 10)
	assert.Equal(t, 2, page.CurrentPage)
	assert.Equal(t, 3, page.TotalPages)
	assert.Equal(t, 25, page.TotalJobs)
	// Insertion order: the second page starts at the eleventh job
	assert.Equal(t, "Job 10", page.Jobs[0].Title)
}

func TestListJobsDefaults(t *testing.T) {
	repo := &fakeJobRepo{}
	for i := 0; i < 3; i++ {
		_ = repo.Create(context.Background(), &entity.Job{Title: "t", Description: "d", Company: "c"})
	}
	r := newJobRouter(repo)

	w := doJSON(r, http.MethodGet, "/api/jobs?page=bogus&limit=-1", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var page jobapp.JobPage
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &page))
	assert.Equal(t, 1, page.CurrentPage)
	assert.Equal(t, 1, page.TotalPages)
	assert.Equal(t, 3, page.TotalJobs)
}

func TestGetJobRoundTrip(t *testing.T) {
	repo := &fakeJobRepo{}
	r := newJobRouter(repo)

	w := doJSON(r, http.MethodPost, "/api/jobs", validJobPayload())
	require.Equal(t, http.StatusCreated, w.Code)
	var created struct {
		Job entity.Job `json:"job"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))

	w = doJSON(r, http.MethodGet, "/api/jobs/"+created.Job.ID, nil)
	require.Equal(t, http.StatusOK, w.Code)
	var got entity.Job
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	assert.Equal(t, "Eng", got.Title)
	assert.Equal(t, "d", got.Description)
	assert.Equal(t, "ACME", got.Company)
	assert.Equal(t, "100k", got.Salary)
	assert.Equal(t, "NY", got.Location)
	assert.Equal(t, []string{"Go"}, got.Requirements)
}

func TestGetJobNotFound(t *testing.T) {
	r := newJobRouter(&fakeJobRepo{})
	w := doJSON(r, http.MethodGet, "/api/jobs/nope", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "Job not found")
}

func TestGetJobRepoUnavailable(t *testing.T) {
	r := newJobRouter(&fakeJobRepo{failWith: errors.New("connection refused")})
	w := doJSON(r, http.MethodGet, "/api/jobs/job-1", nil)
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), "error fetching job")
}

func TestPatchJobPartial(t *testing.T) {
	repo := &fakeJobRepo{}
	r := newJobRouter(repo)

	w := doJSON(r, http.MethodPost, "/api/jobs", validJobPayload())
	var created struct {
		Job entity.Job `json:"job"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))

	w = doJSON(r, http.MethodPatch, "/api/jobs/"+created.Job.ID, map[string]any{
		"salary":   "120k",
		"featured": true,
	})
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Job entity.Job `json:"job"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "120k", resp.Job.Salary)
	assert.True(t, resp.Job.Featured)
	// Untouched fields survive
	assert.Equal(t, "Eng", resp.Job.Title)
	assert.Equal(t, "NY", resp.Job.Location)
}

func TestPatchJobNotFound(t *testing.T) {
	r := newJobRouter(&fakeJobRepo{})
	w := doJSON(r, http.MethodPatch, "/api/jobs/nope", map[string]any{"title": "x"})
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestDeleteJob(t *testing.T) {
	repo := &fakeJobRepo{}
	r := newJobRouter(repo)

	w := doJSON(r, http.MethodPost, "/api/jobs", validJobPayload())
	var created struct {
		Job entity.Job `json:"job"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))

	w = doJSON(r, http.MethodDelete, "/api/jobs/"+created.Job.ID, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Job deleted successfully")

	// Deleting a nonexistent id is 404, not 500
	w = doJSON(r, http.MethodDelete, "/api/jobs/"+created.Job.ID, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestListFeatured(t *testing.T) {
	repo := &fakeJobRepo{}
	_ = repo.Create(context.Background(), &entity.Job{Title: "a", Description: "d", Company: "c"})
	featured := &entity.Job{Title: "b", Description: "d", Company: "c", Featured: true}
	_ = repo.Create(context.Background(), featured)
	r := newJobRouter(repo)

	w := doJSON(r, http.MethodGet, "/api/jobs/featured", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var jobs []entity.Job
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &jobs))
	require.Len(t, jobs, 1)
	assert.Equal(t, "b", jobs[0].Title)
}

func TestSearchJobs(t *testing.T) {
	r := newJobRouter(&fakeJobRepo{})

	// q is mandatory
	w := doJSON(r, http.MethodGet, "/api/jobs/search", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	// Without a configured Elasticsearch client search degrades to empty
	w = doJSON(r, http.MethodGet, "/api/jobs/search?q=go", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"jobs":[]}`, w.Body.String())
}
