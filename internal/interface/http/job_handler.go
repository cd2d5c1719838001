package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	jobapp "github.com/hirestack/jobboard-api/internal/application"
	"github.com/hirestack/jobboard-api/internal/domain/entity"
	"github.com/hirestack/jobboard-api/internal/domain/repository"
	"github.com/hirestack/jobboard-api/pkg/response"
	"github.com/hirestack/jobboard-api/pkg/validation"
)

type JobHandler struct {
	Svc    *jobapp.JobService
	Logger *logrus.Logger
}

func NewJobHandler(svc *jobapp.JobService, logger *logrus.Logger) *JobHandler {
	return &JobHandler{Svc: svc, Logger: logger}
}

type createJobRequest struct {
	Title        string   `json:"title" binding:"required"`
	Description  string   `json:"description" binding:"required"`
	Company      string   `json:"company" binding:"required"`
	Salary       string   `json:"salary" binding:"required"`
	Location     string   `json:"location" binding:"required"`
	Requirements []string `json:"requirements" binding:"required"`
}

type patchJobRequest struct {
	Title        *string   `json:"title"`
	Description  *string   `json:"description"`
	Company      *string   `json:"company"`
	Salary       *string   `json:"salary"`
	Location     *string   `json:"location"`
	Requirements *[]string `json:"requirements"`
	Featured     *bool     `json:"featured"`
}

// Create POST /api/jobs
func (h *JobHandler) Create(c *gin.Context) {
	var req createJobRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "all fields are required", validation.ToDetails(err))
		return
	}
	j := &entity.Job{
		Title:        req.Title,
		Description:  req.Description,
		Company:      req.Company,
		Salary:       req.Salary,
		Location:     req.Location,
		Requirements: req.Requirements,
	}
	if err := h.Svc.Create(c.Request.Context(), j); err != nil {
		h.Logger.WithError(err).Error("error creating job")
		response.Error(c, http.StatusInternalServerError, "error creating job", nil)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "Job created successfully", "job": j})
}

// List GET /api/jobs?page=&limit=
func (h *JobHandler) List(c *gin.Context) {
	page := intQuery(c, "page", 1)
	limit := intQuery(c, "limit", jobapp.DefaultPageSize)

	res, err := h.Svc.List(c.Request.Context(), page, limit)
	if err != nil {
		h.Logger.WithError(err).Error("error fetching jobs")
		response.Error(c, http.StatusInternalServerError, "error fetching jobs", nil)
		return
	}
	c.JSON(http.StatusOK, res)
}

// ListFeatured GET /api/jobs/featured
func (h *JobHandler) ListFeatured(c *gin.Context) {
	jobs, err := h.Svc.ListFeatured(c.Request.Context())
	if err != nil {
		h.Logger.WithError(err).Error("error fetching featured jobs")
		response.Error(c, http.StatusInternalServerError, "error fetching featured jobs", nil)
		return
	}
	c.JSON(http.StatusOK, jobs)
}

// Search GET /api/jobs/search?q=&limit=
func (h *JobHandler) Search(c *gin.Context) {
	q := c.Query("q")
	if q == "" {
		response.Error(c, http.StatusBadRequest, "q is required", nil)
		return
	}
	hits, err := h.Svc.Search(c.Request.Context(), q, intQuery(c, "limit", 10))
	if err != nil {
		h.Logger.WithError(err).Error("job search failed")
		response.Error(c, http.StatusInternalServerError, "error searching jobs", nil)
		return
	}
	c.JSON(http.StatusOK, gin.H{"jobs": hits})
}

// Get GET /api/jobs/:id
func (h *JobHandler) Get(c *gin.Context) {
	j, err := h.Svc.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			response.Error(c, http.StatusNotFound, "Job not found", nil)
			return
		}
		h.Logger.WithError(err).WithField("job_id", c.Param("id")).Error("job fetch failed")
		response.Error(c, http.StatusInternalServerError, "error fetching job", nil)
		return
	}
	c.JSON(http.StatusOK, j)
}

// Patch PATCH /api/jobs/:id — partial update, only provided fields change.
func (h *JobHandler) Patch(c *gin.Context) {
	var req patchJobRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}
	j, err := h.Svc.Patch(c.Request.Context(), c.Param("id"), entity.JobPatch{
		Title:        req.Title,
		Description:  req.Description,
		Company:      req.Company,
		Salary:       req.Salary,
		Location:     req.Location,
		Requirements: req.Requirements,
		Featured:     req.Featured,
	})
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			response.Error(c, http.StatusNotFound, "Job not found", nil)
			return
		}
		h.Logger.WithError(err).Error("error updating job")
		response.Error(c, http.StatusInternalServerError, "error updating job", nil)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Job updated successfully", "job": j})
}

// Delete DELETE /api/jobs/:id
func (h *JobHandler) Delete(c *gin.Context) {
	if err := h.Svc.Delete(c.Request.Context(), c.Param("id")); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			response.Error(c, http.StatusNotFound, "Job not found", nil)
			return
		}
		h.Logger.WithError(err).Error("error deleting job")
		response.Error(c, http.StatusInternalServerError, "error deleting job", nil)
		return
	}
	response.Message(c, http.StatusOK, "Job deleted successfully")
}

func intQuery(c *gin.Context, key string, def int) int {
	v := c.Query(key)
	if v == "" {
		return def
	}
	i, err := strconv.Atoi(v)
	if err != nil || i < 1 {
		return def
	}
	return i
}
