package handler

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/ajs-hub/placement-api/internal/models"
	"github.com/ajs-hub/placement-api/internal/service"
	appErrors "github.com/ajs-hub/placement-api/pkg/errors"
	"github.com/ajs-hub/placement-api/pkg/response"
)

// JobHandler exposes job posting endpoints.
type JobHandler struct {
	jobs *service.JobService
}

// NewJobHandler constructs JobHandler.
func NewJobHandler(jobs *service.JobService) *JobHandler {
	return &JobHandler{jobs: jobs}
}

// List godoc
// @Summary List jobs
// @Tags Jobs
// @Produce json
// @Param search query string false "Search by title or company"
// @Param department query string false "Filter by department"
// @Param page query int false "Page"
// @Param limit query int false "Page size"
// @Success 200 {object} response.Envelope
// @Router /jobs [get]
func (h *JobHandler) List(c *gin.Context) {
	filter := models.JobFilter{
		Search:     strings.TrimSpace(c.Query("search")),
		Department: strings.TrimSpace(c.Query("department")),
	}
	filter.Page, filter.PageSize = pageParams(c)

	jobs, pagination, err := h.jobs.List(c.Request.Context(), filter)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, jobs, pagination)
}

// Get godoc
// @Summary Get job
// @Tags Jobs
// @Produce json
// @Param id path string true "Job ID"
// @Success 200 {object} response.Envelope
// @Router /jobs/{id} [get]
func (h *JobHandler) Get(c *gin.Context) {
	job, err := h.jobs.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, job, nil)
}

// Create godoc
// @Summary Post job
// @Tags Jobs
// @Accept json
// @Produce json
// @Param payload body models.JobRequest true "Job payload"
// @Success 201 {object} response.Envelope
// @Router /jobs [post]
func (h *JobHandler) Create(c *gin.Context) {
	var req models.JobRequest
	if !bindJSON(c, &req) {
		return
	}
	job, err := h.jobs.Create(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, job)
}

// CheckStudent godoc
// @Summary Check a student against job requirements
// @Tags Jobs
// @Produce json
// @Param id path string true "Job ID"
// @Param studentId path string true "Student ID"
// @Success 200 {object} response.Envelope
// @Router /jobs/{id}/eligibility/{studentId} [get]
func (h *JobHandler) CheckStudent(c *gin.Context) {
	studentID := c.Param("studentId")
	if claims := claimsFromContext(c); claims != nil && claims.Role == models.RoleStudent && claims.StudentID != studentID {
		response.Error(c, appErrors.ErrForbidden)
		return
	}
	check, err := h.jobs.CheckStudent(c.Request.Context(), c.Param("id"), studentID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, check, nil)
}

// Enroll godoc
// @Summary Enroll a student in a job
// @Description Students enroll themselves; admins name the student in the body.
// @Tags Jobs
// @Accept json
// @Produce json
// @Param id path string true "Job ID"
// @Param payload body models.EnrollRequest false "Student to enroll"
// @Success 200 {object} response.Envelope
// @Router /jobs/{id}/enroll [post]
func (h *JobHandler) Enroll(c *gin.Context) {
	var req models.EnrollRequest
	if c.Request.ContentLength > 0 && !bindJSON(c, &req) {
		return
	}
	claims := claimsFromContext(c)
	if claims == nil {
		response.Error(c, appErrors.ErrUnauthorized)
		return
	}
	if claims.Role == models.RoleStudent {
		if req.StudentID != "" && req.StudentID != claims.StudentID {
			response.Error(c, appErrors.Clone(appErrors.ErrForbidden, "students can only enroll themselves"))
			return
		}
		req.StudentID = claims.StudentID
	}
	enrollment, err := h.jobs.Enroll(c.Request.Context(), c.Param("id"), req.StudentID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, enrollment, nil)
}
