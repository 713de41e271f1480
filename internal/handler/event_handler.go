package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ajs-hub/placement-api/internal/models"
	"github.com/ajs-hub/placement-api/internal/service"
	appErrors "github.com/ajs-hub/placement-api/pkg/errors"
	"github.com/ajs-hub/placement-api/pkg/response"
)

// EventHandler exposes department events and registrations.
type EventHandler struct {
	events *service.EventService
}

// NewEventHandler constructs EventHandler.
func NewEventHandler(events *service.EventService) *EventHandler {
	return &EventHandler{events: events}
}

// List godoc
// @Summary List department events
// @Tags Events
// @Produce json
// @Param status query string false "Upcoming, Ongoing or Completed"
// @Param type query string false "Workshop, Seminar, Hackathon, Training or Webinar"
// @Param active query bool false "Only active events"
// @Param page query int false "Page"
// @Param limit query int false "Page size"
// @Success 200 {object} response.Envelope
// @Router /events [get]
func (h *EventHandler) List(c *gin.Context) {
	filter := models.EventFilter{
		Status:     models.EventStatus(c.Query("status")),
		Type:       models.EventType(c.Query("type")),
		ActiveOnly: c.Query("active") == "true",
	}
	filter.Page, filter.PageSize = pageParams(c)

	items, pagination, err := h.events.List(c.Request.Context(), filter)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, items, pagination)
}

// Get godoc
// @Summary Get department event with registrations
// @Tags Events
// @Produce json
// @Param id path string true "Event ID"
// @Success 200 {object} response.Envelope
// @Router /events/{id} [get]
func (h *EventHandler) Get(c *gin.Context) {
	event, err := h.events.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, event, nil)
}

// Create godoc
// @Summary Create department event
// @Tags Events
// @Accept json
// @Produce json
// @Param payload body models.EventRequest true "Event payload"
// @Success 201 {object} response.Envelope
// @Router /events [post]
func (h *EventHandler) Create(c *gin.Context) {
	var req models.EventRequest
	if !bindJSON(c, &req) {
		return
	}
	event, err := h.events.Create(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, event)
}

// Update godoc
// @Summary Update department event
// @Tags Events
// @Accept json
// @Produce json
// @Param id path string true "Event ID"
// @Param payload body models.EventRequest true "Event payload"
// @Success 200 {object} response.Envelope
// @Router /events/{id} [put]
func (h *EventHandler) Update(c *gin.Context) {
	var req models.EventRequest
	if !bindJSON(c, &req) {
		return
	}
	event, err := h.events.Update(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, event, nil)
}

// Delete godoc
// @Summary Delete department event
// @Tags Events
// @Param id path string true "Event ID"
// @Success 204
// @Router /events/{id} [delete]
func (h *EventHandler) Delete(c *gin.Context) {
	if err := h.events.Delete(c.Request.Context(), c.Param("id")); err != nil {
		response.Error(c, err)
		return
	}
	response.NoContent(c)
}

// Register godoc
// @Summary Register a student for an event
// @Description Students register themselves; admins name the student in the body.
// @Tags Events
// @Accept json
// @Produce json
// @Param id path string true "Event ID"
// @Param payload body models.EnrollRequest false "Student to register"
// @Success 201 {object} response.Envelope
// @Router /events/{id}/register [post]
func (h *EventHandler) Register(c *gin.Context) {
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
			response.Error(c, appErrors.Clone(appErrors.ErrForbidden, "students can only register themselves"))
			return
		}
		req.StudentID = claims.StudentID
	}
	registration, err := h.events.Register(c.Request.Context(), c.Param("id"), req.StudentID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, registration)
}

// MarkAttendance godoc
// @Summary Record attendance for a registered student
// @Tags Events
// @Accept json
// @Param id path string true "Event ID"
// @Param studentId path string true "Student ID"
// @Param payload body models.RegistrationStatusRequest true "Attendance status"
// @Success 204
// @Router /events/{id}/registrations/{studentId} [put]
func (h *EventHandler) MarkAttendance(c *gin.Context) {
	var req models.RegistrationStatusRequest
	if !bindJSON(c, &req) {
		return
	}
	if err := h.events.MarkAttendance(c.Request.Context(), c.Param("id"), c.Param("studentId"), req); err != nil {
		response.Error(c, err)
		return
	}
	response.NoContent(c)
}
