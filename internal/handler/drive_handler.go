package handler

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/ajs-hub/placement-api/internal/models"
	"github.com/ajs-hub/placement-api/internal/service"
	"github.com/ajs-hub/placement-api/pkg/response"
)

// DriveHandler exposes campus drive endpoints.
type DriveHandler struct {
	drives *service.DriveService
}

// NewDriveHandler constructs DriveHandler.
func NewDriveHandler(drives *service.DriveService) *DriveHandler {
	return &DriveHandler{drives: drives}
}

// List godoc
// @Summary List drives
// @Tags Drives
// @Produce json
// @Param search query string false "Search by company or role"
// @Param status query string false "Announced, Open, Closed or Completed"
// @Param page query int false "Page"
// @Param limit query int false "Page size"
// @Success 200 {object} response.Envelope
// @Router /drives [get]
func (h *DriveHandler) List(c *gin.Context) {
	filter := models.DriveFilter{
		Search: strings.TrimSpace(c.Query("search")),
		Status: models.DriveStatus(strings.TrimSpace(c.Query("status"))),
	}
	filter.Page, filter.PageSize = pageParams(c)

	drives, pagination, err := h.drives.List(c.Request.Context(), filter)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, drives, pagination)
}

// Get godoc
// @Summary Get drive
// @Tags Drives
// @Produce json
// @Param id path string true "Drive ID"
// @Success 200 {object} response.Envelope
// @Router /drives/{id} [get]
func (h *DriveHandler) Get(c *gin.Context) {
	drive, err := h.drives.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, drive, nil)
}

// Create godoc
// @Summary Announce drive
// @Tags Drives
// @Accept json
// @Produce json
// @Param payload body models.DriveRequest true "Drive payload"
// @Success 201 {object} response.Envelope
// @Router /drives [post]
func (h *DriveHandler) Create(c *gin.Context) {
	var req models.DriveRequest
	if !bindJSON(c, &req) {
		return
	}
	drive, err := h.drives.Create(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, drive)
}

// Update godoc
// @Summary Update drive
// @Tags Drives
// @Accept json
// @Produce json
// @Param id path string true "Drive ID"
// @Param payload body models.DriveRequest true "Drive payload"
// @Success 200 {object} response.Envelope
// @Router /drives/{id} [put]
func (h *DriveHandler) Update(c *gin.Context) {
	var req models.DriveRequest
	if !bindJSON(c, &req) {
		return
	}
	drive, err := h.drives.Update(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, drive, nil)
}

// Delete godoc
// @Summary Delete drive
// @Tags Drives
// @Param id path string true "Drive ID"
// @Success 204
// @Router /drives/{id} [delete]
func (h *DriveHandler) Delete(c *gin.Context) {
	if err := h.drives.Delete(c.Request.Context(), c.Param("id")); err != nil {
		response.Error(c, err)
		return
	}
	response.NoContent(c)
}

// Eligibility godoc
// @Summary Evaluate drive criteria for every student
// @Tags Drives
// @Produce json
// @Param id path string true "Drive ID"
// @Param only_eligible query bool false "Return eligible students only"
// @Success 200 {object} response.Envelope
// @Router /drives/{id}/eligibility [get]
func (h *DriveHandler) Eligibility(c *gin.Context) {
	listing, err := h.drives.Eligibility(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}
	if c.Query("only_eligible") == "true" {
		eligible := make([]models.EligibilityResult, 0, listing.Eligible)
		for _, r := range listing.Results {
			if r.Eligible {
				eligible = append(eligible, r)
			}
		}
		listing.Results = eligible
	}
	response.JSON(c, http.StatusOK, listing, nil, map[string]interface{}{
		"total":    listing.Total,
		"eligible": listing.Eligible,
	})
}

// Export godoc
// @Summary Download the drive eligibility listing
// @Tags Drives
// @Produce octet-stream
// @Param id path string true "Drive ID"
// @Param format query string false "csv, pdf or xlsx" default(csv)
// @Success 200 {file} file
// @Router /drives/{id}/eligibility/export [get]
func (h *DriveHandler) Export(c *gin.Context) {
	file, err := h.drives.Export(c.Request.Context(), c.Param("id"), c.DefaultQuery("format", service.ExportFormatCSV))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Attachment(c, file.Filename, file.ContentType, file.Payload)
}
