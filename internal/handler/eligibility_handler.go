package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ajs-hub/placement-api/internal/models"
	"github.com/ajs-hub/placement-api/internal/service"
	"github.com/ajs-hub/placement-api/pkg/response"
)

// EligibilityHandler runs ad-hoc criteria checks.
type EligibilityHandler struct {
	service *service.EligibilityService
}

// NewEligibilityHandler constructs EligibilityHandler.
func NewEligibilityHandler(svc *service.EligibilityService) *EligibilityHandler {
	return &EligibilityHandler{service: svc}
}

// Check godoc
// @Summary Check criteria against every student
// @Tags Eligibility
// @Accept json
// @Produce json
// @Param payload body models.EligibilityCheckRequest true "Criteria"
// @Success 200 {object} response.Envelope
// @Router /eligibility/check [post]
func (h *EligibilityHandler) Check(c *gin.Context) {
	var req models.EligibilityCheckRequest
	if !bindJSON(c, &req) {
		return
	}
	results, total, err := h.service.Check(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, results, nil, map[string]interface{}{
		"total":    total,
		"returned": len(results),
	})
}
