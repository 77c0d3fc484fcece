package handler

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/gympoint/api/internal/dto"
	"github.com/gympoint/api/internal/middleware"
	"github.com/gympoint/api/internal/service"
	"github.com/gympoint/api/pkg/response"
)

// CheckInHandler handles check-in HTTP requests
type CheckInHandler struct {
	checkInService service.CheckInService
}

// NewCheckInHandler creates a new CheckInHandler
func NewCheckInHandler(checkInService service.CheckInService) *CheckInHandler {
	return &CheckInHandler{checkInService: checkInService}
}

// Create admits a check-in at a gym
// POST /api/v1/gyms/:gymId/check-ins
func (h *CheckInHandler) Create(c *gin.Context) {
	var req dto.CreateCheckInRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	req.UserID = c.GetString(middleware.UserIDKey)
	req.GymID = c.Param("gymId")
	if err := req.Validate(); err != nil {
		writeError(c, err)
		return
	}

	checkIn, err := h.checkInService.Create(c.Request.Context(), &req)
	if err != nil {
		writeError(c, err)
		return
	}

	response.Created(c, dto.ToCheckInResponse(checkIn))
}

// Validate marks a check-in as validated
// PATCH /api/v1/check-ins/:checkInId/validate
func (h *CheckInHandler) Validate(c *gin.Context) {
	req := dto.ValidateCheckInRequest{CheckInID: c.Param("checkInId")}
	if err := req.Validate(); err != nil {
		writeError(c, err)
		return
	}

	checkIn, err := h.checkInService.Validate(c.Request.Context(), req.CheckInID)
	if err != nil {
		writeError(c, err)
		return
	}

	response.Success(c, dto.ToCheckInResponse(checkIn))
}

// History lists the authenticated user's check-ins
// GET /api/v1/check-ins/history?page=1
func (h *CheckInHandler) History(c *gin.Context) {
	page, err := strconv.Atoi(c.DefaultQuery("page", "1"))
	if err != nil || page < 1 {
		page = 1
	}

	checkIns, err := h.checkInService.History(c.Request.Context(), c.GetString(middleware.UserIDKey), page)
	if err != nil {
		writeError(c, err)
		return
	}

	response.Success(c, dto.ToCheckInResponses(checkIns))
}

// Metrics reports the authenticated user's total check-in count
// GET /api/v1/check-ins/metrics
func (h *CheckInHandler) Metrics(c *gin.Context) {
	count, err := h.checkInService.Metrics(c.Request.Context(), c.GetString(middleware.UserIDKey))
	if err != nil {
		writeError(c, err)
		return
	}

	response.Success(c, dto.UserMetricsResponse{CheckInsCount: count})
}
