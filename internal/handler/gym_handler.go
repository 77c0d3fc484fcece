package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/gympoint/api/internal/domain"
	"github.com/gympoint/api/internal/dto"
	"github.com/gympoint/api/internal/service"
	"github.com/gympoint/api/pkg/response"
)

// GymHandler handles gym HTTP requests
type GymHandler struct {
	gymService service.GymService
}

// NewGymHandler creates a new GymHandler
func NewGymHandler(gymService service.GymService) *GymHandler {
	return &GymHandler{gymService: gymService}
}

// Create registers a new gym
// POST /api/v1/gyms
func (h *GymHandler) Create(c *gin.Context) {
	var req dto.CreateGymRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	if err := req.Validate(); err != nil {
		writeError(c, err)
		return
	}

	gym, err := h.gymService.Create(c.Request.Context(), &req)
	if err != nil {
		writeError(c, err)
		return
	}

	response.Created(c, dto.ToGymResponse(gym))
}

// Get retrieves a gym by ID
// GET /api/v1/gyms/:gymId
func (h *GymHandler) Get(c *gin.Context) {
	gym, err := h.gymService.Get(c.Request.Context(), c.Param("gymId"))
	if err != nil {
		writeError(c, err)
		return
	}

	response.Success(c, dto.ToGymResponse(gym))
}

// Search returns gyms whose title matches the query
// GET /api/v1/gyms/search?q=...&page=1
func (h *GymHandler) Search(c *gin.Context) {
	var query dto.SearchGymsQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	gyms, err := h.gymService.Search(c.Request.Context(), query.Query, query.Page)
	if err != nil {
		writeError(c, err)
		return
	}

	response.Success(c, dto.ToGymResponses(gyms))
}

// Nearby returns gyms close to the caller's position
// GET /api/v1/gyms/nearby?latitude=...&longitude=...
func (h *GymHandler) Nearby(c *gin.Context) {
	var query dto.NearbyGymsQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	if err := query.Validate(); err != nil {
		writeError(c, err)
		return
	}

	gyms, err := h.gymService.Nearby(c.Request.Context(), domain.Coordinate{
		Latitude:  query.Latitude,
		Longitude: query.Longitude,
	})
	if err != nil {
		writeError(c, err)
		return
	}

	response.Success(c, dto.ToGymResponses(gyms))
}
