package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/lifeline-labs/organ-backend-go/internal/models"
	"github.com/lifeline-labs/organ-backend-go/internal/repository"
	"github.com/lifeline-labs/organ-backend-go/internal/service"
	"github.com/lifeline-labs/organ-backend-go/pkg/response"
)

// RoutingHandler handles HTTP requests for directions and route ranking
type RoutingHandler struct {
	routing   *service.RoutingService
	hospitals *repository.HospitalRepository
}

// NewRoutingHandler creates a new routing handler
func NewRoutingHandler(routing *service.RoutingService, hospitals *repository.HospitalRepository) *RoutingHandler {
	return &RoutingHandler{routing: routing, hospitals: hospitals}
}

// Directions returns a synthesized route with step-by-step instructions
// POST /api/v1/routes/directions
func (h *RoutingHandler) Directions(c *gin.Context) {
	var req models.RouteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "start and end coordinates are required")
		return
	}

	directions, err := h.routing.DirectionsToHospital(*req.Start, *req.End, req.TransportMode)
	if err != nil {
		if errors.Is(err, models.ErrInvalidCoordinate) {
			response.BadRequest(c, err.Error())
			return
		}
		response.InternalError(c, err.Error())
		return
	}

	response.Success(c, directions)
}

// Emergency returns a route re-timed for emergency transport
// POST /api/v1/routes/emergency
func (h *RoutingHandler) Emergency(c *gin.Context) {
	var req models.RouteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "start and end coordinates are required")
		return
	}

	route, err := h.routing.EmergencyRoute(*req.Start, *req.End)
	if err != nil {
		if errors.Is(err, models.ErrInvalidCoordinate) {
			response.BadRequest(c, err.Error())
			return
		}
		response.InternalError(c, err.Error())
		return
	}

	response.Success(c, route)
}

// Rank orders routes to several hospitals by priority score
// POST /api/v1/routes/rank
func (h *RoutingHandler) Rank(c *gin.Context) {
	var req models.RankRoutesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "start and hospital_ids are required")
		return
	}

	hospitals, err := h.hospitals.GetByIDs(req.HospitalIDs)
	if err != nil {
		response.InternalError(c, err.Error())
		return
	}

	ranked, err := h.routing.RankRoutes(*req.Start, hospitals)
	if err != nil {
		if errors.Is(err, models.ErrInvalidCoordinate) {
			response.BadRequest(c, err.Error())
			return
		}
		response.InternalError(c, err.Error())
		return
	}

	response.Success(c, gin.H{
		"routes": ranked,
		"total":  len(ranked),
	})
}
