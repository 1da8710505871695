package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/lifeline-labs/organ-backend-go/internal/models"
	"github.com/lifeline-labs/organ-backend-go/internal/service"
	"github.com/lifeline-labs/organ-backend-go/pkg/response"
)

// OrganHandler handles HTTP requests for organs and availability search
type OrganHandler struct {
	search *service.OrganSearchService
}

// NewOrganHandler creates a new organ handler
func NewOrganHandler(search *service.OrganSearchService) *OrganHandler {
	return &OrganHandler{search: search}
}

// List returns the organ catalog
// GET /api/v1/organs
func (h *OrganHandler) List(c *gin.Context) {
	organs, err := h.search.ListOrgans()
	if err != nil {
		response.InternalError(c, err.Error())
		return
	}
	response.Success(c, organs)
}

// Search finds available organs near the caller
// GET /api/v1/organs/search?lat=..&lon=..&organ=Kidney&blood_type=A%2B
func (h *OrganHandler) Search(c *gin.Context) {
	var req models.OrganSearchRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.BadRequest(c, "lat, lon and organ are required")
		return
	}

	results, err := h.search.SearchNearby(
		models.Coordinate{Latitude: req.Latitude, Longitude: req.Longitude},
		req.Organ, req.BloodType, req.MaxDistanceKm,
	)
	if err != nil {
		if errors.Is(err, models.ErrInvalidCoordinate) {
			response.BadRequest(c, err.Error())
			return
		}
		response.InternalError(c, err.Error())
		return
	}

	response.Success(c, gin.H{
		"results": results,
		"total":   len(results),
	})
}
