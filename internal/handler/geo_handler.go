package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/lifeline-labs/organ-backend-go/internal/models"
	"github.com/lifeline-labs/organ-backend-go/internal/service"
	"github.com/lifeline-labs/organ-backend-go/pkg/response"
)

// GeoHandler handles HTTP requests for distance and geocoding
type GeoHandler struct {
	geo *service.GeolocationService
}

// NewGeoHandler creates a new geo handler
func NewGeoHandler(geo *service.GeolocationService) *GeoHandler {
	return &GeoHandler{geo: geo}
}

// Distance computes the great-circle distance between two points
// GET /api/v1/distance?lat1=..&lon1=..&lat2=..&lon2=..
func (h *GeoHandler) Distance(c *gin.Context) {
	var req models.DistanceRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.BadRequest(c, "lat1, lon1, lat2 and lon2 must be numeric")
		return
	}

	result, err := h.geo.CalculateDistance(
		models.Coordinate{Latitude: req.Lat1, Longitude: req.Lon1},
		models.Coordinate{Latitude: req.Lat2, Longitude: req.Lon2},
	)
	if err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	response.Success(c, result)
}

// Geocode resolves an address to coordinates. The resolver is a stub, so this
// consistently reports the capability as unavailable.
// POST /api/v1/geocode
func (h *GeoHandler) Geocode(c *gin.Context) {
	var req models.GeocodeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "address is required")
		return
	}

	coord, err := h.geo.ResolveAddress(req.Address)
	if err != nil {
		if errors.Is(err, service.ErrGeocodingUnavailable) {
			response.ServiceUnavailable(c, err.Error())
			return
		}
		response.InternalError(c, err.Error())
		return
	}

	response.Success(c, coord)
}
