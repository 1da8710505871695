package handler

import (
	"errors"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/lifeline-labs/organ-backend-go/internal/geoindex"
	"github.com/lifeline-labs/organ-backend-go/internal/models"
	"github.com/lifeline-labs/organ-backend-go/internal/repository"
	"github.com/lifeline-labs/organ-backend-go/pkg/response"
)

// HospitalHandler handles HTTP requests for hospitals
type HospitalHandler struct {
	hospitals            *repository.HospitalRepository
	index                *geoindex.HospitalIndex
	defaultMaxDistanceKm float64
}

// NewHospitalHandler creates a new hospital handler
func NewHospitalHandler(hospitals *repository.HospitalRepository, index *geoindex.HospitalIndex, defaultMaxDistanceKm float64) *HospitalHandler {
	return &HospitalHandler{hospitals: hospitals, index: index, defaultMaxDistanceKm: defaultMaxDistanceKm}
}

// List returns all hospitals
// GET /api/v1/hospitals
func (h *HospitalHandler) List(c *gin.Context) {
	hospitals, err := h.hospitals.List()
	if err != nil {
		response.InternalError(c, err.Error())
		return
	}
	response.Success(c, hospitals)
}

// Get returns a single hospital
// GET /api/v1/hospitals/:id
func (h *HospitalHandler) Get(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.BadRequest(c, "Invalid hospital ID")
		return
	}

	hospital, err := h.hospitals.GetByID(id)
	if err != nil {
		if errors.Is(err, repository.ErrHospitalNotFound) {
			response.NotFound(c, "Hospital not found")
			return
		}
		response.InternalError(c, err.Error())
		return
	}

	response.Success(c, hospital)
}

// Nearby returns hospitals within a radius of the caller, nearest first
// GET /api/v1/hospitals/nearby?lat=..&lon=..&max_distance_km=..
func (h *HospitalHandler) Nearby(c *gin.Context) {
	var req models.NearbyHospitalsRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.BadRequest(c, "lat and lon must be numeric")
		return
	}

	user := models.Coordinate{Latitude: req.Latitude, Longitude: req.Longitude}
	if err := user.Validate(); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	maxKm := req.MaxDistanceKm
	if maxKm <= 0 {
		maxKm = h.defaultMaxDistanceKm
	}

	results := h.index.Nearby(user, maxKm)

	response.Success(c, models.NearbyHospitalsResponse{
		UserLocation:  user,
		MaxDistanceKm: maxKm,
		Hospitals:     results,
		Total:         len(results),
	})
}
