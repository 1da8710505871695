package models

import "errors"

// ErrInvalidCoordinate is returned when a latitude/longitude pair is outside
// the valid domain. The raw spherical math never validates its inputs; the
// API boundary does.
var ErrInvalidCoordinate = errors.New("invalid coordinate: latitude must be in [-90,90], longitude in [-180,180]")

// Coordinate represents a geographical point in decimal degrees
type Coordinate struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// Validate checks that the coordinate lies within the valid lat/lon domain
func (c Coordinate) Validate() error {
	if c.Latitude < -90 || c.Latitude > 90 || c.Longitude < -180 || c.Longitude > 180 {
		return ErrInvalidCoordinate
	}
	return nil
}

// KmToMiles is the conversion factor applied to every reported distance.
// Miles are always derived from kilometers, never stored independently.
const KmToMiles = 0.621371

// DistanceResult is the outcome of a distance calculation between two points
type DistanceResult struct {
	DistanceKm                 float64 `json:"distance_km"`
	DistanceMiles              float64 `json:"distance_miles"`
	EstimatedTravelTimeMinutes int     `json:"estimated_travel_time_minutes"`
}

// DistanceRequest holds the query parameters for a point-to-point distance
// lookup. The fields carry no required tag: zero is a valid latitude and
// longitude, so presence cannot be checked through the binding layer. Range
// checking happens in Coordinate.Validate.
type DistanceRequest struct {
	Lat1 float64 `form:"lat1"`
	Lon1 float64 `form:"lon1"`
	Lat2 float64 `form:"lat2"`
	Lon2 float64 `form:"lon2"`
}

// GeocodeRequest asks for coordinates of a street address
type GeocodeRequest struct {
	Address string `json:"address" binding:"required"`
}
