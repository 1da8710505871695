package models

// Hospital represents a transplant-capable hospital
type Hospital struct {
	ID        int64   `json:"id" db:"id"`
	Name      string  `json:"name" db:"name"`
	Address   string  `json:"address,omitempty" db:"address"`
	City      string  `json:"city,omitempty" db:"city"`
	State     string  `json:"state,omitempty" db:"state"`
	Latitude  float64 `json:"latitude" db:"latitude"`
	Longitude float64 `json:"longitude" db:"longitude"`
	Phone     string  `json:"phone,omitempty" db:"phone"`
	Email     string  `json:"email,omitempty" db:"email"`
	Website   string  `json:"website,omitempty" db:"website"`

	// QualityScore feeds the route priority ranking. Seeded at the neutral
	// 0.5 until a real reputation signal is wired in.
	QualityScore float64 `json:"quality_score" db:"quality_score"`
}

// Coordinate returns the hospital's location as a value type
func (h Hospital) Coordinate() Coordinate {
	return Coordinate{Latitude: h.Latitude, Longitude: h.Longitude}
}

// HospitalDistance pairs a hospital with the computed distance from the caller
type HospitalDistance struct {
	Hospital Hospital       `json:"hospital"`
	Distance DistanceResult `json:"distance"`
}

// NearbyHospitalsResponse is the payload for a proximity query
type NearbyHospitalsResponse struct {
	UserLocation  Coordinate         `json:"user_location"`
	MaxDistanceKm float64            `json:"max_distance_km"`
	Hospitals     []HospitalDistance `json:"hospitals"`
	Total         int                `json:"total"`
}

// NearbyHospitalsRequest holds the query parameters for a proximity search.
// Zero is a valid latitude and longitude, so the coordinate fields are not
// tagged required; Coordinate.Validate covers the range check.
type NearbyHospitalsRequest struct {
	Latitude      float64 `form:"lat"`
	Longitude     float64 `form:"lon"`
	MaxDistanceKm float64 `form:"max_distance_km"`
}
