package models

import "time"

// RouteStep is a single leg of a synthesized route
type RouteStep struct {
	Instruction     string     `json:"instruction"`
	DistanceMeters  float64    `json:"distance_meters"`
	DurationSeconds int        `json:"duration_seconds"`
	StartLocation   Coordinate `json:"start_location"`
	EndLocation     Coordinate `json:"end_location"`
}

// Route is a synthesized point-to-point route. The current synthesizer always
// produces exactly two steps, split at the arithmetic midpoint.
type Route struct {
	StartLocation        Coordinate  `json:"start_location"`
	EndLocation          Coordinate  `json:"end_location"`
	TotalDistanceKm      float64     `json:"total_distance_km"`
	TotalDurationMinutes int         `json:"total_duration_minutes"`
	Steps                []RouteStep `json:"steps"`
	TransportMode        string      `json:"transport_mode"`
	EstimatedArrival     time.Time   `json:"estimated_arrival"`
}

// RouteRequest describes the endpoints for a directions request. The
// coordinates are pointers so that presence is checked without rejecting the
// zero-valued origin point.
type RouteRequest struct {
	Start         *Coordinate `json:"start" binding:"required"`
	End           *Coordinate `json:"end" binding:"required"`
	TransportMode string      `json:"transport_mode"`
}

// RouteSummary is the condensed trailer on a directions payload
type RouteSummary struct {
	TotalSteps          int    `json:"total_steps"`
	EstimatedTravelTime string `json:"estimated_travel_time"`
	EstimatedDistance   string `json:"estimated_distance"`
}

// DirectionsResponse is the full directions payload: route, steps, summary
type DirectionsResponse struct {
	Route   Route        `json:"route"`
	Summary RouteSummary `json:"summary"`
}

// EmergencyInfo carries the priority block on an emergency route
type EmergencyInfo struct {
	Priority           string   `json:"priority"`
	EstimatedTimeSaved string   `json:"estimated_time_saved"`
	Recommendations    []string `json:"recommendations"`
}

// EmergencyRouteResponse is a standard route re-timed for emergency transport
type EmergencyRouteResponse struct {
	Route         Route         `json:"route"`
	IsEmergency   bool          `json:"is_emergency"`
	EmergencyInfo EmergencyInfo `json:"emergency_info"`
}

// RankRoutesRequest asks for routes from a user location to several hospitals,
// ordered best-first
type RankRoutesRequest struct {
	Start       *Coordinate `json:"start" binding:"required"`
	HospitalIDs []int64     `json:"hospital_ids" binding:"required"`
}

// RankedRoute is one candidate in a multi-hospital ranking
type RankedRoute struct {
	Hospital         Hospital  `json:"hospital"`
	TotalDistanceKm  float64   `json:"total_distance_km"`
	TotalDurationMin int       `json:"total_duration_minutes"`
	EstimatedArrival time.Time `json:"estimated_arrival"`
	PriorityScore    float64   `json:"priority_score"`
}
