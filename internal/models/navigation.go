package models

import "time"

// Navigation session states. A session only ever moves active -> completed.
const (
	NavigationStatusActive    = "active"
	NavigationStatusCompleted = "completed"
)

// NavigationSession is a stateful trip being tracked for a user
type NavigationSession struct {
	ID          string `json:"id"`
	UserID      string `json:"user_id"`
	Route       Route  `json:"route"`
	CurrentStep int    `json:"current_step"`
	Status      string `json:"status"`

	StartedAt       time.Time   `json:"started_at"`
	LastUpdate      *time.Time  `json:"last_update,omitempty"`
	CurrentPosition *Coordinate `json:"current_position,omitempty"`
	EndedAt         *time.Time  `json:"ended_at,omitempty"`
}

// StartNavigationRequest begins a tracked trip. Coordinates are pointers so
// that presence is checked without rejecting the zero-valued origin point.
type StartNavigationRequest struct {
	UserID        string      `json:"user_id" binding:"required"`
	Start         *Coordinate `json:"start" binding:"required"`
	End           *Coordinate `json:"end" binding:"required"`
	TransportMode string      `json:"transport_mode"`
}

// NavigationStepInfo is the step summary returned when a session starts
type NavigationStepInfo struct {
	Instruction     string  `json:"instruction"`
	DistanceMeters  float64 `json:"distance_meters"`
	DurationSeconds int     `json:"duration_seconds"`
}

// StartNavigationResponse acknowledges a started session with its first step
type StartNavigationResponse struct {
	NavigationID         string             `json:"navigation_id"`
	TotalDistanceKm      float64            `json:"total_distance_km"`
	TotalDurationMinutes int                `json:"total_duration_minutes"`
	EstimatedArrival     time.Time          `json:"estimated_arrival"`
	CurrentStep          NavigationStepInfo `json:"current_step"`
	Status               string             `json:"status"`
}

// UpdateNavigationRequest reports the traveller's current position
type UpdateNavigationRequest struct {
	Position *Coordinate `json:"position" binding:"required"`
}

// UpdateNavigationResponse reports progress toward the destination. Remaining
// distance is recomputed great-circle from the reported position, not along
// the original route geometry.
type UpdateNavigationResponse struct {
	NavigationID                  string  `json:"navigation_id"`
	RemainingDistanceKm           float64 `json:"remaining_distance_km"`
	EstimatedTimeRemainingMinutes int     `json:"estimated_time_remaining_minutes"`
	BearingToDestination          float64 `json:"bearing_to_destination"`
	CurrentStep                   int     `json:"current_step"`
	Status                        string  `json:"status"`
}

// EndNavigationResponse summarizes a finished trip
type EndNavigationResponse struct {
	NavigationID    string `json:"navigation_id"`
	Status          string `json:"status"`
	DurationMinutes int    `json:"duration_minutes"`
}
