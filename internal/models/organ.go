package models

// Organ represents a transplantable organ type
type Organ struct {
	ID                    int64  `json:"id" db:"id"`
	Name                  string `json:"name" db:"name"`
	Description           string `json:"description,omitempty" db:"description"`
	UrgencyLevel          int    `json:"urgency_level" db:"urgency_level"`
	PreservationTimeHours int    `json:"preservation_time_hours" db:"preservation_time_hours"`
}

// Organ condition values carried on availability records
const (
	ConditionExcellent = "excellent"
	ConditionGood      = "good"
	ConditionFair      = "fair"
)

// OrganAvailability records that a hospital currently holds a transplantable organ
type OrganAvailability struct {
	ID          int64  `json:"id" db:"id"`
	HospitalID  int64  `json:"hospital_id" db:"hospital_id"`
	OrganID     int64  `json:"organ_id" db:"organ_id"`
	IsAvailable bool   `json:"is_available" db:"is_available"`
	Quantity    int    `json:"quantity" db:"quantity"`
	BloodType   string `json:"blood_type" db:"blood_type"`
	AgeRange    string `json:"age_range,omitempty" db:"age_range"`
	Condition   string `json:"condition" db:"condition"`
	Notes       string `json:"notes,omitempty" db:"notes"`
}

// OrganSearchRequest holds the query parameters for a nearby-organ search.
// The coordinate fields are not tagged required since zero is valid on both
// axes; Coordinate.Validate covers the range check.
type OrganSearchRequest struct {
	Latitude      float64 `form:"lat"`
	Longitude     float64 `form:"lon"`
	Organ         string  `form:"organ" binding:"required"`
	BloodType     string  `form:"blood_type"`
	MaxDistanceKm float64 `form:"max_distance_km"`
}

// OrganSearchResult is one match from a nearby-organ search: the availability
// record, the holding hospital, the distance from the caller, and how well the
// record matches the recipient
type OrganSearchResult struct {
	Hospital           Hospital          `json:"hospital"`
	Availability       OrganAvailability `json:"availability"`
	Distance           DistanceResult    `json:"distance"`
	CompatibilityScore float64           `json:"compatibility_score"`
}
