package repository

import (
	"database/sql"
	"fmt"

	"github.com/doug-martin/goqu/v9"

	"github.com/lifeline-labs/organ-backend-go/internal/models"
)

// OrganRepository handles database operations for organs and availability
type OrganRepository struct {
	db *goqu.Database
}

// NewOrganRepository creates a new organ repository
func NewOrganRepository(db *sql.DB) *OrganRepository {
	return &OrganRepository{db: goqu.New("sqlite3", db)}
}

// ListOrgans returns all organ types
func (r *OrganRepository) ListOrgans() ([]models.Organ, error) {
	query := r.db.From("organs").
		Select("id", "name", "description", "urgency_level", "preservation_time_hours").
		Order(goqu.I("urgency_level").Desc(), goqu.I("name").Asc())

	rows, err := query.Executor().Query()
	if err != nil {
		return nil, fmt.Errorf("failed to query organs: %w", err)
	}
	defer rows.Close()

	var organs []models.Organ
	for rows.Next() {
		var o models.Organ
		if err := rows.Scan(&o.ID, &o.Name, &o.Description, &o.UrgencyLevel, &o.PreservationTimeHours); err != nil {
			return nil, fmt.Errorf("failed to scan organ: %w", err)
		}
		organs = append(organs, o)
	}

	return organs, rows.Err()
}

// AvailabilityMatch joins an availability record with its holding hospital
type AvailabilityMatch struct {
	Hospital     models.Hospital
	Availability models.OrganAvailability
}

// SearchAvailability returns available organ records matching an organ name
// and, optionally, an exact blood type
func (r *OrganRepository) SearchAvailability(organName, bloodType string) ([]AvailabilityMatch, error) {
	query := r.db.From(goqu.T("organ_availability").As("oa")).
		Join(goqu.T("organs").As("o"), goqu.On(goqu.Ex{"oa.organ_id": goqu.I("o.id")})).
		Join(goqu.T("hospitals").As("h"), goqu.On(goqu.Ex{"oa.hospital_id": goqu.I("h.id")})).
		Select(
			"oa.id", "oa.hospital_id", "oa.organ_id", "oa.is_available",
			"oa.quantity", "oa.blood_type", "oa.age_range", "oa.condition", "oa.notes",
			"h.id", "h.name", "h.address", "h.city", "h.state",
			"h.latitude", "h.longitude", "h.phone", "h.email", "h.website", "h.quality_score",
		).
		Where(
			goqu.C("is_available").Table("oa").Eq(1),
			goqu.C("name").Table("o").Eq(organName),
		).
		Order(goqu.I("oa.id").Asc())

	if bloodType != "" {
		query = query.Where(goqu.C("blood_type").Table("oa").Eq(bloodType))
	}

	rows, err := query.Executor().Query()
	if err != nil {
		return nil, fmt.Errorf("failed to query availability: %w", err)
	}
	defer rows.Close()

	var matches []AvailabilityMatch
	for rows.Next() {
		var m AvailabilityMatch
		if err := rows.Scan(
			&m.Availability.ID, &m.Availability.HospitalID, &m.Availability.OrganID, &m.Availability.IsAvailable,
			&m.Availability.Quantity, &m.Availability.BloodType, &m.Availability.AgeRange, &m.Availability.Condition, &m.Availability.Notes,
			&m.Hospital.ID, &m.Hospital.Name, &m.Hospital.Address, &m.Hospital.City, &m.Hospital.State,
			&m.Hospital.Latitude, &m.Hospital.Longitude, &m.Hospital.Phone, &m.Hospital.Email, &m.Hospital.Website, &m.Hospital.QualityScore,
		); err != nil {
			return nil, fmt.Errorf("failed to scan availability: %w", err)
		}
		matches = append(matches, m)
	}

	return matches, rows.Err()
}
