package repository

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/doug-martin/goqu/v9"
	_ "github.com/doug-martin/goqu/v9/dialect/sqlite3"

	"github.com/lifeline-labs/organ-backend-go/internal/models"
)

// ErrHospitalNotFound is returned when a hospital id does not exist
var ErrHospitalNotFound = errors.New("hospital not found")

// HospitalRepository handles database operations for hospitals
type HospitalRepository struct {
	db *goqu.Database
}

// NewHospitalRepository creates a new hospital repository
func NewHospitalRepository(db *sql.DB) *HospitalRepository {
	return &HospitalRepository{db: goqu.New("sqlite3", db)}
}

var hospitalColumns = []interface{}{
	"id", "name", "address", "city", "state",
	"latitude", "longitude", "phone", "email", "website", "quality_score",
}

func scanHospital(rows *sql.Rows) (models.Hospital, error) {
	var h models.Hospital
	err := rows.Scan(
		&h.ID, &h.Name, &h.Address, &h.City, &h.State,
		&h.Latitude, &h.Longitude, &h.Phone, &h.Email, &h.Website, &h.QualityScore,
	)
	return h, err
}

// List returns all hospitals ordered by id
func (r *HospitalRepository) List() ([]models.Hospital, error) {
	query := r.db.From("hospitals").Select(hospitalColumns...).Order(goqu.I("id").Asc())

	rows, err := query.Executor().Query()
	if err != nil {
		return nil, fmt.Errorf("failed to query hospitals: %w", err)
	}
	defer rows.Close()

	var hospitals []models.Hospital
	for rows.Next() {
		h, err := scanHospital(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan hospital: %w", err)
		}
		hospitals = append(hospitals, h)
	}

	return hospitals, rows.Err()
}

// GetByID returns a single hospital
func (r *HospitalRepository) GetByID(id int64) (*models.Hospital, error) {
	query := r.db.From("hospitals").Select(hospitalColumns...).Where(goqu.C("id").Eq(id))

	rows, err := query.Executor().Query()
	if err != nil {
		return nil, fmt.Errorf("failed to query hospital %d: %w", id, err)
	}
	defer rows.Close()

	if !rows.Next() {
		return nil, ErrHospitalNotFound
	}

	h, err := scanHospital(rows)
	if err != nil {
		return nil, fmt.Errorf("failed to scan hospital: %w", err)
	}
	return &h, nil
}

// GetByIDs returns hospitals for the given ids, preserving the request order.
// Unknown ids are skipped.
func (r *HospitalRepository) GetByIDs(ids []int64) ([]models.Hospital, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	query := r.db.From("hospitals").Select(hospitalColumns...).Where(goqu.C("id").In(ids))

	rows, err := query.Executor().Query()
	if err != nil {
		return nil, fmt.Errorf("failed to query hospitals: %w", err)
	}
	defer rows.Close()

	byID := make(map[int64]models.Hospital, len(ids))
	for rows.Next() {
		h, err := scanHospital(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan hospital: %w", err)
		}
		byID[h.ID] = h
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	ordered := make([]models.Hospital, 0, len(ids))
	for _, id := range ids {
		if h, ok := byID[id]; ok {
			ordered = append(ordered, h)
		}
	}
	return ordered, nil
}

// Create inserts a hospital and returns its id
func (r *HospitalRepository) Create(h *models.Hospital) (int64, error) {
	query := r.db.Insert("hospitals").Rows(goqu.Record{
		"name":          h.Name,
		"address":       h.Address,
		"city":          h.City,
		"state":         h.State,
		"latitude":      h.Latitude,
		"longitude":     h.Longitude,
		"phone":         h.Phone,
		"email":         h.Email,
		"website":       h.Website,
		"quality_score": h.QualityScore,
	})

	res, err := query.Executor().Exec()
	if err != nil {
		return 0, fmt.Errorf("failed to insert hospital: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("failed to read hospital id: %w", err)
	}
	h.ID = id
	return id, nil
}
