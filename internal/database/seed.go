package database

import (
	"database/sql"
	"fmt"

	"github.com/lifeline-labs/organ-backend-go/internal/models"
)

var seedOrgans = []models.Organ{
	{Name: "Heart", Description: "Heart transplant", UrgencyLevel: 4, PreservationTimeHours: 4},
	{Name: "Liver", Description: "Liver transplant", UrgencyLevel: 3, PreservationTimeHours: 12},
	{Name: "Kidney", Description: "Kidney transplant", UrgencyLevel: 2, PreservationTimeHours: 24},
	{Name: "Lung", Description: "Lung transplant", UrgencyLevel: 4, PreservationTimeHours: 6},
	{Name: "Pancreas", Description: "Pancreas transplant", UrgencyLevel: 3, PreservationTimeHours: 12},
	{Name: "Cornea", Description: "Cornea transplant", UrgencyLevel: 1, PreservationTimeHours: 72},
	{Name: "Bone Marrow", Description: "Bone marrow transplant", UrgencyLevel: 3, PreservationTimeHours: 48},
}

var seedHospitals = []models.Hospital{
	{Name: "Apollo Hospitals, Chennai", Address: "21 Greams Lane, Off Greams Road, Chennai", City: "Chennai", State: "Tamil Nadu", Latitude: 13.0827, Longitude: 80.2707, Phone: "+91-44-2829-3333", Email: "info@apollohospitals.com", Website: "https://www.apollohospitals.com", QualityScore: 0.5},
	{Name: "Fortis Hospital, Mumbai", Address: "Mulund Goregaon Link Road, Mulund West, Mumbai", City: "Mumbai", State: "Maharashtra", Latitude: 19.1700, Longitude: 72.9560, Phone: "+91-22-4925-0000", Email: "info@fortishealthcare.com", Website: "https://www.fortishealthcare.com", QualityScore: 0.5},
	{Name: "Max Hospital, Delhi", Address: "1, Press Enclave Road, Saket, New Delhi", City: "Delhi", State: "Delhi", Latitude: 28.5355, Longitude: 77.2110, Phone: "+91-11-4055-4055", Email: "info@maxhealthcare.com", Website: "https://www.maxhealthcare.com", QualityScore: 0.5},
	{Name: "Narayana Health, Bangalore", Address: "258/A, Bommasandra Industrial Area, Hosur Road, Bangalore", City: "Bangalore", State: "Karnataka", Latitude: 12.9716, Longitude: 77.5946, Phone: "+91-80-6750-6750", Email: "info@narayanahealth.org", Website: "https://www.narayanahealth.org", QualityScore: 0.5},
	{Name: "Medanta Hospital, Gurgaon", Address: "Sector 38, Gurgaon, Haryana", City: "Gurgaon", State: "Haryana", Latitude: 28.4595, Longitude: 77.0266, Phone: "+91-124-414-1414", Email: "info@medanta.org", Website: "https://www.medanta.org", QualityScore: 0.5},
	{Name: "Kokilaben Hospital, Mumbai", Address: "Rao Saheb Achutrao Patwardhan Marg, Four Bungalows, Andheri West, Mumbai", City: "Mumbai", State: "Maharashtra", Latitude: 19.1136, Longitude: 72.8367, Phone: "+91-22-3099-9999", Email: "info@kokilabenhospital.com", Website: "https://www.kokilabenhospital.com", QualityScore: 0.5},
	{Name: "Manipal Hospital, Bangalore", Address: "98, HAL Airport Road, Bangalore", City: "Bangalore", State: "Karnataka", Latitude: 12.9716, Longitude: 77.5946, Phone: "+91-80-2502-4444", Email: "info@manipalhospitals.com", Website: "https://www.manipalhospitals.com", QualityScore: 0.5},
	{Name: "AIIMS, New Delhi", Address: "Ansari Nagar, New Delhi", City: "Delhi", State: "Delhi", Latitude: 28.5679, Longitude: 77.2090, Phone: "+91-11-2658-8500", Email: "info@aiims.edu", Website: "https://www.aiims.edu", QualityScore: 0.5},
}

var seedBloodTypes = []string{"A+", "B+", "O+", "AB+", "A-", "B-", "O-", "AB-"}
var seedAgeRanges = []string{"18-65", "pediatric", "senior"}
var seedConditions = []string{models.ConditionExcellent, models.ConditionGood, models.ConditionFair}

// Seed populates the database with sample hospital and organ data. It is a
// no-op when hospitals already exist. Availability rows rotate through blood
// types and conditions deterministically so development data is reproducible.
func Seed(db *sql.DB) error {
	var count int
	if err := db.QueryRow("SELECT COUNT(*) FROM hospitals").Scan(&count); err != nil {
		return fmt.Errorf("failed to count hospitals: %w", err)
	}
	if count > 0 {
		return nil
	}

	return Transaction(db, func(tx *sql.Tx) error {
		organIDs := make([]int64, 0, len(seedOrgans))
		for _, o := range seedOrgans {
			res, err := tx.Exec(
				"INSERT INTO organs (name, description, urgency_level, preservation_time_hours) VALUES (?, ?, ?, ?)",
				o.Name, o.Description, o.UrgencyLevel, o.PreservationTimeHours,
			)
			if err != nil {
				return fmt.Errorf("failed to insert organ %s: %w", o.Name, err)
			}
			id, err := res.LastInsertId()
			if err != nil {
				return fmt.Errorf("failed to read organ id: %w", err)
			}
			organIDs = append(organIDs, id)
		}

		hospitalIDs := make([]int64, 0, len(seedHospitals))
		for _, h := range seedHospitals {
			res, err := tx.Exec(
				`INSERT INTO hospitals (name, address, city, state, latitude, longitude, phone, email, website, quality_score)
				 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
				h.Name, h.Address, h.City, h.State, h.Latitude, h.Longitude, h.Phone, h.Email, h.Website, h.QualityScore,
			)
			if err != nil {
				return fmt.Errorf("failed to insert hospital %s: %w", h.Name, err)
			}
			id, err := res.LastInsertId()
			if err != nil {
				return fmt.Errorf("failed to read hospital id: %w", err)
			}
			hospitalIDs = append(hospitalIDs, id)
		}

		// Availability at the first five hospitals, skipping every third
		// hospital/organ pairing
		n := 0
		for hi, hospitalID := range hospitalIDs[:5] {
			for oi, organID := range organIDs {
				if (hi+oi)%3 == 2 {
					continue
				}
				_, err := tx.Exec(
					`INSERT INTO organ_availability (hospital_id, organ_id, is_available, quantity, blood_type, age_range, condition, notes)
					 VALUES (?, ?, 1, ?, ?, ?, ?, ?)`,
					hospitalID, organID,
					n%3+1,
					seedBloodTypes[n%len(seedBloodTypes)],
					seedAgeRanges[n%len(seedAgeRanges)],
					seedConditions[n%len(seedConditions)],
					fmt.Sprintf("Available at %s", seedHospitals[hi].Name),
				)
				if err != nil {
					return fmt.Errorf("failed to insert availability: %w", err)
				}
				n++
			}
		}

		return nil
	})
}
