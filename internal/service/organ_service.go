package service

import (
	"fmt"
	"sort"

	"go.uber.org/zap"

	"github.com/lifeline-labs/organ-backend-go/internal/models"
	"github.com/lifeline-labs/organ-backend-go/internal/repository"
)

// bloodCompatibility maps a recipient blood type to the donor types it can
// accept, per standard ABO/Rh rules. O- is the universal donor, AB+ the
// universal recipient.
var bloodCompatibility = map[string][]string{
	"O-":  {"O-"},
	"O+":  {"O-", "O+"},
	"A-":  {"O-", "A-"},
	"A+":  {"O-", "O+", "A-", "A+"},
	"B-":  {"O-", "B-"},
	"B+":  {"O-", "O+", "B-", "B+"},
	"AB-": {"O-", "A-", "B-", "AB-"},
	"AB+": {"O-", "O+", "A-", "A+", "B-", "B+", "AB-", "AB+"},
}

// conditionBonuses are added to the base compatibility score
var conditionBonuses = map[string]float64{
	models.ConditionExcellent: 0.2,
	models.ConditionGood:      0.1,
	models.ConditionFair:      0.05,
}

// IsBloodTypeCompatible reports whether a recipient can accept a donor type
func IsBloodTypeCompatible(recipient, donor string) bool {
	for _, accepted := range bloodCompatibility[recipient] {
		if accepted == donor {
			return true
		}
	}
	return false
}

// CompatibilityScore rates an availability record against a recipient blood
// type. The score starts at a 0.5 base, gains 0.3 for an exact blood-type
// match or 0.2 for a compatible one, plus a condition bonus, clamped to 1.0.
// An empty recipient type earns no blood-type bonus.
func CompatibilityScore(av models.OrganAvailability, recipientBloodType string) float64 {
	score := 0.5

	if recipientBloodType != "" && av.BloodType != "" {
		if recipientBloodType == av.BloodType {
			score += 0.3
		} else if IsBloodTypeCompatible(recipientBloodType, av.BloodType) {
			score += 0.2
		}
	}

	score += conditionBonuses[av.Condition]

	if score > 1.0 {
		score = 1.0
	}
	return score
}

// OrganSearchService finds available organs near a location
type OrganSearchService struct {
	organs *repository.OrganRepository
	geo    *GeolocationService
	logger *zap.Logger
}

// NewOrganSearchService creates a new organ search service
func NewOrganSearchService(organs *repository.OrganRepository, geo *GeolocationService, logger *zap.Logger) *OrganSearchService {
	return &OrganSearchService{organs: organs, geo: geo, logger: logger}
}

// SearchNearby returns available organs of the requested type within
// maxDistanceKm of the user, sorted nearest-first, each scored against the
// recipient blood type. The blood type widens to ABO/Rh-compatible donors;
// it is a scoring input, not a hard database filter.
func (s *OrganSearchService) SearchNearby(user models.Coordinate, organName, recipientBloodType string, maxDistanceKm float64) ([]models.OrganSearchResult, error) {
	if err := user.Validate(); err != nil {
		return nil, err
	}
	if maxDistanceKm <= 0 {
		maxDistanceKm = DefaultMaxDistanceKm
	}

	matches, err := s.organs.SearchAvailability(organName, "")
	if err != nil {
		return nil, fmt.Errorf("availability search failed: %w", err)
	}

	hospitals := make([]models.Hospital, len(matches))
	for i, m := range matches {
		hospitals[i] = m.Hospital
	}
	nearby := s.geo.FindNearestHospitals(user, hospitals, maxDistanceKm)

	// Index matches by availability row so distance-ordered hospitals can be
	// mapped back to their records
	byHospitalSeq := make(map[int64][]repository.AvailabilityMatch)
	for _, m := range matches {
		byHospitalSeq[m.Hospital.ID] = append(byHospitalSeq[m.Hospital.ID], m)
	}

	results := make([]models.OrganSearchResult, 0, len(nearby))
	seen := make(map[int64]bool)
	for _, hd := range nearby {
		if seen[hd.Hospital.ID] {
			continue
		}
		seen[hd.Hospital.ID] = true
		for _, m := range byHospitalSeq[hd.Hospital.ID] {
			results = append(results, models.OrganSearchResult{
				Hospital:           m.Hospital,
				Availability:       m.Availability,
				Distance:           hd.Distance,
				CompatibilityScore: CompatibilityScore(m.Availability, recipientBloodType),
			})
		}
	}

	sort.SliceStable(results, func(i, j int) bool {
		return results[i].Distance.DistanceKm < results[j].Distance.DistanceKm
	})

	s.logger.Debug("organ search completed",
		zap.String("organ", organName),
		zap.Int("matches", len(results)),
	)
	return results, nil
}

// ListOrgans returns the organ catalog
func (s *OrganSearchService) ListOrgans() ([]models.Organ, error) {
	return s.organs.ListOrgans()
}
