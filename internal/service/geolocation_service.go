package service

import (
	"errors"
	"sort"

	"go.uber.org/zap"

	"github.com/lifeline-labs/organ-backend-go/internal/models"
	"github.com/lifeline-labs/organ-backend-go/internal/spatial"
)

// ErrGeocodingUnavailable is returned by the geocoding stub. Callers should
// treat this as a permanent condition, not a retryable failure.
var ErrGeocodingUnavailable = errors.New("geocoding is not available")

// DefaultMaxDistanceKm bounds proximity searches when no radius is given
const DefaultMaxDistanceKm = 500.0

// AddressResolver resolves a street address to coordinates. The production
// build ships only the unimplemented stub; a real geocoding integration can
// be substituted without changing call sites.
type AddressResolver interface {
	Resolve(address string) (*models.Coordinate, error)
}

// UnimplementedResolver is the placeholder AddressResolver
type UnimplementedResolver struct{}

// Resolve always reports that geocoding is unavailable
func (UnimplementedResolver) Resolve(string) (*models.Coordinate, error) {
	return nil, ErrGeocodingUnavailable
}

// GeolocationService handles distance calculations and hospital proximity
type GeolocationService struct {
	resolver AddressResolver
	logger   *zap.Logger
}

// NewGeolocationService creates a new geolocation service
func NewGeolocationService(resolver AddressResolver, logger *zap.Logger) *GeolocationService {
	if resolver == nil {
		resolver = UnimplementedResolver{}
	}
	return &GeolocationService{resolver: resolver, logger: logger}
}

// CalculateDistance validates both endpoints and returns the great-circle
// distance with a driving-speed travel time estimate
func (s *GeolocationService) CalculateDistance(a, b models.Coordinate) (models.DistanceResult, error) {
	if err := a.Validate(); err != nil {
		return models.DistanceResult{}, err
	}
	if err := b.Validate(); err != nil {
		return models.DistanceResult{}, err
	}
	return spatial.CalculateDistance(a, b), nil
}

// FindNearestHospitals returns the hospitals within maxDistanceKm of the user,
// sorted nearest-first. Equidistant hospitals keep their input order. An empty
// hospital list or an out-of-range radius yields an empty result, not an error.
func (s *GeolocationService) FindNearestHospitals(user models.Coordinate, hospitals []models.Hospital, maxDistanceKm float64) []models.HospitalDistance {
	if maxDistanceKm <= 0 {
		maxDistanceKm = DefaultMaxDistanceKm
	}

	nearby := make([]models.HospitalDistance, 0, len(hospitals))
	for _, h := range hospitals {
		d := spatial.CalculateDistance(user, h.Coordinate())
		if d.DistanceKm <= maxDistanceKm {
			nearby = append(nearby, models.HospitalDistance{Hospital: h, Distance: d})
		}
	}

	sort.SliceStable(nearby, func(i, j int) bool {
		return nearby[i].Distance.DistanceKm < nearby[j].Distance.DistanceKm
	})

	return nearby
}

// ResolveAddress forwards to the configured AddressResolver
func (s *GeolocationService) ResolveAddress(address string) (*models.Coordinate, error) {
	coord, err := s.resolver.Resolve(address)
	if err != nil {
		s.logger.Debug("address resolution failed", zap.String("address", address), zap.Error(err))
		return nil, err
	}
	return coord, nil
}
