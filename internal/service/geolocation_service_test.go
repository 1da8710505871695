package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/lifeline-labs/organ-backend-go/internal/models"
)

func newGeoService() *GeolocationService {
	return NewGeolocationService(nil, zap.NewNop())
}

func TestCalculateDistanceFixture(t *testing.T) {
	svc := newGeoService()

	result, err := svc.CalculateDistance(delhi, mumbai)
	require.NoError(t, err)

	assert.Greater(t, result.DistanceKm, 1150.0)
	assert.Less(t, result.DistanceKm, 1165.0)
	assert.InDelta(t, result.DistanceKm*models.KmToMiles, result.DistanceMiles, 1e-9)
	assert.Equal(t, int(result.DistanceKm/50*60), result.EstimatedTravelTimeMinutes)
}

func TestCalculateDistanceRejectsInvalid(t *testing.T) {
	svc := newGeoService()

	_, err := svc.CalculateDistance(models.Coordinate{Latitude: 95, Longitude: 0}, mumbai)
	assert.ErrorIs(t, err, models.ErrInvalidCoordinate)

	_, err = svc.CalculateDistance(delhi, models.Coordinate{Latitude: 0, Longitude: 200})
	assert.ErrorIs(t, err, models.ErrInvalidCoordinate)
}

func TestFindNearestHospitals(t *testing.T) {
	svc := newGeoService()

	hospitals := []models.Hospital{
		{ID: 1, Name: "Apollo Hospitals, Chennai", Latitude: 13.0827, Longitude: 80.2707},
		{ID: 2, Name: "Max Hospital, Delhi", Latitude: 28.5355, Longitude: 77.2110},
		{ID: 3, Name: "Medanta Hospital, Gurgaon", Latitude: 28.4595, Longitude: 77.0266},
	}

	results := svc.FindNearestHospitals(delhi, hospitals, 500)

	// Chennai is ~1750 km from Delhi and must be filtered out
	require.Len(t, results, 2)
	assert.Equal(t, "Max Hospital, Delhi", results[0].Hospital.Name)
	assert.Equal(t, "Medanta Hospital, Gurgaon", results[1].Hospital.Name)
	for _, r := range results {
		assert.LessOrEqual(t, r.Distance.DistanceKm, 500.0)
	}
}

func TestFindNearestHospitalsEmptyInput(t *testing.T) {
	svc := newGeoService()

	assert.Empty(t, svc.FindNearestHospitals(delhi, nil, 500))
	assert.Empty(t, svc.FindNearestHospitals(delhi, []models.Hospital{}, 500))
}

func TestFindNearestHospitalsNoneInRange(t *testing.T) {
	svc := newGeoService()

	hospitals := []models.Hospital{
		{ID: 1, Name: "Apollo Hospitals, Chennai", Latitude: 13.0827, Longitude: 80.2707},
	}
	assert.Empty(t, svc.FindNearestHospitals(delhi, hospitals, 100))
}

func TestFindNearestHospitalsDefaultRadius(t *testing.T) {
	svc := newGeoService()

	hospitals := []models.Hospital{
		{ID: 1, Name: "Max Hospital, Delhi", Latitude: 28.5355, Longitude: 77.2110},
	}
	// Zero radius falls back to the 500 km default
	assert.Len(t, svc.FindNearestHospitals(delhi, hospitals, 0), 1)
}

func TestFindNearestHospitalsStableTies(t *testing.T) {
	svc := newGeoService()

	hospitals := []models.Hospital{
		{ID: 1, Name: "East", Latitude: 0, Longitude: 1},
		{ID: 2, Name: "West", Latitude: 0, Longitude: -1},
	}
	results := svc.FindNearestHospitals(models.Coordinate{Latitude: 0, Longitude: 0}, hospitals, 500)

	require.Len(t, results, 2)
	assert.Equal(t, int64(1), results[0].Hospital.ID)
	assert.Equal(t, int64(2), results[1].Hospital.ID)
}

func TestResolveAddressUnavailable(t *testing.T) {
	svc := newGeoService()

	coord, err := svc.ResolveAddress("21 Greams Lane, Chennai")
	assert.Nil(t, coord)
	assert.ErrorIs(t, err, ErrGeocodingUnavailable)
}
