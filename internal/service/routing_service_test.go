package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/lifeline-labs/organ-backend-go/internal/models"
	"github.com/lifeline-labs/organ-backend-go/internal/spatial"
)

var (
	delhi  = models.Coordinate{Latitude: 28.6139, Longitude: 77.2090}
	mumbai = models.Coordinate{Latitude: 19.0760, Longitude: 72.8777}
)

func newRoutingService() *RoutingService {
	return NewRoutingService(zap.NewNop())
}

func TestBuildRouteGeometry(t *testing.T) {
	svc := newRoutingService()

	route, err := svc.BuildRoute(delhi, mumbai, spatial.ModeDriving)
	require.NoError(t, err)

	require.Len(t, route.Steps, 2)
	assert.Equal(t, delhi, route.StartLocation)
	assert.Equal(t, mumbai, route.EndLocation)
	assert.Equal(t, delhi, route.Steps[0].StartLocation)
	assert.Equal(t, mumbai, route.Steps[1].EndLocation)

	// The two legs meet at the arithmetic midpoint
	mid := spatial.ArithmeticMidpoint(delhi, mumbai)
	assert.Equal(t, mid, route.Steps[0].EndLocation)
	assert.Equal(t, mid, route.Steps[1].StartLocation)

	assert.Equal(t, "Start navigation to destination", route.Steps[0].Instruction)
	assert.Equal(t, "Continue to hospital destination", route.Steps[1].Instruction)
}

func TestBuildRouteTotals(t *testing.T) {
	svc := newRoutingService()

	route, err := svc.BuildRoute(delhi, mumbai, spatial.ModeDriving)
	require.NoError(t, err)

	km := spatial.Haversine(delhi, mumbai)
	assert.InDelta(t, km, route.TotalDistanceKm, 1e-9)
	assert.Equal(t, spatial.EstimateTravelTime(km, spatial.ModeDriving), route.TotalDurationMinutes)
	assert.Equal(t, spatial.ModeDriving, route.TransportMode)

	// Each step carries half the total distance in meters, timed at a flat
	// 60 km/h
	half := km * 0.5 * 1000
	for _, step := range route.Steps {
		assert.InDelta(t, half, step.DistanceMeters, 1e-6)
		assert.Equal(t, int(half/1000*60), step.DurationSeconds)
	}
}

func TestBuildRouteDefaultsToDriving(t *testing.T) {
	svc := newRoutingService()

	route, err := svc.BuildRoute(delhi, mumbai, "")
	require.NoError(t, err)
	assert.Equal(t, spatial.ModeDriving, route.TransportMode)
}

func TestBuildRouteModeAffectsDuration(t *testing.T) {
	svc := newRoutingService()

	driving, err := svc.BuildRoute(delhi, mumbai, spatial.ModeDriving)
	require.NoError(t, err)
	walking, err := svc.BuildRoute(delhi, mumbai, spatial.ModeWalking)
	require.NoError(t, err)

	assert.Greater(t, walking.TotalDurationMinutes, driving.TotalDurationMinutes)
	assert.Equal(t, driving.TotalDistanceKm, walking.TotalDistanceKm)
}

func TestBuildRouteRejectsInvalidCoordinates(t *testing.T) {
	svc := newRoutingService()

	_, err := svc.BuildRoute(models.Coordinate{Latitude: 91, Longitude: 0}, mumbai, "")
	assert.ErrorIs(t, err, models.ErrInvalidCoordinate)

	_, err = svc.BuildRoute(delhi, models.Coordinate{Latitude: 0, Longitude: -181}, "")
	assert.ErrorIs(t, err, models.ErrInvalidCoordinate)
}

func TestDirectionsToHospital(t *testing.T) {
	svc := newRoutingService()

	directions, err := svc.DirectionsToHospital(delhi, mumbai, spatial.ModeDriving)
	require.NoError(t, err)

	assert.Equal(t, 2, directions.Summary.TotalSteps)
	assert.Contains(t, directions.Summary.EstimatedTravelTime, "minutes")
	assert.Contains(t, directions.Summary.EstimatedDistance, "km")
}

func TestEmergencyRouteDuration(t *testing.T) {
	svc := newRoutingService()

	standard, err := svc.BuildRoute(delhi, mumbai, spatial.ModeDriving)
	require.NoError(t, err)

	emergency, err := svc.EmergencyRoute(delhi, mumbai)
	require.NoError(t, err)

	assert.Equal(t, int(float64(standard.TotalDurationMinutes)*0.8), emergency.Route.TotalDurationMinutes)
	assert.LessOrEqual(t, emergency.Route.TotalDurationMinutes, standard.TotalDurationMinutes)
	assert.Equal(t, spatial.ModeEmergency, emergency.Route.TransportMode)
	assert.True(t, emergency.IsEmergency)
	assert.Equal(t, "HIGH", emergency.EmergencyInfo.Priority)
	assert.NotEmpty(t, emergency.EmergencyInfo.Recommendations)

	// Per-step durations shrink by the same factor
	for i, step := range emergency.Route.Steps {
		assert.Equal(t, int(float64(standard.Steps[i].DurationSeconds)*0.8), step.DurationSeconds)
	}
}

func TestEmergencyRouteZeroDistance(t *testing.T) {
	svc := newRoutingService()

	emergency, err := svc.EmergencyRoute(delhi, delhi)
	require.NoError(t, err)
	assert.Zero(t, emergency.Route.TotalDurationMinutes)
}

func TestRankRoutesOrdering(t *testing.T) {
	svc := newRoutingService()

	hospitals := []models.Hospital{
		{ID: 1, Name: "Far", Latitude: mumbai.Latitude, Longitude: mumbai.Longitude, QualityScore: 0.5},
		{ID: 2, Name: "Near", Latitude: 28.5355, Longitude: 77.2110, QualityScore: 0.5},
	}

	ranked, err := svc.RankRoutes(delhi, hospitals)
	require.NoError(t, err)
	require.Len(t, ranked, 2)

	// With equal quality, the nearer hospital wins
	assert.Equal(t, "Near", ranked[0].Hospital.Name)
	assert.Greater(t, ranked[0].PriorityScore, ranked[1].PriorityScore)

	for i := 1; i < len(ranked); i++ {
		assert.GreaterOrEqual(t, ranked[i-1].PriorityScore, ranked[i].PriorityScore)
	}
}

func TestRankRoutesStableTies(t *testing.T) {
	svc := newRoutingService()

	// Identical locations and quality produce identical scores; input order
	// must be preserved
	hospitals := []models.Hospital{
		{ID: 1, Name: "First", Latitude: 28.5355, Longitude: 77.2110, QualityScore: 0.5},
		{ID: 2, Name: "Second", Latitude: 28.5355, Longitude: 77.2110, QualityScore: 0.5},
	}

	ranked, err := svc.RankRoutes(delhi, hospitals)
	require.NoError(t, err)
	require.Len(t, ranked, 2)
	assert.Equal(t, int64(1), ranked[0].Hospital.ID)
	assert.Equal(t, int64(2), ranked[1].Hospital.ID)
}

func TestRankRoutesQualityBreaksDistanceTie(t *testing.T) {
	svc := newRoutingService()

	hospitals := []models.Hospital{
		{ID: 1, Name: "Neutral", Latitude: 28.5355, Longitude: 77.2110, QualityScore: 0.5},
		{ID: 2, Name: "Reputed", Latitude: 28.5355, Longitude: 77.2110, QualityScore: 0.9},
	}

	ranked, err := svc.RankRoutes(delhi, hospitals)
	require.NoError(t, err)
	assert.Equal(t, "Reputed", ranked[0].Hospital.Name)
}

func TestRankRoutesEmpty(t *testing.T) {
	svc := newRoutingService()

	ranked, err := svc.RankRoutes(delhi, nil)
	require.NoError(t, err)
	assert.Empty(t, ranked)
}
