package service

import (
	"fmt"
	"math"
	"sort"
	"time"

	"go.uber.org/zap"

	"github.com/lifeline-labs/organ-backend-go/internal/models"
	"github.com/lifeline-labs/organ-backend-go/internal/spatial"
)

// Step instructions for the synthesized two-leg route
const (
	instructionStart    = "Start navigation to destination"
	instructionContinue = "Continue to hospital destination"
)

// Priority score weights and normalization bounds for ranking hospital routes
const (
	priorityDistanceWeight = 0.4
	priorityTimeWeight     = 0.4
	priorityQualityWeight  = 0.2
	priorityDistanceNormKm = 500.0
	priorityTimeNormMin    = 300.0
)

// emergencySpeedup scales durations on emergency routes
const emergencySpeedup = 0.8

var emergencyRecommendations = []string{
	"Use emergency lanes if available",
	"Contact hospital in advance",
	"Prepare medical documents",
	"Have emergency contacts ready",
}

// RoutingService synthesizes simplified routes between coordinates. Until a
// real routing engine is wired in, every route is two straight legs split at
// the arithmetic midpoint of its endpoints.
type RoutingService struct {
	logger *zap.Logger
}

// NewRoutingService creates a new routing service
func NewRoutingService(logger *zap.Logger) *RoutingService {
	return &RoutingService{logger: logger}
}

// BuildRoute synthesizes a route between two points. Totals come from the
// great-circle distance at the mode's average speed. Each of the two steps
// carries half the distance with a per-step duration at a flat 60 km/h; that
// per-step speed intentionally disagrees with the mode-dependent total and is
// kept as-is until stakeholders decide which figure is authoritative.
func (s *RoutingService) BuildRoute(start, end models.Coordinate, mode string) (models.Route, error) {
	if err := start.Validate(); err != nil {
		return models.Route{}, err
	}
	if err := end.Validate(); err != nil {
		return models.Route{}, err
	}
	if mode == "" {
		mode = spatial.ModeDriving
	}

	distance := spatial.CalculateDistanceForMode(start, end, mode)
	mid := spatial.ArithmeticMidpoint(start, end)

	halfMeters := distance.DistanceKm * 0.5 * 1000
	stepDuration := int(halfMeters / 1000 * 60)

	steps := []models.RouteStep{
		{
			Instruction:     instructionStart,
			DistanceMeters:  halfMeters,
			DurationSeconds: stepDuration,
			StartLocation:   start,
			EndLocation:     mid,
		},
		{
			Instruction:     instructionContinue,
			DistanceMeters:  halfMeters,
			DurationSeconds: stepDuration,
			StartLocation:   mid,
			EndLocation:     end,
		},
	}

	s.logger.Debug("route built",
		zap.String("mode", mode),
		zap.Float64("distance_km", distance.DistanceKm),
		zap.Int("duration_minutes", distance.EstimatedTravelTimeMinutes),
	)

	return models.Route{
		StartLocation:        start,
		EndLocation:          end,
		TotalDistanceKm:      distance.DistanceKm,
		TotalDurationMinutes: distance.EstimatedTravelTimeMinutes,
		Steps:                steps,
		TransportMode:        mode,
		EstimatedArrival:     time.Now().Add(time.Duration(distance.EstimatedTravelTimeMinutes) * time.Minute),
	}, nil
}

// DirectionsToHospital builds the full directions payload for a route
func (s *RoutingService) DirectionsToHospital(start, end models.Coordinate, mode string) (*models.DirectionsResponse, error) {
	route, err := s.BuildRoute(start, end, mode)
	if err != nil {
		return nil, err
	}

	return &models.DirectionsResponse{
		Route: route,
		Summary: models.RouteSummary{
			TotalSteps:          len(route.Steps),
			EstimatedTravelTime: fmt.Sprintf("%d minutes", route.TotalDurationMinutes),
			EstimatedDistance:   fmt.Sprintf("%.2f km", route.TotalDistanceKm),
		},
	}, nil
}

// EmergencyRoute re-times the standard driving route for emergency transport:
// total and per-step durations shrink by 20%, truncated to whole units.
// Emergency duration is therefore never greater than the standard duration.
func (s *RoutingService) EmergencyRoute(user, hospital models.Coordinate) (*models.EmergencyRouteResponse, error) {
	route, err := s.BuildRoute(user, hospital, spatial.ModeEmergency)
	if err != nil {
		return nil, err
	}

	standardDuration := route.TotalDurationMinutes
	emergencyDuration := int(float64(standardDuration) * emergencySpeedup)

	route.TotalDurationMinutes = emergencyDuration
	route.EstimatedArrival = time.Now().Add(time.Duration(emergencyDuration) * time.Minute)
	for i := range route.Steps {
		route.Steps[i].DurationSeconds = int(float64(route.Steps[i].DurationSeconds) * emergencySpeedup)
	}

	s.logger.Info("emergency route issued",
		zap.Float64("distance_km", route.TotalDistanceKm),
		zap.Int("minutes_saved", standardDuration-emergencyDuration),
	)

	return &models.EmergencyRouteResponse{
		Route:       route,
		IsEmergency: true,
		EmergencyInfo: models.EmergencyInfo{
			Priority:           "HIGH",
			EstimatedTimeSaved: fmt.Sprintf("%d minutes", standardDuration-emergencyDuration),
			Recommendations:    emergencyRecommendations,
		},
	}, nil
}

// RankRoutes builds a driving route from the user to each hospital and orders
// the candidates by priority score, best first. Ties keep input order.
func (s *RoutingService) RankRoutes(user models.Coordinate, hospitals []models.Hospital) ([]models.RankedRoute, error) {
	if err := user.Validate(); err != nil {
		return nil, err
	}

	ranked := make([]models.RankedRoute, 0, len(hospitals))
	for _, h := range hospitals {
		route, err := s.BuildRoute(user, h.Coordinate(), spatial.ModeDriving)
		if err != nil {
			return nil, fmt.Errorf("failed to route to hospital %d: %w", h.ID, err)
		}
		ranked = append(ranked, models.RankedRoute{
			Hospital:         h,
			TotalDistanceKm:  route.TotalDistanceKm,
			TotalDurationMin: route.TotalDurationMinutes,
			EstimatedArrival: route.EstimatedArrival,
			PriorityScore:    priorityScore(route, h),
		})
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].PriorityScore > ranked[j].PriorityScore
	})

	return ranked, nil
}

// priorityScore weights normalized distance and duration against hospital
// quality. Quality is the stored per-hospital score, still seeded at the
// neutral 0.5 everywhere; the column is the hook for a real reputation signal.
func priorityScore(route models.Route, h models.Hospital) float64 {
	distanceFactor := math.Max(0, 1-route.TotalDistanceKm/priorityDistanceNormKm)
	timeFactor := math.Max(0, 1-float64(route.TotalDurationMinutes)/priorityTimeNormMin)

	return priorityDistanceWeight*distanceFactor +
		priorityTimeWeight*timeFactor +
		priorityQualityWeight*h.QualityScore
}
