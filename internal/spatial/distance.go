package spatial

import (
	"math"

	"github.com/golang/geo/s2"

	"github.com/lifeline-labs/organ-backend-go/internal/models"
)

// Earth radius constants
const (
	EarthRadiusKm     = 6371.0    // Earth's mean radius in kilometers
	EarthRadiusMeters = 6371000.0 // Earth's mean radius in meters
)

// Average speed presets in km/h, keyed by transport mode
const (
	SpeedDrivingKmh         = 50.0
	SpeedWalkingKmh         = 5.0
	SpeedCyclingKmh         = 15.0
	SpeedPublicTransportKmh = 30.0
)

// Transport mode tags
const (
	ModeDriving         = "driving"
	ModeWalking         = "walking"
	ModeCycling         = "cycling"
	ModePublicTransport = "public_transport"
	ModeEmergency       = "emergency"
)

// Haversine calculates the great-circle distance between two points in
// kilometers. Out-of-range inputs are not rejected here; they propagate
// through the spherical math.
func Haversine(a, b models.Coordinate) float64 {
	p1 := s2.LatLngFromDegrees(a.Latitude, a.Longitude)
	p2 := s2.LatLngFromDegrees(b.Latitude, b.Longitude)
	return p1.Distance(p2).Radians() * EarthRadiusKm
}

// SpeedForMode returns the average speed preset for a transport mode.
// Unrecognized modes fall back to the driving speed.
func SpeedForMode(mode string) float64 {
	switch mode {
	case ModeWalking:
		return SpeedWalkingKmh
	case ModeCycling:
		return SpeedCyclingKmh
	case ModePublicTransport:
		return SpeedPublicTransportKmh
	default:
		return SpeedDrivingKmh
	}
}

// EstimateTravelTime returns whole minutes to cover distanceKm at the given
// transport mode's average speed, truncated toward zero.
func EstimateTravelTime(distanceKm float64, mode string) int {
	return int(distanceKm / SpeedForMode(mode) * 60)
}

// CalculateDistance computes the great-circle distance between two points and
// a travel-time estimate at urban driving speed
func CalculateDistance(a, b models.Coordinate) models.DistanceResult {
	km := Haversine(a, b)
	return models.DistanceResult{
		DistanceKm:                 km,
		DistanceMiles:              km * models.KmToMiles,
		EstimatedTravelTimeMinutes: EstimateTravelTime(km, ModeDriving),
	}
}

// CalculateDistanceForMode is CalculateDistance with a mode-specific travel
// time estimate
func CalculateDistanceForMode(a, b models.Coordinate, mode string) models.DistanceResult {
	km := Haversine(a, b)
	return models.DistanceResult{
		DistanceKm:                 km,
		DistanceMiles:              km * models.KmToMiles,
		EstimatedTravelTimeMinutes: EstimateTravelTime(km, mode),
	}
}

// ArithmeticMidpoint averages latitudes and longitudes. This is not the
// geodesic midpoint; it is only a reasonable approximation over short to
// medium distances, which is all the route synthesizer needs.
func ArithmeticMidpoint(a, b models.Coordinate) models.Coordinate {
	return models.Coordinate{
		Latitude:  (a.Latitude + b.Latitude) / 2,
		Longitude: (a.Longitude + b.Longitude) / 2,
	}
}

// Bearing calculates the initial bearing (forward azimuth) from a to b.
// Returns degrees in [0,360), where 0 is North and 90 is East.
func Bearing(a, b models.Coordinate) float64 {
	lat1 := a.Latitude * math.Pi / 180
	lat2 := b.Latitude * math.Pi / 180
	lonDiff := (b.Longitude - a.Longitude) * math.Pi / 180

	y := math.Sin(lonDiff) * math.Cos(lat2)
	x := math.Cos(lat1)*math.Sin(lat2) - math.Sin(lat1)*math.Cos(lat2)*math.Cos(lonDiff)
	bearing := math.Atan2(y, x) * 180 / math.Pi

	return math.Mod(bearing+360, 360)
}
