package service

import (
	"errors"
	"math"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/lifeline-labs/organ-backend-go/internal/models"
	"github.com/lifeline-labs/organ-backend-go/internal/repository"
	"github.com/lifeline-labs/organ-backend-go/internal/spatial"
)

// ErrSessionNotFound is returned when a navigation session id is unknown
var ErrSessionNotFound = errors.New("navigation session not found")

// NavigationService tracks active navigation sessions. All session state
// lives in the injected store; the service mutex serializes lookup+mutate
// sequences so concurrent updates on the same session cannot lose writes.
type NavigationService struct {
	routing *RoutingService
	store   repository.SessionStore
	logger  *zap.Logger

	mu sync.Mutex
}

// NewNavigationService creates a new navigation service
func NewNavigationService(routing *RoutingService, store repository.SessionStore, logger *zap.Logger) *NavigationService {
	return &NavigationService{routing: routing, store: store, logger: logger}
}

// Start begins a tracked trip and returns the session id with the first step
func (s *NavigationService) Start(userID string, start, end models.Coordinate, mode string) (*models.StartNavigationResponse, error) {
	route, err := s.routing.BuildRoute(start, end, mode)
	if err != nil {
		return nil, err
	}

	session := &models.NavigationSession{
		ID:          "nav_" + uuid.NewString(),
		UserID:      userID,
		Route:       route,
		CurrentStep: 0,
		Status:      models.NavigationStatusActive,
		StartedAt:   time.Now(),
	}

	s.mu.Lock()
	s.store.Put(session)
	s.mu.Unlock()

	s.logger.Info("navigation started",
		zap.String("session_id", session.ID),
		zap.String("user_id", userID),
		zap.Float64("distance_km", route.TotalDistanceKm),
	)

	first := route.Steps[0]
	return &models.StartNavigationResponse{
		NavigationID:         session.ID,
		TotalDistanceKm:      route.TotalDistanceKm,
		TotalDurationMinutes: route.TotalDurationMinutes,
		EstimatedArrival:     route.EstimatedArrival,
		CurrentStep: models.NavigationStepInfo{
			Instruction:     first.Instruction,
			DistanceMeters:  first.DistanceMeters,
			DurationSeconds: first.DurationSeconds,
		},
		Status: session.Status,
	}, nil
}

// Update records the traveller's position and reports remaining distance and
// time, recomputed great-circle from the reported position to the route end.
// The current step index never advances automatically.
func (s *NavigationService) Update(sessionID string, position models.Coordinate) (*models.UpdateNavigationResponse, error) {
	if err := position.Validate(); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	session, ok := s.store.Get(sessionID)
	if !ok {
		return nil, ErrSessionNotFound
	}

	remaining := spatial.CalculateDistance(position, session.Route.EndLocation)

	now := time.Now()
	session.LastUpdate = &now
	session.CurrentPosition = &position
	s.store.Put(session)

	return &models.UpdateNavigationResponse{
		NavigationID:                  sessionID,
		RemainingDistanceKm:           math.Round(remaining.DistanceKm*100) / 100,
		EstimatedTimeRemainingMinutes: remaining.EstimatedTravelTimeMinutes,
		BearingToDestination:          spatial.Bearing(position, session.Route.EndLocation),
		CurrentStep:                   session.CurrentStep,
		Status:                        session.Status,
	}, nil
}

// End completes a session and returns the elapsed wall-clock minutes. Ending
// an already-completed session returns the original summary again.
func (s *NavigationService) End(sessionID string) (*models.EndNavigationResponse, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	session, ok := s.store.Get(sessionID)
	if !ok {
		return nil, ErrSessionNotFound
	}

	if session.Status != models.NavigationStatusCompleted {
		now := time.Now()
		session.Status = models.NavigationStatusCompleted
		session.EndedAt = &now
		s.store.Put(session)

		s.logger.Info("navigation ended", zap.String("session_id", sessionID))
	}

	return &models.EndNavigationResponse{
		NavigationID:    sessionID,
		Status:          session.Status,
		DurationMinutes: int(session.EndedAt.Sub(session.StartedAt).Minutes()),
	}, nil
}

// Get returns the full session record
func (s *NavigationService) Get(sessionID string) (*models.NavigationSession, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	session, ok := s.store.Get(sessionID)
	if !ok {
		return nil, ErrSessionNotFound
	}
	return session, nil
}

// StartSweeper removes sessions idle past ttl at the given interval, until
// stop is closed. A zero ttl disables sweeping.
func (s *NavigationService) StartSweeper(interval, ttl time.Duration, stop <-chan struct{}) {
	if ttl <= 0 {
		return
	}

	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		for {
			select {
			case <-ticker.C:
				removed := s.store.RemoveStale(time.Now().Add(-ttl))
				if removed > 0 {
					s.logger.Info("swept stale navigation sessions", zap.Int("removed", removed))
				}
			case <-stop:
				return
			}
		}
	}()
}
