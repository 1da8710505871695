package service

import (
	"encoding/json"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/lifeline-labs/organ-backend-go/internal/models"
	"github.com/lifeline-labs/organ-backend-go/internal/repository"
	"github.com/lifeline-labs/organ-backend-go/internal/spatial"
)

func newNavigationService() (*NavigationService, *repository.MemorySessionStore) {
	store := repository.NewMemorySessionStore()
	svc := NewNavigationService(NewRoutingService(zap.NewNop()), store, zap.NewNop())
	return svc, store
}

func TestStartNavigation(t *testing.T) {
	svc, store := newNavigationService()

	resp, err := svc.Start("u1", delhi, mumbai, spatial.ModeDriving)
	require.NoError(t, err)

	assert.NotEmpty(t, resp.NavigationID)
	assert.Equal(t, models.NavigationStatusActive, resp.Status)
	assert.Equal(t, "Start navigation to destination", resp.CurrentStep.Instruction)
	assert.Greater(t, resp.TotalDistanceKm, 0.0)
	assert.Equal(t, 1, store.Len())

	session, err := svc.Get(resp.NavigationID)
	require.NoError(t, err)
	assert.Equal(t, "u1", session.UserID)
	assert.Equal(t, 0, session.CurrentStep)
	assert.Nil(t, session.LastUpdate)
	assert.Nil(t, session.EndedAt)
}

func TestStartNavigationUniqueIDs(t *testing.T) {
	svc, _ := newNavigationService()

	seen := make(map[string]bool)
	for i := 0; i < 50; i++ {
		resp, err := svc.Start("u1", delhi, mumbai, spatial.ModeDriving)
		require.NoError(t, err)
		assert.False(t, seen[resp.NavigationID], "duplicate session id %s", resp.NavigationID)
		seen[resp.NavigationID] = true
	}
}

func TestStartNavigationInvalidCoordinates(t *testing.T) {
	svc, store := newNavigationService()

	_, err := svc.Start("u1", models.Coordinate{Latitude: 123, Longitude: 0}, mumbai, "")
	assert.ErrorIs(t, err, models.ErrInvalidCoordinate)
	assert.Zero(t, store.Len())
}

func TestUpdateNavigation(t *testing.T) {
	svc, _ := newNavigationService()

	started, err := svc.Start("u1", delhi, mumbai, spatial.ModeDriving)
	require.NoError(t, err)

	// Halfway along: remaining distance shrinks but the step never advances
	halfway := spatial.ArithmeticMidpoint(delhi, mumbai)
	progress, err := svc.Update(started.NavigationID, halfway)
	require.NoError(t, err)

	assert.Equal(t, started.NavigationID, progress.NavigationID)
	assert.Less(t, progress.RemainingDistanceKm, started.TotalDistanceKm)
	assert.Greater(t, progress.RemainingDistanceKm, 0.0)
	assert.Equal(t, 0, progress.CurrentStep)
	assert.Equal(t, models.NavigationStatusActive, progress.Status)

	session, err := svc.Get(started.NavigationID)
	require.NoError(t, err)
	require.NotNil(t, session.LastUpdate)
	require.NotNil(t, session.CurrentPosition)
	assert.Equal(t, halfway, *session.CurrentPosition)

	// Arriving at the destination leaves essentially nothing remaining
	arrived, err := svc.Update(started.NavigationID, mumbai)
	require.NoError(t, err)
	assert.InDelta(t, 0, arrived.RemainingDistanceKm, 0.01)
	assert.Zero(t, arrived.EstimatedTimeRemainingMinutes)
}

func TestUpdateUnknownSession(t *testing.T) {
	svc, _ := newNavigationService()

	_, err := svc.Update("nav_missing", delhi)
	assert.ErrorIs(t, err, ErrSessionNotFound)
}

func TestUpdateInvalidPosition(t *testing.T) {
	svc, _ := newNavigationService()

	started, err := svc.Start("u1", delhi, mumbai, "")
	require.NoError(t, err)

	_, err = svc.Update(started.NavigationID, models.Coordinate{Latitude: -100, Longitude: 0})
	assert.ErrorIs(t, err, models.ErrInvalidCoordinate)
}

func TestEndNavigation(t *testing.T) {
	svc, _ := newNavigationService()

	started, err := svc.Start("u1", delhi, mumbai, spatial.ModeDriving)
	require.NoError(t, err)

	// Ending immediately: zero whole minutes elapsed
	summary, err := svc.End(started.NavigationID)
	require.NoError(t, err)
	assert.Equal(t, models.NavigationStatusCompleted, summary.Status)
	assert.Equal(t, 0, summary.DurationMinutes)

	session, err := svc.Get(started.NavigationID)
	require.NoError(t, err)
	assert.Equal(t, models.NavigationStatusCompleted, session.Status)
	require.NotNil(t, session.EndedAt)
}

func TestEndNavigationIdempotent(t *testing.T) {
	svc, _ := newNavigationService()

	started, err := svc.Start("u1", delhi, mumbai, "")
	require.NoError(t, err)

	first, err := svc.End(started.NavigationID)
	require.NoError(t, err)

	second, err := svc.End(started.NavigationID)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestEndUnknownSession(t *testing.T) {
	svc, _ := newNavigationService()

	_, err := svc.End("nav_missing")
	assert.ErrorIs(t, err, ErrSessionNotFound)
}

func TestGetUnknownSession(t *testing.T) {
	svc, _ := newNavigationService()

	_, err := svc.Get("nav_missing")
	assert.ErrorIs(t, err, ErrSessionNotFound)
}

func TestConcurrentUpdateAndGet(t *testing.T) {
	// Get hands out sessions that readers marshal with no lock held, while
	// updates keep landing on the same id. Run under the race detector.
	svc, _ := newNavigationService()

	started, err := svc.Start("u1", delhi, mumbai, spatial.ModeDriving)
	require.NoError(t, err)

	var wg sync.WaitGroup
	wg.Add(2)

	go func() {
		defer wg.Done()
		halfway := spatial.ArithmeticMidpoint(delhi, mumbai)
		for i := 0; i < 200; i++ {
			_, err := svc.Update(started.NavigationID, halfway)
			assert.NoError(t, err)
		}
	}()

	go func() {
		defer wg.Done()
		for i := 0; i < 200; i++ {
			session, err := svc.Get(started.NavigationID)
			assert.NoError(t, err)
			_, err = json.Marshal(session)
			assert.NoError(t, err)
		}
	}()

	wg.Wait()

	session, err := svc.Get(started.NavigationID)
	require.NoError(t, err)
	assert.Equal(t, models.NavigationStatusActive, session.Status)
	require.NotNil(t, session.LastUpdate)
}
