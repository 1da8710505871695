package repository

import (
	"sync"
	"time"

	"github.com/lifeline-labs/organ-backend-go/internal/models"
)

// SessionStore owns navigation session state. Sessions live purely in memory
// and are lost on process restart; a durable implementation can be swapped in
// without touching the navigation service.
//
// Get must return a session detached from the store's internal state, so
// callers can read it (and marshal it) without holding any store lock while
// concurrent Puts land for the same id.
type SessionStore interface {
	Get(id string) (*models.NavigationSession, bool)
	Put(session *models.NavigationSession)
	Remove(id string)
	Len() int

	// RemoveStale deletes active sessions whose last activity is older than
	// the cutoff and returns how many were removed. Completed sessions are
	// always eligible once past the cutoff.
	RemoveStale(cutoff time.Time) int
}

// MemorySessionStore is the in-memory SessionStore used in production
type MemorySessionStore struct {
	mu       sync.RWMutex
	sessions map[string]*models.NavigationSession
}

// NewMemorySessionStore creates an empty in-memory session store
func NewMemorySessionStore() *MemorySessionStore {
	return &MemorySessionStore{sessions: make(map[string]*models.NavigationSession)}
}

// Get returns a detached copy of the session with the given id
func (s *MemorySessionStore) Get(id string) (*models.NavigationSession, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	session, ok := s.sessions[id]
	if !ok {
		return nil, false
	}
	return cloneSession(session), true
}

// Put stores a copy of the session, replacing any previous session with the
// same id. The caller keeps ownership of its argument.
func (s *MemorySessionStore) Put(session *models.NavigationSession) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions[session.ID] = cloneSession(session)
}

// cloneSession copies a session along with its optional pointer fields so the
// copy shares no mutable state with the original
func cloneSession(session *models.NavigationSession) *models.NavigationSession {
	clone := *session
	if session.LastUpdate != nil {
		t := *session.LastUpdate
		clone.LastUpdate = &t
	}
	if session.CurrentPosition != nil {
		p := *session.CurrentPosition
		clone.CurrentPosition = &p
	}
	if session.EndedAt != nil {
		t := *session.EndedAt
		clone.EndedAt = &t
	}
	return &clone
}

// Remove deletes a session; removing an unknown id is a no-op
func (s *MemorySessionStore) Remove(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, id)
}

// Len returns the number of stored sessions
func (s *MemorySessionStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.sessions)
}

// RemoveStale deletes sessions whose last activity predates the cutoff
func (s *MemorySessionStore) RemoveStale(cutoff time.Time) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	removed := 0
	for id, session := range s.sessions {
		last := session.StartedAt
		if session.LastUpdate != nil && session.LastUpdate.After(last) {
			last = *session.LastUpdate
		}
		if session.EndedAt != nil && session.EndedAt.After(last) {
			last = *session.EndedAt
		}
		if last.Before(cutoff) {
			delete(s.sessions, id)
			removed++
		}
	}
	return removed
}
