package storage

import (
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/lehigh-university-libraries/artworks/internal/viewer"
)

// Session is one browser's viewer
type Session struct {
	ID         string
	Controller *viewer.Controller
	CreatedAt  time.Time
	lastSeen   time.Time
}

type SessionStore struct {
	sessions map[string]*Session
	mu       sync.RWMutex
	factory  func() *viewer.Controller
	now      func() time.Time
}

// New returns a store that builds a fresh controller for every session
func New(factory func() *viewer.Controller) *SessionStore {
	return &SessionStore{
		sessions: make(map[string]*Session),
		factory:  factory,
		now:      time.Now,
	}
}

// Create starts a session with an empty selection
func (s *SessionStore) Create() *Session {
	now := s.now()
	session := &Session{
		ID:         uuid.NewString(),
		Controller: s.factory(),
		CreatedAt:  now,
		lastSeen:   now,
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions[session.ID] = session
	return session
}

// Get returns the session and marks it as recently used
func (s *SessionStore) Get(sessionID string) (*Session, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	session, exists := s.sessions[sessionID]
	if exists {
		session.lastSeen = s.now()
	}
	return session, exists
}

func (s *SessionStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.sessions)
}

func (s *SessionStore) Delete(sessionID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, sessionID)
}

// Prune removes sessions idle for longer than maxIdle and returns how many went
func (s *SessionStore) Prune(maxIdle time.Duration) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	cutoff := s.now().Add(-maxIdle)
	pruned := 0
	for id, session := range s.sessions {
		if session.lastSeen.Before(cutoff) {
			delete(s.sessions, id)
			pruned++
		}
	}
	return pruned
}
