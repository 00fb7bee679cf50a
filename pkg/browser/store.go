package browser

import (
	"sync"
	"time"
)

// Store is an in-memory registry of active sessions keyed by id.
// It is owned by whoever constructs it and shared by reference; there is
// no package-level instance.
type Store struct {
	mu       sync.RWMutex
	sessions map[string]*Session
}

// NewStore creates an empty session store.
func NewStore() *Store {
	return &Store{
		sessions: make(map[string]*Session),
	}
}

// Put registers a session under its id, replacing any previous entry.
func (s *Store) Put(sess *Session) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions[sess.ID] = sess
}

// Get retrieves a session by id.
func (s *Store) Get(id string) (*Session, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	sess, ok := s.sessions[id]
	return sess, ok
}

// Delete removes a session by id. Removing an absent id is a no-op.
func (s *Store) Delete(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, id)
}

// Len returns the number of registered sessions.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.sessions)
}

// List returns a snapshot of all registered sessions.
func (s *Store) List() []*Session {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]*Session, 0, len(s.sessions))
	for _, sess := range s.sessions {
		out = append(out, sess)
	}
	return out
}

// Stale returns the sessions older than maxAge as of now.
func (s *Store) Stale(maxAge time.Duration, now time.Time) []*Session {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var stale []*Session
	for _, sess := range s.sessions {
		if sess.Age(now) > maxAge {
			stale = append(stale, sess)
		}
	}
	return stale
}
