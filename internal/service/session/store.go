package session

import (
	"sync"
	"time"

	"turibot/internal/model/convo"
)

// Store keeps per-user conversation state in memory, keyed by the Telegram
// user identifier. Sessions are created on first touch and live for the
// process lifetime; there is no eviction, growth is bounded by the user
// population and accepted as a limitation.
type Store struct {
	mu       sync.RWMutex
	sessions map[int64]convo.Session
}

// NewStore bootstraps an empty in-memory session store.
func NewStore() *Store {
	return &Store{sessions: make(map[int64]convo.Session)}
}

// Get returns the session for the user, creating one with the general
// category if the user has never interacted before.
func (s *Store) Get(userID int64) convo.Session {
	s.mu.RLock()
	session, ok := s.sessions[userID]
	s.mu.RUnlock()
	if ok {
		return session
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if session, ok = s.sessions[userID]; ok {
		return session
	}
	session = convo.Session{
		UserID:    userID,
		Category:  convo.CategoryGeneral,
		CreatedAt: time.Now().UTC(),
	}
	s.sessions[userID] = session
	return session
}

// Select stores the button token as the user's category, creating the
// session if needed, and returns the new value. Last write wins; tokens are
// stored unvalidated since they originate from the bot's own keyboard, and
// the prompt composer owns the fallback for anything it does not recognize.
func (s *Store) Select(userID int64, token string) convo.Category {
	category := convo.Category(token)

	s.mu.Lock()
	defer s.mu.Unlock()
	session, ok := s.sessions[userID]
	if !ok {
		session = convo.Session{UserID: userID, CreatedAt: time.Now().UTC()}
	}
	session.Category = category
	s.sessions[userID] = session
	return category
}

// Count reports how many sessions are live, for the ops status endpoint.
func (s *Store) Count() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.sessions)
}
