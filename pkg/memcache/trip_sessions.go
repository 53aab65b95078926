package mem

import (
	"sync"
	"time"
)

// TripSession is the per-trip working state that used to live in ambient
// browser storage: the submitted trip metadata, the raw AI response, and the
// last-saved edited rendering. Each field behaves as its own fixed key, read
// and overwritten wholesale.
type TripSession struct {
	TripData      string
	RawResponse   string
	EditedContent string
}

// TripSessionStore keeps trip sessions for the duration of a planning
// session. Entries expire on a TTL; there is no partial-update discipline
// because a single request context touches a session at a time.
type TripSessionStore interface {
	Put(tripID string, session TripSession, ttl time.Duration)
	Get(tripID string) (TripSession, bool)

	// SaveEdit stores the rendered markup verbatim. Returns false when the
	// session is missing or expired.
	SaveEdit(tripID string, content string) bool

	// ClearEdit drops a previously saved edit, used when a fresh AI
	// response replaces the document.
	ClearEdit(tripID string)

	Delete(tripID string)
}

type sessionEntry struct {
	session   TripSession
	expiresAt time.Time
}

type TripSessions struct {
	mu   sync.RWMutex
	data map[string]sessionEntry
}

func NewTripSessions() *TripSessions {
	return &TripSessions{
		data: make(map[string]sessionEntry),
	}
}

func (s *TripSessions) Put(tripID string, session TripSession, ttl time.Duration) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data[tripID] = sessionEntry{
		session:   session,
		expiresAt: time.Now().Add(ttl),
	}
}

func (s *TripSessions) Get(tripID string) (TripSession, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.data[tripID]
	if !ok {
		return TripSession{}, false
	}
	if time.Now().After(e.expiresAt) {
		delete(s.data, tripID)
		return TripSession{}, false
	}
	return e.session, true
}

func (s *TripSessions) SaveEdit(tripID string, content string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.data[tripID]
	if !ok || time.Now().After(e.expiresAt) {
		delete(s.data, tripID)
		return false
	}
	e.session.EditedContent = content
	s.data[tripID] = e
	return true
}

func (s *TripSessions) ClearEdit(tripID string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.data[tripID]
	if !ok {
		return
	}
	e.session.EditedContent = ""
	s.data[tripID] = e
}

func (s *TripSessions) Delete(tripID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.data, tripID)
}
