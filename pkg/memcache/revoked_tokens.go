package mem

import (
	"sync"
	"time"
)

// RevokedTokenStore remembers logged-out bearer tokens until their natural
// expiry so the auth middleware can reject them early.
type RevokedTokenStore interface {
	Revoke(token string, ttl time.Duration)
	IsRevoked(token string) bool
}

type revokedEntry struct {
	expiresAt time.Time
}

type RevokedTokens struct {
	mu   sync.RWMutex
	data map[string]revokedEntry
}

func NewRevokedTokens() *RevokedTokens {
	return &RevokedTokens{
		data: make(map[string]revokedEntry),
	}
}

func (s *RevokedTokens) Revoke(token string, ttl time.Duration) {
	if ttl <= 0 {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data[token] = revokedEntry{expiresAt: time.Now().Add(ttl)}
}

func (s *RevokedTokens) IsRevoked(token string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.data[token]
	if !ok {
		return false
	}
	if time.Now().After(e.expiresAt) {
		delete(s.data, token) // cleanup expired
		return false
	}
	return true
}
