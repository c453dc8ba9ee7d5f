// Package auth issues and validates the opaque session tokens handed out
// at registration and login. Sessions live in process memory; restarting
// the server logs everyone out, which is acceptable for a game backend.
package auth

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/hashicorp/golang-lru/v2/expirable"

	"github.com/lanternworks/nightmarket/internal/domain"
)

const (
	// DefaultSessionCacheSize bounds how many concurrent sessions are held
	DefaultSessionCacheSize = 4096
	// DefaultSessionTTL is the idle lifetime of a session
	DefaultSessionTTL = 30 * time.Minute
)

// Session ties a token to the player it authenticates
type Session struct {
	Token    string    `json:"token"`
	PlayerID string    `json:"player_id"`
	Username string    `json:"username"`
	IssuedAt time.Time `json:"issued_at"`
}

// Manager is the in-process session store. Entries expire after the TTL
// unless refreshed by use.
type Manager struct {
	sessions *expirable.LRU[string, *Session]
	ttl      time.Duration
}

// NewManager creates a session manager with the given capacity and TTL
func NewManager(size int, ttl time.Duration) *Manager {
	if size <= 0 {
		size = DefaultSessionCacheSize
	}
	if ttl <= 0 {
		ttl = DefaultSessionTTL
	}
	return &Manager{
		sessions: expirable.NewLRU[string, *Session](size, nil, ttl),
		ttl:      ttl,
	}
}

// Issue creates a session for the player and returns it with a fresh token
func (m *Manager) Issue(playerID, username string) *Session {
	session := &Session{
		Token:    uuid.NewString(),
		PlayerID: playerID,
		Username: username,
		IssuedAt: time.Now().UTC(),
	}
	m.sessions.Add(session.Token, session)
	return session
}

// Validate resolves a token to its session and refreshes the TTL. An
// unknown token and an expired one are indistinguishable here, so both
// come back as ErrSessionExpired.
func (m *Manager) Validate(token string) (*Session, error) {
	if token == "" {
		return nil, fmt.Errorf("%w: missing token", domain.ErrUnauthorized)
	}

	session, ok := m.sessions.Get(token)
	if !ok {
		return nil, domain.ErrSessionExpired
	}

	// Re-adding restarts the expiry clock
	m.sessions.Add(token, session)
	return session, nil
}

// Revoke drops a session. Validating the token afterwards fails.
func (m *Manager) Revoke(token string) {
	m.sessions.Remove(token)
}

// Len reports the number of live sessions, for the readiness probe
func (m *Manager) Len() int {
	return m.sessions.Len()
}
