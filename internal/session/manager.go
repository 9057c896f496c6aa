package session

import (
	"context"
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	constants "github.com/CodeAndHammer/minigames/internal/constants"
	game "github.com/CodeAndHammer/minigames/internal/game"
	util "github.com/CodeAndHammer/minigames/internal/util"
)

// Manager maps session cookies to sessions. Sessions are created lazily and
// dropped once idle longer than the TTL.
type Manager struct {
	mu       sync.RWMutex
	sessions map[string]*Session
	engines  *game.Engines
	ttl      time.Duration
	now      func() time.Time
}

func NewManager(engines *game.Engines, ttl time.Duration, now func() time.Time) *Manager {
	if now == nil {
		now = time.Now
	}
	return &Manager{
		sessions: make(map[string]*Session),
		engines:  engines,
		ttl:      ttl,
		now:      now,
	}
}

// Get returns the session for id, creating it on first access.
func (m *Manager) Get(ctx context.Context, id string) *Session {
	m.mu.RLock()
	sess, exists := m.sessions[id]
	m.mu.RUnlock()
	if exists {
		sess.Touch()
		return sess
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	if sess, exists = m.sessions[id]; exists {
		sess.Touch()
		return sess
	}
	sess = New(id, m.engines, m.now)
	m.sessions[id] = sess
	util.LogInfoCtx(ctx, "Created session state for: %s", id)
	return sess
}

// Lookup returns an existing session without creating one.
func (m *Manager) Lookup(id string) (*Session, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	sess, ok := m.sessions[id]
	return sess, ok
}

func (m *Manager) Delete(id string) {
	m.mu.Lock()
	delete(m.sessions, id)
	m.mu.Unlock()
	util.LogInfo("Cleared session data for: %s", id)
}

func (m *Manager) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.sessions)
}

// CleanupExpired removes sessions idle past the TTL and returns how many.
func (m *Manager) CleanupExpired() int {
	m.mu.Lock()
	defer m.mu.Unlock()

	cutoff := m.now().Add(-m.ttl)
	expiredCount := 0
	for id, sess := range m.sessions {
		if sess.LastAccess().Before(cutoff) {
			delete(m.sessions, id)
			expiredCount++
		}
	}

	if expiredCount > 0 {
		util.LogInfo("Cleaned up %d expired sessions", expiredCount)
	}
	return expiredCount
}

// StartCleanup runs CleanupExpired every interval until ctx is cancelled.
func (m *Manager) StartCleanup(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	go func() {
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				m.CleanupExpired()
			}
		}
	}()
	util.LogInfo("Started session cleanup goroutine (every %v, ttl %v)", interval, m.ttl)
}

// CookieOptions controls the session cookie.
type CookieOptions struct {
	MaxAge time.Duration
	Secure bool
}

// GetOrCreateSessionID reads the session cookie or issues a new one.
func GetOrCreateSessionID(c *gin.Context, opts CookieOptions) string {
	sessionID, err := c.Cookie(constants.SessionCookieName)
	if err != nil || len(sessionID) < 10 {
		sessionID = NewSessionID(c, opts)
		util.LogInfoCtx(c.Request.Context(), "Created new session: %s", sessionID)
	}
	return sessionID
}

// NewSessionID issues a fresh session cookie and returns its id.
func NewSessionID(c *gin.Context, opts CookieOptions) string {
	sessionID := uuid.NewString()
	c.SetSameSite(http.SameSiteStrictMode)
	c.SetCookie(constants.SessionCookieName, sessionID, int(opts.MaxAge.Seconds()), "/", "", opts.Secure, true)
	return sessionID
}

// ClearSessionCookie expires the session cookie.
func ClearSessionCookie(c *gin.Context, opts CookieOptions) {
	c.SetSameSite(http.SameSiteStrictMode)
	c.SetCookie(constants.SessionCookieName, "", -1, "/", "", opts.Secure, true)
}
