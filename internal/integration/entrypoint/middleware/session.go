package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	// SessionCookieName is the cookie carrying the cashier session ID.
	SessionCookieName = "pos_session"
	// SessionIDKey is the context key for the session ID.
	SessionIDKey ContextKey = "session_id"

	// sessionCookieMaxAge caps how long a cashier session cookie lives.
	sessionCookieMaxAge = 12 * 60 * 60
)

// SessionMiddleware assigns each client a stable session ID so carts survive
// across requests. A missing or malformed cookie gets a fresh UUID.
type SessionMiddleware struct {
	secureCookie bool
}

// NewSessionMiddleware creates a new session middleware instance.
func NewSessionMiddleware(secureCookie bool) *SessionMiddleware {
	return &SessionMiddleware{
		secureCookie: secureCookie,
	}
}

// Attach returns a Gin middleware handler that ensures a session cookie.
func (m *SessionMiddleware) Attach() gin.HandlerFunc {
	return func(c *gin.Context) {
		sessionID := uuid.Nil
		if raw, err := c.Cookie(SessionCookieName); err == nil {
			if parsed, parseErr := uuid.Parse(raw); parseErr == nil {
				sessionID = parsed
			}
		}

		if sessionID == uuid.Nil {
			sessionID = uuid.New()
			c.SetSameSite(http.SameSiteLaxMode)
			c.SetCookie(SessionCookieName, sessionID.String(), sessionCookieMaxAge, "/", "", m.secureCookie, true)
		}

		c.Set(string(SessionIDKey), sessionID)
		c.Next()
	}
}

// GetSessionIDFromContext extracts the session ID from the Gin context.
func GetSessionIDFromContext(c *gin.Context) (uuid.UUID, bool) {
	sessionID, exists := c.Get(string(SessionIDKey))
	if !exists {
		return uuid.Nil, false
	}
	id, ok := sessionID.(uuid.UUID)
	return id, ok
}
