package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// SessionHeader carries the opaque session token. The storefront mints a
// token for first-time visitors and echoes it back; identity beyond the
// token is the identity provider's concern.
const SessionHeader = "X-Session-Token"

const sessionKey = "session_id"

// Session resolves the shopper's session token for every request.
func Session() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := c.GetHeader(SessionHeader)
		if token == "" {
			token = uuid.NewString()
		}
		c.Header(SessionHeader, token)
		c.Set(sessionKey, token)
		c.Next()
	}
}

// SessionID returns the session token for the current request. Calling it
// from a handler not behind Session is a programming error and panics.
func SessionID(c *gin.Context) string {
	return c.MustGet(sessionKey).(string)
}
