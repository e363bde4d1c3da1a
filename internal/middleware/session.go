package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// SessionHeader carries the client session id. Selection state is scoped to
// it, so the list page and the map page of one browser share a selection.
const SessionHeader = "X-Session-ID"

// SessionKey is the gin context key the handlers read the session id from.
const SessionKey = "session_id"

// Session assigns a session id to requests that do not carry one and echoes
// it back so the client can pin it.
func Session() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(SessionHeader)
		if id == "" {
			id = uuid.NewString()
		}
		c.Set(SessionKey, id)
		c.Header(SessionHeader, id)
		c.Next()
	}
}
