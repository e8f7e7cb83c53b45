package session

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/agrisense/plant-chatbot/internal/adapter/api/dto"
)

// HeaderName is the request header that scopes settings and history to
// one browser session.
const HeaderName = "X-Session-Id"

// ContextKey is the gin context key holding the session id
const ContextKey = "session_id"

// Middleware extracts the session id header and stores it in both the
// gin context and the request context. Requests without the header are
// rejected; the browser client generates the id once and reuses it.
func Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		sessionID := c.GetHeader(HeaderName)
		if sessionID == "" {
			c.AbortWithStatusJSON(http.StatusBadRequest, dto.NewErrorResponse(
				http.StatusBadRequest,
				"Session ID manquant",
				"Le header '"+HeaderName+"' est obligatoire",
			))
			return
		}

		c.Set(ContextKey, sessionID)
		c.Request = c.Request.WithContext(SetSessionIDContext(c.Request.Context(), sessionID))

		c.Next()
	}
}

// GetSessionID returns the session id stored by the middleware
func GetSessionID(c *gin.Context) string {
	return c.GetString(ContextKey)
}
