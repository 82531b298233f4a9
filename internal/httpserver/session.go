package httpserver

import (
	"net/http"

	"retify/internal/session"

	"github.com/gin-gonic/gin"
)

const (
	sessionCookie   = "retify_session"
	sessionTokenKey = "sessionToken"
)

// sessionMiddleware resolves the client's session token from the cookie,
// issuing a fresh session (and setting the cookie) when the token is absent
// or no longer live.
func sessionMiddleware(store *session.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := c.Cookie(sessionCookie)
		if err != nil || !store.Has(token) {
			token, err = store.Issue()
			if err != nil {
				c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{
					"success": false,
					"error":   "could not establish session",
				})
				return
			}
			c.SetCookie(sessionCookie, token, int(store.TTL().Seconds()), "/", "", false, true)
		}
		c.Set(sessionTokenKey, token)
		c.Next()
	}
}

func sessionToken(c *gin.Context) string {
	return c.GetString(sessionTokenKey)
}
