package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/sathish19189/Ecommerce-project/models"
	"github.com/sathish19189/Ecommerce-project/store"
	"github.com/sathish19189/Ecommerce-project/utils"
)

const (
	// SessionCookie is the cookie carrying the signed session token.
	SessionCookie = "session"
	// sessionKey is the gin context key holding the resolved session.
	sessionKey = "session"

	cookieMaxAge = 24 * 60 * 60
)

// Session resolves the client's session from the request, creating a fresh
// anonymous one when the token is missing, invalid or stale, and stores a
// copy of it in the request context.
func Session(sessions *store.Sessions, secret []byte) gin.HandlerFunc {
	return func(c *gin.Context) {
		if sess, ok := resolve(c, sessions, secret); ok {
			c.Set(sessionKey, sess)
			c.Next()
			return
		}

		sess := sessions.Create()
		token, err := utils.SignSession(secret, sess.ID)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to start session"})
			c.Abort()
			return
		}
		c.SetCookie(SessionCookie, token, cookieMaxAge, "/", "", false, true)
		c.Set(sessionKey, sess)
		c.Next()
	}
}

// CurrentSession returns the session placed in the context by Session.
func CurrentSession(c *gin.Context) (models.Session, bool) {
	v, exists := c.Get(sessionKey)
	if !exists {
		return models.Session{}, false
	}
	sess, ok := v.(models.Session)
	return sess, ok
}

func resolve(c *gin.Context, sessions *store.Sessions, secret []byte) (models.Session, bool) {
	token := tokenFromRequest(c)
	if token == "" {
		return models.Session{}, false
	}
	sessionID, err := utils.ParseSession(secret, token)
	if err != nil {
		return models.Session{}, false
	}
	return sessions.Get(sessionID)
}

// tokenFromRequest checks the session cookie first, then a Bearer header.
func tokenFromRequest(c *gin.Context) string {
	if cookie, err := c.Cookie(SessionCookie); err == nil && cookie != "" {
		return cookie
	}

	authHeader := c.GetHeader("Authorization")
	splitToken := strings.Split(authHeader, "Bearer ")
	if len(splitToken) == 2 {
		return splitToken[1]
	}
	return ""
}
