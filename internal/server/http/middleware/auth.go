package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

const sessionCookieName = "passboard_session"

// SessionValidator checks whether a session token belongs to the operator.
type SessionValidator interface {
	ValidateSession(token string) error
}

// AuthRequired ensures a valid operator session before accessing handler.
func AuthRequired(validator SessionValidator) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := extractToken(c)
		if token == "" {
			c.AbortWithStatus(http.StatusUnauthorized)
			return
		}

		if err := validator.ValidateSession(token); err != nil {
			c.AbortWithStatus(http.StatusUnauthorized)
			return
		}

		c.Next()
	}
}

func extractToken(c *gin.Context) string {
	authHeader := c.GetHeader("Authorization")
	if strings.HasPrefix(strings.ToLower(authHeader), "bearer ") {
		return strings.TrimSpace(authHeader[7:])
	}

	if cookie, err := c.Cookie(sessionCookieName); err == nil {
		return cookie
	}
	return ""
}

// SetSessionCookie writes the HTTP-only session cookie to the response.
func SetSessionCookie(c *gin.Context, token string, maxAge int) {
	c.SetCookie(sessionCookieName, token, maxAge, "/", "", false, true)
}

// ClearSessionCookie removes the session cookie.
func ClearSessionCookie(c *gin.Context) {
	c.SetCookie(sessionCookieName, "", -1, "/", "", false, true)
}
