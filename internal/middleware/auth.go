package middleware

import (
	"net/http"
	"net/url"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/inkwell-social/inkwell/pkg/token"
)

const (
	CtxUserID   = "user_id"
	CtxUsername = "username"
)

func extractToken(c *gin.Context) string {
	if h := c.GetHeader("Authorization"); strings.HasPrefix(h, "Bearer ") {
		return strings.TrimPrefix(h, "Bearer ")
	}
	if cookie, err := c.Cookie("token"); err == nil {
		return cookie
	}
	return ""
}

// AuthOptional attaches the viewer identity when a valid token is
// present and lets anonymous requests through untouched.
func AuthOptional(secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if raw := extractToken(c); raw != "" {
			if claims, err := token.Parse(secret, raw); err == nil {
				c.Set(CtxUserID, claims.UserID)
				c.Set(CtxUsername, claims.Username)
			}
		}
		c.Next()
	}
}

// AuthRequired redirects anonymous requests to the login page with the
// original path in next, mirroring classic session-auth behavior.
// Protected operations never see an anonymous actor.
func AuthRequired(secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		raw := extractToken(c)
		if raw == "" {
			redirectToLogin(c)
			return
		}
		claims, err := token.Parse(secret, raw)
		if err != nil {
			redirectToLogin(c)
			return
		}
		c.Set(CtxUserID, claims.UserID)
		c.Set(CtxUsername, claims.Username)
		c.Next()
	}
}

func redirectToLogin(c *gin.Context) {
	next := url.QueryEscape(c.Request.URL.RequestURI())
	c.Redirect(http.StatusFound, "/auth/login/?next="+next)
	c.Abort()
}

// UserID returns the authenticated viewer's id, empty for anonymous.
func UserID(c *gin.Context) string {
	return c.GetString(CtxUserID)
}
