package middleware

import (
	"net/http"
	"strings"

	"boardhub/internal/auth"

	"github.com/gin-gonic/gin"
)

const (
	loginPath        = "/login"
	protectedPrefix  = "/u/"
	accountSetupPath = "/account-setup-required"
)

// AccessGate runs before every route handler. It redirects unauthenticated
// requests away from protected paths, redirects authenticated requests away
// from the login page, and stamps fixed security headers on every response.
func AccessGate(sessions *auth.Sessions) gin.HandlerFunc {
	return func(c *gin.Context) {
		// Set unconditionally, including on redirects.
		c.Header("X-Frame-Options", "DENY")
		c.Header("X-Content-Type-Options", "nosniff")
		c.Header("Referrer-Policy", "strict-origin-when-cross-origin")

		path := c.Request.URL.Path
		sess := sessions.GetSession(c)

		if strings.HasPrefix(path, protectedPrefix) && sess == nil {
			c.Redirect(http.StatusFound, loginPath)
			c.Abort()
			return
		}

		if strings.HasPrefix(path, loginPath) && sess != nil {
			// Target derived from the token's username claim, never
			// hardcoded. A session without a username cannot land on
			// a boards page yet.
			target := accountSetupPath
			if sess.Username != "" {
				target = "/u/" + sess.Username + "/boards"
			}
			c.Redirect(http.StatusFound, target)
			c.Abort()
			return
		}

		c.Next()
	}
}
