// Package middleware – bearer token authentication.
//
// BearerAuth guards the daily word endpoints: it requires a valid
// "Authorization: Bearer <token>" header, resolves the token to a user ID,
// and stores that ID in the Gin context for handlers to consume.
package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

// TokenParser resolves a bearer token string to the user ID it was issued
// for. Implementations return an error for any invalid token.
type TokenParser interface {
	Parse(token string) (string, error)
}

// BearerAuth returns middleware enforcing bearer token authentication.
// On success the authenticated user ID is available as c.Get("userID").
// On failure the request is aborted with 401 and the standard error envelope.
func BearerAuth(tokens TokenParser) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		scheme, token, found := strings.Cut(header, " ")
		if !found || !strings.EqualFold(strings.TrimSpace(scheme), "Bearer") || strings.TrimSpace(token) == "" {
			unauthorized(c, "missing bearer token")
			return
		}

		uid, err := tokens.Parse(strings.TrimSpace(token))
		if err != nil {
			unauthorized(c, "invalid or expired token")
			return
		}

		c.Set("userID", uid)
		c.Next()
	}
}

// unauthorized writes the package-standard error envelope. Duplicated here
// rather than imported from handlers to keep the dependency direction
// handlers -> middleware.
func unauthorized(c *gin.Context, msg string) {
	c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
		"request_id": c.Writer.Header().Get("X-Request-ID"),
		"code":       "unauthorized",
		"message":    msg,
	})
}
