// Package middleware provides session-based auth guards for protected routes.
package middleware

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"medtrack_backend/internal/api"
	"medtrack_backend/internal/feature/auth/domain/entity"
)

// SessionCookie is the name of the HTTP-only cookie carrying the session token.
const SessionCookie = "session_token"

// ContextUser is the gin context key holding the authenticated *entity.User.
const ContextUser = "currentUser"

// UserResolver resolves a session token to its authenticated user.
// Following Go convention: interfaces are defined by the consumer (middleware), not the provider (usecase).
type UserResolver interface {
	CurrentUser(ctx context.Context, token string) (*entity.User, error)
}

// SessionRequired returns a middleware that restricts access to requests
// carrying a valid session cookie. The resolved user is attached to the
// context as the request principal.
func SessionRequired(resolver UserResolver) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := c.Cookie(SessionCookie)
		if err != nil || token == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, api.ErrorResponse{Error: "authentication required"})
			return
		}

		user, err := resolver.CurrentUser(c.Request.Context(), token)
		if err != nil {
			// Not-found, expired, revoked and disabled all collapse into one
			// answer: the cookie does not identify anyone.
			slog.Warn("session rejected", "error", err, "remote_addr", c.ClientIP())
			c.AbortWithStatusJSON(http.StatusUnauthorized, api.ErrorResponse{Error: "authentication required"})
			return
		}

		c.Set(ContextUser, user)
		c.Next()
	}
}

// AdminRequired returns a middleware that layers an admin role check on top
// of SessionRequired. It must run after SessionRequired.
func AdminRequired() gin.HandlerFunc {
	return func(c *gin.Context) {
		user, ok := CurrentUser(c)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, api.ErrorResponse{Error: "authentication required"})
			return
		}
		if !user.IsAdmin() {
			slog.Warn("admin access denied", "user", user.Username, "remote_addr", c.ClientIP())
			c.AbortWithStatusJSON(http.StatusForbidden, api.ErrorResponse{Error: "admin access required"})
			return
		}
		c.Next()
	}
}

// CurrentUser returns the authenticated principal attached by SessionRequired.
func CurrentUser(c *gin.Context) (*entity.User, bool) {
	v, ok := c.Get(ContextUser)
	if !ok {
		return nil, false
	}
	user, ok := v.(*entity.User)
	return user, ok
}
