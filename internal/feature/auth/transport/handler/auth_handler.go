// Package handler provides HTTP handlers for the auth feature.
package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"medtrack_backend/internal/api"
	"medtrack_backend/internal/feature/auth/domain/entity"
	"medtrack_backend/internal/feature/auth/transport/http/dto"
	"medtrack_backend/internal/feature/auth/transport/middleware"
	"medtrack_backend/internal/feature/auth/usecase"
)

// AuthUsecase defines the auth operations consumed by this handler.
// Following Go convention: interfaces are defined by the consumer (handler), not the provider (usecase).
type AuthUsecase interface {
	Register(ctx context.Context, in usecase.RegisterInput) (*entity.User, error)
	Login(ctx context.Context, username, password, userAgent, ipAddress string) (*entity.User, *entity.Session, error)
	Logout(ctx context.Context, token string) error
	CurrentUser(ctx context.Context, token string) (*entity.User, error)
}

// LoginLimiter throttles login attempts per client key.
type LoginLimiter interface {
	Allow(key string) bool
}

// AuthHandler handles HTTP requests for registration, login and sessions.
type AuthHandler struct {
	auth    AuthUsecase
	limiter LoginLimiter
}

// NewAuthHandler creates a new AuthHandler. limiter may be nil to disable
// login throttling (tests).
func NewAuthHandler(auth AuthUsecase, limiter LoginLimiter) *AuthHandler {
	return &AuthHandler{auth: auth, limiter: limiter}
}

// Register handles POST /api/auth/register.
func (h *AuthHandler) Register(c *gin.Context) {
	var req dto.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Warn("register validation failed", "error", err, "remote_addr", c.ClientIP())
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "invalid request", Fields: api.FieldErrors(err)})
		return
	}

	user, err := h.auth.Register(c.Request.Context(), usecase.RegisterInput{
		Username:  req.Username,
		Email:     req.Email,
		Password:  req.Password,
		FirstName: req.FirstName,
		LastName:  req.LastName,
	})
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrUsernameTaken), errors.Is(err, usecase.ErrEmailTaken):
			slog.Warn("register conflict", "username", req.Username, "remote_addr", c.ClientIP())
			c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: err.Error()})
		default:
			slog.Error("register failed", "username", req.Username, "error", err)
			c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "registration failed"})
		}
		return
	}

	slog.Info("user registered", "user_id", user.ID, "username", user.Username)
	c.JSON(http.StatusCreated, dto.UserResponseFrom(user))
}

// Login handles POST /api/auth/login. On success the session token is set as
// an HTTP-only cookie; it is never returned in the body.
func (h *AuthHandler) Login(c *gin.Context) {
	if h.limiter != nil && !h.limiter.Allow(c.ClientIP()) {
		slog.Warn("login throttled", "remote_addr", c.ClientIP())
		c.JSON(http.StatusTooManyRequests, api.ErrorResponse{Error: "too many login attempts, try again later"})
		return
	}

	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Warn("login validation failed", "error", err, "remote_addr", c.ClientIP())
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "invalid request", Fields: api.FieldErrors(err)})
		return
	}

	user, session, err := h.auth.Login(c.Request.Context(), req.Username, req.Password,
		c.Request.UserAgent(), c.ClientIP())
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrInvalidCredentials), errors.Is(err, usecase.ErrAccountDisabled):
			// A single 401 for every auth failure; the log keeps the detail.
			slog.Warn("login failed", "username", req.Username, "error", err, "remote_addr", c.ClientIP())
			c.JSON(http.StatusUnauthorized, api.ErrorResponse{Error: "invalid username or password"})
		default:
			slog.Error("login failed", "username", req.Username, "error", err)
			c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "login failed"})
		}
		return
	}

	h.setSessionCookie(c, session.Token, time.Until(session.ExpiresAt))
	slog.Info("user logged in", "user_id", user.ID, "username", user.Username, "remote_addr", c.ClientIP())
	c.JSON(http.StatusOK, dto.UserResponseFrom(user))
}

// Logout handles POST /api/auth/logout. It revokes the server-side session
// and expires the cookie.
func (h *AuthHandler) Logout(c *gin.Context) {
	token, err := c.Cookie(middleware.SessionCookie)
	if err == nil && token != "" {
		if err := h.auth.Logout(c.Request.Context(), token); err != nil {
			slog.Error("logout failed", "error", err)
			c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "logout failed"})
			return
		}
	}
	h.setSessionCookie(c, "", -time.Hour)
	c.JSON(http.StatusOK, api.MessageResponse{Message: "logged out"})
}

// CurrentUser handles GET /api/auth/user. SessionRequired has already
// resolved the principal.
func (h *AuthHandler) CurrentUser(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, api.ErrorResponse{Error: "authentication required"})
		return
	}
	c.JSON(http.StatusOK, dto.UserResponseFrom(user))
}

func (h *AuthHandler) setSessionCookie(c *gin.Context, token string, maxAge time.Duration) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(middleware.SessionCookie, token, int(maxAge.Seconds()), "/", "", false, true)
}
