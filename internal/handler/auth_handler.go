package handler

import (
	"errors"
	"net/http"

	"theatre-booking/internal/model"
	"theatre-booking/internal/service"
	apperrors "theatre-booking/pkg/app_errors"
	"theatre-booking/pkg/logger"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type AuthHandler struct {
	service service.AuthService
}

func NewAuthHandler(service service.AuthService) *AuthHandler {
	return &AuthHandler{service: service}
}

// RegisterRoutes mounts /auth behind limit; logout additionally needs authMw.
func (h *AuthHandler) RegisterRoutes(r *gin.Engine, authMw, limit gin.HandlerFunc) {
	router := r.Group("/api/v1/auth", limit)
	{
		router.POST("magic-login", h.SendMagicLink)
		router.GET("magic-login/callback", h.MagicLinkCallback)
		router.POST("complete-signup", h.CompleteSignup)
		router.POST("register", h.Register)
		router.POST("login", h.Login)
		router.POST("refresh-token", h.RefreshTokens)
		router.POST("logout", authMw, h.Logout)
	}
}

type magicLinkCallbackQuery struct {
	Token string `form:"token" binding:"required"`
}

func (h *AuthHandler) SendMagicLink(c *gin.Context) {
	var req model.MagicLinkRequest
	if err := BindJson(c, &req); err != nil {
		return
	}

	if err := h.service.SendMagicLink(c, req.Destination); err != nil {
		h.handleError(c, err, "SendMagicLink")
		return
	}

	respond(c, gin.H{"message": "Check your inbox for a sign-in link"}, http.StatusAccepted)
}

func (h *AuthHandler) MagicLinkCallback(c *gin.Context) {
	var query magicLinkCallbackQuery
	if err := BindQuery(c, &query); err != nil {
		return
	}

	identity, err := h.service.VerifyMagicLink(c, query.Token)
	if err != nil {
		h.handleError(c, err, "MagicLinkCallback")
		return
	}

	result, err := h.service.LoginOrCompleteSignup(c, identity)
	if err != nil {
		h.handleError(c, err, "MagicLinkCallback")
		return
	}

	respond(c, result, http.StatusOK)
}

func (h *AuthHandler) CompleteSignup(c *gin.Context) {
	var req model.CompleteSignupRequest
	if err := BindJson(c, &req); err != nil {
		return
	}

	tokens, err := h.service.CompleteSignup(c, req)
	if err != nil {
		h.handleError(c, err, "CompleteSignup")
		return
	}

	respond(c, tokens, http.StatusOK)
}

func (h *AuthHandler) Register(c *gin.Context) {
	var req model.RegisterRequest
	if err := BindJson(c, &req); err != nil {
		return
	}

	tokens, err := h.service.Register(c, req)
	if err != nil {
		h.handleError(c, err, "Register")
		return
	}

	respond(c, tokens, http.StatusCreated)
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req model.LoginRequest
	if err := BindJson(c, &req); err != nil {
		return
	}

	tokens, err := h.service.Login(c, req)
	if err != nil {
		h.handleError(c, err, "Login")
		return
	}

	respond(c, tokens, http.StatusOK)
}

func (h *AuthHandler) RefreshTokens(c *gin.Context) {
	var req model.RefreshTokenRequest
	if err := BindJson(c, &req); err != nil {
		return
	}

	tokens, err := h.service.RefreshTokens(c, req.UserID, req.RefreshToken)
	if err != nil {
		h.handleError(c, err, "RefreshTokens")
		return
	}

	respond(c, tokens, http.StatusOK)
}

func (h *AuthHandler) Logout(c *gin.Context) {
	userID, ok := RequireUser(c)
	if !ok {
		return
	}

	var req model.LogoutRequest
	if err := BindJson(c, &req); err != nil {
		return
	}

	if err := h.service.Logout(c, userID, req.RefreshToken); err != nil {
		h.handleError(c, err, "Logout")
		return
	}

	respond(c, nil, http.StatusNoContent)
}

func (h *AuthHandler) handleError(c *gin.Context, err error, operation string) {
	log := logger.WithComponent("handler").With(zap.String("operation", operation), zap.Error(err))
	switch {
	case errors.Is(err, apperrors.ErrInvalidToken):
		log.Warn("Invalid token")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid or expired token"})
	case errors.Is(err, apperrors.ErrInvalidCredentials):
		log.Warn("Invalid credentials")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid email or password"})
	case errors.Is(err, apperrors.ErrSignupRequired):
		log.Warn("Signup required")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Please sign in with a magic link first"})
	case errors.Is(err, apperrors.ErrUnauthorized):
		log.Warn("Unauthorized")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
	case errors.Is(err, apperrors.ErrEmailTaken):
		log.Warn("Email taken")
		c.JSON(http.StatusConflict, gin.H{"error": "Email is already registered"})
	default:
		log.Error("Unexpected error")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
	}
}
