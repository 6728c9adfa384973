package handler

import (
	"errors"
	"net/http"

	"theatre-booking/internal/service"
	apperrors "theatre-booking/pkg/app_errors"
	"theatre-booking/pkg/logger"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type UserHandler struct {
	service service.UserService
}

func NewUserHandler(service service.UserService) *UserHandler {
	return &UserHandler{service: service}
}

func (h *UserHandler) RegisterRoutes(r *gin.Engine, authMw gin.HandlerFunc) {
	router := r.Group("/api/v1", authMw)
	{
		router.GET("user", h.Profile)
	}
}

func (h *UserHandler) Profile(c *gin.Context) {
	userID, ok := RequireUser(c)
	if !ok {
		return
	}

	profile, err := h.service.Profile(c, userID)
	if err != nil {
		log := logger.WithComponent("handler").With(zap.String("operation", "Profile"), zap.Error(err))
		if errors.Is(err, apperrors.ErrUnauthorized) {
			log.Warn("Unknown user")
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}
		log.Error("Unexpected error")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	respond(c, profile, http.StatusOK)
}
