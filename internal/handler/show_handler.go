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

type ShowHandler struct {
	service service.ShowService
}

func NewShowHandler(service service.ShowService) *ShowHandler {
	return &ShowHandler{service: service}
}

func (h *ShowHandler) RegisterRoutes(r *gin.Engine, authMw gin.HandlerFunc) {
	router := r.Group("/api/v1")
	{
		router.GET("shows/:id", h.FindOne)
	}

	protected := r.Group("/api/v1", authMw)
	{
		protected.POST("shows", h.Create)
		protected.GET("shows", h.FindUserShows)
		protected.PATCH("shows/:id", h.Update)
		protected.DELETE("shows/:id", h.Remove)
	}
}

func (h *ShowHandler) Create(c *gin.Context) {
	userID, ok := RequireUser(c)
	if !ok {
		return
	}

	var req model.CreateShowRequest
	if err := BindJson(c, &req); err != nil {
		return
	}

	show, err := h.service.Create(c, userID, req)
	if err != nil {
		h.handleError(c, err, "Create")
		return
	}

	respond(c, show, http.StatusCreated)
}

func (h *ShowHandler) FindUserShows(c *gin.Context) {
	userID, ok := RequireUser(c)
	if !ok {
		return
	}

	shows, err := h.service.FindUserShows(c, userID)
	if err != nil {
		h.handleError(c, err, "FindUserShows")
		return
	}

	respond(c, shows, http.StatusOK)
}

func (h *ShowHandler) FindOne(c *gin.Context) {
	id, ok := BindUUID(c, "id", "Invalid show ID")
	if !ok {
		return
	}

	show, err := h.service.FindOne(c, id)
	if err != nil {
		h.handleError(c, err, "FindOne")
		return
	}

	respond(c, show, http.StatusOK)
}

func (h *ShowHandler) Update(c *gin.Context) {
	userID, ok := RequireUser(c)
	if !ok {
		return
	}
	id, ok := BindUUID(c, "id", "Invalid show ID")
	if !ok {
		return
	}

	var params model.UpdateShowParams
	if err := BindJson(c, &params); err != nil {
		return
	}

	show, err := h.service.Update(c, userID, id, params)
	if err != nil {
		h.handleError(c, err, "Update")
		return
	}

	respond(c, show, http.StatusOK)
}

func (h *ShowHandler) Remove(c *gin.Context) {
	userID, ok := RequireUser(c)
	if !ok {
		return
	}
	id, ok := BindUUID(c, "id", "Invalid show ID")
	if !ok {
		return
	}

	if err := h.service.Remove(c, userID, id); err != nil {
		h.handleError(c, err, "Remove")
		return
	}

	respond(c, nil, http.StatusNoContent)
}

func (h *ShowHandler) handleError(c *gin.Context, err error, operation string) {
	log := logger.WithComponent("handler").With(zap.String("operation", operation), zap.Error(err))
	switch {
	case errors.Is(err, apperrors.ErrShowNotFound):
		log.Warn("Show not found")
		c.JSON(http.StatusNotFound, gin.H{"error": "Invalid show ID"})
	case errors.Is(err, apperrors.ErrInvalidInput):
		log.Warn("Invalid input")
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input"})
	default:
		log.Error("Unexpected error")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
	}
}
