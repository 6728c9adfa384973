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

type TheatreHandler struct {
	service service.TheatreService
}

func NewTheatreHandler(service service.TheatreService) *TheatreHandler {
	return &TheatreHandler{service: service}
}

func (h *TheatreHandler) RegisterRoutes(r *gin.Engine, authMw gin.HandlerFunc) {
	router := r.Group("/api/v1")
	{
		router.GET("theatres/:id", h.FindOne)
	}

	protected := r.Group("/api/v1", authMw)
	{
		protected.POST("theatres", h.Create)
		protected.GET("theatres", h.FindUserTheatres)
		protected.PATCH("theatres/:id", h.Update)
		protected.DELETE("theatres/:id", h.Remove)
	}
}

func (h *TheatreHandler) Create(c *gin.Context) {
	userID, ok := RequireUser(c)
	if !ok {
		return
	}

	var req model.CreateTheatreRequest
	if err := BindJson(c, &req); err != nil {
		return
	}

	theatre, err := h.service.Create(c, userID, req)
	if err != nil {
		h.handleError(c, err, "Create")
		return
	}

	respond(c, theatre, http.StatusCreated)
}

func (h *TheatreHandler) FindUserTheatres(c *gin.Context) {
	userID, ok := RequireUser(c)
	if !ok {
		return
	}

	theatres, err := h.service.FindUserTheatres(c, userID)
	if err != nil {
		h.handleError(c, err, "FindUserTheatres")
		return
	}

	respond(c, theatres, http.StatusOK)
}

func (h *TheatreHandler) FindOne(c *gin.Context) {
	id, ok := BindUUID(c, "id", "Invalid theatre ID")
	if !ok {
		return
	}

	theatre, err := h.service.FindOne(c, id)
	if err != nil {
		h.handleError(c, err, "FindOne")
		return
	}

	respond(c, theatre, http.StatusOK)
}

func (h *TheatreHandler) Update(c *gin.Context) {
	userID, ok := RequireUser(c)
	if !ok {
		return
	}
	id, ok := BindUUID(c, "id", "Invalid theatre ID")
	if !ok {
		return
	}

	var params model.UpdateTheatreParams
	if err := BindJson(c, &params); err != nil {
		return
	}

	theatre, err := h.service.Update(c, userID, id, params)
	if err != nil {
		h.handleError(c, err, "Update")
		return
	}

	respond(c, theatre, http.StatusOK)
}

func (h *TheatreHandler) Remove(c *gin.Context) {
	userID, ok := RequireUser(c)
	if !ok {
		return
	}
	id, ok := BindUUID(c, "id", "Invalid theatre ID")
	if !ok {
		return
	}

	if err := h.service.Remove(c, userID, id); err != nil {
		h.handleError(c, err, "Remove")
		return
	}

	respond(c, nil, http.StatusNoContent)
}

func (h *TheatreHandler) handleError(c *gin.Context, err error, operation string) {
	log := logger.WithComponent("handler").With(zap.String("operation", operation), zap.Error(err))
	switch {
	case errors.Is(err, apperrors.ErrTheatreNotFound):
		log.Warn("Theatre not found")
		c.JSON(http.StatusNotFound, gin.H{"error": "Invalid theatre ID"})
	case errors.Is(err, apperrors.ErrUnauthorized):
		log.Warn("Unauthorized")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
	case errors.Is(err, apperrors.ErrAuditoriumInUse):
		log.Warn("Theatre still referenced")
		c.JSON(http.StatusConflict, gin.H{"error": "Theatre has auditoriums with schedules"})
	case errors.Is(err, apperrors.ErrInvalidInput):
		log.Warn("Invalid input")
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input"})
	default:
		log.Error("Unexpected error")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
	}
}
