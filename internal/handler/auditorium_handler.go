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

type AuditoriumHandler struct {
	service service.AuditoriumService
}

func NewAuditoriumHandler(service service.AuditoriumService) *AuditoriumHandler {
	return &AuditoriumHandler{service: service}
}

func (h *AuditoriumHandler) RegisterRoutes(r *gin.Engine, authMw gin.HandlerFunc) {
	router := r.Group("/api/v1/theatres/:id")
	{
		router.GET("auditoriums", h.FindTheatreAuditoriums)
		router.GET("auditoriums/:auditoriumId", h.FindOne)
	}

	protected := r.Group("/api/v1/theatres/:id", authMw)
	{
		protected.POST("auditoriums", h.Create)
		protected.PATCH("auditoriums/:auditoriumId", h.Update)
		protected.DELETE("auditoriums/:auditoriumId", h.Remove)
	}
}

func (h *AuditoriumHandler) Create(c *gin.Context) {
	userID, ok := RequireUser(c)
	if !ok {
		return
	}
	theatreID, ok := BindUUID(c, "id", "Invalid theatre ID")
	if !ok {
		return
	}

	var req model.CreateAuditoriumRequest
	if err := BindJson(c, &req); err != nil {
		return
	}

	auditorium, err := h.service.Create(c, userID, theatreID, req)
	if err != nil {
		h.handleError(c, err, "Create")
		return
	}

	respond(c, auditorium, http.StatusCreated)
}

func (h *AuditoriumHandler) FindTheatreAuditoriums(c *gin.Context) {
	theatreID, ok := BindUUID(c, "id", "Invalid theatre ID")
	if !ok {
		return
	}

	auditoriums, err := h.service.FindTheatreAuditoriums(c, theatreID)
	if err != nil {
		h.handleError(c, err, "FindTheatreAuditoriums")
		return
	}

	respond(c, auditoriums, http.StatusOK)
}

func (h *AuditoriumHandler) FindOne(c *gin.Context) {
	theatreID, ok := BindUUID(c, "id", "Invalid theatre ID")
	if !ok {
		return
	}
	id, ok := BindUUID(c, "auditoriumId", "Invalid auditorium ID")
	if !ok {
		return
	}

	auditorium, err := h.service.FindOne(c, theatreID, id)
	if err != nil {
		h.handleError(c, err, "FindOne")
		return
	}

	respond(c, auditorium, http.StatusOK)
}

func (h *AuditoriumHandler) Update(c *gin.Context) {
	userID, ok := RequireUser(c)
	if !ok {
		return
	}
	theatreID, ok := BindUUID(c, "id", "Invalid theatre ID")
	if !ok {
		return
	}
	id, ok := BindUUID(c, "auditoriumId", "Invalid auditorium ID")
	if !ok {
		return
	}

	var params model.UpdateAuditoriumParams
	if err := BindJson(c, &params); err != nil {
		return
	}

	auditorium, err := h.service.Update(c, userID, theatreID, id, params)
	if err != nil {
		h.handleError(c, err, "Update")
		return
	}

	respond(c, auditorium, http.StatusOK)
}

func (h *AuditoriumHandler) Remove(c *gin.Context) {
	userID, ok := RequireUser(c)
	if !ok {
		return
	}
	theatreID, ok := BindUUID(c, "id", "Invalid theatre ID")
	if !ok {
		return
	}
	id, ok := BindUUID(c, "auditoriumId", "Invalid auditorium ID")
	if !ok {
		return
	}

	if err := h.service.Remove(c, userID, theatreID, id); err != nil {
		h.handleError(c, err, "Remove")
		return
	}

	respond(c, nil, http.StatusNoContent)
}

func (h *AuditoriumHandler) handleError(c *gin.Context, err error, operation string) {
	log := logger.WithComponent("handler").With(zap.String("operation", operation), zap.Error(err))
	switch {
	case errors.Is(err, apperrors.ErrInvalidSeatMap):
		log.Warn("Invalid seat map")
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, apperrors.ErrAuditoriumNotFound):
		log.Warn("Auditorium not found")
		c.JSON(http.StatusNotFound, gin.H{"error": "Invalid auditorium ID"})
	case errors.Is(err, apperrors.ErrTheatreNotFound):
		log.Warn("Theatre not found")
		c.JSON(http.StatusNotFound, gin.H{"error": "Invalid theatre ID"})
	case errors.Is(err, apperrors.ErrUnauthorized):
		log.Warn("Unauthorized")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
	case errors.Is(err, apperrors.ErrAuditoriumInUse):
		log.Warn("Auditorium in use")
		c.JSON(http.StatusConflict, gin.H{"error": "Auditorium has schedules and cannot be deleted"})
	case errors.Is(err, apperrors.ErrInvalidInput):
		log.Warn("Invalid input")
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input"})
	default:
		log.Error("Unexpected error")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
	}
}
