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

type ScheduleHandler struct {
	service service.ScheduleService
}

func NewScheduleHandler(service service.ScheduleService) *ScheduleHandler {
	return &ScheduleHandler{service: service}
}

func (h *ScheduleHandler) RegisterRoutes(r *gin.Engine, authMw gin.HandlerFunc) {
	router := r.Group("/api/v1")
	{
		router.GET("schedules/:id", h.FindOne)
		router.GET("shows/:id/schedules", h.FindShowSchedules)
		router.GET("theatres/:id/auditoriums/:auditoriumId/schedules", h.FindAuditoriumSchedules)
	}

	protected := r.Group("/api/v1", authMw)
	{
		protected.POST("schedules", h.Create)
		protected.PATCH("schedules/:id", h.Update)
		protected.DELETE("schedules/:id", h.Remove)
	}
}

func (h *ScheduleHandler) Create(c *gin.Context) {
	userID, ok := RequireUser(c)
	if !ok {
		return
	}

	var req model.CreateScheduleRequest
	if err := BindJson(c, &req); err != nil {
		return
	}

	summary, err := h.service.Create(c, userID, req)
	if err != nil {
		h.handleError(c, err, "Create")
		return
	}

	respond(c, summary, http.StatusCreated)
}

func (h *ScheduleHandler) FindOne(c *gin.Context) {
	id, ok := BindUUID(c, "id", "Invalid schedule ID")
	if !ok {
		return
	}

	schedule, err := h.service.FindOne(c, id)
	if err != nil {
		h.handleError(c, err, "FindOne")
		return
	}

	respond(c, schedule, http.StatusOK)
}

func (h *ScheduleHandler) Update(c *gin.Context) {
	userID, ok := RequireUser(c)
	if !ok {
		return
	}
	id, ok := BindUUID(c, "id", "Invalid schedule ID")
	if !ok {
		return
	}

	var req model.UpdateScheduleRequest
	if err := BindJson(c, &req); err != nil {
		return
	}

	summary, err := h.service.Update(c, userID, id, req)
	if err != nil {
		h.handleError(c, err, "Update")
		return
	}

	respond(c, summary, http.StatusOK)
}

func (h *ScheduleHandler) Remove(c *gin.Context) {
	userID, ok := RequireUser(c)
	if !ok {
		return
	}
	id, ok := BindUUID(c, "id", "Invalid schedule ID")
	if !ok {
		return
	}

	if err := h.service.Remove(c, userID, id); err != nil {
		h.handleError(c, err, "Remove")
		return
	}

	respond(c, nil, http.StatusNoContent)
}

func (h *ScheduleHandler) FindShowSchedules(c *gin.Context) {
	showID, ok := BindUUID(c, "id", "Invalid show ID")
	if !ok {
		return
	}

	schedules, err := h.service.FindShowSchedules(c, showID)
	if err != nil {
		h.handleError(c, err, "FindShowSchedules")
		return
	}

	respond(c, schedules, http.StatusOK)
}

func (h *ScheduleHandler) FindAuditoriumSchedules(c *gin.Context) {
	theatreID, ok := BindUUID(c, "id", "Invalid theatre ID")
	if !ok {
		return
	}
	auditoriumID, ok := BindUUID(c, "auditoriumId", "Invalid auditorium ID")
	if !ok {
		return
	}

	schedules, err := h.service.FindAuditoriumSchedules(c, theatreID, auditoriumID)
	if err != nil {
		h.handleError(c, err, "FindAuditoriumSchedules")
		return
	}

	respond(c, schedules, http.StatusOK)
}

func (h *ScheduleHandler) handleError(c *gin.Context, err error, operation string) {
	log := logger.WithComponent("handler").With(zap.String("operation", operation), zap.Error(err))
	switch {
	case errors.Is(err, apperrors.ErrScheduleConflict):
		log.Warn("Schedule conflict")
		c.JSON(http.StatusConflict, gin.H{
			"error": "The auditorium already has a schedule in this time range",
		})
	case errors.Is(err, apperrors.ErrScheduleNotFound):
		log.Warn("Schedule not found")
		c.JSON(http.StatusNotFound, gin.H{"error": "Invalid schedule ID"})
	case errors.Is(err, apperrors.ErrAuditoriumNotFound):
		log.Warn("Auditorium not found")
		c.JSON(http.StatusNotFound, gin.H{"error": "Invalid auditorium ID"})
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
