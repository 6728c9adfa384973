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

type TicketHandler struct {
	service service.TicketService
}

func NewTicketHandler(service service.TicketService) *TicketHandler {
	return &TicketHandler{service: service}
}

func (h *TicketHandler) RegisterRoutes(r *gin.Engine, authMw gin.HandlerFunc) {
	router := r.Group("/api/v1")
	{
		router.GET("schedules/:id/tickets", h.FindActiveTickets)
	}

	admin := r.Group("/api/v1/admin", authMw)
	{
		admin.POST(":scheduleId/tickets", h.Create)
		admin.GET(":scheduleId/tickets", h.FindAll)
		admin.GET(":scheduleId/tickets/:ticketId", h.FindOne)
		admin.PATCH(":scheduleId/tickets/:ticketId", h.Update)
		admin.PATCH(":scheduleId/tickets/:ticketId/status", h.UpdateStatus)
		admin.DELETE(":scheduleId/tickets/:ticketId", h.Remove)
	}
}

func (h *TicketHandler) Create(c *gin.Context) {
	userID, ok := RequireUser(c)
	if !ok {
		return
	}
	scheduleID, ok := BindUUID(c, "scheduleId", "Invalid schedule ID")
	if !ok {
		return
	}

	var req model.CreateTicketRequest
	if err := BindJson(c, &req); err != nil {
		return
	}

	id, err := h.service.Create(c, userID, scheduleID, req)
	if err != nil {
		h.handleError(c, err, "Create")
		return
	}

	respond(c, gin.H{"id": id}, http.StatusCreated)
}

func (h *TicketHandler) FindAll(c *gin.Context) {
	userID, ok := RequireUser(c)
	if !ok {
		return
	}
	scheduleID, ok := BindUUID(c, "scheduleId", "Invalid schedule ID")
	if !ok {
		return
	}

	tickets, err := h.service.FindAll(c, userID, scheduleID)
	if err != nil {
		h.handleError(c, err, "FindAll")
		return
	}

	respond(c, tickets, http.StatusOK)
}

func (h *TicketHandler) FindOne(c *gin.Context) {
	userID, ok := RequireUser(c)
	if !ok {
		return
	}
	ticketID, ok := BindUUID(c, "ticketId", "Invalid ticket ID")
	if !ok {
		return
	}

	ticket, err := h.service.FindOne(c, userID, ticketID)
	if err != nil {
		h.handleError(c, err, "FindOne")
		return
	}

	respond(c, ticket, http.StatusOK)
}

func (h *TicketHandler) Update(c *gin.Context) {
	userID, ok := RequireUser(c)
	if !ok {
		return
	}
	ticketID, ok := BindUUID(c, "ticketId", "Invalid ticket ID")
	if !ok {
		return
	}

	var patch model.TicketPatch
	if err := BindJson(c, &patch); err != nil {
		return
	}
	if patch.IsEmpty() {
		c.JSON(http.StatusBadRequest, gin.H{"error": "At least one of name, description, price or quantity is required"})
		return
	}

	ticket, err := h.service.Update(c, userID, ticketID, patch)
	if err != nil {
		h.handleError(c, err, "Update")
		return
	}

	respond(c, ticket, http.StatusOK)
}

func (h *TicketHandler) UpdateStatus(c *gin.Context) {
	userID, ok := RequireUser(c)
	if !ok {
		return
	}
	ticketID, ok := BindUUID(c, "ticketId", "Invalid ticket ID")
	if !ok {
		return
	}

	var req model.UpdateTicketStatusRequest
	if err := BindJson(c, &req); err != nil {
		return
	}
	if !req.Status.IsValid() {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid ticket status"})
		return
	}

	ticket, err := h.service.UpdateStatus(c, userID, ticketID, req.Status)
	if err != nil {
		h.handleError(c, err, "UpdateStatus")
		return
	}

	respond(c, ticket, http.StatusOK)
}

func (h *TicketHandler) Remove(c *gin.Context) {
	userID, ok := RequireUser(c)
	if !ok {
		return
	}
	ticketID, ok := BindUUID(c, "ticketId", "Invalid ticket ID")
	if !ok {
		return
	}

	if err := h.service.Remove(c, userID, ticketID); err != nil {
		h.handleError(c, err, "Remove")
		return
	}

	respond(c, nil, http.StatusNoContent)
}

func (h *TicketHandler) FindActiveTickets(c *gin.Context) {
	scheduleID, ok := BindUUID(c, "id", "Invalid schedule ID")
	if !ok {
		return
	}

	tickets, err := h.service.FindActiveTickets(c, scheduleID)
	if err != nil {
		h.handleError(c, err, "FindActiveTickets")
		return
	}

	respond(c, tickets, http.StatusOK)
}

func (h *TicketHandler) handleError(c *gin.Context, err error, operation string) {
	log := logger.WithComponent("handler").With(zap.String("operation", operation), zap.Error(err))
	switch {
	case errors.Is(err, apperrors.ErrCapacityExceeded):
		log.Warn("Capacity exceeded")
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, apperrors.ErrTicketNotEditable):
		log.Warn("Ticket not editable")
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Ticket cannot be updated. Only tickets in draft status can be updated.",
		})
	case errors.Is(err, apperrors.ErrTicketNotDeletable):
		log.Warn("Ticket not deletable")
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Ticket cannot be deleted. Only tickets in draft status can be deleted. If you want to cancel an active ticket, please consider changing the status to INACTIVE.",
		})
	case errors.Is(err, apperrors.ErrInvalidStatusTransition):
		log.Warn("Invalid status transition")
		c.JSON(http.StatusBadRequest, gin.H{"error": "ACTIVE/INACTIVE ticket cannot be updated to DRAFT"})
	case errors.Is(err, apperrors.ErrScheduleNotFound):
		log.Warn("Schedule not found")
		c.JSON(http.StatusNotFound, gin.H{"error": "Invalid schedule ID"})
	case errors.Is(err, apperrors.ErrTicketNotFound):
		log.Warn("Ticket not found")
		c.JSON(http.StatusNotFound, gin.H{"error": "Invalid ticket ID"})
	case errors.Is(err, apperrors.ErrInvalidInput):
		log.Warn("Invalid input")
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input"})
	default:
		log.Error("Unexpected error")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
	}
}
