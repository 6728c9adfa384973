package handler_test

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"theatre-booking/internal/handler"
	"theatre-booking/internal/middleware"
	"theatre-booking/internal/model"
	"theatre-booking/internal/service/mocks"
	apperrors "theatre-booking/pkg/app_errors"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func setupTicketTestRouter(mockService *mocks.MockTicketService, userID uuid.UUID) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	handler.NewTicketHandler(mockService).RegisterRoutes(router, middleware.SetUserID(userID))
	return router
}

func ticketsURL(scheduleID uuid.UUID) string {
	return "/api/v1/admin/" + scheduleID.String() + "/tickets"
}

func TestTicketHandler_Create(t *testing.T) {
	userID := uuid.New()
	scheduleID := uuid.New()
	body := model.CreateTicketRequest{Name: "Stalls", Price: 45, Quantity: 5}

	t.Run("Success", func(t *testing.T) {
		mockService := mocks.NewMockTicketService(t)
		router := setupTicketTestRouter(mockService, userID)

		ticketID := uuid.New()
		mockService.EXPECT().Create(mock.Anything, userID, scheduleID, body).Return(ticketID, nil).Once()

		w := httptest.NewRecorder()
		router.ServeHTTP(w, createJSONHTTPRequest(http.MethodPost, ticketsURL(scheduleID), body))

		assert.Equal(t, http.StatusCreated, w.Code)
		assert.JSONEq(t, `{"id":"`+ticketID.String()+`"}`, w.Body.String())
	})

	t.Run("Failed - Capacity exceeded", func(t *testing.T) {
		mockService := mocks.NewMockTicketService(t)
		router := setupTicketTestRouter(mockService, userID)

		mockService.EXPECT().Create(mock.Anything, userID, scheduleID, body).
			Return(uuid.Nil, &apperrors.CapacityExceededError{Requested: 5, Remaining: 2}).Once()

		w := httptest.NewRecorder()
		router.ServeHTTP(w, createJSONHTTPRequest(http.MethodPost, ticketsURL(scheduleID), body))

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.JSONEq(t, errorBody("Cannot create 5 tickets. Only 2 more tickets can be created."), w.Body.String())
	})

	t.Run("Failed - Schedule not found", func(t *testing.T) {
		mockService := mocks.NewMockTicketService(t)
		router := setupTicketTestRouter(mockService, userID)

		mockService.EXPECT().Create(mock.Anything, userID, scheduleID, body).
			Return(uuid.Nil, apperrors.ErrScheduleNotFound).Once()

		w := httptest.NewRecorder()
		router.ServeHTTP(w, createJSONHTTPRequest(http.MethodPost, ticketsURL(scheduleID), body))

		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.JSONEq(t, errorBody("Invalid schedule ID"), w.Body.String())
	})

	t.Run("Failed - Invalid JSON", func(t *testing.T) {
		mockService := mocks.NewMockTicketService(t)
		router := setupTicketTestRouter(mockService, userID)

		w := httptest.NewRecorder()
		router.ServeHTTP(w, createJSONHTTPRequest(http.MethodPost, ticketsURL(scheduleID), InvalidJSON))

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.JSONEq(t, errorBody("Invalid request format"), w.Body.String())
	})

	t.Run("Failed - Zero quantity", func(t *testing.T) {
		mockService := mocks.NewMockTicketService(t)
		router := setupTicketTestRouter(mockService, userID)

		w := httptest.NewRecorder()
		router.ServeHTTP(w, createJSONHTTPRequest(http.MethodPost, ticketsURL(scheduleID),
			model.CreateTicketRequest{Name: "Stalls", Price: 45}))

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("Failed - Invalid schedule ID", func(t *testing.T) {
		mockService := mocks.NewMockTicketService(t)
		router := setupTicketTestRouter(mockService, userID)

		w := httptest.NewRecorder()
		router.ServeHTTP(w, createJSONHTTPRequest(http.MethodPost, "/api/v1/admin/not-a-uuid/tickets", body))

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.JSONEq(t, errorBody("Invalid schedule ID"), w.Body.String())
	})
}

func TestTicketHandler_Update(t *testing.T) {
	userID := uuid.New()
	scheduleID := uuid.New()
	ticketID := uuid.New()
	url := ticketsURL(scheduleID) + "/" + ticketID.String()

	t.Run("Success", func(t *testing.T) {
		mockService := mocks.NewMockTicketService(t)
		router := setupTicketTestRouter(mockService, userID)

		mockService.EXPECT().Update(mock.Anything, userID, ticketID, mock.AnythingOfType("model.TicketPatch")).
			Return(&model.Ticket{ID: ticketID, Name: "Balcony", Status: model.TicketStatusDraft}, nil).Once()

		w := httptest.NewRecorder()
		router.ServeHTTP(w, createJSONHTTPRequest(http.MethodPatch, url, map[string]string{"name": "Balcony"}))

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"name":"Balcony"`)
	})

	t.Run("Failed - Not draft", func(t *testing.T) {
		mockService := mocks.NewMockTicketService(t)
		router := setupTicketTestRouter(mockService, userID)

		mockService.EXPECT().Update(mock.Anything, userID, ticketID, mock.Anything).
			Return(nil, apperrors.ErrTicketNotEditable).Once()

		w := httptest.NewRecorder()
		router.ServeHTTP(w, createJSONHTTPRequest(http.MethodPatch, url, map[string]int{"quantity": 3}))

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.JSONEq(t, errorBody("Ticket cannot be updated. Only tickets in draft status can be updated."), w.Body.String())
	})

	t.Run("Failed - Empty patch", func(t *testing.T) {
		mockService := mocks.NewMockTicketService(t)
		router := setupTicketTestRouter(mockService, userID)

		w := httptest.NewRecorder()
		router.ServeHTTP(w, createJSONHTTPRequest(http.MethodPatch, url, map[string]string{}))

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestTicketHandler_UpdateStatus(t *testing.T) {
	userID := uuid.New()
	scheduleID := uuid.New()
	ticketID := uuid.New()
	url := ticketsURL(scheduleID) + "/" + ticketID.String() + "/status"

	t.Run("Success", func(t *testing.T) {
		mockService := mocks.NewMockTicketService(t)
		router := setupTicketTestRouter(mockService, userID)

		mockService.EXPECT().UpdateStatus(mock.Anything, userID, ticketID, model.TicketStatusActive).
			Return(&model.Ticket{ID: ticketID, Status: model.TicketStatusActive}, nil).Once()

		w := httptest.NewRecorder()
		router.ServeHTTP(w, createJSONHTTPRequest(http.MethodPatch, url, model.UpdateTicketStatusRequest{Status: model.TicketStatusActive}))

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("Failed - Back to draft", func(t *testing.T) {
		mockService := mocks.NewMockTicketService(t)
		router := setupTicketTestRouter(mockService, userID)

		mockService.EXPECT().UpdateStatus(mock.Anything, userID, ticketID, model.TicketStatusDraft).
			Return(nil, apperrors.ErrInvalidStatusTransition).Once()

		w := httptest.NewRecorder()
		router.ServeHTTP(w, createJSONHTTPRequest(http.MethodPatch, url, model.UpdateTicketStatusRequest{Status: model.TicketStatusDraft}))

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.JSONEq(t, errorBody("ACTIVE/INACTIVE ticket cannot be updated to DRAFT"), w.Body.String())
	})

	t.Run("Failed - Unknown status", func(t *testing.T) {
		mockService := mocks.NewMockTicketService(t)
		router := setupTicketTestRouter(mockService, userID)

		w := httptest.NewRecorder()
		router.ServeHTTP(w, createJSONHTTPRequest(http.MethodPatch, url, map[string]string{"status": "SOLD_OUT"}))

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.JSONEq(t, errorBody("Invalid ticket status"), w.Body.String())
	})
}

func TestTicketHandler_Remove(t *testing.T) {
	userID := uuid.New()
	scheduleID := uuid.New()
	ticketID := uuid.New()
	url := ticketsURL(scheduleID) + "/" + ticketID.String()

	t.Run("Success", func(t *testing.T) {
		mockService := mocks.NewMockTicketService(t)
		router := setupTicketTestRouter(mockService, userID)

		mockService.EXPECT().Remove(mock.Anything, userID, ticketID).Return(nil).Once()

		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodDelete, url, nil))

		assert.Equal(t, http.StatusNoContent, w.Code)
	})

	t.Run("Failed - Not draft", func(t *testing.T) {
		mockService := mocks.NewMockTicketService(t)
		router := setupTicketTestRouter(mockService, userID)

		mockService.EXPECT().Remove(mock.Anything, userID, ticketID).Return(apperrors.ErrTicketNotDeletable).Once()

		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodDelete, url, nil))

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "Only tickets in draft status can be deleted")
	})

	t.Run("Failed - Ticket not found", func(t *testing.T) {
		mockService := mocks.NewMockTicketService(t)
		router := setupTicketTestRouter(mockService, userID)

		mockService.EXPECT().Remove(mock.Anything, userID, ticketID).Return(apperrors.ErrTicketNotFound).Once()

		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodDelete, url, nil))

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestTicketHandler_FindActiveTickets(t *testing.T) {
	scheduleID := uuid.New()
	url := "/api/v1/schedules/" + scheduleID.String() + "/tickets"

	t.Run("Success", func(t *testing.T) {
		mockService := mocks.NewMockTicketService(t)
		router := setupTicketTestRouter(mockService, uuid.New())

		mockService.EXPECT().FindActiveTickets(mock.Anything, scheduleID).
			Return([]model.PublicTicket{{ID: uuid.New(), Name: "Stalls", Price: 45}}, nil).Once()

		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, url, nil))

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"name":"Stalls"`)
		assert.NotContains(t, w.Body.String(), "quantity")
	})

	t.Run("Failed - Unexpected error", func(t *testing.T) {
		mockService := mocks.NewMockTicketService(t)
		router := setupTicketTestRouter(mockService, uuid.New())

		mockService.EXPECT().FindActiveTickets(mock.Anything, scheduleID).Return(nil, errors.New("boom")).Once()

		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, url, nil))

		assert.Equal(t, http.StatusInternalServerError, w.Code)
		assert.JSONEq(t, errorBody("Internal server error"), w.Body.String())
	})
}
