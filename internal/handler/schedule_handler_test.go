package handler_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

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

func setupScheduleTestRouter(mockService *mocks.MockScheduleService, userID uuid.UUID) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	handler.NewScheduleHandler(mockService).RegisterRoutes(router, middleware.SetUserID(userID))
	return router
}

func TestScheduleHandler_Create(t *testing.T) {
	userID := uuid.New()
	req := model.CreateScheduleRequest{
		AuditoriumID: uuid.New(),
		ShowID:       uuid.New(),
		StartTime:    time.Date(2026, 11, 20, 19, 30, 0, 0, time.UTC),
	}

	t.Run("Success", func(t *testing.T) {
		mockService := mocks.NewMockScheduleService(t)
		router := setupScheduleTestRouter(mockService, userID)

		id := uuid.New()
		mockService.EXPECT().Create(mock.Anything, userID, req).Return(&model.ScheduleSummary{ID: id}, nil).Once()

		w := httptest.NewRecorder()
		router.ServeHTTP(w, createJSONHTTPRequest(http.MethodPost, "/api/v1/schedules", req))

		assert.Equal(t, http.StatusCreated, w.Code)
		assert.JSONEq(t, `{"id":"`+id.String()+`"}`, w.Body.String())
	})

	t.Run("Failed - Conflict", func(t *testing.T) {
		mockService := mocks.NewMockScheduleService(t)
		router := setupScheduleTestRouter(mockService, userID)

		mockService.EXPECT().Create(mock.Anything, userID, req).Return(nil, apperrors.ErrScheduleConflict).Once()

		w := httptest.NewRecorder()
		router.ServeHTTP(w, createJSONHTTPRequest(http.MethodPost, "/api/v1/schedules", req))

		assert.Equal(t, http.StatusConflict, w.Code)
		assert.JSONEq(t, errorBody("The auditorium already has a schedule in this time range"), w.Body.String())
	})

	t.Run("Failed - Show not found", func(t *testing.T) {
		mockService := mocks.NewMockScheduleService(t)
		router := setupScheduleTestRouter(mockService, userID)

		mockService.EXPECT().Create(mock.Anything, userID, req).Return(nil, apperrors.ErrShowNotFound).Once()

		w := httptest.NewRecorder()
		router.ServeHTTP(w, createJSONHTTPRequest(http.MethodPost, "/api/v1/schedules", req))

		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.JSONEq(t, errorBody("Invalid show ID"), w.Body.String())
	})

	t.Run("Failed - Invalid JSON", func(t *testing.T) {
		mockService := mocks.NewMockScheduleService(t)
		router := setupScheduleTestRouter(mockService, userID)

		w := httptest.NewRecorder()
		router.ServeHTTP(w, createJSONHTTPRequest(http.MethodPost, "/api/v1/schedules", InvalidJSON))

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestScheduleHandler_Update(t *testing.T) {
	userID := uuid.New()
	id := uuid.New()
	url := "/api/v1/schedules/" + id.String()
	req := model.UpdateScheduleRequest{StartTime: time.Date(2026, 11, 21, 14, 0, 0, 0, time.UTC)}

	t.Run("Success", func(t *testing.T) {
		mockService := mocks.NewMockScheduleService(t)
		router := setupScheduleTestRouter(mockService, userID)

		mockService.EXPECT().Update(mock.Anything, userID, id, req).Return(&model.ScheduleSummary{ID: id}, nil).Once()

		w := httptest.NewRecorder()
		router.ServeHTTP(w, createJSONHTTPRequest(http.MethodPatch, url, req))

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("Failed - Schedule not found", func(t *testing.T) {
		mockService := mocks.NewMockScheduleService(t)
		router := setupScheduleTestRouter(mockService, userID)

		mockService.EXPECT().Update(mock.Anything, userID, id, req).Return(nil, apperrors.ErrScheduleNotFound).Once()

		w := httptest.NewRecorder()
		router.ServeHTTP(w, createJSONHTTPRequest(http.MethodPatch, url, req))

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestScheduleHandler_FindOne(t *testing.T) {
	id := uuid.New()

	t.Run("Success", func(t *testing.T) {
		mockService := mocks.NewMockScheduleService(t)
		router := setupScheduleTestRouter(mockService, uuid.New())

		mockService.EXPECT().FindOne(mock.Anything, id).Return(&model.Schedule{ID: id}, nil).Once()

		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/schedules/"+id.String(), nil))

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), id.String())
	})

	t.Run("Failed - Invalid ID", func(t *testing.T) {
		mockService := mocks.NewMockScheduleService(t)
		router := setupScheduleTestRouter(mockService, uuid.New())

		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/schedules/42", nil))

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestScheduleHandler_Remove(t *testing.T) {
	userID := uuid.New()
	id := uuid.New()

	mockService := mocks.NewMockScheduleService(t)
	router := setupScheduleTestRouter(mockService, userID)

	mockService.EXPECT().Remove(mock.Anything, userID, id).Return(nil).Once()

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodDelete, "/api/v1/schedules/"+id.String(), nil))

	assert.Equal(t, http.StatusNoContent, w.Code)
}
