package handler_test

import (
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

func setupAuthTestRouter(mockService *mocks.MockAuthService, userID uuid.UUID) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	noLimit := func(c *gin.Context) { c.Next() }
	handler.NewAuthHandler(mockService).RegisterRoutes(router, middleware.SetUserID(userID), noLimit)
	return router
}

func TestAuthHandler_SendMagicLink(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		mockService := mocks.NewMockAuthService(t)
		router := setupAuthTestRouter(mockService, uuid.Nil)

		mockService.EXPECT().SendMagicLink(mock.Anything, "alice@example.com").Return(nil).Once()

		w := httptest.NewRecorder()
		router.ServeHTTP(w, createJSONHTTPRequest(http.MethodPost, "/api/v1/auth/magic-login",
			model.MagicLinkRequest{Destination: "alice@example.com"}))

		assert.Equal(t, http.StatusAccepted, w.Code)
	})

	t.Run("Failed - Not an email", func(t *testing.T) {
		mockService := mocks.NewMockAuthService(t)
		router := setupAuthTestRouter(mockService, uuid.Nil)

		w := httptest.NewRecorder()
		router.ServeHTTP(w, createJSONHTTPRequest(http.MethodPost, "/api/v1/auth/magic-login",
			model.MagicLinkRequest{Destination: "alice"}))

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestAuthHandler_MagicLinkCallback(t *testing.T) {
	identity := &model.MagicLinkIdentity{UserID: uuid.New(), Email: "alice@example.com", NextAction: model.NextActionCompleteSignup}

	t.Run("Success - Complete signup", func(t *testing.T) {
		mockService := mocks.NewMockAuthService(t)
		router := setupAuthTestRouter(mockService, uuid.Nil)

		mockService.EXPECT().VerifyMagicLink(mock.Anything, "link-token").Return(identity, nil).Once()
		mockService.EXPECT().LoginOrCompleteSignup(mock.Anything, identity).Return(&model.LoginResult{
			NextAction:  model.NextActionCompleteSignup,
			SignupToken: "signup-token",
		}, nil).Once()

		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/auth/magic-login/callback?token=link-token", nil))

		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"next_action":"complete_signup","signup_token":"signup-token"}`, w.Body.String())
	})

	t.Run("Failed - Reused link", func(t *testing.T) {
		mockService := mocks.NewMockAuthService(t)
		router := setupAuthTestRouter(mockService, uuid.Nil)

		mockService.EXPECT().VerifyMagicLink(mock.Anything, "link-token").Return(nil, apperrors.ErrInvalidToken).Once()

		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/auth/magic-login/callback?token=link-token", nil))

		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.JSONEq(t, errorBody("Invalid or expired token"), w.Body.String())
	})

	t.Run("Failed - Missing token", func(t *testing.T) {
		mockService := mocks.NewMockAuthService(t)
		router := setupAuthTestRouter(mockService, uuid.Nil)

		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/auth/magic-login/callback", nil))

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestAuthHandler_Register(t *testing.T) {
	req := model.RegisterRequest{Email: "bob@example.com", Name: "Bob", Password: "correct horse"}

	t.Run("Success", func(t *testing.T) {
		mockService := mocks.NewMockAuthService(t)
		router := setupAuthTestRouter(mockService, uuid.Nil)

		mockService.EXPECT().Register(mock.Anything, req).Return(&model.TokenPair{AccessToken: "a", RefreshToken: "r"}, nil).Once()

		w := httptest.NewRecorder()
		router.ServeHTTP(w, createJSONHTTPRequest(http.MethodPost, "/api/v1/auth/register", req))

		assert.Equal(t, http.StatusCreated, w.Code)
	})

	t.Run("Failed - Email taken", func(t *testing.T) {
		mockService := mocks.NewMockAuthService(t)
		router := setupAuthTestRouter(mockService, uuid.Nil)

		mockService.EXPECT().Register(mock.Anything, req).Return(nil, apperrors.ErrEmailTaken).Once()

		w := httptest.NewRecorder()
		router.ServeHTTP(w, createJSONHTTPRequest(http.MethodPost, "/api/v1/auth/register", req))

		assert.Equal(t, http.StatusConflict, w.Code)
	})

	t.Run("Failed - Short password", func(t *testing.T) {
		mockService := mocks.NewMockAuthService(t)
		router := setupAuthTestRouter(mockService, uuid.Nil)

		w := httptest.NewRecorder()
		router.ServeHTTP(w, createJSONHTTPRequest(http.MethodPost, "/api/v1/auth/register",
			model.RegisterRequest{Email: "bob@example.com", Name: "Bob", Password: "short"}))

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestAuthHandler_Login(t *testing.T) {
	req := model.LoginRequest{Email: "bob@example.com", Password: "wrong"}

	mockService := mocks.NewMockAuthService(t)
	router := setupAuthTestRouter(mockService, uuid.Nil)

	mockService.EXPECT().Login(mock.Anything, req).Return(nil, apperrors.ErrInvalidCredentials).Once()

	w := httptest.NewRecorder()
	router.ServeHTTP(w, createJSONHTTPRequest(http.MethodPost, "/api/v1/auth/login", req))

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.JSONEq(t, errorBody("Invalid email or password"), w.Body.String())
}

func TestAuthHandler_Logout(t *testing.T) {
	userID := uuid.New()

	mockService := mocks.NewMockAuthService(t)
	router := setupAuthTestRouter(mockService, userID)

	mockService.EXPECT().Logout(mock.Anything, userID, "refresh").Return(nil).Once()

	w := httptest.NewRecorder()
	router.ServeHTTP(w, createJSONHTTPRequest(http.MethodPost, "/api/v1/auth/logout", model.LogoutRequest{RefreshToken: "refresh"}))

	assert.Equal(t, http.StatusNoContent, w.Code)
}
