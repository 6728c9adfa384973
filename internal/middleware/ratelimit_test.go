package middleware_test

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"theatre-booking/internal/cache"
	cachemocks "theatre-booking/internal/cache/mocks"
	"theatre-booking/internal/middleware"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func setupRateLimitRouter(limiter cache.RateLimiter) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.POST("/auth/login", middleware.RateLimit(limiter, "auth"), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})
	return r
}

func TestRateLimit(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		limiter := cachemocks.NewMockRateLimiter(t)
		limiter.EXPECT().Allow(mock.Anything, "auth:192.0.2.1").
			Return(cache.RateLimitResult{Allowed: true, Remaining: 4}, nil).Once()
		limiter.EXPECT().Limit().Return(5).Once()

		req := httptest.NewRequest(http.MethodPost, "/auth/login", nil)
		w := httptest.NewRecorder()
		setupRateLimitRouter(limiter).ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "5", w.Header().Get("X-RateLimit-Limit"))
		assert.Equal(t, "4", w.Header().Get("X-RateLimit-Remaining"))
	})

	t.Run("Failed - Limited", func(t *testing.T) {
		limiter := cachemocks.NewMockRateLimiter(t)
		limiter.EXPECT().Allow(mock.Anything, mock.Anything).
			Return(cache.RateLimitResult{Allowed: false, RetryAfter: 1500 * time.Millisecond}, nil).Once()
		limiter.EXPECT().Limit().Return(5).Once()

		req := httptest.NewRequest(http.MethodPost, "/auth/login", nil)
		w := httptest.NewRecorder()
		setupRateLimitRouter(limiter).ServeHTTP(w, req)

		assert.Equal(t, http.StatusTooManyRequests, w.Code)
		assert.Equal(t, "2", w.Header().Get("Retry-After"))
		assert.JSONEq(t, `{"error":"Too many requests"}`, w.Body.String())
	})

	t.Run("Failed - Sub-second retry rounds up", func(t *testing.T) {
		limiter := cachemocks.NewMockRateLimiter(t)
		limiter.EXPECT().Allow(mock.Anything, mock.Anything).
			Return(cache.RateLimitResult{Allowed: false}, nil).Once()
		limiter.EXPECT().Limit().Return(5).Once()

		req := httptest.NewRequest(http.MethodPost, "/auth/login", nil)
		w := httptest.NewRecorder()
		setupRateLimitRouter(limiter).ServeHTTP(w, req)

		assert.Equal(t, http.StatusTooManyRequests, w.Code)
		assert.Equal(t, "1", w.Header().Get("Retry-After"))
	})

	t.Run("Limiter error lets request through", func(t *testing.T) {
		limiter := cachemocks.NewMockRateLimiter(t)
		limiter.EXPECT().Allow(mock.Anything, mock.Anything).
			Return(cache.RateLimitResult{}, errors.New("redis down")).Once()

		req := httptest.NewRequest(http.MethodPost, "/auth/login", nil)
		w := httptest.NewRecorder()
		setupRateLimitRouter(limiter).ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Empty(t, w.Header().Get("X-RateLimit-Limit"))
	})
}
