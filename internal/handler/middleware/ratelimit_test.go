//go:build unit

package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"beatbox-store/internal/pkg/config"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func newLimitedEngine(cfg config.RateLimitConfig) *gin.Engine {
	gin.SetMode(gin.TestMode)
	engine := gin.New()
	engine.Use(ErrorHandler())
	engine.Use(NewRateLimiter(cfg).Middleware())
	engine.GET("/ping", func(c *gin.Context) { c.String(http.StatusOK, "pong") })
	return engine
}

func TestRateLimiterRejectsAfterBurst(t *testing.T) {
	engine := newLimitedEngine(config.RateLimitConfig{Enabled: true, RequestsPerSecond: 0.001, Burst: 2})

	codes := make([]int, 0, 3)
	var last *httptest.ResponseRecorder
	for i := 0; i < 3; i++ {
		last = httptest.NewRecorder()
		engine.ServeHTTP(last, httptest.NewRequest(http.MethodGet, "/ping", nil))
		codes = append(codes, last.Code)
	}
	assert.Equal(t, []int{http.StatusOK, http.StatusOK, http.StatusTooManyRequests}, codes)
	assert.Equal(t, "1000", last.Header().Get("Retry-After"))
	assert.JSONEq(t, `{"error":{"message":"Too many requests"},"detail":{"retryAfterSeconds":1000}}`, last.Body.String())
}

func TestRateLimiterDisabled(t *testing.T) {
	engine := newLimitedEngine(config.RateLimitConfig{Enabled: false, RequestsPerSecond: 0.001, Burst: 1})

	for i := 0; i < 5; i++ {
		rec := httptest.NewRecorder()
		engine.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/ping", nil))
		assert.Equal(t, http.StatusOK, rec.Code)
	}
}
