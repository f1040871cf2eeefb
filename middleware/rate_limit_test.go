package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func throttledRouter(count throttleCounter) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.POST("/mail/verify-email", rateLimitWith(count), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})
	return router
}

func hit(router *gin.Engine) int {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/mail/verify-email", nil)
	router.ServeHTTP(w, req)
	return w.Code
}

func TestRateLimitBlocksAboveWindowLimit(t *testing.T) {
	var calls int64
	router := throttledRouter(func(_ context.Context, key string) (int64, bool) {
		assert.Contains(t, key, "throttle:/mail/verify-email:")
		calls++
		return calls, true
	})

	for i := 0; i < throttleLimit; i++ {
		assert.Equal(t, http.StatusOK, hit(router))
	}
	assert.Equal(t, http.StatusTooManyRequests, hit(router))
	assert.Equal(t, http.StatusTooManyRequests, hit(router))
}

func TestRateLimitOpenWhenCounterUnavailable(t *testing.T) {
	router := throttledRouter(func(_ context.Context, _ string) (int64, bool) {
		return 0, false
	})

	for i := 0; i < throttleLimit+5; i++ {
		assert.Equal(t, http.StatusOK, hit(router))
	}
}

func TestRateLimitOpenWithoutRedis(t *testing.T) {
	router := throttledRouter(redisCounter)

	for i := 0; i < throttleLimit+5; i++ {
		assert.Equal(t, http.StatusOK, hit(router))
	}
}
