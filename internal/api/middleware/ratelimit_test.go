package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestRateLimiter_Limit(t *testing.T) {
	gin.SetMode(gin.TestMode)
	rl := NewRateLimiter(0.001, 2)
	r := gin.New()
	r.POST("/login", rl.Limit(), func(ctx *gin.Context) {
		ctx.Status(http.StatusOK)
	})

	send := func(ip string) int {
		req := httptest.NewRequest(http.MethodPost, "/login", nil)
		req.RemoteAddr = ip + ":5000"
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		return w.Code
	}

	assert.Equal(t, http.StatusOK, send("10.0.0.1"))
	assert.Equal(t, http.StatusOK, send("10.0.0.1"))
	assert.Equal(t, http.StatusTooManyRequests, send("10.0.0.1"))

	// Buckets are per client.
	assert.Equal(t, http.StatusOK, send("10.0.0.2"))
}

func TestRateLimiter_EvictIdle(t *testing.T) {
	rl := NewRateLimiter(1, 1)
	rl.Allow("10.0.0.1")
	rl.Allow("10.0.0.2")
	rl.limiters["10.0.0.1"].lastAccess = time.Now().Add(-2 * limiterIdleTTL)

	rl.evictIdle(time.Now().Add(-limiterIdleTTL))

	assert.NotContains(t, rl.limiters, "10.0.0.1")
	assert.Contains(t, rl.limiters, "10.0.0.2")
}
