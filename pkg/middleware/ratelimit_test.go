package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestAllowConsumesBurstThenRejects(t *testing.T) {
	l := NewRateLimiter(1, 2, time.Minute)

	assert.True(t, l.Allow("1.2.3.4"))
	assert.True(t, l.Allow("1.2.3.4"))
	assert.False(t, l.Allow("1.2.3.4"))
}

func TestAllowTracksClientsSeparately(t *testing.T) {
	l := NewRateLimiter(1, 1, time.Minute)

	assert.True(t, l.Allow("1.2.3.4"))
	assert.False(t, l.Allow("1.2.3.4"))
	assert.True(t, l.Allow("5.6.7.8"))
}

func TestAllowRefillsAfterInterval(t *testing.T) {
	l := NewRateLimiter(1, 1, 10*time.Millisecond)

	assert.True(t, l.Allow("1.2.3.4"))
	assert.False(t, l.Allow("1.2.3.4"))

	time.Sleep(25 * time.Millisecond)
	assert.True(t, l.Allow("1.2.3.4"))
}

func TestMiddlewareReturns429WithRetryAfter(t *testing.T) {
	gin.SetMode(gin.TestMode)

	l := NewRateLimiter(1, 1, time.Minute)
	r := gin.New()
	r.GET("/limited", l.Middleware(), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	first := httptest.NewRecorder()
	r.ServeHTTP(first, httptest.NewRequest(http.MethodGet, "/limited", nil))
	assert.Equal(t, http.StatusOK, first.Code)

	second := httptest.NewRecorder()
	r.ServeHTTP(second, httptest.NewRequest(http.MethodGet, "/limited", nil))
	assert.Equal(t, http.StatusTooManyRequests, second.Code)
	assert.Equal(t, "1", second.Header().Get("Retry-After"))
	assert.Contains(t, second.Body.String(), `"success":false`)
}
