package middleware

import (
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"

	"tripgenie/pkg/utils"
)

// RateLimiter is a per-IP token bucket. AI generation and chat endpoints get
// separate instances with their own limits.
type RateLimiter struct {
	mu       sync.Mutex
	buckets  map[string]*bucket
	rate     int           // tokens added per interval
	burst    int           // max tokens (bucket capacity)
	interval time.Duration // refill interval
	maxKeys  int           // max entries before evicting oldest
}

type bucket struct {
	tokens   int
	lastFill time.Time
}

func NewRateLimiter(rate, burst int, interval time.Duration) *RateLimiter {
	return &RateLimiter{
		buckets:  make(map[string]*bucket),
		rate:     rate,
		burst:    burst,
		interval: interval,
		maxKeys:  100000,
	}
}

// Middleware rejects over-limit clients with 429 and a Retry-After hint.
func (l *RateLimiter) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !l.Allow(c.ClientIP()) {
			c.Header("Retry-After", "1")
			utils.RespondError(c, http.StatusTooManyRequests, "Too many requests, please slow down")
			c.Abort()
			return
		}
		c.Next()
	}
}

func (l *RateLimiter) Allow(key string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	b, ok := l.buckets[key]
	if !ok {
		if len(l.buckets) >= l.maxKeys {
			l.evictOldest()
		}
		b = &bucket{tokens: l.burst, lastFill: time.Now()}
		l.buckets[key] = b
	}

	elapsed := time.Since(b.lastFill)
	refill := int(elapsed/l.interval) * l.rate
	if refill > 0 {
		b.tokens += refill
		if b.tokens > l.burst {
			b.tokens = l.burst
		}
		b.lastFill = time.Now()
	}

	if b.tokens <= 0 {
		return false
	}
	b.tokens--
	return true
}

// evictOldest removes the bucket with the oldest lastFill time.
// Must be called with l.mu held.
func (l *RateLimiter) evictOldest() {
	var oldestKey string
	var oldestTime time.Time
	first := true
	for k, b := range l.buckets {
		if first || b.lastFill.Before(oldestTime) {
			oldestKey = k
			oldestTime = b.lastFill
			first = false
		}
	}
	if !first {
		delete(l.buckets, oldestKey)
	}
}
