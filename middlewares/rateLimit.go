package middlewares

import (
	"net/http"
	"sync"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
)

// limiterSet hands out one token bucket per key.
type limiterSet struct {
	mu       sync.Mutex
	limiters map[string]*rate.Limiter
	limit    rate.Limit
	burst    int
}

func newLimiterSet(r rate.Limit, b int) *limiterSet {
	return &limiterSet{limiters: make(map[string]*rate.Limiter), limit: r, burst: b}
}

func (s *limiterSet) get(key string) *rate.Limiter {
	s.mu.Lock()
	defer s.mu.Unlock()

	limiter, exists := s.limiters[key]
	if !exists {
		limiter = rate.NewLimiter(s.limit, s.burst)
		s.limiters[key] = limiter
	}
	return limiter
}

// ClientKey limits per route in debug mode and per client address otherwise.
func ClientKey(c *gin.Context) string {
	if gin.Mode() == gin.DebugMode {
		return c.FullPath()
	}
	return c.ClientIP()
}

// RateLimitMiddleware rejects requests beyond r per second (burst b) for the
// key returned by keyFunc. Every call builds an independent set of buckets.
func RateLimitMiddleware(r rate.Limit, b int, keyFunc func(*gin.Context) string) gin.HandlerFunc {
	limiters := newLimiterSet(r, b)
	return func(c *gin.Context) {
		if !limiters.get(keyFunc(c)).Allow() {
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{"error": "Demasiadas solicitudes, intenta de nuevo en unos segundos"})
			return
		}

		c.Next()
	}
}
