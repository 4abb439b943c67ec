package middleware

import (
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
)

// bucketIdleTTL is how long an untouched client bucket is kept
const bucketIdleTTL = 10 * time.Minute

// RateLimiter is an in-process token bucket per client, used when Redis is unavailable
type RateLimiter struct {
	refillPerSec float64
	capacity     float64
	buckets      map[string]*bucket
	lastSweep    time.Time
	now          func() time.Time
	mu           sync.Mutex
}

type bucket struct {
	tokens   float64
	lastSeen time.Time
}

// NewRateLimiter creates a limiter refilling requestsPerMinute tokens per minute up to burstSize
func NewRateLimiter(requestsPerMinute, burstSize int) *RateLimiter {
	return &RateLimiter{
		refillPerSec: float64(requestsPerMinute) / 60.0,
		capacity:     float64(burstSize),
		buckets:      make(map[string]*bucket),
		now:          time.Now,
	}
}

// Allow takes one token from the client's bucket
func (r *RateLimiter) Allow(client string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := r.now()
	r.sweep(now)

	b, ok := r.buckets[client]
	if !ok {
		b = &bucket{tokens: r.capacity, lastSeen: now}
		r.buckets[client] = b
	}

	b.tokens += now.Sub(b.lastSeen).Seconds() * r.refillPerSec
	if b.tokens > r.capacity {
		b.tokens = r.capacity
	}
	b.lastSeen = now

	if b.tokens < 1 {
		return false
	}
	b.tokens--
	return true
}

// sweep drops buckets idle long enough to have refilled completely
func (r *RateLimiter) sweep(now time.Time) {
	if now.Sub(r.lastSweep) < bucketIdleTTL {
		return
	}
	r.lastSweep = now
	for client, b := range r.buckets {
		if now.Sub(b.lastSeen) >= bucketIdleTTL {
			delete(r.buckets, client)
		}
	}
}

// RateLimit creates middleware for rate limiting requests in memory.
// clientIPHeaderName, when set, overrides the client address as the bucket key.
func RateLimit(limiter *RateLimiter, clientIPHeaderName string) gin.HandlerFunc {
	return func(c *gin.Context) {
		client := c.ClientIP()
		if clientIPHeaderName != "" {
			if headerIP := c.GetHeader(clientIPHeaderName); headerIP != "" {
				client = headerIP
			}
		}

		if !limiter.Allow(client) {
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{
				"error": "Rate limit exceeded. Try again later.",
			})
			return
		}

		c.Next()
	}
}
