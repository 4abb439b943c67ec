package middleware

import (
	"context"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

// RedisRateLimitConfig holds configuration for the Redis rate limiter
type RedisRateLimitConfig struct {
	RequestsPerMinute  int
	ClientIPHeaderName string
	KeyPrefix          string
}

// fixed one-minute window counter; returns {allowed, remaining, reset_unix}
var rateLimitScript = redis.NewScript(`
	local key = KEYS[1]
	local limit = tonumber(ARGV[1])
	local reset_time = tonumber(ARGV[2])

	local current = redis.call('INCR', key)
	if current == 1 then
		redis.call('EXPIRE', key, 60)
	end

	if current <= limit then
		return {1, limit - current, reset_time}
	end
	return {0, 0, reset_time}
`)

// RedisRateLimit creates middleware for rate limiting requests using Redis.
// When Redis is unreachable the request is let through.
func RedisRateLimit(redisClient *redis.Client, config RedisRateLimitConfig, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		clientIP := c.ClientIP()
		if config.ClientIPHeaderName != "" {
			if headerIP := c.GetHeader(config.ClientIPHeaderName); headerIP != "" {
				clientIP = headerIP
			}
		}

		allowed, remaining, resetTime, err := checkRateLimit(c.Request.Context(), redisClient, config, clientIP, time.Now())
		if err != nil {
			logger.Error("Rate limit check failed", zap.Error(err), zap.String("client_ip", clientIP))
			c.Next()
			return
		}

		c.Header("X-RateLimit-Limit", strconv.Itoa(config.RequestsPerMinute))
		c.Header("X-RateLimit-Remaining", strconv.Itoa(remaining))
		c.Header("X-RateLimit-Reset", strconv.FormatInt(resetTime, 10))

		if !allowed {
			c.Header("Retry-After", strconv.FormatInt(resetTime-time.Now().Unix(), 10))
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{
				"error": "Rate limit exceeded. Try again later.",
			})
			return
		}

		c.Next()
	}
}

func checkRateLimit(ctx context.Context, redisClient *redis.Client, config RedisRateLimitConfig, clientIP string, now time.Time) (bool, int, int64, error) {
	window := now.Unix() / 60
	key := fmt.Sprintf("%s:%s:%d", config.KeyPrefix, clientIP, window)
	resetTime := (window + 1) * 60

	result, err := rateLimitScript.Run(ctx, redisClient, []string{key}, config.RequestsPerMinute, resetTime).Result()
	if err != nil {
		return false, 0, 0, err
	}

	values, ok := result.([]interface{})
	if !ok || len(values) != 3 {
		return false, 0, 0, fmt.Errorf("unexpected rate limit script result: %v", result)
	}
	allowed, _ := values[0].(int64)
	remaining, _ := values[1].(int64)
	reset, _ := values[2].(int64)

	return allowed == 1, int(remaining), reset, nil
}
