package middleware

import (
	"context"
	"net/http"
	"strconv"
	"sync"
	"time"

	"go-gladiator-backend/internal/delivery/http/response"
	"go-gladiator-backend/pkg/redis"

	"github.com/gin-gonic/gin"
	goredis "github.com/redis/go-redis/v9"
)

// RateLimitConfig holds configuration for rate limiting
type RateLimitConfig struct {
	// Requests per window
	Limit int
	// Time window duration
	Window time.Duration
	// Key prefix for Redis
	KeyPrefix string
}

// rateLimitEntry tracks request count for a key (in-memory fallback)
type rateLimitEntry struct {
	mu      sync.Mutex
	count   int
	resetAt time.Time
}

var (
	rateLimitStore sync.Map
	cleanupOnce    sync.Once
)

// Atomic increment with TTL on first set.
// KEYS[1] = counter key, ARGV[1] = TTL in seconds.
// Returns: [current_count, ttl_remaining]
const rateLimitLuaScript = `
local count = redis.call('INCR', KEYS[1])
if count == 1 then
    redis.call('EXPIRE', KEYS[1], ARGV[1])
end
local ttl = redis.call('TTL', KEYS[1])
return {count, ttl}
`

func startCleanup() {
	cleanupOnce.Do(func() {
		go func() {
			for range time.Tick(time.Minute) {
				now := time.Now()
				rateLimitStore.Range(func(key, value any) bool {
					entry := value.(*rateLimitEntry)
					entry.mu.Lock()
					expired := now.After(entry.resetAt)
					entry.mu.Unlock()
					if expired {
						rateLimitStore.Delete(key)
					}
					return true
				})
			}
		}()
	})
}

// RateLimit limits requests per client IP. Counters live in Redis when it is
// configured; otherwise a per-process in-memory fallback is used.
func RateLimit(cfg RateLimitConfig) gin.HandlerFunc {
	startCleanup()

	if cfg.KeyPrefix == "" {
		cfg.KeyPrefix = "rl:ip:"
	}

	return func(c *gin.Context) {
		key := cfg.KeyPrefix + c.ClientIP()

		var count int
		var retryAfter time.Duration
		if client := redis.Client(); client != nil {
			count, retryAfter = redisIncrement(c.Request.Context(), client, key, cfg.Window)
		}
		if count == 0 {
			count, retryAfter = memoryIncrement(key, cfg.Window)
		}

		remaining := cfg.Limit - count
		if remaining < 0 {
			remaining = 0
		}
		c.Header("X-RateLimit-Limit", strconv.Itoa(cfg.Limit))
		c.Header("X-RateLimit-Remaining", strconv.Itoa(remaining))

		if count > cfg.Limit {
			c.Header("Retry-After", strconv.Itoa(int(retryAfter.Seconds())))
			response.Error(c, http.StatusTooManyRequests, "Too many requests. Please slow down.", nil)
			c.Abort()
			return
		}

		c.Next()
	}
}

func redisIncrement(ctx context.Context, client *goredis.Client, key string, window time.Duration) (int, time.Duration) {
	res, err := client.Eval(ctx, rateLimitLuaScript, []string{key}, int(window.Seconds())).Result()
	if err != nil {
		// Fail open: fall back to the in-memory store
		return 0, 0
	}
	vals, ok := res.([]any)
	if !ok || len(vals) != 2 {
		return 0, 0
	}
	count, _ := vals[0].(int64)
	ttl, _ := vals[1].(int64)
	return int(count), time.Duration(ttl) * time.Second
}

func memoryIncrement(key string, window time.Duration) (int, time.Duration) {
	value, _ := rateLimitStore.LoadOrStore(key, &rateLimitEntry{})
	entry := value.(*rateLimitEntry)

	entry.mu.Lock()
	defer entry.mu.Unlock()

	now := time.Now()
	if now.After(entry.resetAt) {
		entry.count = 0
		entry.resetAt = now.Add(window)
	}
	entry.count++
	return entry.count, time.Until(entry.resetAt)
}
