package middleware

import (
	"alertsystem/utils"
	"context"
	"fmt"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"github.com/sirupsen/logrus"
	"golang.org/x/time/rate"
)

// RateLimitConfig holds rate limiting configuration
type RateLimitConfig struct {
	Redis     *redis.Client // nil selects the in-process limiter
	Requests  int
	Window    time.Duration
	KeyPrefix string
	SkipPaths []string
}

type RateLimitStrategy string

const (
	StrategyIP       RateLimitStrategy = "ip"
	StrategyUserOrIP RateLimitStrategy = "user_or_ip"
)

type RateLimiter struct {
	config   RateLimitConfig
	strategy RateLimitStrategy

	mu       sync.Mutex
	visitors map[string]*visitor
}

type visitor struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

func NewRateLimiter(config RateLimitConfig, strategy RateLimitStrategy) *RateLimiter {
	if config.KeyPrefix == "" {
		config.KeyPrefix = "rate_limit"
	}
	if config.Requests <= 0 {
		config.Requests = 100
	}
	if config.Window <= 0 {
		config.Window = time.Minute
	}

	return &RateLimiter{
		config:   config,
		strategy: strategy,
		visitors: make(map[string]*visitor),
	}
}

func (rl *RateLimiter) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		if shouldSkipPath(c.Request.URL.Path, rl.config.SkipPaths) {
			c.Next()
			return
		}

		key := rl.getKey(c)

		var (
			allowed   bool
			remaining int
			resetTime time.Time
		)
		if rl.config.Redis != nil {
			var err error
			allowed, resetTime, remaining, err = rl.checkRedis(c.Request.Context(), key)
			if err != nil {
				logrus.Warnf("Redis rate limit check failed, using local limiter: %v", err)
				allowed, resetTime, remaining = rl.checkLocal(key)
			}
		} else {
			allowed, resetTime, remaining = rl.checkLocal(key)
		}

		c.Header("X-RateLimit-Limit", strconv.Itoa(rl.config.Requests))
		c.Header("X-RateLimit-Remaining", strconv.Itoa(remaining))
		c.Header("X-RateLimit-Reset", strconv.FormatInt(resetTime.Unix(), 10))

		if !allowed {
			retryAfter := int(time.Until(resetTime).Seconds())
			if retryAfter < 1 {
				retryAfter = 1
			}
			c.Header("Retry-After", strconv.Itoa(retryAfter))
			logrus.WithFields(logrus.Fields{
				"key":  key,
				"path": c.Request.URL.Path,
			}).Warn("Rate limit exceeded")
			utils.TooManyRequestsResponse(c, "Rate limit exceeded")
			c.Abort()
			return
		}

		c.Next()
	}
}

// checkRedis runs a sliding window log over a sorted set shared by every instance.
func (rl *RateLimiter) checkRedis(ctx context.Context, key string) (bool, time.Time, int, error) {
	now := time.Now()
	window := rl.config.Window
	member := fmt.Sprintf("%d", now.UnixNano())

	pipe := rl.config.Redis.Pipeline()
	pipe.ZRemRangeByScore(ctx, key, "0", fmt.Sprintf("%d", now.Add(-window).UnixNano()))
	card := pipe.ZCard(ctx, key)
	pipe.ZAdd(ctx, key, &redis.Z{Score: float64(now.UnixNano()), Member: member})
	pipe.Expire(ctx, key, window+time.Minute)

	if _, err := pipe.Exec(ctx); err != nil {
		return false, time.Time{}, 0, err
	}

	count := card.Val()
	remaining := rl.config.Requests - int(count) - 1
	if remaining < 0 {
		remaining = 0
	}

	allowed := count < int64(rl.config.Requests)
	if !allowed {
		rl.config.Redis.ZRem(ctx, key, member)
	}

	return allowed, now.Add(window), remaining, nil
}

// checkLocal uses a token bucket per key, refilled evenly over the window.
func (rl *RateLimiter) checkLocal(key string) (bool, time.Time, int) {
	now := time.Now()

	rl.mu.Lock()
	defer rl.mu.Unlock()

	v, ok := rl.visitors[key]
	if !ok {
		every := rl.config.Window / time.Duration(rl.config.Requests)
		v = &visitor{limiter: rate.NewLimiter(rate.Every(every), rl.config.Requests)}
		rl.visitors[key] = v
	}
	v.lastSeen = now

	for k, other := range rl.visitors {
		if now.Sub(other.lastSeen) > 2*rl.config.Window {
			delete(rl.visitors, k)
		}
	}

	allowed := v.limiter.AllowN(now, 1)
	remaining := int(v.limiter.TokensAt(now))
	if remaining < 0 {
		remaining = 0
	}
	return allowed, now.Add(rl.config.Window), remaining
}

func (rl *RateLimiter) getKey(c *gin.Context) string {
	prefix := rl.config.KeyPrefix
	if rl.strategy == StrategyUserOrIP {
		if userID := utils.GetUserID(c); userID != "" {
			return fmt.Sprintf("%s:user:%s", prefix, userID)
		}
	}
	return fmt.Sprintf("%s:ip:%s", prefix, clientIP(c))
}

func clientIP(c *gin.Context) string {
	if xff := c.GetHeader("X-Forwarded-For"); xff != "" {
		return strings.TrimSpace(strings.Split(xff, ",")[0])
	}
	if xri := c.GetHeader("X-Real-IP"); xri != "" {
		return xri
	}
	return c.ClientIP()
}

// RateLimitMiddleware applies the configured budget per client.
func RateLimitMiddleware(client *redis.Client, requests int, window time.Duration) gin.HandlerFunc {
	return NewRateLimiter(RateLimitConfig{
		Redis:     client,
		Requests:  requests,
		Window:    window,
		KeyPrefix: "rate_limit:api",
		SkipPaths: []string{"/health", "/metrics", "/ws/alerts"},
	}, StrategyUserOrIP).Middleware()
}

// AuthRateLimit is the tighter budget for signin and signup.
func AuthRateLimit(client *redis.Client) gin.HandlerFunc {
	return NewRateLimiter(RateLimitConfig{
		Redis:     client,
		Requests:  10,
		Window:    time.Minute,
		KeyPrefix: "rate_limit:auth",
	}, StrategyIP).Middleware()
}
