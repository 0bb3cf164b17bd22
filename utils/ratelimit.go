// utils/ratelimit.go
package utils

import (
	"net/http"
	"strconv"
	"time"

	"pawcare-backend/logger"

	"github.com/gin-gonic/gin"
	"github.com/ulule/limiter/v3"
	mgin "github.com/ulule/limiter/v3/drivers/middleware/gin"
	"github.com/ulule/limiter/v3/drivers/store/memory"
)

const (
	rateLimitedMessage = "Too many requests, please try again later."
	authLimitedMessage = "Too many login attempts, please try again after 15 minutes."
)

// NewLimiter builds an in-memory limiter allowing limit requests per period.
func NewLimiter(limit int64, period time.Duration) *limiter.Limiter {
	return limiter.New(memory.NewStore(), limiter.Rate{Period: period, Limit: limit})
}

// RateLimit counts every request against the client IP.
func RateLimit(l *limiter.Limiter) gin.HandlerFunc {
	return mgin.NewMiddleware(l,
		mgin.WithLimitReachedHandler(func(c *gin.Context) {
			RespondWithError(c, http.StatusTooManyRequests, rateLimitedMessage)
		}),
		mgin.WithErrorHandler(func(c *gin.Context, err error) {
			RespondWithError(c, http.StatusInternalServerError, "Server error")
		}),
	)
}

// AuthRateLimit only counts requests that end with a 4xx or 5xx status, so
// successful logins never use up the budget. Every attempt takes a slot
// before the handler sees the credentials and a success gives it back.
func AuthRateLimit(l *limiter.Limiter, log logger.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		key := c.ClientIP()
		ctx := c.Request.Context()

		state, err := l.Get(ctx, key)
		if err != nil {
			log.Error("auth rate limit", logger.Fields{"error": err, "key": key})
			RespondWithError(c, http.StatusInternalServerError, "Server error")
			return
		}
		setRateLimitHeaders(c, state)
		if state.Reached {
			RespondWithError(c, http.StatusTooManyRequests, authLimitedMessage)
			return
		}

		c.Next()

		if c.Writer.Status() < http.StatusBadRequest {
			if _, err := l.Increment(ctx, key, -1); err != nil {
				log.Warn("auth rate limit refund", logger.Fields{"error": err, "key": key})
			}
		}
	}
}

func setRateLimitHeaders(c *gin.Context, state limiter.Context) {
	c.Header("X-RateLimit-Limit", strconv.FormatInt(state.Limit, 10))
	c.Header("X-RateLimit-Remaining", strconv.FormatInt(state.Remaining, 10))
	c.Header("X-RateLimit-Reset", strconv.FormatInt(state.Reset, 10))
}
