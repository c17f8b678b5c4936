package middleware

import (
	"errors"
	"strconv"

	"mannamsalon/config"
	"mannamsalon/internal/database/redis/repository"
	cErr "mannamsalon/internal/pkg/error"
	"mannamsalon/internal/pkg/response"
	"mannamsalon/internal/telemetry"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const rateLimitWindowSeconds = 60

type RateLimit struct {
	logger                *zap.Logger
	metric                *telemetry.Metric
	conf                  *config.Configuration
	rateLimiterRepository *repository.RateLimiterRepository
}

func NewRateLimit(
	logger *zap.Logger,
	metric *telemetry.Metric,
	conf *config.Configuration,
	rateLimiterRepository *repository.RateLimiterRepository,
) *RateLimit {
	return &RateLimit{
		logger:                logger,
		metric:                metric,
		conf:                  conf,
		rateLimiterRepository: rateLimiterRepository,
	}
}

// Guard 以 client IP 做固定視窗限流，主要保護登入與公開簽署端點
func (middleware *RateLimit) Guard() gin.HandlerFunc {
	return func(c *gin.Context) {
		limit := middleware.conf.RateLimit.PerMinute
		if !middleware.conf.RateLimit.Enabled || limit <= 0 {
			c.Next()
			return
		}
		count, ttlSec, err := middleware.rateLimiterRepository.Consume(c.Request.Context(), c.ClientIP(), rateLimitWindowSeconds, limit)
		if err != nil && !errors.Is(err, repository.ErrRateLimitExceeded) {
			// Redis 異常時不阻斷
			middleware.logger.Warn("rate limiter unavailable", zap.Error(err))
			c.Next()
			return
		}

		remaining := limit - count
		if remaining < 0 {
			remaining = 0
		}
		c.Header("X-RateLimit-Limit", strconv.FormatInt(limit, 10))
		c.Header("X-RateLimit-Remaining", strconv.FormatInt(remaining, 10))
		if ttlSec > 0 {
			c.Header("X-RateLimit-Reset", strconv.FormatInt(ttlSec, 10))
		}

		if errors.Is(err, repository.ErrRateLimitExceeded) {
			if ttlSec > 0 {
				c.Header("Retry-After", strconv.FormatInt(ttlSec, 10))
			}
			if middleware.metric.RateLimitTotal != nil {
				middleware.metric.RateLimitTotal.Inc()
			}
			middleware.logger.Info("rate limited", zap.String("clientIP", c.ClientIP()), zap.String("path", c.Request.URL.Path))
			response.AbortWithError(c, cErr.RateLimitExceeded("rate limit exceeded"))
			return
		}
		c.Next()
	}
}
