package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"mannamsalon/internal/core"
	client "mannamsalon/internal/database/client"
	"mannamsalon/internal/telemetry"

	"github.com/redis/go-redis/v9"
)

type RateLimiterRepository struct {
	trace  *telemetry.Trace
	client *redis.Client
	prefix string
}

func NewRateLimiterRepository(trace *telemetry.Trace, client *client.RedisClient) *RateLimiterRepository {
	return &RateLimiterRepository{trace: trace, client: client.Client(), prefix: client.KeyPrefix()}
}

var ErrRateLimitExceeded = errors.New("rate limit exceeded")

// Consume 以固定視窗計數；第一次呼叫時設定 TTL。
// 回傳：count（視窗內已使用次數）、ttlSec（剩餘秒數）、err（若超限為 ErrRateLimitExceeded）
func (repository *RateLimiterRepository) Consume(
	contextValue context.Context,
	clientIP string,
	windowSeconds int64,
	limitCount int64,
) (count int64, timeToLiveSeconds int64, returnedError error) {

	contextValue, span, endSpan := repository.trace.WithSpan(contextValue)
	defer func() {
		endSpan(returnedError)
	}()

	traceMetadata := core.TraceRateLimitMeta{
		ClientIP:  clientIP,
		Limit:     limitCount,
		WindowSec: windowSeconds,
	}

	redisKey := repository.buildKey(clientIP)
	expirationDuration := time.Duration(windowSeconds) * time.Second

	// INCR + EXPIRE NX + TTL 一次送出
	pipeline := repository.client.TxPipeline()
	incrCommand := pipeline.Incr(contextValue, redisKey)
	pipeline.ExpireNX(contextValue, redisKey, expirationDuration)
	ttlCommand := pipeline.TTL(contextValue, redisKey)
	if _, execError := pipeline.Exec(contextValue); execError != nil && execError != redis.Nil {
		returnedError = execError
		return 0, 0, returnedError
	}

	count = incrCommand.Val()
	if ttl := ttlCommand.Val(); ttl > 0 {
		timeToLiveSeconds = int64(ttl.Seconds())
	}

	traceMetadata.Count, traceMetadata.TTL = count, timeToLiveSeconds
	if count > limitCount {
		traceMetadata.Blocked = true
		returnedError = ErrRateLimitExceeded
	}
	repository.trace.ApplyTraceAttributes(span, traceMetadata)
	return count, timeToLiveSeconds, returnedError
}

// buildKey 建構 RateLimiter 用的 Redis key
func (r *RateLimiterRepository) buildKey(clientIP string) string {
	return fmt.Sprintf("%s%s:%s:%s", r.prefix, core.RedisKeyServerName, core.RedisKeyRateLimit, clientIP)
}
