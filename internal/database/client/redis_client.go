package client

import (
	"context"
	"fmt"
	"mannamsalon/config"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// RedisClient session 與限流共用的連線
type RedisClient struct {
	client    *redis.Client
	logger    *zap.Logger
	keyPrefix string
}

func NewRedisClient(logger *zap.Logger, config *config.Configuration) (*RedisClient, func(), error) {
	redisClient := &RedisClient{logger: logger, keyPrefix: normalizePrefix(config.Redis.KeyPrefix)}
	client, err := redisClient.connectDB(config)
	if err != nil {
		logger.Error("failed to connect to Redis", zap.Error(err))
		return nil, nil, err
	}
	logger.Info("Connected to Redis",
		zap.String("addr", client.Options().Addr),
		zap.Int("db", client.Options().DB),
		zap.Int("pool_size", client.Options().PoolSize),
	)
	redisClient.client = client

	cleanup := func() {
		logger.Info("closing the Redis resources")
		if err := redisClient.Close(); err != nil {
			logger.Error("failed to close Redis client", zap.Error(err))
		}
	}

	return redisClient, cleanup, nil
}

func (redisClient *RedisClient) connectDB(config *config.Configuration) (*redis.Client, error) {
	r := redis.NewClient(&redis.Options{
		Addr:        fmt.Sprintf("%s:%d", config.Redis.Host, config.Redis.Port),
		Password:    config.Redis.Password,
		DB:          config.Redis.DB,
		PoolSize:    config.Redis.PoolSize, // 0 時使用 go-redis 預設
		DialTimeout: 5 * time.Second,
	})
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := r.Ping(ctx).Err(); err != nil {
		_ = r.Close()
		return nil, err
	}
	return r, nil
}

// normalizePrefix "staging" → "staging:"
func normalizePrefix(prefix string) string {
	prefix = strings.TrimSpace(prefix)
	if prefix == "" || strings.HasSuffix(prefix, ":") {
		return prefix
	}
	return prefix + ":"
}

func (redisClient *RedisClient) Close() error {
	return redisClient.client.Close()
}

func (redisClient *RedisClient) Client() *redis.Client {
	return redisClient.client
}

func (redisClient *RedisClient) KeyPrefix() string {
	return redisClient.keyPrefix
}

// Ping 健康檢查使用
func (redisClient *RedisClient) Ping(ctx context.Context) error {
	return redisClient.client.Ping(ctx).Err()
}
