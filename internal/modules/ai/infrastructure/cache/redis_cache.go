package cache

import (
	"context"
	"time"

	"HealthPredict/internal/modules/ai/infrastructure/pipeline"
	myredis "HealthPredict/pkg/redis"
)

// RedisCache 基于全局 Redis 客户端的缓存实现
type RedisCache struct{}

// NewRedisCache Redis 未连接时返回 nil 接口，Pipeline 按禁用缓存处理
func NewRedisCache() pipeline.CacheInterface {
	if !myredis.IsConnected() {
		return nil
	}
	return &RedisCache{}
}

func (c *RedisCache) Get(ctx context.Context, key string) (string, error) {
	return myredis.Get(ctx, key)
}

func (c *RedisCache) Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error {
	return myredis.Set(ctx, key, value, ttl)
}
