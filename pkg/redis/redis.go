package redis

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

var client *redis.Client

// SetClient 设置 Redis 客户端（由 internal/initial 调用）
func SetClient(c *redis.Client) {
	client = c
}

// Close 关闭 Redis 连接
func Close() error {
	if client == nil {
		return nil
	}
	return client.Close()
}

// IsConnected 检查 Redis 是否已连接
func IsConnected() bool {
	return client != nil
}

func checkClient() error {
	if client == nil {
		return fmt.Errorf("redis not connected")
	}
	return nil
}

// Ping 就绪检查
func Ping(ctx context.Context) error {
	if err := checkClient(); err != nil {
		return err
	}
	return client.Ping(ctx).Err()
}

// Get 获取字符串值，key 不存在时返回 ("", nil)
func Get(ctx context.Context, key string) (string, error) {
	if err := checkClient(); err != nil {
		return "", err
	}
	v, err := client.Get(ctx, key).Result()
	if errors.Is(err, redis.Nil) {
		return "", nil
	}
	return v, err
}

// Set 设置字符串值
func Set(ctx context.Context, key string, value interface{}, expiration time.Duration) error {
	if err := checkClient(); err != nil {
		return err
	}
	return client.Set(ctx, key, value, expiration).Err()
}
