package initial

import (
	"context"
	"fmt"
	"time"

	"HealthPredict/internal/config"
	"HealthPredict/pkg/redis"
	"HealthPredict/pkg/zlog"

	goredis "github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// InitRedis 未配置 host 或连接失败时跳过，AI 摘要缓存随之关闭
func InitRedis(conf *config.Config) {
	host := conf.RedisConfig.Host
	port := conf.RedisConfig.Port

	if host == "" {
		zlog.Info("Redis 未配置，跳过初始化")
		return
	}
	if port == 0 {
		port = 6379
	}

	addr := fmt.Sprintf("%s:%d", host, port)
	zlog.Info("Redis connecting", zap.String("addr", addr))

	client := goredis.NewClient(&goredis.Options{
		Addr:         addr,
		Password:     conf.RedisConfig.Password,
		DB:           conf.RedisConfig.DB,
		PoolSize:     conf.RedisConfig.PoolSize,
		MinIdleConns: conf.RedisConfig.MinIdleConns,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		zlog.Error("Redis 连接失败", zap.String("addr", addr), zap.Error(err))
		_ = client.Close()
		return
	}

	redis.SetClient(client)
	zlog.Info("Redis 连接成功")
}
