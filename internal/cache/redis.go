package cache

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
)

// redisClient 定義 NewRedisClient 內部使用的必要方法，便於測試時替換
type redisClient interface {
	Cache
	Ping(ctx context.Context) *redis.StatusCmd
}

// redisNewClient 用來建立 redis client，測試可覆寫此變數
var redisNewClient = func(opt *redis.Options) redisClient {
	return redis.NewClient(opt)
}

// NewRedisClient 建立 redis client 並確認連線
func NewRedisClient(ctx context.Context, addr string, password string, db int) (Cache, error) {
	client := redisNewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, err
	}
	return client, nil
}

// New addr 為空時回傳 MemoryCache，否則連線 Redis
func New(ctx context.Context, addr string, password string, db int) (Cache, error) {
	if addr == "" {
		return NewMemoryCache(10 * time.Minute), nil
	}
	return NewRedisClient(ctx, addr, password, db)
}
