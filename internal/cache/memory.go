package cache

import (
	"context"
	"fmt"
	"sync"
	"time"

	gocache "github.com/patrickmn/go-cache"
	"github.com/redis/go-redis/v9"
)

// MemoryCache 以 go-cache 實作 Cache，單機部署或測試時使用
type MemoryCache struct {
	mu    sync.Mutex
	store *gocache.Cache
}

func NewMemoryCache(cleanupInterval time.Duration) *MemoryCache {
	return &MemoryCache{store: gocache.New(gocache.NoExpiration, cleanupInterval)}
}

func (m *MemoryCache) Get(_ context.Context, key string) *redis.StringCmd {
	v, ok := m.store.Get(key)
	if !ok {
		return redis.NewStringResult("", redis.Nil)
	}
	return redis.NewStringResult(v.(string), nil)
}

// Set 與 redis 相同，value 以字串形式保存
func (m *MemoryCache) Set(_ context.Context, key string, value interface{}, ttl time.Duration) *redis.StatusCmd {
	if ttl <= 0 {
		ttl = gocache.NoExpiration
	}
	m.store.Set(key, stringify(value), ttl)
	return redis.NewStatusResult("OK", nil)
}

// Del 回傳實際刪除的數量；同一 key 併發刪除時只有一方得到 1
func (m *MemoryCache) Del(_ context.Context, keys ...string) *redis.IntCmd {
	m.mu.Lock()
	defer m.mu.Unlock()
	var n int64
	for _, k := range keys {
		if _, ok := m.store.Get(k); ok {
			m.store.Delete(k)
			n++
		}
	}
	return redis.NewIntResult(n, nil)
}

func (m *MemoryCache) Close() error {
	m.store.Flush()
	return nil
}

func stringify(v interface{}) string {
	switch val := v.(type) {
	case string:
		return val
	case []byte:
		return string(val)
	default:
		return fmt.Sprint(val)
	}
}
