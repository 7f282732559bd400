package redis

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"
)

// Cache 读穿缓存封装（行政区划名称等低频变更数据）
type Cache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewCache 基于既有连接创建缓存
func NewCache(client *redis.Client, ttl time.Duration) *Cache {
	return &Cache{client: client, ttl: ttl}
}

// Get 读取缓存，未命中返回 redis.Nil
func (c *Cache) Get(ctx context.Context, key string) ([]byte, error) {
	return c.client.Get(ctx, key).Bytes()
}

// Set 写入缓存（JSON 序列化）
func (c *Cache) Set(ctx context.Context, key string, value interface{}) error {
	data, err := json.Marshal(value)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, key, data, c.ttl).Err()
}

// IsMiss 判断是否缓存未命中
func IsMiss(err error) bool {
	return err == redis.Nil
}
