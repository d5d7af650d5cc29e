package services

import (
	"context"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
)

// DashboardCache 仪表盘响应缓存。client为nil时所有操作降级为空操作，
// 接口全部走直查
type DashboardCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewDashboardCache 构造缓存，ttl为缓存过期时间
func NewDashboardCache(client *redis.Client, ttl time.Duration) *DashboardCache {
	return &DashboardCache{client: client, ttl: ttl}
}

func (c *DashboardCache) key(userID uint) string {
	return fmt.Sprintf("neurowell:dashboard:%d", userID)
}

// Get 读取缓存的仪表盘响应
func (c *DashboardCache) Get(ctx context.Context, userID uint) ([]byte, bool) {
	if c == nil || c.client == nil {
		return nil, false
	}
	payload, err := c.client.Get(ctx, c.key(userID)).Bytes()
	if err != nil {
		return nil, false
	}
	return payload, true
}

// Set 写入缓存，写失败不影响主流程
func (c *DashboardCache) Set(ctx context.Context, userID uint, payload []byte) {
	if c == nil || c.client == nil {
		return
	}
	c.client.Set(ctx, c.key(userID), payload, c.ttl)
}

// Invalidate 记录新情绪后使该用户的缓存失效
func (c *DashboardCache) Invalidate(ctx context.Context, userID uint) {
	if c == nil || c.client == nil {
		return
	}
	c.client.Del(ctx, c.key(userID))
}
