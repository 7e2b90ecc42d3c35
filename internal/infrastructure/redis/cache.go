package redis

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/flavio-cbz/logistix-pro/internal/domain"
	"github.com/flavio-cbz/logistix-pro/internal/ports"
)

var _ ports.ICache = (*Cache)(nil)

// Cache реализует ports.ICache через Redis. Значение — рекомендация в JSON,
// срок жизни выставляется через EXPIRE самого Redis (опция SET).
type Cache struct {
	cli *Client
	log *slog.Logger
}

// NewCache возвращает кэш рекомендаций поверх Redis.
func NewCache(cli *Client, log *slog.Logger) *Cache {
	return &Cache{cli: cli, log: log}
}

// Get возвращает рекомендацию по ключу. Если ключа нет или он истёк — found == false.
func (c *Cache) Get(ctx context.Context, key string) (value domain.Recommendation, found bool, err error) {
	s, err := c.cli.Client.Get(ctx, key).Result()
	if err != nil {
		if err == redis.Nil { // ключа нет
			return domain.Recommendation{}, false, nil
		}
		c.log.Debug("cache get failed", "key", key, "error", err)
		return domain.Recommendation{}, false, err
	}
	var rec domain.Recommendation
	if err := json.Unmarshal([]byte(s), &rec); err != nil {
		c.log.Debug("cache parse failed", "key", key, "error", err)
		return domain.Recommendation{}, false, fmt.Errorf("cache parse value: %w", err)
	}
	return rec, true, nil
}

// Set сохраняет рекомендацию по ключу с указанным TTL. Прежнее значение перезаписывается безусловно.
func (c *Cache) Set(ctx context.Context, key string, value domain.Recommendation, ttl time.Duration) error {
	if ttl <= 0 {
		return fmt.Errorf("cache set %q: ttl must be positive, got %v", key, ttl)
	}
	b, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("cache marshal value: %w", err)
	}
	if err := c.cli.Client.Set(ctx, key, b, ttl).Err(); err != nil {
		c.log.Debug("cache set failed", "key", key, "error", err)
		return err
	}
	return nil
}

// Delete удаляет рекомендацию по ключу. Отсутствие ключа ошибкой не считается.
func (c *Cache) Delete(ctx context.Context, key string) error {
	if err := c.cli.Client.Del(ctx, key).Err(); err != nil {
		c.log.Debug("cache delete failed", "key", key, "error", err)
		return err
	}
	return nil
}
