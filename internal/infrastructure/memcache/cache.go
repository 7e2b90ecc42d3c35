// Package memcache — in-memory реализация кэша рекомендаций с TTL.
// Используется, когда Redis в деплое не нужен (LOGISTIX_CACHE_BACKEND=memory), и в тестах.
package memcache

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/flavio-cbz/logistix-pro/internal/domain"
	"github.com/flavio-cbz/logistix-pro/internal/ports"
)

var _ ports.ICache = (*Cache)(nil)

// entry — запись кэша с моментом истечения.
type entry struct {
	value     domain.Recommendation
	expiresAt time.Time
}

// Cache — потокобезопасный кэш в памяти процесса. Истечение проверяется лениво на Get,
// плюс фоновая зачистка по тикеру, чтобы карта не росла от ключей, которые больше не читают.
// Часы инжектируются, чтобы тесты могли проматывать время.
type Cache struct {
	mu      sync.RWMutex
	entries map[string]entry
	now     func() time.Time
	done    chan struct{}
	stop    sync.Once
}

// New создаёт кэш с фоновой зачисткой раз в sweepEvery (0 — без зачистки).
func New(sweepEvery time.Duration) *Cache {
	c := NewWithClock(time.Now)
	if sweepEvery > 0 {
		go c.sweeper(sweepEvery)
	}
	return c
}

// NewWithClock создаёт кэш с заданными часами и без фоновой зачистки (для тестов).
func NewWithClock(now func() time.Time) *Cache {
	return &Cache{
		entries: make(map[string]entry),
		now:     now,
		done:    make(chan struct{}),
	}
}

func (c *Cache) sweeper(every time.Duration) {
	t := time.NewTicker(every)
	defer t.Stop()
	for {
		select {
		case <-t.C:
			c.removeExpired()
		case <-c.done:
			return
		}
	}
}

func (c *Cache) removeExpired() {
	now := c.now()
	c.mu.Lock()
	defer c.mu.Unlock()
	for k, e := range c.entries {
		if !now.Before(e.expiresAt) {
			delete(c.entries, k)
		}
	}
}

// Close останавливает фоновую зачистку.
func (c *Cache) Close() {
	c.stop.Do(func() { close(c.done) })
}

// Get возвращает рекомендацию по ключу. Истёкшая запись не возвращается никогда,
// даже если зачистка до неё ещё не дошла.
func (c *Cache) Get(_ context.Context, key string) (domain.Recommendation, bool, error) {
	c.mu.RLock()
	e, ok := c.entries[key]
	c.mu.RUnlock()
	if !ok || !c.now().Before(e.expiresAt) {
		return domain.Recommendation{}, false, nil
	}
	return e.value, true, nil
}

// Set сохраняет рекомендацию по ключу с указанным TTL. Прежнее значение перезаписывается безусловно.
func (c *Cache) Set(_ context.Context, key string, value domain.Recommendation, ttl time.Duration) error {
	if ttl <= 0 {
		return fmt.Errorf("cache set %q: ttl must be positive, got %v", key, ttl)
	}
	c.mu.Lock()
	c.entries[key] = entry{value: value, expiresAt: c.now().Add(ttl)}
	c.mu.Unlock()
	return nil
}

// Delete удаляет рекомендацию по ключу. Отсутствие ключа ошибкой не считается.
func (c *Cache) Delete(_ context.Context, key string) error {
	c.mu.Lock()
	delete(c.entries, key)
	c.mu.Unlock()
	return nil
}

// Ping — заглушка для readiness: кэш в памяти всегда доступен.
func (c *Cache) Ping(_ context.Context) error {
	return nil
}
