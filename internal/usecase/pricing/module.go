package pricing

import (
	"log/slog"
	"time"

	"golang.org/x/sync/singleflight"

	"github.com/flavio-cbz/logistix-pro/internal/ports"
)

// DefaultTTL — стандартное время жизни рекомендации в кэше (и для пустого результата тоже).
const DefaultTTL = 3600 * time.Second

// cachePrefix — неймспейс ключей рекомендаций в кэше.
const cachePrefix = "historical_prices:"

// cacheKey формирует ключ кэша для продукта, например "historical_prices:clavier-azerty".
func cacheKey(productKey string) string {
	return cachePrefix + productKey
}

// UseCase — бизнес-логика ценообразования.
type UseCase struct {
	repo      ports.IPriceHistoryRepository
	cache     ports.ICache
	broker    ports.IProducer
	analytics ports.ISaleAnalytics
	ttl       time.Duration
	group     singleflight.Group
	log       *slog.Logger
}

// New создаёт юзкейс ценообразования. При ttl <= 0 берётся DefaultTTL.
func New(repo ports.IPriceHistoryRepository, cache ports.ICache, broker ports.IProducer, analytics ports.ISaleAnalytics, ttl time.Duration, log *slog.Logger) *UseCase {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	if log == nil {
		log = slog.Default()
	}
	return &UseCase{repo: repo, cache: cache, broker: broker, analytics: analytics, ttl: ttl, log: log}
}
