package ports

//go:generate mockgen -source=cache.go -destination=../mocks/cache_mock.go -package=mocks

import (
	"context"
	"time"

	"github.com/flavio-cbz/logistix-pro/internal/domain"
)

// ICache — контракт кэша рекомендаций с TTL. Просроченная запись никогда не возвращается,
// даже если физически ещё не удалена из хранилища.
type ICache interface {
	Get(ctx context.Context, key string) (value domain.Recommendation, found bool, err error)
	Set(ctx context.Context, key string, value domain.Recommendation, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
}
