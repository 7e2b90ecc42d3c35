package ports

//go:generate mockgen -source=repo.go -destination=../mocks/repo_mock.go -package=mocks

import (
	"context"

	"github.com/flavio-cbz/logistix-pro/internal/domain"
)

// IPriceHistoryRepository — контракт хранилища исторических продаж.
// ListByProduct возвращает полный список записей по продукту (последние сначала), без пагинации.
type IPriceHistoryRepository interface {
	SaveRecord(ctx context.Context, rec domain.PriceRecord) error
	ListByProduct(ctx context.Context, productKey string) ([]domain.PriceRecord, error)
	Ping(ctx context.Context) error
}
