package ports

//go:generate mockgen -source=usecase.go -destination=../mocks/usecase_mock.go -package=mocks

import (
	"context"

	"github.com/flavio-cbz/logistix-pro/internal/domain"
)

// IPricingUseCase — контракт бизнес-логики ценообразования (рекомендация, приём продаж,
// история, обработка событий из Kafka).
type IPricingUseCase interface {
	Recommend(ctx context.Context, productKey string) (*domain.Recommendation, error)
	RecordSale(ctx context.Context, productKey string, price, salesVolume float64) (*domain.PriceRecord, error)
	History(ctx context.Context, productKey string) ([]domain.PriceRecord, error)
	HandleSaleEvent(ctx context.Context, rec domain.PriceRecord) error
}
