package ports

//go:generate mockgen -source=analytics.go -destination=../mocks/analytics_mock.go -package=mocks

import (
	"context"

	"github.com/flavio-cbz/logistix-pro/internal/domain"
)

// ISaleAnalytics — запись продаж в хранилище для аналитики (например, ClickHouse).
type ISaleAnalytics interface {
	WriteRecord(ctx context.Context, rec domain.PriceRecord) error
}
