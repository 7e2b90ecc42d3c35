package click

import (
	"context"
	"fmt"

	"github.com/flavio-cbz/logistix-pro/internal/domain"
)

const salesAnalyticsFull = "default.sales_analytics"

// SaleWriter записывает продажи в ClickHouse в формате, удобном для аналитики (GROUP BY product_key, по времени и т.д.).
type SaleWriter struct {
	db *Client
}

// NewSaleWriter создаёт писатель продаж для аналитики.
func NewSaleWriter(db *Client) *SaleWriter {
	return &SaleWriter{db: db}
}

// EnsureTable создаёт таблицу продаж для аналитики в default, если её ещё нет. Вызови один раз при старте приложения.
func (w *SaleWriter) EnsureTable(ctx context.Context) error {
	query := fmt.Sprintf(`
		CREATE TABLE IF NOT EXISTS %s (
			product_key String,
			price Float64,
			sales_volume Float64,
			recorded_at DateTime64(3)
		) ENGINE = MergeTree()
		ORDER BY (recorded_at, product_key)
		PARTITION BY toYYYYMM(recorded_at)`,
		salesAnalyticsFull,
	)
	_, err := w.db.DB().ExecContext(ctx, query)
	return err
}

// WriteRecord реализует ports.ISaleAnalytics: пишет одну продажу в ClickHouse.
func (w *SaleWriter) WriteRecord(ctx context.Context, rec domain.PriceRecord) error {
	query := fmt.Sprintf(
		"INSERT INTO %s (product_key, price, sales_volume, recorded_at) VALUES (?, ?, ?, ?)",
		salesAnalyticsFull,
	)
	_, err := w.db.DB().ExecContext(ctx, query,
		rec.ProductKey, rec.Price, rec.SalesVolume, rec.RecordedAt)
	if err != nil {
		return fmt.Errorf("insert sale record: %w", err)
	}
	return nil
}
