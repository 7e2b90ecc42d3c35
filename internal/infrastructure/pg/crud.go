package pg

import (
	"context"
	"log/slog"

	"github.com/flavio-cbz/logistix-pro/internal/domain"
)

// PriceHistoryRepo реализует ports.IPriceHistoryRepository для PostgreSQL.
type PriceHistoryRepo struct {
	db  *DB
	log *slog.Logger
}

// NewPriceHistoryRepo возвращает репозиторий исторических продаж.
func NewPriceHistoryRepo(db *DB, log *slog.Logger) *PriceHistoryRepo {
	return &PriceHistoryRepo{db: db, log: log}
}

// SaveRecord сохраняет запись о продаже.
func (r *PriceHistoryRepo) SaveRecord(ctx context.Context, rec domain.PriceRecord) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO historical_prices (product_key, price, sales_volume, recorded_at)
		 VALUES ($1, $2, $3, $4)`,
		rec.ProductKey, rec.Price, rec.SalesVolume, rec.RecordedAt)
	if err != nil {
		r.log.Debug("SaveRecord failed", "error", err)
		return err
	}
	return nil
}

// ListByProduct возвращает все записи по продукту (последние сначала), без пагинации.
func (r *PriceHistoryRepo) ListByProduct(ctx context.Context, productKey string) ([]domain.PriceRecord, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, product_key, price, sales_volume, recorded_at
		 FROM historical_prices WHERE product_key = $1 ORDER BY recorded_at DESC`,
		productKey)
	if err != nil {
		r.log.Debug("ListByProduct failed", "error", err)
		return nil, err
	}
	defer rows.Close()
	var list []domain.PriceRecord
	for rows.Next() {
		var rec domain.PriceRecord
		err := rows.Scan(&rec.ID, &rec.ProductKey, &rec.Price, &rec.SalesVolume, &rec.RecordedAt)
		if err != nil {
			return nil, err
		}
		list = append(list, rec)
	}
	return list, rows.Err()
}

// Ping проверяет доступность БД (readiness).
func (r *PriceHistoryRepo) Ping(ctx context.Context) error {
	return r.db.Ping(ctx)
}
