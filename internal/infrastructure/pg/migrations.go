package pg

import (
	"context"
)

const createHistoricalPricesTable = `
CREATE TABLE IF NOT EXISTS historical_prices (
	id           SERIAL PRIMARY KEY,
	product_key  VARCHAR(255) NOT NULL,
	price        DOUBLE PRECISION NOT NULL,
	sales_volume DOUBLE PRECISION NOT NULL,
	recorded_at  TIMESTAMPTZ NOT NULL DEFAULT NOW()
);
CREATE INDEX IF NOT EXISTS idx_historical_prices_product_key ON historical_prices (product_key);
`

// Migrate создаёт таблицу historical_prices, если её ещё нет.
func Migrate(ctx context.Context, db *DB) error {
	_, err := db.ExecContext(ctx, createHistoricalPricesTable)
	return err
}
