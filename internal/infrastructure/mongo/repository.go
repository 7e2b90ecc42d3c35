package mongo

import (
	"context"
	"log/slog"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo/options"

	"github.com/flavio-cbz/logistix-pro/internal/domain"
)

// priceRecordDoc — документ в коллекции historical_prices (без ID — в домене ID int для совместимости с PG, при чтении оставляем 0).
type priceRecordDoc struct {
	ProductKey  string    `bson:"product_key"`
	Price       float64   `bson:"price"`
	SalesVolume float64   `bson:"sales_volume"`
	RecordedAt  time.Time `bson:"recorded_at"`
}

// PriceHistoryRepo реализует ports.IPriceHistoryRepository для MongoDB.
type PriceHistoryRepo struct {
	client *Client
	log    *slog.Logger
}

// NewPriceHistoryRepo возвращает репозиторий исторических продаж.
func NewPriceHistoryRepo(client *Client, log *slog.Logger) *PriceHistoryRepo {
	return &PriceHistoryRepo{client: client, log: log}
}

// SaveRecord сохраняет запись о продаже в коллекцию.
func (r *PriceHistoryRepo) SaveRecord(ctx context.Context, rec domain.PriceRecord) error {
	doc := priceRecordDoc{
		ProductKey:  rec.ProductKey,
		Price:       rec.Price,
		SalesVolume: rec.SalesVolume,
		RecordedAt:  rec.RecordedAt,
	}
	_, err := r.client.Coll().InsertOne(ctx, doc)
	if err != nil {
		r.log.Debug("SaveRecord failed", "error", err)
		return err
	}
	return nil
}

// ListByProduct возвращает все записи по продукту (последние сначала).
func (r *PriceHistoryRepo) ListByProduct(ctx context.Context, productKey string) ([]domain.PriceRecord, error) {
	opts := options.Find().SetSort(bson.D{{Key: "recorded_at", Value: -1}})
	cursor, err := r.client.Coll().Find(ctx, bson.M{"product_key": productKey}, opts)
	if err != nil {
		r.log.Debug("ListByProduct failed", "error", err)
		return nil, err
	}
	defer cursor.Close(ctx)
	var docs []priceRecordDoc
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, err
	}
	list := make([]domain.PriceRecord, 0, len(docs))
	for _, d := range docs {
		list = append(list, domain.PriceRecord{
			ID:          0,
			ProductKey:  d.ProductKey,
			Price:       d.Price,
			SalesVolume: d.SalesVolume,
			RecordedAt:  d.RecordedAt,
		})
	}
	return list, nil
}

// Ping проверяет доступность MongoDB (readiness).
func (r *PriceHistoryRepo) Ping(ctx context.Context) error {
	return r.client.Client.Ping(ctx, nil)
}
