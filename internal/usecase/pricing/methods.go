package pricing

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/flavio-cbz/logistix-pro/internal/domain"
)

// Recommend — проверяет кэш; при промахе считает рекомендацию по истории продаж,
// кладёт её в кэш и возвращает. Ошибка кэша трактуется как промах и не блокирует расчёт;
// ошибка хранилища истории поднимается наверх и никогда не кэшируется.
// Одновременные промахи по одному ключу схлопываются в один расчёт (singleflight).
func (u *UseCase) Recommend(ctx context.Context, productKey string) (*domain.Recommendation, error) {
	if strings.TrimSpace(productKey) == "" {
		return nil, domain.ErrEmptyProductKey
	}

	key := cacheKey(productKey)
	if cached, found, err := u.cache.Get(ctx, key); err != nil {
		u.log.Warn("cache get failed, treating as miss", "key", key, "error", err)
	} else if found {
		return &cached, nil
	}

	v, err, _ := u.group.Do(key, func() (any, error) {
		return u.computeAndStore(ctx, productKey, key)
	})
	if err != nil {
		return nil, err
	}
	result := v.(domain.Recommendation)
	return &result, nil
}

// computeAndStore — тело промаха: чтение истории, расчёт, запись в кэш.
func (u *UseCase) computeAndStore(ctx context.Context, productKey, key string) (domain.Recommendation, error) {
	records, err := u.repo.ListByProduct(ctx, productKey)
	if err != nil {
		return domain.Recommendation{}, fmt.Errorf("fetch price history: %w", err)
	}

	valid, dropped := sanitize(records)
	for _, rec := range dropped {
		u.log.Warn("dropping record with non-positive price", "product", productKey, "id", rec.ID, "price", rec.Price)
	}

	var result domain.Recommendation
	if len(valid) == 0 {
		result = domain.Recommendation{Message: domain.MsgNoHistory}
	} else {
		price := recommendPrice(valid)
		result = domain.Recommendation{RecommendedPrice: &price}
	}

	// Пустой результат кэшируется так же, как обычный: иначе каждый запрос по продукту
	// без истории будет ходить в БД.
	if err := u.cache.Set(ctx, key, result, u.ttl); err != nil {
		u.log.Warn("cache set failed", "key", key, "error", err)
	}
	return result, nil
}

// RecordSale валидирует и сохраняет запись о продаже, затем публикует её в брокер.
// Ошибка брокера не фатальна: запись уже в БД, событие просто не уедет в аналитику.
func (u *UseCase) RecordSale(ctx context.Context, productKey string, price, salesVolume float64) (*domain.PriceRecord, error) {
	if strings.TrimSpace(productKey) == "" {
		return nil, domain.ErrEmptyProductKey
	}
	if price <= 0 {
		return nil, fmt.Errorf("%w: price must be positive, got %v", domain.ErrInvalidRecord, price)
	}
	if salesVolume < 0 {
		return nil, fmt.Errorf("%w: sales volume must be non-negative, got %v", domain.ErrInvalidRecord, salesVolume)
	}

	rec := domain.PriceRecord{
		ProductKey:  productKey,
		Price:       price,
		SalesVolume: salesVolume,
		RecordedAt:  time.Now(),
	}

	if err := u.repo.SaveRecord(ctx, rec); err != nil {
		return nil, err
	}
	u.log.Info("sale recorded", "product", productKey, "price", price, "volume", salesVolume)

	value, err := json.Marshal(rec)
	if err != nil {
		return nil, err
	}
	if err := u.broker.Send(ctx, []byte(productKey), value); err != nil {
		u.log.Warn("broker send", "product", productKey, "error", err)
	} else {
		u.log.Info("sale published", "product", productKey)
	}

	return &rec, nil
}

// History — история продаж продукта (обвязка над репозиторием).
func (u *UseCase) History(ctx context.Context, productKey string) ([]domain.PriceRecord, error) {
	if strings.TrimSpace(productKey) == "" {
		return nil, domain.ErrEmptyProductKey
	}
	return u.repo.ListByProduct(ctx, productKey)
}

// HandleSaleEvent вызывается консьюмером при получении продажи из топика (часть IPricingUseCase):
// пишет запись в аналитику и сбрасывает закэшированную рекомендацию продукта,
// чтобы следующая выдача учла новую продажу не дожидаясь истечения TTL.
func (u *UseCase) HandleSaleEvent(ctx context.Context, rec domain.PriceRecord) error {
	if err := u.analytics.WriteRecord(ctx, rec); err != nil {
		u.log.Warn("analytics write", "error", err)
		return err
	}
	if err := u.cache.Delete(ctx, cacheKey(rec.ProductKey)); err != nil {
		u.log.Warn("cache invalidate", "product", rec.ProductKey, "error", err)
	}
	u.log.Info("sale stored to click", "product", rec.ProductKey, "price", rec.Price, "volume", rec.SalesVolume)

	return nil
}
