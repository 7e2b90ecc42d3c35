package pricing

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/flavio-cbz/logistix-pro/internal/domain"
	"github.com/flavio-cbz/logistix-pro/internal/infrastructure/memcache"
	"github.com/flavio-cbz/logistix-pro/internal/mocks"
)

// newTestLogger создаёт логгер для тестов (выводит только ошибки, чтобы не засорять вывод).
func newTestLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))
}

func f64(v float64) *float64 {
	return &v
}

// Тест 1: Cache Hit — рекомендация берётся из кэша, хранилище истории не вызывается.
func TestRecommend_CacheHit(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockCache := mocks.NewMockICache(ctrl)
	mockRepo := mocks.NewMockIPriceHistoryRepository(ctrl)
	mockBroker := mocks.NewMockIProducer(ctrl)
	mockAnalytics := mocks.NewMockISaleAnalytics(ctrl)

	// Кэш отвечает попаданием — дальше ничего вызываться не должно
	// (на repo нет EXPECT, любой вызов уронит тест).
	cached := domain.Recommendation{RecommendedPrice: f64(12.00)}
	mockCache.EXPECT().
		Get(gomock.Any(), "historical_prices:clavier-azerty").
		Return(cached, true, nil)

	uc := New(mockRepo, mockCache, mockBroker, mockAnalytics, 0, newTestLogger())

	result, err := uc.Recommend(context.Background(), "clavier-azerty")

	require.NoError(t, err)
	require.NotNil(t, result.RecommendedPrice)
	assert.Equal(t, 12.00, *result.RecommendedPrice)
	assert.Empty(t, result.Message)
}

// Тест 2: Cache Miss — полный флоу: чтение истории → расчёт → запись в кэш.
func TestRecommend_CacheMiss(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockCache := mocks.NewMockICache(ctrl)
	mockRepo := mocks.NewMockIPriceHistoryRepository(ctrl)
	mockBroker := mocks.NewMockIProducer(ctrl)
	mockAnalytics := mocks.NewMockISaleAnalytics(ctrl)

	records := []domain.PriceRecord{
		{ProductKey: "clavier-azerty", Price: 10, SalesVolume: 5},
		{ProductKey: "clavier-azerty", Price: 12, SalesVolume: 20},
		{ProductKey: "clavier-azerty", Price: 9, SalesVolume: 1},
	}
	// ceil(3*0.25) = 1: в расчёт попадает только лидер (12, 20).
	expected := domain.Recommendation{RecommendedPrice: f64(12.00)}

	// gomock.InOrder гарантирует порядок: кэш → история → кэш.
	gomock.InOrder(
		mockCache.EXPECT().Get(gomock.Any(), "historical_prices:clavier-azerty").Return(domain.Recommendation{}, false, nil),
		mockRepo.EXPECT().ListByProduct(gomock.Any(), "clavier-azerty").Return(records, nil),
		mockCache.EXPECT().Set(gomock.Any(), "historical_prices:clavier-azerty", expected, DefaultTTL).Return(nil),
	)

	uc := New(mockRepo, mockCache, mockBroker, mockAnalytics, 0, newTestLogger())

	result, err := uc.Recommend(context.Background(), "clavier-azerty")

	require.NoError(t, err)
	require.NotNil(t, result.RecommendedPrice)
	assert.Equal(t, 12.00, *result.RecommendedPrice)
}

// Тест 3: пустая история — кэшируется результат с nil-ценой и сообщением.
// Иначе каждый запрос по продукту без истории будет ходить в БД.
func TestRecommend_NoHistory_CachesEmptyResult(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockCache := mocks.NewMockICache(ctrl)
	mockRepo := mocks.NewMockIPriceHistoryRepository(ctrl)

	expected := domain.Recommendation{Message: domain.MsgNoHistory}

	gomock.InOrder(
		mockCache.EXPECT().Get(gomock.Any(), "historical_prices:produit-inconnu").Return(domain.Recommendation{}, false, nil),
		mockRepo.EXPECT().ListByProduct(gomock.Any(), "produit-inconnu").Return(nil, nil),
		mockCache.EXPECT().Set(gomock.Any(), "historical_prices:produit-inconnu", expected, DefaultTTL).Return(nil),
	)

	uc := New(mockRepo, mockCache, nil, nil, 0, newTestLogger())

	result, err := uc.Recommend(context.Background(), "produit-inconnu")

	require.NoError(t, err)
	assert.Nil(t, result.RecommendedPrice)
	assert.Equal(t, domain.MsgNoHistory, result.Message)
}

// Тест 4: идемпотентность — повторный вызов с реальным кэшем не ходит в хранилище
// и возвращает байт-в-байт тот же результат.
func TestRecommend_SecondCallHitsCache(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockIPriceHistoryRepository(ctrl)
	cache := memcache.NewWithClock(time.Now)

	records := []domain.PriceRecord{
		{Price: 15.5, SalesVolume: 8},
		{Price: 14.0, SalesVolume: 2},
	}
	// Ровно один вызов: второй Recommend обязан попасть в кэш.
	mockRepo.EXPECT().ListByProduct(gomock.Any(), "souris-sans-fil").Return(records, nil).Times(1)

	uc := New(mockRepo, cache, nil, nil, 0, newTestLogger())

	first, err := uc.Recommend(context.Background(), "souris-sans-fil")
	require.NoError(t, err)

	second, err := uc.Recommend(context.Background(), "souris-sans-fil")
	require.NoError(t, err)

	assert.Equal(t, *first.RecommendedPrice, *second.RecommendedPrice)
	assert.Equal(t, first.Message, second.Message)
}

// Тест 5: пустой ключ продукта — ошибка сразу, никакого I/O.
func TestRecommend_EmptyProductKey(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	// Ни на одном моке нет EXPECT: любой вызов уронит тест.
	mockCache := mocks.NewMockICache(ctrl)
	mockRepo := mocks.NewMockIPriceHistoryRepository(ctrl)

	uc := New(mockRepo, mockCache, nil, nil, 0, newTestLogger())

	for _, key := range []string{"", "   "} {
		result, err := uc.Recommend(context.Background(), key)
		assert.Nil(t, result)
		assert.ErrorIs(t, err, domain.ErrEmptyProductKey)
	}
}

// Тест 6: отказ хранилища истории — ошибка наверх, в кэш ничего не пишется.
// «Нет данных» и «хранилище недоступно» должны оставаться различимы.
func TestRecommend_RepoError_NotCached(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockCache := mocks.NewMockICache(ctrl)
	mockRepo := mocks.NewMockIPriceHistoryRepository(ctrl)

	storeErr := errors.New("connection refused")
	mockCache.EXPECT().Get(gomock.Any(), "historical_prices:clavier-azerty").Return(domain.Recommendation{}, false, nil)
	mockRepo.EXPECT().ListByProduct(gomock.Any(), "clavier-azerty").Return(nil, storeErr)
	// cache.Set НЕ вызывается — ошибка извлечения не кэшируется.

	uc := New(mockRepo, mockCache, nil, nil, 0, newTestLogger())

	result, err := uc.Recommend(context.Background(), "clavier-azerty")

	assert.Nil(t, result)
	require.Error(t, err)
	assert.ErrorIs(t, err, storeErr)
	assert.NotErrorIs(t, err, domain.ErrEmptyProductKey)
}

// Тест 7: ошибка кэша на Get — трактуется как промах, расчёт идёт дальше.
func TestRecommend_CacheGetError_TreatedAsMiss(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockCache := mocks.NewMockICache(ctrl)
	mockRepo := mocks.NewMockIPriceHistoryRepository(ctrl)

	records := []domain.PriceRecord{{Price: 25, SalesVolume: 4}}

	gomock.InOrder(
		mockCache.EXPECT().Get(gomock.Any(), "historical_prices:ecran-24").Return(domain.Recommendation{}, false, errors.New("redis down")),
		mockRepo.EXPECT().ListByProduct(gomock.Any(), "ecran-24").Return(records, nil),
		// Ошибка на Set тоже не фатальна.
		mockCache.EXPECT().Set(gomock.Any(), "historical_prices:ecran-24", gomock.Any(), DefaultTTL).Return(errors.New("redis down")),
	)

	uc := New(mockRepo, mockCache, nil, nil, 0, newTestLogger())

	result, err := uc.Recommend(context.Background(), "ecran-24")

	require.NoError(t, err)
	require.NotNil(t, result.RecommendedPrice)
	assert.Equal(t, 25.00, *result.RecommendedPrice)
}

// Тест 8: записи с неположительной ценой отбрасываются и не искажают среднее.
func TestRecommend_DropsInvalidPrices(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockCache := mocks.NewMockICache(ctrl)
	mockRepo := mocks.NewMockIPriceHistoryRepository(ctrl)

	records := []domain.PriceRecord{
		{ID: 1, Price: 0, SalesVolume: 100}, // мусор: цена 0 при огромном объёме
		{ID: 2, Price: 12, SalesVolume: 20},
		{ID: 3, Price: 10, SalesVolume: 5},
	}
	// После фильтрации N=2, ceil(2*0.25)=1: лидер (12, 20).
	expected := domain.Recommendation{RecommendedPrice: f64(12.00)}

	mockCache.EXPECT().Get(gomock.Any(), gomock.Any()).Return(domain.Recommendation{}, false, nil)
	mockRepo.EXPECT().ListByProduct(gomock.Any(), "clavier-azerty").Return(records, nil)
	mockCache.EXPECT().Set(gomock.Any(), gomock.Any(), expected, DefaultTTL).Return(nil)

	uc := New(mockRepo, mockCache, nil, nil, 0, newTestLogger())

	result, err := uc.Recommend(context.Background(), "clavier-azerty")

	require.NoError(t, err)
	assert.Equal(t, 12.00, *result.RecommendedPrice)
}

// Тест 9: приём продажи — сохранение в БД, затем публикация в брокер.
func TestRecordSale_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockIPriceHistoryRepository(ctrl)
	mockBroker := mocks.NewMockIProducer(ctrl)

	gomock.InOrder(
		mockRepo.EXPECT().SaveRecord(gomock.Any(), gomock.Any()).Return(nil),
		mockBroker.EXPECT().Send(gomock.Any(), []byte("clavier-azerty"), gomock.Any()).Return(nil),
	)

	uc := New(mockRepo, nil, mockBroker, nil, 0, newTestLogger())

	rec, err := uc.RecordSale(context.Background(), "clavier-azerty", 49.90, 3)

	require.NoError(t, err)
	assert.Equal(t, "clavier-azerty", rec.ProductKey)
	assert.Equal(t, 49.90, rec.Price)
	assert.Equal(t, 3.0, rec.SalesVolume)
	assert.False(t, rec.RecordedAt.IsZero())
}

// Тест 10: валидация продажи — невалидный вход отклоняется без I/O.
func TestRecordSale_Validation(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockIPriceHistoryRepository(ctrl)
	mockBroker := mocks.NewMockIProducer(ctrl)

	uc := New(mockRepo, nil, mockBroker, nil, 0, newTestLogger())

	tests := []struct {
		name    string
		key     string
		price   float64
		volume  float64
		wantErr error
	}{
		{"пустой ключ", "", 10, 1, domain.ErrEmptyProductKey},
		{"нулевая цена", "clavier", 0, 1, domain.ErrInvalidRecord},
		{"отрицательная цена", "clavier", -5, 1, domain.ErrInvalidRecord},
		{"отрицательный объём", "clavier", 10, -1, domain.ErrInvalidRecord},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec, err := uc.RecordSale(context.Background(), tt.key, tt.price, tt.volume)
			assert.Nil(t, rec)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

// Тест 11: ошибка брокера не фатальна — продажа уже сохранена в БД.
func TestRecordSale_BrokerErrorNotFatal(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockIPriceHistoryRepository(ctrl)
	mockBroker := mocks.NewMockIProducer(ctrl)

	mockRepo.EXPECT().SaveRecord(gomock.Any(), gomock.Any()).Return(nil)
	mockBroker.EXPECT().Send(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("kafka down"))

	uc := New(mockRepo, nil, mockBroker, nil, 0, newTestLogger())

	rec, err := uc.RecordSale(context.Background(), "clavier-azerty", 49.90, 3)

	require.NoError(t, err)
	require.NotNil(t, rec)
}

// Тест 12: история продаж — обвязка над репозиторием.
func TestHistory(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockIPriceHistoryRepository(ctrl)

	expected := []domain.PriceRecord{
		{ID: 2, ProductKey: "clavier-azerty", Price: 52, SalesVolume: 1},
		{ID: 1, ProductKey: "clavier-azerty", Price: 49.90, SalesVolume: 3},
	}
	mockRepo.EXPECT().ListByProduct(gomock.Any(), "clavier-azerty").Return(expected, nil)

	uc := New(mockRepo, nil, nil, nil, 0, newTestLogger())

	result, err := uc.History(context.Background(), "clavier-azerty")

	require.NoError(t, err)
	assert.Equal(t, expected, result)

	_, err = uc.History(context.Background(), "")
	assert.ErrorIs(t, err, domain.ErrEmptyProductKey)
}

// Тест 13: событие продажи из Kafka — запись в аналитику и сброс кэша продукта.
func TestHandleSaleEvent(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockCache := mocks.NewMockICache(ctrl)
	mockAnalytics := mocks.NewMockISaleAnalytics(ctrl)

	rec := domain.PriceRecord{ProductKey: "clavier-azerty", Price: 49.90, SalesVolume: 3}

	gomock.InOrder(
		mockAnalytics.EXPECT().WriteRecord(gomock.Any(), rec).Return(nil),
		mockCache.EXPECT().Delete(gomock.Any(), "historical_prices:clavier-azerty").Return(nil),
	)

	uc := New(nil, mockCache, nil, mockAnalytics, 0, newTestLogger())

	err := uc.HandleSaleEvent(context.Background(), rec)
	require.NoError(t, err)
}

// Тест 14: ошибка аналитики — событие вернётся на повторную доставку, кэш не трогаем.
func TestHandleSaleEvent_AnalyticsError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockCache := mocks.NewMockICache(ctrl)
	mockAnalytics := mocks.NewMockISaleAnalytics(ctrl)

	rec := domain.PriceRecord{ProductKey: "clavier-azerty", Price: 49.90, SalesVolume: 3}
	mockAnalytics.EXPECT().WriteRecord(gomock.Any(), rec).Return(errors.New("clickhouse down"))
	// cache.Delete НЕ вызывается.

	uc := New(nil, mockCache, nil, mockAnalytics, 0, newTestLogger())

	err := uc.HandleSaleEvent(context.Background(), rec)
	assert.Error(t, err)
}
