package domain

import (
	"errors"
	"time"
)

// ErrEmptyProductKey возвращается, когда ключ продукта пустой. Никакого I/O в этом случае не делаем.
var ErrEmptyProductKey = errors.New("empty product key")

// ErrInvalidRecord возвращается при попытке сохранить запись с невалидной ценой или объёмом.
var ErrInvalidRecord = errors.New("invalid sale record")

// MsgNoHistory — сообщение в ответе, когда по продукту нет исторических данных.
const MsgNoHistory = "no historical data"

// PriceRecord — одна запись о продаже: цена и объём на момент продажи.
// Записи создаются эндпоинтом приёма данных и дальше не меняются и не удаляются.
type PriceRecord struct {
	ID          int       `json:"id"`
	ProductKey  string    `json:"product_key"`
	Price       float64   `json:"price"`
	SalesVolume float64   `json:"sales_volume"`
	RecordedAt  time.Time `json:"recorded_at"`
}

// Recommendation — результат расчёта рекомендованной цены.
// RecommendedPrice == nil означает, что истории по продукту нет; причина — в Message.
type Recommendation struct {
	RecommendedPrice *float64 `json:"recommendedPrice"`
	Message          string   `json:"message,omitempty"`
}
