package pricing

import "time"

// RecordSaleRequest — запрос на сохранение исторической продажи (POST /api/v1/historical-prices).
type RecordSaleRequest struct {
	ProductName string  `json:"productName" binding:"required"`
	Price       float64 `json:"price" binding:"required"`
	SalesVolume float64 `json:"salesVolume"`
}

// RecordSaleResponse — ответ на сохранение продажи.
type RecordSaleResponse struct {
	Message string `json:"message"`
}

// RecommendationResponse — ответ с рекомендованной ценой.
// RecommendedPrice == null, когда по продукту нет истории; причина — в message.
type RecommendationResponse struct {
	RecommendedPrice *float64 `json:"recommendedPrice"`
	Message          string   `json:"message,omitempty"`
}

// HistoryItem — одна запись в истории продаж (GET /api/v1/historical-prices/history).
type HistoryItem struct {
	ID          int       `json:"id"`
	ProductName string    `json:"productName"`
	Price       float64   `json:"price"`
	SalesVolume float64   `json:"salesVolume"`
	RecordedAt  time.Time `json:"recordedAt"`
}

// HistoryResponse — ответ со списком продаж.
type HistoryResponse struct {
	Items []HistoryItem `json:"items"`
}

// ErrorResponse — ответ с текстом ошибки.
type ErrorResponse struct {
	Message string `json:"message"`
}
