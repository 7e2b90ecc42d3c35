package pricing

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/flavio-cbz/logistix-pro/internal/domain"
	"github.com/flavio-cbz/logistix-pro/internal/ports"
)

// Controller — маршруты ценообразования: рекомендация, приём продаж, история.
type Controller struct {
	uc  ports.IPricingUseCase
	log *slog.Logger
}

// New создаёт контроллер ценообразования.
func New(uc ports.IPricingUseCase, log *slog.Logger) *Controller {
	return &Controller{uc: uc, log: log}
}

// RegisterRoutes реализует http.Controller: регистрирует маршруты на роутере.
func (c *Controller) RegisterRoutes(r *gin.Engine) {
	api := r.Group("/api/v1")

	api.GET("/historical-prices", c.recommend)
	api.POST("/historical-prices", c.recordSale)
	api.GET("/historical-prices/history", c.history)
}

// @Summary Рекомендованная цена продукта
// @Description Возвращает рекомендованную цену по истории продаж (взвешенное среднее верхней четверти по объёму). Результат кэшируется на час.
// @Tags pricing
// @Produce json
// @Param productName query string true "Ключ продукта"
// @Success 200 {object} RecommendationResponse "Рекомендация (recommendedPrice == null, если истории нет)"
// @Failure 400 {object} ErrorResponse "Пустой ключ продукта"
// @Failure 500 {object} ErrorResponse "Хранилище истории недоступно"
// @Router /api/v1/historical-prices [get]
func (c *Controller) recommend(ctx *gin.Context) {
	productName := ctx.Query("productName")
	if productName == "" {
		ctx.JSON(http.StatusBadRequest, ErrorResponse{Message: "productName is required"})
		return
	}

	rec, err := c.uc.Recommend(ctx.Request.Context(), productName)
	if err != nil {
		if errors.Is(err, domain.ErrEmptyProductKey) {
			c.log.Warn("recommend bad product key", "error", err)
			ctx.JSON(http.StatusBadRequest, ErrorResponse{Message: err.Error()})
			return
		}
		// Отказ хранилища — это не «нет данных», отдаём явную ошибку.
		c.log.Error("recommend failed", "product", productName, "error", err)
		ctx.JSON(http.StatusInternalServerError, ErrorResponse{Message: err.Error()})
		return
	}
	ctx.JSON(http.StatusOK, RecommendationResponse{RecommendedPrice: rec.RecommendedPrice, Message: rec.Message})
}

// @Summary Сохранить историческую продажу
// @Description Принимает продукт, цену и объём продаж, сохраняет запись и публикует событие в брокер.
// @Tags pricing
// @Accept json
// @Produce json
// @Param request body RecordSaleRequest true "Параметры продажи"
// @Success 201 {object} RecordSaleResponse "Запись сохранена"
// @Failure 400 {object} ErrorResponse "Невалидный запрос"
// @Failure 500 {object} ErrorResponse "Внутренняя ошибка сервера"
// @Router /api/v1/historical-prices [post]
func (c *Controller) recordSale(ctx *gin.Context) {
	var req RecordSaleRequest

	if err := ctx.ShouldBindJSON(&req); err != nil {
		c.log.Warn("record sale bind failed", "error", err)
		ctx.JSON(http.StatusBadRequest, ErrorResponse{Message: "invalid request: " + err.Error()})
		return
	}

	_, err := c.uc.RecordSale(ctx.Request.Context(), req.ProductName, req.Price, req.SalesVolume)
	if err != nil {
		if errors.Is(err, domain.ErrEmptyProductKey) || errors.Is(err, domain.ErrInvalidRecord) {
			c.log.Warn("record sale validation failed", "error", err)
			ctx.JSON(http.StatusBadRequest, ErrorResponse{Message: err.Error()})
			return
		}
		c.log.Error("record sale failed", "error", err)
		ctx.JSON(http.StatusInternalServerError, ErrorResponse{Message: err.Error()})
		return
	}
	ctx.JSON(http.StatusCreated, RecordSaleResponse{Message: "sale recorded"})
}

// @Summary История продаж продукта
// @Description Возвращает все записи о продажах продукта (последние сначала).
// @Tags pricing
// @Produce json
// @Param productName query string true "Ключ продукта"
// @Success 200 {object} HistoryResponse "Список продаж"
// @Failure 400 {object} ErrorResponse "Пустой ключ продукта"
// @Failure 500 {object} ErrorResponse "Внутренняя ошибка сервера"
// @Router /api/v1/historical-prices/history [get]
func (c *Controller) history(ctx *gin.Context) {
	productName := ctx.Query("productName")
	if productName == "" {
		ctx.JSON(http.StatusBadRequest, ErrorResponse{Message: "productName is required"})
		return
	}

	list, err := c.uc.History(ctx.Request.Context(), productName)
	if err != nil {
		if errors.Is(err, domain.ErrEmptyProductKey) {
			ctx.JSON(http.StatusBadRequest, ErrorResponse{Message: err.Error()})
			return
		}
		c.log.Error("history failed", "product", productName, "error", err)
		ctx.JSON(http.StatusInternalServerError, ErrorResponse{Message: err.Error()})
		return
	}
	items := make([]HistoryItem, len(list))
	for i, rec := range list {
		items[i] = HistoryItem{
			ID:          rec.ID,
			ProductName: rec.ProductKey,
			Price:       rec.Price,
			SalesVolume: rec.SalesVolume,
			RecordedAt:  rec.RecordedAt,
		}
	}
	ctx.JSON(http.StatusOK, HistoryResponse{Items: items})
}
