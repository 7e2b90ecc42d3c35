package pricing

import (
	"math"
	"sort"

	"github.com/flavio-cbz/logistix-pro/internal/domain"
)

// recommendPrice считает рекомендованную цену по непустому списку записей.
//
// Алгоритм: записи сортируются по объёму продаж по убыванию (сортировка стабильная,
// при равных объёмах сохраняется входной порядок), берётся верхняя четверть
// (ceil(N*0.25), всегда >= 1) и по ней считается средняя цена, взвешенная по объёму.
// Если суммарный объём выбранных записей нулевой, возвращается цена первой записи
// после сортировки. Результат округляется до 2 знаков (денежная точность).
func recommendPrice(records []domain.PriceRecord) float64 {
	sorted := make([]domain.PriceRecord, len(records))
	copy(sorted, records)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].SalesVolume > sorted[j].SalesVolume
	})

	top := sorted[:topQuartileSize(len(sorted))]

	var weightedSum, totalVolume float64
	for _, rec := range top {
		weightedSum += rec.Price * rec.SalesVolume
		totalVolume += rec.SalesVolume
	}

	price := sorted[0].Price
	if totalVolume > 0 {
		price = weightedSum / totalVolume
	}
	return round2(price)
}

// topQuartileSize возвращает размер верхней четверти: ceil(n*0.25), минимум 1.
func topQuartileSize(n int) int {
	size := int(math.Ceil(float64(n) * 0.25))
	if size < 1 {
		size = 1
	}
	return size
}

// round2 округляет до 2 знаков после запятой.
func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// sanitize отбрасывает записи с неположительной ценой (нарушение инварианта price > 0).
// Такие записи логируются на уровне выше; в расчёт они не попадают,
// иначе взвешенное среднее будет искажено.
func sanitize(records []domain.PriceRecord) (valid, dropped []domain.PriceRecord) {
	valid = make([]domain.PriceRecord, 0, len(records))
	for _, rec := range records {
		if rec.Price <= 0 {
			dropped = append(dropped, rec)
			continue
		}
		valid = append(valid, rec)
	}
	return valid, dropped
}
