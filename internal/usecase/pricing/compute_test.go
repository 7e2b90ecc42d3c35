package pricing

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/flavio-cbz/logistix-pro/internal/domain"
)

func rec(price, volume float64) domain.PriceRecord {
	return domain.PriceRecord{Price: price, SalesVolume: volume}
}

func TestTopQuartileSize(t *testing.T) {
	// Размер выборки — ceil(N*0.25), но не меньше 1.
	tests := []struct {
		n    int
		want int
	}{
		{1, 1},
		{2, 1},
		{3, 1},
		{4, 1},
		{5, 2},
		{8, 2},
		{9, 3},
		{100, 25},
	}

	for _, tt := range tests {
		got := topQuartileSize(tt.n)
		if got != tt.want {
			t.Errorf("topQuartileSize(%d) = %d, want %d", tt.n, got, tt.want)
		}
	}
}

func TestRecommendPrice(t *testing.T) {
	tests := []struct {
		name    string
		records []domain.PriceRecord
		want    float64
	}{
		{
			name:    "одна запись — её цена",
			records: []domain.PriceRecord{rec(49.90, 3)},
			want:    49.90,
		},
		{
			name: "три записи — берётся только лидер по объёму",
			// ceil(3*0.25) = 1: в расчёт попадает только (12, 20).
			records: []domain.PriceRecord{rec(10, 5), rec(12, 20), rec(9, 1)},
			want:    12.00,
		},
		{
			name: "восемь записей — взвешенное среднее двух лидеров",
			// ceil(8*0.25) = 2: лидеры (20, 100) и (10, 50).
			// (20*100 + 10*50) / 150 = 2500/150 = 16.666... -> 16.67
			records: []domain.PriceRecord{
				rec(20, 100), rec(10, 50), rec(5, 10), rec(7, 9),
				rec(6, 8), rec(4, 3), rec(3, 2), rec(2, 1),
			},
			want: 16.67,
		},
		{
			name: "нулевой суммарный объём — цена первой записи после сортировки",
			// Сортировка стабильная: при равных объёмах порядок входа сохраняется.
			records: []domain.PriceRecord{rec(10, 0), rec(20, 0)},
			want:    10.00,
		},
		{
			name: "нулевой объём у лидера выборки, но не у всех",
			// ceil(2*0.25) = 1: лидер (30, 4), обычное взвешенное среднее.
			records: []domain.PriceRecord{rec(30, 4), rec(10, 0)},
			want:    30.00,
		},
		{
			name: "округление до 2 знаков",
			// ceil(5*0.25) = 2: лидеры (10, 2) и (11, 1).
			// (10*2 + 11*1) / 3 = 10.333... -> 10.33
			records: []domain.PriceRecord{rec(10, 2), rec(11, 1), rec(8, 0), rec(7, 0), rec(6, 0)},
			want:    10.33,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := recommendPrice(tt.records)
			assert.Equal(t, tt.want, got)
		})
	}
}

// TestRecommendPrice_WithinBounds — результат всегда в пределах [min, max] цен выбранной четверти.
func TestRecommendPrice_WithinBounds(t *testing.T) {
	records := []domain.PriceRecord{
		rec(15.5, 40), rec(12.3, 35), rec(18.9, 30), rec(11.1, 25),
		rec(14.2, 20), rec(16.8, 15), rec(13.7, 10), rec(10.4, 5),
	}
	// ceil(8*0.25) = 2: выборка (15.5, 40) и (12.3, 35).
	got := recommendPrice(records)
	assert.GreaterOrEqual(t, got, 12.3)
	assert.LessOrEqual(t, got, 15.5)
}

// TestRecommendPrice_DoesNotMutateInput — сортировка идёт по копии, вход не меняется.
func TestRecommendPrice_DoesNotMutateInput(t *testing.T) {
	records := []domain.PriceRecord{rec(9, 1), rec(12, 20), rec(10, 5)}

	_ = recommendPrice(records)

	assert.Equal(t, 9.0, records[0].Price, "порядок входного слайса должен сохраниться")
	assert.Equal(t, 12.0, records[1].Price)
	assert.Equal(t, 10.0, records[2].Price)
}

func TestSanitize(t *testing.T) {
	records := []domain.PriceRecord{
		{ID: 1, Price: 10, SalesVolume: 5},
		{ID: 2, Price: 0, SalesVolume: 3},  // нулевая цена — нарушение инварианта
		{ID: 3, Price: -5, SalesVolume: 1}, // отрицательная цена — тоже
		{ID: 4, Price: 7, SalesVolume: 0},  // нулевой объём валиден
	}

	valid, dropped := sanitize(records)

	assert.Len(t, valid, 2)
	assert.Len(t, dropped, 2)
	assert.Equal(t, 1, valid[0].ID)
	assert.Equal(t, 4, valid[1].ID)
	assert.Equal(t, 2, dropped[0].ID)
	assert.Equal(t, 3, dropped[1].ID)
}

func TestRound2(t *testing.T) {
	tests := []struct {
		in   float64
		want float64
	}{
		{16.666666, 16.67},
		{9.9966, 10.00},
		{12.0, 12.00},
		{0.005, 0.01},
		{1.004, 1.00},
	}

	for _, tt := range tests {
		got := round2(tt.in)
		if got != tt.want {
			t.Errorf("round2(%v) = %v, want %v", tt.in, got, tt.want)
		}
	}
}
