package sales

import (
	"slices"
	"time"

	"github.com/jhoicas/netline-api/internal/domain/entity"
)

// Bucket ingresos y cantidad de ventas de un período del gráfico.
type Bucket struct {
	Revenue float64
	Count   int
}

// MonthlyBuckets reparte las ventas de year en 12 meses (índice 0 = enero) según loc.
func MonthlyBuckets(records []entity.SaleRecord, year int, loc *time.Location) [12]Bucket {
	var out [12]Bucket
	for _, s := range records {
		if !s.ValidTimestamp {
			continue
		}
		local := s.Timestamp.In(loc)
		if local.Year() != year {
			continue
		}
		b := &out[local.Month()-1]
		b.Revenue += s.Price
		b.Count++
	}
	return out
}

// DaysInMonth cantidad de días de month0 (0..11) en year.
func DaysInMonth(year, month0 int) int {
	return time.Date(year, time.Month(month0+2), 0, 0, 0, 0, 0, time.UTC).Day()
}

// DailyBuckets reparte las ventas de month0/year por día (índice 0 = día 1).
// Un mes fuera de 0..11 devuelve un slice vacío.
func DailyBuckets(records []entity.SaleRecord, year, month0 int, loc *time.Location) []Bucket {
	if month0 < 0 || month0 > 11 {
		return []Bucket{}
	}
	out := make([]Bucket, DaysInMonth(year, month0))
	for _, s := range records {
		if !s.ValidTimestamp {
			continue
		}
		local := s.Timestamp.In(loc)
		if local.Year() != year || int(local.Month())-1 != month0 {
			continue
		}
		b := &out[local.Day()-1]
		b.Revenue += s.Price
		b.Count++
	}
	return out
}

// AvailableYears años con al menos una venta, de más reciente a más antiguo.
func AvailableYears(records []entity.SaleRecord, loc *time.Location) []int {
	seen := make(map[int]struct{})
	years := []int{}
	for _, s := range records {
		if !s.ValidTimestamp {
			continue
		}
		y := s.Timestamp.In(loc).Year()
		if _, ok := seen[y]; !ok {
			seen[y] = struct{}{}
			years = append(years, y)
		}
	}
	slices.Sort(years)
	slices.Reverse(years)
	return years
}

// AvailableMonths meses (0..11) de year con al menos una venta, en orden ascendente.
func AvailableMonths(records []entity.SaleRecord, year int, loc *time.Location) []int {
	var present [12]bool
	for _, s := range records {
		if !s.ValidTimestamp {
			continue
		}
		local := s.Timestamp.In(loc)
		if local.Year() == year {
			present[local.Month()-1] = true
		}
	}
	months := []int{}
	for m, ok := range present {
		if ok {
			months = append(months, m)
		}
	}
	return months
}
