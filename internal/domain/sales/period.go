package sales

import (
	"fmt"
	"slices"
	"time"

	"github.com/jhoicas/netline-api/internal/domain"
	"github.com/jhoicas/netline-api/internal/domain/entity"
)

var (
	epoch     = time.Unix(0, 0).UTC()
	farFuture = time.Date(9999, time.December, 31, 23, 59, 59, 0, time.UTC)
)

// DateRange ventana inclusiva [Start, End]. Un extremo nil queda abierto.
type DateRange struct {
	Start *time.Time
	End   *time.Time
}

func (r DateRange) bounds() (time.Time, time.Time) {
	start, end := epoch, farFuture
	if r.Start != nil {
		start = *r.Start
	}
	if r.End != nil {
		end = *r.End
	}
	return start, end
}

// Contains indica si la venta cae dentro del rango. Las fechas inválidas nunca entran.
func (r DateRange) Contains(s entity.SaleRecord) bool {
	if !s.ValidTimestamp {
		return false
	}
	start, end := r.bounds()
	return !s.Timestamp.Before(start) && !s.Timestamp.After(end)
}

// FilterByRange devuelve las ventas con start <= timestamp <= end, en el orden de entrada.
func FilterByRange(records []entity.SaleRecord, r DateRange) []entity.SaleRecord {
	out := make([]entity.SaleRecord, 0, len(records))
	for _, s := range records {
		if r.Contains(s) {
			out = append(out, s)
		}
	}
	return out
}

// DayRange construye un DateRange a partir de fechas YYYY-MM-DD interpretadas en loc:
// inicio a las 00:00:00 y fin a las 23:59:59.999999999. Un texto vacío deja el extremo abierto.
func DayRange(start, end string, loc *time.Location) (DateRange, error) {
	var r DateRange
	if start != "" {
		t, err := time.ParseInLocation("2006-01-02", start, loc)
		if err != nil {
			return DateRange{}, fmt.Errorf("%w: start_date %q", domain.ErrInvalidInput, start)
		}
		r.Start = &t
	}
	if end != "" {
		t, err := time.ParseInLocation("2006-01-02", end, loc)
		if err != nil {
			return DateRange{}, fmt.Errorf("%w: end_date %q", domain.ErrInvalidInput, end)
		}
		t = t.Add(24*time.Hour - time.Nanosecond) // inclusivo hasta el final del día
		r.End = &t
	}
	if r.Start != nil && r.End != nil && r.Start.After(*r.End) {
		return DateRange{}, fmt.Errorf("%w: start_date no puede ser posterior a end_date", domain.ErrInvalidInput)
	}
	return r, nil
}

// MonthFilter filtro por mes (0..11) y/o año locales. Un campo nil actúa como comodín.
type MonthFilter struct {
	Month *int
	Year  *int
}

// Matches indica si la venta cae en el mes/año pedidos, evaluados en loc.
func (f MonthFilter) Matches(s entity.SaleRecord, loc *time.Location) bool {
	if !s.ValidTimestamp {
		return false
	}
	local := s.Timestamp.In(loc)
	if f.Month != nil && int(local.Month())-1 != *f.Month {
		return false
	}
	if f.Year != nil && local.Year() != *f.Year {
		return false
	}
	return true
}

// FilterByMonth devuelve las ventas del mes/año indicados, en el orden de entrada.
func FilterByMonth(records []entity.SaleRecord, f MonthFilter, loc *time.Location) []entity.SaleRecord {
	out := make([]entity.SaleRecord, 0, len(records))
	for _, s := range records {
		if f.Matches(s, loc) {
			out = append(out, s)
		}
	}
	return out
}

// FilterByStatus conserva las ventas con alguno de los estados dados; sin estados no filtra.
func FilterByStatus(records []entity.SaleRecord, statuses ...entity.SaleStatus) []entity.SaleRecord {
	if len(statuses) == 0 {
		return slices.Clone(records)
	}
	out := make([]entity.SaleRecord, 0, len(records))
	for _, s := range records {
		if slices.Contains(statuses, s.Status) {
			out = append(out, s)
		}
	}
	return out
}
