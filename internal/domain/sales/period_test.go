package sales_test

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/netline-api/internal/domain"
	"github.com/jhoicas/netline-api/internal/domain/entity"
	"github.com/jhoicas/netline-api/internal/domain/sales"
)

func periodFixture(t *testing.T) []entity.SaleRecord {
	return []entity.SaleRecord{
		sale(t, "1", "A", 100, "2024-08-01T12:00:00Z"),
		sale(t, "2", "A", 50, "2024-08-10T12:00:00Z"),
		sale(t, "3", "B", 200, "2024-08-20T12:00:00Z"),
		sale(t, "4", "B", 75, "2024-09-01T02:00:00Z"), // 31 de agosto en hora local
		{ID: "5", PlanName: "C", Price: 999},          // fecha inválida
	}
}

func TestFilterByRange_Inclusivo(t *testing.T) {
	records := periodFixture(t)
	start := records[0].Timestamp
	end := records[2].Timestamp

	got := sales.FilterByRange(records, sales.DateRange{Start: &start, End: &end})

	require.Len(t, got, 3, "los extremos son inclusivos")
	assert.Equal(t, "1", got[0].ID)
	assert.Equal(t, "3", got[2].ID)
}

func TestFilterByRange_AbiertoExcluyeFechasInvalidas(t *testing.T) {
	got := sales.FilterByRange(periodFixture(t), sales.DateRange{})
	assert.Len(t, got, 4, "el registro sin fecha nunca entra")
}

func TestFilterByRange_Monotonia(t *testing.T) {
	records := periodFixture(t)
	wide, err := sales.DayRange("2024-08-01", "2024-08-31", sales.TargetLocation)
	require.NoError(t, err)
	narrow, err := sales.DayRange("2024-08-05", "2024-08-15", sales.TargetLocation)
	require.NoError(t, err)

	w := sales.FilterByRange(records, wide)
	n := sales.FilterByRange(records, narrow)

	assert.LessOrEqual(t, len(n), len(w))
	assert.LessOrEqual(t, sumPrices(n), sumPrices(w))
	assert.Len(t, w, 4, "el registro del 1 de septiembre UTC es 31 de agosto local")
}

func TestDayRange(t *testing.T) {
	r, err := sales.DayRange("2024-08-15", "2024-08-15", sales.TargetLocation)
	require.NoError(t, err)
	require.NotNil(t, r.Start)
	require.NotNil(t, r.End)
	assert.Equal(t, time.Date(2024, 8, 15, 5, 0, 0, 0, time.UTC), r.Start.UTC())
	assert.Equal(t, time.Date(2024, 8, 16, 4, 59, 59, 999999999, time.UTC), r.End.UTC())

	open, err := sales.DayRange("", "", sales.TargetLocation)
	require.NoError(t, err)
	assert.Nil(t, open.Start)
	assert.Nil(t, open.End)

	_, err = sales.DayRange("2024-08-16", "2024-08-15", sales.TargetLocation)
	assert.True(t, errors.Is(err, domain.ErrInvalidInput))

	_, err = sales.DayRange("15/08/2024", "", sales.TargetLocation)
	assert.True(t, errors.Is(err, domain.ErrInvalidInput))
}

func TestFilterByMonth(t *testing.T) {
	records := periodFixture(t)

	august := sales.FilterByMonth(records, sales.MonthFilter{Month: ptr(7), Year: ptr(2024)}, sales.TargetLocation)
	assert.Len(t, august, 4)

	september := sales.FilterByMonth(records, sales.MonthFilter{Month: ptr(8)}, sales.TargetLocation)
	assert.Empty(t, september)

	all := sales.FilterByMonth(records, sales.MonthFilter{}, sales.TargetLocation)
	assert.Len(t, all, 4, "sin mes ni año solo descarta fechas inválidas")
}

func TestFilterByStatus(t *testing.T) {
	records := periodFixture(t)
	records[1].Status = entity.SalePending

	assert.Len(t, sales.FilterByStatus(records), len(records))
	got := sales.FilterByStatus(records, entity.SalePending)
	require.Len(t, got, 1)
	assert.Equal(t, "2", got[0].ID)
}
