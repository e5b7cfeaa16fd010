package analytics_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/netline-api/internal/application/analytics"
	"github.com/jhoicas/netline-api/internal/application/dto"
	"github.com/jhoicas/netline-api/internal/domain"
	"github.com/jhoicas/netline-api/internal/domain/sales"
)

func newAnalytics(t *testing.T) *analytics.AnalyticsUseCase {
	s, u := fixture(t)
	return analytics.NewAnalyticsUseCase(s, u, sales.TargetLocation).
		WithClock(func() time.Time { return time.Date(2024, 8, 20, 12, 0, 0, 0, time.UTC) })
}

func TestPlanAnalytics_Agosto(t *testing.T) {
	out, err := newAnalytics(t).PlanAnalytics(context.Background(), dto.DateRangeQuery{StartDate: "2024-08-01", EndDate: "2024-08-31"})
	require.NoError(t, err)

	require.Len(t, out.Plans, 3)
	assert.Equal(t, "MENSUAL", out.Plans[0].PlanName, "orden de primera aparición")
	assert.Equal(t, 3000.0, out.Plans[0].TotalRevenue)
	assert.Equal(t, "3,000 HTG", out.Plans[0].RevenueLabel)
	assert.Equal(t, 3600.0, out.TotalRevenue)
	assert.Equal(t, 4, out.TotalActivations)

	require.Len(t, out.TopClients, 3)
	assert.Equal(t, "Rose Pierre", out.TopClients[0].Name)
	assert.Equal(t, 2000.0, out.TopClients[0].TotalSpent)
}

func TestPlanAnalytics_RangoInvalido(t *testing.T) {
	_, err := newAnalytics(t).PlanAnalytics(context.Background(), dto.DateRangeQuery{StartDate: "2024-09-01", EndDate: "2024-08-01"})
	assert.True(t, errors.Is(err, domain.ErrInvalidInput))
}

func TestPlanAnalytics_FalloDelStore(t *testing.T) {
	s, u := fixture(t)
	s.err = errors.New("caído")

	_, err := analytics.NewAnalyticsUseCase(s, u, sales.TargetLocation).PlanAnalytics(context.Background(), dto.DateRangeQuery{})
	assert.Error(t, err)
}

func TestPlanSales_BusquedaYPaginacion(t *testing.T) {
	uc := newAnalytics(t)

	out, err := uc.PlanSales(context.Background(), "MENSUAL", dto.PlanSalesQuery{Query: "rose"})
	require.NoError(t, err)
	require.Len(t, out.Rows, 1)
	row := out.Rows[0]
	assert.Equal(t, "Rose Pierre", row.ClientName)
	assert.Equal(t, "2024-08-03", row.ActivationDate)
	assert.Equal(t, "10:00:00", row.ActivationTime, "hora local UTC-5")
	assert.Equal(t, "509c2", row.ConnectionNumber)
	assert.Equal(t, 3000.0, out.TotalRevenue, "el total del plan no depende de la búsqueda")

	empty, err := uc.PlanSales(context.Background(), "INEXISTENTE", dto.PlanSalesQuery{})
	require.NoError(t, err)
	assert.Empty(t, empty.Rows)
	assert.Equal(t, 0, empty.Page.TotalPages)
}

func TestMonthlyChart_AnioPorDefecto(t *testing.T) {
	out, err := newAnalytics(t).MonthlyChart(context.Background(), dto.ChartQuery{})
	require.NoError(t, err)

	assert.Equal(t, 2024, out.Year)
	require.Len(t, out.Months, 12)
	assert.Equal(t, "Aug", out.Months[7].Label)
	assert.Equal(t, 3600.0, out.Months[7].Revenue)
	assert.Equal(t, 100.0, out.Months[6].Revenue)
	assert.Equal(t, 3700.0, out.TotalRevenue)
	assert.Equal(t, []int{2024}, out.AvailableYears)
}

func TestDailyChart(t *testing.T) {
	july := 6
	out, err := newAnalytics(t).DailyChart(context.Background(), dto.ChartQuery{Month: &july})
	require.NoError(t, err)

	require.Len(t, out.Days, 31)
	assert.Equal(t, "10", out.Days[9].Label)
	assert.Equal(t, 100.0, out.Days[9].Revenue)
	assert.Equal(t, []int{6, 7}, out.AvailableMonths)
}
