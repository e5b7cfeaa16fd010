// Package analytics contiene los casos de uso del panel: analítica por plan,
// gráficos mensual/diario y el resumen general del dashboard.
package analytics

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/jhoicas/netline-api/internal/application/dto"
	"github.com/jhoicas/netline-api/internal/domain/entity"
	"github.com/jhoicas/netline-api/internal/domain/repository"
	"github.com/jhoicas/netline-api/internal/domain/sales"
	"github.com/jhoicas/netline-api/pkg/format"
)

const (
	topClientsLimit  = 3  // clientes en el podio de la analítica por plan
	planSalesPerPage = 10 // filas por página del detalle de un plan
)

var monthLabels = [12]string{"Jan", "Feb", "Mar", "Apr", "May", "Jun", "Jul", "Aug", "Sep", "Oct", "Nov", "Dec"}

// AnalyticsUseCase analítica de activaciones de planes.
//
// Fuente de datos: SaleRepository (activaciones) y UserRepository (nombres de clientes).
// Todo el cálculo lo hace el motor puro de internal/domain/sales.
type AnalyticsUseCase struct {
	saleRepo repository.SaleRepository
	userRepo repository.UserRepository
	loc      *time.Location
	now      func() time.Time
}

// NewAnalyticsUseCase construye el caso de uso.
func NewAnalyticsUseCase(saleRepo repository.SaleRepository, userRepo repository.UserRepository, loc *time.Location) *AnalyticsUseCase {
	return &AnalyticsUseCase{saleRepo: saleRepo, userRepo: userRepo, loc: loc, now: time.Now}
}

// WithClock reemplaza el reloj (tests).
func (uc *AnalyticsUseCase) WithClock(now func() time.Time) *AnalyticsUseCase {
	uc.now = now
	return uc
}

// loadActivations lee activaciones y usuarios en paralelo.
func loadActivations(ctx context.Context, saleRepo repository.SaleRepository, userRepo repository.UserRepository) ([]entity.SaleRecord, []entity.User, error) {
	var records []entity.SaleRecord
	var users []entity.User

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		records, err = saleRepo.ListActivations(gctx)
		if err != nil {
			return fmt.Errorf("activaciones: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		users, err = userRepo.List(gctx)
		if err != nil {
			return fmt.Errorf("usuarios: %w", err)
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, nil, err
	}
	return records, users, nil
}

// PlanAnalytics resumen por plan, ingresos totales y top 3 de clientes del período.
func (uc *AnalyticsUseCase) PlanAnalytics(ctx context.Context, q dto.DateRangeQuery) (*dto.PlanAnalyticsResponse, error) {
	window, err := sales.DayRange(q.StartDate, q.EndDate, uc.loc)
	if err != nil {
		return nil, err
	}
	records, users, err := loadActivations(ctx, uc.saleRepo, uc.userRepo)
	if err != nil {
		return nil, fmt.Errorf("analítica por plan: %w", err)
	}

	inRange := sales.FilterByRange(records, window)
	summaries := sales.PlanSummaries(inRange)

	out := &dto.PlanAnalyticsResponse{
		StartDate:  q.StartDate,
		EndDate:    q.EndDate,
		Plans:      make([]dto.PlanSummaryDTO, 0, len(summaries)),
		TopClients: []dto.ClientRankingDTO{},
	}
	for _, s := range summaries {
		out.Plans = append(out.Plans, dto.PlanSummaryDTO{
			PlanName:     s.PlanName,
			TotalCount:   s.TotalCount,
			TotalRevenue: s.TotalRevenue,
			RevenueLabel: format.HTG(s.TotalRevenue),
		})
		out.TotalRevenue += s.TotalRevenue
		out.TotalActivations += s.TotalCount
	}
	for _, c := range sales.TopClients(inRange, users, topClientsLimit) {
		out.TopClients = append(out.TopClients, dto.ClientRankingDTO{
			ClientID:      c.ClientID,
			Name:          c.Name,
			TotalSpent:    c.TotalSpent,
			PurchaseCount: c.PurchaseCount,
		})
	}
	return out, nil
}

// PlanSales detalle de activaciones de un plan, filtrable por nombre de cliente, 10 por página.
func (uc *AnalyticsUseCase) PlanSales(ctx context.Context, plan string, q dto.PlanSalesQuery) (*dto.PlanSalesResponse, error) {
	window, err := sales.DayRange(q.StartDate, q.EndDate, uc.loc)
	if err != nil {
		return nil, err
	}
	records, users, err := loadActivations(ctx, uc.saleRepo, uc.userRepo)
	if err != nil {
		return nil, fmt.Errorf("detalle de plan: %w", err)
	}

	names := userNames(users)
	nameOf := func(s entity.SaleRecord) string {
		if n, ok := names[s.ClientID]; ok && n != "" {
			return n
		}
		return sales.NotAvailable
	}

	ofPlan := sales.GroupBy(sales.FilterByRange(records, window), sales.ByPlan)
	var members []entity.SaleRecord
	var total float64
	if g, ok := ofPlan.Get(plan); ok {
		members, total = g.Members, g.TotalRevenue
	}
	page := sales.Paginate(sales.SearchSales(members, q.Query, nameOf), q.Page, planSalesPerPage)

	rows := make([]dto.PlanSaleRowDTO, 0, len(page.Items))
	for _, s := range page.Items {
		date, clock := sales.SplitLocal(s.Timestamp, s.ValidTimestamp, uc.loc)
		rows = append(rows, dto.PlanSaleRowDTO{
			PlanName:         s.PlanName,
			PlanPrice:        s.Price,
			ClientName:       nameOf(s),
			ConnectionNumber: s.ConnectionNumber,
			ActivationDate:   date,
			ActivationTime:   clock,
		})
	}
	return &dto.PlanSalesResponse{
		PlanName:     plan,
		TotalRevenue: total,
		Rows:         rows,
		Page:         pageResponse(page),
	}, nil
}

// MonthlyChart 12 meses del año pedido (por defecto el año en curso).
func (uc *AnalyticsUseCase) MonthlyChart(ctx context.Context, q dto.ChartQuery) (*dto.MonthlyChartResponse, error) {
	records, err := uc.saleRepo.ListActivations(ctx)
	if err != nil {
		return nil, fmt.Errorf("gráfico mensual: %w", err)
	}
	year := uc.now().In(uc.loc).Year()
	if q.Year != nil {
		year = *q.Year
	}

	buckets := sales.MonthlyBuckets(records, year, uc.loc)
	out := &dto.MonthlyChartResponse{
		Year:           year,
		Months:         make([]dto.BucketDTO, 0, len(buckets)),
		AvailableYears: sales.AvailableYears(records, uc.loc),
	}
	for i, b := range buckets {
		out.Months = append(out.Months, dto.BucketDTO{Label: monthLabels[i], Revenue: b.Revenue, Count: b.Count})
		out.TotalRevenue += b.Revenue
	}
	return out, nil
}

// DailyChart días del mes pedido (por defecto el mes en curso).
func (uc *AnalyticsUseCase) DailyChart(ctx context.Context, q dto.ChartQuery) (*dto.DailyChartResponse, error) {
	records, err := uc.saleRepo.ListActivations(ctx)
	if err != nil {
		return nil, fmt.Errorf("gráfico diario: %w", err)
	}
	now := uc.now().In(uc.loc)
	year, month := now.Year(), int(now.Month())-1
	if q.Year != nil {
		year = *q.Year
	}
	if q.Month != nil {
		month = *q.Month
	}

	buckets := sales.DailyBuckets(records, year, month, uc.loc)
	out := &dto.DailyChartResponse{
		Year:            year,
		Month:           month,
		Days:            make([]dto.BucketDTO, 0, len(buckets)),
		AvailableYears:  sales.AvailableYears(records, uc.loc),
		AvailableMonths: sales.AvailableMonths(records, year, uc.loc),
	}
	for i, b := range buckets {
		out.Days = append(out.Days, dto.BucketDTO{Label: strconv.Itoa(i + 1), Revenue: b.Revenue, Count: b.Count})
		out.TotalRevenue += b.Revenue
	}
	return out, nil
}

func userNames(users []entity.User) map[string]string {
	names := make(map[string]string, len(users))
	for _, u := range users {
		names[u.ID] = u.DisplayName
	}
	return names
}

func pageResponse[T any](p sales.Page[T]) dto.PageResponse {
	return dto.PageResponse{
		Page:       p.Page,
		PerPage:    p.PerPage,
		TotalItems: p.TotalItems,
		TotalPages: p.TotalPages,
	}
}
