package analytics

import (
	"context"
	"fmt"
	"time"

	"github.com/jhoicas/netline-api/internal/application/dto"
	"github.com/jhoicas/netline-api/internal/domain/entity"
	"github.com/jhoicas/netline-api/internal/domain/repository"
	"github.com/jhoicas/netline-api/internal/domain/sales"
	"github.com/jhoicas/netline-api/pkg/format"
)

const overviewClientsPerPage = 20 // clientes por página del dashboard

// DashboardUseCase genera el resumen general: KPIs, planes más vendidos y clientes.
type DashboardUseCase struct {
	saleRepo repository.SaleRepository
	userRepo repository.UserRepository
	loc      *time.Location
}

// NewDashboardUseCase construye el caso de uso.
func NewDashboardUseCase(saleRepo repository.SaleRepository, userRepo repository.UserRepository, loc *time.Location) *DashboardUseCase {
	return &DashboardUseCase{saleRepo: saleRepo, userRepo: userRepo, loc: loc}
}

// Overview construye el OverviewResponse.
//
// Los totales se calculan una sola vez sobre todas las activaciones; los clientes
// son los usuarios con nombre visible, filtrables por nombre o número de usuario.
func (uc *DashboardUseCase) Overview(ctx context.Context, q dto.OverviewQuery) (*dto.OverviewResponse, error) {
	records, users, err := loadActivations(ctx, uc.saleRepo, uc.userRepo)
	if err != nil {
		return nil, fmt.Errorf("dashboard: %w", err)
	}

	byPlan := sales.PlanSummaries(records)
	ranked := sales.TopN(byPlan, func(p sales.PlanSummary) float64 { return p.TotalRevenue }, 0)

	out := &dto.OverviewResponse{
		TotalCards:  len(records),
		ActivePlans: len(byPlan),
		Plans:       planSold(ranked),
	}
	for _, p := range byPlan {
		out.TotalRevenue += p.TotalRevenue
	}
	out.RevenueLabel = format.HTG(out.TotalRevenue)
	out.CardsLabel = format.Count(out.TotalCards)

	byClient := sales.GroupBy(records, sales.ByClient)
	clients := make([]entity.User, 0, len(users))
	for _, u := range users {
		if u.DisplayName != "" && !u.IsStaff() {
			clients = append(clients, u)
		}
	}
	out.TotalClients = len(clients)
	out.ClientsLabel = format.Count(out.TotalClients)

	matched := sales.Search(clients, q.Query, func(u entity.User) []string {
		return []string{u.DisplayName, u.UserNumber}
	})
	page := sales.Paginate(matched, q.Page, overviewClientsPerPage)

	out.Clients = make([]dto.ClientRowDTO, 0, len(page.Items))
	for _, u := range page.Items {
		row := dto.ClientRowDTO{
			ID:               u.ID,
			Name:             u.DisplayName,
			UserNumber:       u.UserNumber,
			RegistrationDate: sales.FormatLocal(u.RegisteredAt, u.RegisteredOK, uc.loc),
			PlansSold:        []dto.PlanSoldDTO{},
		}
		if g, ok := byClient.Get(u.ID); ok {
			row.PlansSold = planSold(sales.PlanSummaries(g.Members))
			row.TotalSold = g.TotalRevenue
		}
		out.Clients = append(out.Clients, row)
	}
	out.Page = pageResponse(page)
	return out, nil
}

func planSold(summaries []sales.PlanSummary) []dto.PlanSoldDTO {
	out := make([]dto.PlanSoldDTO, 0, len(summaries))
	for _, s := range summaries {
		out = append(out, dto.PlanSoldDTO{Name: s.PlanName, Count: s.TotalCount, Sold: s.TotalRevenue})
	}
	return out
}
