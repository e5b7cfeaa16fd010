package dto

// OverviewQuery filtros de GET /api/dashboard/overview.
type OverviewQuery struct {
	Query string `query:"q" validate:"max=100"`
	Page  int    `query:"page" validate:"min=0"`
}

// OverviewResponse KPIs globales, planes vendidos y listado de clientes.
type OverviewResponse struct {
	TotalClients int     `json:"total_clients"`
	TotalRevenue float64 `json:"total_revenue"`
	RevenueLabel string  `json:"revenue_label"` // "12,345 HTG"
	TotalCards   int     `json:"total_cards"`
	CardsLabel   string  `json:"cards_label"`
	ActivePlans  int     `json:"active_plans"`
	ClientsLabel string  `json:"clients_label"`

	// Ordenados por ingresos descendente.
	Plans []PlanSoldDTO `json:"plans"`

	Clients []ClientRowDTO `json:"clients"`
	Page    PageResponse   `json:"page"`
}

// PlanSoldDTO ventas acumuladas de un plan.
type PlanSoldDTO struct {
	Name  string  `json:"name"`
	Count int     `json:"count"`
	Sold  float64 `json:"sold"`
}

// ClientRowDTO fila del listado de clientes con sus planes comprados.
type ClientRowDTO struct {
	ID               string        `json:"id"`
	Name             string        `json:"name"`
	UserNumber       string        `json:"user_number"`
	RegistrationDate string        `json:"registration_date"`
	PlansSold        []PlanSoldDTO `json:"plans_sold"`
	TotalSold        float64       `json:"total_sold"`
}
