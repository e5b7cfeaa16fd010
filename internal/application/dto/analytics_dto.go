package dto

// DateRangeQuery rango de fechas YYYY-MM-DD (hora local del negocio).
type DateRangeQuery struct {
	StartDate string `query:"start_date" validate:"omitempty,datetime=2006-01-02"`
	EndDate   string `query:"end_date" validate:"omitempty,datetime=2006-01-02"`
}

// PlanSalesQuery filtros del detalle de un plan.
type PlanSalesQuery struct {
	DateRangeQuery
	Query string `query:"q" validate:"max=100"`
	Page  int    `query:"page" validate:"min=0"`
}

// PlanSummaryDTO activaciones e ingresos de un plan en el período.
type PlanSummaryDTO struct {
	PlanName     string  `json:"plan_name"`
	TotalCount   int     `json:"total_count"`
	TotalRevenue float64 `json:"total_revenue"`
	RevenueLabel string  `json:"revenue_label"`
}

// ClientRankingDTO cliente del top por gasto.
type ClientRankingDTO struct {
	ClientID      string  `json:"client_id"`
	Name          string  `json:"name"`
	TotalSpent    float64 `json:"total_spent"`
	PurchaseCount int     `json:"purchase_count"`
}

// PlanAnalyticsResponse salida de GET /api/analytics/plans.
type PlanAnalyticsResponse struct {
	StartDate        string             `json:"start_date"`
	EndDate          string             `json:"end_date"`
	Plans            []PlanSummaryDTO   `json:"plans"`
	TotalRevenue     float64            `json:"total_revenue"`
	TotalActivations int                `json:"total_activations"`
	TopClients       []ClientRankingDTO `json:"top_clients"`
}

// PlanSaleRowDTO fila del detalle de ventas de un plan.
type PlanSaleRowDTO struct {
	PlanName         string  `json:"plan_name"`
	PlanPrice        float64 `json:"plan_price"`
	ClientName       string  `json:"client_name"`
	ConnectionNumber string  `json:"connection_number"`
	ActivationDate   string  `json:"activation_date"`
	ActivationTime   string  `json:"activation_time"`
}

// PlanSalesResponse salida de GET /api/analytics/plans/:plan/sales.
type PlanSalesResponse struct {
	PlanName     string           `json:"plan_name"`
	TotalRevenue float64          `json:"total_revenue"`
	Rows         []PlanSaleRowDTO `json:"rows"`
	Page         PageResponse     `json:"page"`
}

// ChartQuery año y mes (0..11) de los gráficos.
type ChartQuery struct {
	Year  *int `query:"year" validate:"omitempty,min=1970,max=9999"`
	Month *int `query:"month" validate:"omitempty,min=0,max=11"`
}

// BucketDTO punto del gráfico.
type BucketDTO struct {
	Label   string  `json:"label"`
	Revenue float64 `json:"revenue"`
	Count   int     `json:"count"`
}

// MonthlyChartResponse 12 meses del año más los años con datos.
type MonthlyChartResponse struct {
	Year           int         `json:"year"`
	Months         []BucketDTO `json:"months"`
	TotalRevenue   float64     `json:"total_revenue"`
	AvailableYears []int       `json:"available_years"`
}

// DailyChartResponse días del mes más los meses con datos de ese año.
type DailyChartResponse struct {
	Year            int         `json:"year"`
	Month           int         `json:"month"`
	Days            []BucketDTO `json:"days"`
	TotalRevenue    float64     `json:"total_revenue"`
	AvailableYears  []int       `json:"available_years"`
	AvailableMonths []int       `json:"available_months"`
}
