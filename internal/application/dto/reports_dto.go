package dto

// CommissionQuery filtros del reporte de comisiones. Month 0..11; nil = todos.
type CommissionQuery struct {
	Month  *int   `query:"month" validate:"omitempty,min=0,max=11"`
	Year   *int   `query:"year" validate:"omitempty,min=1970,max=9999"`
	Role   string `query:"role" validate:"omitempty,oneof=VENDOR SYSTEM_ADMINISTRATOR all"`
	Format string `query:"format" validate:"omitempty,oneof=csv xlsx pdf"`
}

// CommissionReportDTO fila del reporte (precisión completa).
type CommissionReportDTO struct {
	VendorID             string  `json:"vendor_id"`
	VendorName           string  `json:"vendor_name"`
	Role                 string  `json:"role"`
	TotalSales           float64 `json:"total_sales"`
	CommissionPercentage float64 `json:"commission_percentage"`
	CommissionAmount     float64 `json:"commission_amount"`
	SystemPercentage     float64 `json:"system_percentage"`
	SystemAmount         float64 `json:"system_amount"`
	SalesCount           int     `json:"sales_count"`
}

// CommissionTotalsDTO totales del reporte.
type CommissionTotalsDTO struct {
	TotalSales      float64 `json:"total_sales"`
	TotalCommission float64 `json:"total_commission"`
	TotalSystem     float64 `json:"total_system"`
	TotalCount      int     `json:"total_count"`
}

// CommissionReportResponse salida de GET /api/reports/commissions.
type CommissionReportResponse struct {
	PeriodLabel string                `json:"period_label"` // "August 2024", "all 2024", ...
	Month       *int                  `json:"month"`
	Year        *int                  `json:"year"`
	Role        string                `json:"role"`
	Reports     []CommissionReportDTO `json:"reports"`
	Totals      CommissionTotalsDTO   `json:"totals"`
}

// ExportFile archivo generado para descarga.
type ExportFile struct {
	Filename    string
	ContentType string
	Content     []byte
}
