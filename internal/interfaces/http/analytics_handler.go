package http

import (
	"context"
	"net/url"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/netline-api/internal/application/dto"
)

// analyticsService lo implementa *analytics.AnalyticsUseCase.
type analyticsService interface {
	PlanAnalytics(ctx context.Context, q dto.DateRangeQuery) (*dto.PlanAnalyticsResponse, error)
	PlanSales(ctx context.Context, plan string, q dto.PlanSalesQuery) (*dto.PlanSalesResponse, error)
	MonthlyChart(ctx context.Context, q dto.ChartQuery) (*dto.MonthlyChartResponse, error)
	DailyChart(ctx context.Context, q dto.ChartQuery) (*dto.DailyChartResponse, error)
}

// AnalyticsHandler maneja los endpoints de analítica por plan y los gráficos.
type AnalyticsHandler struct {
	uc analyticsService
}

// NewAnalyticsHandler construye el handler.
func NewAnalyticsHandler(uc analyticsService) *AnalyticsHandler {
	return &AnalyticsHandler{uc: uc}
}

// Plans godoc
// @Summary      Activaciones e ingresos por plan
// @Description  Resumen por plan (orden de primera aparición), ingreso total y top 3 clientes
// @Description  por gasto en el período. Sin fechas = todo el histórico.
// @Tags         analytics
// @Security     Bearer
// @Produce      json
// @Param        start_date  query  string  false  "Inicio (YYYY-MM-DD, hora local)"
// @Param        end_date    query  string  false  "Fin inclusive (YYYY-MM-DD, hora local)"
// @Success      200  {object}  dto.PlanAnalyticsResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      502  {object}  dto.ErrorResponse
// @Router       /api/analytics/plans [get]
func (h *AnalyticsHandler) Plans(c *fiber.Ctx) error {
	var q dto.DateRangeQuery
	if err := parseQuery(c, &q); err != nil {
		return writeError(c, err)
	}
	out, err := h.uc.PlanAnalytics(c.UserContext(), q)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// PlanSales godoc
// @Summary      Detalle de activaciones de un plan
// @Tags         analytics
// @Security     Bearer
// @Produce      json
// @Param        plan        path   string  true   "Nombre del plan"
// @Param        start_date  query  string  false  "Inicio (YYYY-MM-DD)"
// @Param        end_date    query  string  false  "Fin inclusive (YYYY-MM-DD)"
// @Param        q           query  string  false  "Filtro por nombre de cliente"
// @Param        page        query  int     false  "Página (10 filas)"
// @Success      200  {object}  dto.PlanSalesResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/analytics/plans/{plan}/sales [get]
func (h *AnalyticsHandler) PlanSales(c *fiber.Ctx) error {
	plan, err := url.PathUnescape(c.Params("plan"))
	if err != nil || plan == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_PLAN", Message: "plan inválido"})
	}
	var q dto.PlanSalesQuery
	if err := parseQuery(c, &q); err != nil {
		return writeError(c, err)
	}
	out, err := h.uc.PlanSales(c.UserContext(), plan, q)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Monthly godoc
// @Summary      Ingresos por mes de un año
// @Tags         analytics
// @Security     Bearer
// @Produce      json
// @Param        year  query  int  false  "Año (default: actual)"
// @Success      200  {object}  dto.MonthlyChartResponse
// @Router       /api/analytics/monthly [get]
func (h *AnalyticsHandler) Monthly(c *fiber.Ctx) error {
	var q dto.ChartQuery
	if err := parseQuery(c, &q); err != nil {
		return writeError(c, err)
	}
	out, err := h.uc.MonthlyChart(c.UserContext(), q)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Daily godoc
// @Summary      Ingresos por día de un mes
// @Tags         analytics
// @Security     Bearer
// @Produce      json
// @Param        year   query  int  false  "Año (default: actual)"
// @Param        month  query  int  false  "Mes 0..11 (default: actual)"
// @Success      200  {object}  dto.DailyChartResponse
// @Router       /api/analytics/daily [get]
func (h *AnalyticsHandler) Daily(c *fiber.Ctx) error {
	var q dto.ChartQuery
	if err := parseQuery(c, &q); err != nil {
		return writeError(c, err)
	}
	out, err := h.uc.DailyChart(c.UserContext(), q)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}
