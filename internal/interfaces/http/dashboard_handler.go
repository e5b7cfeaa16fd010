package http

import (
	"context"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/netline-api/internal/application/dto"
)

// dashboardService lo implementa *analytics.DashboardUseCase.
type dashboardService interface {
	Overview(ctx context.Context, q dto.OverviewQuery) (*dto.OverviewResponse, error)
}

// DashboardHandler maneja los endpoints del módulo de Dashboard.
type DashboardHandler struct {
	uc dashboardService
}

// NewDashboardHandler construye el handler.
func NewDashboardHandler(uc dashboardService) *DashboardHandler {
	return &DashboardHandler{uc: uc}
}

// Overview devuelve los KPIs globales, los planes vendidos y el listado de clientes.
// GET /api/dashboard/overview?q=&page=
//
// q filtra clientes por nombre o número de usuario; 20 clientes por página.
func (h *DashboardHandler) Overview(c *fiber.Ctx) error {
	var q dto.OverviewQuery
	if err := parseQuery(c, &q); err != nil {
		return writeError(c, err)
	}
	out, err := h.uc.Overview(c.UserContext(), q)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}
