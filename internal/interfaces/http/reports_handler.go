package http

import (
	"context"
	"fmt"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/netline-api/internal/application/dto"
)

// reportsService lo implementa *reports.CommissionUseCase.
type reportsService interface {
	Report(ctx context.Context, q dto.CommissionQuery) (*dto.CommissionReportResponse, error)
	Export(ctx context.Context, q dto.CommissionQuery) (*dto.ExportFile, error)
}

// ReportsHandler reporte de comisiones y su descarga.
type ReportsHandler struct {
	uc reportsService
}

// NewReportsHandler construye el handler.
func NewReportsHandler(uc reportsService) *ReportsHandler {
	return &ReportsHandler{uc: uc}
}

// Commissions godoc
// @Summary      Comisiones por vendedor
// @Tags         reports
// @Security     Bearer
// @Produce      json
// @Param        month  query  int     false  "Mes 0..11 (omitido = todos)"
// @Param        year   query  int     false  "Año (omitido = todos)"
// @Param        role   query  string  false  "VENDOR | SYSTEM_ADMINISTRATOR | all"
// @Success      200  {object}  dto.CommissionReportResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/reports/commissions [get]
func (h *ReportsHandler) Commissions(c *fiber.Ctx) error {
	var q dto.CommissionQuery
	if err := parseQuery(c, &q); err != nil {
		return writeError(c, err)
	}
	out, err := h.uc.Report(c.UserContext(), q)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Export godoc
// @Summary      Descargar el reporte de comisiones
// @Tags         reports
// @Security     Bearer
// @Produce      text/csv
// @Produce      application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Produce      application/pdf
// @Param        format  query  string  false  "csv (default) | xlsx | pdf"
// @Param        month   query  int     false  "Mes 0..11"
// @Param        year    query  int     false  "Año"
// @Param        role    query  string  false  "VENDOR | SYSTEM_ADMINISTRATOR | all"
// @Success      200  {file}    binary
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/reports/commissions/export [get]
func (h *ReportsHandler) Export(c *fiber.Ctx) error {
	var q dto.CommissionQuery
	if err := parseQuery(c, &q); err != nil {
		return writeError(c, err)
	}
	file, err := h.uc.Export(c.UserContext(), q)
	if err != nil {
		return writeError(c, err)
	}
	c.Set(fiber.HeaderContentType, file.ContentType)
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`attachment; filename="%s"`, file.Filename))
	return c.Send(file.Content)
}
