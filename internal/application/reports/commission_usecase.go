// Package reports contiene el reporte de comisiones de vendedores y su exportación.
package reports

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/jhoicas/netline-api/internal/application/dto"
	"github.com/jhoicas/netline-api/internal/domain"
	"github.com/jhoicas/netline-api/internal/domain/entity"
	"github.com/jhoicas/netline-api/internal/domain/repository"
	"github.com/jhoicas/netline-api/internal/domain/sales"
)

var monthNames = [12]string{
	"January", "February", "March", "April", "May", "June",
	"July", "August", "September", "October", "November", "December",
}

// CommissionUseCase arma y exporta el reporte de comisiones por vendedor.
type CommissionUseCase struct {
	saleRepo  repository.SaleRepository
	userRepo  repository.UserRepository
	policy    sales.CommissionPolicy
	loc       *time.Location
	exporters map[string]Exporter
	now       func() time.Time
}

// NewCommissionUseCase construye el caso de uso con los exportadores disponibles.
func NewCommissionUseCase(
	saleRepo repository.SaleRepository,
	userRepo repository.UserRepository,
	policy sales.CommissionPolicy,
	loc *time.Location,
	exporters ...Exporter,
) *CommissionUseCase {
	byFormat := make(map[string]Exporter, len(exporters))
	for _, e := range exporters {
		byFormat[e.Format()] = e
	}
	return &CommissionUseCase{
		saleRepo:  saleRepo,
		userRepo:  userRepo,
		policy:    policy,
		loc:       loc,
		exporters: byFormat,
		now:       time.Now,
	}
}

// Report reporte de comisiones del período y rol pedidos.
func (uc *CommissionUseCase) Report(ctx context.Context, q dto.CommissionQuery) (*dto.CommissionReportResponse, error) {
	reports, err := uc.build(ctx, q)
	if err != nil {
		return nil, err
	}
	totals := sales.SumCommissions(reports)

	out := &dto.CommissionReportResponse{
		PeriodLabel: PeriodLabel(q.Month, q.Year),
		Month:       q.Month,
		Year:        q.Year,
		Role:        roleLabel(q.Role),
		Reports:     make([]dto.CommissionReportDTO, 0, len(reports)),
		Totals: dto.CommissionTotalsDTO{
			TotalSales:      totals.TotalSales,
			TotalCommission: totals.TotalCommission,
			TotalSystem:     totals.TotalSystem,
			TotalCount:      totals.TotalCount,
		},
	}
	for _, r := range reports {
		out.Reports = append(out.Reports, dto.CommissionReportDTO{
			VendorID:             r.VendorID,
			VendorName:           r.VendorName,
			Role:                 string(r.Role),
			TotalSales:           r.TotalSales,
			CommissionPercentage: r.CommissionPercentage,
			CommissionAmount:     r.CommissionAmount,
			SystemPercentage:     r.SystemPercentage,
			SystemAmount:         r.SystemAmount,
			SalesCount:           r.SalesCount,
		})
	}
	return out, nil
}

// Export genera el archivo del reporte en el formato pedido (csv por defecto).
func (uc *CommissionUseCase) Export(ctx context.Context, q dto.CommissionQuery) (*dto.ExportFile, error) {
	formatName := q.Format
	if formatName == "" {
		formatName = "csv"
	}
	exp, ok := uc.exporters[formatName]
	if !ok {
		return nil, fmt.Errorf("%w: formato %q no soportado", domain.ErrInvalidInput, formatName)
	}

	reports, err := uc.build(ctx, q)
	if err != nil {
		return nil, err
	}
	content, err := exp.Render(CommissionDocument{
		Title:       "Commission Report",
		PeriodLabel: PeriodLabel(q.Month, q.Year),
		Reports:     reports,
		Totals:      sales.SumCommissions(reports),
		GeneratedAt: uc.now().In(uc.loc),
	})
	if err != nil {
		return nil, fmt.Errorf("exportar %s: %w", formatName, err)
	}
	return &dto.ExportFile{
		Filename:    Filename(q.Month, q.Year, exp.Extension()),
		ContentType: exp.ContentType(),
		Content:     content,
	}, nil
}

func (uc *CommissionUseCase) build(ctx context.Context, q dto.CommissionQuery) ([]sales.VendorCommissionReport, error) {
	if q.Month != nil && (*q.Month < 0 || *q.Month > 11) {
		return nil, fmt.Errorf("%w: month debe estar entre 0 y 11", domain.ErrInvalidInput)
	}
	var roleFilter []entity.Role
	if q.Role != "" && q.Role != "all" {
		role, ok := entity.ParseRole(q.Role)
		if !ok {
			return nil, fmt.Errorf("%w: rol %q", domain.ErrInvalidInput, q.Role)
		}
		if _, err := uc.policy.Rate(role); err != nil {
			return nil, fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)
		}
		roleFilter = append(roleFilter, role)
	}

	eligible := make([]entity.Role, 0, len(uc.policy))
	for role := range uc.policy {
		eligible = append(eligible, role)
	}

	var records []entity.SaleRecord
	var users []entity.User
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		records, err = uc.saleRepo.ListVendorSales(gctx)
		if err != nil {
			return fmt.Errorf("ventas: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		users, err = uc.userRepo.ListByRoles(gctx, eligible...)
		if err != nil {
			return fmt.Errorf("vendedores: %w", err)
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("reporte de comisiones: %w", err)
	}

	filter := sales.MonthFilter{Month: q.Month, Year: q.Year}
	reports := sales.BuildCommissionReports(users, records, uc.policy, filter, uc.loc)
	return sales.FilterReportsByRole(reports, roleFilter...), nil
}

// PeriodLabel etiqueta del período: "August 2024", "All months 2024", "August (all years)" o "All time".
func PeriodLabel(month, year *int) string {
	switch {
	case month != nil && year != nil:
		return fmt.Sprintf("%s %d", monthNames[*month], *year)
	case year != nil:
		return fmt.Sprintf("All months %d", *year)
	case month != nil:
		return monthNames[*month] + " (all years)"
	default:
		return "All time"
	}
}

// Filename nombre de descarga: commission-report-<Mes|all>-<año|all>.<ext>.
func Filename(month, year *int, ext string) string {
	m, y := "all", "all"
	if month != nil && *month >= 0 && *month <= 11 {
		m = monthNames[*month]
	}
	if year != nil {
		y = strconv.Itoa(*year)
	}
	return fmt.Sprintf("commission-report-%s-%s.%s", m, y, ext)
}

func roleLabel(role string) string {
	if role == "" {
		return "all"
	}
	return role
}
