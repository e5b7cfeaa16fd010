package sales

import (
	"fmt"
	"slices"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/jhoicas/netline-api/internal/domain"
	"github.com/jhoicas/netline-api/internal/domain/entity"
)

// CommissionPolicy porcentaje de comisión del vendedor por rol. Un rol ausente no es
// elegible para comisión.
type CommissionPolicy map[entity.Role]float64

// DefaultCommissionPolicy vendedores 10 %, administradores 0 %.
func DefaultCommissionPolicy() CommissionPolicy {
	return CommissionPolicy{
		entity.RoleVendor:              10,
		entity.RoleSystemAdministrator: 0,
	}
}

// ParseCommissionPolicy interpreta "VENDOR=10,SYSTEM_ADMINISTRATOR=0".
func ParseCommissionPolicy(s string) (CommissionPolicy, error) {
	p := CommissionPolicy{}
	for _, pair := range strings.Split(s, ",") {
		pair = strings.TrimSpace(pair)
		if pair == "" {
			continue
		}
		name, value, ok := strings.Cut(pair, "=")
		if !ok {
			return nil, fmt.Errorf("%w: tasa de comisión %q sin '='", domain.ErrInvalidInput, pair)
		}
		role, known := entity.ParseRole(strings.ToUpper(strings.TrimSpace(name)))
		if !known {
			return nil, fmt.Errorf("%w: rol %q", domain.ErrInvalidInput, name)
		}
		pct, err := strconv.ParseFloat(strings.TrimSpace(value), 64)
		if err != nil {
			return nil, fmt.Errorf("%w: porcentaje %q", domain.ErrInvalidInput, value)
		}
		p[role] = pct
	}
	if len(p) == 0 {
		return nil, fmt.Errorf("%w: política de comisión vacía", domain.ErrInvalidInput)
	}
	return p, p.Validate()
}

// Validate exige porcentajes en [0, 100].
func (p CommissionPolicy) Validate() error {
	for role, pct := range p {
		if pct < 0 || pct > 100 {
			return fmt.Errorf("%w: porcentaje %v fuera de rango para %s", domain.ErrInvalidInput, pct, role)
		}
	}
	return nil
}

// Rate porcentaje del vendedor para role.
func (p CommissionPolicy) Rate(role entity.Role) (float64, error) {
	pct, ok := p[role]
	if !ok {
		return 0, fmt.Errorf("%w: %q", domain.ErrUnknownRole, role)
	}
	return pct, nil
}

// Split reparto de un total de ventas entre vendedor y sistema.
type Split struct {
	VendorPct    float64
	VendorAmount float64
	SystemPct    float64
	SystemAmount float64
}

// Split calcula el reparto de total según el rol. VendorAmount + SystemAmount == total.
func (p CommissionPolicy) Split(total float64, role entity.Role) (Split, error) {
	pct, err := p.Rate(role)
	if err != nil {
		return Split{}, err
	}
	vendor := total * pct / 100
	return Split{
		VendorPct:    pct,
		VendorAmount: vendor,
		SystemPct:    100 - pct,
		SystemAmount: total - vendor,
	}, nil
}

// VendorCommissionReport ventas y comisión de un miembro del staff en el período.
type VendorCommissionReport struct {
	VendorID             string
	VendorName           string
	Role                 entity.Role
	TotalSales           float64
	CommissionPercentage float64
	CommissionAmount     float64
	SystemPercentage     float64
	SystemAmount         float64
	SalesCount           int
}

// BuildCommissionReports genera un reporte por usuario con rol en la política, incluidos
// los que no vendieron nada, ordenados por TotalSales descendente (empates en el orden de users).
func BuildCommissionReports(
	users []entity.User,
	records []entity.SaleRecord,
	policy CommissionPolicy,
	filter MonthFilter,
	loc *time.Location,
) []VendorCommissionReport {
	byVendor := GroupBy(FilterByMonth(records, filter, loc), ByVendor)

	reports := make([]VendorCommissionReport, 0, len(users))
	for _, u := range users {
		var total float64
		var count int
		if g, ok := byVendor.Get(u.ID); ok {
			total, count = g.TotalRevenue, g.Count
		}
		split, err := policy.Split(total, u.Role)
		if err != nil {
			continue // rol fuera de la política: no comisiona
		}
		reports = append(reports, VendorCommissionReport{
			VendorID:             u.ID,
			VendorName:           u.DisplayName,
			Role:                 u.Role,
			TotalSales:           total,
			CommissionPercentage: split.VendorPct,
			CommissionAmount:     split.VendorAmount,
			SystemPercentage:     split.SystemPct,
			SystemAmount:         split.SystemAmount,
			SalesCount:           count,
		})
	}
	sort.SliceStable(reports, func(i, j int) bool {
		return reports[i].TotalSales > reports[j].TotalSales
	})
	return reports
}

// CommissionTotals totales de un conjunto de reportes.
type CommissionTotals struct {
	TotalSales      float64
	TotalCommission float64
	TotalSystem     float64
	TotalCount      int
}

// SumCommissions suma los reportes.
func SumCommissions(reports []VendorCommissionReport) CommissionTotals {
	var t CommissionTotals
	for _, r := range reports {
		t.TotalSales += r.TotalSales
		t.TotalCommission += r.CommissionAmount
		t.TotalSystem += r.SystemAmount
		t.TotalCount += r.SalesCount
	}
	return t
}

// FilterReportsByRole conserva los reportes de los roles dados; sin roles devuelve todos.
func FilterReportsByRole(reports []VendorCommissionReport, roles ...entity.Role) []VendorCommissionReport {
	if len(roles) == 0 {
		return slices.Clone(reports)
	}
	out := make([]VendorCommissionReport, 0, len(reports))
	for _, r := range reports {
		if slices.Contains(roles, r.Role) {
			out = append(out, r)
		}
	}
	return out
}
