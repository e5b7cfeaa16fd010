package sales_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/netline-api/internal/domain"
	"github.com/jhoicas/netline-api/internal/domain/entity"
	"github.com/jhoicas/netline-api/internal/domain/sales"
)

func TestSplit_Vendedor(t *testing.T) {
	got, err := sales.DefaultCommissionPolicy().Split(1000, entity.RoleVendor)
	require.NoError(t, err)
	assert.Equal(t, sales.Split{VendorPct: 10, VendorAmount: 100, SystemPct: 90, SystemAmount: 900}, got)
}

func TestSplit_Administrador(t *testing.T) {
	got, err := sales.DefaultCommissionPolicy().Split(1000, entity.RoleSystemAdministrator)
	require.NoError(t, err)
	assert.Equal(t, sales.Split{VendorPct: 0, VendorAmount: 0, SystemPct: 100, SystemAmount: 1000}, got)
}

func TestSplit_RolDesconocido(t *testing.T) {
	_, err := sales.DefaultCommissionPolicy().Split(1000, entity.RoleClient)
	assert.True(t, errors.Is(err, domain.ErrUnknownRole), "un rol fuera de la política no debe dar 0 %% en silencio")
}

func TestSplit_Conservacion(t *testing.T) {
	policy := sales.CommissionPolicy{entity.RoleVendor: 12.5, entity.RoleSystemAdministrator: 3}
	for _, total := range []float64{0, 0.01, 1, 33.33, 1234.567, 1e9} {
		for role := range policy {
			s, err := policy.Split(total, role)
			require.NoError(t, err)
			assert.InDelta(t, total, s.VendorAmount+s.SystemAmount, 1e-6, "total %v rol %s", total, role)
		}
	}
}

func TestParseCommissionPolicy(t *testing.T) {
	p, err := sales.ParseCommissionPolicy("VENDOR=15, SYSTEM_ADMINISTRATOR=0")
	require.NoError(t, err)
	assert.Equal(t, sales.CommissionPolicy{entity.RoleVendor: 15, entity.RoleSystemAdministrator: 0}, p)

	for _, bad := range []string{"", "VENDOR", "JEFE=5", "VENDOR=abc", "VENDOR=120"} {
		_, err := sales.ParseCommissionPolicy(bad)
		assert.True(t, errors.Is(err, domain.ErrInvalidInput), "entrada %q", bad)
	}
}

func TestBuildCommissionReports(t *testing.T) {
	users := []entity.User{
		{ID: "v1", DisplayName: "Jean", Role: entity.RoleVendor},
		{ID: "v2", DisplayName: "Marie", Role: entity.RoleVendor},
		{ID: "a1", DisplayName: "Admin", Role: entity.RoleSystemAdministrator},
		{ID: "c1", DisplayName: "Cliente", Role: entity.RoleClient},
	}
	records := []entity.SaleRecord{
		sale(t, "1", "A", 100, "2024-08-01T12:00:00Z"),
		sale(t, "2", "A", 300, "2024-08-02T12:00:00Z"),
		sale(t, "3", "B", 500, "2024-07-02T12:00:00Z"),
		sale(t, "4", "B", 50, "2024-08-03T12:00:00Z"),
	}
	records[0].VendorID = "v1"
	records[1].VendorID = "a1"
	records[2].VendorID = "v1"
	records[3].VendorID = "c1"

	reports := sales.BuildCommissionReports(users, records, sales.DefaultCommissionPolicy(),
		sales.MonthFilter{Month: ptr(7), Year: ptr(2024)}, sales.TargetLocation)

	require.Len(t, reports, 3, "el cliente no comisiona y el vendedor sin ventas sí aparece")
	assert.Equal(t, "a1", reports[0].VendorID)
	assert.Equal(t, 300.0, reports[0].TotalSales)
	assert.Equal(t, 300.0, reports[0].SystemAmount)
	assert.Equal(t, "v1", reports[1].VendorID)
	assert.Equal(t, 100.0, reports[1].TotalSales, "la venta de julio queda fuera")
	assert.Equal(t, 10.0, reports[1].CommissionAmount)
	assert.Equal(t, 1, reports[1].SalesCount)
	assert.Equal(t, "v2", reports[2].VendorID)
	assert.Zero(t, reports[2].TotalSales)

	totals := sales.SumCommissions(reports)
	assert.Equal(t, 400.0, totals.TotalSales)
	assert.Equal(t, 10.0, totals.TotalCommission)
	assert.Equal(t, 390.0, totals.TotalSystem)
	assert.Equal(t, 2, totals.TotalCount)

	vendors := sales.FilterReportsByRole(reports, entity.RoleVendor)
	assert.Len(t, vendors, 2)
	assert.Len(t, sales.FilterReportsByRole(reports), 3)
}

func TestBuildCommissionReports_EmpatesConservanOrden(t *testing.T) {
	users := []entity.User{
		{ID: "x", Role: entity.RoleVendor},
		{ID: "y", Role: entity.RoleVendor},
		{ID: "z", Role: entity.RoleVendor},
	}
	reports := sales.BuildCommissionReports(users, nil, sales.DefaultCommissionPolicy(), sales.MonthFilter{}, sales.TargetLocation)

	require.Len(t, reports, 3)
	assert.Equal(t, []string{"x", "y", "z"}, []string{reports[0].VendorID, reports[1].VendorID, reports[2].VendorID})
}
