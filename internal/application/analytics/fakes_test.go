package analytics_test

import (
	"context"
	"testing"
	"time"

	"github.com/jhoicas/netline-api/internal/domain"
	"github.com/jhoicas/netline-api/internal/domain/entity"
)

type fakeSales struct {
	activations []entity.SaleRecord
	vendorSales []entity.SaleRecord
	err         error
}

func (f *fakeSales) ListActivations(context.Context) ([]entity.SaleRecord, error) {
	return f.activations, f.err
}

func (f *fakeSales) ListVendorSales(context.Context) ([]entity.SaleRecord, error) {
	return f.vendorSales, f.err
}

type fakeUsers struct{ users []entity.User }

func (f *fakeUsers) FindAdministrator(context.Context, string) (*entity.User, error) {
	return nil, domain.ErrUserNotFound
}

func (f *fakeUsers) FindByID(context.Context, string) (*entity.User, error) {
	return nil, domain.ErrUserNotFound
}

func (f *fakeUsers) List(context.Context) ([]entity.User, error) { return f.users, nil }

func (f *fakeUsers) ListByRoles(context.Context, ...entity.Role) ([]entity.User, error) {
	return f.users, nil
}

func (f *fakeUsers) SaveAdministrator(context.Context, entity.User) error { return nil }

func activation(t *testing.T, plan, client string, price float64, ts string) entity.SaleRecord {
	t.Helper()
	parsed, err := time.Parse(time.RFC3339, ts)
	if err != nil {
		t.Fatalf("fecha inválida %q: %v", ts, err)
	}
	return entity.SaleRecord{PlanName: plan, ClientID: client, Price: price, Timestamp: parsed, ValidTimestamp: true, ConnectionNumber: "509" + client}
}

func fixture(t *testing.T) (*fakeSales, *fakeUsers) {
	s := &fakeSales{activations: []entity.SaleRecord{
		activation(t, "MENSUAL", "c1", 1500, "2024-08-01T15:00:00Z"),
		activation(t, "SEMANAL", "c2", 500, "2024-08-02T15:00:00Z"),
		activation(t, "MENSUAL", "c2", 1500, "2024-08-03T15:00:00Z"),
		activation(t, "DIARIO", "c3", 100, "2024-08-03T16:00:00Z"),
		activation(t, "DIARIO", "c4", 100, "2024-07-10T16:00:00Z"),
	}}
	u := &fakeUsers{users: []entity.User{
		{ID: "c1", DisplayName: "Paul Joseph", UserNumber: "1001", Role: entity.RoleClient},
		{ID: "c2", DisplayName: "Rose Pierre", UserNumber: "1002", Role: entity.RoleClient},
		{ID: "c3", DisplayName: "Luc Paul", UserNumber: "1003", Role: entity.RoleClient},
		{ID: "v1", DisplayName: "Vendedor", Role: entity.RoleVendor},
		{ID: "x", Role: entity.RoleClient},
	}}
	return s, u
}
