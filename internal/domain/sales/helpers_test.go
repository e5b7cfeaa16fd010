package sales_test

import (
	"testing"
	"time"

	"github.com/jhoicas/netline-api/internal/domain/entity"
)

// sale construye una venta válida con fecha RFC3339.
func sale(t *testing.T, id, plan string, price float64, ts string) entity.SaleRecord {
	t.Helper()
	parsed, err := time.Parse(time.RFC3339, ts)
	if err != nil {
		t.Fatalf("fecha de prueba inválida %q: %v", ts, err)
	}
	return entity.SaleRecord{
		ID:             id,
		PlanName:       plan,
		Price:          price,
		Timestamp:      parsed,
		ValidTimestamp: true,
		Status:         entity.SaleCompleted,
	}
}

func ptr[T any](v T) *T { return &v }

func sumPrices(records []entity.SaleRecord) float64 {
	var total float64
	for _, r := range records {
		total += r.Price
	}
	return total
}
