package sales

import (
	"cmp"
	"slices"

	"github.com/jhoicas/netline-api/internal/domain/entity"
)

// TopN devuelve los n elementos de mayor valor en orden descendente. Los empates
// conservan el orden de entrada. Con n <= 0 o n > len(items) devuelve todos ordenados.
func TopN[T any](items []T, value func(T) float64, n int) []T {
	out := slices.Clone(items)
	slices.SortStableFunc(out, func(a, b T) int {
		return cmp.Compare(value(b), value(a))
	})
	if n > 0 && n < len(out) {
		out = out[:n]
	}
	return out
}

// ClientRanking gasto acumulado de un cliente.
type ClientRanking struct {
	ClientID      string
	Name          string
	TotalSpent    float64
	PurchaseCount int
}

// TopClients ranking de los n clientes que más gastaron. El nombre sale de users
// (NotAvailable si el cliente no existe).
func TopClients(records []entity.SaleRecord, users []entity.User, n int) []ClientRanking {
	names := make(map[string]string, len(users))
	for _, u := range users {
		names[u.ID] = u.DisplayName
	}

	groups := GroupBy(records, ByClient).Groups()
	ranking := make([]ClientRanking, 0, len(groups))
	for _, g := range groups {
		name, ok := names[g.Key]
		if !ok || name == "" {
			name = NotAvailable
		}
		ranking = append(ranking, ClientRanking{
			ClientID:      g.Key,
			Name:          name,
			TotalSpent:    g.TotalRevenue,
			PurchaseCount: g.Count,
		})
	}
	return TopN(ranking, func(c ClientRanking) float64 { return c.TotalSpent }, n)
}
