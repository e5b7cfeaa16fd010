package sales

import (
	"time"

	"github.com/jhoicas/netline-api/internal/domain/entity"
)

// KeyFunc extrae la clave de agrupación de una venta.
type KeyFunc func(entity.SaleRecord) string

// Group ventas que comparten clave, con sus totales.
type Group struct {
	Key          string
	Count        int
	TotalRevenue float64
	Members      []entity.SaleRecord
}

// Grouping resultado de GroupBy. Conserva el orden en que apareció cada clave.
type Grouping struct {
	keys   []string
	groups map[string]*Group
}

// GroupBy particiona records por key. Cada venta queda exactamente en un grupo.
func GroupBy(records []entity.SaleRecord, key KeyFunc) *Grouping {
	g := &Grouping{groups: make(map[string]*Group)}
	for _, s := range records {
		k := key(s)
		grp, ok := g.groups[k]
		if !ok {
			grp = &Group{Key: k}
			g.groups[k] = grp
			g.keys = append(g.keys, k)
		}
		grp.Count++
		grp.TotalRevenue += s.Price
		grp.Members = append(grp.Members, s)
	}
	return g
}

// Len cantidad de grupos.
func (g *Grouping) Len() int { return len(g.keys) }

// Keys claves en orden de primera aparición.
func (g *Grouping) Keys() []string {
	out := make([]string, len(g.keys))
	copy(out, g.keys)
	return out
}

// Get devuelve el grupo de key.
func (g *Grouping) Get(key string) (*Group, bool) {
	grp, ok := g.groups[key]
	return grp, ok
}

// Groups devuelve los grupos en el orden de Keys.
func (g *Grouping) Groups() []Group {
	out := make([]Group, 0, len(g.keys))
	for _, k := range g.keys {
		out = append(out, *g.groups[k])
	}
	return out
}

// TotalRevenue suma de ingresos de todos los grupos.
func (g *Grouping) TotalRevenue() float64 {
	var total float64
	for _, k := range g.keys {
		total += g.groups[k].TotalRevenue
	}
	return total
}

// ── Funciones de clave ───────────────────────────────────────────────────────

// ByPlan agrupa por nombre de plan.
func ByPlan(s entity.SaleRecord) string { return s.PlanName }

// ByVendor agrupa por vendedor ("" = sin vendedor).
func ByVendor(s entity.SaleRecord) string { return s.VendorID }

// ByClient agrupa por cliente.
func ByClient(s entity.SaleRecord) string { return s.ClientID }

// ByLocalDay agrupa por día calendario (YYYY-MM-DD) en loc.
func ByLocalDay(loc *time.Location) KeyFunc {
	return localKey(loc, "2006-01-02")
}

// ByLocalMonth agrupa por mes (YYYY-MM) en loc.
func ByLocalMonth(loc *time.Location) KeyFunc {
	return localKey(loc, "2006-01")
}

func localKey(loc *time.Location, layout string) KeyFunc {
	return func(s entity.SaleRecord) string {
		if !s.ValidTimestamp {
			return NotAvailable
		}
		return s.Timestamp.In(loc).Format(layout)
	}
}

// ── Resumen por plan ─────────────────────────────────────────────────────────

// PlanSummary ventas de un plan en el período.
type PlanSummary struct {
	PlanName     string
	TotalCount   int
	TotalRevenue float64
	Sales        []entity.SaleRecord
}

// PlanSummaries agrupa por plan en orden de primera aparición.
func PlanSummaries(records []entity.SaleRecord) []PlanSummary {
	groups := GroupBy(records, ByPlan).Groups()
	out := make([]PlanSummary, 0, len(groups))
	for _, g := range groups {
		out = append(out, PlanSummary{
			PlanName:     g.Key,
			TotalCount:   g.Count,
			TotalRevenue: g.TotalRevenue,
			Sales:        g.Members,
		})
	}
	return out
}
