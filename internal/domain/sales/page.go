package sales

import (
	"strings"

	"github.com/jhoicas/netline-api/internal/domain/entity"
)

// Page porción de una lista paginada (Page es 1-based).
type Page[T any] struct {
	Items      []T
	Page       int
	PerPage    int
	TotalItems int
	TotalPages int
}

// Paginate corta items en páginas de perPage. La página pedida se acota a [1, TotalPages].
func Paginate[T any](items []T, page, perPage int) Page[T] {
	if perPage <= 0 {
		perPage = 10
	}
	total := len(items)
	pages := (total + perPage - 1) / perPage
	if page > pages {
		page = pages
	}
	if page < 1 {
		page = 1
	}
	start := (page - 1) * perPage
	end := min(start+perPage, total)
	out := make([]T, 0, max(end-start, 0))
	if start < total {
		out = append(out, items[start:end]...)
	}
	return Page[T]{
		Items:      out,
		Page:       page,
		PerPage:    perPage,
		TotalItems: total,
		TotalPages: pages,
	}
}

// Search filtra items cuyo algún campo contiene query (sin distinguir mayúsculas).
// Una query vacía devuelve todos.
func Search[T any](items []T, query string, fields func(T) []string) []T {
	q := strings.ToLower(strings.TrimSpace(query))
	out := make([]T, 0, len(items))
	for _, it := range items {
		if q == "" || matchesAny(fields(it), q) {
			out = append(out, it)
		}
	}
	return out
}

// SearchSales filtra ventas por nombre de cliente.
func SearchSales(records []entity.SaleRecord, query string, nameOf func(entity.SaleRecord) string) []entity.SaleRecord {
	return Search(records, query, func(s entity.SaleRecord) []string {
		return []string{nameOf(s)}
	})
}

func matchesAny(fields []string, q string) bool {
	for _, f := range fields {
		if strings.Contains(strings.ToLower(f), q) {
			return true
		}
	}
	return false
}
