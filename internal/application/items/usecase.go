// Package items expone lecturas crudas de colecciones del store para el panel.
package items

import (
	"context"
	"fmt"
	"strings"

	"github.com/goccy/go-json"

	"github.com/jhoicas/netline-api/internal/application/dto"
	"github.com/jhoicas/netline-api/internal/domain"
	"github.com/jhoicas/netline-api/internal/domain/entity"
	"github.com/jhoicas/netline-api/internal/domain/repository"
)

// scrubbedFields campos que nunca salen por la API, en cualquier nivel del documento.
var scrubbedFields = map[string]struct{}{
	"password": {},
}

// UseCase lectura de documentos de una colección permitida con un filtro opcional.
type UseCase struct {
	source  repository.RecordSource
	allowed map[string]struct{}
}

// NewUseCase construye el caso de uso; allowed es la lista de colecciones legibles.
func NewUseCase(source repository.RecordSource, allowed []string) *UseCase {
	set := make(map[string]struct{}, len(allowed))
	for _, t := range allowed {
		set[t] = struct{}{}
	}
	return &UseCase{source: source, allowed: set}
}

// Find devuelve los documentos de q.Table que cumplen q.Params, sin campos sensibles.
func (uc *UseCase) Find(ctx context.Context, q dto.ItemsQuery) ([]entity.Document, error) {
	table := strings.TrimSpace(q.Table)
	if table == "" {
		return nil, domain.ErrMissingTable
	}
	if _, ok := uc.allowed[table]; !ok {
		return nil, fmt.Errorf("%w: %s", domain.ErrTableNotAllowed, table)
	}

	filter := map[string]any{}
	if p := strings.TrimSpace(q.Params); p != "" {
		if err := json.Unmarshal([]byte(p), &filter); err != nil {
			return nil, fmt.Errorf("%w: %v", domain.ErrInvalidParams, err)
		}
		if filter == nil {
			filter = map[string]any{}
		}
	}

	docs, err := uc.source.Find(ctx, table, filter)
	if err != nil {
		return nil, fmt.Errorf("items %s: %w", table, err)
	}
	for _, d := range docs {
		scrub(d)
	}
	if docs == nil {
		docs = []entity.Document{}
	}
	return docs, nil
}

func scrub(v any) {
	switch t := v.(type) {
	case entity.Document:
		scrubMap(t)
	case map[string]any:
		scrubMap(t)
	case []any:
		for _, e := range t {
			scrub(e)
		}
	}
}

func scrubMap(m map[string]any) {
	for k, v := range m {
		if _, ok := scrubbedFields[k]; ok {
			delete(m, k)
			continue
		}
		scrub(v)
	}
}
