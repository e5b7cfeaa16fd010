package postgres

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/goccy/go-json"

	"github.com/jhoicas/netline-api/internal/domain"
)

// BuildFindQuery traduce un filtro estilo Mongo a SQL sobre records.
//
// Soporta igualdad (escalares u objetos como {"$oid": ...}) vía containment JSONB
// y {"$in": [...]} vía doc->>campo = ANY(...). Cualquier otro operador es ErrInvalidInput.
func BuildFindQuery(collection string, filter map[string]any) (string, []any, error) {
	var sb strings.Builder
	sb.WriteString("SELECT id, doc FROM records WHERE collection = $1")
	args := []any{collection}

	keys := make([]string, 0, len(filter))
	for k := range filter {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	contains := map[string]any{}
	for _, k := range keys {
		if strings.HasPrefix(k, "$") {
			return "", nil, fmt.Errorf("%w: operador %q no soportado", domain.ErrInvalidInput, k)
		}
		v := filter[k]
		op, operand, isOp := operator(v)
		if !isOp {
			contains[k] = v
			continue
		}
		if op != "$in" {
			return "", nil, fmt.Errorf("%w: operador %q no soportado", domain.ErrInvalidInput, op)
		}
		values, ok := operand.([]any)
		if !ok {
			return "", nil, fmt.Errorf("%w: $in de %q debe ser una lista", domain.ErrInvalidInput, k)
		}
		texts := make([]string, 0, len(values))
		for _, item := range values {
			texts = append(texts, jsonText(item))
		}
		args = append(args, k, texts)
		fmt.Fprintf(&sb, " AND doc->>$%d = ANY($%d)", len(args)-1, len(args))
	}

	if len(contains) > 0 {
		raw, err := json.Marshal(contains)
		if err != nil {
			return "", nil, fmt.Errorf("%w: filtro: %v", domain.ErrInvalidInput, err)
		}
		args = append(args, string(raw))
		fmt.Fprintf(&sb, " AND doc @> $%d::jsonb", len(args))
	}

	sb.WriteString(" ORDER BY seq")
	return sb.String(), args, nil
}

// operator detecta valores {"$op": operando} con una única clave que empieza por '$'
// y que no es un envoltorio de tipo de JSON extendido.
func operator(v any) (string, any, bool) {
	m, ok := v.(map[string]any)
	if !ok || len(m) != 1 {
		return "", nil, false
	}
	for k, operand := range m {
		switch k {
		case "$oid", "$date", "$numberLong", "$numberDouble", "$numberInt", "$numberDecimal":
			return "", nil, false
		}
		if strings.HasPrefix(k, "$") {
			return k, operand, true
		}
	}
	return "", nil, false
}

// jsonText representación que devuelve doc->>campo para un valor JSON.
func jsonText(v any) string {
	switch t := v.(type) {
	case string:
		return t
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(t)
	case nil:
		return ""
	default:
		raw, _ := json.Marshal(t)
		return string(raw)
	}
}
