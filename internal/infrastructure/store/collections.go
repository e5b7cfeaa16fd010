// Package store implementa los repositorios de dominio sobre cualquier RecordSource
// (MongoDB o PostgreSQL/JSONB): sabe qué colección leer y cómo normalizar cada documento.
package store

import (
	"encoding/hex"
)

// Colecciones del store NETLINE.
const (
	CollectionUsers     = "users"
	CollectionHistories = "histories"
	CollectionSolds     = "solds"
)

// idFilter arma el filtro por _id: ObjectID si id es hex de 24 caracteres, texto plano si no.
func idFilter(id string) map[string]any {
	if len(id) == 24 {
		if _, err := hex.DecodeString(id); err == nil {
			return map[string]any{"_id": map[string]any{"$oid": id}}
		}
	}
	return map[string]any{"_id": id}
}
