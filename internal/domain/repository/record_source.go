package repository

import (
	"context"

	"github.com/jhoicas/netline-api/internal/domain/entity"
)

// RecordSource puerto de lectura genérica sobre el store de documentos (colección → documentos).
// Las implementaciones devuelven JSON extendido relajado: ObjectID como {"$oid"} y fechas
// como {"$date"}, que es lo que consume el normalizador de ventas.
type RecordSource interface {
	// Find devuelve los documentos de collection que cumplen filter (nil = todos).
	Find(ctx context.Context, collection string, filter map[string]any) ([]entity.Document, error)

	// UpsertOne actualiza el primer documento que cumple match o lo crea si no existe.
	UpsertOne(ctx context.Context, collection string, match map[string]any, doc entity.Document) error
}
