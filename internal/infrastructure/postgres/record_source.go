package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/goccy/go-json"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jhoicas/netline-api/internal/domain"
	"github.com/jhoicas/netline-api/internal/domain/entity"
	"github.com/jhoicas/netline-api/internal/domain/repository"
)

var _ repository.RecordSource = (*RecordSource)(nil)

// errSchemaMissing se devuelve cuando la tabla records no existe.
var errSchemaMissing = errors.New("tabla records inexistente: ejecutar EnsureSchema")

// RecordSource implementación del puerto RecordSource sobre PostgreSQL (documentos JSONB).
type RecordSource struct {
	pool *pgxpool.Pool
	tx   *TxRunner
}

// NewRecordSource construye el adaptador de documentos.
func NewRecordSource(pool *pgxpool.Pool) *RecordSource {
	return &RecordSource{pool: pool, tx: NewTxRunner(pool)}
}

// Find devuelve los documentos de collection que cumplen filter, en orden de inserción.
func (s *RecordSource) Find(ctx context.Context, collection string, filter map[string]any) ([]entity.Document, error) {
	query, args, err := BuildFindQuery(collection, filter)
	if err != nil {
		return nil, err
	}
	rows, err := s.pool.Query(ctx, query, args...)
	if err != nil {
		if isUndefinedTable(err) {
			return nil, errSchemaMissing
		}
		return nil, fmt.Errorf("%w: find %s: %w", domain.ErrUpstream, collection, err)
	}
	defer rows.Close()

	docs := make([]entity.Document, 0)
	for rows.Next() {
		var id string
		var raw []byte
		if err := rows.Scan(&id, &raw); err != nil {
			return nil, fmt.Errorf("scan %s: %w", collection, err)
		}
		var doc entity.Document
		if err := json.Unmarshal(raw, &doc); err != nil {
			return nil, fmt.Errorf("decodificar %s: %w", collection, err)
		}
		if doc == nil {
			doc = entity.Document{}
		}
		if _, ok := doc["_id"]; !ok {
			doc["_id"] = id
		}
		docs = append(docs, doc)
	}
	return docs, rows.Err()
}

// UpsertOne fusiona doc sobre el primer documento que cumple match o inserta uno nuevo.
func (s *RecordSource) UpsertOne(ctx context.Context, collection string, match map[string]any, doc entity.Document) error {
	query, args, err := BuildFindQuery(collection, match)
	if err != nil {
		return err
	}
	patch, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("serializar documento: %w", err)
	}

	return s.tx.Run(ctx, func(tx pgx.Tx) error {
		var id string
		err := tx.QueryRow(ctx, query+" LIMIT 1 FOR UPDATE", args...).Scan(&id, new([]byte))
		switch {
		case err == nil:
			_, err = tx.Exec(ctx,
				`UPDATE records SET doc = doc || $3::jsonb, updated_at = now() WHERE collection = $1 AND id = $2`,
				collection, id, string(patch))
			if err != nil {
				return fmt.Errorf("update %s: %w", collection, err)
			}
			return nil
		case errors.Is(err, pgx.ErrNoRows):
			id = doc.ID()
			if id == "" {
				id = uuid.NewString()
				withID := entity.Document{"_id": id}
				for k, v := range doc {
					withID[k] = v
				}
				if patch, err = json.Marshal(withID); err != nil {
					return fmt.Errorf("serializar documento: %w", err)
				}
			}
			_, err = tx.Exec(ctx,
				`INSERT INTO records (id, collection, doc) VALUES ($1, $2, $3::jsonb)`,
				id, collection, string(patch))
			if err != nil {
				if isUniqueViolation(err) {
					return fmt.Errorf("insert %s: id %q duplicado: %w", collection, id, err)
				}
				return fmt.Errorf("insert %s: %w", collection, err)
			}
			return nil
		case isUndefinedTable(err):
			return errSchemaMissing
		default:
			return fmt.Errorf("buscar %s: %w", collection, err)
		}
	})
}
