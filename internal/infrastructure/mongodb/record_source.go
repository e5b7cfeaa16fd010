package mongodb

import (
	"context"
	"fmt"

	"github.com/goccy/go-json"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/jhoicas/netline-api/internal/domain"
	"github.com/jhoicas/netline-api/internal/domain/entity"
	"github.com/jhoicas/netline-api/internal/domain/repository"
)

var _ repository.RecordSource = (*RecordSource)(nil)

// RecordSource implementación del puerto RecordSource sobre una base MongoDB.
type RecordSource struct {
	db *mongo.Database
}

// NewRecordSource construye el adaptador sobre la base indicada.
func NewRecordSource(db *mongo.Database) *RecordSource {
	return &RecordSource{db: db}
}

// Find ejecuta find(filter) y devuelve cada documento como JSON extendido relajado.
func (s *RecordSource) Find(ctx context.Context, collection string, filter map[string]any) ([]entity.Document, error) {
	query, err := ToBSON(filter)
	if err != nil {
		return nil, err
	}
	cur, err := s.db.Collection(collection).Find(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("%w: find %s: %w", domain.ErrUpstream, collection, err)
	}
	defer cur.Close(ctx)

	docs := make([]entity.Document, 0)
	for cur.Next(ctx) {
		doc, err := FromBSON(cur.Current)
		if err != nil {
			return nil, fmt.Errorf("decodificar %s: %w", collection, err)
		}
		docs = append(docs, doc)
	}
	if err := cur.Err(); err != nil {
		return nil, fmt.Errorf("%w: cursor %s: %w", domain.ErrUpstream, collection, err)
	}
	return docs, nil
}

// UpsertOne aplica $set de doc sobre el primer documento que cumple match (o lo inserta).
func (s *RecordSource) UpsertOne(ctx context.Context, collection string, match map[string]any, doc entity.Document) error {
	query, err := ToBSON(match)
	if err != nil {
		return err
	}
	set, err := ToBSON(map[string]any(doc))
	if err != nil {
		return err
	}
	_, err = s.db.Collection(collection).UpdateOne(ctx, query, bson.D{{Key: "$set", Value: set}}, options.Update().SetUpsert(true))
	if err != nil {
		return fmt.Errorf("upsert %s: %w", collection, err)
	}
	return nil
}

// ToBSON convierte un filtro JSON (con posibles {"$oid"} / {"$date"}) a bson.D.
func ToBSON(filter map[string]any) (bson.D, error) {
	if len(filter) == 0 {
		return bson.D{}, nil
	}
	raw, err := json.Marshal(filter)
	if err != nil {
		return nil, fmt.Errorf("%w: filtro: %v", domain.ErrInvalidInput, err)
	}
	var out bson.D
	if err := bson.UnmarshalExtJSON(raw, false, &out); err != nil {
		return nil, fmt.Errorf("%w: filtro: %v", domain.ErrInvalidInput, err)
	}
	return out, nil
}

// FromBSON convierte un documento crudo a JSON extendido relajado decodificado en un mapa.
func FromBSON(raw bson.Raw) (entity.Document, error) {
	ext, err := bson.MarshalExtJSON(raw, false, false)
	if err != nil {
		return nil, err
	}
	var doc entity.Document
	if err := json.Unmarshal(ext, &doc); err != nil {
		return nil, err
	}
	return doc, nil
}
