package store

import (
	"context"
	"fmt"

	"github.com/jhoicas/netline-api/internal/domain/entity"
	"github.com/jhoicas/netline-api/internal/domain/repository"
	"github.com/jhoicas/netline-api/internal/domain/sales"
)

var _ repository.SnapshotRepository = (*SnapshotStore)(nil)

// SnapshotStore lee la variable de clientes conectados que el router deja en el store.
type SnapshotStore struct {
	src        repository.RecordSource
	collection string
	name       string
}

// NewSnapshotStore construye el repositorio (p.ej. colección "variables", nombre "connected_users").
func NewSnapshotStore(src repository.RecordSource, collection, name string) *SnapshotStore {
	return &SnapshotStore{src: src, collection: collection, name: name}
}

// ConnectedClients devuelve el array_data de la variable; lista vacía si no existe.
// Los elementos que no son objetos se ignoran.
func (s *SnapshotStore) ConnectedClients(ctx context.Context) ([]entity.ConnectedClient, error) {
	docs, err := s.src.Find(ctx, s.collection, map[string]any{"name": s.name})
	if err != nil {
		return nil, fmt.Errorf("leer %s: %w", s.name, err)
	}
	clients := []entity.ConnectedClient{}
	if len(docs) == 0 {
		return clients, nil
	}
	items, _ := docs[0]["array_data"].([]any)
	for _, item := range items {
		m, ok := item.(map[string]any)
		if !ok {
			continue
		}
		clients = append(clients, sales.NormalizeConnectedClient(entity.Document(m)))
	}
	return clients, nil
}
