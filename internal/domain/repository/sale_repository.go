package repository

import (
	"context"

	"github.com/jhoicas/netline-api/internal/domain/entity"
)

// SaleRepository lecturas de ventas ya normalizadas. Las implementaciones son read-only.
type SaleRepository interface {
	// ListActivations activaciones de planes (colección "histories"): base de la analítica por plan.
	ListActivations(ctx context.Context) ([]entity.SaleRecord, error)
	// ListVendorSales ventas atribuidas a vendedores (colección "solds"): base de las comisiones.
	ListVendorSales(ctx context.Context) ([]entity.SaleRecord, error)
}

// SnapshotRepository lectura de la última foto de clientes conectados publicada por el router.
type SnapshotRepository interface {
	ConnectedClients(ctx context.Context) ([]entity.ConnectedClient, error)
}
