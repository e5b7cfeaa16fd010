package store

import (
	"context"
	"fmt"

	"github.com/jhoicas/netline-api/internal/domain/entity"
	"github.com/jhoicas/netline-api/internal/domain/repository"
	"github.com/jhoicas/netline-api/internal/domain/sales"
)

var _ repository.SaleRepository = (*SaleStore)(nil)

// SaleStore ventas normalizadas desde "histories" (activaciones) y "solds" (ventas de vendedores).
type SaleStore struct {
	src repository.RecordSource
}

// NewSaleStore construye el repositorio.
func NewSaleStore(src repository.RecordSource) *SaleStore {
	return &SaleStore{src: src}
}

func (s *SaleStore) ListActivations(ctx context.Context) ([]entity.SaleRecord, error) {
	return s.load(ctx, CollectionHistories, sales.NormalizeSales)
}

func (s *SaleStore) ListVendorSales(ctx context.Context) ([]entity.SaleRecord, error) {
	return s.load(ctx, CollectionSolds, sales.NormalizeVendorSales)
}

func (s *SaleStore) load(
	ctx context.Context,
	collection string,
	normalize func([]entity.Document) []entity.SaleRecord,
) ([]entity.SaleRecord, error) {
	docs, err := s.src.Find(ctx, collection, nil)
	if err != nil {
		return nil, fmt.Errorf("leer %s: %w", collection, err)
	}
	return normalize(docs), nil
}
