package store

import (
	"context"
	"fmt"

	"github.com/jhoicas/netline-api/internal/domain/repository"
	"github.com/jhoicas/netline-api/internal/infrastructure/mongodb"
	"github.com/jhoicas/netline-api/internal/infrastructure/postgres"
	"github.com/jhoicas/netline-api/pkg/config"
)

// Open conecta el RecordSource del driver configurado (STORE_DRIVER).
// closeFn libera las conexiones y debe llamarse al terminar.
func Open(ctx context.Context, cfg *config.Config) (src repository.RecordSource, closeFn func(), err error) {
	switch cfg.Store.Driver {
	case config.StoreMongo:
		client, err := mongodb.Connect(ctx, cfg.Mongo, cfg.App.Name)
		if err != nil {
			return nil, nil, err
		}
		closeFn = func() { _ = client.Disconnect(context.Background()) }
		return mongodb.NewRecordSource(client.Database(cfg.Mongo.Database)), closeFn, nil

	case config.StorePostgres:
		pool, err := postgres.NewPool(ctx, cfg.DB)
		if err != nil {
			return nil, nil, err
		}
		if err := postgres.EnsureSchema(ctx, pool); err != nil {
			pool.Close()
			return nil, nil, err
		}
		return postgres.NewRecordSource(pool), pool.Close, nil

	default:
		return nil, nil, fmt.Errorf("STORE_DRIVER %q no soportado", cfg.Store.Driver)
	}
}
