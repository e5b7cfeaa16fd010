package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jhoicas/netline-api/pkg/config"
)

// recordsSchema tabla única de documentos: una fila por documento, agrupados por colección.
// seq conserva el orden de inserción (equivalente al orden natural de Mongo).
const recordsSchema = `
CREATE TABLE IF NOT EXISTS records (
    seq        BIGSERIAL   PRIMARY KEY,
    id         TEXT        NOT NULL,
    collection TEXT        NOT NULL,
    doc        JSONB       NOT NULL,
    updated_at TIMESTAMPTZ NOT NULL DEFAULT now(),
    UNIQUE (collection, id)
);
CREATE INDEX IF NOT EXISTS records_doc_gin ON records USING GIN (doc jsonb_path_ops);`

// NewPool crea un pool de conexiones PostgreSQL y verifica el acceso con un ping.
func NewPool(ctx context.Context, cfg config.DBConfig) (*pgxpool.Pool, error) {
	poolConfig, err := pgxpool.ParseConfig(cfg.ConnectionString())
	if err != nil {
		return nil, fmt.Errorf("parse DSN: %w", err)
	}

	poolConfig.MaxConns = 10
	poolConfig.MinConns = 1
	poolConfig.MaxConnLifetime = time.Hour
	poolConfig.MaxConnIdleTime = 30 * time.Minute
	poolConfig.HealthCheckPeriod = time.Minute

	pool, err := pgxpool.NewWithConfig(ctx, poolConfig)
	if err != nil {
		return nil, fmt.Errorf("crear pool: %w", err)
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("ping DB: %w", err)
	}
	return pool, nil
}

// EnsureSchema crea la tabla records si no existe.
func EnsureSchema(ctx context.Context, pool *pgxpool.Pool) error {
	if _, err := pool.Exec(ctx, recordsSchema); err != nil {
		return fmt.Errorf("crear esquema records: %w", err)
	}
	return nil
}
