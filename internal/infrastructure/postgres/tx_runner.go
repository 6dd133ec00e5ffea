package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jhoicas/minegest-api/internal/application/ports"
	"github.com/jhoicas/minegest-api/internal/domain/repository"
)

var _ ports.OwnerTxRunner = (*TxRunner)(nil)

// TxRunner ejecuta callbacks dentro de una transacción PostgreSQL.
type TxRunner struct {
	pool *pgxpool.Pool
}

// NewTxRunner construye el runner con el pool.
func NewTxRunner(pool *pgxpool.Pool) *TxRunner {
	return &TxRunner{pool: pool}
}

// RunForOwner inicia una transacción, toma el advisory lock del dueño (liberado al
// terminar la tx), ejecuta fn con repos atados a la tx y hace Commit o Rollback.
func (r *TxRunner) RunForOwner(ctx context.Context, ownerID string, fn func(
	machines repository.MachineRepository,
	attributions repository.AttributionRepository,
	resupplies repository.ResupplyRepository,
	maintenance repository.MaintenanceRepository,
) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if _, err := tx.Exec(ctx, `SELECT pg_advisory_xact_lock(hashtext($1))`, ownerID); err != nil {
		return fmt.Errorf("owner lock: %w", err)
	}

	if err := fn(
		NewMachineRepository(tx),
		NewAttributionRepository(tx),
		NewResupplyRepository(tx),
		NewMaintenanceRepository(tx),
	); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}
