package ports

import (
	"context"

	"github.com/jhoicas/minegest-api/internal/domain/repository"
)

// OwnerTxRunner ejecuta fn dentro de una transacción serializada por dueño:
// dos operaciones del mismo gestionnaire nunca validan stock o saldo a la vez.
type OwnerTxRunner interface {
	RunForOwner(ctx context.Context, ownerID string, fn func(
		machines repository.MachineRepository,
		attributions repository.AttributionRepository,
		resupplies repository.ResupplyRepository,
		maintenance repository.MaintenanceRepository,
	) error) error
}
