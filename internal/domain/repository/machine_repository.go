package repository

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/minegest-api/internal/domain/entity"
)

// MachineRepository puerto de persistencia para máquinas y sus créditos.
// Todas las consultas van acotadas al gestionnaire dueño (ownerID).
type MachineRepository interface {
	Create(ctx context.Context, m *entity.Machine) error
	GetByID(ctx context.Context, ownerID, id string) (*entity.Machine, error)
	GetByPlate(ctx context.Context, ownerID, plate string) (*entity.Machine, error)
	// ListByOwner lista las máquinas; plate no vacío filtra por placa exacta.
	ListByOwner(ctx context.Context, ownerID, plate string) ([]*entity.Machine, error)
	// AddCredit registra el crédito e incrementa el saldo de la máquina.
	AddCredit(ctx context.Context, credit *entity.Credit) error
	ListCredits(ctx context.Context, ownerID, machineID string) ([]*entity.Credit, error)
	TotalCredits(ctx context.Context, ownerID string) (decimal.Decimal, error)
}
