package repository

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/minegest-api/internal/domain/entity"
)

// MaintenanceRepository puerto para compras de mantenimiento.
type MaintenanceRepository interface {
	Create(ctx context.Context, m *entity.Maintenance) error
	ListByOwner(ctx context.Context, ownerID string) ([]*entity.Maintenance, error)
	TotalAmount(ctx context.Context, ownerID string) (decimal.Decimal, error)
}
