package repository

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/minegest-api/internal/domain/entity"
)

// ResupplyRepository puerto para approvisionnements.
type ResupplyRepository interface {
	Create(ctx context.Context, r *entity.Resupply) error
	ListByOwner(ctx context.Context, ownerID string) ([]*entity.Resupply, error)
	// Totals devuelve litros y monto acumulados.
	Totals(ctx context.Context, ownerID string) (quantity, amount decimal.Decimal, err error)
	Delete(ctx context.Context, ownerID, id string) error
}
