package repository

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/minegest-api/internal/domain/entity"
)

// AttributionRepository puerto para entregas de gasoil y sesiones chrono.
type AttributionRepository interface {
	Create(ctx context.Context, a *entity.Attribution) error
	// ListByOwner devuelve ambos kinds, más recientes primero.
	ListByOwner(ctx context.Context, ownerID string) ([]*entity.Attribution, error)
	// TotalLiters suma los litros de las entregas (kind attribution).
	TotalLiters(ctx context.Context, ownerID string) (decimal.Decimal, error)
	Delete(ctx context.Context, ownerID, id string) error
}
