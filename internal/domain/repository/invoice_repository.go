package repository

import (
	"context"

	"github.com/jhoicas/minegest-api/internal/domain/entity"
)

// InvoiceRepository puerto de persistencia para factures.
type InvoiceRepository interface {
	Create(ctx context.Context, invoice *entity.Invoice) error
	GetByID(ctx context.Context, ownerID, id string) (*entity.Invoice, error)
	ListByOwner(ctx context.Context, ownerID string) ([]*entity.Invoice, error)
}
