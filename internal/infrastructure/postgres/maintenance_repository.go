package postgres

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/minegest-api/internal/domain/entity"
	"github.com/jhoicas/minegest-api/internal/domain/repository"
)

var _ repository.MaintenanceRepository = (*MaintenanceRepo)(nil)

// MaintenanceRepo compras de mantenimiento sobre PostgreSQL.
type MaintenanceRepo struct {
	q Querier
}

// NewMaintenanceRepository construye el adaptador. Pasar pool o tx (Querier).
func NewMaintenanceRepository(q Querier) *MaintenanceRepo {
	return &MaintenanceRepo{q: q}
}

// Create persiste una compra.
func (r *MaintenanceRepo) Create(ctx context.Context, m *entity.Maintenance) error {
	query := `
		INSERT INTO maintenance (id, owner_id, item_name, unit_price, quantity, total_price, date, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.q.Exec(ctx, query, m.ID, m.OwnerID, m.ItemName, m.UnitPrice, m.Quantity, m.TotalPrice, m.Date, m.CreatedAt)
	if err != nil {
		return fmt.Errorf("insert maintenance: %w", err)
	}
	return nil
}

// ListByOwner compras del dueño, más recientes primero.
func (r *MaintenanceRepo) ListByOwner(ctx context.Context, ownerID string) ([]*entity.Maintenance, error) {
	query := `
		SELECT id, owner_id, item_name, unit_price, quantity, total_price, date, created_at
		FROM maintenance WHERE owner_id = $1 ORDER BY date DESC`
	rows, err := r.q.Query(ctx, query, ownerID)
	if err != nil {
		return nil, fmt.Errorf("list maintenance: %w", err)
	}
	defer rows.Close()
	list := make([]*entity.Maintenance, 0)
	for rows.Next() {
		var m entity.Maintenance
		if err := rows.Scan(&m.ID, &m.OwnerID, &m.ItemName, &m.UnitPrice, &m.Quantity, &m.TotalPrice, &m.Date, &m.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan maintenance: %w", err)
		}
		list = append(list, &m)
	}
	return list, rows.Err()
}

// TotalAmount gasto total en mantenimiento.
func (r *MaintenanceRepo) TotalAmount(ctx context.Context, ownerID string) (decimal.Decimal, error) {
	var total decimal.Decimal
	err := r.q.QueryRow(ctx, `SELECT COALESCE(SUM(total_price), 0) FROM maintenance WHERE owner_id = $1`, ownerID).Scan(&total)
	if err != nil {
		return decimal.Zero, fmt.Errorf("total maintenance: %w", err)
	}
	return total, nil
}
