package postgres

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/minegest-api/internal/domain"
	"github.com/jhoicas/minegest-api/internal/domain/entity"
	"github.com/jhoicas/minegest-api/internal/domain/repository"
)

var _ repository.ResupplyRepository = (*ResupplyRepo)(nil)

// ResupplyRepo approvisionnements sobre PostgreSQL.
type ResupplyRepo struct {
	q Querier
}

// NewResupplyRepository construye el adaptador. Pasar pool o tx (Querier).
func NewResupplyRepository(q Querier) *ResupplyRepo {
	return &ResupplyRepo{q: q}
}

// Create persiste un approvisionnement.
func (r *ResupplyRepo) Create(ctx context.Context, s *entity.Resupply) error {
	query := `
		INSERT INTO resupplies (id, owner_id, date, supplier, quantity, unit_price, total_amount, receiver, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err := r.q.Exec(ctx, query,
		s.ID, s.OwnerID, s.Date, s.Supplier, s.Quantity, s.UnitPrice, s.TotalAmount, s.Receiver, s.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert resupply: %w", err)
	}
	return nil
}

// ListByOwner approvisionnements del dueño, más recientes primero.
func (r *ResupplyRepo) ListByOwner(ctx context.Context, ownerID string) ([]*entity.Resupply, error) {
	query := `
		SELECT id, owner_id, date, supplier, quantity, unit_price, total_amount, receiver, created_at
		FROM resupplies WHERE owner_id = $1 ORDER BY date DESC, created_at DESC`
	rows, err := r.q.Query(ctx, query, ownerID)
	if err != nil {
		return nil, fmt.Errorf("list resupplies: %w", err)
	}
	defer rows.Close()
	list := make([]*entity.Resupply, 0)
	for rows.Next() {
		var s entity.Resupply
		if err := rows.Scan(&s.ID, &s.OwnerID, &s.Date, &s.Supplier, &s.Quantity, &s.UnitPrice, &s.TotalAmount, &s.Receiver, &s.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan resupply: %w", err)
		}
		list = append(list, &s)
	}
	return list, rows.Err()
}

// Totals litros y monto acumulados del dueño.
func (r *ResupplyRepo) Totals(ctx context.Context, ownerID string) (decimal.Decimal, decimal.Decimal, error) {
	var quantity, amount decimal.Decimal
	err := r.q.QueryRow(ctx,
		`SELECT COALESCE(SUM(quantity), 0), COALESCE(SUM(total_amount), 0) FROM resupplies WHERE owner_id = $1`,
		ownerID,
	).Scan(&quantity, &amount)
	if err != nil {
		return decimal.Zero, decimal.Zero, fmt.Errorf("resupply totals: %w", err)
	}
	return quantity, amount, nil
}

// Delete elimina un approvisionnement; ErrNotFound si no existe.
func (r *ResupplyRepo) Delete(ctx context.Context, ownerID, id string) error {
	cmd, err := r.q.Exec(ctx, `DELETE FROM resupplies WHERE owner_id = $1 AND id = $2`, ownerID, id)
	if isInvalidText(err) {
		return domain.ErrNotFound
	}
	if err != nil {
		return fmt.Errorf("delete resupply: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
