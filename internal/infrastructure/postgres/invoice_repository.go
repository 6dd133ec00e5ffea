package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/minegest-api/internal/domain/entity"
	"github.com/jhoicas/minegest-api/internal/domain/repository"
)

var _ repository.InvoiceRepository = (*InvoiceRepo)(nil)

// InvoiceRepo factures sobre PostgreSQL.
type InvoiceRepo struct {
	q Querier
}

// NewInvoiceRepository construye el adaptador. Pasar pool o tx (Querier).
func NewInvoiceRepository(q Querier) *InvoiceRepo {
	return &InvoiceRepo{q: q}
}

const invoiceColumns = `id, owner_id, machine_id, name, truck_plate, truck_type, unit_price, trips,
	total_amount, balance, status, date, created_at`

func scanInvoice(row pgx.Row) (*entity.Invoice, error) {
	var (
		inv       entity.Invoice
		machineID *string
	)
	err := row.Scan(&inv.ID, &inv.OwnerID, &machineID, &inv.Name, &inv.TruckPlate, &inv.TruckType,
		&inv.UnitPrice, &inv.Trips, &inv.TotalAmount, &inv.Balance, &inv.Status, &inv.Date, &inv.CreatedAt)
	if err != nil {
		return nil, err
	}
	inv.MachineID = fromNullable(machineID)
	return &inv, nil
}

// Create persiste la facture.
func (r *InvoiceRepo) Create(ctx context.Context, inv *entity.Invoice) error {
	query := `INSERT INTO invoices (` + invoiceColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)`
	_, err := r.q.Exec(ctx, query,
		inv.ID, inv.OwnerID, nullIfEmpty(inv.MachineID), inv.Name, inv.TruckPlate, inv.TruckType,
		inv.UnitPrice, inv.Trips, inv.TotalAmount, inv.Balance, inv.Status, inv.Date, inv.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert invoice: %w", err)
	}
	return nil
}

// GetByID obtiene una facture del dueño; nil si no existe.
func (r *InvoiceRepo) GetByID(ctx context.Context, ownerID, id string) (*entity.Invoice, error) {
	query := `SELECT ` + invoiceColumns + ` FROM invoices WHERE owner_id = $1 AND id = $2`
	inv, err := scanInvoice(r.q.QueryRow(ctx, query, ownerID, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) || isInvalidText(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get invoice: %w", err)
	}
	return inv, nil
}

// ListByOwner factures del dueño, más recientes primero.
func (r *InvoiceRepo) ListByOwner(ctx context.Context, ownerID string) ([]*entity.Invoice, error) {
	query := `SELECT ` + invoiceColumns + ` FROM invoices WHERE owner_id = $1 ORDER BY date DESC`
	rows, err := r.q.Query(ctx, query, ownerID)
	if err != nil {
		return nil, fmt.Errorf("list invoices: %w", err)
	}
	defer rows.Close()
	list := make([]*entity.Invoice, 0)
	for rows.Next() {
		inv, err := scanInvoice(rows)
		if err != nil {
			return nil, fmt.Errorf("scan invoice: %w", err)
		}
		list = append(list, inv)
	}
	return list, rows.Err()
}
