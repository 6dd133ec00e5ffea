package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/minegest-api/internal/domain"
	"github.com/jhoicas/minegest-api/internal/domain/entity"
	"github.com/jhoicas/minegest-api/internal/domain/repository"
)

var _ repository.MachineRepository = (*MachineRepo)(nil)

// MachineRepo implementación de MachineRepository sobre PostgreSQL (usable con pool o tx).
type MachineRepo struct {
	q Querier
}

// NewMachineRepository construye el adaptador de máquinas. Pasar pool o tx (Querier).
func NewMachineRepository(q Querier) *MachineRepo {
	return &MachineRepo{q: q}
}

const machineColumns = `id, owner_id, name, truck_plate, truck_type, balance, created_at`

func scanMachine(row pgx.Row) (*entity.Machine, error) {
	var m entity.Machine
	if err := row.Scan(&m.ID, &m.OwnerID, &m.Name, &m.TruckPlate, &m.TruckType, &m.Balance, &m.CreatedAt); err != nil {
		return nil, err
	}
	return &m, nil
}

// Create persiste una nueva máquina. Placa repetida para el mismo dueño devuelve ErrDuplicate.
func (r *MachineRepo) Create(ctx context.Context, m *entity.Machine) error {
	query := `
		INSERT INTO machines (id, owner_id, name, truck_plate, truck_type, balance, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.q.Exec(ctx, query, m.ID, m.OwnerID, m.Name, m.TruckPlate, m.TruckType, m.Balance, m.CreatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert machine: %w", err)
	}
	return nil
}

// GetByID obtiene una máquina del dueño; nil si no existe.
func (r *MachineRepo) GetByID(ctx context.Context, ownerID, id string) (*entity.Machine, error) {
	query := `SELECT ` + machineColumns + ` FROM machines WHERE owner_id = $1 AND id = $2`
	m, err := scanMachine(r.q.QueryRow(ctx, query, ownerID, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) || isInvalidText(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get machine: %w", err)
	}
	return m, nil
}

// GetByPlate obtiene una máquina por placa exacta; nil si no existe.
func (r *MachineRepo) GetByPlate(ctx context.Context, ownerID, plate string) (*entity.Machine, error) {
	query := `SELECT ` + machineColumns + ` FROM machines WHERE owner_id = $1 AND truck_plate = $2`
	m, err := scanMachine(r.q.QueryRow(ctx, query, ownerID, plate))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get machine by plate: %w", err)
	}
	return m, nil
}

// ListByOwner lista las máquinas del dueño en orden de alta.
func (r *MachineRepo) ListByOwner(ctx context.Context, ownerID, plate string) ([]*entity.Machine, error) {
	query := `SELECT ` + machineColumns + ` FROM machines
		WHERE owner_id = $1 AND ($2 = '' OR truck_plate = $2)
		ORDER BY created_at, truck_plate`
	rows, err := r.q.Query(ctx, query, ownerID, plate)
	if err != nil {
		return nil, fmt.Errorf("list machines: %w", err)
	}
	defer rows.Close()
	list := make([]*entity.Machine, 0)
	for rows.Next() {
		m, err := scanMachine(rows)
		if err != nil {
			return nil, fmt.Errorf("scan machine: %w", err)
		}
		list = append(list, m)
	}
	return list, rows.Err()
}

// AddCredit inserta el crédito y suma el monto al saldo. Llamar dentro de una tx.
func (r *MachineRepo) AddCredit(ctx context.Context, c *entity.Credit) error {
	cmd, err := r.q.Exec(ctx,
		`UPDATE machines SET balance = balance + $3 WHERE owner_id = $1 AND id = $2`,
		c.OwnerID, c.MachineID, c.Amount,
	)
	if isInvalidText(err) {
		return domain.ErrNotFound
	}
	if err != nil {
		return fmt.Errorf("update machine balance: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	_, err = r.q.Exec(ctx,
		`INSERT INTO credits (id, machine_id, owner_id, amount, date) VALUES ($1, $2, $3, $4, $5)`,
		c.ID, c.MachineID, c.OwnerID, c.Amount, c.Date,
	)
	if err != nil {
		return fmt.Errorf("insert credit: %w", err)
	}
	return nil
}

// ListCredits créditos de una máquina, más recientes primero.
func (r *MachineRepo) ListCredits(ctx context.Context, ownerID, machineID string) ([]*entity.Credit, error) {
	query := `
		SELECT id, machine_id, owner_id, amount, date
		FROM credits WHERE owner_id = $1 AND machine_id = $2
		ORDER BY date DESC`
	rows, err := r.q.Query(ctx, query, ownerID, machineID)
	if err != nil {
		return nil, fmt.Errorf("list credits: %w", err)
	}
	defer rows.Close()
	list := make([]*entity.Credit, 0)
	for rows.Next() {
		var c entity.Credit
		if err := rows.Scan(&c.ID, &c.MachineID, &c.OwnerID, &c.Amount, &c.Date); err != nil {
			return nil, fmt.Errorf("scan credit: %w", err)
		}
		list = append(list, &c)
	}
	return list, rows.Err()
}

// TotalCredits suma de todos los créditos del dueño.
func (r *MachineRepo) TotalCredits(ctx context.Context, ownerID string) (decimal.Decimal, error) {
	var total decimal.Decimal
	err := r.q.QueryRow(ctx, `SELECT COALESCE(SUM(amount), 0) FROM credits WHERE owner_id = $1`, ownerID).Scan(&total)
	if err != nil {
		return decimal.Zero, fmt.Errorf("total credits: %w", err)
	}
	return total, nil
}
