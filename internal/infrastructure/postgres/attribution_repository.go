package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/minegest-api/internal/domain"
	"github.com/jhoicas/minegest-api/internal/domain/entity"
	"github.com/jhoicas/minegest-api/internal/domain/repository"
)

var _ repository.AttributionRepository = (*AttributionRepo)(nil)

// AttributionRepo entregas de gasoil y sesiones chrono sobre la tabla attributions.
type AttributionRepo struct {
	q Querier
}

// NewAttributionRepository construye el adaptador. Pasar pool o tx (Querier).
func NewAttributionRepository(q Querier) *AttributionRepo {
	return &AttributionRepo{q: q}
}

// Create persiste una entrega o sesión chrono.
func (r *AttributionRepo) Create(ctx context.Context, a *entity.Attribution) error {
	query := `
		INSERT INTO attributions (
			id, owner_id, machine_id, kind, truck_plate, machine_name, machine_type,
			liters, date, operator, activity, chauffeur_name,
			start_time, end_time, duration_minutes, duration_text,
			gasoil_consumed, volume_sable, start_km_photo, end_km_photo, created_at)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14,$15,$16,$17,$18,$19,$20,$21)`
	_, err := r.q.Exec(ctx, query,
		a.ID, a.OwnerID, nullIfEmpty(a.MachineID), string(a.Kind), a.TruckPlate, a.MachineName, a.MachineType,
		a.Liters, nullTime(a.Date), a.Operator, a.Activity, a.ChauffeurName,
		a.StartTime, a.EndTime, a.DurationMinutes, a.DurationText,
		a.GasoilConsumed, a.VolumeSable, a.StartKmPhoto, a.EndKmPhoto, a.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert attribution: %w", err)
	}
	return nil
}

// ListByOwner devuelve entregas y sesiones del dueño, más recientes primero.
func (r *AttributionRepo) ListByOwner(ctx context.Context, ownerID string) ([]*entity.Attribution, error) {
	query := `
		SELECT id, owner_id, machine_id, kind, truck_plate, machine_name, machine_type,
			liters, date, operator, activity, chauffeur_name,
			start_time, end_time, duration_minutes, duration_text,
			gasoil_consumed, volume_sable, start_km_photo, end_km_photo, created_at
		FROM attributions WHERE owner_id = $1
		ORDER BY date DESC NULLS LAST, created_at DESC`
	rows, err := r.q.Query(ctx, query, ownerID)
	if err != nil {
		return nil, fmt.Errorf("list attributions: %w", err)
	}
	defer rows.Close()
	list := make([]*entity.Attribution, 0)
	for rows.Next() {
		a, err := scanAttribution(rows)
		if err != nil {
			return nil, fmt.Errorf("scan attribution: %w", err)
		}
		list = append(list, a)
	}
	return list, rows.Err()
}

func scanAttribution(row pgx.Row) (*entity.Attribution, error) {
	var (
		a         entity.Attribution
		machineID *string
		kind      string
		date      *time.Time
	)
	err := row.Scan(
		&a.ID, &a.OwnerID, &machineID, &kind, &a.TruckPlate, &a.MachineName, &a.MachineType,
		&a.Liters, &date, &a.Operator, &a.Activity, &a.ChauffeurName,
		&a.StartTime, &a.EndTime, &a.DurationMinutes, &a.DurationText,
		&a.GasoilConsumed, &a.VolumeSable, &a.StartKmPhoto, &a.EndKmPhoto, &a.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	a.MachineID = fromNullable(machineID)
	a.Kind = entity.AttributionKind(kind)
	if date != nil {
		a.Date = *date
	}
	return &a, nil
}

// TotalLiters suma de litros entregados (sin sesiones chrono).
func (r *AttributionRepo) TotalLiters(ctx context.Context, ownerID string) (decimal.Decimal, error) {
	var total decimal.Decimal
	err := r.q.QueryRow(ctx,
		`SELECT COALESCE(SUM(liters), 0) FROM attributions WHERE owner_id = $1 AND kind = 'attribution'`,
		ownerID,
	).Scan(&total)
	if err != nil {
		return decimal.Zero, fmt.Errorf("total liters: %w", err)
	}
	return total, nil
}

// Delete elimina un registro del dueño; ErrNotFound si no existe.
func (r *AttributionRepo) Delete(ctx context.Context, ownerID, id string) error {
	cmd, err := r.q.Exec(ctx, `DELETE FROM attributions WHERE owner_id = $1 AND id = $2`, ownerID, id)
	if isInvalidText(err) {
		return domain.ErrNotFound
	}
	if err != nil {
		return fmt.Errorf("delete attribution: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
