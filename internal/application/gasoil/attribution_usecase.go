// Package gasoil casos de uso de entregas de gasoil y sesiones chrono.
package gasoil

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/minegest-api/internal/application/dto"
	"github.com/jhoicas/minegest-api/internal/application/ports"
	"github.com/jhoicas/minegest-api/internal/domain"
	"github.com/jhoicas/minegest-api/internal/domain/entity"
	"github.com/jhoicas/minegest-api/internal/domain/gasoil"
	"github.com/jhoicas/minegest-api/internal/domain/repository"
	"github.com/jhoicas/minegest-api/pkg/dataurl"
	"github.com/jhoicas/minegest-api/pkg/logger"
)

const clockLayout = "15:04"

// AttributionUseCase registra entregas de litros (con tope y control de stock)
// y cierra sesiones chrono.
type AttributionUseCase struct {
	machines     repository.MachineRepository
	attributions repository.AttributionRepository
	resupplies   repository.ResupplyRepository
	tx           ports.OwnerTxRunner
	photos       ports.PhotoStore
	caps         gasoil.FuelCaps
	loc          *time.Location
	log          *logger.Logger
	now          func() time.Time
}

// NewAttributionUseCase construye el caso de uso. caps nil usa los topes por defecto
// y loc nil la zona local.
func NewAttributionUseCase(
	machines repository.MachineRepository,
	attributions repository.AttributionRepository,
	resupplies repository.ResupplyRepository,
	tx ports.OwnerTxRunner,
	photos ports.PhotoStore,
	caps gasoil.FuelCaps,
	loc *time.Location,
	log *logger.Logger,
) *AttributionUseCase {
	if caps == nil {
		caps = gasoil.DefaultFuelCaps()
	}
	if loc == nil {
		loc = time.Local
	}
	if log == nil {
		log = logger.Nop()
	}
	return &AttributionUseCase{
		machines:     machines,
		attributions: attributions,
		resupplies:   resupplies,
		tx:           tx,
		photos:       photos,
		caps:         caps,
		loc:          loc,
		log:          log.Component("gasoil"),
		now:          time.Now,
	}
}

// Attribute entrega litros a una máquina. Valida el tope de la máquina y, dentro
// de la transacción del dueño, que el stock restante alcance.
func (uc *AttributionUseCase) Attribute(ctx context.Context, ownerID string, in dto.CreateAttributionRequest) (*dto.CreateAttributionResponse, error) {
	plate := strings.TrimSpace(in.TruckPlate)
	if plate == "" || !in.Liters.IsPositive() {
		return nil, domain.ErrInvalidInput
	}
	if err := uc.caps.Check(plate, in.Liters); err != nil {
		return nil, err
	}

	now := uc.now()
	a := &entity.Attribution{
		ID:            uuid.New().String(),
		OwnerID:       ownerID,
		Kind:          entity.KindAttribution,
		TruckPlate:    plate,
		MachineType:   strings.TrimSpace(in.MachineType),
		Liters:        decimal.NewNullDecimal(in.Liters),
		Date:          dateOr(in.Date, now),
		Operator:      strings.TrimSpace(in.Operator),
		Activity:      strings.TrimSpace(in.Activity),
		ChauffeurName: strings.TrimSpace(in.ChauffeurName),
		CreatedAt:     now,
	}

	var remaining decimal.Decimal
	err := uc.tx.RunForOwner(ctx, ownerID, func(machines repository.MachineRepository, attributions repository.AttributionRepository, resupplies repository.ResupplyRepository, _ repository.MaintenanceRepository) error {
		if err := uc.bindMachine(ctx, machines, ownerID, a); err != nil {
			return err
		}
		stock, err := remainingStock(ctx, attributions, resupplies, ownerID)
		if err != nil {
			return err
		}
		if in.Liters.GreaterThan(stock) {
			return fmt.Errorf("%w : reste %s L.", domain.ErrInsufficientStock, stock.String())
		}
		if err := attributions.Create(ctx, a); err != nil {
			return err
		}
		remaining = stock.Sub(in.Liters)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &dto.CreateAttributionResponse{Attribution: ToAttributionResponse(a), Remaining: remaining}, nil
}

// Chrono registra una sesión de uso cerrada. La duración sale de DurationMinutes
// o de StartedAt/EndedAt; las fotos de kilometraje se guardan en el photo store.
func (uc *AttributionUseCase) Chrono(ctx context.Context, ownerID string, in dto.CreateChronoRequest) (*dto.AttributionResponse, error) {
	plate := strings.TrimSpace(in.TruckPlate)
	if plate == "" {
		return nil, domain.ErrInvalidInput
	}
	if in.GasoilConsumed.Valid && in.GasoilConsumed.Decimal.IsNegative() {
		return nil, domain.ErrInvalidInput
	}
	if in.VolumeSable.Valid && in.VolumeSable.Decimal.IsNegative() {
		return nil, domain.ErrInvalidInput
	}

	now := uc.now()
	a := &entity.Attribution{
		ID:             uuid.New().String(),
		OwnerID:        ownerID,
		Kind:           entity.KindChrono,
		TruckPlate:     plate,
		MachineType:    strings.TrimSpace(in.MachineType),
		ChauffeurName:  strings.TrimSpace(in.ChauffeurName),
		Activity:       strings.TrimSpace(in.Activity),
		StartTime:      strings.TrimSpace(in.StartTime),
		EndTime:        strings.TrimSpace(in.EndTime),
		GasoilConsumed: in.GasoilConsumed,
		VolumeSable:    in.VolumeSable,
		CreatedAt:      now,
	}

	switch {
	case in.DurationMinutes != nil:
		if *in.DurationMinutes < 0 {
			return nil, domain.ErrInvalidInput
		}
		m := *in.DurationMinutes
		a.DurationMinutes = &m
	case in.StartedAt != nil && in.EndedAt != nil:
		if in.EndedAt.Before(*in.StartedAt) {
			return nil, domain.ErrInvalidInput
		}
		m := gasoil.MinutesBetween(*in.StartedAt, *in.EndedAt)
		a.DurationMinutes = &m
	default:
		return nil, domain.ErrInvalidInput
	}
	a.DurationText = gasoil.FormatDuration(*a.DurationMinutes)

	if a.StartTime == "" && in.StartedAt != nil {
		a.StartTime = in.StartedAt.In(uc.loc).Format(clockLayout)
	}
	if a.EndTime == "" && in.EndedAt != nil {
		a.EndTime = in.EndedAt.In(uc.loc).Format(clockLayout)
	}
	if a.StartTime == "" {
		// sin hora de inicio la ingesta lo tomaría por una entrega
		a.StartTime = now.Add(-time.Duration(*a.DurationMinutes) * time.Minute).In(uc.loc).Format(clockLayout)
	}
	switch {
	case in.Date != nil && !in.Date.IsZero():
		a.Date = *in.Date
	case in.EndedAt != nil:
		a.Date = *in.EndedAt
	default:
		a.Date = now
	}

	if err := uc.bindMachine(ctx, uc.machines, ownerID, a); err != nil {
		return nil, err
	}

	var saved []string
	var err error
	if a.StartKmPhoto, err = uc.savePhoto(ctx, a, "start", in.StartKmPhoto, &saved); err != nil {
		return nil, err
	}
	if a.EndKmPhoto, err = uc.savePhoto(ctx, a, "end", in.EndKmPhoto, &saved); err != nil {
		uc.discardPhotos(ctx, saved)
		return nil, err
	}

	if err := uc.attributions.Create(ctx, a); err != nil {
		uc.discardPhotos(ctx, saved)
		return nil, err
	}
	res := ToAttributionResponse(a)
	return &res, nil
}

// List entregas y sesiones del dueño; kind vacío devuelve ambas.
func (uc *AttributionUseCase) List(ctx context.Context, ownerID, kind string) ([]dto.AttributionResponse, error) {
	list, err := uc.attributions.ListByOwner(ctx, ownerID)
	if err != nil {
		return nil, err
	}
	out := make([]dto.AttributionResponse, 0, len(list))
	for _, a := range list {
		if kind != "" && string(a.Kind) != kind {
			continue
		}
		out = append(out, ToAttributionResponse(a))
	}
	return out, nil
}

// Delete elimina una entrega o sesión del dueño.
func (uc *AttributionUseCase) Delete(ctx context.Context, ownerID, id string) error {
	return uc.attributions.Delete(ctx, ownerID, id)
}

// RemainingStock Σ approvisionné − Σ attribué para el dueño.
func (uc *AttributionUseCase) RemainingStock(ctx context.Context, ownerID string) (*dto.StockResponse, error) {
	stock, err := remainingStock(ctx, uc.attributions, uc.resupplies, ownerID)
	if err != nil {
		return nil, err
	}
	return &dto.StockResponse{Remaining: stock}, nil
}

// FuelCap tope configurado para la placa.
func (uc *AttributionUseCase) FuelCap(plate string) (decimal.Decimal, bool) {
	return uc.caps.Limit(plate)
}

func remainingStock(ctx context.Context, attributions repository.AttributionRepository, resupplies repository.ResupplyRepository, ownerID string) (decimal.Decimal, error) {
	appro, _, err := resupplies.Totals(ctx, ownerID)
	if err != nil {
		return decimal.Zero, err
	}
	used, err := attributions.TotalLiters(ctx, ownerID)
	if err != nil {
		return decimal.Zero, err
	}
	return gasoil.RemainingStock(&gasoil.Bilan{TotalAppro: appro}, used), nil
}

// bindMachine completa los datos de la máquina a partir de su placa.
func (uc *AttributionUseCase) bindMachine(ctx context.Context, machines repository.MachineRepository, ownerID string, a *entity.Attribution) error {
	m, err := machines.GetByPlate(ctx, ownerID, a.TruckPlate)
	if err != nil {
		return err
	}
	if m == nil {
		return fmt.Errorf("%w : machine %s", domain.ErrNotFound, a.TruckPlate)
	}
	a.MachineID = m.ID
	a.MachineName = m.Name
	if a.MachineType == "" {
		a.MachineType = m.TruckType
	}
	return nil
}

// savePhoto guarda la foto y añade su clave a saved.
func (uc *AttributionUseCase) savePhoto(ctx context.Context, a *entity.Attribution, label, data string, saved *[]string) (string, error) {
	if strings.TrimSpace(data) == "" || uc.photos == nil {
		return "", nil
	}
	contentType, raw, err := dataurl.Decode(data)
	if err != nil {
		return "", fmt.Errorf("%w : photo %s", domain.ErrInvalidInput, label)
	}
	key := fmt.Sprintf("%s_%s/%s_%d%s", photoDir(a.TruckPlate), a.Date.In(uc.loc).Format(gasoil.DayLayout),
		label, a.CreatedAt.UnixMilli(), dataurl.Extension(contentType))
	ref, err := uc.photos.Save(ctx, key, contentType, raw)
	if err != nil {
		uc.log.Error().Err(err).Str("key", key).Msg("no se pudo guardar la foto de kilometraje")
		return "", fmt.Errorf("save photo: %w", err)
	}
	*saved = append(*saved, key)
	return ref, nil
}

// discardPhotos borra las fotos de una sesión que no llegó a guardarse.
// Los fallos solo se registran; el error original es el que se devuelve.
func (uc *AttributionUseCase) discardPhotos(ctx context.Context, keys []string) {
	for _, key := range keys {
		if err := uc.photos.Delete(ctx, key); err != nil {
			uc.log.Warn().Err(err).Str("key", key).Msg("foto huérfana sin borrar")
		}
	}
}

// photoDir placa apta para nombre de carpeta.
func photoDir(plate string) string {
	return strings.NewReplacer(" ", "-", "/", "-", "\\", "-", "..", "-").Replace(strings.TrimSpace(plate))
}

func dateOr(d *time.Time, fallback time.Time) time.Time {
	if d != nil && !d.IsZero() {
		return *d
	}
	return fallback
}

// ToAttributionResponse proyección común de entregas y sesiones.
func ToAttributionResponse(a *entity.Attribution) dto.AttributionResponse {
	res := dto.AttributionResponse{
		ID:              a.ID,
		Kind:            string(a.Kind),
		TruckPlate:      a.TruckPlate,
		Name:            a.MachineName,
		MachineType:     a.MachineType,
		Liters:          a.Liters,
		Operator:        a.Operator,
		Activity:        a.Activity,
		ChauffeurName:   a.ChauffeurName,
		StartTime:       a.StartTime,
		EndTime:         a.EndTime,
		DurationMinutes: a.DurationMinutes,
		GasoilConsumed:  a.GasoilConsumed,
		VolumeSable:     a.VolumeSable,
		StartKmPhoto:    a.StartKmPhoto,
		EndKmPhoto:      a.EndKmPhoto,
	}
	if !a.Date.IsZero() {
		d := a.Date
		res.Date = &d
	}
	if a.IsChrono() {
		if m, err := gasoil.DurationMinutes(*a); err == nil {
			res.Duration = gasoil.FormatDuration(m)
		} else {
			res.Duration = a.DurationText
		}
	}
	return res
}
