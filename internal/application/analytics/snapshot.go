// Package analytics arma el tablero de gasoil, los bilans y el reporte diario
// a partir de las colecciones del dueño.
package analytics

import (
	"context"
	"fmt"

	"github.com/jhoicas/minegest-api/internal/domain/entity"
	"github.com/jhoicas/minegest-api/internal/domain/gasoil"
	"github.com/jhoicas/minegest-api/internal/domain/repository"
)

// Repos colecciones que lee el motor de agregación.
type Repos struct {
	Machines     repository.MachineRepository
	Attributions repository.AttributionRepository
	Resupplies   repository.ResupplyRepository
	Maintenance  repository.MaintenanceRepository
}

// ownerData colecciones de un dueño leídas en paralelo.
type ownerData struct {
	machines     []entity.Machine
	attributions []entity.Attribution
	resupplies   []entity.Resupply
	maintenance  []entity.Maintenance
}

// snapshot convierte los datos al snapshot del motor, con el bilan financiero incluido.
func (d ownerData) snapshot() gasoil.Snapshot {
	financial := gasoil.BuildFinancialBilan(d.machines, d.resupplies, d.maintenance)
	return gasoil.Snapshot{
		Machines:     d.machines,
		Attributions: d.attributions,
		Resupplies:   d.resupplies,
		Bilan: &gasoil.Bilan{
			TotalAppro: gasoil.SumField(d.resupplies, gasoil.ResupplyQuantity),
			Financial:  &financial,
		},
	}
}

// load lee las cuatro colecciones del dueño con una goroutine por consulta.
func (r Repos) load(ctx context.Context, ownerID string) (ownerData, error) {
	type machinesResult struct {
		list []*entity.Machine
		err  error
	}
	type attributionsResult struct {
		list []*entity.Attribution
		err  error
	}
	type resuppliesResult struct {
		list []*entity.Resupply
		err  error
	}
	type maintenanceResult struct {
		list []*entity.Maintenance
		err  error
	}

	machinesCh := make(chan machinesResult, 1)
	attributionsCh := make(chan attributionsResult, 1)
	resuppliesCh := make(chan resuppliesResult, 1)
	maintenanceCh := make(chan maintenanceResult, 1)

	go func() {
		list, err := r.Machines.ListByOwner(ctx, ownerID, "")
		machinesCh <- machinesResult{list, err}
	}()
	go func() {
		list, err := r.Attributions.ListByOwner(ctx, ownerID)
		attributionsCh <- attributionsResult{list, err}
	}()
	go func() {
		list, err := r.Resupplies.ListByOwner(ctx, ownerID)
		resuppliesCh <- resuppliesResult{list, err}
	}()
	go func() {
		list, err := r.Maintenance.ListByOwner(ctx, ownerID)
		maintenanceCh <- maintenanceResult{list, err}
	}()

	machines := <-machinesCh
	attributions := <-attributionsCh
	resupplies := <-resuppliesCh
	maintenance := <-maintenanceCh

	if machines.err != nil {
		return ownerData{}, fmt.Errorf("snapshot: máquinas: %w", machines.err)
	}
	if attributions.err != nil {
		return ownerData{}, fmt.Errorf("snapshot: attributions: %w", attributions.err)
	}
	if resupplies.err != nil {
		return ownerData{}, fmt.Errorf("snapshot: approvisionnements: %w", resupplies.err)
	}
	if maintenance.err != nil {
		return ownerData{}, fmt.Errorf("snapshot: maintenance: %w", maintenance.err)
	}

	return ownerData{
		machines:     entity.Values(machines.list),
		attributions: entity.Values(attributions.list),
		resupplies:   entity.Values(resupplies.list),
		maintenance:  entity.Values(maintenance.list),
	}, nil
}
