package analytics

import (
	"context"

	"github.com/jhoicas/minegest-api/internal/domain/gasoil"
)

// BilanUseCase bilans de gasoil, completo y de mantenimiento.
type BilanUseCase struct {
	repos Repos
}

// NewBilanUseCase construye el caso de uso.
func NewBilanUseCase(repos Repos) *BilanUseCase {
	return &BilanUseCase{repos: repos}
}

// Gasoil consumo por máquina, stock global y precio medio.
func (uc *BilanUseCase) Gasoil(ctx context.Context, ownerID string) (*gasoil.GasoilBilan, error) {
	data, err := uc.repos.load(ctx, ownerID)
	if err != nil {
		return nil, err
	}
	b := gasoil.BuildGasoilBilan(data.machines, data.attributions, data.resupplies)
	return &b, nil
}

// Complet saldo de la flota menos gastos de gasoil y mantenimiento.
func (uc *BilanUseCase) Complet(ctx context.Context, ownerID string) (*gasoil.FinancialBilan, error) {
	data, err := uc.repos.load(ctx, ownerID)
	if err != nil {
		return nil, err
	}
	b := gasoil.BuildFinancialBilan(data.machines, data.resupplies, data.maintenance)
	return &b, nil
}

// Maintenance gasto de mantenimiento agrupado por artículo.
func (uc *BilanUseCase) Maintenance(ctx context.Context, ownerID string) ([]gasoil.MaintenanceGroup, error) {
	b, err := uc.Complet(ctx, ownerID)
	if err != nil {
		return nil, err
	}
	return b.Maintenance, nil
}
