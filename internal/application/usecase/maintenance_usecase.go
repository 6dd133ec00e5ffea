package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/minegest-api/internal/application/dto"
	"github.com/jhoicas/minegest-api/internal/application/ports"
	"github.com/jhoicas/minegest-api/internal/domain"
	"github.com/jhoicas/minegest-api/internal/domain/entity"
	"github.com/jhoicas/minegest-api/internal/domain/gasoil"
	"github.com/jhoicas/minegest-api/internal/domain/repository"
)

// MaintenanceUseCase compras de mantenimiento pagadas con el saldo de la flota.
type MaintenanceUseCase struct {
	repo repository.MaintenanceRepository
	tx   ports.OwnerTxRunner
}

// NewMaintenanceUseCase construye el caso de uso.
func NewMaintenanceUseCase(repo repository.MaintenanceRepository, tx ports.OwnerTxRunner) *MaintenanceUseCase {
	return &MaintenanceUseCase{repo: repo, tx: tx}
}

// Create registra la compra si el solde actuel del bilan completo la cubre.
func (uc *MaintenanceUseCase) Create(ctx context.Context, ownerID string, in dto.CreateMaintenanceRequest) (*dto.MaintenanceResponse, error) {
	item := strings.TrimSpace(in.ItemName)
	if item == "" || !in.Quantity.IsPositive() || in.UnitPrice.IsNegative() {
		return nil, domain.ErrInvalidInput
	}
	now := time.Now()
	date := now
	if in.Date != nil && !in.Date.IsZero() {
		date = *in.Date
	}
	m := &entity.Maintenance{
		ID:         uuid.New().String(),
		OwnerID:    ownerID,
		ItemName:   item,
		UnitPrice:  in.UnitPrice,
		Quantity:   in.Quantity,
		TotalPrice: in.UnitPrice.Mul(in.Quantity).Round(2),
		Date:       date,
		CreatedAt:  now,
	}

	err := uc.tx.RunForOwner(ctx, ownerID, func(machines repository.MachineRepository, _ repository.AttributionRepository, resupplies repository.ResupplyRepository, maintenance repository.MaintenanceRepository) error {
		ms, err := machines.ListByOwner(ctx, ownerID, "")
		if err != nil {
			return err
		}
		rs, err := resupplies.ListByOwner(ctx, ownerID)
		if err != nil {
			return err
		}
		done, err := maintenance.ListByOwner(ctx, ownerID)
		if err != nil {
			return err
		}
		bilan := gasoil.BuildFinancialBilan(entity.Values(ms), entity.Values(rs), entity.Values(done))
		if m.TotalPrice.GreaterThan(bilan.SoldeActuel) {
			return fmt.Errorf("%w : solde actuel %s, montant %s",
				domain.ErrInsufficientBalance, bilan.SoldeActuel.StringFixed(0), m.TotalPrice.StringFixed(0))
		}
		return maintenance.Create(ctx, m)
	})
	if err != nil {
		return nil, err
	}
	res := toMaintenanceResponse(m)
	return &res, nil
}

// List compras del dueño, más recientes primero.
func (uc *MaintenanceUseCase) List(ctx context.Context, ownerID string) ([]dto.MaintenanceResponse, error) {
	list, err := uc.repo.ListByOwner(ctx, ownerID)
	if err != nil {
		return nil, err
	}
	out := make([]dto.MaintenanceResponse, 0, len(list))
	for _, m := range list {
		out = append(out, toMaintenanceResponse(m))
	}
	return out, nil
}

func toMaintenanceResponse(m *entity.Maintenance) dto.MaintenanceResponse {
	return dto.MaintenanceResponse{
		ID:         m.ID,
		ItemName:   m.ItemName,
		UnitPrice:  m.UnitPrice,
		Quantity:   m.Quantity,
		TotalPrice: m.TotalPrice,
		Date:       m.Date,
	}
}
