package usecase

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/minegest-api/internal/application/dto"
	"github.com/jhoicas/minegest-api/internal/application/ports"
	"github.com/jhoicas/minegest-api/internal/domain"
	"github.com/jhoicas/minegest-api/internal/domain/entity"
	"github.com/jhoicas/minegest-api/internal/domain/repository"
)

// MachineUseCase alta y consulta de máquinas y sus créditos.
type MachineUseCase struct {
	repo repository.MachineRepository
	tx   ports.OwnerTxRunner
	qr   ports.QRCodeGenerator
}

// NewMachineUseCase construye el caso de uso.
func NewMachineUseCase(repo repository.MachineRepository, tx ports.OwnerTxRunner, qr ports.QRCodeGenerator) *MachineUseCase {
	return &MachineUseCase{repo: repo, tx: tx, qr: qr}
}

// Create registra la máquina y devuelve su QR con los datos de identificación.
func (uc *MachineUseCase) Create(ctx context.Context, ownerID string, in dto.CreateMachineRequest) (*dto.CreateMachineResponse, error) {
	name := strings.TrimSpace(in.Name)
	plate := strings.TrimSpace(in.TruckPlate)
	if name == "" || plate == "" || in.Balance.IsNegative() {
		return nil, domain.ErrInvalidInput
	}
	m := &entity.Machine{
		ID:         uuid.New().String(),
		OwnerID:    ownerID,
		Name:       name,
		TruckPlate: plate,
		TruckType:  strings.TrimSpace(in.TruckType),
		Balance:    in.Balance,
		CreatedAt:  time.Now(),
	}
	if err := uc.repo.Create(ctx, m); err != nil {
		return nil, err
	}

	payload, err := json.Marshal(dto.MachineQRPayload{
		ID: m.ID, Name: m.Name, TruckPlate: m.TruckPlate, TruckType: m.TruckType, Balance: m.Balance,
	})
	if err != nil {
		return nil, fmt.Errorf("marshal qr payload: %w", err)
	}
	qr, err := uc.qr.DataURL(string(payload))
	if err != nil {
		return nil, fmt.Errorf("qr code: %w", err)
	}
	return &dto.CreateMachineResponse{Machine: toMachineResponse(m), QRCode: qr}, nil
}

// List máquinas del dueño; plate no vacío filtra por placa.
func (uc *MachineUseCase) List(ctx context.Context, ownerID, plate string) ([]dto.MachineResponse, error) {
	list, err := uc.repo.ListByOwner(ctx, ownerID, strings.TrimSpace(plate))
	if err != nil {
		return nil, err
	}
	out := make([]dto.MachineResponse, 0, len(list))
	for _, m := range list {
		out = append(out, toMachineResponse(m))
	}
	return out, nil
}

// GetByID devuelve ErrNotFound si la máquina no es del dueño.
func (uc *MachineUseCase) GetByID(ctx context.Context, ownerID, id string) (*dto.MachineResponse, error) {
	m, err := uc.repo.GetByID(ctx, ownerID, id)
	if err != nil {
		return nil, err
	}
	if m == nil {
		return nil, domain.ErrNotFound
	}
	res := toMachineResponse(m)
	return &res, nil
}

// AddCredit abona amount al saldo de la máquina.
func (uc *MachineUseCase) AddCredit(ctx context.Context, ownerID, machineID string, in dto.AddCreditRequest) (*dto.CreditResponse, error) {
	if !in.Amount.IsPositive() {
		return nil, domain.ErrInvalidInput
	}
	date := time.Now()
	if in.Date != nil && !in.Date.IsZero() {
		date = *in.Date
	}
	credit := &entity.Credit{
		ID:        uuid.New().String(),
		MachineID: machineID,
		OwnerID:   ownerID,
		Amount:    in.Amount,
		Date:      date,
	}
	err := uc.tx.RunForOwner(ctx, ownerID, func(machines repository.MachineRepository, _ repository.AttributionRepository, _ repository.ResupplyRepository, _ repository.MaintenanceRepository) error {
		m, err := machines.GetByID(ctx, ownerID, machineID)
		if err != nil {
			return err
		}
		if m == nil {
			return domain.ErrNotFound
		}
		return machines.AddCredit(ctx, credit)
	})
	if err != nil {
		return nil, err
	}
	return toCreditResponse(credit), nil
}

// ListCredits créditos de una máquina, más recientes primero.
func (uc *MachineUseCase) ListCredits(ctx context.Context, ownerID, machineID string) ([]dto.CreditResponse, error) {
	m, err := uc.repo.GetByID(ctx, ownerID, machineID)
	if err != nil {
		return nil, err
	}
	if m == nil {
		return nil, domain.ErrNotFound
	}
	list, err := uc.repo.ListCredits(ctx, ownerID, machineID)
	if err != nil {
		return nil, err
	}
	out := make([]dto.CreditResponse, 0, len(list))
	for _, c := range list {
		out = append(out, *toCreditResponse(c))
	}
	return out, nil
}

// CreditsBilan total abonado sobre todas las máquinas del dueño.
func (uc *MachineUseCase) CreditsBilan(ctx context.Context, ownerID string) (*dto.CreditsBilanResponse, error) {
	total, err := uc.repo.TotalCredits(ctx, ownerID)
	if err != nil {
		return nil, err
	}
	return &dto.CreditsBilanResponse{TotalCredits: total}, nil
}

func toMachineResponse(m *entity.Machine) dto.MachineResponse {
	return dto.MachineResponse{
		ID:         m.ID,
		Name:       m.Name,
		TruckPlate: m.TruckPlate,
		TruckType:  m.TruckType,
		Balance:    m.Balance,
		CreatedAt:  m.CreatedAt,
	}
}

func toCreditResponse(c *entity.Credit) *dto.CreditResponse {
	return &dto.CreditResponse{ID: c.ID, MachineID: c.MachineID, Amount: c.Amount, Date: c.Date}
}

