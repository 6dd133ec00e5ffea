package billing

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/minegest-api/internal/application/dto"
	"github.com/jhoicas/minegest-api/internal/application/ports"
	"github.com/jhoicas/minegest-api/internal/domain"
	"github.com/jhoicas/minegest-api/internal/domain/billing"
	"github.com/jhoicas/minegest-api/internal/domain/entity"
	"github.com/jhoicas/minegest-api/internal/domain/repository"
)

// InvoiceUseCase factures de viajes de camión.
type InvoiceUseCase struct {
	invoiceRepo repository.InvoiceRepository
	machineRepo repository.MachineRepository
	generator   ports.InvoicePDFGenerator
	issuer      string
}

// NewInvoiceUseCase construye el caso de uso. issuer es el nombre impreso en el PDF.
func NewInvoiceUseCase(invoiceRepo repository.InvoiceRepository, machineRepo repository.MachineRepository, generator ports.InvoicePDFGenerator, issuer string) *InvoiceUseCase {
	return &InvoiceUseCase{invoiceRepo: invoiceRepo, machineRepo: machineRepo, generator: generator, issuer: issuer}
}

// Create emite la facture contra el saldo de la máquina (por id o placa).
// Sin precio unitario se aplica la tarifa del tipo de camión.
// El saldo de la máquina no se modifica.
func (uc *InvoiceUseCase) Create(ctx context.Context, ownerID string, in dto.CreateInvoiceRequest) (*dto.InvoiceResponse, error) {
	m, err := uc.findMachine(ctx, ownerID, in)
	if err != nil {
		return nil, err
	}

	var unitPrice decimal.Decimal
	if in.UnitPrice != nil {
		unitPrice = *in.UnitPrice
	} else {
		p, ok := billing.UnitPriceFor(m.TruckType)
		if !ok {
			return nil, fmt.Errorf("%w : pas de tarif pour le type %q", domain.ErrInvalidInput, m.TruckType)
		}
		unitPrice = p
	}

	f, err := billing.Compute(unitPrice, in.Trips, m.Balance)
	if err != nil {
		if errors.Is(err, domain.ErrInsufficientBalance) {
			return nil, fmt.Errorf("%w : solde %s, montant %s", err, f.Balance.StringFixed(0), f.TotalAmount.StringFixed(0))
		}
		return nil, err
	}

	now := time.Now()
	date := now
	if in.Date != nil && !in.Date.IsZero() {
		date = *in.Date
	}
	inv := &entity.Invoice{
		ID:          uuid.New().String(),
		OwnerID:     ownerID,
		MachineID:   m.ID,
		Name:        m.Name,
		TruckPlate:  m.TruckPlate,
		TruckType:   m.TruckType,
		UnitPrice:   f.UnitPrice,
		Trips:       f.Trips,
		TotalAmount: f.TotalAmount,
		Balance:     f.Balance,
		Status:      f.Status,
		Date:        date,
		CreatedAt:   now,
	}
	if err := uc.invoiceRepo.Create(ctx, inv); err != nil {
		return nil, err
	}
	res := toInvoiceResponse(inv)
	return &res, nil
}

// List factures del dueño, más recientes primero.
func (uc *InvoiceUseCase) List(ctx context.Context, ownerID string) ([]dto.InvoiceResponse, error) {
	list, err := uc.invoiceRepo.ListByOwner(ctx, ownerID)
	if err != nil {
		return nil, err
	}
	out := make([]dto.InvoiceResponse, 0, len(list))
	for _, inv := range list {
		out = append(out, toInvoiceResponse(inv))
	}
	return out, nil
}

// DownloadPDF genera el PDF de la facture.
//
// Retorna:
//   - (pdfBytes, filename, nil)  si todo sale bien.
//   - domain.ErrNotFound         si la facture no existe para el dueño.
func (uc *InvoiceUseCase) DownloadPDF(ctx context.Context, ownerID, invoiceID string) ([]byte, string, error) {
	inv, err := uc.invoiceRepo.GetByID(ctx, ownerID, invoiceID)
	if err != nil {
		return nil, "", fmt.Errorf("pdf: obtener facture: %w", err)
	}
	if inv == nil {
		return nil, "", domain.ErrNotFound
	}
	pdfBytes, err := uc.generator.GenerateInvoicePDF(ctx, inv, uc.issuer)
	if err != nil {
		return nil, "", err
	}
	plate := strings.NewReplacer(" ", "-", "/", "-").Replace(inv.TruckPlate)
	return pdfBytes, fmt.Sprintf("facture_%s_%s.pdf", plate, inv.Date.Format("2006-01-02")), nil
}

func (uc *InvoiceUseCase) findMachine(ctx context.Context, ownerID string, in dto.CreateInvoiceRequest) (*entity.Machine, error) {
	var (
		m   *entity.Machine
		err error
	)
	switch {
	case in.MachineID != "":
		m, err = uc.machineRepo.GetByID(ctx, ownerID, in.MachineID)
	case strings.TrimSpace(in.TruckPlate) != "":
		m, err = uc.machineRepo.GetByPlate(ctx, ownerID, strings.TrimSpace(in.TruckPlate))
	default:
		return nil, domain.ErrInvalidInput
	}
	if err != nil {
		return nil, err
	}
	if m == nil {
		return nil, domain.ErrNotFound
	}
	return m, nil
}

func toInvoiceResponse(inv *entity.Invoice) dto.InvoiceResponse {
	return dto.InvoiceResponse{
		ID:          inv.ID,
		MachineID:   inv.MachineID,
		Name:        inv.Name,
		TruckPlate:  inv.TruckPlate,
		TruckType:   inv.TruckType,
		UnitPrice:   inv.UnitPrice,
		Trips:       inv.Trips,
		TotalAmount: inv.TotalAmount,
		Balance:     inv.Balance,
		Status:      inv.Status,
		StatusLabel: billing.StatusLabel(inv.Status),
		Date:        inv.Date,
	}
}
