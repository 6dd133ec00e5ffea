package billing_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	appbilling "github.com/jhoicas/minegest-api/internal/application/billing"
	"github.com/jhoicas/minegest-api/internal/application/dto"
	"github.com/jhoicas/minegest-api/internal/domain"
	"github.com/jhoicas/minegest-api/internal/domain/billing"
	"github.com/jhoicas/minegest-api/internal/domain/entity"
	"github.com/jhoicas/minegest-api/internal/testutil/memstore"
)

const owner = "owner-1"

type fakePDF struct{ issuer string }

func (f *fakePDF) GenerateInvoicePDF(_ context.Context, inv *entity.Invoice, issuer string) ([]byte, error) {
	f.issuer = issuer
	return []byte("%PDF-" + inv.ID), nil
}

func setup(t *testing.T) (*appbilling.InvoiceUseCase, *memstore.Store, *fakePDF) {
	t.Helper()
	store := memstore.New()
	require.NoError(t, store.Machines.Create(context.Background(), &entity.Machine{
		ID: "m1", OwnerID: owner, Name: "Benne", TruckPlate: "LT 123", TruckType: entity.TruckType10Roues, Balance: decimal.NewFromInt(100000),
	}))
	pdf := &fakePDF{}
	return appbilling.NewInvoiceUseCase(store.Invoices, store.Machines, pdf, "MineGest"), store, pdf
}

func TestCreate_TarifaPorTipo(t *testing.T) {
	uc, store, _ := setup(t)
	ctx := context.Background()

	res, err := uc.Create(ctx, owner, dto.CreateInvoiceRequest{MachineID: "m1", Trips: 2})
	require.NoError(t, err)
	assert.Equal(t, "45000", res.UnitPrice.String())
	assert.Equal(t, "90000", res.TotalAmount.String())
	assert.Equal(t, "10000", res.Status.String())
	assert.Equal(t, billing.StatusPaid, res.StatusLabel)

	m, err := store.Machines.GetByID(ctx, owner, "m1")
	require.NoError(t, err)
	assert.Equal(t, "100000", m.Balance.String(), "facturar no toca el saldo")
}

func TestCreate_PrecioExplicitoYPlaca(t *testing.T) {
	uc, _, _ := setup(t)
	price := decimal.NewFromInt(50000)
	res, err := uc.Create(context.Background(), owner, dto.CreateInvoiceRequest{TruckPlate: "LT 123", UnitPrice: &price, Trips: 2})
	require.NoError(t, err)
	assert.True(t, res.Status.IsZero())
	assert.Equal(t, billing.StatusPending, res.StatusLabel)
}

func TestCreate_SoldeInsuffisant(t *testing.T) {
	uc, _, _ := setup(t)
	_, err := uc.Create(context.Background(), owner, dto.CreateInvoiceRequest{MachineID: "m1", Trips: 3})
	require.ErrorIs(t, err, domain.ErrInsufficientBalance)
	assert.Contains(t, err.Error(), "montant 135000")
}

func TestCreate_Invalida(t *testing.T) {
	uc, _, _ := setup(t)
	ctx := context.Background()
	_, err := uc.Create(ctx, owner, dto.CreateInvoiceRequest{Trips: 1})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	_, err = uc.Create(ctx, owner, dto.CreateInvoiceRequest{MachineID: "m1", Trips: 0})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	_, err = uc.Create(ctx, owner, dto.CreateInvoiceRequest{MachineID: "otra", Trips: 1})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestDownloadPDF(t *testing.T) {
	uc, _, pdf := setup(t)
	ctx := context.Background()
	inv, err := uc.Create(ctx, owner, dto.CreateInvoiceRequest{MachineID: "m1", Trips: 1})
	require.NoError(t, err)

	data, name, err := uc.DownloadPDF(ctx, owner, inv.ID)
	require.NoError(t, err)
	assert.Equal(t, []byte("%PDF-"+inv.ID), data)
	assert.Regexp(t, `^facture_LT-123_\d{4}-\d{2}-\d{2}\.pdf$`, name)
	assert.Equal(t, "MineGest", pdf.issuer)

	_, _, err = uc.DownloadPDF(ctx, "otro", inv.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound)

	list, err := uc.List(ctx, owner)
	require.NoError(t, err)
	assert.Len(t, list, 1)
}
