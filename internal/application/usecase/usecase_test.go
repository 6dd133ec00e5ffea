package usecase_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/minegest-api/internal/application/dto"
	"github.com/jhoicas/minegest-api/internal/application/usecase"
	"github.com/jhoicas/minegest-api/internal/domain"
	"github.com/jhoicas/minegest-api/internal/domain/entity"
	"github.com/jhoicas/minegest-api/internal/testutil/memstore"
)

const owner = "owner-1"

type fakeQR struct{ payload string }

func (f *fakeQR) DataURL(payload string) (string, error) {
	f.payload = payload
	return "data:image/png;base64,QR", nil
}

func dec(v int64) decimal.Decimal { return decimal.NewFromInt(v) }

// ── Machines ─────────────────────────────────────────────────────────────────

func TestMachineUseCase_CreateConQR(t *testing.T) {
	store := memstore.New()
	qr := &fakeQR{}
	uc := usecase.NewMachineUseCase(store.Machines, store, qr)

	res, err := uc.Create(context.Background(), owner, dto.CreateMachineRequest{
		Name: "Benne 1", TruckPlate: " LT-123 ", TruckType: entity.TruckType10Roues, Balance: dec(500000),
	})
	require.NoError(t, err)
	assert.Equal(t, "LT-123", res.Machine.TruckPlate)
	assert.Equal(t, "data:image/png;base64,QR", res.QRCode)
	assert.Contains(t, qr.payload, `"truckPlate":"LT-123"`)
	assert.Contains(t, qr.payload, res.Machine.ID)

	_, err = uc.Create(context.Background(), owner, dto.CreateMachineRequest{Name: "Otra", TruckPlate: "LT-123"})
	assert.ErrorIs(t, err, domain.ErrDuplicate)
}

func TestMachineUseCase_CreateInvalida(t *testing.T) {
	uc := usecase.NewMachineUseCase(memstore.New().Machines, memstore.New(), &fakeQR{})
	_, err := uc.Create(context.Background(), owner, dto.CreateMachineRequest{Name: "", TruckPlate: "X"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	_, err = uc.Create(context.Background(), owner, dto.CreateMachineRequest{Name: "A", TruckPlate: "X", Balance: dec(-1)})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestMachineUseCase_Creditos(t *testing.T) {
	store := memstore.New()
	uc := usecase.NewMachineUseCase(store.Machines, store, &fakeQR{})
	ctx := context.Background()

	m, err := uc.Create(ctx, owner, dto.CreateMachineRequest{Name: "Benne", TruckPlate: "P1", Balance: dec(1000)})
	require.NoError(t, err)

	_, err = uc.AddCredit(ctx, owner, m.Machine.ID, dto.AddCreditRequest{Amount: dec(250)})
	require.NoError(t, err)
	_, err = uc.AddCredit(ctx, owner, m.Machine.ID, dto.AddCreditRequest{Amount: dec(50)})
	require.NoError(t, err)

	got, err := uc.GetByID(ctx, owner, m.Machine.ID)
	require.NoError(t, err)
	assert.True(t, dec(1300).Equal(got.Balance), "saldo esperado 1300, obtenido %s", got.Balance)

	credits, err := uc.ListCredits(ctx, owner, m.Machine.ID)
	require.NoError(t, err)
	assert.Len(t, credits, 2)

	bilan, err := uc.CreditsBilan(ctx, owner)
	require.NoError(t, err)
	assert.True(t, dec(300).Equal(bilan.TotalCredits))

	_, err = uc.AddCredit(ctx, owner, m.Machine.ID, dto.AddCreditRequest{Amount: dec(0)})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	_, err = uc.AddCredit(ctx, "otro-owner", m.Machine.ID, dto.AddCreditRequest{Amount: dec(10)})
	assert.ErrorIs(t, err, domain.ErrNotFound, "una máquina de otro dueño no existe para él")
}

func TestMachineUseCase_ListFiltraPorPlaca(t *testing.T) {
	store := memstore.New()
	uc := usecase.NewMachineUseCase(store.Machines, store, &fakeQR{})
	ctx := context.Background()
	for _, p := range []string{"A", "B"} {
		_, err := uc.Create(ctx, owner, dto.CreateMachineRequest{Name: p, TruckPlate: p})
		require.NoError(t, err)
	}
	all, err := uc.List(ctx, owner, "")
	require.NoError(t, err)
	assert.Len(t, all, 2)
	one, err := uc.List(ctx, owner, "B")
	require.NoError(t, err)
	require.Len(t, one, 1)
	assert.Equal(t, "B", one[0].TruckPlate)
}

// ── Approvisionnements ───────────────────────────────────────────────────────

func TestResupplyUseCase_CreateCalculaMontant(t *testing.T) {
	store := memstore.New()
	uc := usecase.NewResupplyUseCase(store.Resupplies)

	res, err := uc.Create(context.Background(), owner, dto.CreateResupplyRequest{
		Fournisseur: "Total", Quantite: dec(1000), PrixUnitaire: decimal.RequireFromString("650.5"), Receptionniste: "Marc",
	})
	require.NoError(t, err)
	assert.Equal(t, "650500", res.MontantTotal.String())
	assert.False(t, res.Date.IsZero(), "sin fecha se usa la actual")

	_, err = uc.Create(context.Background(), owner, dto.CreateResupplyRequest{Fournisseur: "Total", Quantite: dec(0)})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestResupplyUseCase_BusquedaSinAcentos(t *testing.T) {
	store := memstore.New()
	uc := usecase.NewResupplyUseCase(store.Resupplies)
	ctx := context.Background()
	d := time.Date(2025, 1, 5, 0, 0, 0, 0, time.UTC)
	for _, f := range []string{"Société Pétrolière", "Total", "TRADEX"} {
		_, err := uc.Create(ctx, owner, dto.CreateResupplyRequest{Fournisseur: f, Quantite: dec(10), PrixUnitaire: dec(1), Date: &d})
		require.NoError(t, err)
	}

	got, err := uc.List(ctx, owner, "petroliere")
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "Société Pétrolière", got[0].Fournisseur)

	got, err = uc.List(ctx, owner, "tra")
	require.NoError(t, err)
	assert.Len(t, got, 1)

	got, err = uc.List(ctx, owner, "")
	require.NoError(t, err)
	assert.Len(t, got, 3)
}

func TestResupplyUseCase_Delete(t *testing.T) {
	store := memstore.New()
	uc := usecase.NewResupplyUseCase(store.Resupplies)
	ctx := context.Background()
	r, err := uc.Create(ctx, owner, dto.CreateResupplyRequest{Fournisseur: "Total", Quantite: dec(10), PrixUnitaire: dec(1)})
	require.NoError(t, err)

	assert.ErrorIs(t, uc.Delete(ctx, "otro", r.ID), domain.ErrNotFound)
	require.NoError(t, uc.Delete(ctx, owner, r.ID))
	assert.ErrorIs(t, uc.Delete(ctx, owner, r.ID), domain.ErrNotFound)
}

// ── Maintenance ──────────────────────────────────────────────────────────────

func TestMaintenanceUseCase_SoldeInsuffisant(t *testing.T) {
	store := memstore.New()
	ctx := context.Background()
	machines := usecase.NewMachineUseCase(store.Machines, store, &fakeQR{})
	resupplies := usecase.NewResupplyUseCase(store.Resupplies)
	uc := usecase.NewMaintenanceUseCase(store.Maintenance, store)

	_, err := machines.Create(ctx, owner, dto.CreateMachineRequest{Name: "Benne", TruckPlate: "P1", Balance: dec(100000)})
	require.NoError(t, err)
	_, err = resupplies.Create(ctx, owner, dto.CreateResupplyRequest{Fournisseur: "Total", Quantite: dec(100), PrixUnitaire: dec(600)})
	require.NoError(t, err)

	// solde actuel = 100000 − 60000 = 40000
	res, err := uc.Create(ctx, owner, dto.CreateMaintenanceRequest{ItemName: "Filtre", UnitPrice: dec(15000), Quantity: dec(2)})
	require.NoError(t, err)
	assert.True(t, dec(30000).Equal(res.TotalPrice))

	_, err = uc.Create(ctx, owner, dto.CreateMaintenanceRequest{ItemName: "Pneu", UnitPrice: dec(10001), Quantity: dec(1)})
	assert.ErrorIs(t, err, domain.ErrInsufficientBalance)
	assert.Contains(t, err.Error(), "solde insuffisant")

	_, err = uc.Create(ctx, owner, dto.CreateMaintenanceRequest{ItemName: "Huile", UnitPrice: dec(10000), Quantity: dec(1)})
	require.NoError(t, err, "el solde exacto alcanza")

	list, err := uc.List(ctx, owner)
	require.NoError(t, err)
	assert.Len(t, list, 2)
}

// ── Journal ──────────────────────────────────────────────────────────────────

func TestActionUseCase_ListByUsername(t *testing.T) {
	store := memstore.New()
	ctx := context.Background()
	for i, action := range []string{"login", "seller_added", "login"} {
		require.NoError(t, store.Actions.Create(ctx, &entity.Action{
			ID: string(rune('a' + i)), Username: "chef", Action: action, Timestamp: time.Now(),
		}))
	}
	uc := usecase.NewActionUseCase(store.Actions)

	got, err := uc.ListByUsername(ctx, "chef", 2)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "c", got[0].ID, "más recientes primero")

	got, err = uc.ListByUsername(ctx, "chef", 0)
	require.NoError(t, err)
	assert.Len(t, got, 3)
}
