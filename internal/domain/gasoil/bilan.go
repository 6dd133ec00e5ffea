package gasoil

import (
	"slices"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/minegest-api/internal/domain/entity"
	"github.com/jhoicas/minegest-api/internal/domain/inventory"
)

// MachineBilan consumo acumulado de una máquina.
type MachineBilan struct {
	MachineID     string          `json:"id"`
	Name          string          `json:"name"`
	TruckPlate    string          `json:"truckPlate"`
	TotalLiters   decimal.Decimal `json:"totalLiters"`
	TotalConsumed decimal.Decimal `json:"totalConsumed"`
}

// GasoilBilan bilan de gasoil: consumo por máquina y stock global.
type GasoilBilan struct {
	Machines            []MachineBilan  `json:"truckers"`
	TotalGlobal         decimal.Decimal `json:"totalGlobal"`
	TotalGlobalConsumed decimal.Decimal `json:"totalGlobalConsumed"`
	TotalAppro          decimal.Decimal `json:"totalAppro"`
	Restante            decimal.Decimal `json:"restante"`
	PrixMoyen           decimal.Decimal `json:"prixMoyen"` // precio medio ponderado por litro
}

// BuildGasoilBilan calcula el bilan de gasoil. Los totales globales cubren todas
// las entregas, también las de máquinas ya eliminadas, para que Restante coincida con RemainingStock.
func BuildGasoilBilan(machines []entity.Machine, attributions []entity.Attribution, resupplies []entity.Resupply) GasoilBilan {
	plain, chrono := Partition(attributions)

	byID := make(map[string]int, len(machines))
	byPlate := make(map[string]int, len(machines))
	rows := make([]MachineBilan, len(machines))
	for i, m := range machines {
		rows[i] = MachineBilan{MachineID: m.ID, Name: m.Name, TruckPlate: m.TruckPlate, TotalLiters: decimal.Zero, TotalConsumed: decimal.Zero}
		byID[m.ID] = i
		byPlate[strings.TrimSpace(m.TruckPlate)] = i
	}
	row := func(a entity.Attribution) (int, bool) {
		if a.MachineID != "" {
			i, ok := byID[a.MachineID]
			return i, ok
		}
		i, ok := byPlate[strings.TrimSpace(a.TruckPlate)]
		return i, ok
	}
	for _, a := range plain {
		if i, ok := row(a); ok {
			rows[i].TotalLiters = rows[i].TotalLiters.Add(Liters(a))
		}
	}
	for _, a := range chrono {
		if i, ok := row(a); ok {
			rows[i].TotalConsumed = rows[i].TotalConsumed.Add(GasoilConsumed(a))
		}
	}

	quantities := make([]decimal.Decimal, len(resupplies))
	prices := make([]decimal.Decimal, len(resupplies))
	for i, r := range resupplies {
		quantities[i], prices[i] = r.Quantity, r.UnitPrice
	}

	b := &Bilan{TotalAppro: SumField(resupplies, ResupplyQuantity)}
	total := TotalLiters(plain)
	return GasoilBilan{
		Machines:            rows,
		TotalGlobal:         total,
		TotalGlobalConsumed: SumField(chrono, GasoilConsumed),
		TotalAppro:          b.TotalAppro,
		Restante:            RemainingStock(b, total),
		PrixMoyen:           inventory.AverageUnitPrice(quantities, prices),
	}
}

// MaintenanceGroup gasto de mantenimiento agregado por artículo.
type MaintenanceGroup struct {
	ItemName      string          `json:"itemName"`
	TotalQuantity decimal.Decimal `json:"totalQuantity"`
	TotalAmount   decimal.Decimal `json:"totalAmount"`
}

// FinancialBilan bilan completo: saldo de las máquinas menos los gastos.
type FinancialBilan struct {
	SoldeInitial       decimal.Decimal    `json:"soldeInitial"`
	DepenseGasoil      decimal.Decimal    `json:"depenseGasoil"`
	DepenseMaintenance decimal.Decimal    `json:"depenseMaintenance"`
	SoldeActuel        decimal.Decimal    `json:"soldeActuel"`
	Maintenance        []MaintenanceGroup `json:"maintenance"`
}

// BuildFinancialBilan SoldeActuel = Σ saldos − Σ approvisionnements − Σ mantenimiento, mínimo 0.
func BuildFinancialBilan(machines []entity.Machine, resupplies []entity.Resupply, maintenance []entity.Maintenance) FinancialBilan {
	initial := decimal.Zero
	for _, m := range machines {
		initial = initial.Add(m.Balance)
	}
	fuel := SumField(resupplies, ResupplyAmount)

	spent := decimal.Zero
	groups := make(map[string]*MaintenanceGroup)
	for _, m := range maintenance {
		spent = spent.Add(m.TotalPrice)
		g, ok := groups[m.ItemName]
		if !ok {
			g = &MaintenanceGroup{ItemName: m.ItemName, TotalQuantity: decimal.Zero, TotalAmount: decimal.Zero}
			groups[m.ItemName] = g
		}
		g.TotalQuantity = g.TotalQuantity.Add(m.Quantity)
		g.TotalAmount = g.TotalAmount.Add(m.TotalPrice)
	}
	items := make([]MaintenanceGroup, 0, len(groups))
	for _, g := range groups {
		items = append(items, *g)
	}
	slices.SortFunc(items, func(a, b MaintenanceGroup) int { return strings.Compare(a.ItemName, b.ItemName) })

	current := initial.Sub(fuel).Sub(spent)
	if current.IsNegative() {
		current = decimal.Zero
	}
	return FinancialBilan{
		SoldeInitial:       initial,
		DepenseGasoil:      fuel,
		DepenseMaintenance: spent,
		SoldeActuel:        current,
		Maintenance:        items,
	}
}
