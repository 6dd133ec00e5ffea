// Package memstore implementa en memoria los puertos de persistencia.
// Lo usan los tests de los casos de uso y de los handlers HTTP.
package memstore

import (
	"context"
	"slices"
	"strings"
	"sync"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/minegest-api/internal/application/ports"
	"github.com/jhoicas/minegest-api/internal/domain"
	"github.com/jhoicas/minegest-api/internal/domain/entity"
	"github.com/jhoicas/minegest-api/internal/domain/repository"
)

var (
	_ repository.MachineRepository     = (*Machines)(nil)
	_ repository.AttributionRepository = (*Attributions)(nil)
	_ repository.ResupplyRepository    = (*Resupplies)(nil)
	_ repository.MaintenanceRepository = (*Maintenance)(nil)
	_ repository.InvoiceRepository     = (*Invoices)(nil)
	_ repository.UserRepository        = (*Users)(nil)
	_ repository.ActionRepository      = (*Actions)(nil)
	_ ports.OwnerTxRunner              = (*Store)(nil)
)

// Store datos compartidos por todos los repositorios en memoria.
type Store struct {
	mu      sync.Mutex
	txMu    sync.Mutex
	machine []*entity.Machine
	credits []*entity.Credit
	attrs   []*entity.Attribution
	resup   []*entity.Resupply
	maint   []*entity.Maintenance
	invs    []*entity.Invoice
	users   []*entity.User
	actions []*entity.Action

	Machines     *Machines
	Attributions *Attributions
	Resupplies   *Resupplies
	Maintenance  *Maintenance
	Invoices     *Invoices
	Users        *Users
	Actions      *Actions
}

// New crea un store vacío.
func New() *Store {
	s := &Store{}
	s.Machines = &Machines{s}
	s.Attributions = &Attributions{s}
	s.Resupplies = &Resupplies{s}
	s.Maintenance = &Maintenance{s}
	s.Invoices = &Invoices{s}
	s.Users = &Users{s}
	s.Actions = &Actions{s}
	return s
}

// RunForOwner serializa los callbacks; no hay rollback en memoria.
func (s *Store) RunForOwner(_ context.Context, _ string, fn func(
	machines repository.MachineRepository,
	attributions repository.AttributionRepository,
	resupplies repository.ResupplyRepository,
	maintenance repository.MaintenanceRepository,
) error) error {
	s.txMu.Lock()
	defer s.txMu.Unlock()
	return fn(s.Machines, s.Attributions, s.Resupplies, s.Maintenance)
}

func cloneOf[T any](v *T) *T {
	c := *v
	return &c
}

func deleteWhere[T any](list []*T, match func(*T) bool) ([]*T, bool) {
	i := slices.IndexFunc(list, match)
	if i < 0 {
		return list, false
	}
	return slices.Delete(list, i, i+1), true
}

// ── Machines ─────────────────────────────────────────────────────────────────

type Machines struct{ s *Store }

func (r *Machines) Create(_ context.Context, m *entity.Machine) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, x := range r.s.machine {
		if x.OwnerID == m.OwnerID && x.TruckPlate == m.TruckPlate {
			return domain.ErrDuplicate
		}
	}
	r.s.machine = append(r.s.machine, cloneOf(m))
	return nil
}

func (r *Machines) GetByID(_ context.Context, ownerID, id string) (*entity.Machine, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, x := range r.s.machine {
		if x.OwnerID == ownerID && x.ID == id {
			return cloneOf(x), nil
		}
	}
	return nil, nil
}

func (r *Machines) GetByPlate(_ context.Context, ownerID, plate string) (*entity.Machine, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, x := range r.s.machine {
		if x.OwnerID == ownerID && x.TruckPlate == plate {
			return cloneOf(x), nil
		}
	}
	return nil, nil
}

func (r *Machines) ListByOwner(_ context.Context, ownerID, plate string) ([]*entity.Machine, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var out []*entity.Machine
	for _, x := range r.s.machine {
		if x.OwnerID == ownerID && (plate == "" || x.TruckPlate == plate) {
			out = append(out, cloneOf(x))
		}
	}
	return out, nil
}

func (r *Machines) AddCredit(_ context.Context, c *entity.Credit) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, x := range r.s.machine {
		if x.OwnerID == c.OwnerID && x.ID == c.MachineID {
			x.Balance = x.Balance.Add(c.Amount)
			r.s.credits = append(r.s.credits, cloneOf(c))
			return nil
		}
	}
	return domain.ErrNotFound
}

func (r *Machines) ListCredits(_ context.Context, ownerID, machineID string) ([]*entity.Credit, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var out []*entity.Credit
	for _, c := range r.s.credits {
		if c.OwnerID == ownerID && c.MachineID == machineID {
			out = append(out, cloneOf(c))
		}
	}
	slices.SortStableFunc(out, func(a, b *entity.Credit) int { return b.Date.Compare(a.Date) })
	return out, nil
}

func (r *Machines) TotalCredits(_ context.Context, ownerID string) (decimal.Decimal, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	total := decimal.Zero
	for _, c := range r.s.credits {
		if c.OwnerID == ownerID {
			total = total.Add(c.Amount)
		}
	}
	return total, nil
}

// ── Attributions ─────────────────────────────────────────────────────────────

type Attributions struct{ s *Store }

func (r *Attributions) Create(_ context.Context, a *entity.Attribution) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.attrs = append(r.s.attrs, cloneOf(a))
	return nil
}

func (r *Attributions) ListByOwner(_ context.Context, ownerID string) ([]*entity.Attribution, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var out []*entity.Attribution
	for _, a := range r.s.attrs {
		if a.OwnerID == ownerID {
			out = append(out, cloneOf(a))
		}
	}
	slices.SortStableFunc(out, func(a, b *entity.Attribution) int { return b.Date.Compare(a.Date) })
	return out, nil
}

func (r *Attributions) TotalLiters(_ context.Context, ownerID string) (decimal.Decimal, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	total := decimal.Zero
	for _, a := range r.s.attrs {
		if a.OwnerID == ownerID && a.Kind == entity.KindAttribution && a.Liters.Valid {
			total = total.Add(a.Liters.Decimal)
		}
	}
	return total, nil
}

func (r *Attributions) Delete(_ context.Context, ownerID, id string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var ok bool
	r.s.attrs, ok = deleteWhere(r.s.attrs, func(a *entity.Attribution) bool { return a.OwnerID == ownerID && a.ID == id })
	if !ok {
		return domain.ErrNotFound
	}
	return nil
}

// ── Resupplies ───────────────────────────────────────────────────────────────

type Resupplies struct{ s *Store }

func (r *Resupplies) Create(_ context.Context, x *entity.Resupply) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.resup = append(r.s.resup, cloneOf(x))
	return nil
}

func (r *Resupplies) ListByOwner(_ context.Context, ownerID string) ([]*entity.Resupply, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var out []*entity.Resupply
	for _, x := range r.s.resup {
		if x.OwnerID == ownerID {
			out = append(out, cloneOf(x))
		}
	}
	slices.SortStableFunc(out, func(a, b *entity.Resupply) int { return b.Date.Compare(a.Date) })
	return out, nil
}

func (r *Resupplies) Totals(_ context.Context, ownerID string) (decimal.Decimal, decimal.Decimal, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	qty, amount := decimal.Zero, decimal.Zero
	for _, x := range r.s.resup {
		if x.OwnerID == ownerID {
			qty = qty.Add(x.Quantity)
			amount = amount.Add(x.TotalAmount)
		}
	}
	return qty, amount, nil
}

func (r *Resupplies) Delete(_ context.Context, ownerID, id string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var ok bool
	r.s.resup, ok = deleteWhere(r.s.resup, func(x *entity.Resupply) bool { return x.OwnerID == ownerID && x.ID == id })
	if !ok {
		return domain.ErrNotFound
	}
	return nil
}

// ── Maintenance ──────────────────────────────────────────────────────────────

type Maintenance struct{ s *Store }

func (r *Maintenance) Create(_ context.Context, m *entity.Maintenance) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.maint = append(r.s.maint, cloneOf(m))
	return nil
}

func (r *Maintenance) ListByOwner(_ context.Context, ownerID string) ([]*entity.Maintenance, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var out []*entity.Maintenance
	for _, m := range r.s.maint {
		if m.OwnerID == ownerID {
			out = append(out, cloneOf(m))
		}
	}
	return out, nil
}

func (r *Maintenance) TotalAmount(_ context.Context, ownerID string) (decimal.Decimal, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	total := decimal.Zero
	for _, m := range r.s.maint {
		if m.OwnerID == ownerID {
			total = total.Add(m.TotalPrice)
		}
	}
	return total, nil
}

// ── Invoices ─────────────────────────────────────────────────────────────────

type Invoices struct{ s *Store }

func (r *Invoices) Create(_ context.Context, inv *entity.Invoice) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.invs = append(r.s.invs, cloneOf(inv))
	return nil
}

func (r *Invoices) GetByID(_ context.Context, ownerID, id string) (*entity.Invoice, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, inv := range r.s.invs {
		if inv.OwnerID == ownerID && inv.ID == id {
			return cloneOf(inv), nil
		}
	}
	return nil, nil
}

func (r *Invoices) ListByOwner(_ context.Context, ownerID string) ([]*entity.Invoice, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var out []*entity.Invoice
	for _, inv := range r.s.invs {
		if inv.OwnerID == ownerID {
			out = append(out, cloneOf(inv))
		}
	}
	slices.SortStableFunc(out, func(a, b *entity.Invoice) int { return b.Date.Compare(a.Date) })
	return out, nil
}

// ── Users y Actions ──────────────────────────────────────────────────────────

type Users struct{ s *Store }

func (r *Users) Create(_ context.Context, u *entity.User) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, x := range r.s.users {
		if strings.EqualFold(x.Username, u.Username) {
			return domain.ErrUsernameTaken
		}
	}
	r.s.users = append(r.s.users, cloneOf(u))
	return nil
}

func (r *Users) GetByID(_ context.Context, id string) (*entity.User, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, u := range r.s.users {
		if u.ID == id {
			return cloneOf(u), nil
		}
	}
	return nil, nil
}

func (r *Users) GetByUsername(_ context.Context, username string) (*entity.User, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, u := range r.s.users {
		if u.Username == username {
			return cloneOf(u), nil
		}
	}
	return nil, nil
}

func (r *Users) CountByRole(_ context.Context, role string) (int, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	n := 0
	for _, u := range r.s.users {
		if u.Role == role {
			n++
		}
	}
	return n, nil
}

func (r *Users) ListSellers(_ context.Context, managerID string) ([]*entity.User, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var out []*entity.User
	for _, u := range r.s.users {
		if u.ManagerID == managerID && u.Role == entity.RoleVendeur {
			out = append(out, cloneOf(u))
		}
	}
	return out, nil
}

func (r *Users) ListByOwner(_ context.Context, ownerID string) ([]*entity.User, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var out []*entity.User
	for _, u := range r.s.users {
		if u.ID == ownerID || u.ManagerID == ownerID {
			out = append(out, cloneOf(u))
		}
	}
	return out, nil
}

type Actions struct{ s *Store }

func (r *Actions) Create(_ context.Context, a *entity.Action) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.actions = append(r.s.actions, cloneOf(a))
	return nil
}

func (r *Actions) ListByUsername(_ context.Context, username string, limit int) ([]*entity.Action, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var out []*entity.Action
	for i := len(r.s.actions) - 1; i >= 0; i-- {
		if a := r.s.actions[i]; a.Username == username {
			out = append(out, cloneOf(a))
			if limit > 0 && len(out) == limit {
				break
			}
		}
	}
	return out, nil
}
