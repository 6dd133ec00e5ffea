package gasoil

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/minegest-api/internal/domain"
)

// FuelCaps tope de litros por entrega, indexado por placa en mayúsculas.
type FuelCaps map[string]decimal.Decimal

// DefaultFuelCaps topes históricos de los engins de la cantera.
func DefaultFuelCaps() FuelCaps {
	return FuelCaps{
		"CHARGEUSE":     decimal.NewFromInt(300),
		"GRANDE DRAGUE": decimal.NewFromInt(200),
		"PETITE DRAGUE": decimal.NewFromInt(100),
	}
}

// ParseFuelCaps lee "CHARGEUSE=300,GRANDE DRAGUE=200". Vacío devuelve los topes por defecto.
func ParseFuelCaps(s string) (FuelCaps, error) {
	if strings.TrimSpace(s) == "" {
		return DefaultFuelCaps(), nil
	}
	caps := make(FuelCaps)
	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		name, limit, ok := strings.Cut(part, "=")
		if !ok {
			return nil, fmt.Errorf("fuel caps: entrada sin '=': %q", part)
		}
		d, err := decimal.NewFromString(strings.TrimSpace(limit))
		if err != nil || !d.IsPositive() {
			return nil, fmt.Errorf("fuel caps: límite inválido para %q: %q", name, limit)
		}
		caps[strings.ToUpper(strings.TrimSpace(name))] = d
	}
	return caps, nil
}

// CapExceededError entrega por encima del tope de la máquina.
type CapExceededError struct {
	Plate string
	Limit decimal.Decimal
}

func (e *CapExceededError) Error() string {
	return fmt.Sprintf("%s ne peut pas recevoir plus de %s litres", e.Plate, e.Limit.String())
}

func (e *CapExceededError) Unwrap() error { return domain.ErrFuelCapExceeded }

// Limit tope de la máquina; ok=false si no tiene.
func (c FuelCaps) Limit(plate string) (decimal.Decimal, bool) {
	d, ok := c[strings.ToUpper(strings.TrimSpace(plate))]
	return d, ok
}

// Check valida una entrega contra el tope. Máquinas sin tope aceptan cualquier cantidad.
func (c FuelCaps) Check(plate string, liters decimal.Decimal) error {
	limit, ok := c.Limit(plate)
	if !ok {
		return nil
	}
	if liters.GreaterThan(limit) {
		return &CapExceededError{Plate: strings.TrimSpace(plate), Limit: limit}
	}
	return nil
}
