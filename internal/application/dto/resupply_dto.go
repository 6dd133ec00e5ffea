package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateResupplyRequest approvisionnement; el monto total lo calcula el servidor.
type CreateResupplyRequest struct {
	Date           *time.Time      `json:"date,omitempty"`
	Fournisseur    string          `json:"fournisseur"`
	Quantite       decimal.Decimal `json:"quantite"`
	PrixUnitaire   decimal.Decimal `json:"prixUnitaire"`
	Receptionniste string          `json:"receptionniste"`
}

// ResupplyResponse salida de un approvisionnement.
type ResupplyResponse struct {
	ID             string          `json:"id"`
	Date           time.Time       `json:"date"`
	Fournisseur    string          `json:"fournisseur"`
	Quantite       decimal.Decimal `json:"quantite"`
	PrixUnitaire   decimal.Decimal `json:"prixUnitaire"`
	MontantTotal   decimal.Decimal `json:"montantTotal"`
	Receptionniste string          `json:"receptionniste"`
}
