package usecase

import (
	"context"
	"strings"
	"time"
	"unicode"

	"github.com/google/uuid"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"

	"github.com/jhoicas/minegest-api/internal/application/dto"
	"github.com/jhoicas/minegest-api/internal/domain"
	"github.com/jhoicas/minegest-api/internal/domain/entity"
	"github.com/jhoicas/minegest-api/internal/domain/repository"
)

// ResupplyUseCase approvisionnements de gasoil.
type ResupplyUseCase struct {
	repo repository.ResupplyRepository
}

// NewResupplyUseCase construye el caso de uso.
func NewResupplyUseCase(repo repository.ResupplyRepository) *ResupplyUseCase {
	return &ResupplyUseCase{repo: repo}
}

// Create registra la entrada de stock; el montant total se calcula aquí.
func (uc *ResupplyUseCase) Create(ctx context.Context, ownerID string, in dto.CreateResupplyRequest) (*dto.ResupplyResponse, error) {
	if !in.Quantite.IsPositive() || in.PrixUnitaire.IsNegative() || strings.TrimSpace(in.Fournisseur) == "" {
		return nil, domain.ErrInvalidInput
	}
	now := time.Now()
	date := now
	if in.Date != nil && !in.Date.IsZero() {
		date = *in.Date
	}
	r := &entity.Resupply{
		ID:          uuid.New().String(),
		OwnerID:     ownerID,
		Date:        date,
		Supplier:    strings.TrimSpace(in.Fournisseur),
		Quantity:    in.Quantite,
		UnitPrice:   in.PrixUnitaire,
		TotalAmount: in.Quantite.Mul(in.PrixUnitaire).Round(2),
		Receiver:    strings.TrimSpace(in.Receptionniste),
		CreatedAt:   now,
	}
	if err := uc.repo.Create(ctx, r); err != nil {
		return nil, err
	}
	res := ToResupplyResponse(r)
	return &res, nil
}

// List approvisionnements más recientes primero. search filtra por fournisseur
// sin distinguir mayúsculas ni acentos.
func (uc *ResupplyUseCase) List(ctx context.Context, ownerID, search string) ([]dto.ResupplyResponse, error) {
	list, err := uc.repo.ListByOwner(ctx, ownerID)
	if err != nil {
		return nil, err
	}
	needle := foldText(search)
	out := make([]dto.ResupplyResponse, 0, len(list))
	for _, r := range list {
		if needle != "" && !strings.Contains(foldText(r.Supplier), needle) {
			continue
		}
		out = append(out, ToResupplyResponse(r))
	}
	return out, nil
}

// Delete elimina un approvisionnement del dueño.
func (uc *ResupplyUseCase) Delete(ctx context.Context, ownerID, id string) error {
	return uc.repo.Delete(ctx, ownerID, id)
}

// foldText minúsculas sin diacríticos: "Société" → "societe".
func foldText(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	out, _, err := transform.String(t, s)
	if err != nil {
		out = s
	}
	return strings.ToLower(strings.TrimSpace(out))
}

// ToResupplyResponse proyección de un approvisionnement.
func ToResupplyResponse(r *entity.Resupply) dto.ResupplyResponse {
	return dto.ResupplyResponse{
		ID:             r.ID,
		Date:           r.Date,
		Fournisseur:    r.Supplier,
		Quantite:       r.Quantity,
		PrixUnitaire:   r.UnitPrice,
		MontantTotal:   r.TotalAmount,
		Receptionniste: r.Receiver,
	}
}
