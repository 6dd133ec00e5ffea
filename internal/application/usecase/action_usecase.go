package usecase

import (
	"context"

	"github.com/jhoicas/minegest-api/internal/application/dto"
	"github.com/jhoicas/minegest-api/internal/domain/repository"
)

const defaultActionsLimit = 100

// ActionUseCase consulta del journal de actividad.
type ActionUseCase struct {
	repo repository.ActionRepository
}

// NewActionUseCase construye el caso de uso con el puerto de persistencia.
func NewActionUseCase(repo repository.ActionRepository) *ActionUseCase {
	return &ActionUseCase{repo: repo}
}

// ListByUsername últimas acciones del usuario; limit <= 0 usa el valor por defecto.
func (uc *ActionUseCase) ListByUsername(ctx context.Context, username string, limit int) ([]dto.ActionResponse, error) {
	if limit <= 0 {
		limit = defaultActionsLimit
	}
	list, err := uc.repo.ListByUsername(ctx, username, limit)
	if err != nil {
		return nil, err
	}
	out := make([]dto.ActionResponse, 0, len(list))
	for _, a := range list {
		out = append(out, dto.ActionResponse{
			ID:        a.ID,
			Username:  a.Username,
			Action:    a.Action,
			Details:   a.Details,
			Timestamp: a.Timestamp,
		})
	}
	return out, nil
}
