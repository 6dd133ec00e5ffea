package repository

import (
	"context"

	"github.com/jhoicas/minegest-api/internal/domain/entity"
)

// UserRepository define el puerto de persistencia para User (DIP).
type UserRepository interface {
	Create(ctx context.Context, user *entity.User) error
	GetByID(ctx context.Context, id string) (*entity.User, error)
	GetByUsername(ctx context.Context, username string) (*entity.User, error)
	// CountByRole usado por la inicialización del primer administrador.
	CountByRole(ctx context.Context, role string) (int, error)
	ListSellers(ctx context.Context, managerID string) ([]*entity.User, error)
	// ListByOwner el gestionnaire y sus vendeurs.
	ListByOwner(ctx context.Context, ownerID string) ([]*entity.User, error)
}

// ActionRepository journal de actividad.
type ActionRepository interface {
	Create(ctx context.Context, action *entity.Action) error
	ListByUsername(ctx context.Context, username string, limit int) ([]*entity.Action, error)
}
