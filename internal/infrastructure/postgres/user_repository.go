package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/minegest-api/internal/domain"
	"github.com/jhoicas/minegest-api/internal/domain/entity"
	"github.com/jhoicas/minegest-api/internal/domain/repository"
)

var (
	_ repository.UserRepository   = (*UserRepo)(nil)
	_ repository.ActionRepository = (*ActionRepo)(nil)
)

// UserRepo implementación del puerto UserRepository sobre PostgreSQL.
type UserRepo struct {
	q Querier
}

// NewUserRepository construye el adaptador de persistencia para usuarios.
func NewUserRepository(q Querier) *UserRepo {
	return &UserRepo{q: q}
}

const userColumns = `id, username, password_hash, role, manager_id, created_at`

func scanUser(row pgx.Row) (*entity.User, error) {
	var (
		u         entity.User
		managerID *string
	)
	if err := row.Scan(&u.ID, &u.Username, &u.PasswordHash, &u.Role, &managerID, &u.CreatedAt); err != nil {
		return nil, err
	}
	u.ManagerID = fromNullable(managerID)
	return &u, nil
}

// Create persiste un usuario. Username repetido devuelve ErrUsernameTaken.
func (r *UserRepo) Create(ctx context.Context, u *entity.User) error {
	query := `INSERT INTO users (` + userColumns + `) VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := r.q.Exec(ctx, query, u.ID, u.Username, u.PasswordHash, u.Role, nullIfEmpty(u.ManagerID), u.CreatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrUsernameTaken
		}
		return fmt.Errorf("insert user: %w", err)
	}
	return nil
}

// GetByID obtiene un usuario por ID; nil si no existe.
func (r *UserRepo) GetByID(ctx context.Context, id string) (*entity.User, error) {
	u, err := scanUser(r.q.QueryRow(ctx, `SELECT `+userColumns+` FROM users WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) || isInvalidText(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get user: %w", err)
	}
	return u, nil
}

// GetByUsername obtiene un usuario por nombre; nil si no existe.
func (r *UserRepo) GetByUsername(ctx context.Context, username string) (*entity.User, error) {
	u, err := scanUser(r.q.QueryRow(ctx, `SELECT `+userColumns+` FROM users WHERE username = $1`, username))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get user by username: %w", err)
	}
	return u, nil
}

// CountByRole número de usuarios con el rol.
func (r *UserRepo) CountByRole(ctx context.Context, role string) (int, error) {
	var n int
	if err := r.q.QueryRow(ctx, `SELECT COUNT(*) FROM users WHERE role = $1`, role).Scan(&n); err != nil {
		return 0, fmt.Errorf("count users: %w", err)
	}
	return n, nil
}

// ListSellers vendeurs de un gestionnaire.
func (r *UserRepo) ListSellers(ctx context.Context, managerID string) ([]*entity.User, error) {
	return r.list(ctx, `SELECT `+userColumns+` FROM users
		WHERE manager_id = $1 AND role = 'Vendeur' ORDER BY created_at DESC`, managerID)
}

// ListByOwner el gestionnaire y sus vendeurs.
func (r *UserRepo) ListByOwner(ctx context.Context, ownerID string) ([]*entity.User, error) {
	return r.list(ctx, `SELECT `+userColumns+` FROM users
		WHERE id = $1 OR manager_id = $1 ORDER BY created_at`, ownerID)
}

func (r *UserRepo) list(ctx context.Context, query string, args ...any) ([]*entity.User, error) {
	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	defer rows.Close()
	list := make([]*entity.User, 0)
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, fmt.Errorf("scan user: %w", err)
		}
		list = append(list, u)
	}
	return list, rows.Err()
}

// ActionRepo journal de actividad sobre PostgreSQL.
type ActionRepo struct {
	q Querier
}

// NewActionRepository construye el adaptador del journal.
func NewActionRepository(q Querier) *ActionRepo {
	return &ActionRepo{q: q}
}

// Create registra una acción. Los detalles se guardan como JSONB.
func (r *ActionRepo) Create(ctx context.Context, a *entity.Action) error {
	details := a.Details
	if details == nil {
		details = map[string]any{}
	}
	raw, err := json.Marshal(details)
	if err != nil {
		return fmt.Errorf("marshal action details: %w", err)
	}
	_, err = r.q.Exec(ctx,
		`INSERT INTO actions (id, user_id, username, action, details, created_at) VALUES ($1, $2, $3, $4, $5, $6)`,
		a.ID, nullIfEmpty(a.UserID), a.Username, a.Action, raw, a.Timestamp,
	)
	if err != nil {
		return fmt.Errorf("insert action: %w", err)
	}
	return nil
}

// ListByUsername últimas acciones de un usuario.
func (r *ActionRepo) ListByUsername(ctx context.Context, username string, limit int) ([]*entity.Action, error) {
	rows, err := r.q.Query(ctx, `
		SELECT id, user_id, username, action, details, created_at
		FROM actions WHERE username = $1 ORDER BY created_at DESC LIMIT $2`, username, limit)
	if err != nil {
		return nil, fmt.Errorf("list actions: %w", err)
	}
	defer rows.Close()
	list := make([]*entity.Action, 0)
	for rows.Next() {
		var (
			a      entity.Action
			userID *string
			raw    []byte
		)
		if err := rows.Scan(&a.ID, &userID, &a.Username, &a.Action, &raw, &a.Timestamp); err != nil {
			return nil, fmt.Errorf("scan action: %w", err)
		}
		a.UserID = fromNullable(userID)
		if len(raw) > 0 {
			if err := json.Unmarshal(raw, &a.Details); err != nil {
				return nil, fmt.Errorf("unmarshal action details: %w", err)
			}
		}
		list = append(list, &a)
	}
	return list, rows.Err()
}
