package auth

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/minegest-api/internal/application/dto"
	"github.com/jhoicas/minegest-api/internal/domain"
	"github.com/jhoicas/minegest-api/internal/domain/entity"
	"github.com/jhoicas/minegest-api/internal/domain/repository"
	"github.com/jhoicas/minegest-api/pkg/jwt"
	"github.com/jhoicas/minegest-api/pkg/logger"
)

// Credenciales del primer administrador creado por InitAdmin.
const (
	DefaultAdminUsername = "admin"
	DefaultAdminPassword = "password123"
)

// Nombres de acciones del journal.
const (
	ActionLogin       = "login"
	ActionRegister    = "register"
	ActionSellerAdded = "seller_added"
	ActionInitAdmin   = "init_admin"
)

const minPasswordLen = 6

// JWTConfig configuración para generación de tokens.
type JWTConfig struct {
	Secret     string
	ExpMinutes int
	Issuer     string
}

// AuthUseCase casos de uso de autenticación y gestión de vendeurs.
type AuthUseCase struct {
	userRepo   repository.UserRepository
	actionRepo repository.ActionRepository
	jwtCfg     JWTConfig
	log        *logger.Logger
}

// NewAuthUseCase construye el caso de uso de auth.
func NewAuthUseCase(userRepo repository.UserRepository, actionRepo repository.ActionRepository, jwtCfg JWTConfig, log *logger.Logger) *AuthUseCase {
	if log == nil {
		log = logger.Nop()
	}
	return &AuthUseCase{userRepo: userRepo, actionRepo: actionRepo, jwtCfg: jwtCfg, log: log.Component("auth")}
}

// Register alta pública de un gestionnaire.
func (uc *AuthUseCase) Register(ctx context.Context, in dto.RegisterRequest) (*dto.UserResponse, error) {
	user, err := uc.createUser(ctx, in.Username, in.Password, entity.RoleGestionnaire, "")
	if err != nil {
		return nil, err
	}
	uc.record(ctx, user, ActionRegister, nil)
	return toUserResponse(user), nil
}

// Login verifica username/password, genera JWT y retorna token + usuario.
func (uc *AuthUseCase) Login(ctx context.Context, in dto.LoginRequest) (*dto.LoginResponse, error) {
	user, err := uc.userRepo.GetByUsername(ctx, strings.TrimSpace(in.Username))
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(in.Password)); err != nil {
		return nil, domain.ErrInvalidCredentials
	}
	token, err := jwt.Generate(uc.jwtCfg.Secret, jwt.Identity{
		UserID:   user.ID,
		OwnerID:  user.OwnerID(),
		Username: user.Username,
		Role:     user.Role,
	}, uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes)
	if err != nil {
		return nil, fmt.Errorf("generate token: %w", err)
	}
	uc.record(ctx, user, ActionLogin, nil)
	return &dto.LoginResponse{Token: token, User: *toUserResponse(user)}, nil
}

// InitAdmin crea admin/password123 como gestionnaire si todavía no existe ninguno.
func (uc *AuthUseCase) InitAdmin(ctx context.Context) (*dto.UserResponse, error) {
	n, err := uc.userRepo.CountByRole(ctx, entity.RoleGestionnaire)
	if err != nil {
		return nil, err
	}
	if n > 0 {
		return nil, domain.ErrAlreadyInitialized
	}
	user, err := uc.createUser(ctx, DefaultAdminUsername, DefaultAdminPassword, entity.RoleGestionnaire, "")
	if err != nil {
		return nil, err
	}
	uc.record(ctx, user, ActionInitAdmin, nil)
	uc.log.Warn().Str("username", user.Username).Msg("administrador inicial creado con la contraseña por defecto")
	return toUserResponse(user), nil
}

// AddSeller crea un vendeur ligado al gestionnaire managerID.
func (uc *AuthUseCase) AddSeller(ctx context.Context, managerID string, in dto.AddSellerRequest) (*dto.UserResponse, error) {
	manager, err := uc.userRepo.GetByID(ctx, managerID)
	if err != nil {
		return nil, err
	}
	if manager == nil {
		return nil, domain.ErrUserNotFound
	}
	if manager.Role != entity.RoleGestionnaire {
		return nil, domain.ErrForbidden
	}
	seller, err := uc.createUser(ctx, in.Username, in.Password, entity.RoleVendeur, manager.ID)
	if err != nil {
		return nil, err
	}
	uc.record(ctx, manager, ActionSellerAdded, map[string]any{"seller": seller.Username})
	return toUserResponse(seller), nil
}

// ListSellers vendeurs del gestionnaire.
func (uc *AuthUseCase) ListSellers(ctx context.Context, managerID string) ([]dto.UserResponse, error) {
	users, err := uc.userRepo.ListSellers(ctx, managerID)
	if err != nil {
		return nil, err
	}
	return toUserResponses(users), nil
}

// ListUsers el gestionnaire y sus vendeurs.
func (uc *AuthUseCase) ListUsers(ctx context.Context, ownerID string) ([]dto.UserResponse, error) {
	users, err := uc.userRepo.ListByOwner(ctx, ownerID)
	if err != nil {
		return nil, err
	}
	return toUserResponses(users), nil
}

// Me devuelve el usuario autenticado.
func (uc *AuthUseCase) Me(ctx context.Context, userID string) (*dto.UserResponse, error) {
	user, err := uc.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUserNotFound
	}
	return toUserResponse(user), nil
}

func (uc *AuthUseCase) createUser(ctx context.Context, username, password, role, managerID string) (*entity.User, error) {
	username = strings.TrimSpace(username)
	if username == "" || len(password) < minPasswordLen {
		return nil, domain.ErrInvalidInput
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}
	user := &entity.User{
		ID:           uuid.New().String(),
		Username:     username,
		PasswordHash: string(hash),
		Role:         role,
		ManagerID:    managerID,
		CreatedAt:    time.Now(),
	}
	if err := uc.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// record escribe en el journal; un fallo aquí no invalida la operación.
func (uc *AuthUseCase) record(ctx context.Context, user *entity.User, action string, details map[string]any) {
	if uc.actionRepo == nil {
		return
	}
	err := uc.actionRepo.Create(ctx, &entity.Action{
		ID:        uuid.New().String(),
		UserID:    user.ID,
		Username:  user.Username,
		Action:    action,
		Details:   details,
		Timestamp: time.Now(),
	})
	if err != nil {
		uc.log.Warn().Err(err).Str("action", action).Str("username", user.Username).Msg("no se pudo registrar la acción")
	}
}

func toUserResponse(u *entity.User) *dto.UserResponse {
	if u == nil {
		return nil
	}
	return &dto.UserResponse{
		ID:        u.ID,
		Username:  u.Username,
		Role:      u.Role,
		ManagerID: u.ManagerID,
		CreatedAt: u.CreatedAt,
	}
}

func toUserResponses(users []*entity.User) []dto.UserResponse {
	out := make([]dto.UserResponse, 0, len(users))
	for _, u := range users {
		out = append(out, *toUserResponse(u))
	}
	return out
}
