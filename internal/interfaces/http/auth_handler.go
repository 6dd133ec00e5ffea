package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/minegest-api/internal/application/auth"
	"github.com/jhoicas/minegest-api/internal/application/dto"
)

// AuthHandler maneja login, registro y gestión de vendeurs.
type AuthHandler struct {
	uc *auth.AuthUseCase
}

// NewAuthHandler construye el handler de auth.
func NewAuthHandler(uc *auth.AuthUseCase) *AuthHandler {
	return &AuthHandler{uc: uc}
}

// Register godoc
// @Summary      Registrar gestionnaire
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body  dto.RegisterRequest  true  "username, password"
// @Success      201   {object}  dto.UserResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/auth/register [post]
func (h *AuthHandler) Register(c *fiber.Ctx) error {
	var in dto.RegisterRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	user, err := h.uc.Register(c.Context(), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(user)
}

// Login godoc
// @Summary      Iniciar sesión
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body  dto.LoginRequest  true  "username, password"
// @Success      200   {object}  dto.LoginResponse
// @Failure      401   {object}  dto.ErrorResponse
// @Router       /api/auth/login [post]
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var in dto.LoginRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	if in.Username == "" || in.Password == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "username et password sont requis"})
	}
	out, err := h.uc.Login(c.Context(), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// InitAdmin godoc
// @Summary      Crear el primer administrador (admin / password123)
// @Tags         auth
// @Produce      json
// @Success      201   {object}  dto.UserResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/admin/init [post]
func (h *AuthHandler) InitAdmin(c *fiber.Ctx) error {
	user, err := h.uc.InitAdmin(c.Context())
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(user)
}

// Me GET /api/auth/me
func (h *AuthHandler) Me(c *fiber.Ctx) error {
	userID := GetUserID(c)
	if userID == "" {
		return unauthorized(c)
	}
	user, err := h.uc.Me(c.Context(), userID)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(user)
}

// AddSeller POST /api/users/sellers (solo Gestionnaire)
func (h *AuthHandler) AddSeller(c *fiber.Ctx) error {
	var in dto.AddSellerRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	seller, err := h.uc.AddSeller(c.Context(), GetUserID(c), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(seller)
}

// ListSellers GET /api/users/sellers (solo Gestionnaire)
func (h *AuthHandler) ListSellers(c *fiber.Ctx) error {
	list, err := h.uc.ListSellers(c.Context(), GetUserID(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(list)
}

// ListUsers GET /api/users (solo Gestionnaire)
func (h *AuthHandler) ListUsers(c *fiber.Ctx) error {
	list, err := h.uc.ListUsers(c.Context(), GetOwnerID(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(list)
}
