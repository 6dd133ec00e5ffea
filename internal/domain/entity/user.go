package entity

import "time"

// Roles válidos para User.
const (
	RoleGestionnaire = "Gestionnaire"
	RoleVendeur      = "Vendeur"
)

// User usuario del sistema. Un Vendeur pertenece a un Gestionnaire (ManagerID).
type User struct {
	ID           string
	Username     string
	PasswordHash string // bcrypt hash, nunca plano en dominio después de persistir
	Role         string
	ManagerID    string // vacío para Gestionnaire
	CreatedAt    time.Time
}

// OwnerID gestionnaire dueño de los datos sobre los que actúa el usuario.
func (u *User) OwnerID() string {
	if u.Role == RoleVendeur && u.ManagerID != "" {
		return u.ManagerID
	}
	return u.ID
}

// Action entrada del journal de actividad de un usuario.
type Action struct {
	ID        string
	UserID    string
	Username  string
	Action    string
	Details   map[string]any
	Timestamp time.Time
}
