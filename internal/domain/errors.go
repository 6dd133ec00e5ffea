package domain

import "errors"

// Errores de dominio (sin dependencias externas).
// Los mensajes se devuelven tal cual al cliente, por eso van en francés.
var (
	ErrNotFound            = errors.New("ressource introuvable")
	ErrUserNotFound        = errors.New("utilisateur introuvable")
	ErrUsernameTaken       = errors.New("nom d'utilisateur déjà utilisé")
	ErrInvalidCredentials  = errors.New("identifiants invalides")
	ErrInvalidInput        = errors.New("entrée invalide")
	ErrDuplicate           = errors.New("ressource en double")
	ErrUnauthorized        = errors.New("non autorisé")
	ErrForbidden           = errors.New("accès refusé")
	ErrConflict            = errors.New("conflit avec l'état actuel")
	ErrInsufficientStock   = errors.New("stock insuffisant")
	ErrInsufficientBalance = errors.New("solde insuffisant")
	ErrFuelCapExceeded     = errors.New("limite de gasoil dépassée")
	ErrAlreadyInitialized  = errors.New("un administrateur existe déjà")
)
