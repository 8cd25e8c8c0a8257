package entity

import "time"

// Roles de usuario.
const (
	RoleAdmin      = "admin"
	RoleAlmacenero = "almacenero"
	RoleCocinero   = "cocinero"
)

// User representa un usuario del sistema con su rol para RBAC.
type User struct {
	ID           string
	Email        string
	Name         string
	PasswordHash string
	Role         string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
