package entity

import "time"

// Roles de la aplicación.
const (
	RoleAdmin    = "admin"
	RoleOperario = "operario"
)

// User usuario interno de la fábrica.
type User struct {
	ID           string
	Email        string
	PasswordHash string // bcrypt, nunca en texto plano después de persistir
	Name         string
	Role         string // admin | operario
	Status       string // active, inactive
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
