package entity

import "time"

// Roles de la aplicación. El proveedor de identidad externo asigna el rol
// como claim del token; STAFF es el valor por defecto.
type Role string

const (
	RoleAdmin Role = "ADMIN"
	RoleStaff Role = "STAFF"
)

// User vista mínima de un usuario del proveedor de identidad.
// No se persiste localmente: se deriva del token verificado.
type User struct {
	ID          string
	Email       string
	DisplayName string
	Role        Role
	CreatedAt   time.Time
}
