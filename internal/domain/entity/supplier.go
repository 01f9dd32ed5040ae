package entity

import "time"

// Supplier representa un proveedor del registro de proveedores.
// Los ingredientes lo referencian de forma débil (relación + lookup):
// borrar o no existir un proveedor nunca afecta a los ingredientes.
type Supplier struct {
	ID        string
	Name      string
	Contact   string
	Email     string
	Phone     string
	Address   string
	CreatedAt time.Time
	UpdatedAt time.Time
}
