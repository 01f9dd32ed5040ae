package dto

// CreateSupplierRequest entrada para crear un proveedor (solo ADMIN).
type CreateSupplierRequest struct {
	Name    string `json:"name" validate:"required"`
	Contact string `json:"contact,omitempty"`
	Email   string `json:"email,omitempty" validate:"omitempty,email"`
	Phone   string `json:"phone,omitempty"`
	Address string `json:"address,omitempty"`
}

// UpdateSupplierRequest parche parcial de un proveedor (solo ADMIN).
type UpdateSupplierRequest struct {
	Name    *string `json:"name,omitempty" validate:"omitempty,min=1"`
	Contact *string `json:"contact,omitempty"`
	Email   *string `json:"email,omitempty" validate:"omitempty,email"`
	Phone   *string `json:"phone,omitempty"`
	Address *string `json:"address,omitempty"`
}
