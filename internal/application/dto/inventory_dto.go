package dto

import "github.com/shopspring/decimal"

// RecordMovementRequest entrada para registrar un movimiento del libro de stock.
// Quantity se acepta tal cual llega: el comportamiento legado no rechaza cero
// ni negativos en IN/OUT; el guard de saldo negativo es quien decide.
type RecordMovementRequest struct {
	IngredientID string          `json:"ingredient_id" validate:"required"`
	Type         string          `json:"type" validate:"required"`
	Quantity     decimal.Decimal `json:"quantity"`
	Note         string          `json:"note,omitempty"`
}

// CreateIngredientRequest entrada para crear un ingrediente (solo ADMIN).
type CreateIngredientRequest struct {
	Name              string          `json:"name" validate:"required"`
	Category          string          `json:"category" validate:"required,oneof=VEGETABLES FRUITS MEAT SEAFOOD DAIRY GRAINS SPICES BEVERAGES CONDIMENTS OTHER"`
	Unit              string          `json:"unit" validate:"required,oneof=KG PCS LITERS GRAMS ML"`
	Stock             decimal.Decimal `json:"stock" validate:"gte=0"`
	LowStockThreshold decimal.Decimal `json:"low_stock_threshold" validate:"gte=0"`
	CostPerUnit       decimal.Decimal `json:"cost_per_unit" validate:"gte=0"`
	SupplierID        string          `json:"supplier_id,omitempty"`
	ExpiryDate        *string         `json:"expiry_date,omitempty"` // RFC3339 o YYYY-MM-DD
}

// UpdateIngredientRequest parche parcial de un ingrediente (solo ADMIN).
// Stock directo es la ruta administrativa legada que puentea el libro de
// stock; se conserva, pero nunca acepta valores negativos.
type UpdateIngredientRequest struct {
	Name              *string          `json:"name,omitempty" validate:"omitempty,min=1"`
	Category          *string          `json:"category,omitempty" validate:"omitempty,oneof=VEGETABLES FRUITS MEAT SEAFOOD DAIRY GRAINS SPICES BEVERAGES CONDIMENTS OTHER"`
	Unit              *string          `json:"unit,omitempty" validate:"omitempty,oneof=KG PCS LITERS GRAMS ML"`
	Stock             *decimal.Decimal `json:"stock,omitempty"`
	LowStockThreshold *decimal.Decimal `json:"low_stock_threshold,omitempty"`
	CostPerUnit       *decimal.Decimal `json:"cost_per_unit,omitempty"`
	SupplierID        *string          `json:"supplier_id,omitempty"`
	ExpiryDate        *string          `json:"expiry_date,omitempty"`
}

// IngredientFilterRequest filtros del listado de ingredientes (AND).
type IngredientFilterRequest struct {
	Archived *bool   `json:"archived,omitempty"` // nil = false (no archivados)
	Category *string `json:"category,omitempty"`
	Search   *string `json:"search,omitempty"` // substring case-insensitive sobre el nombre
}
