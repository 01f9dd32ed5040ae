package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Category categorías de ingredientes de cocina (conjunto cerrado).
type Category string

const (
	CategoryVegetables Category = "VEGETABLES"
	CategoryFruits     Category = "FRUITS"
	CategoryMeat       Category = "MEAT"
	CategorySeafood    Category = "SEAFOOD"
	CategoryDairy      Category = "DAIRY"
	CategoryGrains     Category = "GRAINS"
	CategorySpices     Category = "SPICES"
	CategoryBeverages  Category = "BEVERAGES"
	CategoryCondiments Category = "CONDIMENTS"
	CategoryOther      Category = "OTHER"
)

// Unit unidades de medida soportadas (conjunto cerrado).
type Unit string

const (
	UnitKG     Unit = "KG"
	UnitPCS    Unit = "PCS"
	UnitLiters Unit = "LITERS"
	UnitGrams  Unit = "GRAMS"
	UnitML     Unit = "ML"
)

// Ingredient representa un ingrediente del inventario del restaurante.
// Stock se modifica únicamente vía movimientos del libro de stock
// (salvo la ruta administrativa legada de actualización directa).
// Invariante: Stock >= 0 en todo momento.
// Los ingredientes nunca se eliminan físicamente: Archived los excluye de los listados.
type Ingredient struct {
	ID                string
	Name              string
	Category          Category
	Unit              Unit
	Stock             decimal.Decimal
	LowStockThreshold decimal.Decimal
	CostPerUnit       decimal.Decimal
	SupplierID        string // vacío = sin proveedor (referencia débil)
	ExpiryDate        *time.Time
	Archived          bool
	CreatedAt         time.Time
	UpdatedAt         time.Time
}
