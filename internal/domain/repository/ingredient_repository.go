package repository

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
	"github.com/jhoicas/Cocina-api/internal/domain/entity"
)

// IngredientFilter filtros de listado (composición conjuntiva).
// La búsqueda por nombre se aplica en el caso de uso, no aquí.
type IngredientFilter struct {
	Archived bool
	Category *entity.Category
}

// IngredientRepository define el puerto de persistencia para Ingredient (DIP).
//
// IncrementStock y SetStock son las primitivas atómicas del almacén: la
// actualización condicional del saldo ocurre en una sola operación contra el
// documento, nunca como read-modify-write en dos viajes. IncrementStock con
// delta negativo devuelve domain.ErrInsufficientStock si el saldo resultante
// quedaría bajo cero; ambas devuelven domain.ErrNotFound si el id no existe.
type IngredientRepository interface {
	Create(ctx context.Context, ing *entity.Ingredient) error
	GetByID(ctx context.Context, id string) (*entity.Ingredient, error) // nil, nil si no existe
	Update(ctx context.Context, ing *entity.Ingredient) error
	List(ctx context.Context, filter IngredientFilter) ([]*entity.Ingredient, error)
	IncrementStock(ctx context.Context, id string, delta decimal.Decimal, now time.Time) (*entity.Ingredient, error)
	SetStock(ctx context.Context, id string, quantity decimal.Decimal, now time.Time) (*entity.Ingredient, error)
}
