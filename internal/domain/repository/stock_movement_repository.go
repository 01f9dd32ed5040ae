package repository

import (
	"context"

	"github.com/jhoicas/Cocina-api/internal/domain/entity"
)

// StockMovementRepository define el puerto de persistencia para el libro de
// stock. Append-only: no hay Update ni Delete.
type StockMovementRepository interface {
	Create(ctx context.Context, mov *entity.StockMovement) error
	// List devuelve movimientos ordenados por fecha de creación descendente.
	// ingredientID vacío = todos los ingredientes.
	List(ctx context.Context, ingredientID string, limit int) ([]*entity.StockMovement, error)
}
