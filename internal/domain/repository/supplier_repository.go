package repository

import (
	"context"

	"github.com/jhoicas/Cocina-api/internal/domain/entity"
)

// SupplierRepository define el puerto de persistencia para Supplier (DIP).
type SupplierRepository interface {
	Create(ctx context.Context, sup *entity.Supplier) error
	GetByID(ctx context.Context, id string) (*entity.Supplier, error) // nil, nil si no existe
	Update(ctx context.Context, sup *entity.Supplier) error
	// List devuelve todos los proveedores ordenados por nombre.
	List(ctx context.Context) ([]*entity.Supplier, error)
}
