package supplier

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jhoicas/Cocina-api/internal/application/dto"
	"github.com/jhoicas/Cocina-api/internal/domain"
	"github.com/jhoicas/Cocina-api/internal/domain/entity"
	"github.com/jhoicas/Cocina-api/internal/domain/repository"
)

// UseCase casos de uso CRUD para el registro de proveedores.
// Los proveedores no se borran físicamente ni en cascada: los ingredientes
// los referencian de forma débil.
type UseCase struct {
	repo repository.SupplierRepository
}

// New construye el caso de uso.
func New(repo repository.SupplierRepository) *UseCase {
	return &UseCase{repo: repo}
}

// Create crea un proveedor con id y timestamps del servidor.
func (uc *UseCase) Create(ctx context.Context, in dto.CreateSupplierRequest) (*entity.Supplier, error) {
	if err := dto.Validate(in); err != nil {
		return nil, err
	}
	now := time.Now()
	sup := &entity.Supplier{
		ID:        uuid.New().String(),
		Name:      in.Name,
		Contact:   in.Contact,
		Email:     in.Email,
		Phone:     in.Phone,
		Address:   in.Address,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.repo.Create(ctx, sup); err != nil {
		return nil, err
	}
	return sup, nil
}

// Update aplica un parche parcial; ErrNotFound si el id no resuelve.
func (uc *UseCase) Update(ctx context.Context, id string, in dto.UpdateSupplierRequest) (*entity.Supplier, error) {
	if err := dto.Validate(in); err != nil {
		return nil, err
	}
	sup, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if sup == nil {
		return nil, domain.ErrNotFound
	}
	if in.Name != nil {
		sup.Name = *in.Name
	}
	if in.Contact != nil {
		sup.Contact = *in.Contact
	}
	if in.Email != nil {
		sup.Email = *in.Email
	}
	if in.Phone != nil {
		sup.Phone = *in.Phone
	}
	if in.Address != nil {
		sup.Address = *in.Address
	}
	sup.UpdatedAt = time.Now()
	if err := uc.repo.Update(ctx, sup); err != nil {
		return nil, err
	}
	return sup, nil
}

// Get obtiene un proveedor por id; ErrNotFound si no resuelve.
func (uc *UseCase) Get(ctx context.Context, id string) (*entity.Supplier, error) {
	sup, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if sup == nil {
		return nil, domain.ErrNotFound
	}
	return sup, nil
}

// Lookup resuelve una referencia débil: id vacío o inexistente devuelve nil
// sin error (los ingredientes pueden apuntar a proveedores borrados).
func (uc *UseCase) Lookup(ctx context.Context, id string) (*entity.Supplier, error) {
	if id == "" {
		return nil, nil
	}
	return uc.repo.GetByID(ctx, id)
}

// List lista todos los proveedores ordenados por nombre.
func (uc *UseCase) List(ctx context.Context) ([]*entity.Supplier, error) {
	return uc.repo.List(ctx)
}
