package inventory

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jhoicas/Cocina-api/internal/application/dto"
	"github.com/jhoicas/Cocina-api/internal/domain"
	"github.com/jhoicas/Cocina-api/internal/domain/entity"
	domaininv "github.com/jhoicas/Cocina-api/internal/domain/inventory"
	"github.com/jhoicas/Cocina-api/internal/domain/repository"
)

// DefaultExpiryWindowDays ventana por defecto para ingredientes por vencer.
const DefaultExpiryWindowDays = 7

// IngredientUseCase casos de uso CRUD y de consulta para ingredientes.
// Las operaciones administrativas (Create/Update/Archive) no pasan por el
// libro de stock; la autorización ADMIN se exige en la capa de interfaces.
type IngredientUseCase struct {
	repo repository.IngredientRepository
}

// NewIngredientUseCase construye el caso de uso.
func NewIngredientUseCase(repo repository.IngredientRepository) *IngredientUseCase {
	return &IngredientUseCase{repo: repo}
}

// Create crea un ingrediente no archivado con id y timestamps del servidor.
func (uc *IngredientUseCase) Create(ctx context.Context, in dto.CreateIngredientRequest) (*entity.Ingredient, error) {
	if err := dto.Validate(in); err != nil {
		return nil, err
	}
	expiry, err := parseExpiry(in.ExpiryDate)
	if err != nil {
		return nil, err
	}
	now := time.Now()
	ing := &entity.Ingredient{
		ID:                uuid.New().String(),
		Name:              in.Name,
		Category:          entity.Category(in.Category),
		Unit:              entity.Unit(in.Unit),
		Stock:             in.Stock,
		LowStockThreshold: in.LowStockThreshold,
		CostPerUnit:       in.CostPerUnit,
		SupplierID:        in.SupplierID,
		ExpiryDate:        expiry,
		Archived:          false,
		CreatedAt:         now,
		UpdatedAt:         now,
	}
	if err := uc.repo.Create(ctx, ing); err != nil {
		return nil, err
	}
	return ing, nil
}

// Update aplica un parche parcial. ErrNotFound si el id no resuelve; en ese
// caso no se escribe nada.
//
// Stock directo es la ruta legada que puentea el libro de stock: produce un
// saldo sin movimiento asociado. Se conserva por compatibilidad, pero un
// valor negativo se rechaza siempre.
func (uc *IngredientUseCase) Update(ctx context.Context, id string, in dto.UpdateIngredientRequest) (*entity.Ingredient, error) {
	if err := dto.Validate(in); err != nil {
		return nil, err
	}
	ing, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if ing == nil {
		return nil, domain.ErrNotFound
	}
	if in.Name != nil {
		ing.Name = *in.Name
	}
	if in.Category != nil {
		ing.Category = entity.Category(*in.Category)
	}
	if in.Unit != nil {
		ing.Unit = entity.Unit(*in.Unit)
	}
	if in.Stock != nil {
		if in.Stock.IsNegative() {
			return nil, domain.ErrInvalidInput
		}
		ing.Stock = *in.Stock
	}
	if in.LowStockThreshold != nil {
		if in.LowStockThreshold.IsNegative() {
			return nil, domain.ErrInvalidInput
		}
		ing.LowStockThreshold = *in.LowStockThreshold
	}
	if in.CostPerUnit != nil {
		if in.CostPerUnit.IsNegative() {
			return nil, domain.ErrInvalidInput
		}
		ing.CostPerUnit = *in.CostPerUnit
	}
	if in.SupplierID != nil {
		ing.SupplierID = *in.SupplierID
	}
	if in.ExpiryDate != nil {
		expiry, err := parseExpiry(in.ExpiryDate)
		if err != nil {
			return nil, err
		}
		ing.ExpiryDate = expiry
	}
	ing.UpdatedAt = time.Now()
	if err := uc.repo.Update(ctx, ing); err != nil {
		return nil, err
	}
	return ing, nil
}

// Archive marca el ingrediente como archivado (soft delete).
func (uc *IngredientUseCase) Archive(ctx context.Context, id string) (*entity.Ingredient, error) {
	ing, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if ing == nil {
		return nil, domain.ErrNotFound
	}
	ing.Archived = true
	ing.UpdatedAt = time.Now()
	if err := uc.repo.Update(ctx, ing); err != nil {
		return nil, err
	}
	return ing, nil
}

// Get obtiene un ingrediente por id; ErrNotFound si no resuelve.
func (uc *IngredientUseCase) Get(ctx context.Context, id string) (*entity.Ingredient, error) {
	ing, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if ing == nil {
		return nil, domain.ErrNotFound
	}
	return ing, nil
}

// List lista ingredientes según filtros conjuntivos. archived nil = false.
// La búsqueda por nombre (substring case-insensitive) se aplica aquí sobre
// el resultado del almacén, igual que el resto de clasificaciones derivadas.
func (uc *IngredientUseCase) List(ctx context.Context, in dto.IngredientFilterRequest) ([]*entity.Ingredient, error) {
	filter := repository.IngredientFilter{}
	if in.Archived != nil {
		filter.Archived = *in.Archived
	}
	if in.Category != nil && *in.Category != "" {
		cat := entity.Category(*in.Category)
		filter.Category = &cat
	}
	list, err := uc.repo.List(ctx, filter)
	if err != nil {
		return nil, err
	}
	if in.Search == nil || *in.Search == "" {
		return list, nil
	}
	search := strings.ToLower(*in.Search)
	filtered := make([]*entity.Ingredient, 0, len(list))
	for _, ing := range list {
		if strings.Contains(strings.ToLower(ing.Name), search) {
			filtered = append(filtered, ing)
		}
	}
	return filtered, nil
}

// LowStock lista los ingredientes no archivados con stock <= umbral
// (inclusive; incluye los CRITICAL).
func (uc *IngredientUseCase) LowStock(ctx context.Context) ([]*entity.Ingredient, error) {
	list, err := uc.repo.List(ctx, repository.IngredientFilter{Archived: false})
	if err != nil {
		return nil, err
	}
	low := make([]*entity.Ingredient, 0, len(list))
	for _, ing := range list {
		if domaininv.Status(ing.Stock, ing.LowStockThreshold) != domaininv.StatusSafe {
			low = append(low, ing)
		}
	}
	return low, nil
}

// Expiring lista ingredientes no archivados con fecha de vencimiento
// estrictamente anterior a ahora+days. Sin fecha de vencimiento = nunca
// por vencer. days <= 0 usa la ventana por defecto.
func (uc *IngredientUseCase) Expiring(ctx context.Context, days int) ([]*entity.Ingredient, error) {
	if days <= 0 {
		days = DefaultExpiryWindowDays
	}
	list, err := uc.repo.List(ctx, repository.IngredientFilter{Archived: false})
	if err != nil {
		return nil, err
	}
	cutoff := time.Now().AddDate(0, 0, days)
	expiring := make([]*entity.Ingredient, 0, len(list))
	for _, ing := range list {
		if ing.ExpiryDate != nil && ing.ExpiryDate.Before(cutoff) {
			expiring = append(expiring, ing)
		}
	}
	return expiring, nil
}

// parseExpiry acepta RFC3339 o fecha simple YYYY-MM-DD. nil o vacío = sin fecha.
func parseExpiry(s *string) (*time.Time, error) {
	if s == nil || *s == "" {
		return nil, nil
	}
	if t, err := time.Parse(time.RFC3339, *s); err == nil {
		return &t, nil
	}
	t, err := time.Parse("2006-01-02", *s)
	if err != nil {
		return nil, domain.ErrInvalidInput
	}
	return &t, nil
}
