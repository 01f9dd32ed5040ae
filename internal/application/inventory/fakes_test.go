package inventory_test

import (
	"context"
	"sort"
	"time"

	"github.com/shopspring/decimal"
	"github.com/jhoicas/Cocina-api/internal/domain"
	"github.com/jhoicas/Cocina-api/internal/domain/entity"
	"github.com/jhoicas/Cocina-api/internal/domain/repository"
)

// fakeIngredientRepo repositorio en memoria que reproduce la semántica de
// las primitivas condicionales del almacén (guard de saldo en el filtro).
type fakeIngredientRepo struct {
	items map[string]*entity.Ingredient
}

func newFakeIngredientRepo(items ...*entity.Ingredient) *fakeIngredientRepo {
	m := make(map[string]*entity.Ingredient, len(items))
	for _, ing := range items {
		cp := *ing
		m[ing.ID] = &cp
	}
	return &fakeIngredientRepo{items: m}
}

func (r *fakeIngredientRepo) Create(_ context.Context, ing *entity.Ingredient) error {
	cp := *ing
	r.items[ing.ID] = &cp
	return nil
}

func (r *fakeIngredientRepo) GetByID(_ context.Context, id string) (*entity.Ingredient, error) {
	ing, ok := r.items[id]
	if !ok {
		return nil, nil
	}
	cp := *ing
	return &cp, nil
}

func (r *fakeIngredientRepo) Update(_ context.Context, ing *entity.Ingredient) error {
	if _, ok := r.items[ing.ID]; !ok {
		return domain.ErrNotFound
	}
	cp := *ing
	r.items[ing.ID] = &cp
	return nil
}

func (r *fakeIngredientRepo) List(_ context.Context, filter repository.IngredientFilter) ([]*entity.Ingredient, error) {
	var out []*entity.Ingredient
	for _, ing := range r.items {
		if ing.Archived != filter.Archived {
			continue
		}
		if filter.Category != nil && ing.Category != *filter.Category {
			continue
		}
		cp := *ing
		out = append(out, &cp)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (r *fakeIngredientRepo) IncrementStock(_ context.Context, id string, delta decimal.Decimal, now time.Time) (*entity.Ingredient, error) {
	ing, ok := r.items[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	newStock := ing.Stock.Add(delta)
	if newStock.IsNegative() {
		return nil, domain.ErrInsufficientStock
	}
	ing.Stock = newStock
	ing.UpdatedAt = now
	cp := *ing
	return &cp, nil
}

func (r *fakeIngredientRepo) SetStock(_ context.Context, id string, quantity decimal.Decimal, now time.Time) (*entity.Ingredient, error) {
	ing, ok := r.items[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	ing.Stock = quantity
	ing.UpdatedAt = now
	cp := *ing
	return &cp, nil
}

// fakeMovementRepo libro de stock en memoria (append-only).
type fakeMovementRepo struct {
	movs []*entity.StockMovement
}

func (r *fakeMovementRepo) Create(_ context.Context, mov *entity.StockMovement) error {
	cp := *mov
	r.movs = append(r.movs, &cp)
	return nil
}

func (r *fakeMovementRepo) List(_ context.Context, ingredientID string, limit int) ([]*entity.StockMovement, error) {
	var out []*entity.StockMovement
	for _, m := range r.movs {
		if ingredientID != "" && m.IngredientID != ingredientID {
			continue
		}
		cp := *m
		out = append(out, &cp)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

// fakeTxRunner ejecuta el callback directamente, sin transacción real.
type fakeTxRunner struct {
	ingredients repository.IngredientRepository
	movements   repository.StockMovementRepository
}

func (r *fakeTxRunner) Run(ctx context.Context, fn func(
	ctx context.Context,
	ingredients repository.IngredientRepository,
	movements repository.StockMovementRepository,
) error) error {
	return fn(ctx, r.ingredients, r.movements)
}

func d(s string) decimal.Decimal {
	v, _ := decimal.NewFromString(s)
	return v
}

func ingredient(id, name string, stock, threshold, cost string) *entity.Ingredient {
	now := time.Now()
	return &entity.Ingredient{
		ID:                id,
		Name:              name,
		Category:          entity.CategoryVegetables,
		Unit:              entity.UnitKG,
		Stock:             d(stock),
		LowStockThreshold: d(threshold),
		CostPerUnit:       d(cost),
		CreatedAt:         now,
		UpdatedAt:         now,
	}
}
