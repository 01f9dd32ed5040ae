// Package analytics contiene el caso de uso read-only que alimenta el
// dashboard del inventario.
package analytics

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"github.com/jhoicas/Cocina-api/internal/application/dto"
	"github.com/jhoicas/Cocina-api/internal/domain/entity"
	domaininv "github.com/jhoicas/Cocina-api/internal/domain/inventory"
	"github.com/jhoicas/Cocina-api/internal/domain/repository"
)

const (
	expiryWindowDays     = 7  // ventana fija del contador "por vencer"
	recentMovementsLimit = 10 // movimientos recientes en el widget
)

// DashboardUseCase agrega las métricas del inventario sobre los ingredientes
// no archivados. Solo lecturas; las clasificaciones se derivan en cada
// llamada, nunca de un campo materializado.
type DashboardUseCase struct {
	ingredientRepo repository.IngredientRepository
	movementRepo   repository.StockMovementRepository
}

// NewDashboardUseCase construye el caso de uso.
func NewDashboardUseCase(ingredientRepo repository.IngredientRepository, movementRepo repository.StockMovementRepository) *DashboardUseCase {
	return &DashboardUseCase{ingredientRepo: ingredientRepo, movementRepo: movementRepo}
}

// GetStats construye el DashboardStatsDTO.
//
// Dos consultas en paralelo:
//  1. listado de ingredientes activos → valor total, conteos
//  2. movimientos recientes del libro de stock (10, descendente)
func (uc *DashboardUseCase) GetStats(ctx context.Context) (*dto.DashboardStatsDTO, error) {
	type ingredientsResult struct {
		items []*entity.Ingredient
		err   error
	}
	type movementsResult struct {
		items []*entity.StockMovement
		err   error
	}

	ingCh := make(chan ingredientsResult, 1)
	movCh := make(chan movementsResult, 1)

	go func() {
		items, err := uc.ingredientRepo.List(ctx, repository.IngredientFilter{Archived: false})
		ingCh <- ingredientsResult{items, err}
	}()
	go func() {
		items, err := uc.movementRepo.List(ctx, "", recentMovementsLimit)
		movCh <- movementsResult{items, err}
	}()

	ing := <-ingCh
	mov := <-movCh

	if ing.err != nil {
		return nil, fmt.Errorf("dashboard: ingredientes activos: %w", ing.err)
	}
	if mov.err != nil {
		return nil, fmt.Errorf("dashboard: movimientos recientes: %w", mov.err)
	}

	total := decimal.Zero
	lowCount := 0
	expiringCount := 0
	cutoff := time.Now().AddDate(0, 0, expiryWindowDays)

	for _, i := range ing.items {
		total = total.Add(domaininv.TotalValue(i.Stock, i.CostPerUnit))
		if domaininv.Status(i.Stock, i.LowStockThreshold) != domaininv.StatusSafe {
			lowCount++
		}
		if i.ExpiryDate != nil && i.ExpiryDate.Before(cutoff) {
			expiringCount++
		}
	}

	return &dto.DashboardStatsDTO{
		TotalInventoryValue: total,
		LowStockCount:       lowCount,
		ExpiringCount:       expiringCount,
		TotalIngredients:    len(ing.items),
		RecentMovements:     mov.items,
	}, nil
}
