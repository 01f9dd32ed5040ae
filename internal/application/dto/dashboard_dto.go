package dto

import (
	"github.com/shopspring/decimal"
	"github.com/jhoicas/Cocina-api/internal/domain/entity"
)

// DashboardStatsDTO agregados del dashboard sobre los ingredientes no archivados.
type DashboardStatsDTO struct {
	TotalInventoryValue decimal.Decimal         `json:"total_inventory_value"`
	LowStockCount       int                     `json:"low_stock_count"` // LOW + CRITICAL
	ExpiringCount       int                     `json:"expiring_count"`  // ventana de 7 días
	TotalIngredients    int                     `json:"total_ingredients"`
	RecentMovements     []*entity.StockMovement `json:"recent_movements"` // 10 más recientes
}
