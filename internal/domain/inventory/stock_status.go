package inventory

import "github.com/shopspring/decimal"

// StockStatus clasificación derivada del stock frente a su umbral (servicio de dominio).
type StockStatus string

const (
	StatusSafe     StockStatus = "SAFE"
	StatusLow      StockStatus = "LOW"
	StatusCritical StockStatus = "CRITICAL"
)

// Status clasifica el stock actual: CRITICAL si stock <= 0, LOW si
// stock <= umbral (la igualdad cuenta como LOW), SAFE en otro caso.
// Función pura: se calcula en cada lectura, nunca se persiste.
func Status(stock, threshold decimal.Decimal) StockStatus {
	if stock.LessThanOrEqual(decimal.Zero) {
		return StatusCritical
	}
	if stock.LessThanOrEqual(threshold) {
		return StatusLow
	}
	return StatusSafe
}

// TotalValue valor del inventario de un ingrediente: stock * costo unitario.
func TotalValue(stock, costPerUnit decimal.Decimal) decimal.Decimal {
	return stock.Mul(costPerUnit)
}
