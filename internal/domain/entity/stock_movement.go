package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// MovementType tipo de movimiento del libro de stock (enum cerrado).
// Se valida una sola vez en la frontera con ParseMovementType; después del
// parseo ningún camino de código vuelve a comparar strings arbitrarios.
type MovementType string

const (
	MovementTypeIN         MovementType = "IN"         // entrada: suma al saldo
	MovementTypeOUT        MovementType = "OUT"        // salida: resta del saldo
	MovementTypeADJUSTMENT MovementType = "ADJUSTMENT" // ajuste: fija el saldo absoluto
)

// ParseMovementType convierte un tag externo en el enum cerrado.
// ok=false para cualquier valor fuera del conjunto.
func ParseMovementType(s string) (MovementType, bool) {
	switch MovementType(s) {
	case MovementTypeIN, MovementTypeOUT, MovementTypeADJUSTMENT:
		return MovementType(s), true
	}
	return "", false
}

// StockMovement es una entrada inmutable del libro de stock (append-only).
// Quantity conserva el valor entregado por el caller, sin signo aplicado.
// Solo el caso de uso del libro de stock crea estos registros; nunca se
// actualizan ni se borran.
type StockMovement struct {
	ID           string
	IngredientID string
	Type         MovementType
	Quantity     decimal.Decimal
	Note         string
	PerformedBy  string // ID del usuario autenticado
	CreatedAt    time.Time
}
