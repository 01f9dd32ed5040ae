package inventory

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/jhoicas/Cocina-api/internal/application/dto"
	"github.com/jhoicas/Cocina-api/internal/domain"
	"github.com/jhoicas/Cocina-api/internal/domain/entity"
	"github.com/jhoicas/Cocina-api/internal/domain/repository"
)

// LedgerUseCase es el único mutador del stock de un ingrediente y el único
// creador de registros en el libro de stock.
//
// Invariante duro del servicio: el saldo nunca queda bajo cero y la pareja
// (movimiento, saldo) se escribe de forma atómica. La actualización del
// saldo usa la primitiva condicional del almacén (no read-modify-write),
// así que dos movimientos concurrentes sobre el mismo ingrediente no pueden
// pisarse: el que pierda la carrera contra el guard falla con
// ErrInsufficientStock en lugar de producir un lost update.
type LedgerUseCase struct {
	txRunner       TxRunner
	ingredientRepo repository.IngredientRepository
	movementRepo   repository.StockMovementRepository
}

// NewLedgerUseCase construye el caso de uso.
func NewLedgerUseCase(txRunner TxRunner, ingredientRepo repository.IngredientRepository, movementRepo repository.StockMovementRepository) *LedgerUseCase {
	return &LedgerUseCase{txRunner: txRunner, ingredientRepo: ingredientRepo, movementRepo: movementRepo}
}

// DefaultMovementsLimit límite por defecto del historial de movimientos.
const DefaultMovementsLimit = 50

// RecordMovement valida y aplica un movimiento contra el saldo actual.
//
// Por tipo: IN suma, OUT resta, ADJUSTMENT fija el saldo absoluto.
// Cantidad cero o negativa en IN/OUT se acepta tal cual (comportamiento
// legado); el guard de saldo negativo es la única barrera aritmética.
// En fallo no se escribe nada: ni movimiento ni saldo.
func (uc *LedgerUseCase) RecordMovement(ctx context.Context, performedBy string, in dto.RecordMovementRequest) (*entity.StockMovement, error) {
	if err := dto.Validate(in); err != nil {
		return nil, err
	}

	// El tag se parsea una sola vez en la frontera; fuera del enum cerrado
	// se rechaza antes de cualquier aritmética o I/O.
	movType, ok := entity.ParseMovementType(in.Type)
	if !ok {
		return nil, domain.ErrInvalidMovementType
	}

	ing, err := uc.ingredientRepo.GetByID(ctx, in.IngredientID)
	if err != nil {
		return nil, err
	}
	if ing == nil {
		return nil, domain.ErrNotFound
	}

	// Pre-chequeo con el saldo leído: corta rápido los rechazos evidentes.
	// La autoridad final es el guard condicional dentro de la transacción.
	newStock := candidateStock(movType, ing.Stock, in.Quantity)
	if newStock.IsNegative() {
		return nil, domain.ErrInsufficientStock
	}

	now := time.Now()
	mov := &entity.StockMovement{
		ID:           uuid.New().String(),
		IngredientID: in.IngredientID,
		Type:         movType,
		Quantity:     in.Quantity,
		Note:         in.Note,
		PerformedBy:  performedBy,
		CreatedAt:    now,
	}

	err = uc.txRunner.Run(ctx, func(
		ctx context.Context,
		ingredients repository.IngredientRepository,
		movements repository.StockMovementRepository,
	) error {
		switch movType {
		case entity.MovementTypeIN:
			_, err := ingredients.IncrementStock(ctx, in.IngredientID, in.Quantity, now)
			if err != nil {
				return err
			}
		case entity.MovementTypeOUT:
			_, err := ingredients.IncrementStock(ctx, in.IngredientID, in.Quantity.Neg(), now)
			if err != nil {
				return err
			}
		case entity.MovementTypeADJUSTMENT:
			_, err := ingredients.SetStock(ctx, in.IngredientID, in.Quantity, now)
			if err != nil {
				return err
			}
		}
		return movements.Create(ctx, mov)
	})
	if err != nil {
		return nil, err
	}
	return mov, nil
}

// ListMovements devuelve el historial del libro de stock, más reciente
// primero. ingredientID vacío = todos; limit <= 0 usa el límite por defecto.
func (uc *LedgerUseCase) ListMovements(ctx context.Context, ingredientID string, limit int) ([]*entity.StockMovement, error) {
	if limit <= 0 {
		limit = DefaultMovementsLimit
	}
	return uc.movementRepo.List(ctx, ingredientID, limit)
}

// candidateStock calcula el saldo candidato según el tipo de movimiento.
func candidateStock(t entity.MovementType, current, quantity decimal.Decimal) decimal.Decimal {
	switch t {
	case entity.MovementTypeIN:
		return current.Add(quantity)
	case entity.MovementTypeOUT:
		return current.Sub(quantity)
	default: // ADJUSTMENT: set absoluto, no delta
		return quantity
	}
}
