package inventory

import (
	"context"

	"github.com/jhoicas/Cocina-api/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción del almacén de
// documentos, pasando un contexto atado a la sesión. Garantiza que el par
// escritura-de-saldo + registro-de-movimiento sea atómico para cualquier
// lector: nunca se observa uno sin el otro.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		ctx context.Context,
		ingredients repository.IngredientRepository,
		movements repository.StockMovementRepository,
	) error) error
}
