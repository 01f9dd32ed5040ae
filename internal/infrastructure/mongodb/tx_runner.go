package mongodb

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/mongo"

	"github.com/jhoicas/Cocina-api/internal/application/inventory"
	"github.com/jhoicas/Cocina-api/internal/domain/repository"
)

var _ inventory.TxRunner = (*TxRunner)(nil)

// TxRunner ejecuta callbacks dentro de una transacción de sesión del almacén
// de documentos. El contexto de sesión se propaga por ctx, así que los
// repositorios normales participan en la transacción sin variantes
// especiales. Requiere un despliegue con replica set.
type TxRunner struct {
	client      *mongo.Client
	ingredients *IngredientRepo
	movements   *MovementRepo
}

// NewTxRunner construye el runner con el cliente y los repositorios.
func NewTxRunner(client *mongo.Client, ingredients *IngredientRepo, movements *MovementRepo) *TxRunner {
	return &TxRunner{client: client, ingredients: ingredients, movements: movements}
}

// Run inicia una sesión, ejecuta fn dentro de una transacción y hace
// Commit o Abort. Los errores de dominio del callback se devuelven tal
// cual para que errors.Is siga funcionando aguas arriba.
func (r *TxRunner) Run(ctx context.Context, fn func(
	ctx context.Context,
	ingredients repository.IngredientRepository,
	movements repository.StockMovementRepository,
) error) error {
	session, err := r.client.StartSession()
	if err != nil {
		return fmt.Errorf("start session: %w", err)
	}
	defer session.EndSession(ctx)

	_, err = session.WithTransaction(ctx, func(sc mongo.SessionContext) (interface{}, error) {
		return nil, fn(sc, r.ingredients, r.movements)
	})
	return err
}
