// Package mongodb implementa los puertos de persistencia sobre el almacén
// de documentos. El cliente se construye una sola vez en el arranque y se
// inyecta explícitamente; si la conexión falla, la aplicación no arranca.
package mongodb

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/jhoicas/Cocina-api/pkg/config"
)

// Nombres de colecciones.
const (
	CollectionIngredients    = "ingredients"
	CollectionStockMovements = "stock_movements"
	CollectionSuppliers      = "suppliers"
)

const connectTimeout = 10 * time.Second

// NewClient conecta y verifica el almacén de documentos (fail fast: el
// error se propaga al arranque, sin reintentos silenciosos).
func NewClient(ctx context.Context, cfg config.MongoConfig) (*mongo.Client, error) {
	ctx, cancel := context.WithTimeout(ctx, connectTimeout)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.URI))
	if err != nil {
		return nil, fmt.Errorf("conectar a MongoDB: %w", err)
	}
	if err := client.Ping(ctx, nil); err != nil {
		_ = client.Disconnect(ctx)
		return nil, fmt.Errorf("ping a MongoDB: %w", err)
	}
	return client, nil
}
