package mongodb

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/jhoicas/Cocina-api/internal/domain/entity"
	"github.com/jhoicas/Cocina-api/internal/domain/repository"
)

var _ repository.StockMovementRepository = (*MovementRepo)(nil)

type movementDoc struct {
	ID           string    `bson:"_id"`
	IngredientID string    `bson:"ingredient_id"`
	Type         string    `bson:"type"`
	Quantity     float64   `bson:"quantity"`
	Note         string    `bson:"note,omitempty"`
	PerformedBy  string    `bson:"performed_by"`
	CreatedAt    time.Time `bson:"created_at"`
}

// MovementRepo implementación del puerto StockMovementRepository.
// Solo inserta y lee: el libro de stock es append-only.
type MovementRepo struct {
	col *mongo.Collection
}

// NewMovementRepository construye el adaptador de persistencia.
func NewMovementRepository(db *mongo.Database) *MovementRepo {
	return &MovementRepo{col: db.Collection(CollectionStockMovements)}
}

// Create inserta una entrada del libro de stock.
func (r *MovementRepo) Create(ctx context.Context, mov *entity.StockMovement) error {
	doc := movementDoc{
		ID:           mov.ID,
		IngredientID: mov.IngredientID,
		Type:         string(mov.Type),
		Quantity:     mov.Quantity.InexactFloat64(),
		Note:         mov.Note,
		PerformedBy:  mov.PerformedBy,
		CreatedAt:    mov.CreatedAt,
	}
	if _, err := r.col.InsertOne(ctx, doc); err != nil {
		return fmt.Errorf("insert stock movement: %w", err)
	}
	return nil
}

// List devuelve movimientos por fecha de creación descendente.
// ingredientID vacío = todos.
func (r *MovementRepo) List(ctx context.Context, ingredientID string, limit int) ([]*entity.StockMovement, error) {
	filter := bson.M{}
	if ingredientID != "" {
		filter["ingredient_id"] = ingredientID
	}
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	if limit > 0 {
		opts.SetLimit(int64(limit))
	}
	cursor, err := r.col.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("list stock movements: %w", err)
	}
	defer cursor.Close(ctx)

	var docs []movementDoc
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("decode stock movements: %w", err)
	}
	out := make([]*entity.StockMovement, 0, len(docs))
	for i := range docs {
		d := &docs[i]
		out = append(out, &entity.StockMovement{
			ID:           d.ID,
			IngredientID: d.IngredientID,
			Type:         entity.MovementType(d.Type),
			Quantity:     decimal.NewFromFloat(d.Quantity),
			Note:         d.Note,
			PerformedBy:  d.PerformedBy,
			CreatedAt:    d.CreatedAt,
		})
	}
	return out, nil
}
