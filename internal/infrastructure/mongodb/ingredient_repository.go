package mongodb

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/jhoicas/Cocina-api/internal/domain"
	"github.com/jhoicas/Cocina-api/internal/domain/entity"
	"github.com/jhoicas/Cocina-api/internal/domain/repository"
)

var _ repository.IngredientRepository = (*IngredientRepo)(nil)

// ingredientDoc forma persistida del ingrediente. Las cantidades viajan como
// double BSON; el dominio trabaja con decimal y la conversión ocurre solo en
// esta frontera.
type ingredientDoc struct {
	ID                string     `bson:"_id"`
	Name              string     `bson:"name"`
	Category          string     `bson:"category"`
	Unit              string     `bson:"unit"`
	Stock             float64    `bson:"stock"`
	LowStockThreshold float64    `bson:"low_stock_threshold"`
	CostPerUnit       float64    `bson:"cost_per_unit"`
	SupplierID        string     `bson:"supplier_id,omitempty"`
	ExpiryDate        *time.Time `bson:"expiry_date,omitempty"`
	Archived          bool       `bson:"archived"`
	CreatedAt         time.Time  `bson:"created_at"`
	UpdatedAt         time.Time  `bson:"updated_at"`
}

// IngredientRepo implementación del puerto IngredientRepository sobre la
// colección de ingredientes.
type IngredientRepo struct {
	col *mongo.Collection
}

// NewIngredientRepository construye el adaptador de persistencia.
func NewIngredientRepository(db *mongo.Database) *IngredientRepo {
	return &IngredientRepo{col: db.Collection(CollectionIngredients)}
}

// Create inserta un ingrediente nuevo.
func (r *IngredientRepo) Create(ctx context.Context, ing *entity.Ingredient) error {
	if _, err := r.col.InsertOne(ctx, toIngredientDoc(ing)); err != nil {
		return fmt.Errorf("insert ingredient: %w", err)
	}
	return nil
}

// GetByID obtiene un ingrediente por id; nil, nil si no existe.
func (r *IngredientRepo) GetByID(ctx context.Context, id string) (*entity.Ingredient, error) {
	var doc ingredientDoc
	err := r.col.FindOne(ctx, bson.M{"_id": id}).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, fmt.Errorf("get ingredient: %w", err)
	}
	return toIngredientEntity(&doc), nil
}

// Update reemplaza el documento completo (parche resuelto en el caso de uso).
func (r *IngredientRepo) Update(ctx context.Context, ing *entity.Ingredient) error {
	res, err := r.col.ReplaceOne(ctx, bson.M{"_id": ing.ID}, toIngredientDoc(ing))
	if err != nil {
		return fmt.Errorf("update ingredient: %w", err)
	}
	if res.MatchedCount == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// List lista ingredientes por flag de archivado y categoría opcional,
// ordenados por nombre para salida estable.
func (r *IngredientRepo) List(ctx context.Context, filter repository.IngredientFilter) ([]*entity.Ingredient, error) {
	q := bson.M{"archived": filter.Archived}
	if filter.Category != nil {
		q["category"] = string(*filter.Category)
	}
	cursor, err := r.col.Find(ctx, q, options.Find().SetSort(bson.D{{Key: "name", Value: 1}}))
	if err != nil {
		return nil, fmt.Errorf("list ingredients: %w", err)
	}
	defer cursor.Close(ctx)

	var docs []ingredientDoc
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("decode ingredients: %w", err)
	}
	out := make([]*entity.Ingredient, 0, len(docs))
	for i := range docs {
		out = append(out, toIngredientEntity(&docs[i]))
	}
	return out, nil
}

// IncrementStock aplica un delta al saldo en una sola operación condicional:
// para deltas negativos el filtro exige stock suficiente, de modo que dos
// movimientos concurrentes no pueden producir un lost update ni un saldo
// negativo. Devuelve el documento ya actualizado.
func (r *IngredientRepo) IncrementStock(ctx context.Context, id string, delta decimal.Decimal, now time.Time) (*entity.Ingredient, error) {
	filter := bson.M{"_id": id}
	if delta.IsNegative() {
		filter["stock"] = bson.M{"$gte": delta.Neg().InexactFloat64()}
	}
	update := bson.M{
		"$inc": bson.M{"stock": delta.InexactFloat64()},
		"$set": bson.M{"updated_at": now},
	}
	return r.findOneAndUpdate(ctx, id, filter, update)
}

// SetStock fija el saldo absoluto (el caso de uso ya rechazó negativos).
func (r *IngredientRepo) SetStock(ctx context.Context, id string, quantity decimal.Decimal, now time.Time) (*entity.Ingredient, error) {
	update := bson.M{
		"$set": bson.M{"stock": quantity.InexactFloat64(), "updated_at": now},
	}
	return r.findOneAndUpdate(ctx, id, bson.M{"_id": id}, update)
}

func (r *IngredientRepo) findOneAndUpdate(ctx context.Context, id string, filter, update bson.M) (*entity.Ingredient, error) {
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var doc ingredientDoc
	err := r.col.FindOneAndUpdate(ctx, filter, update, opts).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			// Distinguir id inexistente de guard de saldo fallido.
			n, cntErr := r.col.CountDocuments(ctx, bson.M{"_id": id})
			if cntErr != nil {
				return nil, fmt.Errorf("check ingredient exists: %w", cntErr)
			}
			if n == 0 {
				return nil, domain.ErrNotFound
			}
			return nil, domain.ErrInsufficientStock
		}
		return nil, fmt.Errorf("update stock: %w", err)
	}
	return toIngredientEntity(&doc), nil
}

func toIngredientDoc(ing *entity.Ingredient) *ingredientDoc {
	return &ingredientDoc{
		ID:                ing.ID,
		Name:              ing.Name,
		Category:          string(ing.Category),
		Unit:              string(ing.Unit),
		Stock:             ing.Stock.InexactFloat64(),
		LowStockThreshold: ing.LowStockThreshold.InexactFloat64(),
		CostPerUnit:       ing.CostPerUnit.InexactFloat64(),
		SupplierID:        ing.SupplierID,
		ExpiryDate:        ing.ExpiryDate,
		Archived:          ing.Archived,
		CreatedAt:         ing.CreatedAt,
		UpdatedAt:         ing.UpdatedAt,
	}
}

func toIngredientEntity(doc *ingredientDoc) *entity.Ingredient {
	return &entity.Ingredient{
		ID:                doc.ID,
		Name:              doc.Name,
		Category:          entity.Category(doc.Category),
		Unit:              entity.Unit(doc.Unit),
		Stock:             decimal.NewFromFloat(doc.Stock),
		LowStockThreshold: decimal.NewFromFloat(doc.LowStockThreshold),
		CostPerUnit:       decimal.NewFromFloat(doc.CostPerUnit),
		SupplierID:        doc.SupplierID,
		ExpiryDate:        doc.ExpiryDate,
		Archived:          doc.Archived,
		CreatedAt:         doc.CreatedAt,
		UpdatedAt:         doc.UpdatedAt,
	}
}
