package mongodb

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/jhoicas/Cocina-api/internal/domain"
	"github.com/jhoicas/Cocina-api/internal/domain/entity"
	"github.com/jhoicas/Cocina-api/internal/domain/repository"
)

var _ repository.SupplierRepository = (*SupplierRepo)(nil)

type supplierDoc struct {
	ID        string    `bson:"_id"`
	Name      string    `bson:"name"`
	Contact   string    `bson:"contact,omitempty"`
	Email     string    `bson:"email,omitempty"`
	Phone     string    `bson:"phone,omitempty"`
	Address   string    `bson:"address,omitempty"`
	CreatedAt time.Time `bson:"created_at"`
	UpdatedAt time.Time `bson:"updated_at"`
}

// SupplierRepo implementación del puerto SupplierRepository.
type SupplierRepo struct {
	col *mongo.Collection
}

// NewSupplierRepository construye el adaptador de persistencia.
func NewSupplierRepository(db *mongo.Database) *SupplierRepo {
	return &SupplierRepo{col: db.Collection(CollectionSuppliers)}
}

// Create inserta un proveedor nuevo.
func (r *SupplierRepo) Create(ctx context.Context, sup *entity.Supplier) error {
	if _, err := r.col.InsertOne(ctx, toSupplierDoc(sup)); err != nil {
		return fmt.Errorf("insert supplier: %w", err)
	}
	return nil
}

// GetByID obtiene un proveedor por id; nil, nil si no existe.
func (r *SupplierRepo) GetByID(ctx context.Context, id string) (*entity.Supplier, error) {
	var doc supplierDoc
	err := r.col.FindOne(ctx, bson.M{"_id": id}).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, fmt.Errorf("get supplier: %w", err)
	}
	return toSupplierEntity(&doc), nil
}

// Update reemplaza el documento completo.
func (r *SupplierRepo) Update(ctx context.Context, sup *entity.Supplier) error {
	res, err := r.col.ReplaceOne(ctx, bson.M{"_id": sup.ID}, toSupplierDoc(sup))
	if err != nil {
		return fmt.Errorf("update supplier: %w", err)
	}
	if res.MatchedCount == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// List lista todos los proveedores ordenados por nombre.
func (r *SupplierRepo) List(ctx context.Context) ([]*entity.Supplier, error) {
	cursor, err := r.col.Find(ctx, bson.M{}, options.Find().SetSort(bson.D{{Key: "name", Value: 1}}))
	if err != nil {
		return nil, fmt.Errorf("list suppliers: %w", err)
	}
	defer cursor.Close(ctx)

	var docs []supplierDoc
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("decode suppliers: %w", err)
	}
	out := make([]*entity.Supplier, 0, len(docs))
	for i := range docs {
		out = append(out, toSupplierEntity(&docs[i]))
	}
	return out, nil
}

func toSupplierDoc(sup *entity.Supplier) *supplierDoc {
	return &supplierDoc{
		ID:        sup.ID,
		Name:      sup.Name,
		Contact:   sup.Contact,
		Email:     sup.Email,
		Phone:     sup.Phone,
		Address:   sup.Address,
		CreatedAt: sup.CreatedAt,
		UpdatedAt: sup.UpdatedAt,
	}
}

func toSupplierEntity(doc *supplierDoc) *entity.Supplier {
	return &entity.Supplier{
		ID:        doc.ID,
		Name:      doc.Name,
		Contact:   doc.Contact,
		Email:     doc.Email,
		Phone:     doc.Phone,
		Address:   doc.Address,
		CreatedAt: doc.CreatedAt,
		UpdatedAt: doc.UpdatedAt,
	}
}
