// Package graphql expone los casos de uso como API GraphQL.
// Los resolvers aplican las guardas de autorización y traducen entre el
// esquema (Float, strings RFC3339) y el dominio (decimal, time.Time).
package graphql

import (
	"context"
	"time"

	graphqlgo "github.com/graph-gophers/graphql-go"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/Cocina-api/internal/application/analytics"
	"github.com/jhoicas/Cocina-api/internal/application/auth"
	"github.com/jhoicas/Cocina-api/internal/application/dto"
	"github.com/jhoicas/Cocina-api/internal/application/inventory"
	"github.com/jhoicas/Cocina-api/internal/application/supplier"
	"github.com/jhoicas/Cocina-api/internal/domain/entity"
)

// Resolver es la raíz de queries y mutaciones. Cada método delega en un
// caso de uso tras aplicar la guarda correspondiente: RequireAuth para
// lecturas y movimientos, RequireRole(ADMIN) para administración.
type Resolver struct {
	ledger      *inventory.LedgerUseCase
	ingredients *inventory.IngredientUseCase
	suppliers   *supplier.UseCase
	dashboard   *analytics.DashboardUseCase
}

// NewResolver construye el resolver raíz con sus casos de uso.
func NewResolver(
	ledger *inventory.LedgerUseCase,
	ingredients *inventory.IngredientUseCase,
	suppliers *supplier.UseCase,
	dashboard *analytics.DashboardUseCase,
) *Resolver {
	return &Resolver{ledger: ledger, ingredients: ingredients, suppliers: suppliers, dashboard: dashboard}
}

// MustSchema parsea el SDL contra el resolver raíz. Panic en un SDL
// inválido: eso es un bug de programación, no un error de runtime.
func MustSchema(r *Resolver) *graphqlgo.Schema {
	return graphqlgo.MustParseSchema(Schema, r)
}

// Me devuelve el usuario autenticado, o null para peticiones anónimas.
// Es la única query que no exige autenticación.
func (r *Resolver) Me(ctx context.Context) *userResolver {
	p := auth.PrincipalFrom(ctx)
	if p == nil {
		return nil
	}
	display := p.Email
	return &userResolver{user: entity.User{
		ID:          p.ID,
		Email:       p.Email,
		DisplayName: display,
		Role:        p.Role,
		CreatedAt:   time.Now(),
	}}
}

func (r *Resolver) Ingredients(ctx context.Context, args struct {
	Archived *bool
	Category *string
	Search   *string
}) ([]*ingredientResolver, error) {
	if _, err := auth.RequireAuth(ctx); err != nil {
		return nil, err
	}
	list, err := r.ingredients.List(ctx, dto.IngredientFilterRequest{
		Archived: args.Archived,
		Category: args.Category,
		Search:   args.Search,
	})
	if err != nil {
		return nil, err
	}
	return r.ingredientResolvers(list), nil
}

func (r *Resolver) Ingredient(ctx context.Context, args struct{ ID graphqlgo.ID }) (*ingredientResolver, error) {
	if _, err := auth.RequireAuth(ctx); err != nil {
		return nil, err
	}
	ing, err := r.ingredients.Get(ctx, string(args.ID))
	if err != nil {
		return nil, err
	}
	return &ingredientResolver{root: r, ing: ing}, nil
}

func (r *Resolver) LowStockIngredients(ctx context.Context) ([]*ingredientResolver, error) {
	if _, err := auth.RequireAuth(ctx); err != nil {
		return nil, err
	}
	list, err := r.ingredients.LowStock(ctx)
	if err != nil {
		return nil, err
	}
	return r.ingredientResolvers(list), nil
}

func (r *Resolver) ExpiringIngredients(ctx context.Context, args struct{ Days *int32 }) ([]*ingredientResolver, error) {
	if _, err := auth.RequireAuth(ctx); err != nil {
		return nil, err
	}
	days := 0
	if args.Days != nil {
		days = int(*args.Days)
	}
	list, err := r.ingredients.Expiring(ctx, days)
	if err != nil {
		return nil, err
	}
	return r.ingredientResolvers(list), nil
}

func (r *Resolver) StockMovements(ctx context.Context, args struct {
	IngredientID *graphqlgo.ID
	Limit        *int32
}) ([]*movementResolver, error) {
	if _, err := auth.RequireAuth(ctx); err != nil {
		return nil, err
	}
	ingredientID := ""
	if args.IngredientID != nil {
		ingredientID = string(*args.IngredientID)
	}
	limit := 0
	if args.Limit != nil {
		limit = int(*args.Limit)
	}
	list, err := r.ledger.ListMovements(ctx, ingredientID, limit)
	if err != nil {
		return nil, err
	}
	return r.movementResolvers(list), nil
}

func (r *Resolver) Suppliers(ctx context.Context) ([]*supplierResolver, error) {
	if _, err := auth.RequireAuth(ctx); err != nil {
		return nil, err
	}
	list, err := r.suppliers.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]*supplierResolver, 0, len(list))
	for _, s := range list {
		out = append(out, &supplierResolver{sup: s})
	}
	return out, nil
}

func (r *Resolver) Supplier(ctx context.Context, args struct{ ID graphqlgo.ID }) (*supplierResolver, error) {
	if _, err := auth.RequireAuth(ctx); err != nil {
		return nil, err
	}
	sup, err := r.suppliers.Get(ctx, string(args.ID))
	if err != nil {
		return nil, err
	}
	return &supplierResolver{sup: sup}, nil
}

func (r *Resolver) DashboardStats(ctx context.Context) (*dashboardResolver, error) {
	if _, err := auth.RequireAuth(ctx); err != nil {
		return nil, err
	}
	stats, err := r.dashboard.GetStats(ctx)
	if err != nil {
		return nil, err
	}
	return &dashboardResolver{root: r, stats: stats}, nil
}

type createIngredientInput struct {
	Name              string
	Category          string
	Unit              string
	Stock             float64
	LowStockThreshold float64
	CostPerUnit       float64
	SupplierID        *graphqlgo.ID
	ExpiryDate        *string
}

func (r *Resolver) CreateIngredient(ctx context.Context, args struct{ Input createIngredientInput }) (*ingredientResolver, error) {
	if _, err := auth.RequireRole(ctx, entity.RoleAdmin); err != nil {
		return nil, err
	}
	in := args.Input
	req := dto.CreateIngredientRequest{
		Name:              in.Name,
		Category:          in.Category,
		Unit:              in.Unit,
		Stock:             decimal.NewFromFloat(in.Stock),
		LowStockThreshold: decimal.NewFromFloat(in.LowStockThreshold),
		CostPerUnit:       decimal.NewFromFloat(in.CostPerUnit),
		ExpiryDate:        in.ExpiryDate,
	}
	if in.SupplierID != nil {
		req.SupplierID = string(*in.SupplierID)
	}
	ing, err := r.ingredients.Create(ctx, req)
	if err != nil {
		return nil, err
	}
	return &ingredientResolver{root: r, ing: ing}, nil
}

type updateIngredientInput struct {
	Name              *string
	Category          *string
	Unit              *string
	Stock             *float64
	LowStockThreshold *float64
	CostPerUnit       *float64
	SupplierID        *graphqlgo.ID
	ExpiryDate        *string
}

func (r *Resolver) UpdateIngredient(ctx context.Context, args struct {
	ID    graphqlgo.ID
	Input updateIngredientInput
}) (*ingredientResolver, error) {
	if _, err := auth.RequireRole(ctx, entity.RoleAdmin); err != nil {
		return nil, err
	}
	in := args.Input
	req := dto.UpdateIngredientRequest{
		Name:              in.Name,
		Category:          in.Category,
		Unit:              in.Unit,
		Stock:             optDecimal(in.Stock),
		LowStockThreshold: optDecimal(in.LowStockThreshold),
		CostPerUnit:       optDecimal(in.CostPerUnit),
		ExpiryDate:        in.ExpiryDate,
	}
	if in.SupplierID != nil {
		s := string(*in.SupplierID)
		req.SupplierID = &s
	}
	ing, err := r.ingredients.Update(ctx, string(args.ID), req)
	if err != nil {
		return nil, err
	}
	return &ingredientResolver{root: r, ing: ing}, nil
}

func (r *Resolver) ArchiveIngredient(ctx context.Context, args struct{ ID graphqlgo.ID }) (*ingredientResolver, error) {
	if _, err := auth.RequireRole(ctx, entity.RoleAdmin); err != nil {
		return nil, err
	}
	ing, err := r.ingredients.Archive(ctx, string(args.ID))
	if err != nil {
		return nil, err
	}
	return &ingredientResolver{root: r, ing: ing}, nil
}

type recordStockMovementInput struct {
	IngredientID graphqlgo.ID
	Type         string
	Quantity     float64
	Note         *string
}

// RecordStockMovement registra un movimiento del libro de stock. Exige
// autenticación (STAFF basta): performedBy sale del principal, nunca de la
// entrada del cliente.
func (r *Resolver) RecordStockMovement(ctx context.Context, args struct{ Input recordStockMovementInput }) (*movementResolver, error) {
	p, err := auth.RequireAuth(ctx)
	if err != nil {
		return nil, err
	}
	in := args.Input
	req := dto.RecordMovementRequest{
		IngredientID: string(in.IngredientID),
		Type:         in.Type,
		Quantity:     decimal.NewFromFloat(in.Quantity),
	}
	if in.Note != nil {
		req.Note = *in.Note
	}
	mov, err := r.ledger.RecordMovement(ctx, p.ID, req)
	if err != nil {
		return nil, err
	}
	return &movementResolver{root: r, mov: mov}, nil
}

type supplierInput struct {
	Name    string
	Contact *string
	Email   *string
	Phone   *string
	Address *string
}

func (r *Resolver) CreateSupplier(ctx context.Context, args struct{ Input supplierInput }) (*supplierResolver, error) {
	if _, err := auth.RequireRole(ctx, entity.RoleAdmin); err != nil {
		return nil, err
	}
	in := args.Input
	req := dto.CreateSupplierRequest{Name: in.Name}
	if in.Contact != nil {
		req.Contact = *in.Contact
	}
	if in.Email != nil {
		req.Email = *in.Email
	}
	if in.Phone != nil {
		req.Phone = *in.Phone
	}
	if in.Address != nil {
		req.Address = *in.Address
	}
	sup, err := r.suppliers.Create(ctx, req)
	if err != nil {
		return nil, err
	}
	return &supplierResolver{sup: sup}, nil
}

type updateSupplierInput struct {
	Name    *string
	Contact *string
	Email   *string
	Phone   *string
	Address *string
}

func (r *Resolver) UpdateSupplier(ctx context.Context, args struct {
	ID    graphqlgo.ID
	Input updateSupplierInput
}) (*supplierResolver, error) {
	if _, err := auth.RequireRole(ctx, entity.RoleAdmin); err != nil {
		return nil, err
	}
	in := args.Input
	sup, err := r.suppliers.Update(ctx, string(args.ID), dto.UpdateSupplierRequest{
		Name:    in.Name,
		Contact: in.Contact,
		Email:   in.Email,
		Phone:   in.Phone,
		Address: in.Address,
	})
	if err != nil {
		return nil, err
	}
	return &supplierResolver{sup: sup}, nil
}

func (r *Resolver) ingredientResolvers(list []*entity.Ingredient) []*ingredientResolver {
	out := make([]*ingredientResolver, 0, len(list))
	for _, ing := range list {
		out = append(out, &ingredientResolver{root: r, ing: ing})
	}
	return out
}

func (r *Resolver) movementResolvers(list []*entity.StockMovement) []*movementResolver {
	out := make([]*movementResolver, 0, len(list))
	for _, mov := range list {
		out = append(out, &movementResolver{root: r, mov: mov})
	}
	return out
}

func optDecimal(f *float64) *decimal.Decimal {
	if f == nil {
		return nil
	}
	d := decimal.NewFromFloat(*f)
	return &d
}
