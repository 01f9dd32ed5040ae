package graphql

import (
	"context"
	"errors"
	"time"

	graphqlgo "github.com/graph-gophers/graphql-go"

	"github.com/jhoicas/Cocina-api/internal/application/auth"
	"github.com/jhoicas/Cocina-api/internal/application/dto"
	"github.com/jhoicas/Cocina-api/internal/domain"
	"github.com/jhoicas/Cocina-api/internal/domain/entity"
	domaininv "github.com/jhoicas/Cocina-api/internal/domain/inventory"
)

// ingredientResolver envuelve un ingrediente del dominio. stockStatus y
// totalValue se derivan aquí en cada lectura; supplier es un lookup perezoso
// de la referencia débil (null si no resuelve).
type ingredientResolver struct {
	root *Resolver
	ing  *entity.Ingredient
}

func (x *ingredientResolver) ID() graphqlgo.ID { return graphqlgo.ID(x.ing.ID) }
func (x *ingredientResolver) Name() string     { return x.ing.Name }
func (x *ingredientResolver) Category() string { return string(x.ing.Category) }
func (x *ingredientResolver) Unit() string     { return string(x.ing.Unit) }

func (x *ingredientResolver) Stock() float64             { return x.ing.Stock.InexactFloat64() }
func (x *ingredientResolver) LowStockThreshold() float64 { return x.ing.LowStockThreshold.InexactFloat64() }
func (x *ingredientResolver) CostPerUnit() float64       { return x.ing.CostPerUnit.InexactFloat64() }

func (x *ingredientResolver) SupplierID() *graphqlgo.ID {
	if x.ing.SupplierID == "" {
		return nil
	}
	id := graphqlgo.ID(x.ing.SupplierID)
	return &id
}

func (x *ingredientResolver) Supplier(ctx context.Context) (*supplierResolver, error) {
	sup, err := x.root.suppliers.Lookup(ctx, x.ing.SupplierID)
	if err != nil {
		return nil, err
	}
	if sup == nil {
		return nil, nil
	}
	return &supplierResolver{sup: sup}, nil
}

func (x *ingredientResolver) ExpiryDate() *string {
	if x.ing.ExpiryDate == nil {
		return nil
	}
	s := x.ing.ExpiryDate.Format(time.RFC3339)
	return &s
}

func (x *ingredientResolver) Archived() bool { return x.ing.Archived }

func (x *ingredientResolver) StockStatus() string {
	return string(domaininv.Status(x.ing.Stock, x.ing.LowStockThreshold))
}

func (x *ingredientResolver) TotalValue() float64 {
	return domaininv.TotalValue(x.ing.Stock, x.ing.CostPerUnit).InexactFloat64()
}

func (x *ingredientResolver) CreatedAt() string { return x.ing.CreatedAt.Format(time.RFC3339) }
func (x *ingredientResolver) UpdatedAt() string { return x.ing.UpdatedAt.Format(time.RFC3339) }

// movementResolver envuelve una entrada del libro de stock.
type movementResolver struct {
	root *Resolver
	mov  *entity.StockMovement
}

func (x *movementResolver) ID() graphqlgo.ID           { return graphqlgo.ID(x.mov.ID) }
func (x *movementResolver) IngredientID() graphqlgo.ID { return graphqlgo.ID(x.mov.IngredientID) }
func (x *movementResolver) Type() string               { return string(x.mov.Type) }
func (x *movementResolver) Quantity() float64          { return x.mov.Quantity.InexactFloat64() }

func (x *movementResolver) Note() *string { return optStr(x.mov.Note) }

// Ingredient resuelve el ingrediente del movimiento; null si ya no existe
// (el libro de stock sobrevive a sus ingredientes).
func (x *movementResolver) Ingredient(ctx context.Context) (*ingredientResolver, error) {
	ing, err := x.root.ingredients.Get(ctx, x.mov.IngredientID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &ingredientResolver{root: x.root, ing: ing}, nil
}

func (x *movementResolver) PerformedBy() graphqlgo.ID { return graphqlgo.ID(x.mov.PerformedBy) }

// PerformedByUser deriva una vista mínima del autor del movimiento. Si el
// principal de la petición es el autor se usan sus datos; en otro caso un
// placeholder STAFF (no hay almacén local de usuarios).
func (x *movementResolver) PerformedByUser(ctx context.Context) *userResolver {
	if p := auth.PrincipalFrom(ctx); p != nil && p.ID == x.mov.PerformedBy {
		return &userResolver{user: entity.User{
			ID:          p.ID,
			Email:       p.Email,
			DisplayName: p.Email,
			Role:        p.Role,
			CreatedAt:   time.Now(),
		}}
	}
	return &userResolver{user: entity.User{
		ID:        x.mov.PerformedBy,
		Email:     "user@example.com",
		Role:      entity.RoleStaff,
		CreatedAt: time.Now(),
	}}
}

func (x *movementResolver) CreatedAt() string { return x.mov.CreatedAt.Format(time.RFC3339) }

// supplierResolver envuelve un proveedor del registro.
type supplierResolver struct {
	sup *entity.Supplier
}

func (x *supplierResolver) ID() graphqlgo.ID  { return graphqlgo.ID(x.sup.ID) }
func (x *supplierResolver) Name() string      { return x.sup.Name }
func (x *supplierResolver) Contact() *string  { return optStr(x.sup.Contact) }
func (x *supplierResolver) Email() *string    { return optStr(x.sup.Email) }
func (x *supplierResolver) Phone() *string    { return optStr(x.sup.Phone) }
func (x *supplierResolver) Address() *string  { return optStr(x.sup.Address) }
func (x *supplierResolver) CreatedAt() string { return x.sup.CreatedAt.Format(time.RFC3339) }
func (x *supplierResolver) UpdatedAt() string { return x.sup.UpdatedAt.Format(time.RFC3339) }

// userResolver envuelve la vista mínima de usuario derivada del token.
type userResolver struct {
	user entity.User
}

func (x *userResolver) ID() graphqlgo.ID      { return graphqlgo.ID(x.user.ID) }
func (x *userResolver) Email() string         { return x.user.Email }
func (x *userResolver) Role() string          { return string(x.user.Role) }
func (x *userResolver) DisplayName() *string  { return optStr(x.user.DisplayName) }
func (x *userResolver) CreatedAt() string     { return x.user.CreatedAt.Format(time.RFC3339) }

// dashboardResolver envuelve los agregados del dashboard.
type dashboardResolver struct {
	root  *Resolver
	stats *dto.DashboardStatsDTO
}

func (x *dashboardResolver) TotalInventoryValue() float64 {
	return x.stats.TotalInventoryValue.InexactFloat64()
}
func (x *dashboardResolver) LowStockCount() int32    { return int32(x.stats.LowStockCount) }
func (x *dashboardResolver) ExpiringCount() int32    { return int32(x.stats.ExpiringCount) }
func (x *dashboardResolver) TotalIngredients() int32 { return int32(x.stats.TotalIngredients) }

func (x *dashboardResolver) RecentMovements() []*movementResolver {
	return x.root.movementResolvers(x.stats.RecentMovements)
}

func optStr(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
