package graphql_test

import (
	"context"
	"encoding/json"
	"sort"
	"testing"
	"time"

	graphqlgo "github.com/graph-gophers/graphql-go"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Cocina-api/internal/application/analytics"
	"github.com/jhoicas/Cocina-api/internal/application/auth"
	"github.com/jhoicas/Cocina-api/internal/application/inventory"
	"github.com/jhoicas/Cocina-api/internal/application/supplier"
	"github.com/jhoicas/Cocina-api/internal/domain"
	"github.com/jhoicas/Cocina-api/internal/domain/entity"
	"github.com/jhoicas/Cocina-api/internal/domain/repository"
	gql "github.com/jhoicas/Cocina-api/internal/interfaces/graphql"
)

// --- fakes en memoria de los puertos de persistencia ---

type fakeIngredientRepo struct {
	items map[string]*entity.Ingredient
}

func (r *fakeIngredientRepo) Create(_ context.Context, ing *entity.Ingredient) error {
	cp := *ing
	r.items[ing.ID] = &cp
	return nil
}

func (r *fakeIngredientRepo) GetByID(_ context.Context, id string) (*entity.Ingredient, error) {
	ing, ok := r.items[id]
	if !ok {
		return nil, nil
	}
	cp := *ing
	return &cp, nil
}

func (r *fakeIngredientRepo) Update(_ context.Context, ing *entity.Ingredient) error {
	if _, ok := r.items[ing.ID]; !ok {
		return domain.ErrNotFound
	}
	cp := *ing
	r.items[ing.ID] = &cp
	return nil
}

func (r *fakeIngredientRepo) List(_ context.Context, filter repository.IngredientFilter) ([]*entity.Ingredient, error) {
	var out []*entity.Ingredient
	for _, ing := range r.items {
		if ing.Archived != filter.Archived {
			continue
		}
		if filter.Category != nil && ing.Category != *filter.Category {
			continue
		}
		cp := *ing
		out = append(out, &cp)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (r *fakeIngredientRepo) IncrementStock(_ context.Context, id string, delta decimal.Decimal, now time.Time) (*entity.Ingredient, error) {
	ing, ok := r.items[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	newStock := ing.Stock.Add(delta)
	if newStock.IsNegative() {
		return nil, domain.ErrInsufficientStock
	}
	ing.Stock = newStock
	ing.UpdatedAt = now
	cp := *ing
	return &cp, nil
}

func (r *fakeIngredientRepo) SetStock(_ context.Context, id string, quantity decimal.Decimal, now time.Time) (*entity.Ingredient, error) {
	ing, ok := r.items[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	ing.Stock = quantity
	ing.UpdatedAt = now
	cp := *ing
	return &cp, nil
}

type fakeMovementRepo struct {
	movs []*entity.StockMovement
}

func (r *fakeMovementRepo) Create(_ context.Context, mov *entity.StockMovement) error {
	cp := *mov
	r.movs = append(r.movs, &cp)
	return nil
}

func (r *fakeMovementRepo) List(_ context.Context, ingredientID string, limit int) ([]*entity.StockMovement, error) {
	var out []*entity.StockMovement
	for _, m := range r.movs {
		if ingredientID != "" && m.IngredientID != ingredientID {
			continue
		}
		cp := *m
		out = append(out, &cp)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

type fakeSupplierRepo struct {
	items map[string]*entity.Supplier
}

func (r *fakeSupplierRepo) Create(_ context.Context, sup *entity.Supplier) error {
	cp := *sup
	r.items[sup.ID] = &cp
	return nil
}

func (r *fakeSupplierRepo) GetByID(_ context.Context, id string) (*entity.Supplier, error) {
	sup, ok := r.items[id]
	if !ok {
		return nil, nil
	}
	cp := *sup
	return &cp, nil
}

func (r *fakeSupplierRepo) Update(_ context.Context, sup *entity.Supplier) error {
	if _, ok := r.items[sup.ID]; !ok {
		return domain.ErrNotFound
	}
	cp := *sup
	r.items[sup.ID] = &cp
	return nil
}

func (r *fakeSupplierRepo) List(_ context.Context) ([]*entity.Supplier, error) {
	var out []*entity.Supplier
	for _, sup := range r.items {
		cp := *sup
		out = append(out, &cp)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

type fakeTxRunner struct {
	ingredients repository.IngredientRepository
	movements   repository.StockMovementRepository
}

func (r *fakeTxRunner) Run(ctx context.Context, fn func(
	ctx context.Context,
	ingredients repository.IngredientRepository,
	movements repository.StockMovementRepository,
) error) error {
	return fn(ctx, r.ingredients, r.movements)
}

// --- helpers ---

type testEnv struct {
	schema      *graphqlgo.Schema
	ingredients *fakeIngredientRepo
	movements   *fakeMovementRepo
	suppliers   *fakeSupplierRepo
}

func newEnv(items ...*entity.Ingredient) *testEnv {
	ingRepo := &fakeIngredientRepo{items: map[string]*entity.Ingredient{}}
	for _, ing := range items {
		cp := *ing
		ingRepo.items[ing.ID] = &cp
	}
	movRepo := &fakeMovementRepo{}
	supRepo := &fakeSupplierRepo{items: map[string]*entity.Supplier{}}

	ledger := inventory.NewLedgerUseCase(&fakeTxRunner{ingredients: ingRepo, movements: movRepo}, ingRepo, movRepo)
	ingredients := inventory.NewIngredientUseCase(ingRepo)
	suppliers := supplier.New(supRepo)
	dashboard := analytics.NewDashboardUseCase(ingRepo, movRepo)

	resolver := gql.NewResolver(ledger, ingredients, suppliers, dashboard)
	return &testEnv{
		schema:      gql.MustSchema(resolver),
		ingredients: ingRepo,
		movements:   movRepo,
		suppliers:   supRepo,
	}
}

func d(s string) decimal.Decimal {
	v, _ := decimal.NewFromString(s)
	return v
}

func ingredient(id, name, stock, threshold, cost string) *entity.Ingredient {
	now := time.Now()
	return &entity.Ingredient{
		ID:                id,
		Name:              name,
		Category:          entity.CategoryVegetables,
		Unit:              entity.UnitKG,
		Stock:             d(stock),
		LowStockThreshold: d(threshold),
		CostPerUnit:       d(cost),
		CreatedAt:         now,
		UpdatedAt:         now,
	}
}

func staffCtx() context.Context {
	return auth.WithPrincipal(context.Background(), &auth.Principal{
		ID: "u-staff", Email: "staff@cocina.test", Role: entity.RoleStaff,
	})
}

func adminCtx() context.Context {
	return auth.WithPrincipal(context.Background(), &auth.Principal{
		ID: "u-admin", Email: "admin@cocina.test", Role: entity.RoleAdmin,
	})
}

func exec(t *testing.T, env *testEnv, ctx context.Context, query string, vars map[string]interface{}) (map[string]interface{}, []string) {
	t.Helper()
	resp := env.schema.Exec(ctx, query, "", vars)
	var msgs []string
	for _, e := range resp.Errors {
		msgs = append(msgs, e.Message)
	}
	data := map[string]interface{}{}
	if len(resp.Data) > 0 {
		require.NoError(t, json.Unmarshal(resp.Data, &data))
	}
	return data, msgs
}

// --- tests ---

func TestMe_AnonimoDevuelveNull(t *testing.T) {
	env := newEnv()

	data, errs := exec(t, env, context.Background(), `{ me { id email } }`, nil)
	assert.Empty(t, errs, "me no exige autenticación")
	assert.Nil(t, data["me"], "petición anónima = me null")
}

func TestMe_AutenticadoDevuelvePrincipal(t *testing.T) {
	env := newEnv()

	data, errs := exec(t, env, staffCtx(), `{ me { id email role displayName } }`, nil)
	require.Empty(t, errs)
	me := data["me"].(map[string]interface{})
	assert.Equal(t, "u-staff", me["id"])
	assert.Equal(t, "staff@cocina.test", me["email"])
	assert.Equal(t, "STAFF", me["role"])
	assert.Equal(t, "staff@cocina.test", me["displayName"], "displayName cae al email")
}

func TestIngredients_AnonimoRechazado(t *testing.T) {
	env := newEnv(ingredient("i-1", "Tomates", "50", "15", "2.5"))

	_, errs := exec(t, env, context.Background(), `{ ingredients { id } }`, nil)
	require.NotEmpty(t, errs, "las lecturas exigen autenticación")
	assert.Contains(t, errs[0], "autenticación requerida")
}

func TestIngredients_CamposDerivados(t *testing.T) {
	env := newEnv(ingredient("i-1", "Tomates", "10", "15", "2.5"))

	data, errs := exec(t, env, staffCtx(), `{ ingredients { id stockStatus totalValue } }`, nil)
	require.Empty(t, errs)
	list := data["ingredients"].([]interface{})
	require.Len(t, list, 1)
	first := list[0].(map[string]interface{})
	assert.Equal(t, "LOW", first["stockStatus"], "stock 10 <= umbral 15")
	assert.InDelta(t, 25.0, first["totalValue"], 0.0001)
}

func TestRecordStockMovement_StaffPuede(t *testing.T) {
	env := newEnv(ingredient("i-1", "Tomates", "50", "15", "2.5"))

	data, errs := exec(t, env, staffCtx(), `
		mutation {
			recordStockMovement(input: { ingredientId: "i-1", type: OUT, quantity: 12.5 }) {
				id type quantity performedBy
			}
		}`, nil)
	require.Empty(t, errs, "STAFF puede registrar movimientos")

	mov := data["recordStockMovement"].(map[string]interface{})
	assert.Equal(t, "OUT", mov["type"])
	assert.InDelta(t, 12.5, mov["quantity"], 0.0001)
	assert.Equal(t, "u-staff", mov["performedBy"], "performedBy sale del principal")

	ing, _ := env.ingredients.GetByID(context.Background(), "i-1")
	assert.True(t, d("37.5").Equal(ing.Stock))
	assert.Len(t, env.movements.movs, 1)
}

func TestRecordStockMovement_SaldoInsuficiente(t *testing.T) {
	env := newEnv(ingredient("i-1", "Tomates", "10", "15", "2.5"))

	_, errs := exec(t, env, staffCtx(), `
		mutation {
			recordStockMovement(input: { ingredientId: "i-1", type: OUT, quantity: 15 }) { id }
		}`, nil)
	require.NotEmpty(t, errs)
	assert.Contains(t, errs[0], "stock insuficiente")
	assert.Empty(t, env.movements.movs, "en fallo no se escribe movimiento")
}

func TestCreateIngredient_StaffProhibido(t *testing.T) {
	env := newEnv()

	_, errs := exec(t, env, staffCtx(), `
		mutation {
			createIngredient(input: {
				name: "Cebollas", category: VEGETABLES, unit: KG,
				stock: 20, lowStockThreshold: 5, costPerUnit: 1.2
			}) { id }
		}`, nil)
	require.NotEmpty(t, errs, "la administración exige rol ADMIN")
	assert.Contains(t, errs[0], "permisos insuficientes")
}

func TestCreateIngredient_AdminCrea(t *testing.T) {
	env := newEnv()

	data, errs := exec(t, env, adminCtx(), `
		mutation {
			createIngredient(input: {
				name: "Cebollas", category: VEGETABLES, unit: KG,
				stock: 20, lowStockThreshold: 5, costPerUnit: 1.2
			}) { id name archived stockStatus }
		}`, nil)
	require.Empty(t, errs)
	ing := data["createIngredient"].(map[string]interface{})
	assert.Equal(t, "Cebollas", ing["name"])
	assert.Equal(t, false, ing["archived"])
	assert.Equal(t, "SAFE", ing["stockStatus"])
	assert.NotEmpty(t, ing["id"])
}

func TestIngredient_NoEncontrado(t *testing.T) {
	env := newEnv()

	_, errs := exec(t, env, staffCtx(), `{ ingredient(id: "nope") { id } }`, nil)
	require.NotEmpty(t, errs)
	assert.Contains(t, errs[0], "recurso no encontrado")
}

func TestIngredient_ProveedorReferenciaDebil(t *testing.T) {
	ing := ingredient("i-1", "Tomates", "50", "15", "2.5")
	ing.SupplierID = "s-borrado"
	env := newEnv(ing)

	data, errs := exec(t, env, staffCtx(), `{ ingredient(id: "i-1") { supplierId supplier { id } } }`, nil)
	require.Empty(t, errs, "una referencia a proveedor inexistente no es error")
	got := data["ingredient"].(map[string]interface{})
	assert.Equal(t, "s-borrado", got["supplierId"])
	assert.Nil(t, got["supplier"], "el lookup débil resuelve a null")
}

func TestCreateSupplier_AdminYLectura(t *testing.T) {
	env := newEnv()

	data, errs := exec(t, env, adminCtx(), `
		mutation {
			createSupplier(input: { name: "Fresh Produce Co.", email: "ventas@fresh.test" }) {
				id name email contact
			}
		}`, nil)
	require.Empty(t, errs)
	sup := data["createSupplier"].(map[string]interface{})
	assert.Equal(t, "Fresh Produce Co.", sup["name"])
	assert.Equal(t, "ventas@fresh.test", sup["email"])
	assert.Nil(t, sup["contact"], "campo vacío viaja como null")

	data, errs = exec(t, env, staffCtx(), `{ suppliers { name } }`, nil)
	require.Empty(t, errs)
	assert.Len(t, data["suppliers"].([]interface{}), 1)
}

func TestDashboardStats_Agregados(t *testing.T) {
	env := newEnv(
		ingredient("i-1", "Tomates", "10", "15", "2.5"),  // LOW, valor 25
		ingredient("i-2", "Cebollas", "40", "5", "1.25"), // SAFE, valor 50
	)

	data, errs := exec(t, env, staffCtx(), `
		{ dashboardStats { totalInventoryValue lowStockCount totalIngredients recentMovements { id } } }`, nil)
	require.Empty(t, errs)
	stats := data["dashboardStats"].(map[string]interface{})
	assert.InDelta(t, 75.0, stats["totalInventoryValue"], 0.0001)
	assert.EqualValues(t, 1, stats["lowStockCount"])
	assert.EqualValues(t, 2, stats["totalIngredients"])
	assert.Empty(t, stats["recentMovements"])
}

func TestStockMovements_FiltroPorIngrediente(t *testing.T) {
	env := newEnv(
		ingredient("i-1", "Tomates", "50", "15", "2.5"),
		ingredient("i-2", "Cebollas", "40", "5", "1.25"),
	)
	ctx := staffCtx()

	for _, q := range []string{
		`mutation { recordStockMovement(input: { ingredientId: "i-1", type: IN, quantity: 5 }) { id } }`,
		`mutation { recordStockMovement(input: { ingredientId: "i-2", type: IN, quantity: 3 }) { id } }`,
	} {
		_, errs := exec(t, env, ctx, q, nil)
		require.Empty(t, errs)
	}

	data, errs := exec(t, env, ctx, `{ stockMovements(ingredientId: "i-1") { ingredientId } }`, nil)
	require.Empty(t, errs)
	list := data["stockMovements"].([]interface{})
	require.Len(t, list, 1)
	assert.Equal(t, "i-1", list[0].(map[string]interface{})["ingredientId"])
}
