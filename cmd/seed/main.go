// seed puebla el almacén con datos de ejemplo (proveedores e ingredientes)
// para desarrollo local. Escribe a través de los casos de uso, nunca directo
// a las colecciones, así los datos pasan por la misma validación que la API.
//
// Uso: go run ./cmd/seed
package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/Cocina-api/internal/application/dto"
	"github.com/jhoicas/Cocina-api/internal/application/inventory"
	"github.com/jhoicas/Cocina-api/internal/application/supplier"
	"github.com/jhoicas/Cocina-api/internal/infrastructure/mongodb"
	"github.com/jhoicas/Cocina-api/pkg/config"
	"github.com/jhoicas/Cocina-api/pkg/logger"
)

type seedIngredient struct {
	name       string
	category   string
	unit       string
	stock      string
	threshold  string
	cost       string
	supplier   int // índice en los proveedores creados; -1 = sin proveedor
	expiryDays int // 0 = sin fecha de vencimiento
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "cargar configuración: %v\n", err)
		os.Exit(1)
	}

	log := logger.New(logger.Config{Env: cfg.App.Env, Level: "info"})

	ctx := context.Background()
	client, err := mongodb.NewClient(ctx, cfg.Mongo)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a MongoDB")
	}
	defer func() { _ = client.Disconnect(context.Background()) }()

	db := client.Database(cfg.Mongo.Database)
	supplierUC := supplier.New(mongodb.NewSupplierRepository(db))
	ingredientUC := inventory.NewIngredientUseCase(mongodb.NewIngredientRepository(db))

	suppliers := []dto.CreateSupplierRequest{
		{
			Name:    "Fresh Produce Co.",
			Contact: "John Smith",
			Email:   "john@freshproduce.com",
			Phone:   "+1-555-0101",
			Address: "123 Market Street, Farmville, CA 90210",
		},
		{
			Name:    "Ocean Fresh Seafood",
			Contact: "Sarah Johnson",
			Email:   "sarah@oceanfresh.com",
			Phone:   "+1-555-0102",
			Address: "456 Harbor Drive, Seaside, CA 90211",
		},
		{
			Name:    "Prime Meats & Poultry",
			Contact: "Mike Davis",
			Email:   "mike@primemeats.com",
			Phone:   "+1-555-0103",
			Address: "789 Ranch Road, Meatville, CA 90212",
		},
	}

	supplierIDs := make([]string, 0, len(suppliers))
	for _, req := range suppliers {
		sup, err := supplierUC.Create(ctx, req)
		if err != nil {
			log.Fatal().Err(err).Str("supplier", req.Name).Msg("crear proveedor")
		}
		supplierIDs = append(supplierIDs, sup.ID)
		log.Info().Str("supplier", sup.Name).Msg("proveedor creado")
	}

	ingredients := []seedIngredient{
		{"Tomatoes", "VEGETABLES", "KG", "50", "15", "2.50", 0, 7},
		{"Lettuce", "VEGETABLES", "KG", "30", "10", "1.80", 0, 5},
		{"Onions", "VEGETABLES", "KG", "40", "20", "1.50", 0, 0},
		{"Chicken Breast", "MEAT", "KG", "25", "10", "8.50", 2, 3},
		{"Ground Beef", "MEAT", "KG", "20", "8", "9.00", 2, 4},
		{"Salmon Fillet", "SEAFOOD", "KG", "15", "5", "15.00", 1, 2},
		{"Shrimp", "SEAFOOD", "KG", "8", "5", "18.00", 1, 2},
		{"Milk", "DAIRY", "LITERS", "60", "20", "1.20", -1, 6},
		{"Cheese", "DAIRY", "KG", "12", "5", "12.00", -1, 14},
		{"Rice", "GRAINS", "KG", "100", "30", "1.50", -1, 0},
		{"Pasta", "GRAINS", "KG", "45", "15", "2.00", -1, 0},
		{"Olive Oil", "CONDIMENTS", "LITERS", "25", "10", "8.00", -1, 0},
		{"Salt", "SPICES", "KG", "20", "5", "0.80", -1, 0},
		{"Black Pepper", "SPICES", "KG", "5", "2", "15.00", -1, 0},
		{"Orange Juice", "BEVERAGES", "LITERS", "40", "15", "3.50", -1, 10},
	}

	for _, s := range ingredients {
		req := dto.CreateIngredientRequest{
			Name:              s.name,
			Category:          s.category,
			Unit:              s.unit,
			Stock:             mustDecimal(s.stock),
			LowStockThreshold: mustDecimal(s.threshold),
			CostPerUnit:       mustDecimal(s.cost),
		}
		if s.supplier >= 0 {
			req.SupplierID = supplierIDs[s.supplier]
		}
		if s.expiryDays > 0 {
			d := expiryIn(s.expiryDays)
			req.ExpiryDate = &d
		}
		if _, err := ingredientUC.Create(ctx, req); err != nil {
			log.Fatal().Err(err).Str("ingredient", s.name).Msg("crear ingrediente")
		}
		log.Info().Str("ingredient", s.name).Msg("ingrediente creado")
	}

	log.Info().
		Int("suppliers", len(suppliers)).
		Int("ingredients", len(ingredients)).
		Msg("datos de ejemplo cargados")
}

func mustDecimal(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		panic("seed: decimal inválido: " + s)
	}
	return d
}

func expiryIn(days int) string {
	return time.Now().AddDate(0, 0, days).Format("2006-01-02")
}
