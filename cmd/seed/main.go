// cmd/seed/main.go
//
// Seeds a demo catalog into the configured Postgres so a fresh install
// has something to sell. Safe to rerun against an empty database only.
package main

import (
	"context"
	"log"
	"time"

	"github.com/google/uuid"

	pgrepo "tiendapos/internal/adapters/out/db"
	"tiendapos/internal/domain/category"
	"tiendapos/internal/domain/product"
	appcfg "tiendapos/internal/infra/config"
	"tiendapos/internal/infra/database"
)

type seedProduct struct {
	sku      string
	name     string
	price    int
	stock    int
	category string
}

func main() {
	ctx := context.Background()
	cfg := appcfg.Load()

	db, err := database.NewConnection(cfg.DBHost, cfg.DBPort, cfg.DBUser, cfg.DBPassword, cfg.DBName)
	if err != nil {
		log.Fatalf("[seed] db connection failed: %v", err)
	}
	defer db.Close()

	categoryRepo := pgrepo.NewCategoryRepositoryPG(db.Client)
	productRepo := pgrepo.NewProductRepositoryPG(db.Client)

	now := time.Now().UTC()

	categories := []string{"Bebidas", "Snacks", "Aseo"}
	catIDs := map[string]string{}
	for _, name := range categories {
		c, err := category.New(uuid.NewString(), name, now)
		if err != nil {
			log.Fatalf("[seed] category %q: %v", name, err)
		}
		created, err := categoryRepo.Create(ctx, c)
		if err != nil {
			log.Fatalf("[seed] create category %q: %v", name, err)
		}
		catIDs[name] = created.ID
		log.Printf("[seed] category %s id=%s", name, created.ID)
	}

	// Prices in Chilean pesos, no decimals.
	products := []seedProduct{
		{sku: "BEB-001", name: "Coca-Cola 1.5L", price: 2500, stock: 24, category: "Bebidas"},
		{sku: "BEB-002", name: "Agua mineral 500ml", price: 900, stock: 48, category: "Bebidas"},
		{sku: "SNK-001", name: "Papas fritas 150g", price: 1500, stock: 30, category: "Snacks"},
		{sku: "SNK-002", name: "Mani salado 200g", price: 1800, stock: 20, category: "Snacks"},
		{sku: "ASE-001", name: "Detergente 1L", price: 3990, stock: 12, category: "Aseo"},
	}
	for _, sp := range products {
		sku := sp.sku
		catID := catIDs[sp.category]
		p, err := product.New(uuid.NewString(), sp.name, sp.price, sp.stock, &sku, &catID, now)
		if err != nil {
			log.Fatalf("[seed] product %q: %v", sp.name, err)
		}
		created, err := productRepo.Create(ctx, p)
		if err != nil {
			log.Fatalf("[seed] create product %q: %v", sp.name, err)
		}
		log.Printf("[seed] product %s id=%s", sp.name, created.ID)
	}

	log.Printf("[seed] done: %d categories, %d products", len(categories), len(products))
}
