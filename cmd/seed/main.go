package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"time"

	"elite-gym-console/internal/config"
	pg "elite-gym-console/internal/infra/db/postgres"
	"elite-gym-console/internal/usecase"
)

func main() {
	cfgPath := flag.String("config", "config.yaml", "path to YAML config file")
	flag.Parse()

	cfg, err := config.LoadConfig(*cfgPath, true)
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	pool, err := pg.NewPgxPool(ctx, cfg.Database.URL, 4)
	if err != nil {
		log.Fatalf("postgres: %v", err)
	}
	defer pool.Close()

	productRepo := pg.NewProductRepo(pool)
	productUC := usecase.NewProductUseCase(productRepo)

	// If products already exist, do nothing
	products, err := productUC.List(ctx)
	if err != nil {
		log.Fatalf("list products: %v", err)
	}
	if len(products) > 0 {
		fmt.Printf("%d products already present. No changes.\n", len(products))
		for _, p := range products {
			fmt.Printf("  - %s (price=%d, stock=%d)\n", p.Name, p.Price, p.Stock)
		}
		return
	}

	// Seed a small counter inventory for testing the POS flow
	seed := []struct {
		Name     string
		Price    int64
		Stock    int
		Category string
	}{
		{"Agua Mineral 500ml", 4_000, 48, "drinks"},
		{"Gatorade 500ml", 9_000, 24, "drinks"},
		{"Barra de Proteina", 12_000, 30, "snacks"},
		{"Shaker", 35_000, 10, "gear"},
		{"Toalla", 25_000, 15, "gear"},
	}

	for _, s := range seed {
		p, err := productUC.Create(ctx, s.Name, s.Price, s.Stock, s.Category, "")
		if err != nil {
			log.Fatalf("create product %q: %v", s.Name, err)
		}
		fmt.Printf("created product %q (id=%d)\n", p.Name, p.ID)
	}
	fmt.Println("seed complete.")
}
