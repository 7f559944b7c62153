// Command seed migrates the storefront schema and loads the sample catalog.
// It is idempotent: a non-empty catalog is left untouched.
package main

import (
	"context"
	"log/slog"
	"os"

	"storefront/config"
	"storefront/internal/domain/entity"
	"storefront/internal/domain/repository"
	logs "storefront/internal/infra/log"
	"storefront/internal/infra/persistence/postgres"

	pgLib "github.com/slighter12/go-lib/database/postgres"
	"github.com/shopspring/decimal"
)

func main() {
	cfg, err := config.New()
	if err != nil {
		slog.Error("Failed to load config", slog.Any("error", err))
		os.Exit(1)
	}

	logger, err := logs.New(logs.Params{Config: cfg})
	if err != nil {
		slog.Error("Failed to create logger", slog.Any("error", err))
		os.Exit(1)
	}

	db, err := pgLib.New(cfg.Postgres)
	if err != nil {
		logger.Error("Failed to connect to PostgreSQL", slog.Any("error", err))
		os.Exit(1)
	}

	if err := postgres.AutoMigrate(db); err != nil {
		logger.Error("Failed to migrate schema", slog.Any("error", err))
		os.Exit(1)
	}
	logger.Info("Schema migrated")

	ctx := context.Background()
	productRepo := postgres.NewProductRepository(db)

	existing, err := productRepo.ListProducts(ctx, repository.ProductFilter{})
	if err != nil {
		logger.Error("Failed to inspect catalog", slog.Any("error", err))
		os.Exit(1)
	}
	if len(existing) > 0 {
		logger.Info("Catalog already seeded", slog.Int("products", len(existing)))

		return
	}

	for _, product := range sampleProducts() {
		if err := productRepo.CreateProduct(ctx, product); err != nil {
			logger.Error("Failed to seed product",
				slog.String("name", product.Name),
				slog.Any("error", err),
			)
			os.Exit(1)
		}
	}

	logger.Info("Catalog seeded", slog.Int("products", len(sampleProducts())))
}

func sampleProducts() []*entity.Product {
	return []*entity.Product{
		{
			Name:        "Street Oversized Tee",
			Description: "Premium cotton oversized t-shirt with urban graphic print. Heavyweight fabric for structured drape.",
			Price:       decimal.RequireFromString("35.00"),
			Category:    "T-Shirts",
			Images:      []string{"https://images.unsplash.com/photo-1576566588028-4147f3842f27?w=800&q=80"},
			Stock:       100,
			Colors:      []string{"Black", "White", "Olive"},
			Sizes:       []string{"S", "M", "L", "XL", "XXL"},
			Tags:        []string{"oversized", "graphic", "cotton"},
		},
		{
			Name:        "Cargo Tech Joggers",
			Description: "Functional cargo joggers with multiple pockets and tapered fit. Water-resistant material.",
			Price:       decimal.RequireFromString("65.00"),
			Category:    "Joggers",
			Images:      []string{"https://images.unsplash.com/photo-1552374196-1ab2a1c593e8?w=800&q=80"},
			Stock:       50,
			Colors:      []string{"Black", "Khaki"},
			Sizes:       []string{"S", "M", "L", "XL"},
			Tags:        []string{"techwear", "cargo", "pants"},
		},
		{
			Name:        "Urban Hoodie",
			Description: "Essential streetwear hoodie with drop shoulders and kangaroo pocket. Soft fleece lining.",
			Price:       decimal.RequireFromString("55.00"),
			Category:    "Hoodies",
			Images:      []string{"https://images.unsplash.com/photo-1556905055-8f358a7a47b2?w=800&q=80"},
			Stock:       75,
			Colors:      []string{"Black", "Grey", "Navy"},
			Sizes:       []string{"S", "M", "L", "XL"},
			Tags:        []string{"essential", "hoodie", "fleece"},
		},
		{
			Name:        "Boxy Fit Shirt",
			Description: "Short sleeve button-up shirt with boxy silhouette. Abstract pattern print.",
			Price:       decimal.RequireFromString("45.00"),
			Category:    "Shirts",
			Images:      []string{"https://images.unsplash.com/photo-1596755094514-f87e34085b2c?w=800&q=80"},
			Stock:       40,
			Colors:      []string{"Multi"},
			Sizes:       []string{"M", "L", "XL"},
			Tags:        []string{"pattern", "summer", "boxy"},
		},
		{
			Name:        "Distressed Denim Jacket",
			Description: "Vintage wash denim jacket with distressed details and custom hardware.",
			Price:       decimal.RequireFromString("85.00"),
			Category:    "Jackets",
			Images:      []string{"https://images.unsplash.com/photo-1576871337632-b9aef4c17ab9?w=800&q=80"},
			Stock:       30,
			Colors:      []string{"Blue Wash"},
			Sizes:       []string{"S", "M", "L", "XL"},
			Tags:        []string{"denim", "vintage", "outerwear"},
		},
	}
}
