package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/joho/godotenv"

	"github.com/hrc-store/storefront/internal/catalog"
	"github.com/hrc-store/storefront/internal/config"
	"github.com/hrc-store/storefront/internal/domain"
	"github.com/hrc-store/storefront/internal/receipt"
	"github.com/hrc-store/storefront/internal/session"
	"github.com/hrc-store/storefront/internal/source"
)

// storefront previews the merchandised catalog from a backend export file,
// the same listing the web storefront renders.
func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	if err := godotenv.Load(); err != nil {
		logger.Info("no .env file found, using environment as-is")
	}

	cfg, err := config.FromEnv()
	if err != nil {
		logger.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	path := os.Getenv("STOREFRONT_CATALOG")
	if path == "" {
		path = "catalog.json"
	}

	ctx := context.Background()
	src := source.NewFileSource(path)

	products, err := src.Products(ctx)
	if err != nil {
		logger.Error("failed to load products", "error", err, "path", path)
		os.Exit(1)
	}

	categories, err := src.Categories(ctx)
	if err != nil {
		logger.Error("failed to load categories", "error", err, "path", path)
		os.Exit(1)
	}

	criteria := cfg.DefaultCriteria()
	if v := os.Getenv("STOREFRONT_CATEGORY"); v != "" {
		criteria.Category = v
	}
	criteria.Search = os.Getenv("STOREFRONT_SEARCH")

	listing := catalog.New(cfg.PriorityFragments).Apply(products, criteria)
	logger.Info("catalog loaded",
		"products", len(products), "categories", len(categories), "listed", len(listing))

	fmt.Printf("%s — catalog preview\n", cfg.StoreName)
	for _, c := range categories {
		fmt.Printf("  [%d] %s\n", c.DisplayOrder, c.Name)
	}
	fmt.Println()
	for i, p := range listing {
		fmt.Printf("%3d. %-40s %s%s  (%s)\n",
			i+1, p.Name, cfg.Currency, p.Price.StringFixed(2), p.Category)
	}

	if os.Getenv("STOREFRONT_SAMPLE_ORDER") == "1" && len(listing) > 0 {
		printSampleOrder(cfg, listing, logger)
	}
}

// printSampleOrder runs one add-to-cart flow against the top listing entries
// and renders the order message a shopper would send.
func printSampleOrder(cfg config.Config, listing []domain.Product, logger *slog.Logger) {
	sess := session.New(cfg.Pricing, nil, logger)
	sess.AddItem(listing[0], domain.UnitDozen)
	if len(listing) > 1 {
		sess.AddItem(listing[1], domain.UnitSingle)
		sess.AddItem(listing[1], domain.UnitSingle)
	}

	store := receipt.StoreInfo{
		Name:         cfg.StoreName,
		ContactPhone: cfg.ContactPhone,
		Currency:     cfg.Currency,
	}
	fmt.Println()
	fmt.Print(receipt.Build(sess.Cart(), cfg.Pricing, store))
}
