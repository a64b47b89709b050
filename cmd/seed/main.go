package main

import (
	"context"
	"os"
	"strings"

	"github.com/joho/godotenv"

	"github.com/shopease/shopease-backend/pkg/config"
	"github.com/shopease/shopease-backend/pkg/db"
	"github.com/shopease/shopease-backend/pkg/logger"
)

// sqliteSchema bootstraps the file engine in one shot. The server engine
// gets its schema from the goose migrations instead.
var sqliteSchema = []string{
	`CREATE TABLE IF NOT EXISTS products (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    name TEXT NOT NULL,
    category TEXT NOT NULL,
    short_desc TEXT NOT NULL,
    long_desc TEXT NOT NULL,
    price NUMERIC(10, 2) NOT NULL,
    rating NUMERIC(2, 1) NOT NULL DEFAULT 0,
    stock_quantity INTEGER NOT NULL DEFAULT 0,
    image_url TEXT,
    created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
)`,
	`CREATE INDEX IF NOT EXISTS idx_products_category ON products (category)`,
	`CREATE TABLE IF NOT EXISTS enquiries (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    product_id INTEGER,
    name TEXT NOT NULL,
    email TEXT NOT NULL,
    phone TEXT,
    message TEXT NOT NULL,
    status TEXT NOT NULL DEFAULT 'Pending',
    created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
)`,
	`CREATE INDEX IF NOT EXISTS idx_enquiries_product_id ON enquiries (product_id)`,
}

type seedProduct struct {
	name, category, shortDesc, longDesc string
	price, rating                       float64
	stock                               int
	imageURL                            string
}

var sampleProducts = []seedProduct{
	{"Walnut Writing Desk", "Furniture", "Solid walnut desk with two drawers",
		"A mid-century writing desk in solid walnut with dovetailed drawers and brass pulls.",
		499.99, 4.8, 12, "/images/walnut-desk.jpg"},
	{"Oak Bookshelf", "Furniture", "Five-shelf oak bookcase",
		"Open-back oak bookcase with adjustable shelves and a hand-rubbed oil finish.",
		289.00, 4.5, 20, "/images/oak-bookshelf.jpg"},
	{"Linen Sofa", "Furniture", "Three-seat sofa in stonewashed linen",
		"A deep-seated three-seater upholstered in stonewashed Belgian linen over a beech frame.",
		1249.00, 4.7, 5, "/images/linen-sofa.jpg"},
	{"Brass Floor Lamp", "Lighting", "Adjustable brass reading lamp",
		"An articulated floor lamp in aged brass with a weighted marble base and dimmer.",
		189.50, 4.6, 30, "/images/brass-floor-lamp.jpg"},
	{"Rattan Pendant Light", "Lighting", "Hand-woven rattan pendant",
		"A hand-woven rattan pendant shade that throws a warm, patterned light.",
		129.00, 4.3, 25, "/images/rattan-pendant.jpg"},
	{"Ceramic Table Lamp", "Lighting", "Glazed ceramic lamp with linen shade",
		"A reactive-glaze ceramic base topped with a natural linen drum shade.",
		98.00, 4.4, 40, "/images/ceramic-lamp.jpg"},
	{"Wool Area Rug", "Decor", "Hand-tufted wool rug, 160x230cm",
		"A hand-tufted rug in undyed wool with a subtle geometric weave.",
		349.00, 4.9, 8, "/images/wool-rug.jpg"},
	{"Stoneware Vase Set", "Decor", "Set of three stoneware vases",
		"Three matte stoneware vases in graduated heights, each thrown by hand.",
		74.00, 4.2, 50, "/images/stoneware-vases.jpg"},
}

func main() {
	logg := logger.New(logger.Options{ServiceName: "seed"})

	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		logg.Error(context.Background(), "failed to load config", err)
		os.Exit(1)
	}

	logg = logger.New(logger.Options{
		ServiceName: "seed",
		Level:       logger.ParseLevel(cfg.App.LogLevel),
	})

	ctx := logg.WithFields(context.Background(), map[string]any{
		"env":    cfg.App.Env,
		"driver": cfg.DB.Driver,
	})

	client, err := db.New(ctx, cfg.DB, logg)
	if err != nil {
		logg.Error(ctx, "failed to bootstrap database", err)
		os.Exit(1)
	}
	defer client.Close()

	if strings.EqualFold(cfg.DB.Driver, config.DriverSQLite) {
		for _, stmt := range sqliteSchema {
			if _, err := client.Execute(ctx, stmt); err != nil {
				logg.Error(ctx, "failed to create schema", err)
				os.Exit(1)
			}
		}
		logg.Info(ctx, "schema created")
	}

	var count struct {
		Total int64 `gorm:"column:total"`
	}
	if _, err := client.FetchOne(ctx, &count, "SELECT COUNT(*) AS total FROM products"); err != nil {
		logg.Error(ctx, "failed to inspect catalog", err)
		os.Exit(1)
	}
	if count.Total > 0 {
		logg.Info(logg.WithField(ctx, "products", count.Total), "catalog already seeded, nothing to do")
		return
	}

	for _, p := range sampleProducts {
		_, err := client.Insert(ctx,
			`INSERT INTO products (name, category, short_desc, long_desc, price, rating, stock_quantity, image_url) VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
			p.name, p.category, p.shortDesc, p.longDesc, p.price, p.rating, p.stock, p.imageURL)
		if err != nil {
			logg.Error(logg.WithField(ctx, "product", p.name), "failed to seed product", err)
			os.Exit(1)
		}
	}

	logg.Info(logg.WithField(ctx, "products", len(sampleProducts)), "seeding completed")
}
