// seed applies the schema and reloads the demo catalog plus an initial admin
// account. Existing products are wiped first; the admin is upserted by email.
//
// Usage: go run ./cmd/seed
package main

import (
	"context"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/storefront-api/internal/domain/entity"
	"github.com/jhoicas/storefront-api/internal/infrastructure/postgres"
	"github.com/jhoicas/storefront-api/pkg/config"
	"github.com/jhoicas/storefront-api/pkg/logger"
)

const schemaPath = "internal/infrastructure/postgres/migrations/001_init.sql"

type seedProduct struct {
	name         string
	category     string
	brand        string
	image        string
	price        int64
	rating       string
	numReviews   int
	countInStock int
	description  string
}

var demoCatalog = []seedProduct{
	{"Free Shirt", "Shirts", "Nike", "https://res.cloudinary.com/dva7tsqq3/image/upload/v1670974779/products/r4hohkm53lssypqbxqmv.jpg", 70, "4.5", 8, 20, "A popular shirt"},
	{"Fit Shirt", "Shirts", "Adidas", "https://res.cloudinary.com/dva7tsqq3/image/upload/v1670961615/products/nxpxvt5rcj7d2apezpqt.jpg", 80, "3.2", 10, 20, "A popular shirt"},
	{"Slim Shirt", "Shirts", "Raymond", "https://res.cloudinary.com/dva7tsqq3/image/upload/v1670961664/products/abaxna5gsilbrripmtp2.jpg", 90, "4.5", 3, 20, "A popular shirt"},
	{"Golf Pants", "Pants", "Oliver", "https://res.cloudinary.com/dva7tsqq3/image/upload/v1670961689/products/bxvoo3venx8aomxmevy8.jpg", 90, "2.9", 13, 20, "Smart looking pants"},
	{"Fit Pants", "Pants", "Zara", "https://res.cloudinary.com/dva7tsqq3/image/upload/v1670961716/products/tt3ewivszofv3ha34nih.jpg", 95, "3.5", 7, 20, "A popular pants"},
	{"Classic Pants", "Pants", "Casely", "https://res.cloudinary.com/dva7tsqq3/image/upload/v1670961736/products/dsnmcxsehmq7tgqmnehk.jpg", 75, "2.4", 14, 20, "A popular pants"},
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("load configuration: " + err.Error())
	}
	log := logger.New(logger.Config{Env: cfg.App.Env, Level: "info"})

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("PostgreSQL connection")
	}
	defer pool.Close()

	schema, err := os.ReadFile(schemaPath)
	if err != nil {
		log.Fatal().Err(err).Str("path", schemaPath).Msg("read schema")
	}
	if _, err := pool.Exec(ctx, string(schema)); err != nil {
		log.Fatal().Err(err).Msg("apply schema")
	}
	log.Info().Msg("schema applied")

	if _, err := pool.Exec(ctx, `DELETE FROM products`); err != nil {
		log.Fatal().Err(err).Msg("wipe products")
	}

	productRepo := postgres.NewProductRepository(pool)
	now := time.Now()
	for _, sp := range demoCatalog {
		rating, err := decimal.NewFromString(sp.rating)
		if err != nil {
			log.Fatal().Err(err).Str("product", sp.name).Msg("parse rating")
		}
		p := &entity.Product{
			ID:           uuid.New().String(),
			Name:         sp.name,
			Category:     sp.category,
			Brand:        sp.brand,
			Image:        sp.image,
			Price:        decimal.NewFromInt(sp.price),
			Rating:       rating,
			NumReviews:   sp.numReviews,
			CountInStock: sp.countInStock,
			Description:  sp.description,
			CreatedAt:    now,
			UpdatedAt:    now,
		}
		if err := productRepo.Create(p); err != nil {
			log.Fatal().Err(err).Str("product", sp.name).Msg("insert product")
		}
	}
	log.Info().Int("count", len(demoCatalog)).Msg("demo catalog loaded")

	userRepo := postgres.NewUserRepository(pool)
	if err := seedAdmin(userRepo, now); err != nil {
		log.Fatal().Err(err).Msg("seed admin")
	}
	log.Info().Str("email", adminEmail).Msg("admin account ready")

	log.Info().Msg("seeding done")
}

const adminEmail = "admin@example.com"

// seedAdmin creates the initial admin account unless it already exists. The
// password comes from ADMIN_PASSWORD and defaults to a development value.
func seedAdmin(users *postgres.UserRepo, now time.Time) error {
	existing, err := users.GetByEmail(adminEmail)
	if err != nil {
		return err
	}
	if existing != nil {
		return nil
	}

	password := os.Getenv("ADMIN_PASSWORD")
	if password == "" {
		password = "changeme123"
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	return users.Create(&entity.User{
		ID:           uuid.New().String(),
		Name:         "Admin",
		Email:        adminEmail,
		PasswordHash: string(hash),
		Roles:        []string{entity.RoleAdmin, entity.RoleUser},
		CreatedAt:    now,
		UpdatedAt:    now,
	})
}
