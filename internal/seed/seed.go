// Package seed fills an empty schema with a demo catalog: categories, a fixed product range,
// designer accounts with generated designs, customers and product reviews.
package seed

import (
	"context"
	"fmt"
	"strings"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/nikolayk812/podstudio/internal/catalog"
	"github.com/nikolayk812/podstudio/internal/db"
	"github.com/shopspring/decimal"
	"golang.org/x/text/currency"
)

type Options struct {
	// Seed makes the generated data reproducible. Zero picks a random seed.
	Seed      uint64
	Designers int
	Customers int
	Designs   int
	Reviews   int
	Currency  currency.Unit
}

func DefaultOptions() Options {
	return Options{
		Seed:      1,
		Designers: 3,
		Customers: 5,
		Designs:   12,
		Reviews:   20,
		Currency:  currency.USD,
	}
}

type Result struct {
	Categories int
	Products   []uuid.UUID
	Designers  []uuid.UUID
	Customers  []uuid.UUID
	Designs    []uuid.UUID
	Reviews    int
}

type productTemplate struct {
	name        string
	description string
	price       string
	colors      []string
	sizes       []string
}

var categoryNames = map[string]string{
	"t-shirt":    "T-Shirts",
	"hoodie":     "Hoodies",
	"mug":        "Mugs",
	"poster":     "Posters",
	"phone-case": "Phone Cases",
	"tote-bag":   "Tote Bags",
}

var garmentSizes = []string{"S", "M", "L", "XL"}

var products = map[string][]productTemplate{
	"t-shirt": {
		{"Classic Tee", "Soft cotton crew neck.", "19.99", []string{"black", "white", "navy"}, garmentSizes},
		{"Premium Tee", "Heavyweight organic cotton.", "24.99", []string{"black", "white", "heather"}, garmentSizes},
	},
	"hoodie": {
		{"Pullover Hoodie", "Fleece-lined with kangaroo pocket.", "39.99", []string{"black", "grey"}, garmentSizes},
	},
	"mug": {
		{"Ceramic Mug", "11oz glossy ceramic.", "14.99", []string{"white"}, nil},
	},
	"poster": {
		{"Matte Poster", "Museum-grade matte paper.", "17.99", nil, []string{"A3", "A2"}},
	},
	"phone-case": {
		{"Slim Phone Case", "Impact-resistant slim shell.", "21.99", []string{"clear", "black"}, nil},
	},
	"tote-bag": {
		{"Canvas Tote", "Heavy canvas with long handles.", "16.99", []string{"natural", "black"}, nil},
	},
}

var designStyles = []string{"minimalist", "vintage", "bold", "hand-drawn", "geometric", "retro"}

// Run inserts the demo data through q. Run it on queries bound to a transaction so a
// failure leaves the schema untouched.
func Run(ctx context.Context, q *db.Queries, opts Options) (Result, error) {
	if opts.Designs > 0 && opts.Designers < 1 {
		return Result{}, fmt.Errorf("designs need at least one designer")
	}
	if opts.Reviews > 0 && opts.Customers < 1 {
		return Result{}, fmt.Errorf("reviews need at least one customer")
	}
	if opts.Currency == (currency.Unit{}) {
		opts.Currency = currency.USD
	}

	faker := gofakeit.New(opts.Seed)
	newID := func() uuid.UUID { return uuid.MustParse(faker.UUID()) }

	var result Result

	for _, slug := range catalog.Categories() {
		err := q.CreateCategory(ctx, db.CreateCategoryParams{
			Slug:        slug,
			Name:        categoryName(slug),
			Description: faker.Phrase(),
		})
		if err != nil {
			return Result{}, fmt.Errorf("q.CreateCategory: %w", err)
		}
		result.Categories++

		for _, tmpl := range products[slug] {
			id := newID()
			err := q.CreateProduct(ctx, db.CreateProductParams{
				ID:             id,
				Name:           tmpl.name,
				Description:    tmpl.description,
				CategorySlug:   slug,
				BasePrice:      decimal.RequireFromString(tmpl.price),
				PriceCurrency:  opts.Currency.String(),
				Colors:         nonNil(tmpl.colors),
				Sizes:          nonNil(tmpl.sizes),
				IsCustomizable: true,
			})
			if err != nil {
				return Result{}, fmt.Errorf("q.CreateProduct: %w", err)
			}
			result.Products = append(result.Products, id)
		}
	}

	for range opts.Designers {
		id, err := createUser(ctx, q, faker, newID(), "designer")
		if err != nil {
			return Result{}, fmt.Errorf("createUser: %w", err)
		}
		result.Designers = append(result.Designers, id)
	}

	for range opts.Customers {
		id, err := createUser(ctx, q, faker, newID(), "customer")
		if err != nil {
			return Result{}, fmt.Errorf("createUser: %w", err)
		}
		result.Customers = append(result.Customers, id)
	}

	for i := range opts.Designs {
		id := newID()
		style := faker.RandomString(designStyles)
		err := q.CreateDesign(ctx, db.CreateDesignParams{
			ID:            id,
			Name:          fmt.Sprintf("%s %s", titleCase(faker.Adjective()), titleCase(faker.Noun())),
			CreatorID:     result.Designers[i%len(result.Designers)],
			Price:         decimal.NewFromFloat(faker.Price(2, 15)).Round(2),
			PriceCurrency: opts.Currency.String(),
			ImageUrl:      fmt.Sprintf("https://cdn.podstudio.dev/designs/%s.png", id),
			Tags:          []string{style, strings.ToLower(faker.Color())},
		})
		if err != nil {
			return Result{}, fmt.Errorf("q.CreateDesign: %w", err)
		}
		result.Designs = append(result.Designs, id)
	}

	if len(result.Products) > 0 {
		for range opts.Reviews {
			err := q.CreateReview(ctx, db.CreateReviewParams{
				ID:        newID(),
				ProductID: result.Products[faker.Number(0, len(result.Products)-1)],
				UserID:    result.Customers[faker.Number(0, len(result.Customers)-1)],
				Rating:    int32(faker.Number(1, 5)),
				Comment:   faker.Phrase(),
			})
			if err != nil {
				return Result{}, fmt.Errorf("q.CreateReview: %w", err)
			}
			result.Reviews++
		}
	}

	return result, nil
}

func createUser(ctx context.Context, q *db.Queries, faker *gofakeit.Faker, id uuid.UUID, role string) (uuid.UUID, error) {
	var bio pgtype.Text
	if role == "designer" {
		bio = pgtype.Text{String: faker.Phrase(), Valid: true}
	}

	err := q.CreateUser(ctx, db.CreateUserParams{
		ID:        id,
		Email:     fmt.Sprintf("%s@podstudio.dev", id),
		Name:      faker.Name(),
		Role:      role,
		AvatarUrl: pgtype.Text{String: fmt.Sprintf("https://cdn.podstudio.dev/avatars/%s.png", id), Valid: true},
		Bio:       bio,
	})
	if err != nil {
		return uuid.Nil, fmt.Errorf("q.CreateUser: %w", err)
	}

	return id, nil
}

func categoryName(slug string) string {
	if name, ok := categoryNames[slug]; ok {
		return name
	}
	return titleCase(strings.ReplaceAll(slug, "-", " "))
}

func titleCase(s string) string {
	words := strings.Fields(s)
	for i, w := range words {
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
