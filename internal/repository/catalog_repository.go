package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/nikolayk812/podstudio/internal/catalog"
	"github.com/nikolayk812/podstudio/internal/db"
	"github.com/nikolayk812/podstudio/internal/domain"
	"github.com/nikolayk812/podstudio/internal/port"
)

type catalogRepository struct {
	q *db.Queries
}

// NewCatalog reads products and designs from the database. Placement areas are static
// and come from the catalog package.
func NewCatalog(pool *pgxpool.Pool) port.CatalogRepository {
	return &catalogRepository{
		q: db.New(pool),
	}
}

func (r *catalogRepository) GetProduct(ctx context.Context, id uuid.UUID) (domain.Product, error) {
	row, err := r.q.GetProduct(ctx, id)
	if errors.Is(err, pgx.ErrNoRows) {
		return domain.Product{}, fmt.Errorf("product[%s]: %w", id, domain.ErrProductNotFound)
	}
	if err != nil {
		return domain.Product{}, fmt.Errorf("q.GetProduct: %w", err)
	}

	product, err := mapProductToDomain(db.ListProductsRow(row))
	if err != nil {
		return domain.Product{}, fmt.Errorf("mapProductToDomain: %w", err)
	}

	return product, nil
}

func (r *catalogRepository) GetDesign(ctx context.Context, id uuid.UUID) (domain.Design, error) {
	row, err := r.q.GetDesign(ctx, id)
	if errors.Is(err, pgx.ErrNoRows) {
		return domain.Design{}, fmt.Errorf("design[%s]: %w", id, domain.ErrDesignNotFound)
	}
	if err != nil {
		return domain.Design{}, fmt.Errorf("q.GetDesign: %w", err)
	}

	design, err := mapDesignToDomain(db.ListDesignsRow(row))
	if err != nil {
		return domain.Design{}, fmt.Errorf("mapDesignToDomain: %w", err)
	}

	return design, nil
}

func (r *catalogRepository) ListProducts(ctx context.Context) ([]domain.Product, error) {
	rows, err := r.q.ListProducts(ctx)
	if err != nil {
		return nil, fmt.Errorf("q.ListProducts: %w", err)
	}

	products := make([]domain.Product, 0, len(rows))
	for _, row := range rows {
		product, err := mapProductToDomain(row)
		if err != nil {
			return nil, fmt.Errorf("mapProductToDomain: %w", err)
		}
		products = append(products, product)
	}

	return products, nil
}

func (r *catalogRepository) ListDesigns(ctx context.Context) ([]domain.Design, error) {
	rows, err := r.q.ListDesigns(ctx)
	if err != nil {
		return nil, fmt.Errorf("q.ListDesigns: %w", err)
	}

	designs := make([]domain.Design, 0, len(rows))
	for _, row := range rows {
		design, err := mapDesignToDomain(row)
		if err != nil {
			return nil, fmt.Errorf("mapDesignToDomain: %w", err)
		}
		designs = append(designs, design)
	}

	return designs, nil
}

func (r *catalogRepository) AreasFor(category string) []domain.PlacementArea {
	return catalog.AreasFor(category)
}

func (r *catalogRepository) MultiArea(category string) bool {
	return catalog.MultiArea(category)
}

func mapProductToDomain(row db.ListProductsRow) (domain.Product, error) {
	price, err := parseMoney(row.BasePrice, row.PriceCurrency)
	if err != nil {
		return domain.Product{}, fmt.Errorf("parseMoney: %w", err)
	}

	return domain.Product{
		ID:             row.ID,
		Name:           row.Name,
		Description:    row.Description,
		Category:       row.CategorySlug,
		BasePrice:      price,
		Colors:         row.Colors,
		Sizes:          row.Sizes,
		IsCustomizable: row.IsCustomizable,
	}, nil
}

func mapDesignToDomain(row db.ListDesignsRow) (domain.Design, error) {
	price, err := parseMoney(row.Price, row.PriceCurrency)
	if err != nil {
		return domain.Design{}, fmt.Errorf("parseMoney: %w", err)
	}

	return domain.Design{
		ID:        row.ID,
		Name:      row.Name,
		CreatorID: row.CreatorID,
		Price:     price,
		ImageURL:  row.ImageUrl,
		Tags:      row.Tags,
	}, nil
}
