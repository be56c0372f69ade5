package port

import (
	"context"

	"github.com/google/uuid"
	"github.com/nikolayk812/podstudio/internal/domain"
)

type CatalogProvider interface {
	GetProduct(ctx context.Context, id uuid.UUID) (domain.Product, error)
	GetDesign(ctx context.Context, id uuid.UUID) (domain.Design, error)
	AreasFor(category string) []domain.PlacementArea
	MultiArea(category string) bool
}

type CatalogRepository interface {
	CatalogProvider

	ListProducts(ctx context.Context) ([]domain.Product, error)
	ListDesigns(ctx context.Context) ([]domain.Design, error)
}
