package catalog

import (
	"context"
	"fmt"
	"sync"

	"github.com/google/uuid"
	"github.com/nikolayk812/podstudio/internal/domain"
	"github.com/nikolayk812/podstudio/internal/port"
)

// Memory is an in-process catalog provider.
type Memory struct {
	mu       sync.RWMutex
	products map[uuid.UUID]domain.Product
	designs  map[uuid.UUID]domain.Design
}

var _ port.CatalogProvider = (*Memory)(nil)

func NewMemory() *Memory {
	return &Memory{
		products: make(map[uuid.UUID]domain.Product),
		designs:  make(map[uuid.UUID]domain.Design),
	}
}

func (m *Memory) AddProduct(p domain.Product) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.products[p.ID] = p
}

func (m *Memory) AddDesign(d domain.Design) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.designs[d.ID] = d
}

func (m *Memory) GetProduct(_ context.Context, id uuid.UUID) (domain.Product, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	p, ok := m.products[id]
	if !ok {
		return domain.Product{}, fmt.Errorf("product[%s]: %w", id, domain.ErrProductNotFound)
	}
	return p, nil
}

func (m *Memory) GetDesign(_ context.Context, id uuid.UUID) (domain.Design, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	d, ok := m.designs[id]
	if !ok {
		return domain.Design{}, fmt.Errorf("design[%s]: %w", id, domain.ErrDesignNotFound)
	}
	return d, nil
}

func (m *Memory) AreasFor(category string) []domain.PlacementArea {
	return AreasFor(category)
}

func (m *Memory) MultiArea(category string) bool {
	return MultiArea(category)
}
