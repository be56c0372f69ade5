package catalog_test

import (
	"testing"

	"github.com/google/uuid"
	"github.com/nikolayk812/podstudio/internal/catalog"
	"github.com/nikolayk812/podstudio/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemory(t *testing.T) {
	ctx := t.Context()
	m := catalog.NewMemory()

	product := domain.Product{ID: uuid.New(), Name: "Classic Tee", Category: "t-shirt"}
	design := domain.Design{ID: uuid.New(), Name: "Sunset"}
	m.AddProduct(product)
	m.AddDesign(design)

	gotProduct, err := m.GetProduct(ctx, product.ID)
	require.NoError(t, err)
	assert.Equal(t, product, gotProduct)

	gotDesign, err := m.GetDesign(ctx, design.ID)
	require.NoError(t, err)
	assert.Equal(t, design, gotDesign)

	_, err = m.GetProduct(ctx, uuid.New())
	require.ErrorIs(t, err, domain.ErrProductNotFound)

	_, err = m.GetDesign(ctx, uuid.New())
	require.ErrorIs(t, err, domain.ErrDesignNotFound)

	assert.Equal(t, catalog.AreasFor("t-shirt"), m.AreasFor("t-shirt"))
}
