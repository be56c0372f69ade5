package repository_test

import (
	"testing"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/nikolayk812/podstudio/internal/db"
	"github.com/nikolayk812/podstudio/internal/domain"
	"github.com/nikolayk812/podstudio/internal/port"
	"github.com/nikolayk812/podstudio/internal/repository"
	"github.com/nikolayk812/podstudio/internal/seed"
	"github.com/nikolayk812/podstudio/internal/testdb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"golang.org/x/text/currency"
)

type catalogRepositorySuite struct {
	suite.Suite

	repo      port.CatalogRepository
	pool      *pgxpool.Pool
	container *testdb.Container
	seeded    seed.Result
}

func TestCatalogRepositorySuite(t *testing.T) {
	suite.Run(t, new(catalogRepositorySuite))
}

func (suite *catalogRepositorySuite) SetupSuite() {
	ctx := suite.T().Context()
	suite.container, suite.pool = startPool(ctx, suite.T())

	err := pgx.BeginFunc(ctx, suite.pool, func(tx pgx.Tx) error {
		var err error
		suite.seeded, err = seed.Run(ctx, db.New(tx), seed.DefaultOptions())
		return err
	})
	suite.Require().NoError(err)

	suite.repo = repository.NewCatalog(suite.pool)
}

func (suite *catalogRepositorySuite) TearDownSuite() {
	if suite.pool != nil {
		suite.pool.Close()
	}
	suite.NoError(suite.container.Terminate())
}

func (suite *catalogRepositorySuite) TestGetProduct() {
	tests := []struct {
		name      string
		id        uuid.UUID
		wantErrIs error
	}{
		{
			name: "get seeded product: ok",
			id:   suite.seeded.Products[0],
		},
		{
			name:      "get unknown product: not found",
			id:        uuid.New(),
			wantErrIs: domain.ErrProductNotFound,
		},
	}

	for _, tt := range tests {
		suite.Run(tt.name, func() {
			t := suite.T()

			product, err := suite.repo.GetProduct(t.Context(), tt.id)
			if tt.wantErrIs != nil {
				require.ErrorIs(t, err, tt.wantErrIs)
				return
			}
			require.NoError(t, err)

			assert.Equal(t, tt.id, product.ID)
			assert.NotEmpty(t, product.Name)
			assert.NotEmpty(t, suite.repo.AreasFor(product.Category))
			assert.Equal(t, currency.USD, product.BasePrice.Currency)
			assert.True(t, product.BasePrice.Amount.IsPositive())
		})
	}
}

func (suite *catalogRepositorySuite) TestGetDesign() {
	tests := []struct {
		name      string
		id        uuid.UUID
		wantErrIs error
	}{
		{
			name: "get seeded design: ok",
			id:   suite.seeded.Designs[0],
		},
		{
			name:      "get unknown design: not found",
			id:        uuid.New(),
			wantErrIs: domain.ErrDesignNotFound,
		},
	}

	for _, tt := range tests {
		suite.Run(tt.name, func() {
			t := suite.T()

			design, err := suite.repo.GetDesign(t.Context(), tt.id)
			if tt.wantErrIs != nil {
				require.ErrorIs(t, err, tt.wantErrIs)
				return
			}
			require.NoError(t, err)

			assert.Equal(t, tt.id, design.ID)
			assert.Contains(t, suite.seeded.Designers, design.CreatorID)
			assert.Len(t, design.Tags, 2)
		})
	}
}

func (suite *catalogRepositorySuite) TestListProducts() {
	t := suite.T()

	products, err := suite.repo.ListProducts(t.Context())
	require.NoError(t, err)
	require.Len(t, products, len(suite.seeded.Products))

	ids := make([]uuid.UUID, 0, len(products))
	for _, p := range products {
		ids = append(ids, p.ID)
	}
	assert.ElementsMatch(t, suite.seeded.Products, ids)
}

func (suite *catalogRepositorySuite) TestListDesigns() {
	t := suite.T()

	designs, err := suite.repo.ListDesigns(t.Context())
	require.NoError(t, err)
	assert.Len(t, designs, len(suite.seeded.Designs))
}

func (suite *catalogRepositorySuite) TestMultiArea() {
	suite.True(suite.repo.MultiArea("t-shirt"))
	suite.False(suite.repo.MultiArea("mug"))
}
