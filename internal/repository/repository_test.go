package repository_test

import (
	"context"
	"testing"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/nikolayk812/podstudio/internal/domain"
	"github.com/nikolayk812/podstudio/internal/testdb"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/currency"
)

func startPool(ctx context.Context, t *testing.T) (*testdb.Container, *pgxpool.Pool) {
	t.Helper()

	container, err := testdb.Start(ctx)
	require.NoError(t, err)

	pool, err := pgxpool.New(ctx, container.ConnStr)
	require.NoError(t, err)

	return container, pool
}

func randomCartItem() domain.CartItem {
	return domain.CartItem{
		ProductID: uuid.MustParse(gofakeit.UUID()),
		Quantity:  gofakeit.Number(1, 5),
		Size:      gofakeit.RandomString([]string{"S", "M", "L", "XL"}),
		Color:     gofakeit.SafeColor(),
		Price:     randomMoney(),
	}
}

func randomCustomizedItem() domain.CartItem {
	item := randomCartItem()
	item.DesignID = uuid.NullUUID{UUID: uuid.MustParse(gofakeit.UUID()), Valid: true}
	item.Customization = &domain.Customization{
		Placement: "front-center",
		Size:      domain.SizeMedium,
		Text:      gofakeit.Word(),
		TextColor: gofakeit.SafeColor(),
		Instructions: domain.DesignInstructions{
			Placement:   "front-center",
			Size:        domain.SizeMedium,
			Colors:      []string{gofakeit.SafeColor()},
			Style:       "minimalist",
			CustomNotes: gofakeit.Phrase(),
		},
	}
	return item
}

func randomMoney() domain.Money {
	return domain.Money{
		Amount:   decimal.NewFromFloat(gofakeit.Price(1, 100)).Round(2),
		Currency: randomCurrency(),
	}
}

func randomCurrency() currency.Unit {
	var (
		result currency.Unit
		err    error
	)

	for {
		// tag is not a recognized currency
		result, err = currency.ParseISO(gofakeit.CurrencyShort())
		if err == nil {
			break
		}
	}

	return result
}

var currencyComparer = cmp.Comparer(func(x, y currency.Unit) bool {
	return x.String() == y.String()
})

var decimalComparer = cmp.Comparer(func(x, y decimal.Decimal) bool {
	return x.Equal(y)
})

func assertCartItem(t *testing.T, expected, actual domain.CartItem) {
	t.Helper()

	opts := cmp.Options{
		cmpopts.IgnoreFields(domain.CartItem{}, "CreatedAt"),
		cmpopts.EquateEmpty(),
		currencyComparer,
		decimalComparer,
	}

	diff := cmp.Diff(expected, actual, opts)
	assert.Empty(t, diff)

	assert.False(t, actual.CreatedAt.IsZero())
}
