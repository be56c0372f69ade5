package pricing_test

import (
	"testing"

	"github.com/nikolayk812/podstudio/internal/domain"
	"github.com/nikolayk812/podstudio/internal/pricing"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/currency"
)

func newCalculator(t *testing.T) pricing.Calculator {
	t.Helper()

	calc, err := pricing.NewCalculator(pricing.DefaultSurcharges(), currency.USD)
	require.NoError(t, err)

	return calc
}

func TestComputeTotal(t *testing.T) {
	calc := newCalculator(t)

	tests := []struct {
		name      string
		base      string
		design    string
		withText  bool
		withImage bool
		quantity  int
		want      string
	}{
		{name: "base plus design", base: "10", design: "5", quantity: 1, want: "15"},
		{name: "text and image, two units", base: "10", design: "5", withText: true, withImage: true, quantity: 2, want: "60"},
		{name: "text only", base: "10", design: "0", withText: true, quantity: 1, want: "15"},
		{name: "image only", base: "10", design: "0", withImage: true, quantity: 3, want: "60"},
		{name: "zero quantity clamps to one", base: "10", design: "0", quantity: 0, want: "10"},
		{name: "negative quantity clamps to one", base: "10", design: "0", quantity: -4, want: "10"},
		{name: "cents stay exact", base: "19.99", design: "5.99", quantity: 1, want: "25.98"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := calc.ComputeTotal(decimal.RequireFromString(tt.base), decimal.RequireFromString(tt.design), tt.withText, tt.withImage, tt.quantity)
			assert.True(t, decimal.RequireFromString(tt.want).Equal(got), "want %s, got %s", tt.want, got)
		})
	}
}

func TestComputeTotal_Idempotent(t *testing.T) {
	calc := newCalculator(t)

	in := pricing.Input{
		BasePrice:      decimal.RequireFromString("12.50"),
		DesignPrice:    decimal.RequireFromString("3.25"),
		HasCustomText:  true,
		HasCustomImage: false,
		Quantity:       4,
	}

	first := calc.Calculate(in)
	second := calc.Calculate(in)

	assert.True(t, first.Total.Amount.Equal(second.Total.Amount))
	assert.True(t, decimal.RequireFromString("83").Equal(first.Total.Amount))
	assert.True(t, decimal.RequireFromString("20.75").Equal(first.UnitPrice.Amount))
	assert.Equal(t, currency.USD, first.Total.Currency)
}

func TestCalculate_ConfiguredSurcharges(t *testing.T) {
	calc, err := pricing.NewCalculator(pricing.Surcharges{
		Text:  decimal.RequireFromString("2.5"),
		Image: decimal.RequireFromString("7"),
	}, currency.EUR)
	require.NoError(t, err)

	b := calc.Calculate(pricing.Input{
		BasePrice:      decimal.NewFromInt(20),
		HasCustomText:  true,
		HasCustomImage: true,
		Quantity:       1,
	})

	assert.True(t, decimal.RequireFromString("29.5").Equal(b.Total.Amount))
	assert.True(t, decimal.RequireFromString("2.5").Equal(b.TextSurcharge))
	assert.True(t, decimal.RequireFromString("7").Equal(b.ImageSurcharge))
	assert.Equal(t, currency.EUR, b.Total.Currency)
}

func TestNewCalculator_NegativeSurcharge(t *testing.T) {
	_, err := pricing.NewCalculator(pricing.Surcharges{Text: decimal.NewFromInt(-1)}, currency.USD)
	require.EqualError(t, err, "text surcharge is negative")

	_, err = pricing.NewCalculator(pricing.Surcharges{Image: decimal.NewFromInt(-1)}, currency.USD)
	require.EqualError(t, err, "image surcharge is negative")
}

func TestClampQuantity(t *testing.T) {
	tests := []struct {
		name     string
		quantity int
		want     int
	}{
		{name: "zero", quantity: 0, want: 1},
		{name: "negative", quantity: -3, want: 1},
		{name: "in range", quantity: 42, want: 42},
		{name: "at max", quantity: pricing.MaxQuantity, want: pricing.MaxQuantity},
		{name: "beyond int32", quantity: 1<<32 + 1, want: pricing.MaxQuantity},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, pricing.ClampQuantity(tt.quantity))
		})
	}
}

func TestCheckCurrency(t *testing.T) {
	calc := newCalculator(t)

	usd := domain.Money{Amount: decimal.NewFromInt(5), Currency: currency.USD}
	eur := domain.Money{Amount: decimal.NewFromInt(10), Currency: currency.EUR}

	require.NoError(t, calc.CheckCurrency(usd, usd))
	require.NoError(t, calc.CheckCurrency())

	err := calc.CheckCurrency(eur, usd, eur)
	var validationErr *domain.ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.Equal(t, []string{"currency"}, validationErr.Fields)
	assert.EqualError(t, err, "prices in EUR cannot be charged in USD")
}
