// Package pricing computes the price of a customized product. Every call recomputes the
// total from its inputs; nothing is accumulated between calls.
package pricing

import (
	"fmt"
	"math"
	"slices"
	"strings"

	"github.com/nikolayk812/podstudio/internal/domain"
	"github.com/shopspring/decimal"
	"golang.org/x/text/currency"
)

// Surcharges are added once per unit when the customer adds their own text or image.
type Surcharges struct {
	Text  decimal.Decimal
	Image decimal.Decimal
}

func DefaultSurcharges() Surcharges {
	return Surcharges{
		Text:  decimal.NewFromInt(5),
		Image: decimal.NewFromInt(10),
	}
}

type Calculator struct {
	surcharges Surcharges
	currency   currency.Unit
}

func NewCalculator(surcharges Surcharges, cur currency.Unit) (Calculator, error) {
	if surcharges.Text.IsNegative() {
		return Calculator{}, fmt.Errorf("text surcharge is negative")
	}
	if surcharges.Image.IsNegative() {
		return Calculator{}, fmt.Errorf("image surcharge is negative")
	}

	return Calculator{surcharges: surcharges, currency: cur}, nil
}

type Input struct {
	BasePrice      decimal.Decimal
	DesignPrice    decimal.Decimal
	HasCustomText  bool
	HasCustomImage bool
	Quantity       int
}

type Breakdown struct {
	BasePrice      decimal.Decimal
	DesignPrice    decimal.Decimal
	TextSurcharge  decimal.Decimal
	ImageSurcharge decimal.Decimal
	UnitPrice      domain.Money
	Quantity       int
	Total          domain.Money
}

// MaxQuantity is the largest quantity a cart line can store.
const MaxQuantity = math.MaxInt32

// ClampQuantity keeps quantities within [1, MaxQuantity].
func ClampQuantity(quantity int) int {
	switch {
	case quantity < 1:
		return 1
	case quantity > MaxQuantity:
		return MaxQuantity
	default:
		return quantity
	}
}

// CheckCurrency rejects prices that are not in the calculator's currency. Amounts in
// different currencies are never added together.
func (c Calculator) CheckCurrency(prices ...domain.Money) error {
	var mismatched []string
	for _, p := range prices {
		if p.Currency != c.currency && !slices.Contains(mismatched, p.Currency.String()) {
			mismatched = append(mismatched, p.Currency.String())
		}
	}
	if len(mismatched) == 0 {
		return nil
	}

	return &domain.ValidationError{
		Fields:  []string{"currency"},
		Message: fmt.Sprintf("prices in %s cannot be charged in %s", strings.Join(mismatched, ", "), c.currency),
	}
}

func (c Calculator) Currency() currency.Unit {
	return c.currency
}

func (c Calculator) Calculate(in Input) Breakdown {
	quantity := ClampQuantity(in.Quantity)

	b := Breakdown{
		BasePrice:      in.BasePrice,
		DesignPrice:    in.DesignPrice,
		TextSurcharge:  decimal.Zero,
		ImageSurcharge: decimal.Zero,
		Quantity:       quantity,
	}
	if in.HasCustomText {
		b.TextSurcharge = c.surcharges.Text
	}
	if in.HasCustomImage {
		b.ImageSurcharge = c.surcharges.Image
	}

	unit := in.BasePrice.Add(in.DesignPrice).Add(b.TextSurcharge).Add(b.ImageSurcharge)
	b.UnitPrice = domain.Money{Amount: unit, Currency: c.currency}
	b.Total = domain.Money{Amount: unit.Mul(decimal.NewFromInt(int64(quantity))), Currency: c.currency}

	return b
}

func (c Calculator) ComputeTotal(basePrice, designPrice decimal.Decimal, hasCustomText, hasCustomImage bool, quantity int) decimal.Decimal {
	return c.Calculate(Input{
		BasePrice:      basePrice,
		DesignPrice:    designPrice,
		HasCustomText:  hasCustomText,
		HasCustomImage: hasCustomImage,
		Quantity:       quantity,
	}).Total.Amount
}
