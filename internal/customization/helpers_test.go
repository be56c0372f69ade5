package customization_test

import (
	"context"
	"errors"
	"sync"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/google/uuid"
	"github.com/nikolayk812/podstudio/internal/domain"
	"github.com/nikolayk812/podstudio/internal/pricing"
	"github.com/shopspring/decimal"
	"golang.org/x/text/currency"
)

func usd(amount string) domain.Money {
	return domain.Money{Amount: decimal.RequireFromString(amount), Currency: currency.USD}
}

func randomProduct(category, price string) domain.Product {
	return domain.Product{
		ID:             uuid.MustParse(gofakeit.UUID()),
		Name:           gofakeit.ProductName(),
		Category:       category,
		BasePrice:      usd(price),
		Colors:         []string{"black", "white", "navy"},
		Sizes:          []string{"S", "M", "L", "XL"},
		IsCustomizable: true,
	}
}

func randomDesign(price string) domain.Design {
	return domain.Design{
		ID:        uuid.MustParse(gofakeit.UUID()),
		Name:      gofakeit.BookTitle(),
		CreatorID: uuid.MustParse(gofakeit.UUID()),
		Price:     usd(price),
	}
}

func mustCalculator() pricing.Calculator {
	calc, err := pricing.NewCalculator(pricing.DefaultSurcharges(), currency.USD)
	if err != nil {
		panic(err)
	}
	return calc
}

type fakeCartStore struct {
	mu       sync.Mutex
	requests []domain.OrderRequest
	owners   []string
	fail     error
}

func (f *fakeCartStore) SubmitCartItem(_ context.Context, ownerID string, req domain.OrderRequest) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.fail != nil {
		return f.fail
	}
	f.requests = append(f.requests, req)
	f.owners = append(f.owners, ownerID)
	return nil
}

func (f *fakeCartStore) count() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.requests)
}

type recordingSink struct {
	mu            sync.Mutex
	notifications []domain.Notification
}

func (r *recordingSink) Notify(_ context.Context, n domain.Notification) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.notifications = append(r.notifications, n)
}

func (r *recordingSink) last() (domain.Notification, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if len(r.notifications) == 0 {
		return domain.Notification{}, false
	}
	return r.notifications[len(r.notifications)-1], true
}

var errStoreFull = errors.New("cart is full")

