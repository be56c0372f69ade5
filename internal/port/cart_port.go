package port

import (
	"context"

	"github.com/google/uuid"
	"github.com/nikolayk812/podstudio/internal/domain"
)

type CartRepository interface {
	CartStore

	GetCart(ctx context.Context, ownerID string) (domain.Cart, error)
	AddItem(ctx context.Context, ownerID string, item domain.CartItem) (uuid.UUID, error)
	UpdateQuantity(ctx context.Context, ownerID string, itemID uuid.UUID, quantity int) error
	DeleteItem(ctx context.Context, ownerID string, itemID uuid.UUID) (bool, error)

	// Checkout converts the whole cart into a pending order and empties the cart.
	Checkout(ctx context.Context, ownerID string) (domain.Order, error)
}

// CartStore accepts a completed design request: the cart line and the designer thread
// are committed together or not at all.
type CartStore interface {
	SubmitCartItem(ctx context.Context, ownerID string, req domain.OrderRequest) error
}
