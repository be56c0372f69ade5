package domain

import (
	"time"

	"github.com/google/uuid"
)

// OrderRequest is the immutable result of one completed wizard run.
// Item goes to the cart store, Thread opens the conversation with the designer.
type OrderRequest struct {
	ID           uuid.UUID
	ProductID    uuid.UUID
	DesignID     uuid.NullUUID
	Instructions DesignInstructions
	TotalPrice   Money
	CreatedAt    time.Time

	Item   CartItem
	Thread MessageThread
}

type MessageThread struct {
	ID           uuid.UUID
	OwnerID      string
	DesignerID   uuid.NullUUID
	ProductID    uuid.UUID
	DesignID     uuid.NullUUID
	Subject      string
	Summary      string
	Instructions DesignInstructions
	CreatedAt    time.Time
}

type Message struct {
	ID        uuid.UUID
	ThreadID  uuid.UUID
	Sender    string
	Body      string
	CreatedAt time.Time
}

const (
	SenderCustomer = "customer"
	SenderDesigner = "designer"
)

type OrderStatus string

const OrderPending OrderStatus = "pending"

// Order is a checked-out cart. Total is the sum of Price * Quantity over Items.
type Order struct {
	ID        uuid.UUID
	OwnerID   string
	Status    OrderStatus
	Items     []CartItem
	Total     Money
	CreatedAt time.Time
}
