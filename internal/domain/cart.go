package domain

import (
	"time"

	"github.com/google/uuid"
)

type Cart struct {
	OwnerID string
	Items   []CartItem
}

// CartItem is a cart line. Price is the unit price; the line total is Price * Quantity.
type CartItem struct {
	ID            uuid.UUID
	ProductID     uuid.UUID
	DesignID      uuid.NullUUID
	Quantity      int
	Size          string
	Color         string
	Customization *Customization
	Price         Money

	CreatedAt time.Time
}

// Customization is stored as the free-form customization blob of a cart or order item.
type Customization struct {
	Placement    string             `json:"placement"`
	Size         string             `json:"size"`
	Text         string             `json:"text,omitempty"`
	TextColor    string             `json:"textColor,omitempty"`
	TextSize     string             `json:"textSize,omitempty"`
	Image        string             `json:"image,omitempty"`
	Instructions DesignInstructions `json:"designInstructions"`
}
