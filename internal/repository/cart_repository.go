package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/nikolayk812/podstudio/internal/db"
	"github.com/nikolayk812/podstudio/internal/domain"
	"github.com/nikolayk812/podstudio/internal/port"
	"github.com/nikolayk812/podstudio/internal/pricing"
	"github.com/shopspring/decimal"
)

const (
	eventDesignRequestSubmitted = "design_request_submitted"
	eventOrderPlaced            = "order_placed"
)

type cartRepository struct {
	q    *db.Queries
	pool *pgxpool.Pool
	now  func() time.Time
}

func NewCart(pool *pgxpool.Pool) port.CartRepository {
	return &cartRepository{
		q:    db.New(pool),
		pool: pool,
		now:  func() time.Time { return time.Now().UTC().Truncate(time.Microsecond) },
	}
}

func NewCartWithTx(tx pgx.Tx) port.CartRepository {
	return &cartRepository{
		q:    db.New(tx),
		pool: nil, // use provided transaction instead
		now:  func() time.Time { return time.Now().UTC().Truncate(time.Microsecond) },
	}
}

func (r *cartRepository) GetCart(ctx context.Context, ownerID string) (domain.Cart, error) {
	if ownerID == "" {
		return domain.Cart{}, fmt.Errorf("ownerID is empty")
	}

	dbCartItems, err := r.q.GetCart(ctx, ownerID)
	if err != nil {
		return domain.Cart{}, fmt.Errorf("q.GetCart: %w", err)
	}

	items, err := mapGetCartRowsToDomain(dbCartItems)
	if err != nil {
		return domain.Cart{}, fmt.Errorf("mapGetCartRowsToDomain: %w", err)
	}

	return domain.Cart{
		OwnerID: ownerID,
		Items:   items,
	}, nil
}

func (r *cartRepository) AddItem(ctx context.Context, ownerID string, item domain.CartItem) (uuid.UUID, error) {
	if ownerID == "" {
		return uuid.Nil, fmt.Errorf("ownerID is empty")
	}
	if item.ID == uuid.Nil {
		item.ID = uuid.New()
	}

	params, err := addItemParams(ownerID, item)
	if err != nil {
		return uuid.Nil, fmt.Errorf("addItemParams: %w", err)
	}

	if err := r.q.AddItem(ctx, params); err != nil {
		return uuid.Nil, fmt.Errorf("q.AddItem: %w", err)
	}

	return item.ID, nil
}

func (r *cartRepository) UpdateQuantity(ctx context.Context, ownerID string, itemID uuid.UUID, quantity int) error {
	if ownerID == "" {
		return fmt.Errorf("ownerID is empty")
	}
	if err := checkQuantity(quantity); err != nil {
		return err
	}

	rowsAffected, err := r.q.UpdateItemQuantity(ctx, db.UpdateItemQuantityParams{
		OwnerID:  ownerID,
		ID:       itemID,
		Quantity: int32(quantity),
	})
	if err != nil {
		return fmt.Errorf("q.UpdateItemQuantity: %w", err)
	}
	if rowsAffected == 0 {
		return fmt.Errorf("item[%s]: %w", itemID, domain.ErrCartItemNotFound)
	}

	return nil
}

func (r *cartRepository) DeleteItem(ctx context.Context, ownerID string, itemID uuid.UUID) (bool, error) {
	if ownerID == "" {
		return false, fmt.Errorf("ownerID is empty")
	}

	rowsAffected, err := r.q.DeleteItem(ctx, db.DeleteItemParams{
		OwnerID: ownerID,
		ID:      itemID,
	})
	if err != nil {
		return false, fmt.Errorf("q.DeleteItem: %w", err)
	}

	return rowsAffected > 0, nil
}

// SubmitCartItem stores the cart line, opens the designer thread and posts the summary
// as its first message.
func (r *cartRepository) SubmitCartItem(ctx context.Context, ownerID string, req domain.OrderRequest) error {
	if ownerID == "" {
		return fmt.Errorf("ownerID is empty")
	}
	if req.Item.ID == uuid.Nil || req.Thread.ID == uuid.Nil {
		return fmt.Errorf("order request is not assembled")
	}

	itemParams, err := addItemParams(ownerID, req.Item)
	if err != nil {
		return fmt.Errorf("addItemParams: %w", err)
	}

	instructions, err := marshalInstructions(req.Thread.Instructions)
	if err != nil {
		return fmt.Errorf("marshalInstructions: %w", err)
	}

	payload, err := eventPayload(map[string]any{
		"ownerId":  ownerID,
		"threadId": req.Thread.ID,
		"total":    req.TotalPrice.Amount.StringFixed(2),
		"currency": req.TotalPrice.Currency.String(),
	})
	if err != nil {
		return fmt.Errorf("eventPayload: %w", err)
	}

	_, err = withTx(ctx, r.pool, r.q, pgx.ReadCommitted, func(q *db.Queries) (struct{}, error) {
		if err := q.AddItem(ctx, itemParams); err != nil {
			return struct{}{}, fmt.Errorf("q.AddItem: %w", err)
		}

		err := q.CreateMessageThread(ctx, db.CreateMessageThreadParams{
			ID:                 req.Thread.ID,
			OwnerID:            ownerID,
			DesignerID:         req.Thread.DesignerID,
			ProductID:          req.Thread.ProductID,
			DesignID:           req.Thread.DesignID,
			Subject:            req.Thread.Subject,
			Summary:            req.Thread.Summary,
			DesignInstructions: instructions,
			CreatedAt:          req.Thread.CreatedAt,
		})
		if err != nil {
			return struct{}{}, fmt.Errorf("q.CreateMessageThread: %w", err)
		}

		_, err = q.CreateMessage(ctx, db.CreateMessageParams{
			ID:       uuid.New(),
			ThreadID: req.Thread.ID,
			Sender:   domain.SenderCustomer,
			Body:     req.Thread.Summary,
		})
		if err != nil {
			return struct{}{}, fmt.Errorf("q.CreateMessage: %w", err)
		}

		err = q.RecordEvent(ctx, db.RecordEventParams{
			Event:     eventDesignRequestSubmitted,
			SubjectID: uuid.NullUUID{UUID: req.ID, Valid: req.ID != uuid.Nil},
			Payload:   payload,
		})
		if err != nil {
			return struct{}{}, fmt.Errorf("q.RecordEvent: %w", err)
		}

		return struct{}{}, nil
	})
	if err != nil {
		return fmt.Errorf("withTx: %w", err)
	}

	return nil
}

// Checkout moves every cart line into a new pending order. Customization blobs are copied
// as stored.
func (r *cartRepository) Checkout(ctx context.Context, ownerID string) (domain.Order, error) {
	if ownerID == "" {
		return domain.Order{}, fmt.Errorf("ownerID is empty")
	}

	order, err := withTx(ctx, r.pool, r.q, pgx.RepeatableRead, func(q *db.Queries) (domain.Order, error) {
		rows, err := q.GetCart(ctx, ownerID)
		if err != nil {
			return domain.Order{}, fmt.Errorf("q.GetCart: %w", err)
		}
		if len(rows) == 0 {
			return domain.Order{}, &domain.ValidationError{Fields: []string{"cart"}, Message: "cart is empty"}
		}

		items, err := mapGetCartRowsToDomain(rows)
		if err != nil {
			return domain.Order{}, fmt.Errorf("mapGetCartRowsToDomain: %w", err)
		}

		total, err := cartTotal(items)
		if err != nil {
			return domain.Order{}, fmt.Errorf("cartTotal: %w", err)
		}

		order := domain.Order{
			ID:        uuid.New(),
			OwnerID:   ownerID,
			Status:    domain.OrderPending,
			Items:     items,
			Total:     total,
			CreatedAt: r.now(),
		}

		err = q.CreateOrder(ctx, db.CreateOrderParams{
			ID:            order.ID,
			OwnerID:       ownerID,
			TotalAmount:   total.Amount,
			TotalCurrency: total.Currency.String(),
			CreatedAt:     order.CreatedAt,
		})
		if err != nil {
			return domain.Order{}, fmt.Errorf("q.CreateOrder: %w", err)
		}

		for _, row := range rows {
			err := q.CreateOrderItem(ctx, db.CreateOrderItemParams{
				ID:            uuid.New(),
				OrderID:       order.ID,
				ProductID:     row.ProductID,
				DesignID:      row.DesignID,
				Quantity:      row.Quantity,
				Size:          row.Size,
				Color:         row.Color,
				Customization: row.Customization,
				PriceAmount:   row.PriceAmount,
				PriceCurrency: row.PriceCurrency,
			})
			if err != nil {
				return domain.Order{}, fmt.Errorf("q.CreateOrderItem: %w", err)
			}
		}

		payload, err := eventPayload(map[string]any{
			"ownerId":  ownerID,
			"items":    len(items),
			"total":    total.Amount.StringFixed(2),
			"currency": total.Currency.String(),
		})
		if err != nil {
			return domain.Order{}, fmt.Errorf("eventPayload: %w", err)
		}

		err = q.RecordEvent(ctx, db.RecordEventParams{
			Event:     eventOrderPlaced,
			SubjectID: uuid.NullUUID{UUID: order.ID, Valid: true},
			Payload:   payload,
		})
		if err != nil {
			return domain.Order{}, fmt.Errorf("q.RecordEvent: %w", err)
		}

		if _, err := q.ClearCart(ctx, ownerID); err != nil {
			return domain.Order{}, fmt.Errorf("q.ClearCart: %w", err)
		}

		return order, nil
	})
	if err != nil {
		return domain.Order{}, fmt.Errorf("withTx: %w", err)
	}

	return order, nil
}

func cartTotal(items []domain.CartItem) (domain.Money, error) {
	total := domain.Money{Amount: decimal.Zero, Currency: items[0].Price.Currency}

	for _, item := range items {
		if item.Price.Currency != total.Currency {
			return domain.Money{}, fmt.Errorf("cart mixes currencies %s and %s", total.Currency, item.Price.Currency)
		}
		line := item.Price.Amount.Mul(decimal.NewFromInt(int64(item.Quantity)))
		total.Amount = total.Amount.Add(line)
	}

	return total, nil
}

// checkQuantity keeps quantities within what the INTEGER column stores.
func checkQuantity(quantity int) error {
	switch {
	case quantity < 1:
		return fmt.Errorf("quantity[%d] is not positive", quantity)
	case quantity > pricing.MaxQuantity:
		return fmt.Errorf("quantity[%d] exceeds %d", quantity, pricing.MaxQuantity)
	}
	return nil
}

func addItemParams(ownerID string, item domain.CartItem) (db.AddItemParams, error) {
	if err := checkQuantity(item.Quantity); err != nil {
		return db.AddItemParams{}, err
	}

	customization, err := marshalCustomization(item.Customization)
	if err != nil {
		return db.AddItemParams{}, fmt.Errorf("marshalCustomization: %w", err)
	}

	return db.AddItemParams{
		ID:            item.ID,
		OwnerID:       ownerID,
		ProductID:     item.ProductID,
		DesignID:      item.DesignID,
		Quantity:      int32(item.Quantity),
		Size:          item.Size,
		Color:         item.Color,
		Customization: customization,
		PriceAmount:   item.Price.Amount,
		PriceCurrency: item.Price.Currency.String(),
	}, nil
}

func mapGetCartRowToDomain(row db.GetCartRow) (domain.CartItem, error) {
	price, err := parseMoney(row.PriceAmount, row.PriceCurrency)
	if err != nil {
		return domain.CartItem{}, fmt.Errorf("parseMoney: %w", err)
	}

	customization, err := unmarshalCustomization(row.Customization)
	if err != nil {
		return domain.CartItem{}, fmt.Errorf("unmarshalCustomization: %w", err)
	}

	return domain.CartItem{
		ID:            row.ID,
		ProductID:     row.ProductID,
		DesignID:      row.DesignID,
		Quantity:      int(row.Quantity),
		Size:          row.Size,
		Color:         row.Color,
		Customization: customization,
		Price:         price,
		CreatedAt:     row.CreatedAt,
	}, nil
}

func mapGetCartRowsToDomain(rows []db.GetCartRow) ([]domain.CartItem, error) {
	var items []domain.CartItem

	for _, row := range rows {
		item, err := mapGetCartRowToDomain(row)
		if err != nil {
			return nil, fmt.Errorf("mapGetCartRowToDomain: %w", err)
		}

		items = append(items, item)
	}

	return items, nil
}
