package customization

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/nikolayk812/podstudio/internal/domain"
	"github.com/nikolayk812/podstudio/internal/pricing"
)

// Assembler turns a finished session into an OrderRequest.
type Assembler struct {
	calc  pricing.Calculator
	now   func() time.Time
	newID func() uuid.UUID
}

func NewAssembler(calc pricing.Calculator) Assembler {
	return Assembler{
		calc:  calc,
		now:   func() time.Time { return time.Now().UTC() },
		newID: uuid.New,
	}
}

// Assemble fails with a *domain.ValidationError naming every missing required field, or
// the currency field when the product or design is priced in another currency. Missing
// fields are never defaulted.
func (a Assembler) Assemble(s *Session) (domain.OrderRequest, error) {
	instructions := s.Instructions()

	var missing []string
	if s.product == nil {
		missing = append(missing, "product")
	}
	missing = append(missing, instructions.Missing()...)
	if len(missing) > 0 {
		return domain.OrderRequest{}, &domain.ValidationError{Fields: missing}
	}

	product := *s.product

	prices := []domain.Money{product.BasePrice}
	if s.design != nil {
		prices = append(prices, s.design.Price)
	}
	if err := a.calc.CheckCurrency(prices...); err != nil {
		return domain.OrderRequest{}, err
	}

	quote := s.Quote(a.calc)
	createdAt := a.now()

	var designID, designerID uuid.NullUUID
	if s.design != nil {
		designID = uuid.NullUUID{UUID: s.design.ID, Valid: true}
		if s.design.CreatorID != uuid.Nil {
			designerID = uuid.NullUUID{UUID: s.design.CreatorID, Valid: true}
		}
	}

	item := domain.CartItem{
		ID:        a.newID(),
		ProductID: product.ID,
		DesignID:  designID,
		Quantity:  quote.Quantity,
		Size:      s.variantSize,
		Color:     s.variantColor,
		Customization: &domain.Customization{
			Placement:    instructions.Placement,
			Size:         instructions.Size,
			Text:         s.customText,
			TextColor:    s.textColor,
			TextSize:     s.textSize,
			Image:        s.imageRef,
			Instructions: instructions,
		},
		Price:     quote.UnitPrice,
		CreatedAt: createdAt,
	}

	thread := domain.MessageThread{
		ID:           a.newID(),
		OwnerID:      s.ownerID,
		DesignerID:   designerID,
		ProductID:    product.ID,
		DesignID:     designID,
		Subject:      fmt.Sprintf("Design request: %s", product.Name),
		Summary:      Summary(product, s.design, instructions),
		Instructions: instructions,
		CreatedAt:    createdAt,
	}

	return domain.OrderRequest{
		ID:           a.newID(),
		ProductID:    product.ID,
		DesignID:     designID,
		Instructions: instructions,
		TotalPrice:   quote.Total,
		CreatedAt:    createdAt,
		Item:         item,
		Thread:       thread,
	}, nil
}

// Summary renders the instructions as the first message of the designer thread.
func Summary(product domain.Product, design *domain.Design, in domain.DesignInstructions) string {
	var b strings.Builder

	designName := "none"
	if design != nil {
		designName = design.Name
	}

	fmt.Fprintf(&b, "New design request\n")
	fmt.Fprintf(&b, "Product: %s\n", product.Name)
	fmt.Fprintf(&b, "Design: %s\n", designName)

	placements := make([]string, 0, len(in.Areas))
	for _, area := range in.Areas {
		placements = append(placements, area.AreaID)
	}
	if len(placements) == 0 {
		placements = append(placements, in.Placement)
	}
	fmt.Fprintf(&b, "Placement: %s\n", strings.Join(placements, ", "))
	fmt.Fprintf(&b, "Size: %s\n", in.Size)
	fmt.Fprintf(&b, "Colors: %s\n", orNone(strings.Join(in.Colors, ", ")))
	fmt.Fprintf(&b, "Style: %s\n", orNone(in.Style))
	fmt.Fprintf(&b, "Mood: %s\n", orNone(in.Mood))
	if in.Budget != "" {
		fmt.Fprintf(&b, "Budget: %s\n", in.Budget)
	}
	if in.Timeline != "" {
		fmt.Fprintf(&b, "Timeline: %s\n", in.Timeline)
	}
	fmt.Fprintf(&b, "Notes: %s", orNone(in.CustomNotes))

	for _, area := range in.Areas {
		for _, item := range area.Items {
			switch item.Kind {
			case domain.ItemText:
				fmt.Fprintf(&b, "\n- %s: text %q", area.AreaID, item.Text)
			case domain.ItemImage:
				fmt.Fprintf(&b, "\n- %s: image %s", area.AreaID, item.ImageRef)
			}
		}
	}

	return b.String()
}

func orNone(s string) string {
	if s == "" {
		return "none"
	}
	return s
}
