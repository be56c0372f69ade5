package customization

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/nikolayk812/podstudio/internal/domain"
	"github.com/nikolayk812/podstudio/internal/pricing"
)

// AreaSource resolves the placement areas of a product category.
type AreaSource interface {
	AreasFor(category string) []domain.PlacementArea
	MultiArea(category string) bool
}

type SessionOption func(*Session)

func WithCollectorOptions(opts ...CollectorOption) SessionOption {
	return func(s *Session) {
		s.collectorOpts = append(s.collectorOpts, opts...)
	}
}

// Session is the state of one customization wizard run. It is not safe for concurrent use;
// a caller owns exactly one live session per user.
type Session struct {
	id      uuid.UUID
	ownerID string

	product *domain.Product
	design  *domain.Design
	step    domain.Step

	quantity     int
	customText   string
	textColor    string
	textSize     string
	imageRef     string
	variantSize  string
	variantColor string

	wizard        *Collector
	areas         AreaSource
	collectorOpts []CollectorOption
}

func NewSession(ownerID string, areas AreaSource, opts ...SessionOption) *Session {
	s := &Session{
		id:       uuid.New(),
		ownerID:  ownerID,
		areas:    areas,
		step:     domain.StepHome,
		quantity: 1,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// nextStep derives the wizard step from which of the two picks exist.
func nextStep(hasProduct, hasDesign bool) domain.Step {
	switch {
	case hasProduct && hasDesign:
		return domain.StepDesignSuit
	case hasProduct:
		return domain.StepDesignSelection
	case hasDesign:
		return domain.StepProductSelection
	default:
		return domain.StepHome
	}
}

func (s *Session) ID() uuid.UUID {
	return s.id
}

func (s *Session) OwnerID() string {
	return s.ownerID
}

func (s *Session) Step() domain.Step {
	return s.step
}

func (s *Session) SelectedProduct() *domain.Product {
	if s.product == nil {
		return nil
	}
	p := *s.product
	return &p
}

func (s *Session) SelectedDesign() *domain.Design {
	if s.design == nil {
		return nil
	}
	d := *s.design
	return &d
}

// SelectProduct picks the product. Choosing a different product discards the wizard
// answers and garment variant, since areas and sizes depend on the product.
func (s *Session) SelectProduct(p domain.Product) {
	if s.product != nil && s.product.ID != p.ID {
		s.wizard = nil
		s.variantSize, s.variantColor = "", ""
	}
	s.product = &p
	s.advance()
}

func (s *Session) SelectDesign(d domain.Design) {
	s.design = &d
	s.advance()
}

// SelectBoth applies a product and a design picked together.
func (s *Session) SelectBoth(p domain.Product, d domain.Design) {
	s.design = &d
	s.SelectProduct(p)
}

func (s *Session) advance() {
	s.step = nextStep(s.product != nil, s.design != nil)
	if s.step == domain.StepDesignSuit && s.wizard == nil {
		s.wizard = NewCollector(
			s.areas.AreasFor(s.product.Category),
			s.areas.MultiArea(s.product.Category),
			s.collectorOpts...,
		)
	}
	if s.step == domain.StepDesignSuit {
		// a changed selection must be confirmed again before the summary
		s.wizard.reopen()
	}
}

// Wizard returns the instruction collector, active once both a product and a design are chosen.
func (s *Session) Wizard() (*Collector, error) {
	if s.wizard == nil {
		return nil, domain.ErrWizardInactive
	}
	return s.wizard, nil
}

func (s *Session) Next() error {
	w, err := s.Wizard()
	if err != nil {
		return err
	}
	if err := w.Next(); err != nil {
		return err
	}
	if w.IsComplete() {
		s.step = domain.StepSummary
	}
	return nil
}

func (s *Session) Previous() error {
	w, err := s.Wizard()
	if err != nil {
		return err
	}
	return w.Previous()
}

func (s *Session) Instructions() domain.DesignInstructions {
	if s.wizard == nil {
		return domain.DesignInstructions{}
	}
	return s.wizard.Instructions()
}

func (s *Session) Quantity() int {
	return s.quantity
}

func (s *Session) SetQuantity(quantity int) {
	s.quantity = pricing.ClampQuantity(quantity)
}

func (s *Session) IncrementQuantity() {
	s.SetQuantity(s.quantity + 1)
}

// DecrementQuantity is a no-op at one.
func (s *Session) DecrementQuantity() {
	s.SetQuantity(s.quantity - 1)
}

func (s *Session) SetCustomText(text, color, size string) {
	s.customText = strings.TrimSpace(text)
	s.textColor = color
	s.textSize = size
}

func (s *Session) SetUploadedImage(ref string) {
	s.imageRef = strings.TrimSpace(ref)
}

func (s *Session) CustomText() string {
	return s.customText
}

func (s *Session) UploadedImage() string {
	return s.imageRef
}

// SetVariant chooses the garment size and color, validated against the selected product.
// Empty values leave the corresponding choice unset.
func (s *Session) SetVariant(size, color string) error {
	if s.product == nil {
		return &domain.ValidationError{Fields: []string{"product"}, Message: "select a product first"}
	}

	var invalid []string
	if size != "" && !s.product.HasSize(size) {
		invalid = append(invalid, "size")
	}
	if color != "" && !s.product.HasColor(color) {
		invalid = append(invalid, "color")
	}
	if len(invalid) > 0 {
		return &domain.ValidationError{
			Fields:  invalid,
			Message: fmt.Sprintf("%s is not offered for %s", strings.Join(invalid, " and "), s.product.Name),
		}
	}

	s.variantSize, s.variantColor = size, color
	return nil
}

func (s *Session) Variant() (size, color string) {
	return s.variantSize, s.variantColor
}

func (s *Session) hasCustomText() bool {
	return s.customText != "" || (s.wizard != nil && s.wizard.hasItemKind(domain.ItemText))
}

func (s *Session) hasCustomImage() bool {
	return s.imageRef != "" || (s.wizard != nil && s.wizard.hasItemKind(domain.ItemImage))
}

// Quote prices the current selection from scratch.
func (s *Session) Quote(calc pricing.Calculator) pricing.Breakdown {
	in := pricing.Input{
		HasCustomText:  s.hasCustomText(),
		HasCustomImage: s.hasCustomImage(),
		Quantity:       s.quantity,
	}
	if s.product != nil {
		in.BasePrice = s.product.BasePrice.Amount
	}
	if s.design != nil {
		in.DesignPrice = s.design.Price.Amount
	}
	return calc.Calculate(in)
}

func (s *Session) setStep(step domain.Step) {
	s.step = step
}

// Reset returns the session to its initial empty state.
func (s *Session) Reset() {
	s.product = nil
	s.design = nil
	s.step = domain.StepHome
	s.quantity = 1
	s.customText, s.textColor, s.textSize = "", "", ""
	s.imageRef = ""
	s.variantSize, s.variantColor = "", ""
	s.wizard = nil
}
