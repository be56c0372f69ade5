package customization

import (
	"fmt"
	"slices"
	"strings"

	"github.com/nikolayk812/podstudio/internal/domain"
)

type Question string

const (
	QuestionPlacement Question = "placement"
	QuestionSize      Question = "size"
	QuestionColors    Question = "colors"
	QuestionStyle     Question = "style"
	QuestionMood      Question = "mood"
	QuestionBudget    Question = "budget"
	QuestionTimeline  Question = "timeline"
	QuestionNotes     Question = "notes"
)

func (q Question) Required() bool {
	return q == QuestionPlacement || q == QuestionSize
}

var (
	standardQuestions = []Question{
		QuestionPlacement, QuestionSize, QuestionColors, QuestionStyle, QuestionMood, QuestionNotes,
	}
	extendedQuestions = []Question{
		QuestionPlacement, QuestionSize, QuestionColors, QuestionStyle, QuestionMood,
		QuestionBudget, QuestionTimeline, QuestionNotes,
	}
)

type CollectorOption func(*Collector)

// WithExtendedQuestions adds the budget and timeline questions before the notes.
func WithExtendedQuestions() CollectorOption {
	return func(c *Collector) {
		c.questions = slices.Clone(extendedQuestions)
	}
}

// Collector walks the customer through the design questions in order. Only placement and
// size block forward progress; going back never discards answers.
type Collector struct {
	questions []Question
	pos       int
	complete  bool

	areas     []domain.PlacementArea
	multiArea bool
	selected  []string
	items     map[string][]domain.CustomizationItem

	answers domain.DesignInstructions
}

func NewCollector(areas []domain.PlacementArea, multiArea bool, opts ...CollectorOption) *Collector {
	c := &Collector{
		questions: slices.Clone(standardQuestions),
		areas:     slices.Clone(areas),
		multiArea: multiArea,
		items:     make(map[string][]domain.CustomizationItem),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *Collector) Questions() []Question {
	return slices.Clone(c.questions)
}

func (c *Collector) Current() Question {
	return c.questions[c.pos]
}

func (c *Collector) Position() int {
	return c.pos
}

func (c *Collector) IsComplete() bool {
	return c.complete
}

func (c *Collector) Areas() []domain.PlacementArea {
	return slices.Clone(c.areas)
}

func (c *Collector) MultiArea() bool {
	return c.multiArea
}

func (c *Collector) SelectedAreas() []string {
	return slices.Clone(c.selected)
}

// Next validates the current question and moves forward. Answering the last question
// completes the collector.
func (c *Collector) Next() error {
	if c.complete {
		return domain.ErrWizardComplete
	}
	if err := c.validate(c.Current()); err != nil {
		return err
	}

	if c.pos == len(c.questions)-1 {
		c.complete = true
		return nil
	}
	c.pos++

	return nil
}

// reopen keeps every answer and the position but requires the last question to be
// confirmed again.
func (c *Collector) reopen() {
	c.complete = false
}

func (c *Collector) Previous() error {
	if c.complete {
		return domain.ErrWizardComplete
	}
	if c.pos > 0 {
		c.pos--
	}
	return nil
}

func (c *Collector) validate(q Question) error {
	switch q {
	case QuestionPlacement:
		if len(c.selected) == 0 {
			return &domain.ValidationError{Fields: []string{"placement"}, Message: "select at least one placement area"}
		}
	case QuestionSize:
		if c.answers.Size == "" {
			return &domain.ValidationError{Fields: []string{"size"}, Message: "select a design size"}
		}
	}
	return nil
}

func (c *Collector) area(id string) (domain.PlacementArea, bool) {
	idx := slices.IndexFunc(c.areas, func(a domain.PlacementArea) bool { return a.ID == id })
	if idx < 0 {
		return domain.PlacementArea{}, false
	}
	return c.areas[idx], true
}

// ToggleArea selects or deselects a placement area. Single-area products replace the
// current selection. Deselecting an area drops its items.
func (c *Collector) ToggleArea(id string) error {
	if c.complete {
		return domain.ErrWizardComplete
	}
	if _, ok := c.area(id); !ok {
		return fmt.Errorf("area[%s]: %w", id, domain.ErrAreaUnknown)
	}

	if idx := slices.Index(c.selected, id); idx >= 0 {
		c.selected = slices.Delete(c.selected, idx, idx+1)
		delete(c.items, id)
		return nil
	}

	if !c.multiArea {
		for _, prev := range c.selected {
			delete(c.items, prev)
		}
		c.selected = c.selected[:0]
	}
	c.selected = append(c.selected, id)

	return nil
}

func (c *Collector) SetSize(size string) error {
	if c.complete {
		return domain.ErrWizardComplete
	}
	if !domain.IsDesignSize(size) {
		return &domain.ValidationError{
			Fields:  []string{"size"},
			Message: fmt.Sprintf("size %q is not one of %s", size, strings.Join(domain.DesignSizes(), ", ")),
		}
	}
	c.answers.Size = size
	return nil
}

// SetColors replaces the color set. Blank entries and duplicates are dropped, order is kept.
func (c *Collector) SetColors(colors ...string) error {
	if c.complete {
		return domain.ErrWizardComplete
	}

	var out []string
	for _, color := range colors {
		color = strings.TrimSpace(color)
		if color == "" || slices.Contains(out, color) {
			continue
		}
		out = append(out, color)
	}
	c.answers.Colors = out

	return nil
}

func (c *Collector) SetStyle(style string) error {
	return c.setText(&c.answers.Style, style)
}

func (c *Collector) SetMood(mood string) error {
	return c.setText(&c.answers.Mood, mood)
}

func (c *Collector) SetBudget(budget string) error {
	return c.setText(&c.answers.Budget, budget)
}

func (c *Collector) SetTimeline(timeline string) error {
	return c.setText(&c.answers.Timeline, timeline)
}

func (c *Collector) SetNotes(notes string) error {
	return c.setText(&c.answers.CustomNotes, notes)
}

func (c *Collector) setText(field *string, value string) error {
	if c.complete {
		return domain.ErrWizardComplete
	}
	*field = strings.TrimSpace(value)
	return nil
}

// CanAddItem reports whether the area is selected and still below its cap.
func (c *Collector) CanAddItem(areaID string) bool {
	area, ok := c.area(areaID)
	if !ok || !slices.Contains(c.selected, areaID) {
		return false
	}
	return len(c.items[areaID]) < area.MaxItems
}

func (c *Collector) AddItem(areaID string, item domain.CustomizationItem) error {
	if c.complete {
		return domain.ErrWizardComplete
	}

	area, ok := c.area(areaID)
	if !ok || !slices.Contains(c.selected, areaID) {
		return fmt.Errorf("area[%s]: %w", areaID, domain.ErrAreaUnknown)
	}
	if err := item.Validate(); err != nil {
		return err
	}
	if !area.Supports(item.Kind) {
		return fmt.Errorf("area[%s] kind[%s]: %w", areaID, item.Kind, domain.ErrItemKindUnsupported)
	}
	if len(c.items[areaID]) >= area.MaxItems {
		return fmt.Errorf("area[%s] holds %d: %w", areaID, area.MaxItems, domain.ErrAreaCapacity)
	}

	c.items[areaID] = append(c.items[areaID], item)

	return nil
}

func (c *Collector) RemoveItem(areaID string, index int) error {
	if c.complete {
		return domain.ErrWizardComplete
	}

	items := c.items[areaID]
	if index < 0 || index >= len(items) {
		return fmt.Errorf("area[%s] has no item %d", areaID, index)
	}
	c.items[areaID] = slices.Delete(items, index, index+1)

	return nil
}

func (c *Collector) hasItemKind(kind domain.ItemKind) bool {
	for _, items := range c.items {
		for _, item := range items {
			if item.Kind == kind {
				return true
			}
		}
	}
	return false
}

// Instructions returns a snapshot of the answers so far.
func (c *Collector) Instructions() domain.DesignInstructions {
	out := c.answers.Clone()
	if len(c.selected) > 0 {
		out.Placement = c.selected[0]
	}
	for _, id := range c.selected {
		out.Areas = append(out.Areas, domain.AreaCustomization{
			AreaID: id,
			Items:  slices.Clone(c.items[id]),
		})
	}
	return out
}
