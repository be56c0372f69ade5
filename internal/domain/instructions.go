package domain

import (
	"fmt"
	"slices"
)

// Size tiers for the printed design. These are not garment sizes.
const (
	SizeSmall      = "small"
	SizeMedium     = "medium"
	SizeLarge      = "large"
	SizeExtraLarge = "extra-large"
)

var designSizes = []string{SizeSmall, SizeMedium, SizeLarge, SizeExtraLarge}

func DesignSizes() []string {
	return slices.Clone(designSizes)
}

func IsDesignSize(size string) bool {
	return slices.Contains(designSizes, size)
}

// DesignInstructions is what the customer tells the designer. Empty strings mean "not answered".
type DesignInstructions struct {
	Placement   string              `json:"placement"`
	Size        string              `json:"size"`
	Colors      []string            `json:"colors,omitempty"`
	Style       string              `json:"style,omitempty"`
	Mood        string              `json:"mood,omitempty"`
	Budget      string              `json:"budget,omitempty"`
	Timeline    string              `json:"timeline,omitempty"`
	CustomNotes string              `json:"customNotes,omitempty"`
	Areas       []AreaCustomization `json:"areas,omitempty"`
}

// Missing lists the required fields that are still empty.
func (d DesignInstructions) Missing() []string {
	var missing []string
	if d.Placement == "" {
		missing = append(missing, "placement")
	}
	if d.Size == "" {
		missing = append(missing, "size")
	}
	return missing
}

func (d DesignInstructions) IsComplete() bool {
	return len(d.Missing()) == 0
}

// Clone returns a deep copy so the caller can't mutate slices shared with a live wizard.
func (d DesignInstructions) Clone() DesignInstructions {
	out := d
	out.Colors = slices.Clone(d.Colors)
	if d.Areas != nil {
		out.Areas = make([]AreaCustomization, len(d.Areas))
		for i, a := range d.Areas {
			out.Areas[i] = AreaCustomization{AreaID: a.AreaID, Items: slices.Clone(a.Items)}
		}
	}
	return out
}

type ItemKind string

const (
	ItemText  ItemKind = "text"
	ItemImage ItemKind = "image"
)

// CustomizationItem is a single text or image placed in an area.
type CustomizationItem struct {
	Kind      ItemKind `json:"type"`
	Text      string   `json:"text,omitempty"`
	TextColor string   `json:"textColor,omitempty"`
	TextSize  string   `json:"textSize,omitempty"`
	ImageRef  string   `json:"image,omitempty"`
}

func (i CustomizationItem) Validate() error {
	switch i.Kind {
	case ItemText:
		if i.Text == "" {
			return &ValidationError{Fields: []string{"text"}, Message: "text item has no text"}
		}
	case ItemImage:
		if i.ImageRef == "" {
			return &ValidationError{Fields: []string{"image"}, Message: "image item has no image"}
		}
	default:
		return fmt.Errorf("%w: %q", ErrItemKindUnsupported, i.Kind)
	}
	return nil
}

type AreaCustomization struct {
	AreaID string              `json:"areaId"`
	Items  []CustomizationItem `json:"items,omitempty"`
}
