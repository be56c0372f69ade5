package domain

import (
	"slices"

	"github.com/google/uuid"
)

type Product struct {
	ID             uuid.UUID
	Name           string
	Description    string
	Category       string
	BasePrice      Money
	Colors         []string
	Sizes          []string
	IsCustomizable bool
}

func (p Product) HasColor(color string) bool {
	return slices.Contains(p.Colors, color)
}

func (p Product) HasSize(size string) bool {
	return slices.Contains(p.Sizes, size)
}

type Design struct {
	ID        uuid.UUID
	Name      string
	CreatorID uuid.UUID
	Price     Money
	ImageURL  string
	Tags      []string
}

// PlacementArea is a printable region of a product, e.g. the front of a t-shirt.
// MaxItems caps how many customization items the area accepts.
type PlacementArea struct {
	ID            string
	Label         string
	SupportsText  bool
	SupportsImage bool
	MaxItems      int
}

func (a PlacementArea) Supports(kind ItemKind) bool {
	switch kind {
	case ItemText:
		return a.SupportsText
	case ItemImage:
		return a.SupportsImage
	default:
		return false
	}
}
