package catalog

import (
	"slices"
	"strings"

	"github.com/nikolayk812/podstudio/internal/domain"
)

type placementTable struct {
	multiArea bool
	areas     []domain.PlacementArea
}

var defaultTable = placementTable{
	areas: []domain.PlacementArea{
		{ID: "front", Label: "Front", SupportsText: true, SupportsImage: true, MaxItems: 1},
		{ID: "back", Label: "Back", SupportsText: true, SupportsImage: true, MaxItems: 1},
	},
}

var placementTables = map[string]placementTable{
	"t-shirt": {
		multiArea: true,
		areas: []domain.PlacementArea{
			{ID: "front-center", Label: "Front Center", SupportsText: true, SupportsImage: true, MaxItems: 1},
			{ID: "front-left-chest", Label: "Left Chest", SupportsText: true, SupportsImage: true, MaxItems: 1},
			{ID: "back", Label: "Back", SupportsText: true, SupportsImage: true, MaxItems: 1},
			{ID: "left-sleeve", Label: "Left Sleeve", SupportsText: true, SupportsImage: false, MaxItems: 1},
			{ID: "right-sleeve", Label: "Right Sleeve", SupportsText: true, SupportsImage: false, MaxItems: 1},
		},
	},
	"hoodie": {
		multiArea: true,
		areas: []domain.PlacementArea{
			{ID: "front-center", Label: "Front Center", SupportsText: true, SupportsImage: true, MaxItems: 1},
			{ID: "back", Label: "Back", SupportsText: true, SupportsImage: true, MaxItems: 1},
			{ID: "hood", Label: "Hood", SupportsText: true, SupportsImage: true, MaxItems: 1},
			{ID: "left-sleeve", Label: "Left Sleeve", SupportsText: true, SupportsImage: false, MaxItems: 1},
			{ID: "right-sleeve", Label: "Right Sleeve", SupportsText: true, SupportsImage: false, MaxItems: 1},
		},
	},
	"mug": {
		areas: []domain.PlacementArea{
			{ID: "front", Label: "Front", SupportsText: true, SupportsImage: true, MaxItems: 1},
			{ID: "back", Label: "Back", SupportsText: true, SupportsImage: true, MaxItems: 1},
			{ID: "wrap-around", Label: "Wrap Around", SupportsText: false, SupportsImage: true, MaxItems: 1},
		},
	},
	"poster": {
		areas: []domain.PlacementArea{
			{ID: "full-print", Label: "Full Print", SupportsText: true, SupportsImage: true, MaxItems: 1},
		},
	},
	"phone-case": {
		areas: []domain.PlacementArea{
			{ID: "back", Label: "Back", SupportsText: true, SupportsImage: true, MaxItems: 1},
		},
	},
	"tote-bag": {
		multiArea: true,
		areas: []domain.PlacementArea{
			{ID: "front", Label: "Front", SupportsText: true, SupportsImage: true, MaxItems: 1},
			{ID: "back", Label: "Back", SupportsText: true, SupportsImage: true, MaxItems: 1},
		},
	},
}

func lookup(category string) placementTable {
	table, ok := placementTables[strings.ToLower(strings.TrimSpace(category))]
	if !ok {
		return defaultTable
	}
	return table
}

// AreasFor returns the placement areas of a product category. It never returns an empty
// slice: unknown categories get the front/back default.
func AreasFor(category string) []domain.PlacementArea {
	return slices.Clone(lookup(category).areas)
}

// MultiArea reports whether more than one area may be customized at once.
func MultiArea(category string) bool {
	return lookup(category).multiArea
}

func Categories() []string {
	out := make([]string, 0, len(placementTables))
	for c := range placementTables {
		out = append(out, c)
	}
	slices.Sort(out)
	return out
}
