package entity

import "github.com/ecotrace/carboncore/constants"

// LineItem is one purchased item recovered from a receipt line. Immutable
// once built: name and price come from the extractor, the category from the
// classifier.
type LineItem struct {
	Name     string             `json:"name"`
	Price    float64            `json:"price"`
	Category constants.Category `json:"category"`
}

// EmissionRecord pairs a line item with its estimated footprint.
// BaseFactorKg is the raw category factor before any adjustment; EmissionKg
// is the final per-item figure after organic and store adjustments.
type EmissionRecord struct {
	Item         LineItem `json:"item"`
	BaseFactorKg float64  `json:"baseFactorKg"`
	EmissionKg   float64  `json:"emission"`
}
