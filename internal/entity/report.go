package entity

import (
	"time"

	"github.com/google/uuid"

	"github.com/ecotrace/carboncore/constants"
)

// ItemBreakdown is the serialized view of one scored item, ordered by
// descending emission so the highest-impact purchases surface first.
type ItemBreakdown struct {
	Name     string             `json:"name"`
	Category constants.Category `json:"category"`
	Emission float64            `json:"emission"`
	Price    float64            `json:"price"`
}

// Report is the terminal artifact of one pipeline run. Owned by the caller
// once returned; the pipeline retains nothing.
type Report struct {
	ID                   uuid.UUID       `json:"id"`
	Store                string          `json:"store"`
	StoreRating          float64         `json:"storeRating"`
	DefaultRatingApplied bool            `json:"defaultRatingApplied"`
	TotalEmissionsKg     float64         `json:"totalEmissions"`
	PackagingEmissionKg  float64         `json:"packagingEmission"`
	TransportEmissionKg  float64         `json:"transportEmission"`
	MilesEquivalent      float64         `json:"milesEquivalent"`
	TreesNeeded          float64         `json:"treesNeeded"`
	Grade                string          `json:"grade"`
	EcoScore             int             `json:"ecoScore"`
	Percentile           float64         `json:"percentile"`
	Tier                 constants.Tier  `json:"tier"`
	Items                []ItemBreakdown `json:"itemBreakdown"`
	DroppedLines         int             `json:"droppedLines"`
	CreatedAt            time.Time       `json:"createdAt"`
}
