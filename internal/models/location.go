package models

import "fmt"

// CategoryScore is one pre-computed viability entry attached to a location.
// Scores come from the offline pipeline and are never recomputed here.
type CategoryScore struct {
	Category Category `json:"category"`
	Score    int      `json:"score"` // 0-100
	Reason   string   `json:"reason"`
}

// LocationFeature represents one scored parcel from the dataset. Features are
// immutable after load; consumers must not assume Scores is sorted.
type LocationFeature struct {
	ID           string  `json:"id" db:"id"`
	Lat          float64 `json:"lat" db:"lat"`
	Lng          float64 `json:"lng" db:"lng"`
	AddressLabel string  `json:"address_label" db:"address_label"`
	Name         string  `json:"name,omitempty" db:"name"`

	Scores             []CategoryScore `json:"scores"`
	TopRecommendations []CategoryScore `json:"top_recommendations"`
}

// VacantLotLabel is the display label for parcels with no street address.
const VacantLotLabel = "Vacant Lot"

// DisplayAddress returns the label used by both UI surfaces: street line plus
// parenthesized 4-decimal coordinates, e.g. "12 N Few St (43.0761, -89.3899)".
func (f *LocationFeature) DisplayAddress() string {
	label := f.AddressLabel
	if label == "" {
		label = VacantLotLabel
	}
	return fmt.Sprintf("%s (%.4f, %.4f)", label, f.Lat, f.Lng)
}

// RankedResult is one row of a category ranking, self-contained so the view
// layer never goes back to the raw feature.
type RankedResult struct {
	LocationID string  `json:"location_id"`
	Address    string  `json:"address"`
	Lat        float64 `json:"lat"`
	Lng        float64 `json:"lng"`
	Score      int     `json:"score"`
	Reason     string  `json:"reason"`
	Severity   string  `json:"severity"`
}

// Severity buckets used for display styling only. Recomputed from the score
// on every render, never stored on a CategoryScore.
const (
	SeverityHigh   = "high"
	SeverityMedium = "medium"
	SeverityLow    = "low"
)

// SeverityForScore maps a 0-100 score onto the three display tiers.
func SeverityForScore(score int) string {
	switch {
	case score >= 80:
		return SeverityHigh
	case score >= 50:
		return SeverityMedium
	default:
		return SeverityLow
	}
}
