// Package resolver maps deep-link targets back onto dataset features.
package resolver

import (
	"math"

	"github.com/openlot/openlot-backend-go/internal/models"
	"github.com/openlot/openlot-backend-go/internal/spatial"
)

// CoordinateTolerance absorbs the rounding introduced by the 4-decimal
// display representation that deep links are built from. This is exact-match
// with slack, not proximity search.
const CoordinateTolerance = 0.0001

// epsilon keeps deltas that are exactly one display step from falling just
// outside tolerance: 0.0001 is not representable in float64, so a subtraction
// like -89.3899 - -89.3900 lands a hair above it.
const epsilon = 1e-9

// ResolveByID looks a feature up by its stable identifier. Links that carry
// the id skip coordinate matching entirely.
func ResolveByID(locations []models.LocationFeature, id string) *models.LocationFeature {
	if id == "" {
		return nil
	}
	for i := range locations {
		if locations[i].ID == id {
			return &locations[i]
		}
	}
	return nil
}

// ResolveByCoordinates returns the first location, in dataset order, whose
// coordinates are within tolerance of the target on both axes, or nil if
// none qualifies.
func ResolveByCoordinates(locations []models.LocationFeature, lat, lng float64) *models.LocationFeature {
	for i := range locations {
		loc := &locations[i]
		if math.Abs(loc.Lat-lat) <= CoordinateTolerance+epsilon && math.Abs(loc.Lng-lng) <= CoordinateTolerance+epsilon {
			return loc
		}
	}
	return nil
}

// Nearest returns the location closest to the target by great-circle
// distance, along with that distance in meters. Returns nil on an empty
// dataset.
func Nearest(locations []models.LocationFeature, lat, lng float64) (*models.LocationFeature, float64) {
	var best *models.LocationFeature
	bestDist := math.Inf(1)
	for i := range locations {
		loc := &locations[i]
		d := spatial.HaversineDistance(lat, lng, loc.Lat, loc.Lng)
		if d < bestDist {
			best = loc
			bestDist = d
		}
	}
	return best, bestDist
}
