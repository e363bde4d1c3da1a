// Package ranker turns the raw per-location score lists into the top-N
// ranking shown on the list page.
package ranker

import (
	"sort"

	"github.com/openlot/openlot-backend-go/internal/models"
)

// MaxResults is the hard cap on a ranking. Fixed, not configurable.
const MaxResults = 5

// FallbackReason is the synthesized reason for locations with no usable
// score entry for the requested category.
const FallbackReason = "Data unavailable for this location."

// RankForCategory scores every location against one category and returns the
// top results, best first. Per location the lookup falls back in three steps:
// the target category, then the catch-all, then a synthesized zero score.
// Locations are never dropped for missing data. The sort is stable, so equal
// scores keep their dataset order. An empty input yields an empty ranking.
func RankForCategory(locations []models.LocationFeature, category models.Category) []models.RankedResult {
	results := make([]models.RankedResult, 0, len(locations))
	for i := range locations {
		loc := &locations[i]
		entry := scoreFor(loc, category)
		results = append(results, models.RankedResult{
			LocationID: loc.ID,
			Address:    loc.DisplayAddress(),
			Lat:        loc.Lat,
			Lng:        loc.Lng,
			Score:      entry.Score,
			Reason:     entry.Reason,
			Severity:   models.SeverityForScore(entry.Score),
		})
	}

	sort.SliceStable(results, func(a, b int) bool {
		return results[a].Score > results[b].Score
	})

	if len(results) > MaxResults {
		results = results[:MaxResults]
	}
	return results
}

// scoreFor runs the three-step fallback for one location. Score lists are
// not sorted in the source data, so both lookups scan the whole list.
func scoreFor(loc *models.LocationFeature, category models.Category) models.CategoryScore {
	for _, s := range loc.Scores {
		if s.Category == category {
			return s
		}
	}
	for _, s := range loc.Scores {
		if s.Category == models.CategoryGeneral {
			return s
		}
	}
	return models.CategoryScore{Category: category, Score: 0, Reason: FallbackReason}
}
