package ranker

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/openlot/openlot-backend-go/internal/models"
)

func lot(id string, scores ...models.CategoryScore) models.LocationFeature {
	return models.LocationFeature{
		ID:     id,
		Lat:    43.0761,
		Lng:    -89.3899,
		Scores: scores,
	}
}

func TestRankForCategory_FallbackChain(t *testing.T) {
	locations := []models.LocationFeature{
		lot("A", models.CategoryScore{Category: models.CategoryCoffeeShop, Score: 90, Reason: "strong morning traffic"}),
		lot("B", models.CategoryScore{Category: models.CategoryCoffeeShop, Score: 60, Reason: "some competition nearby"}),
		lot("C", models.CategoryScore{Category: models.CategoryGeneral, Score: 40, Reason: "average fundamentals"}),
	}

	results := RankForCategory(locations, models.CategoryCoffeeShop)
	require.Len(t, results, 3)

	assert.Equal(t, "A", results[0].LocationID)
	assert.Equal(t, 90, results[0].Score)
	assert.Equal(t, "B", results[1].LocationID)
	assert.Equal(t, 60, results[1].Score)

	// C has no coffee shop entry; its catch-all score steps in.
	assert.Equal(t, "C", results[2].LocationID)
	assert.Equal(t, 40, results[2].Score)
	assert.Equal(t, "average fundamentals", results[2].Reason)
}

func TestRankForCategory_NeverDropsLocations(t *testing.T) {
	locations := []models.LocationFeature{
		lot("scored", models.CategoryScore{Category: models.CategoryGym, Score: 70, Reason: "near campus"}),
		lot("empty"), // no score entries at all
	}

	results := RankForCategory(locations, models.CategoryGym)
	require.Len(t, results, 2)

	assert.Equal(t, "empty", results[1].LocationID)
	assert.Equal(t, 0, results[1].Score)
	assert.Equal(t, FallbackReason, results[1].Reason)
}

func TestRankForCategory_TargetBeatsCatchAll(t *testing.T) {
	locations := []models.LocationFeature{
		lot("both",
			models.CategoryScore{Category: models.CategoryGeneral, Score: 95, Reason: "general"},
			models.CategoryScore{Category: models.CategoryPharmacy, Score: 20, Reason: "target"},
		),
	}

	results := RankForCategory(locations, models.CategoryPharmacy)
	require.Len(t, results, 1)
	assert.Equal(t, 20, results[0].Score)
	assert.Equal(t, "target", results[0].Reason)
}

func TestRankForCategory_TruncatesToFive(t *testing.T) {
	var locations []models.LocationFeature
	for i := 0; i < 8; i++ {
		locations = append(locations, lot(fmt.Sprintf("L%d", i),
			models.CategoryScore{Category: models.CategoryRestaurant, Score: 10 * i, Reason: "r"}))
	}

	results := RankForCategory(locations, models.CategoryRestaurant)
	require.Len(t, results, MaxResults)

	// Non-increasing by score.
	for i := 1; i < len(results); i++ {
		assert.GreaterOrEqual(t, results[i-1].Score, results[i].Score)
	}
	assert.Equal(t, "L7", results[0].LocationID)
}

func TestRankForCategory_StableOnTies(t *testing.T) {
	locations := []models.LocationFeature{
		lot("first", models.CategoryScore{Category: models.CategoryBar, Score: 50, Reason: "r"}),
		lot("second", models.CategoryScore{Category: models.CategoryBar, Score: 50, Reason: "r"}),
		lot("third", models.CategoryScore{Category: models.CategoryBar, Score: 50, Reason: "r"}),
	}

	results := RankForCategory(locations, models.CategoryBar)
	require.Len(t, results, 3)
	assert.Equal(t, "first", results[0].LocationID)
	assert.Equal(t, "second", results[1].LocationID)
	assert.Equal(t, "third", results[2].LocationID)
}

func TestRankForCategory_EmptyInput(t *testing.T) {
	results := RankForCategory(nil, models.CategoryCoffeeShop)
	assert.Empty(t, results)
}

func TestRankForCategory_ResultFields(t *testing.T) {
	loc := lot("X", models.CategoryScore{Category: models.CategoryGym, Score: 82, Reason: "dense foot traffic"})
	loc.AddressLabel = "12 N Few St"

	results := RankForCategory([]models.LocationFeature{loc}, models.CategoryGym)
	require.Len(t, results, 1)

	r := results[0]
	assert.Equal(t, "12 N Few St (43.0761, -89.3899)", r.Address)
	assert.Equal(t, 43.0761, r.Lat)
	assert.Equal(t, -89.3899, r.Lng)
	assert.Equal(t, models.SeverityHigh, r.Severity)
}

func TestRankForCategory_VacantLotLabel(t *testing.T) {
	results := RankForCategory([]models.LocationFeature{lot("Y")}, models.CategoryGym)
	require.Len(t, results, 1)
	assert.Equal(t, "Vacant Lot (43.0761, -89.3899)", results[0].Address)
}
