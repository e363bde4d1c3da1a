package classifier

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/openlot/openlot-backend-go/internal/models"
)

func TestClassify_KeywordMatch(t *testing.T) {
	tests := []struct {
		input string
		want  models.Category
	}{
		{"I want to open a cafe", models.CategoryCoffeeShop},
		{"small espresso stand downtown", models.CategoryCoffeeShop},
		{"a family restaurant on park street", models.CategoryRestaurant},
		{"neighborhood brewery with a taproom", models.CategoryBar},
		{"affordable grocery for the south side", models.CategoryGroceryStore},
		{"24 hour pharmacy", models.CategoryPharmacy},
		{"coin laundry", models.CategoryLaundromat},
		{"hardware and lumber supply", models.CategoryHardwareStore},
		{"yoga studio", models.CategoryGym},
		{"childcare for toddlers", models.CategoryDaycare},
		{"walk-in clinic", models.CategoryUrgentCare},
	}

	for _, tt := range tests {
		res := Classify(tt.input)
		assert.Equal(t, tt.want, res.Category, "input: %q", tt.input)
		assert.Equal(t, OutcomeMatched, res.Outcome)
		assert.NotEmpty(t, res.Keyword)
	}
}

func TestClassify_CaseInsensitive(t *testing.T) {
	res := Classify("OPEN A COFFEE SHOP")
	assert.Equal(t, models.CategoryCoffeeShop, res.Category)
}

func TestClassify_FallbackToGeneral(t *testing.T) {
	for _, input := range []string{"", "a bookshop maybe", "something profitable"} {
		res := Classify(input)
		assert.Equal(t, models.CategoryGeneral, res.Category, "input: %q", input)
		assert.Equal(t, OutcomeFallback, res.Outcome)
		assert.Empty(t, res.Keyword)
	}
}

// Table order encodes priority: when keywords from two categories both occur,
// the earlier-declared category wins.
func TestClassify_DeclarationOrderWins(t *testing.T) {
	res := Classify("a coffee counter inside a grocery store")
	assert.Equal(t, models.CategoryCoffeeShop, res.Category)

	res = Classify("restaurant with a cocktail bar")
	assert.Equal(t, models.CategoryRestaurant, res.Category)
}

func TestKeywordTable_Invariants(t *testing.T) {
	seen := map[models.Category]bool{}
	for _, entry := range models.KeywordTable {
		assert.NotEmpty(t, entry.Keywords, "category %q must have keywords", entry.Category)
		assert.False(t, seen[entry.Category], "category %q declared twice", entry.Category)
		assert.NotEqual(t, models.CategoryGeneral, entry.Category, "catch-all must not carry keywords")
		seen[entry.Category] = true
	}
}
