package models

// Category is one of the fixed business types used for both free-text
// classification and score lookup.
type Category string

const (
	CategoryCoffeeShop    Category = "coffee shop"
	CategoryRestaurant    Category = "restaurant"
	CategoryBar           Category = "bar"
	CategoryGroceryStore  Category = "grocery store"
	CategoryPharmacy      Category = "pharmacy"
	CategoryLaundromat    Category = "laundromat"
	CategoryHardwareStore Category = "hardware store"
	CategoryGym           Category = "gym"
	CategoryDaycare       Category = "daycare"
	CategoryUrgentCare    Category = "urgent care"

	// CategoryGeneral is the catch-all; it carries no keywords and is the
	// guaranteed result when nothing else matches.
	CategoryGeneral Category = "general business"
)

// CategoryKeywords binds a category to the lowercase substrings that select it.
type CategoryKeywords struct {
	Category Category
	Keywords []string
}

// KeywordTable is the ordered rule list the classifier walks. Declaration
// order encodes priority: when an input contains keywords from more than one
// category, the earlier entry wins. Every entry except the catch-all has at
// least one keyword. The table is fixed for the process lifetime.
var KeywordTable = []CategoryKeywords{
	{CategoryCoffeeShop, []string{"coffee", "cafe", "café", "espresso", "roastery"}},
	{CategoryRestaurant, []string{"restaurant", "diner", "eatery", "bistro", "food truck"}},
	{CategoryBar, []string{"bar", "pub", "brewery", "taproom", "tavern", "cocktail"}},
	{CategoryGroceryStore, []string{"grocery", "supermarket", "produce", "market"}},
	{CategoryPharmacy, []string{"pharmacy", "drugstore", "prescription"}},
	{CategoryLaundromat, []string{"laundromat", "laundry", "dry clean"}},
	{CategoryHardwareStore, []string{"hardware", "tool rental", "lumber"}},
	{CategoryGym, []string{"gym", "fitness", "yoga", "climbing"}},
	{CategoryDaycare, []string{"daycare", "day care", "childcare", "preschool"}},
	{CategoryUrgentCare, []string{"urgent care", "clinic", "walk-in"}},
}

// Categories returns every category in priority order, catch-all last.
func Categories() []Category {
	out := make([]Category, 0, len(KeywordTable)+1)
	for _, entry := range KeywordTable {
		out = append(out, entry.Category)
	}
	return append(out, CategoryGeneral)
}
