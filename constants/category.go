package constants

// Category is an emission bucket for a purchased item. The bucket decides
// which kg-CO2e-per-unit factor applies during estimation.
type Category string

const (
	Beef        Category = "beef"
	Lamb        Category = "lamb"
	Pork        Category = "pork"
	Chicken     Category = "chicken"
	Fish        Category = "fish"
	Cheese      Category = "cheese"
	Milk        Category = "milk"
	Eggs        Category = "eggs"
	Vegetables  Category = "vegetables"
	Fruits      Category = "fruits"
	Bread       Category = "bread"
	Rice        Category = "rice"
	Beans       Category = "beans"
	Pasta       Category = "pasta"
	Coffee      Category = "coffee"
	Chocolate   Category = "chocolate"
	Wine        Category = "wine"
	Beer        Category = "beer"
	Soda        Category = "soda"
	Snacks      Category = "snacks"
	Frozen      Category = "frozen"
	Processed   Category = "processed"
	Organic     Category = "organic"
	Plastic     Category = "plastic"
	Electronics Category = "electronics"
	Clothing    Category = "clothing"
	Cleaning    Category = "cleaning"
	Default     Category = "default"
)

// allCategories is the canonical declaration order. Keyword matching and any
// user-facing listing must follow this order, never map iteration order.
var allCategories = []Category{
	Beef,
	Lamb,
	Pork,
	Chicken,
	Fish,
	Cheese,
	Milk,
	Eggs,
	Vegetables,
	Fruits,
	Bread,
	Rice,
	Beans,
	Pasta,
	Coffee,
	Chocolate,
	Wine,
	Beer,
	Soda,
	Snacks,
	Frozen,
	Processed,
	Organic,
	Plastic,
	Electronics,
	Clothing,
	Cleaning,
	Default,
}

// AllCategories returns the categories in declaration order.
func AllCategories() []Category {
	out := make([]Category, len(allCategories))
	copy(out, allCategories)
	return out
}

func AsStringSlice() []string {
	result := make([]string, len(allCategories))
	for i, cat := range allCategories {
		result[i] = string(cat)
	}
	return result
}

// IsValid reports whether input names a known category.
func IsValid(input string) bool {
	for _, cat := range allCategories {
		if input == string(cat) {
			return true
		}
	}
	return false
}
