// Package classify maps free-text item names to emission categories.
package classify

import (
	"strings"

	"github.com/ecotrace/carboncore/constants"
)

// Classifier assigns an emission category to an item name. Implementations
// must be total: any string maps to some category, never an error. The
// keyword ruleset here can be swapped for a trained model or an external
// service without touching the estimator.
type Classifier interface {
	Classify(itemName string) constants.Category
}

// rule binds one category to its keyword set. Rules are evaluated in slice
// order; the first keyword hit wins, so overlapping keywords resolve by
// declaration order.
type rule struct {
	category constants.Category
	keywords []string
}

// KeywordClassifier is the deterministic substring-matching classifier.
type KeywordClassifier struct {
	rules []rule
}

// defaultRules follows the category declaration order in constants. Meats
// come first so compound names like "grass-fed ground beef" resolve to the
// meat, not a later bucket.
var defaultRules = []rule{
	{constants.Beef, []string{"beef", "steak", "burger", "brisket", "veal"}},
	{constants.Lamb, []string{"lamb", "mutton"}},
	{constants.Pork, []string{"pork", "bacon", "ham", "sausage", "salami"}},
	{constants.Chicken, []string{"chicken", "turkey", "poultry", "drumstick", "wings"}},
	{constants.Fish, []string{"fish", "salmon", "tuna", "shrimp", "cod", "tilapia", "seafood", "crab"}},
	{constants.Cheese, []string{"cheese", "cheddar", "mozzarella", "parmesan", "brie", "feta"}},
	{constants.Milk, []string{"milk", "cream", "yogurt", "butter", "dairy"}},
	{constants.Eggs, []string{"egg"}},
	{constants.Vegetables, []string{"spinach", "lettuce", "tomato", "broccoli", "carrot", "onion", "pepper", "cucumber", "kale", "celery", "potato", "mushroom", "salad", "veggie", "vegetable"}},
	{constants.Fruits, []string{"apple", "banana", "orange", "grape", "mango", "melon", "peach", "pear", "berries", "berry", "avocado", "fruit"}},
	{constants.Bread, []string{"bread", "bagel", "bun", "croissant", "tortilla", "loaf", "baguette"}},
	{constants.Rice, []string{"rice", "quinoa", "oats", "oatmeal", "cereal", "granola"}},
	{constants.Beans, []string{"bean", "lentil", "chickpea", "tofu", "hummus"}},
	{constants.Pasta, []string{"pasta", "spaghetti", "noodle", "macaroni", "ramen"}},
	{constants.Coffee, []string{"coffee", "espresso", "latte"}},
	{constants.Chocolate, []string{"chocolate", "cocoa", "candy"}},
	{constants.Wine, []string{"wine", "merlot", "chardonnay"}},
	{constants.Beer, []string{"beer", "lager", "ale", "ipa"}},
	{constants.Soda, []string{"soda", "cola", "soft drink", "sparkling water"}},
	{constants.Snacks, []string{"chip", "cracker", "cookie", "popcorn", "pretzel", "snack"}},
	{constants.Frozen, []string{"frozen", "ice cream", "popsicle"}},
	{constants.Processed, []string{"canned", "instant", "microwave", "soup mix"}},
	{constants.Plastic, []string{"plastic", "ziploc", "cling wrap", "cutlery"}},
	{constants.Electronics, []string{"battery", "batteries", "charger", "cable", "headphone", "earbud", "usb", "electronic"}},
	{constants.Clothing, []string{"shirt", "pants", "sock", "jacket", "jeans", "hoodie", "dress", "apparel"}},
	{constants.Cleaning, []string{"detergent", "bleach", "cleaner", "soap", "wipes", "sanitizer", "sponge"}},
}

// NewKeywordClassifier returns a classifier over the built-in ruleset.
func NewKeywordClassifier() *KeywordClassifier {
	return &KeywordClassifier{rules: defaultRules}
}

// NewKeywordClassifierWithRules builds a classifier from an explicit ordered
// mapping. Order in the slice is match priority.
func NewKeywordClassifierWithRules(ordered []constants.Category, keywords map[constants.Category][]string) *KeywordClassifier {
	rules := make([]rule, 0, len(ordered))
	for _, cat := range ordered {
		if kws := keywords[cat]; len(kws) > 0 {
			rules = append(rules, rule{category: cat, keywords: kws})
		}
	}
	return &KeywordClassifier{rules: rules}
}

// Classify lower-cases the name and returns the first category whose keyword
// set has a substring match. No match falls back to the default category.
func (c *KeywordClassifier) Classify(itemName string) constants.Category {
	name := strings.ToLower(itemName)
	for _, r := range c.rules {
		for _, kw := range r.keywords {
			if strings.Contains(name, kw) {
				return r.category
			}
		}
	}
	return constants.Default
}
