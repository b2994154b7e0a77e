// Package categorize assigns kitchen-behavior categories to ingredient names
// that are not in the catalog. It is a keyword heuristic, not a classifier:
// an ordered rule list evaluated top to bottom, first substring hit wins.
package categorize

import (
	"strings"

	"github.com/maibrennan/larder/internal/catalog"
	"github.com/maibrennan/larder/internal/text"
)

// Rule pairs an ordered keyword set with the category it assigns. A rule
// matches when any keyword is a substring of the normalized ingredient name.
type Rule struct {
	Name     string
	Keywords []string
	Category catalog.Category
}

// rules are evaluated in order; more specific groups come first. Spice and
// seasoning keywords must precede produce: "black pepper" is a flavor
// builder even though "pepper" alone would read as produce.
var rules = []Rule{
	{
		Name: "frozen",
		Keywords: []string{
			"frozen", "ice cream", "popsicle", "sorbet", "gelato",
		},
		Category: catalog.CategoryFrozen,
	},
	{
		// Produce whose name embeds a protein or dairy word ("eggplant"
		// contains "egg"). Must run before those rules.
		Name: "produce-lookalikes",
		Keywords: []string{
			"eggplant", "butternut",
		},
		Category: catalog.CategoryFreshProduce,
	},
	{
		// Shelf goods whose names embed dairy or protein words ("peanut
		// butter", "chicken broth"). Must run before those rules.
		Name: "pantry-overrides",
		Keywords: []string{
			"peanut butter", "almond butter", "nut butter", "cocoa butter",
			"coconut milk", "broth", "stock", "bouillon",
			"honey", "maple syrup", "molasses", "agave",
			"jam", "jelly", "chocolate", "cocoa",
		},
		Category: catalog.CategoryPantryStaples,
	},
	{
		Name: "spices-seasonings",
		Keywords: []string{
			"black pepper", "white pepper", "cayenne", "peppercorn",
			"chili powder", "chile powder", "curry powder", "garlic powder",
			"onion powder", "paprika", "cumin", "coriander", "turmeric",
			"cinnamon", "nutmeg", "clove", "allspice", "cardamom", "saffron",
			"oregano", "thyme", "rosemary", "sage", "bay leaf", "bay leaves",
			"dill", "tarragon", "marjoram", "seasoning", "spice", "rub",
			"salt", "msg", "vanilla extract", "extract",
		},
		Category: catalog.CategoryFlavorBuilders,
	},
	{
		Name: "condiments-sauces",
		Keywords: []string{
			"soy sauce", "fish sauce", "hot sauce", "worcestershire",
			"sriracha", "ketchup", "mustard", "mayonnaise", "mayo",
			"relish", "salsa", "pesto", "hoisin", "teriyaki", "bbq sauce",
			"barbecue sauce", "gochujang", "miso", "tahini", "chutney",
			"horseradish", "sauce", "dressing", "marinade",
		},
		Category: catalog.CategoryFlavorBuilders,
	},
	{
		Name: "oils-fats-vinegars",
		Keywords: []string{
			"olive oil", "vegetable oil", "canola oil", "sesame oil",
			"coconut oil", "peanut oil", "avocado oil", "oil", "shortening",
			"lard", "ghee", "cooking spray", "vinegar",
		},
		Category: catalog.CategoryCookingEssentials,
	},
	{
		Name: "proteins",
		Keywords: []string{
			"chicken", "beef", "pork", "turkey", "lamb", "veal", "duck",
			"bacon", "sausage", "ham", "prosciutto", "salami", "chorizo",
			"steak", "brisket", "ribs", "meatball", "ground meat",
			"salmon", "tuna", "cod", "tilapia", "halibut", "trout",
			"shrimp", "prawn", "crab", "lobster", "scallop", "mussel",
			"clam", "oyster", "anchovy", "sardine", "fish",
			"tofu", "tempeh", "seitan", "egg",
		},
		Category: catalog.CategoryProteins,
	},
	{
		Name: "dairy-cold",
		Keywords: []string{
			"milk", "cream", "half and half", "butter", "margarine",
			"cheese", "cheddar", "mozzarella", "parmesan", "feta", "brie",
			"ricotta", "yogurt", "yoghurt", "kefir", "buttermilk",
			"creme fraiche",
		},
		Category: catalog.CategoryDairyCold,
	},
	{
		Name: "bakery-grains",
		Keywords: []string{
			"flour", "bread", "baguette", "roll", "bun", "bagel", "pita",
			"tortilla", "naan", "croissant", "muffin", "cracker",
			"pasta", "spaghetti", "penne", "macaroni", "noodle", "lasagna",
			"rice", "quinoa", "couscous", "barley", "oat", "oatmeal",
			"cornmeal", "polenta", "breadcrumb", "panko", "cereal",
			"yeast", "baking powder", "baking soda", "cornstarch",
		},
		Category: catalog.CategoryBakeryGrains,
	},
	{
		Name: "fresh-produce",
		Keywords: []string{
			"lettuce", "spinach", "kale", "arugula", "cabbage", "chard",
			"broccoli", "cauliflower", "carrot", "celery", "cucumber",
			"zucchini", "squash", "pumpkin", "pepper", "chile",
			"chili", "jalapeno", "tomato", "potato", "onion", "shallot",
			"scallion", "leek", "garlic", "ginger", "mushroom", "radish",
			"beet", "turnip", "parsnip", "asparagus", "artichoke", "corn",
			"peas", "snap pea", "snow pea", "green bean", "avocado",
			"apple", "banana", "orange",
			"lemon", "lime", "grapefruit", "grape", "berry", "berries",
			"strawberry", "blueberry", "raspberry", "melon", "watermelon",
			"mango", "pineapple", "peach", "pear", "plum", "cherry",
			"apricot", "kiwi", "fig", "pomegranate", "cilantro", "parsley",
			"basil", "mint", "chive",
		},
		Category: catalog.CategoryFreshProduce,
	},
	{
		Name: "pantry-staples",
		Keywords: []string{
			"sugar", "canned", "bean", "lentil", "chickpea",
			"nut", "almond", "walnut", "pecan", "cashew", "seed",
			"raisin", "dried fruit", "coffee", "tea",
		},
		Category: catalog.CategoryPantryStaples,
	},
}

// DefaultCategory is assigned when no rule matches.
const DefaultCategory = catalog.CategoryPantryStaples

// Rules returns the ordered rule list so callers (and tests) can inspect
// evaluation order directly.
func Rules() []Rule {
	out := make([]Rule, len(rules))
	copy(out, rules)
	return out
}

// Categorize assigns a category to an ingredient name. It normalizes the
// name, walks the rule list in order, and returns the first rule's category
// whose keyword set has a substring hit. Falls back to DefaultCategory; the
// function is total and deterministic for every input.
func Categorize(ingredientName string) catalog.Category {
	normalized := text.Normalize(ingredientName)
	if normalized == "" {
		return DefaultCategory
	}
	for _, rule := range rules {
		for _, kw := range rule.Keywords {
			if strings.Contains(normalized, kw) {
				return rule.Category
			}
		}
	}
	return DefaultCategory
}
