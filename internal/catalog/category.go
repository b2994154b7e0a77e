package catalog

import "strings"

// Category is a kitchen-behavior bucket used to organize shopping and pantry
// views. It groups ingredients by how they are used and stored, not by any
// botanical taxonomy.
type Category string

const (
	CategoryProteins          Category = "proteins"
	CategoryFreshProduce      Category = "fresh_produce"
	CategoryFlavorBuilders    Category = "flavor_builders"
	CategoryCookingEssentials Category = "cooking_essentials"
	CategoryBakeryGrains      Category = "bakery_grains"
	CategoryDairyCold         Category = "dairy_cold"
	CategoryPantryStaples     Category = "pantry_staples"
	CategoryFrozen            Category = "frozen"
)

// Categories lists every bucket in display order.
func Categories() []Category {
	return []Category{
		CategoryProteins,
		CategoryFreshProduce,
		CategoryFlavorBuilders,
		CategoryCookingEssentials,
		CategoryBakeryGrains,
		CategoryDairyCold,
		CategoryPantryStaples,
		CategoryFrozen,
	}
}

// legacyCategories maps labels from older catalog exports into the fixed set.
var legacyCategories = map[string]Category{
	"meat":       CategoryProteins,
	"meats":      CategoryProteins,
	"seafood":    CategoryProteins,
	"fish":       CategoryProteins,
	"poultry":    CategoryProteins,
	"protein":    CategoryProteins,
	"vegetables": CategoryFreshProduce,
	"vegetable":  CategoryFreshProduce,
	"fruits":     CategoryFreshProduce,
	"fruit":      CategoryFreshProduce,
	"produce":    CategoryFreshProduce,
	"herbs":      CategoryFreshProduce,
	"spices":     CategoryFlavorBuilders,
	"spice":      CategoryFlavorBuilders,
	"seasonings": CategoryFlavorBuilders,
	"seasoning":  CategoryFlavorBuilders,
	"condiments": CategoryFlavorBuilders,
	"sauces":     CategoryFlavorBuilders,
	"oils":       CategoryCookingEssentials,
	"oil":        CategoryCookingEssentials,
	"vinegars":   CategoryCookingEssentials,
	"baking":     CategoryBakeryGrains,
	"bakery":     CategoryBakeryGrains,
	"bread":      CategoryBakeryGrains,
	"grains":     CategoryBakeryGrains,
	"grain":      CategoryBakeryGrains,
	"pasta":      CategoryBakeryGrains,
	"dairy":      CategoryDairyCold,
	"eggs":       CategoryDairyCold,
	"pantry":     CategoryPantryStaples,
	"canned":     CategoryPantryStaples,
	"dry goods":  CategoryPantryStaples,
	"freezer":    CategoryFrozen,
}

// ParseCategory normalizes a raw category label into the fixed set. Exact
// bucket names pass through; legacy labels go through the alias table;
// anything else falls back to pantry_staples.
func ParseCategory(raw string) Category {
	label := strings.ToLower(strings.TrimSpace(raw))
	label = strings.ReplaceAll(label, "-", "_")
	label = strings.Join(strings.Fields(label), " ")

	for _, c := range Categories() {
		if label == string(c) {
			return c
		}
	}
	if c, ok := legacyCategories[strings.ReplaceAll(label, "_", " ")]; ok {
		return c
	}
	if c, ok := legacyCategories[label]; ok {
		return c
	}
	return CategoryPantryStaples
}

// Label returns a human-readable form of the bucket name.
func (c Category) Label() string {
	words := strings.Split(string(c), "_")
	for i, w := range words {
		if w != "" {
			words[i] = strings.ToUpper(w[:1]) + w[1:]
		}
	}
	return strings.Join(words, " ")
}
