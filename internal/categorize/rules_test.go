package categorize_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/maibrennan/larder/internal/catalog"
	"github.com/maibrennan/larder/internal/categorize"
)

func TestCategorize(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		want catalog.Category
	}{
		{"chicken thighs", catalog.CategoryProteins},
		{"ground beef", catalog.CategoryProteins},
		{"smoked salmon", catalog.CategoryProteins},
		{"firm tofu", catalog.CategoryProteins},
		{"bell pepper", catalog.CategoryFreshProduce},
		{"baby spinach", catalog.CategoryFreshProduce},
		{"sugar snap peas", catalog.CategoryFreshProduce},
		{"black pepper", catalog.CategoryFlavorBuilders},
		{"smoked paprika", catalog.CategoryFlavorBuilders},
		{"kosher salt", catalog.CategoryFlavorBuilders},
		{"soy sauce", catalog.CategoryFlavorBuilders},
		{"dijon mustard", catalog.CategoryFlavorBuilders},
		{"extra virgin olive oil", catalog.CategoryCookingEssentials},
		{"rice vinegar", catalog.CategoryCookingEssentials},
		{"all purpose flour", catalog.CategoryBakeryGrains},
		{"udon noodles", catalog.CategoryBakeryGrains},
		{"heavy cream", catalog.CategoryDairyCold},
		{"greek yogurt", catalog.CategoryDairyCold},
		{"brown sugar", catalog.CategoryPantryStaples},
		{"dried lentils", catalog.CategoryPantryStaples},
		{"frozen peas", catalog.CategoryFrozen},
		{"vanilla ice cream", catalog.CategoryFrozen},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tc.want, categorize.Categorize(tc.name))
		})
	}
}

func TestCategorize_EmbeddedWordTraps(t *testing.T) {
	t.Parallel()

	// Names that embed a keyword from a different bucket must not be
	// misfiled: "eggplant" is not an egg, "peanut butter" is not dairy.
	cases := []struct {
		name string
		want catalog.Category
	}{
		{"eggplant", catalog.CategoryFreshProduce},
		{"butternut squash", catalog.CategoryFreshProduce},
		{"peanut butter", catalog.CategoryPantryStaples},
		{"almond butter", catalog.CategoryPantryStaples},
		{"coconut milk", catalog.CategoryPantryStaples},
		{"chicken broth", catalog.CategoryPantryStaples},
		{"beef stock", catalog.CategoryPantryStaples},
		{"dark chocolate", catalog.CategoryPantryStaples},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.want, categorize.Categorize(tc.name), tc.name)
	}
}

func TestCategorize_IsTotal(t *testing.T) {
	t.Parallel()

	// Unknown names always land somewhere; the fallback bucket is
	// pantry_staples.
	assert.Equal(t, categorize.DefaultCategory, categorize.Categorize("dragonfruit"))
	assert.Equal(t, categorize.DefaultCategory, categorize.Categorize(""))
	assert.Equal(t, categorize.DefaultCategory, categorize.Categorize("???"))
}

func TestCategorize_NormalizesBeforeMatching(t *testing.T) {
	t.Parallel()

	assert.Equal(t, catalog.CategoryFlavorBuilders, categorize.Categorize("BLACK Pepper!"))
	assert.Equal(t, catalog.CategoryFreshProduce, categorize.Categorize("Jalapeño"))
}

func TestRules_OrderPutsOverridesFirst(t *testing.T) {
	t.Parallel()

	rules := categorize.Rules()
	require.NotEmpty(t, rules)

	position := make(map[string]int, len(rules))
	for i, r := range rules {
		position[r.Name] = i
	}

	assert.Less(t, position["produce-lookalikes"], position["proteins"])
	assert.Less(t, position["pantry-overrides"], position["dairy-cold"])
	assert.Less(t, position["spices-seasonings"], position["fresh-produce"])
	assert.Less(t, position["condiments-sauces"], position["fresh-produce"])
}
