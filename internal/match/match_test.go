package match_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/maibrennan/larder/internal/catalog"
	"github.com/maibrennan/larder/internal/match"
)

func testIndex() *catalog.Index {
	return catalog.NewIndex([]catalog.Entry{
		{ID: "ing-1", Name: "Green Onion", Synonyms: []string{"scallion", "spring onion"}, Category: "fresh_produce", Origin: catalog.OriginSystem},
		{ID: "ing-2", Name: "All-Purpose Flour", Synonyms: []string{"plain flour"}, Category: "bakery_grains", Origin: catalog.OriginSystem},
		{ID: "ing-3", Name: "Whole Milk", Synonyms: []string{"milk"}, Category: "dairy_cold", Origin: catalog.OriginSystem},
		{ID: "ing-4", Name: "Black Pepper", Category: "flavor_builders", Origin: catalog.OriginSystem},
	})
}

func TestMatch_ExactViaSynonymAfterReduction(t *testing.T) {
	t.Parallel()

	m := match.New()
	result := m.Match("2 scallions, chopped", testIndex())

	// "scallions" is not an indexed string, but "scallion" is contained in
	// it, so the phrase still lands on Green Onion.
	require.NotNil(t, result.Entry)
	assert.Equal(t, "ing-1", result.Entry.ID)
	assert.NotEqual(t, match.KindNone, result.Kind)
	assert.GreaterOrEqual(t, result.Confidence, match.Threshold)
}

func TestMatch_ExactTier(t *testing.T) {
	t.Parallel()

	m := match.New()

	result := m.Match("1 cup milk", testIndex())
	assert.Equal(t, match.KindExact, result.Kind)
	assert.Equal(t, 100, result.Confidence)
	require.NotNil(t, result.Entry)
	assert.Equal(t, "ing-3", result.Entry.ID)

	result = m.Match("2 cups ALL-PURPOSE FLOUR", testIndex())
	assert.Equal(t, match.KindExact, result.Kind)
	assert.Equal(t, "ing-2", result.Entry.ID)
}

func TestMatch_PartialTier(t *testing.T) {
	t.Parallel()

	m := match.New()
	result := m.Match("flour", testIndex())

	assert.Equal(t, match.KindPartial, result.Kind)
	require.NotNil(t, result.Entry)
	assert.Equal(t, "ing-2", result.Entry.ID)
	assert.GreaterOrEqual(t, result.Confidence, 60)
	assert.LessOrEqual(t, result.Confidence, 89)
}

func TestMatch_FuzzyTier(t *testing.T) {
	t.Parallel()

	m := match.New()
	result := m.Match("black peppr", testIndex())

	assert.Equal(t, match.KindFuzzy, result.Kind)
	require.NotNil(t, result.Entry)
	assert.Equal(t, "ing-4", result.Entry.ID)
	assert.GreaterOrEqual(t, result.Confidence, 40)
	assert.LessOrEqual(t, result.Confidence, 59)
}

func TestMatch_NoneForGibberish(t *testing.T) {
	t.Parallel()

	m := match.New()
	result := m.Match("xyzzyqux", testIndex())

	assert.Equal(t, match.KindNone, result.Kind)
	assert.Equal(t, 0, result.Confidence)
	assert.Nil(t, result.Entry)
}

func TestMatch_MalformedInputDegradesToNone(t *testing.T) {
	t.Parallel()

	m := match.New()
	idx := testIndex()

	for _, phrase := range []string{"", "   ", "***", "!!!", "¯\\_(ツ)_/¯"} {
		result := m.Match(phrase, idx)
		assert.Equal(t, match.KindNone, result.Kind, "phrase %q", phrase)
		assert.Nil(t, result.Entry, "phrase %q", phrase)
	}

	result := m.Match("milk", nil)
	assert.Equal(t, match.KindNone, result.Kind)
}

func TestMatch_TierConfidencesNeverOverlap(t *testing.T) {
	t.Parallel()

	m := match.New()
	idx := testIndex()

	// Compare a partial and a fuzzy verdict against the same catalog: any
	// exact beats any partial beats any fuzzy, whatever the inputs.
	partial := m.Match("flour", idx)
	fuzzy := m.Match("black peppr", idx)
	exact := m.Match("milk", idx)

	require.Equal(t, match.KindPartial, partial.Kind)
	require.Equal(t, match.KindFuzzy, fuzzy.Kind)
	require.Equal(t, match.KindExact, exact.Kind)

	assert.Greater(t, exact.Confidence, partial.Confidence)
	assert.Greater(t, partial.Confidence, fuzzy.Confidence)
}

func TestMatch_Deterministic(t *testing.T) {
	t.Parallel()

	m := match.New()
	idx := testIndex()

	first := m.Match("2 scallions, chopped", idx)
	for i := 0; i < 20; i++ {
		assert.Equal(t, first, m.Match("2 scallions, chopped", idx))
	}
}
