package text

import "strings"

// defaultUnits are measurement words dropped during reduction. Matching is
// against the lowercased token with surrounding punctuation trimmed.
var defaultUnits = []string{
	"cup", "cups", "c",
	"tablespoon", "tablespoons", "tbsp", "tbs", "tb",
	"teaspoon", "teaspoons", "tsp",
	"ounce", "ounces", "oz",
	"pound", "pounds", "lb", "lbs",
	"gram", "grams", "g", "kg", "kilogram", "kilograms",
	"ml", "milliliter", "milliliters", "liter", "liters", "l",
	"quart", "quarts", "qt", "pint", "pints", "pt", "gallon", "gallons", "gal",
	"clove", "cloves", "head", "heads", "bunch", "bunches", "sprig", "sprigs",
	"stalk", "stalks", "stick", "sticks", "slice", "slices", "piece", "pieces",
	"can", "cans", "jar", "jars", "package", "packages", "pkg", "box", "boxes",
	"bag", "bags", "bottle", "bottles", "container", "carton", "cartons",
	"pinch", "pinches", "dash", "dashes", "handful", "drizzle", "splash",
}

// defaultStopWords are prep descriptors and filler words that carry no
// ingredient identity ("fresh", "diced", "to taste").
var defaultStopWords = []string{
	"a", "an", "the", "of", "or", "and", "about", "approximately",
	"to", "taste", "optional", "optionally", "plus", "more", "extra",
	"for", "serving", "garnish", "garnishing", "needed", "as", "if", "desired",
	"fresh", "freshly", "dried", "raw", "ripe", "whole", "ground",
	"large", "medium", "small", "big", "jumbo", "mini", "thin", "thick",
	"diced", "minced", "chopped", "sliced", "grated", "shredded", "crushed",
	"peeled", "seeded", "cored", "trimmed", "halved", "quartered", "cubed",
	"julienned", "beaten", "melted", "softened", "chilled", "cooled", "cold",
	"warm", "hot", "cooked", "uncooked", "boiled", "roasted", "toasted",
	"finely", "roughly", "coarsely", "thinly", "thickly", "lightly", "well",
	"divided", "separated", "packed", "heaping", "level", "scant", "rounded",
	"at", "room", "temperature", "into", "preferably", "your", "favorite",
}

// unicodeFractions commonly appear in pasted recipe lines.
const unicodeFractions = "¼½¾⅐⅑⅒⅓⅔⅕⅖⅗⅘⅙⅚⅛⅜⅝⅞"

// Reducer strips quantity, unit, and descriptor noise from a raw recipe
// line, isolating the ingredient core before matching. It is heuristic and
// lossy by design: a best-effort filter, not a grammar parser.
type Reducer struct {
	units     map[string]struct{}
	stopWords map[string]struct{}
}

// NewReducer returns a Reducer with the built-in unit and stop-word lists.
func NewReducer() *Reducer {
	return NewReducerWith(nil, nil)
}

// NewReducerWith returns a Reducer whose built-in lists are extended with
// extra units and stop words (both matched case-insensitively).
func NewReducerWith(extraUnits, extraStopWords []string) *Reducer {
	r := &Reducer{
		units:     make(map[string]struct{}, len(defaultUnits)+len(extraUnits)),
		stopWords: make(map[string]struct{}, len(defaultStopWords)+len(extraStopWords)),
	}
	for _, w := range defaultUnits {
		r.units[w] = struct{}{}
	}
	for _, w := range extraUnits {
		r.units[strings.ToLower(strings.TrimSpace(w))] = struct{}{}
	}
	for _, w := range defaultStopWords {
		r.stopWords[w] = struct{}{}
	}
	for _, w := range extraStopWords {
		r.stopWords[strings.ToLower(strings.TrimSpace(w))] = struct{}{}
	}
	return r
}

// Reduce strips quantities, units, and filler words from phrase, keeping the
// original casing of what remains. If reduction would produce an empty
// string, the original phrase is returned unchanged so downstream matching
// never sees an empty query that started non-empty.
func (r *Reducer) Reduce(phrase string) string {
	core := phrase

	// Parenthetical asides ("(about 2 cups)") never name the ingredient.
	if idx := strings.Index(core, "("); idx >= 0 {
		end := strings.Index(core[idx:], ")")
		if end >= 0 {
			core = core[:idx] + core[idx+end+1:]
		} else {
			core = core[:idx]
		}
	}

	var kept []string
	for _, token := range strings.Fields(core) {
		word := strings.Trim(token, ",.;:!?*")
		if word == "" {
			continue
		}
		if isQuantity(word) {
			continue
		}
		lower := strings.ToLower(word)
		if _, ok := r.units[lower]; ok {
			continue
		}
		if _, ok := r.stopWords[lower]; ok {
			continue
		}
		kept = append(kept, word)
	}

	if len(kept) == 0 {
		return phrase
	}
	return strings.Join(kept, " ")
}

// isQuantity reports whether a token is numeric noise: "2", "1/2", "2-3",
// "1.5", "½", or a digit-fraction mix like "1½".
func isQuantity(token string) bool {
	sawDigit := false
	for _, r := range token {
		switch {
		case r >= '0' && r <= '9':
			sawDigit = true
		case strings.ContainsRune(unicodeFractions, r):
			sawDigit = true
		case r == '/' || r == '-' || r == '.' || r == ',' || r == 'x' || r == '~':
			// separators inside "1/2", "2-3", "1.5", "2x"
		default:
			return false
		}
	}
	return sawDigit
}
