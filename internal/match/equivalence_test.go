package match_test

import (
	"fmt"
	"math/rand"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/agnivade/levenshtein"
	"github.com/stretchr/testify/assert"

	"github.com/maibrennan/larder/internal/catalog"
	"github.com/maibrennan/larder/internal/match"
	"github.com/maibrennan/larder/internal/text"
)

// referenceMatch is a brute-force re-statement of the tiered cascade. It
// walks every indexed string per tier instead of using the index lookups,
// so any shortcut the real implementation takes has to agree with it.
func referenceMatch(m *text.Reducer, phrase string, idx *catalog.Index) match.Result {
	none := match.Result{Kind: match.KindNone, Confidence: 0}

	q := text.Normalize(m.Reduce(phrase))
	if q == "" {
		return none
	}

	entries := idx.Entries()

	// Exact tier. Names claim a normalized string ahead of synonyms, first
	// entry wins within each group.
	for i := range entries {
		if entries[i].NormalizedName == q {
			return match.Result{Kind: match.KindExact, Confidence: 100, Entry: &entries[i]}
		}
	}
	for i := range entries {
		for _, syn := range entries[i].Synonyms {
			if text.Normalize(syn) == q {
				return match.Result{Kind: match.KindExact, Confidence: 100, Entry: &entries[i]}
			}
		}
	}

	// Partial tier: bidirectional containment, best string per entry by
	// length difference (first seen keeps ties), then the closest entry.
	if best, matched := closestCandidate(entries, func(s string) (int, bool) {
		if !strings.Contains(s, q) && !strings.Contains(q, s) {
			return 0, false
		}
		return absDiff(len(q), len(s)), true
	}); best != nil {
		conf := referencePartialConfidence(q, matched)
		if conf >= match.Threshold {
			return match.Result{Kind: match.KindPartial, Confidence: conf, Entry: best}
		}
	}

	// Fuzzy tier: bounded edit distance, same per-entry and cross-entry
	// selection as the partial tier.
	maxDist := utf8.RuneCountInString(q) / 4
	if maxDist < 1 {
		maxDist = 1
	}
	if best, matched := closestCandidate(entries, func(s string) (int, bool) {
		d := levenshtein.ComputeDistance(q, s)
		if d > maxDist {
			return 0, false
		}
		return d, true
	}); best != nil {
		d := levenshtein.ComputeDistance(q, matched)
		conf := referenceFuzzyConfidence(q, matched, d)
		if conf >= match.Threshold {
			return match.Result{Kind: match.KindFuzzy, Confidence: conf, Entry: best}
		}
	}

	return none
}

// closestCandidate scans names first, then synonyms, keeping for each entry
// the first string with the lowest score, and returns the entry whose best
// score wins the tie-break chain.
func closestCandidate(entries []catalog.Entry, score func(string) (int, bool)) (*catalog.Entry, string) {
	type candidate struct {
		entry   *catalog.Entry
		matched string
		score   int
	}
	best := make(map[*catalog.Entry]candidate)

	consider := func(e *catalog.Entry, s string) {
		sc, ok := score(s)
		if !ok {
			return
		}
		if prev, seen := best[e]; !seen || sc < prev.score {
			best[e] = candidate{entry: e, matched: s, score: sc}
		}
	}

	for i := range entries {
		consider(&entries[i], entries[i].NormalizedName)
	}
	for i := range entries {
		for _, syn := range entries[i].Synonyms {
			if norm := text.Normalize(syn); norm != "" {
				consider(&entries[i], norm)
			}
		}
	}

	var winner *candidate
	for i := range entries {
		c, ok := best[&entries[i]]
		if !ok {
			continue
		}
		if winner == nil || c.score < winner.score ||
			(c.score == winner.score && referenceLess(c.entry, winner.entry)) {
			winner = &c
		}
	}
	if winner == nil {
		return nil, ""
	}
	return winner.entry, winner.matched
}

func referenceLess(a, b *catalog.Entry) bool {
	if a.Origin != b.Origin {
		return a.Origin == catalog.OriginSystem
	}
	if a.UsageCount != b.UsageCount {
		return a.UsageCount > b.UsageCount
	}
	return a.NormalizedName < b.NormalizedName
}

func referencePartialConfidence(query, matched string) int {
	shorter, longer := len(query), len(matched)
	if shorter > longer {
		shorter, longer = longer, shorter
	}
	if longer == 0 {
		return 60
	}
	return 60 + int(float64(shorter)/float64(longer)*29+0.5)
}

func referenceFuzzyConfidence(query, matched string, distance int) int {
	longer := utf8.RuneCountInString(query)
	if l := utf8.RuneCountInString(matched); l > longer {
		longer = l
	}
	if longer == 0 {
		return 40
	}
	similarity := 1.0 - float64(distance)/float64(longer)
	if similarity < 0 {
		similarity = 0
	}
	return 40 + int(similarity*19+0.5)
}

func absDiff(a, b int) int {
	if a > b {
		return a - b
	}
	return b - a
}

var equivalenceWords = []string{
	"onion", "garlic", "flour", "milk", "pepper", "salt", "basil", "thyme",
	"rice", "beans", "cream", "butter", "sugar", "lemon", "chicken", "stock",
}

func randomEntry(rng *rand.Rand, idx int, usedNames map[string]bool) (catalog.Entry, bool) {
	nameWords := make([]string, 0, 2)
	for range 1 + rng.Intn(2) {
		nameWords = append(nameWords, equivalenceWords[rng.Intn(len(equivalenceWords))])
	}
	name := strings.Join(nameWords, " ")
	if usedNames[name] {
		return catalog.Entry{}, false
	}
	usedNames[name] = true

	synCount := rng.Intn(3)
	syns := make([]string, 0, synCount)
	for range synCount {
		syns = append(syns, equivalenceWords[rng.Intn(len(equivalenceWords))])
	}

	origin := catalog.OriginSystem
	if rng.Intn(2) == 0 {
		origin = catalog.OriginUser
	}

	return catalog.Entry{
		ID:         fmt.Sprintf("eq-%d", idx),
		Name:       name,
		Synonyms:   syns,
		Category:   "pantry_staples",
		Origin:     origin,
		UsageCount: rng.Intn(5),
	}, true
}

func randomPhrase(rng *rand.Rand, entries []catalog.Entry) string {
	if len(entries) == 0 {
		return "mystery ingredient"
	}
	base := entries[rng.Intn(len(entries))].Name

	switch rng.Intn(6) {
	case 0:
		return base
	case 1:
		return fmt.Sprintf("2 cups %s, chopped", base)
	case 2:
		// Substring of the name.
		if len(base) > 3 {
			return base[:len(base)-2]
		}
		return base
	case 3:
		return "fresh " + base
	case 4:
		// One-character typo.
		runes := []rune(base)
		runes[rng.Intn(len(runes))] = 'z'
		return string(runes)
	default:
		return equivalenceWords[rng.Intn(len(equivalenceWords))] + "berry fizz"
	}
}

func TestMatch_ReferenceEquivalence(t *testing.T) {
	rng := rand.New(rand.NewSource(17))
	reducer := text.NewReducer()
	matcher := match.NewWithReducer(reducer)

	for caseNum := 0; caseNum < 300; caseNum++ {
		entryCount := rng.Intn(20)
		usedNames := make(map[string]bool)
		raw := make([]catalog.Entry, 0, entryCount)
		for i := 0; len(raw) < entryCount && i < entryCount*3; i++ {
			if e, ok := randomEntry(rng, i, usedNames); ok {
				raw = append(raw, e)
			}
		}

		idx := catalog.NewIndex(raw)
		phrase := randomPhrase(rng, idx.Entries())

		got := matcher.Match(phrase, idx)
		want := referenceMatch(reducer, phrase, idx)

		assert.Equal(t, want, got, "mismatch for phrase=%q case=%d", phrase, caseNum)
	}
}
