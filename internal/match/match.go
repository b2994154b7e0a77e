// Package match resolves free-text ingredient phrases against a catalog
// index, producing a match kind, a 0–100 confidence score, and the matched
// entry when one qualifies.
package match

import (
	"unicode/utf8"

	"github.com/maibrennan/larder/internal/catalog"
	"github.com/maibrennan/larder/internal/text"
)

// Kind is the qualitative tier a phrase matched at.
type Kind string

const (
	KindExact   Kind = "exact"
	KindPartial Kind = "partial"
	KindFuzzy   Kind = "fuzzy"
	KindNone    Kind = "none"
)

// Threshold is the global acceptance floor. Any candidate scoring below it
// degrades to a none result.
const Threshold = 50

// Confidence bands per tier. The bands are disjoint so the ordering
// exact > any partial > any fuzzy holds for every catalog and query.
// Confidence is a score, not a probability.
const (
	exactConfidence = 100
	partialFloor    = 60
	partialCeil     = 89
	fuzzyFloor      = 40
	fuzzyCeil       = 59
)

// Result is the verdict for one phrase.
type Result struct {
	Kind       Kind           `json:"kind"`
	Confidence int            `json:"confidence"`
	Entry      *catalog.Entry `json:"entry,omitempty"`
}

// Matcher carries the phrase reducer used before lookup. The zero value is
// not usable; construct with New.
type Matcher struct {
	reducer *text.Reducer
}

// New creates a Matcher with the default reducer.
func New() *Matcher {
	return NewWithReducer(text.NewReducer())
}

// NewWithReducer creates a Matcher with a caller-configured reducer.
func NewWithReducer(r *text.Reducer) *Matcher {
	return &Matcher{reducer: r}
}

// Match resolves a raw phrase against the index. Tiers are tried in order
// and the first qualifying one wins: exact (confidence 100), partial
// (substring containment, 60–89), fuzzy (bounded edit distance, 40–59),
// then none (confidence 0, nil entry). Malformed input (empty strings,
// pure punctuation, arbitrary unicode) degrades to none; Match never
// fails. Given the same index and phrase the result is always identical.
func (m *Matcher) Match(phrase string, idx *catalog.Index) Result {
	none := Result{Kind: KindNone, Confidence: 0}
	if idx == nil {
		return none
	}

	q := text.Normalize(m.reducer.Reduce(phrase))
	if q == "" {
		return none
	}

	if entry := idx.LookupExact(q); entry != nil {
		return Result{Kind: KindExact, Confidence: exactConfidence, Entry: entry}
	}

	if hits := idx.LookupContains(q); len(hits) > 0 {
		top := hits[0]
		conf := partialConfidence(q, top.Matched)
		if conf >= Threshold {
			return Result{Kind: KindPartial, Confidence: conf, Entry: top.Entry}
		}
	}

	maxDist := maxDistanceFor(q)
	if hits := idx.LookupFuzzy(q, maxDist); len(hits) > 0 {
		top := hits[0]
		conf := fuzzyConfidence(q, top.Matched, top.Distance)
		if conf >= Threshold {
			return Result{Kind: KindFuzzy, Confidence: conf, Entry: top.Entry}
		}
	}

	return none
}

// maxDistanceFor scales the fuzzy edit budget to query length: one edit per
// four runes, minimum one.
func maxDistanceFor(q string) int {
	d := utf8.RuneCountInString(q) / 4
	if d < 1 {
		return 1
	}
	return d
}

// partialConfidence maps the ratio of the shorter string to the longer one
// into the partial band. A containment hit where the lengths nearly agree
// scores near the ceiling; a short query inside a long name scores near the
// floor. Never reaches 100 (reserved for exact).
func partialConfidence(query, matched string) int {
	shorter, longer := len(query), len(matched)
	if shorter > longer {
		shorter, longer = longer, shorter
	}
	if longer == 0 {
		return partialFloor
	}
	ratio := float64(shorter) / float64(longer)
	return partialFloor + int(ratio*float64(partialCeil-partialFloor)+0.5)
}

// fuzzyConfidence maps edit distance, relative to the longer of query and
// matched string, into the fuzzy band: zero distance would hit the ceiling,
// a full-length rewrite the floor.
func fuzzyConfidence(query, matched string, distance int) int {
	longer := utf8.RuneCountInString(query)
	if l := utf8.RuneCountInString(matched); l > longer {
		longer = l
	}
	if longer == 0 {
		return fuzzyFloor
	}
	similarity := 1.0 - float64(distance)/float64(longer)
	if similarity < 0 {
		similarity = 0
	}
	return fuzzyFloor + int(similarity*float64(fuzzyCeil-fuzzyFloor)+0.5)
}
